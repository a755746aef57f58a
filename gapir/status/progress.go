// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status exposes the progress of a running replay over grpc.
package status

import (
	"context"
	"sync"
	"time"

	"github.com/gfxreplay/glretrace/gapir/frame"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/golang/protobuf/ptypes"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Progress is the replay progress shared between the replay loop and the
// status service. The replay side calls Call and FrameComplete, the service
// reads Report.
type Progress struct {
	// State, if set, is snapshotted at every frame boundary.
	State frame.StateSource
	// Now is the clock used for timestamps.
	Now func() time.Time

	mutex    sync.Mutex
	started  time.Time
	calls    uint64
	failed   uint64
	frames   uint64
	lastCall string
	done     bool
	err      string
	snapshot map[string]interface{}
}

// NewProgress returns a Progress that starts counting now.
func NewProgress(state frame.StateSource) *Progress {
	p := &Progress{State: state, Now: time.Now}
	p.started = p.Now()
	return p
}

// Call records a replayed call.
func (p *Progress) Call(call *capture.Call, err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.calls++
	if err != nil {
		p.failed++
	}
	p.lastCall = call.Name
}

// FrameComplete records a frame boundary and the state at it.
func (p *Progress) FrameComplete(ctx context.Context, call *capture.Call) {
	var snapshot map[string]interface{}
	if p.State != nil {
		snapshot = p.State.Snapshot()
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.frames++
	if snapshot != nil {
		p.snapshot = snapshot
	}
}

// Finish marks the replay as ended with err.
func (p *Progress) Finish(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.done = true
	if err != nil {
		p.err = err.Error()
	}
}

// Report returns the progress as a structpb compatible map.
func (p *Progress) Report() map[string]interface{} {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	out := map[string]interface{}{
		"started":  ptypes.TimestampString(timestamppb.New(p.started)),
		"calls":    p.calls,
		"failed":   p.failed,
		"frames":   p.frames,
		"lastCall": p.lastCall,
		"done":     p.done,
	}
	if p.err != "" {
		out["error"] = p.err
	}
	if p.snapshot != nil {
		out["state"] = p.snapshot
	}
	return out
}
