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

// Package frame delivers the frame boundaries found during replay to the
// parts of the replayer that act on them.
package frame

import (
	"context"
	"sync/atomic"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/capture"
)

// Observer is notified each time replay completes a frame.
type Observer interface {
	// FrameComplete is called with the call that ended the frame.
	FrameComplete(ctx context.Context, call *capture.Call)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(ctx context.Context, call *capture.Call)

// FrameComplete calls f.
func (f ObserverFunc) FrameComplete(ctx context.Context, call *capture.Call) { f(ctx, call) }

// Fanout notifies each of its observers in order.
type Fanout []Observer

// FrameComplete notifies every observer.
func (f Fanout) FrameComplete(ctx context.Context, call *capture.Call) {
	for _, o := range f {
		o.FrameComplete(ctx, call)
	}
}

// Counter counts frames. It is safe to read from other goroutines while
// replay is running.
type Counter struct {
	frames   atomic.Uint64
	lastCall atomic.Uint64
}

// FrameComplete counts a frame.
func (c *Counter) FrameComplete(ctx context.Context, call *capture.Call) {
	n := c.frames.Add(1)
	c.lastCall.Store(call.ID)
	log.D(ctx, "Frame %d ended by %v", n, call.Name)
}

// Frames returns the number of completed frames.
func (c *Counter) Frames() uint64 { return c.frames.Load() }

// LastCall returns the id of the call that ended the last frame.
func (c *Counter) LastCall() uint64 { return c.lastCall.Load() }
