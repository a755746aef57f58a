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

package gapii

import (
	"context"
	"io"
	"sync"

	"github.com/gfxreplay/glretrace/gapii/shim"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/pkg/errors"
)

// Session records the calls made through its Table.
type Session struct {
	// Table is the entry point table applications call through.
	Table    *shim.Table
	Recorder *Recorder

	mutex sync.Mutex
	calls *capture.List
}

type lockedList struct {
	s *Session
}

func (l lockedList) Write(ctx context.Context, c *capture.Call) error {
	l.s.mutex.Lock()
	defer l.s.mutex.Unlock()
	return l.s.calls.Write(ctx, c)
}

// Start returns a Session resolving the real entry points with loader.
func Start(loader shim.Loader, options Options) *Session {
	s := &Session{calls: &capture.List{}}
	s.Table = shim.New(loader, shim.HookFunc(func(ctx context.Context, name string, args []uintptr, invoke func() uintptr) uintptr {
		return s.Recorder.Call(ctx, name, args, invoke)
	}))
	s.Recorder = NewRecorder(lockedList{s}, shim.State{Table: s.Table}, shim.Memory{}, options)
	return s
}

// Calls returns a copy of the calls recorded so far.
func (s *Session) Calls() []*capture.Call {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]*capture.Call{}, s.calls.Calls...)
}

// Save writes the recorded calls to w as a call script.
func (s *Session) Save(w io.Writer) error {
	if err := s.Recorder.Err(); err != nil {
		return errors.Wrap(err, "Recording failed")
	}
	return capture.WriteScript(w, s.Calls())
}
