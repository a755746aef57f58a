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

// Package glretrace replays recorded EGL and GL calls against a live window
// system, translating recorded handles into the resources created for them
// and reporting frame boundaries.
package glretrace

import (
	"context"
	"io"

	"github.com/gfxreplay/glretrace/core/fault"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/frame"
	"github.com/gfxreplay/glretrace/gapir/glws"
	"github.com/gfxreplay/glretrace/gapir/handle"
	"github.com/gfxreplay/glretrace/gapis/api/egl"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/pkg/errors"
)

// ErrAbort is the cause of errors that must stop the replay.
const ErrAbort = fault.Const("Replay aborted")

// Handler replays a single call.
type Handler func(ctx context.Context, e *Engine, call *capture.Call) error

// Engine holds the state of a single replay session.
// An Engine must only be used from one goroutine.
type Engine struct {
	// CheckErrors makes the engine read the GL error after each GL call and
	// log any error raised.
	CheckErrors bool

	system    glws.System
	gl        glws.GL
	visual    glws.Visual
	observer  frame.Observer
	contexts  *handle.Map[glws.Context]
	drawables *handle.Map[glws.Drawable]
	drawable  glws.Drawable
	context   glws.Context
	api       egl.EGLenum
	warned    map[string]bool
}

// New returns an Engine that creates resources with system using visual and
// reports frame boundaries to observer, which may be nil.
func New(system glws.System, visual glws.Visual, observer frame.Observer) *Engine {
	if observer == nil {
		observer = frame.Fanout{}
	}
	return &Engine{
		system:    system,
		gl:        system.GL(),
		visual:    visual,
		observer:  observer,
		contexts:  handle.New[glws.Context](),
		drawables: handle.New[glws.Drawable](),
		warned:    map[string]bool{},
	}
}

// Current returns the current drawable and context, both nil if nothing is
// current.
func (e *Engine) Current() (glws.Drawable, glws.Context) {
	return e.drawable, e.context
}

// API returns the client API selected by the last eglBindAPI, or 0.
func (e *Engine) API() egl.EGLenum {
	return e.api
}

// Live returns the number of live contexts and drawables.
func (e *Engine) Live() (contexts, drawables int) {
	return e.contexts.Len(), e.drawables.Len()
}

// Supported returns true if the engine has a handler for the named call.
func Supported(name string) bool {
	_, ok := handlers[name]
	return ok
}

// Replay replays call. Calls the engine has no handler for are skipped with
// a warning the first time each name is seen. Blob lengths resolved while
// handling call are forgotten once it returns.
// The returned error has ErrAbort as its cause if replay cannot continue.
func (e *Engine) Replay(ctx context.Context, call *capture.Call) error {
	h, ok := handlers[call.Name]
	if !ok {
		e.warnOnce(ctx, call.Name, "Unsupported call %v skipped", call.Name)
		return nil
	}
	defer func() {
		for _, a := range call.Args {
			if b, ok := a.(*capture.Blob); ok {
				b.Reset()
			}
		}
	}()
	return h(log.Enter(ctx, call.Name), e, call)
}

func (e *Engine) warnOnce(ctx context.Context, key, msg string, args ...interface{}) {
	if e.warned[key] {
		return
	}
	e.warned[key] = true
	log.W(ctx, msg, args...)
}

// frameComplete reports a frame boundary.
func (e *Engine) frameComplete(ctx context.Context, call *capture.Call) {
	e.observer.FrameComplete(ctx, call)
}

// Close releases the current binding and destroys every resource still
// bound, contexts first, each kind in recorded handle order.
func (e *Engine) Close(ctx context.Context) error {
	var errs fault.List
	if e.drawable != nil || e.context != nil {
		if err := e.system.MakeCurrent(ctx, nil, nil); err != nil {
			errs.Collect(errors.Wrap(err, "Releasing current context"))
		}
		e.drawable, e.context = nil, nil
	}
	e.contexts.Drain(func(id uint64, c glws.Context) {
		log.D(ctx, "Destroying leaked context 0x%x", id)
		c.Destroy(ctx)
	})
	e.drawables.Drain(func(id uint64, d glws.Drawable) {
		log.D(ctx, "Destroying leaked drawable 0x%x", id)
		d.Destroy(ctx)
	})
	return errs.First()
}

// Listener is told about each call after it has been replayed.
type Listener func(call *capture.Call, err error)

// Run replays every call of source in order. Handler errors are logged and
// replay continues, unless the error has ErrAbort as its cause, in which case
// it is returned. Run returns nil when source is exhausted.
func Run(ctx context.Context, e *Engine, source capture.Source, listener Listener) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		call, err := source.Next(ctx)
		switch {
		case errors.Cause(err) == io.EOF:
			return nil
		case err != nil:
			return errors.Wrap(err, "Reading call")
		}
		err = e.Replay(ctx, call)
		if listener != nil {
			listener(call, err)
		}
		if err == nil {
			continue
		}
		if errors.Cause(err) == ErrAbort {
			return errors.Wrapf(err, "Call %d %v", call.ID, call.Name)
		}
		log.W(ctx, "Call %d %v failed: %v", call.ID, call.Name, err)
	}
}
