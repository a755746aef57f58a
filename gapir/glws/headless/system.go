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

// Package headless is a window system that keeps drawables, contexts and GL
// client state in memory. Nothing is rendered; calls are validated against
// the simulated state and counted.
package headless

import (
	"context"
	"fmt"

	"github.com/gfxreplay/glretrace/core/fault"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/glws"
)

const (
	// ErrDestroyed is returned when a destroyed resource is used.
	ErrDestroyed = fault.Const("Resource has been destroyed")
	// ErrForeign is returned when a resource of another System is used.
	ErrForeign = fault.Const("Resource does not belong to this system")
	// ErrBadMatch is returned when only one of a drawable and context is
	// made current.
	ErrBadMatch = fault.Const("Drawable and context must both be set or both be nil")
)

// System is an in-memory glws.System.
type System struct {
	nextID   uint32
	drawable *Drawable
	context  *Context
	live     int
}

var _ glws.System = (*System)(nil)

// New returns a new System with nothing current.
func New() *System {
	return &System{}
}

func (s *System) id() uint32 {
	s.nextID++
	return s.nextID
}

// CreateDrawable returns a new drawable.
func (s *System) CreateDrawable(ctx context.Context, visual glws.Visual) (glws.Drawable, error) {
	d := &Drawable{system: s, id: s.id(), visual: visual}
	s.live++
	log.D(ctx, "Created drawable %d", d.id)
	return d, nil
}

// CreateContext returns a new context, sharing the objects of share if it
// is not nil.
func (s *System) CreateContext(ctx context.Context, visual glws.Visual, share glws.Context) (glws.Context, error) {
	objects := newObjects()
	if share != nil {
		sc, ok := share.(*Context)
		switch {
		case !ok || sc.system != s:
			return nil, ErrForeign
		case sc.destroyed:
			return nil, ErrDestroyed
		}
		objects = sc.objects
	}
	c := newContext(s, s.id(), visual, objects)
	s.live++
	log.D(ctx, "Created context %d", c.id)
	return c, nil
}

// MakeCurrent binds d and c, or releases the current pair when both are nil.
func (s *System) MakeCurrent(ctx context.Context, d glws.Drawable, c glws.Context) error {
	if d == nil && c == nil {
		s.drawable, s.context = nil, nil
		return nil
	}
	if d == nil || c == nil {
		return ErrBadMatch
	}
	hd, ok := d.(*Drawable)
	if !ok || hd.system != s {
		return ErrForeign
	}
	hc, ok := c.(*Context)
	if !ok || hc.system != s {
		return ErrForeign
	}
	if hd.destroyed || hc.destroyed {
		return ErrDestroyed
	}
	s.drawable, s.context = hd, hc
	return nil
}

// GL returns the entry points of whichever context is current when they are
// called. With no current context the calls do nothing.
func (s *System) GL() glws.GL {
	return current{s}
}

// Current returns the current drawable and context, which may be nil.
func (s *System) Current() (*Drawable, *Context) {
	return s.drawable, s.context
}

// Live returns the number of drawables and contexts not yet destroyed.
func (s *System) Live() int {
	return s.live
}

// Snapshot returns a description of the current binding and the state of
// the current context.
func (s *System) Snapshot() map[string]interface{} {
	out := map[string]interface{}{"live": s.live}
	if d := s.drawable; d != nil {
		out["drawable"] = map[string]interface{}{
			"id":           int64(d.id),
			"doubleBuffer": d.visual.DoubleBuffer,
			"swaps":        d.swaps,
		}
	}
	if c := s.context; c != nil {
		out["context"] = c.snapshot()
	}
	return out
}

// Drawable is an in-memory glws.Drawable.
type Drawable struct {
	system    *System
	id        uint32
	visual    glws.Visual
	swaps     int
	destroyed bool
}

// SwapBuffers counts a presented frame.
func (d *Drawable) SwapBuffers(ctx context.Context) error {
	if d.destroyed {
		return ErrDestroyed
	}
	d.swaps++
	return nil
}

// Destroy releases the drawable. A current drawable stays bound until the
// next MakeCurrent.
func (d *Drawable) Destroy(ctx context.Context) {
	if d.destroyed {
		return
	}
	d.destroyed = true
	d.system.live--
	log.D(ctx, "Destroyed drawable %d", d.id)
}

// Swaps returns the number of times SwapBuffers succeeded.
func (d *Drawable) Swaps() int { return d.swaps }

// Destroyed returns true once Destroy has been called.
func (d *Drawable) Destroyed() bool { return d.destroyed }

func (d *Drawable) String() string { return fmt.Sprintf("drawable %d", d.id) }
