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

package glretrace

import (
	"context"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/glws"
	"github.com/gfxreplay/glretrace/gapis/api/egl"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/pkg/errors"
)

// handlers is the static dispatch table, keyed by entry point name.
var handlers = map[string]Handler{}

func init() {
	for _, name := range ignored {
		handlers[name] = ignore
	}
	for name, h := range eglHandlers {
		handlers[name] = h
	}
	for name, h := range glHandlers {
		handlers[name] = h
	}
}

// ignored are the EGL calls that have no effect on replay.
var ignored = []string{
	"eglGetError",
	"eglGetDisplay",
	"eglGetPlatformDisplay",
	"eglInitialize",
	"eglTerminate",
	"eglQueryString",
	"eglGetConfigs",
	"eglChooseConfig",
	"eglGetConfigAttrib",
	"eglQuerySurface",
	"eglSurfaceAttrib",
	"eglQueryAPI",
	"eglSwapInterval",
	"eglGetCurrentContext",
	"eglGetCurrentSurface",
	"eglGetCurrentDisplay",
	"eglQueryContext",
	"eglWaitClient",
	"eglWaitGL",
	"eglWaitNative",
	"eglReleaseThread",
	"eglGetProcAddress",
}

func ignore(ctx context.Context, e *Engine, call *capture.Call) error { return nil }

var eglHandlers = map[string]Handler{
	"eglBindAPI":              bindAPI,
	"eglCreateContext":        createContext,
	"eglDestroyContext":       destroyContext,
	"eglCreateWindowSurface":  createDrawable,
	"eglCreatePbufferSurface": createDrawable,
	"eglDestroySurface":       destroyDrawable,
	"eglMakeCurrent":          makeCurrent,
	"eglSwapBuffers":          swapBuffers,
}

// bindAPI: eglBindAPI(api)
func bindAPI(ctx context.Context, e *Engine, call *capture.Call) error {
	e.api = egl.EGLenum(call.Uint(0))
	log.D(ctx, "Client API %v", e.api)
	return nil
}

// createContext: ctx = eglCreateContext(dpy, config, share, attribs)
func createContext(ctx context.Context, e *Engine, call *capture.Call) error {
	if e.api != egl.EGLenum_EGL_OPENGL_API {
		log.E(ctx, "Only OpenGL contexts are supported, client API is %v", e.api)
		return errors.Wrapf(ErrAbort, "Creating context for %v", e.api)
	}
	share, _ := e.contexts.Lookup(call.Uint(2))
	c, err := e.system.CreateContext(ctx, e.visual, share)
	if err != nil {
		return errors.Wrap(err, "Creating context")
	}
	if old, replaced := e.contexts.Bind(call.ResultUint(), c); replaced {
		log.W(ctx, "Context 0x%x created again, destroying the old one", call.ResultUint())
		err = e.releaseCurrent(ctx, nil, old)
		old.Destroy(ctx)
	}
	return err
}

// destroyContext: eglDestroyContext(dpy, ctx)
func destroyContext(ctx context.Context, e *Engine, call *capture.Call) error {
	c, ok := e.contexts.Release(call.Uint(1))
	if !ok {
		return nil
	}
	err := e.releaseCurrent(ctx, nil, c)
	c.Destroy(ctx)
	return err
}

// createDrawable: surface = eglCreateWindowSurface(dpy, config, window, attribs)
func createDrawable(ctx context.Context, e *Engine, call *capture.Call) error {
	d, err := e.system.CreateDrawable(ctx, e.visual)
	if err != nil {
		return errors.Wrap(err, "Creating drawable")
	}
	if old, replaced := e.drawables.Bind(call.ResultUint(), d); replaced {
		log.W(ctx, "Surface 0x%x created again, destroying the old one", call.ResultUint())
		err = e.releaseCurrent(ctx, old, nil)
		old.Destroy(ctx)
	}
	return err
}

// destroyDrawable: eglDestroySurface(dpy, surface)
func destroyDrawable(ctx context.Context, e *Engine, call *capture.Call) error {
	d, ok := e.drawables.Release(call.Uint(1))
	if !ok {
		return nil
	}
	err := e.releaseCurrent(ctx, d, nil)
	d.Destroy(ctx)
	return err
}

// releaseCurrent unbinds the current pair if it holds d or c, so that neither
// is destroyed while current.
func (e *Engine) releaseCurrent(ctx context.Context, d glws.Drawable, c glws.Context) error {
	if (d == nil || d != e.drawable) && (c == nil || c != e.context) {
		return nil
	}
	e.gl.Flush()
	e.drawable, e.context = nil, nil
	return errors.Wrap(e.system.MakeCurrent(ctx, nil, nil), "Releasing current context")
}

// makeCurrent: eglMakeCurrent(dpy, draw, read, ctx)
func makeCurrent(ctx context.Context, e *Engine, call *capture.Call) error {
	d, _ := e.drawables.Lookup(call.Uint(1))
	c, _ := e.contexts.Lookup(call.Uint(3))
	if d == e.drawable && c == e.context {
		return nil
	}

	if e.drawable != nil && e.context != nil {
		e.gl.Flush()
		if !e.visual.DoubleBuffer {
			e.frameComplete(ctx, call)
		}
	}

	err := e.system.MakeCurrent(ctx, d, c)
	if err != nil || d == nil || c == nil {
		e.drawable, e.context = nil, nil
		if err != nil {
			return errors.Wrap(err, "Making context current")
		}
		return nil
	}
	e.drawable, e.context = d, c
	return nil
}

// swapBuffers: eglSwapBuffers(dpy, surface)
func swapBuffers(ctx context.Context, e *Engine, call *capture.Call) error {
	e.frameComplete(ctx, call)
	if !e.visual.DoubleBuffer {
		e.gl.Flush()
		return nil
	}
	d, ok := e.drawables.Lookup(call.Uint(1))
	if !ok {
		d = e.drawable
	}
	if d == nil {
		log.W(ctx, "Swap of surface 0x%x with no drawable", call.Uint(1))
		return nil
	}
	return errors.Wrap(d.SwapBuffers(ctx), "Swapping buffers")
}
