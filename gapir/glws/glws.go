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

// Package glws describes the window system the replayer creates drawables
// and contexts with, and the GL entry points it forwards calls to.
package glws

//go:generate mockgen -destination mock_glws/mock_glws.go github.com/gfxreplay/glretrace/gapir/glws System,Drawable,Context,GL

import (
	"context"

	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/api/gles/size"
)

// Visual is the framebuffer configuration drawables and contexts are created
// with.
type Visual struct {
	// DoubleBuffer is true if drawables have a back buffer that is presented
	// by SwapBuffers.
	DoubleBuffer bool `mapstructure:"double-buffer"`
	// DepthBits is the number of bits in the depth buffer.
	DepthBits int `mapstructure:"depth-bits"`
	// StencilBits is the number of bits in the stencil buffer.
	StencilBits int `mapstructure:"stencil-bits"`
}

// DefaultVisual is a double-buffered visual with a 24 bit depth buffer and
// an 8 bit stencil buffer.
var DefaultVisual = Visual{DoubleBuffer: true, DepthBits: 24, StencilBits: 8}

// System creates the live resources replayed calls operate on.
type System interface {
	// CreateDrawable returns a new drawable surface.
	CreateDrawable(ctx context.Context, visual Visual) (Drawable, error)
	// CreateContext returns a new rendering context sharing objects with
	// share, which may be nil.
	CreateContext(ctx context.Context, visual Visual, share Context) (Context, error)
	// MakeCurrent binds the drawable and context to the calling thread.
	// Passing nil for both releases the current binding.
	MakeCurrent(ctx context.Context, d Drawable, c Context) error
	// GL returns the entry points of the current context.
	GL() GL
}

// Drawable is a live drawable surface.
type Drawable interface {
	// SwapBuffers presents the back buffer.
	SwapBuffers(ctx context.Context) error
	// Destroy releases the drawable.
	Destroy(ctx context.Context)
}

// Context is a live rendering context.
type Context interface {
	// Destroy releases the context.
	Destroy(ctx context.Context)
}

// GL is the set of GL entry points the replayer forwards calls to.
// Pointer arguments are passed either as an offset into the buffer bound to
// the relevant target, or as the observed client bytes in data when no
// buffer is bound.
type GL interface {
	size.State

	GetError() gles.GLenum
	Flush()
	Finish()
	PixelStorei(pname gles.GLenum, param int32)
	BindBuffer(target gles.GLenum, buffer uint32)
	BufferData(target gles.GLenum, size int64, data []byte, usage gles.GLenum)
	BufferSubData(target gles.GLenum, offset int64, data []byte)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, ty gles.GLenum, normalized bool, stride int32, offset uint64, data []byte)
	DrawArrays(mode gles.GLenum, first, count int32)
	DrawElementsBaseVertex(mode gles.GLenum, count int32, ty gles.GLenum, offset uint64, data []byte, baseVertex int32)
	TexImage2D(target gles.GLenum, level, internalFormat, width, height, border int32, format, ty gles.GLenum, offset uint64, pixels []byte)
	TexSubImage2D(target gles.GLenum, level, x, y, width, height int32, format, ty gles.GLenum, offset uint64, pixels []byte)
}
