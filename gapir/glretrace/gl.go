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
	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/api/gles/size"
	"github.com/gfxreplay/glretrace/gapis/capture"
)

var glHandlers = map[string]Handler{
	"glFlush":                   checked(flush),
	"glFinish":                  checked(finish),
	"glPixelStorei":             checked(pixelStorei),
	"glBindBuffer":              checked(bindBuffer),
	"glBufferData":              checked(bufferData),
	"glBufferSubData":           checked(bufferSubData),
	"glEnableVertexAttribArray": checked(enableVertexAttribArray),
	"glVertexAttribPointer":     checked(vertexAttribPointer),
	"glDrawArrays":              checked(drawArrays),
	"glDrawElements":            checked(drawElements),
	"glDrawElementsBaseVertex":  checked(drawElements),
	"glTexImage2D":              checked(texImage2D),
	"glTexSubImage2D":           checked(texSubImage2D),
}

// checked reports any GL error raised by h when the engine checks errors.
func checked(h Handler) Handler {
	return func(ctx context.Context, e *Engine, call *capture.Call) error {
		if err := h(ctx, e, call); err != nil {
			return err
		}
		if !e.CheckErrors {
			return nil
		}
		if err := e.gl.GetError(); err != gles.GLenum_GL_NO_ERROR {
			log.W(ctx, "%v raised %v", call.Name, err)
		}
		return nil
	}
}

// resolver returns the size resolver for the arguments of call.
func (e *Engine) resolver(call *capture.Call) *size.Resolver {
	return &size.Resolver{State: e.gl, Memory: call.Memory(), UnpackSubimage: true}
}

// bound returns true if a buffer is bound to the binding point pname.
func (e *Engine) bound(pname gles.GLenum) bool {
	return e.gl.GetIntegerv(pname) != 0
}

// blob resolves the length of the i'th argument of call with length and
// returns its bytes. A null pointer is nil.
func blob(ctx context.Context, call *capture.Call, i int, length func() uint64) []byte {
	b := call.Blob(i)
	if b == nil || b.Addr == 0 {
		return nil
	}
	data := b.Resolve(length)
	if n, _ := b.Resolved(); n > uint64(len(data)) {
		log.W(ctx, "Argument %d of %v truncated to %d of %d bytes", i, call.Name, len(data), n)
	}
	return data
}

func enum(call *capture.Call, i int) gles.GLenum { return gles.GLenum(call.Uint(i)) }

func int32Arg(call *capture.Call, i int) int32 { return int32(call.Int(i)) }

// glFlush()
func flush(ctx context.Context, e *Engine, call *capture.Call) error {
	e.gl.Flush()
	return nil
}

// glFinish()
func finish(ctx context.Context, e *Engine, call *capture.Call) error {
	e.gl.Finish()
	return nil
}

// glPixelStorei(pname, param)
func pixelStorei(ctx context.Context, e *Engine, call *capture.Call) error {
	e.gl.PixelStorei(enum(call, 0), int32Arg(call, 1))
	return nil
}

// glBindBuffer(target, buffer)
func bindBuffer(ctx context.Context, e *Engine, call *capture.Call) error {
	e.gl.BindBuffer(enum(call, 0), uint32(call.Uint(1)))
	return nil
}

// glBufferData(target, size, data, usage)
func bufferData(ctx context.Context, e *Engine, call *capture.Call) error {
	n := call.Int(1)
	data := blob(ctx, call, 2, func() uint64 { return uint64(n) })
	e.gl.BufferData(enum(call, 0), n, data, enum(call, 3))
	return nil
}

// glBufferSubData(target, offset, size, data)
func bufferSubData(ctx context.Context, e *Engine, call *capture.Call) error {
	n := call.Uint(2)
	data := blob(ctx, call, 3, func() uint64 { return n })
	e.gl.BufferSubData(enum(call, 0), call.Int(1), data)
	return nil
}

// glEnableVertexAttribArray(index)
func enableVertexAttribArray(ctx context.Context, e *Engine, call *capture.Call) error {
	e.gl.EnableVertexAttribArray(uint32(call.Uint(0)))
	return nil
}

// glVertexAttribPointer(index, size, type, normalized, stride, pointer)
// A client array carries the bytes observed up to the highest vertex of the
// draw that followed it.
func vertexAttribPointer(ctx context.Context, e *Engine, call *capture.Call) error {
	var data []byte
	if !e.bound(gles.GLenum_GL_ARRAY_BUFFER_BINDING) {
		if b := call.Blob(5); b != nil {
			data = b.Bytes()
		}
	}
	e.gl.VertexAttribPointer(uint32(call.Uint(0)), int32Arg(call, 1), enum(call, 2),
		call.Uint(3) != 0, int32Arg(call, 4), call.Uint(5), data)
	return nil
}

// glDrawArrays(mode, first, count)
func drawArrays(ctx context.Context, e *Engine, call *capture.Call) error {
	e.gl.DrawArrays(enum(call, 0), int32Arg(call, 1), int32Arg(call, 2))
	return nil
}

// glDrawElements(mode, count, type, indices)
// glDrawElementsBaseVertex(mode, count, type, indices, basevertex)
func drawElements(ctx context.Context, e *Engine, call *capture.Call) error {
	count, ty := int32Arg(call, 1), enum(call, 2)
	var data []byte
	if !e.bound(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING) {
		data = blob(ctx, call, 3, func() uint64 {
			return uint64(count) * uint64(gles.DataTypeSize(ctx, ty))
		})
	}
	e.gl.DrawElementsBaseVertex(enum(call, 0), count, ty, call.Uint(3), data, int32Arg(call, 4))
	return nil
}

// glTexImage2D(target, level, internalformat, width, height, border, format, type, pixels)
func texImage2D(ctx context.Context, e *Engine, call *capture.Call) error {
	width, height := int32Arg(call, 3), int32Arg(call, 4)
	format, ty := enum(call, 6), enum(call, 7)
	pixels := e.pixels(ctx, call, 8, format, ty, width, height)
	e.gl.TexImage2D(enum(call, 0), int32Arg(call, 1), int32Arg(call, 2), width, height,
		int32Arg(call, 5), format, ty, call.Uint(8), pixels)
	return nil
}

// glTexSubImage2D(target, level, xoffset, yoffset, width, height, format, type, pixels)
func texSubImage2D(ctx context.Context, e *Engine, call *capture.Call) error {
	width, height := int32Arg(call, 4), int32Arg(call, 5)
	format, ty := enum(call, 6), enum(call, 7)
	pixels := e.pixels(ctx, call, 8, format, ty, width, height)
	e.gl.TexSubImage2D(enum(call, 0), int32Arg(call, 1), int32Arg(call, 2), int32Arg(call, 3),
		width, height, format, ty, call.Uint(8), pixels)
	return nil
}

// pixels returns the client pixels of a 2D upload, or nil if they are
// sourced from a pixel unpack buffer.
func (e *Engine) pixels(ctx context.Context, call *capture.Call, i int, format, ty gles.GLenum, width, height int32) []byte {
	if e.bound(gles.GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING) {
		return nil
	}
	r := e.resolver(call)
	return blob(ctx, call, i, func() uint64 {
		return r.TexImage2DSize(ctx, format, ty, width, height)
	})
}
