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

	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/api/gles/size"
)

// kind is how a raw argument or result word is recorded.
type kind uint8

const (
	void        kind = iota // no value
	sint                    // GLint, GLsizei: the low 32 bits, sign extended
	sizeiptr                // GLsizeiptr, GLintptr: the whole word, signed
	unsigned                // GLuint, GLbitfield
	enum                    // GLenum, EGLenum
	boolean                 // GLboolean, EGLBoolean
	handle                  // opaque pointers and EGL handles
	str                     // NUL-terminated string
	attribs                 // EGL_NONE terminated EGLint attribute list
	blob                    // client memory sized by param.size
	clientArray             // vertex array pointer sized at the next draw
)

// sizer returns the byte length of a blob argument.
type sizer func(ctx context.Context, r *size.Resolver, args []uint64) uint64

type param struct {
	kind kind
	size sizer
	// binding, if set, names the buffer binding that turns the pointer into
	// a buffer offset when non-zero.
	binding gles.GLenum
}

// arraySizer returns the byte length of a client vertex array given the
// largest index a draw reads.
type arraySizer func(ctx context.Context, args []uint64, maxIndex uint32) uint64

// drawIndex returns the largest vertex index a draw call reads.
type drawIndex func(ctx context.Context, r *size.Resolver, args []uint64) uint32

type signature struct {
	params []param
	result kind
	array  arraySizer
	draw   drawIndex
}

func p(k kind) param { return param{kind: k} }

func sized(s sizer) param { return param{kind: blob, size: s} }

func buffered(binding gles.GLenum, s sizer) param {
	return param{kind: blob, size: s, binding: binding}
}

func fn(result kind, params ...param) signature {
	return signature{params: params, result: result}
}

func i32(args []uint64, i int) int32 { return int32(uint32(args[i])) }

func glenum(args []uint64, i int) gles.GLenum { return gles.GLenum(uint32(args[i])) }

var (
	pSint   = p(sint)
	pUint   = p(unsigned)
	pEnum   = p(enum)
	pBool   = p(boolean)
	pHandle = p(handle)
	pString = p(str)
	pAttrib = p(attribs)
)

func words(arg, width int) sizer {
	return func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		n := i32(args, arg)
		if n < 0 {
			return 0
		}
		return uint64(n) * uint64(width)
	}
}

func bytesArg(arg int) sizer {
	return func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		n := int64(args[arg])
		if n < 0 {
			return 0
		}
		return uint64(n)
	}
}

func indices(count, ty int) param {
	return buffered(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING, func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		n := i32(args, count)
		if n < 0 {
			return 0
		}
		return uint64(n) * uint64(gles.DataTypeSize(ctx, glenum(args, ty)))
	})
}

func pixels(s sizer) param {
	return buffered(gles.GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING, s)
}

func uniform(ty gles.GLenum) param {
	return sized(func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		return size.UniformSize(ctx, ty, i32(args, 1))
	})
}

func uniformMatrix(ty gles.GLenum) signature {
	return fn(void, pSint, pSint, pBool, uniform(ty))
}

func array(s arraySizer, params ...param) signature {
	params = append(params, param{kind: clientArray, binding: gles.GLenum_GL_ARRAY_BUFFER_BINDING})
	return signature{params: params, result: void, array: s}
}

func draw(d drawIndex, params ...param) signature {
	return signature{params: params, result: void, draw: d}
}

func drawElements(count, ty, ptr, baseVertex int) drawIndex {
	return func(ctx context.Context, r *size.Resolver, args []uint64) uint32 {
		bv := int32(0)
		if baseVertex >= 0 {
			bv = i32(args, baseVertex)
		}
		return r.DrawElementsMaxIndex(ctx, i32(args, count), glenum(args, ty), args[ptr], bv)
	}
}

var signatures = map[string]signature{
	// EGL
	"eglGetError":             fn(enum),
	"eglGetDisplay":           fn(handle, pHandle),
	"eglInitialize":           fn(boolean, pHandle, pHandle, pHandle),
	"eglTerminate":            fn(boolean, pHandle),
	"eglQueryString":          fn(str, pHandle, pEnum),
	"eglGetConfigs":           fn(boolean, pHandle, pHandle, pSint, pHandle),
	"eglChooseConfig":         fn(boolean, pHandle, pAttrib, pHandle, pSint, pHandle),
	"eglGetConfigAttrib":      fn(boolean, pHandle, pHandle, pEnum, pHandle),
	"eglBindAPI":              fn(boolean, pEnum),
	"eglQueryAPI":             fn(enum),
	"eglCreateContext":        fn(handle, pHandle, pHandle, pHandle, pAttrib),
	"eglDestroyContext":       fn(boolean, pHandle, pHandle),
	"eglQueryContext":         fn(boolean, pHandle, pHandle, pEnum, pHandle),
	"eglCreateWindowSurface":  fn(handle, pHandle, pHandle, pHandle, pAttrib),
	"eglCreatePbufferSurface": fn(handle, pHandle, pHandle, pAttrib),
	"eglDestroySurface":       fn(boolean, pHandle, pHandle),
	"eglQuerySurface":         fn(boolean, pHandle, pHandle, pEnum, pHandle),
	"eglSurfaceAttrib":        fn(boolean, pHandle, pHandle, pEnum, pSint),
	"eglMakeCurrent":          fn(boolean, pHandle, pHandle, pHandle, pHandle),
	"eglSwapBuffers":          fn(boolean, pHandle, pHandle),
	"eglSwapInterval":         fn(boolean, pHandle, pSint),
	"eglGetCurrentContext":    fn(handle),
	"eglGetCurrentSurface":    fn(handle, pEnum),
	"eglGetCurrentDisplay":    fn(handle),
	"eglWaitClient":           fn(boolean),
	"eglWaitGL":               fn(boolean),
	"eglWaitNative":           fn(boolean, pEnum),
	"eglReleaseThread":        fn(boolean),
	"eglGetProcAddress":       fn(handle, pString),

	// GL state and objects
	"glGetError":                 fn(enum),
	"glFlush":                    fn(void),
	"glFinish":                   fn(void),
	"glEnable":                   fn(void, pEnum),
	"glDisable":                  fn(void, pEnum),
	"glClear":                    fn(void, pUint),
	"glViewport":                 fn(void, pSint, pSint, pSint, pSint),
	"glPixelStorei":              fn(void, pEnum, pSint),
	"glGenBuffers":               fn(void, pSint, pHandle),
	"glDeleteBuffers":            fn(void, pSint, sized(words(0, 4))),
	"glBindBuffer":               fn(void, pEnum, pUint),
	"glBufferData":               fn(void, pEnum, p(sizeiptr), sized(bytesArg(1)), pEnum),
	"glBufferSubData":            fn(void, pEnum, p(sizeiptr), p(sizeiptr), sized(bytesArg(2))),
	"glGenTextures":              fn(void, pSint, pHandle),
	"glDeleteTextures":           fn(void, pSint, sized(words(0, 4))),
	"glBindTexture":              fn(void, pEnum, pUint),
	"glActiveTexture":            fn(void, pEnum),
	"glUseProgram":               fn(void, pUint),
	"glEnableVertexAttribArray":  fn(void, pUint),
	"glDisableVertexAttribArray": fn(void, pUint),
	"glCallLists": fn(void, pSint, pEnum, sized(func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		return size.CallListsSize(ctx, i32(args, 0), glenum(args, 1))
	})),
	"glClearBufferiv": fn(void, pEnum, pSint, sized(func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		return size.ClearBufferSize(ctx, glenum(args, 0)) * 4
	})),
	"glClearBufferuiv": fn(void, pEnum, pSint, sized(func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		return size.ClearBufferSize(ctx, glenum(args, 0)) * 4
	})),
	"glClearBufferfv": fn(void, pEnum, pSint, sized(func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
		return size.ClearBufferSize(ctx, glenum(args, 0)) * 4
	})),

	// Uniform arrays
	"glUniform1iv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_INT)),
	"glUniform2iv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_INT_VEC2)),
	"glUniform3iv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_INT_VEC3)),
	"glUniform4iv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_INT_VEC4)),
	"glUniform1fv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_FLOAT)),
	"glUniform2fv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_FLOAT_VEC2)),
	"glUniform3fv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_FLOAT_VEC3)),
	"glUniform4fv":       fn(void, pSint, pSint, uniform(gles.GLenum_GL_FLOAT_VEC4)),
	"glUniformMatrix2fv": uniformMatrix(gles.GLenum_GL_FLOAT_MAT2),
	"glUniformMatrix3fv": uniformMatrix(gles.GLenum_GL_FLOAT_MAT3),
	"glUniformMatrix4fv": uniformMatrix(gles.GLenum_GL_FLOAT_MAT4),

	// Images
	"glTexImage1D": fn(void, pEnum, pSint, pSint, pSint, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.TexImage1DSize(ctx, glenum(args, 5), glenum(args, 6), i32(args, 3))
		})),
	"glTexImage2D": fn(void, pEnum, pSint, pSint, pSint, pSint, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.TexImage2DSize(ctx, glenum(args, 6), glenum(args, 7), i32(args, 3), i32(args, 4))
		})),
	"glTexSubImage2D": fn(void, pEnum, pSint, pSint, pSint, pSint, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.TexImage2DSize(ctx, glenum(args, 6), glenum(args, 7), i32(args, 4), i32(args, 5))
		})),
	"glTexImage3D": fn(void, pEnum, pSint, pSint, pSint, pSint, pSint, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.TexImage3DSize(ctx, glenum(args, 7), glenum(args, 8), i32(args, 3), i32(args, 4), i32(args, 5))
		})),
	"glDrawPixels": fn(void, pSint, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.DrawPixelsSize(ctx, i32(args, 0), i32(args, 1), glenum(args, 2), glenum(args, 3))
		})),
	"glPolygonStipple": fn(void, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.PolygonStippleSize(ctx)
		})),
	"glColorTable": fn(void, pEnum, pEnum, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.ColorTableSize(ctx, glenum(args, 3), glenum(args, 4), i32(args, 2))
		})),
	"glConvolutionFilter1D": fn(void, pEnum, pEnum, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.ConvolutionFilter1DSize(ctx, glenum(args, 3), glenum(args, 4), i32(args, 2))
		})),
	"glConvolutionFilter2D": fn(void, pEnum, pEnum, pSint, pSint, pEnum, pEnum, pixels(
		func(ctx context.Context, r *size.Resolver, args []uint64) uint64 {
			return r.ConvolutionFilter2DSize(ctx, glenum(args, 4), glenum(args, 5), i32(args, 2), i32(args, 3))
		})),

	// Client vertex arrays
	"glVertexAttribPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.VertexAttribPointerSize(ctx, i32(args, 1), glenum(args, 2), args[3] != 0, i32(args, 4), maxIndex)
	}, pUint, pSint, pEnum, pBool, pSint),
	"glVertexPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.VertexPointerSize(ctx, i32(args, 0), glenum(args, 1), i32(args, 2), maxIndex)
	}, pSint, pEnum, pSint),
	"glNormalPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.NormalPointerSize(ctx, glenum(args, 0), i32(args, 1), maxIndex)
	}, pEnum, pSint),
	"glColorPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.ColorPointerSize(ctx, i32(args, 0), glenum(args, 1), i32(args, 2), maxIndex)
	}, pSint, pEnum, pSint),
	"glIndexPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.IndexPointerSize(ctx, glenum(args, 0), i32(args, 1), maxIndex)
	}, pEnum, pSint),
	"glTexCoordPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.TexCoordPointerSize(ctx, i32(args, 0), glenum(args, 1), i32(args, 2), maxIndex)
	}, pSint, pEnum, pSint),
	"glEdgeFlagPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.EdgeFlagPointerSize(ctx, i32(args, 0), maxIndex)
	}, pSint),
	"glFogCoordPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.FogCoordPointerSize(ctx, glenum(args, 0), i32(args, 1), maxIndex)
	}, pEnum, pSint),
	"glSecondaryColorPointer": array(func(ctx context.Context, args []uint64, maxIndex uint32) uint64 {
		return size.SecondaryColorPointerSize(ctx, i32(args, 0), glenum(args, 1), i32(args, 2), maxIndex)
	}, pSint, pEnum, pSint),

	// Draws
	"glDrawArrays": draw(func(ctx context.Context, r *size.Resolver, args []uint64) uint32 {
		return size.DrawArraysMaxIndex(i32(args, 1), i32(args, 2))
	}, pEnum, pSint, pSint),
	"glDrawArraysInstanced": draw(func(ctx context.Context, r *size.Resolver, args []uint64) uint32 {
		return size.DrawArraysInstancedMaxIndex(i32(args, 1), i32(args, 2), i32(args, 3))
	}, pEnum, pSint, pSint, pSint),
	"glDrawElements":           draw(drawElements(1, 2, 3, -1), pEnum, pSint, pEnum, indices(1, 2)),
	"glDrawElementsBaseVertex": draw(drawElements(1, 2, 3, 4), pEnum, pSint, pEnum, indices(1, 2), pSint),
	"glDrawElementsInstanced":  draw(drawElements(1, 2, 3, -1), pEnum, pSint, pEnum, indices(1, 2), pSint),
	"glDrawRangeElements": draw(func(ctx context.Context, r *size.Resolver, args []uint64) uint32 {
		return r.DrawRangeElementsMaxIndex(ctx, uint32(args[1]), uint32(args[2]), i32(args, 3), glenum(args, 4), args[5])
	}, pEnum, pUint, pUint, pSint, pEnum, indices(3, 4)),
}

// Supported returns true if calls to name are recorded with typed
// arguments.
func Supported(name string) bool {
	_, ok := signatures[name]
	return ok
}
