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

package gles

import (
	"context"

	"github.com/gfxreplay/glretrace/core/log"
)

// unknownEnum reports an enum that the function fn has no entry for.
// It is advisory only.
func unknownEnum(ctx context.Context, fn string, e GLenum) {
	log.W(ctx, "%s: unknown GLenum 0x%04X", fn, uint32(e))
}

// DataTypeSize returns the size in bytes of the the specified data type.
// Unknown types log a warning and return 0.
func DataTypeSize(ctx context.Context, t GLenum) int {
	switch t {
	case GLenum_GL_BOOL,
		GLenum_GL_BYTE,
		GLenum_GL_UNSIGNED_BYTE:
		return 1
	case GLenum_GL_SHORT,
		GLenum_GL_UNSIGNED_SHORT,
		GLenum_GL_2_BYTES,
		GLenum_GL_HALF_FLOAT,
		GLenum_GL_HALF_FLOAT_OES:
		return 2
	case GLenum_GL_3_BYTES:
		return 3
	case GLenum_GL_INT,
		GLenum_GL_UNSIGNED_INT,
		GLenum_GL_FLOAT,
		GLenum_GL_4_BYTES,
		GLenum_GL_FIXED:
		return 4
	case GLenum_GL_DOUBLE:
		return 8
	default:
		unknownEnum(ctx, "DataTypeSize", t)
		return 0
	}
}

// UniformShape decomposes the shader uniform type t into its scalar element
// type and the number of elements. Samplers are a single GL_INT.
// Unknown types log a warning and return (GL_NONE, 0).
func UniformShape(ctx context.Context, t GLenum) (elem GLenum, count int) {
	switch t {
	case GLenum_GL_FLOAT:
		return GLenum_GL_FLOAT, 1
	case GLenum_GL_FLOAT_VEC2:
		return GLenum_GL_FLOAT, 2
	case GLenum_GL_FLOAT_VEC3:
		return GLenum_GL_FLOAT, 3
	case GLenum_GL_FLOAT_VEC4:
		return GLenum_GL_FLOAT, 4
	case GLenum_GL_DOUBLE:
		return GLenum_GL_DOUBLE, 1
	case GLenum_GL_DOUBLE_VEC2:
		return GLenum_GL_DOUBLE, 2
	case GLenum_GL_DOUBLE_VEC3:
		return GLenum_GL_DOUBLE, 3
	case GLenum_GL_DOUBLE_VEC4:
		return GLenum_GL_DOUBLE, 4
	case GLenum_GL_INT:
		return GLenum_GL_INT, 1
	case GLenum_GL_INT_VEC2:
		return GLenum_GL_INT, 2
	case GLenum_GL_INT_VEC3:
		return GLenum_GL_INT, 3
	case GLenum_GL_INT_VEC4:
		return GLenum_GL_INT, 4
	case GLenum_GL_UNSIGNED_INT:
		return GLenum_GL_UNSIGNED_INT, 1
	case GLenum_GL_UNSIGNED_INT_VEC2:
		return GLenum_GL_UNSIGNED_INT, 2
	case GLenum_GL_UNSIGNED_INT_VEC3:
		return GLenum_GL_UNSIGNED_INT, 3
	case GLenum_GL_UNSIGNED_INT_VEC4:
		return GLenum_GL_UNSIGNED_INT, 4
	case GLenum_GL_BOOL:
		return GLenum_GL_BOOL, 1
	case GLenum_GL_BOOL_VEC2:
		return GLenum_GL_BOOL, 2
	case GLenum_GL_BOOL_VEC3:
		return GLenum_GL_BOOL, 3
	case GLenum_GL_BOOL_VEC4:
		return GLenum_GL_BOOL, 4
	}
	if cols, rows, ok := matrixShape(t); ok {
		elem := GLenum_GL_FLOAT
		if t >= GLenum_GL_DOUBLE_MAT2 && t <= GLenum_GL_DOUBLE_MAT4x3 {
			elem = GLenum_GL_DOUBLE
		}
		return elem, cols * rows
	}
	if isSampler(t) {
		return GLenum_GL_INT, 1
	}
	unknownEnum(ctx, "UniformShape", t)
	return GLenum_GL_NONE, 0
}

// matrixShape returns the column and row counts of a float or double matrix
// uniform type.
func matrixShape(t GLenum) (cols, rows int, ok bool) {
	switch t {
	case GLenum_GL_FLOAT_MAT2, GLenum_GL_DOUBLE_MAT2:
		return 2, 2, true
	case GLenum_GL_FLOAT_MAT3, GLenum_GL_DOUBLE_MAT3:
		return 3, 3, true
	case GLenum_GL_FLOAT_MAT4, GLenum_GL_DOUBLE_MAT4:
		return 4, 4, true
	case GLenum_GL_FLOAT_MAT2x3, GLenum_GL_DOUBLE_MAT2x3:
		return 2, 3, true
	case GLenum_GL_FLOAT_MAT2x4, GLenum_GL_DOUBLE_MAT2x4:
		return 2, 4, true
	case GLenum_GL_FLOAT_MAT3x2, GLenum_GL_DOUBLE_MAT3x2:
		return 3, 2, true
	case GLenum_GL_FLOAT_MAT3x4, GLenum_GL_DOUBLE_MAT3x4:
		return 3, 4, true
	case GLenum_GL_FLOAT_MAT4x2, GLenum_GL_DOUBLE_MAT4x2:
		return 4, 2, true
	case GLenum_GL_FLOAT_MAT4x3, GLenum_GL_DOUBLE_MAT4x3:
		return 4, 3, true
	}
	return 0, 0, false
}

func isSampler(t GLenum) bool {
	switch t {
	case GLenum_GL_SAMPLER_1D,
		GLenum_GL_SAMPLER_2D,
		GLenum_GL_SAMPLER_3D,
		GLenum_GL_SAMPLER_CUBE,
		GLenum_GL_SAMPLER_1D_SHADOW,
		GLenum_GL_SAMPLER_2D_SHADOW,
		GLenum_GL_SAMPLER_2D_RECT,
		GLenum_GL_SAMPLER_2D_RECT_SHADOW,
		GLenum_GL_SAMPLER_1D_ARRAY,
		GLenum_GL_SAMPLER_2D_ARRAY,
		GLenum_GL_SAMPLER_BUFFER,
		GLenum_GL_SAMPLER_1D_ARRAY_SHADOW,
		GLenum_GL_SAMPLER_2D_ARRAY_SHADOW,
		GLenum_GL_SAMPLER_CUBE_SHADOW,
		GLenum_GL_SAMPLER_CUBE_MAP_ARRAY,
		GLenum_GL_SAMPLER_CUBE_MAP_ARRAY_SHADOW,
		GLenum_GL_SAMPLER_2D_MULTISAMPLE,
		GLenum_GL_SAMPLER_2D_MULTISAMPLE_ARRAY,
		GLenum_GL_INT_SAMPLER_1D,
		GLenum_GL_INT_SAMPLER_2D,
		GLenum_GL_INT_SAMPLER_3D,
		GLenum_GL_INT_SAMPLER_CUBE,
		GLenum_GL_INT_SAMPLER_2D_RECT,
		GLenum_GL_INT_SAMPLER_1D_ARRAY,
		GLenum_GL_INT_SAMPLER_2D_ARRAY,
		GLenum_GL_INT_SAMPLER_BUFFER,
		GLenum_GL_INT_SAMPLER_CUBE_MAP_ARRAY,
		GLenum_GL_INT_SAMPLER_2D_MULTISAMPLE,
		GLenum_GL_INT_SAMPLER_2D_MULTISAMPLE_ARRAY,
		GLenum_GL_UNSIGNED_INT_SAMPLER_1D,
		GLenum_GL_UNSIGNED_INT_SAMPLER_2D,
		GLenum_GL_UNSIGNED_INT_SAMPLER_3D,
		GLenum_GL_UNSIGNED_INT_SAMPLER_CUBE,
		GLenum_GL_UNSIGNED_INT_SAMPLER_2D_RECT,
		GLenum_GL_UNSIGNED_INT_SAMPLER_1D_ARRAY,
		GLenum_GL_UNSIGNED_INT_SAMPLER_2D_ARRAY,
		GLenum_GL_UNSIGNED_INT_SAMPLER_BUFFER,
		GLenum_GL_UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY,
		GLenum_GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE,
		GLenum_GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY:
		return true
	}
	return false
}

// FormatChannels returns the number of channels held by each pixel of the
// given format. Unknown formats log a warning and return 0.
func FormatChannels(ctx context.Context, format GLenum) int {
	switch format {
	case GLenum_GL_COLOR_INDEX,
		GLenum_GL_RED,
		GLenum_GL_GREEN,
		GLenum_GL_BLUE,
		GLenum_GL_ALPHA,
		GLenum_GL_INTENSITY,
		GLenum_GL_LUMINANCE,
		GLenum_GL_DEPTH_COMPONENT,
		GLenum_GL_STENCIL_INDEX,
		GLenum_GL_RED_INTEGER,
		GLenum_GL_GREEN_INTEGER,
		GLenum_GL_BLUE_INTEGER,
		GLenum_GL_ALPHA_INTEGER:
		return 1
	case GLenum_GL_DEPTH_STENCIL,
		GLenum_GL_LUMINANCE_ALPHA,
		GLenum_GL_RG,
		GLenum_GL_RG_INTEGER,
		GLenum_GL_HILO_NV,
		GLenum_GL_DSDT_NV:
		return 2
	case GLenum_GL_RGB,
		GLenum_GL_BGR,
		GLenum_GL_RGB_INTEGER,
		GLenum_GL_BGR_INTEGER,
		GLenum_GL_DSDT_MAG_NV:
		return 3
	case GLenum_GL_RGBA,
		GLenum_GL_BGRA,
		GLenum_GL_RGBA_INTEGER,
		GLenum_GL_BGRA_INTEGER,
		GLenum_GL_ABGR_EXT,
		GLenum_GL_CMYK_EXT,
		GLenum_GL_DSDT_MAG_VIB_NV:
		return 4
	case GLenum_GL_CMYKA_EXT:
		return 5
	default:
		unknownEnum(ctx, "FormatChannels", format)
		return 0
	}
}

// BitsPerPixel returns the number of bits each pixel of the given format and
// type occupies in client memory.
// unit is the size in bits of the element that row alignment applies to: a
// single component for plain types, the whole pixel for packed types.
// Unknown types log a warning and return zeros.
func BitsPerPixel(ctx context.Context, format, ty GLenum) (bits, unit int) {
	switch ty {
	case GLenum_GL_BITMAP:
		return 1, 1
	case GLenum_GL_BYTE,
		GLenum_GL_UNSIGNED_BYTE:
		return 8 * FormatChannels(ctx, format), 8
	case GLenum_GL_SHORT,
		GLenum_GL_UNSIGNED_SHORT,
		GLenum_GL_HALF_FLOAT,
		GLenum_GL_HALF_FLOAT_OES:
		return 16 * FormatChannels(ctx, format), 16
	case GLenum_GL_INT,
		GLenum_GL_UNSIGNED_INT,
		GLenum_GL_FLOAT:
		return 32 * FormatChannels(ctx, format), 32
	case GLenum_GL_UNSIGNED_BYTE_3_3_2,
		GLenum_GL_UNSIGNED_BYTE_2_3_3_REV:
		return 8, 8
	case GLenum_GL_UNSIGNED_SHORT_4_4_4_4,
		GLenum_GL_UNSIGNED_SHORT_4_4_4_4_REV,
		GLenum_GL_UNSIGNED_SHORT_5_5_5_1,
		GLenum_GL_UNSIGNED_SHORT_1_5_5_5_REV,
		GLenum_GL_UNSIGNED_SHORT_5_6_5,
		GLenum_GL_UNSIGNED_SHORT_5_6_5_REV,
		GLenum_GL_UNSIGNED_SHORT_8_8_MESA,
		GLenum_GL_UNSIGNED_SHORT_8_8_REV_MESA:
		return 16, 16
	case GLenum_GL_UNSIGNED_INT_8_8_8_8,
		GLenum_GL_UNSIGNED_INT_8_8_8_8_REV,
		GLenum_GL_UNSIGNED_INT_10_10_10_2,
		GLenum_GL_UNSIGNED_INT_2_10_10_10_REV,
		GLenum_GL_UNSIGNED_INT_24_8,
		GLenum_GL_UNSIGNED_INT_10F_11F_11F_REV,
		GLenum_GL_UNSIGNED_INT_5_9_9_9_REV,
		GLenum_GL_UNSIGNED_INT_S8_S8_8_8_NV,
		GLenum_GL_UNSIGNED_INT_8_8_S8_S8_REV_NV:
		return 32, 32
	case GLenum_GL_FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 64, 64
	default:
		unknownEnum(ctx, "BitsPerPixel", ty)
		return 0, 0
	}
}

// MapChannels returns the number of values per control point of the
// evaluator map target. Unknown targets log a warning and return 0.
func MapChannels(ctx context.Context, target GLenum) int {
	switch target {
	case GLenum_GL_MAP1_INDEX, GLenum_GL_MAP1_TEXTURE_COORD_1,
		GLenum_GL_MAP2_INDEX, GLenum_GL_MAP2_TEXTURE_COORD_1:
		return 1
	case GLenum_GL_MAP1_TEXTURE_COORD_2,
		GLenum_GL_MAP2_TEXTURE_COORD_2:
		return 2
	case GLenum_GL_MAP1_NORMAL, GLenum_GL_MAP1_TEXTURE_COORD_3, GLenum_GL_MAP1_VERTEX_3,
		GLenum_GL_MAP2_NORMAL, GLenum_GL_MAP2_TEXTURE_COORD_3, GLenum_GL_MAP2_VERTEX_3:
		return 3
	case GLenum_GL_MAP1_COLOR_4, GLenum_GL_MAP1_TEXTURE_COORD_4, GLenum_GL_MAP1_VERTEX_4,
		GLenum_GL_MAP2_COLOR_4, GLenum_GL_MAP2_TEXTURE_COORD_4, GLenum_GL_MAP2_VERTEX_4:
		return 4
	default:
		unknownEnum(ctx, "MapChannels", target)
		return 0
	}
}

// ClearBufferSize returns the number of values a glClearBuffer call reads for
// the given buffer. Unknown buffers log a warning and return 0.
func ClearBufferSize(ctx context.Context, buffer GLenum) int {
	switch buffer {
	case GLenum_GL_COLOR,
		GLenum_GL_FRONT,
		GLenum_GL_BACK,
		GLenum_GL_LEFT,
		GLenum_GL_RIGHT,
		GLenum_GL_FRONT_AND_BACK:
		return 4
	case GLenum_GL_DEPTH,
		GLenum_GL_STENCIL:
		return 1
	default:
		unknownEnum(ctx, "ClearBufferSize", buffer)
		return 0
	}
}
