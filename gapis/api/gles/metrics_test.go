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

package gles_test

import (
	"context"
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

func TestDataTypeSize(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	for _, test := range []struct {
		ty     gles.GLenum
		expect int
	}{
		{gles.GLenum_GL_BOOL, 1},
		{gles.GLenum_GL_BYTE, 1},
		{gles.GLenum_GL_UNSIGNED_BYTE, 1},
		{gles.GLenum_GL_SHORT, 2},
		{gles.GLenum_GL_UNSIGNED_SHORT, 2},
		{gles.GLenum_GL_2_BYTES, 2},
		{gles.GLenum_GL_HALF_FLOAT, 2},
		{gles.GLenum_GL_HALF_FLOAT_OES, 2},
		{gles.GLenum_GL_3_BYTES, 3},
		{gles.GLenum_GL_INT, 4},
		{gles.GLenum_GL_UNSIGNED_INT, 4},
		{gles.GLenum_GL_FLOAT, 4},
		{gles.GLenum_GL_4_BYTES, 4},
		{gles.GLenum_GL_FIXED, 4},
		{gles.GLenum_GL_DOUBLE, 8},
	} {
		assert.For("%v", test.ty).ThatInteger(gles.DataTypeSize(ctx, test.ty)).Equals(test.expect)
	}
}

func TestUnknownEnumsWarnOnce(t *testing.T) {
	assert := assert.To(t)
	const bogus = gles.GLenum(0xBEEF)
	for _, test := range []struct {
		name string
		call func(ctx context.Context) int
	}{
		{"DataTypeSize", func(ctx context.Context) int { return gles.DataTypeSize(ctx, bogus) }},
		{"UniformShape", func(ctx context.Context) int { _, n := gles.UniformShape(ctx, bogus); return n }},
		{"FormatChannels", func(ctx context.Context) int { return gles.FormatChannels(ctx, bogus) }},
		{"BitsPerPixel", func(ctx context.Context) int { b, _ := gles.BitsPerPixel(ctx, gles.GLenum_GL_RGBA, bogus); return b }},
		{"MapChannels", func(ctx context.Context) int { return gles.MapChannels(ctx, bogus) }},
		{"ClearBufferSize", func(ctx context.Context) int { return gles.ClearBufferSize(ctx, bogus) }},
	} {
		ctx, rec := log.Record(context.Background())
		assert.For("%s result", test.name).ThatInteger(test.call(ctx)).Equals(0)
		assert.For("%s diagnostics", test.name).ThatSlice(rec.Texts(log.Verbose)).Equals(
			[]string{test.name + ": unknown GLenum 0xBEEF"})
		assert.For("%s severity", test.name).ThatInteger(rec.Count(log.Warning)).Equals(1)
	}
}

func TestUniformShape(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	for _, test := range []struct {
		ty    gles.GLenum
		elem  gles.GLenum
		count int
	}{
		{gles.GLenum_GL_FLOAT, gles.GLenum_GL_FLOAT, 1},
		{gles.GLenum_GL_FLOAT_VEC3, gles.GLenum_GL_FLOAT, 3},
		{gles.GLenum_GL_INT_VEC4, gles.GLenum_GL_INT, 4},
		{gles.GLenum_GL_UNSIGNED_INT_VEC2, gles.GLenum_GL_UNSIGNED_INT, 2},
		{gles.GLenum_GL_BOOL_VEC3, gles.GLenum_GL_BOOL, 3},
		{gles.GLenum_GL_DOUBLE_VEC4, gles.GLenum_GL_DOUBLE, 4},
		{gles.GLenum_GL_FLOAT_MAT2, gles.GLenum_GL_FLOAT, 4},
		{gles.GLenum_GL_FLOAT_MAT3, gles.GLenum_GL_FLOAT, 9},
		{gles.GLenum_GL_FLOAT_MAT4, gles.GLenum_GL_FLOAT, 16},
		{gles.GLenum_GL_FLOAT_MAT2x3, gles.GLenum_GL_FLOAT, 6},
		{gles.GLenum_GL_FLOAT_MAT3x4, gles.GLenum_GL_FLOAT, 12},
		{gles.GLenum_GL_FLOAT_MAT4x2, gles.GLenum_GL_FLOAT, 8},
		{gles.GLenum_GL_DOUBLE_MAT3x4, gles.GLenum_GL_DOUBLE, 12},
		{gles.GLenum_GL_DOUBLE_MAT4, gles.GLenum_GL_DOUBLE, 16},
		{gles.GLenum_GL_SAMPLER_2D, gles.GLenum_GL_INT, 1},
		{gles.GLenum_GL_UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY, gles.GLenum_GL_INT, 1},
		{gles.GLenum_GL_INT_SAMPLER_2D_MULTISAMPLE_ARRAY, gles.GLenum_GL_INT, 1},
	} {
		elem, count := gles.UniformShape(ctx, test.ty)
		assert.For("%v elem", test.ty).That(elem).Equals(test.elem)
		assert.For("%v count", test.ty).ThatInteger(count).Equals(test.count)
	}
}

func TestFormatChannels(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	for _, test := range []struct {
		format gles.GLenum
		expect int
	}{
		{gles.GLenum_GL_ALPHA, 1},
		{gles.GLenum_GL_STENCIL_INDEX, 1},
		{gles.GLenum_GL_LUMINANCE_ALPHA, 2},
		{gles.GLenum_GL_DEPTH_STENCIL, 2},
		{gles.GLenum_GL_RGB, 3},
		{gles.GLenum_GL_BGR, 3},
		{gles.GLenum_GL_RGBA, 4},
		{gles.GLenum_GL_ABGR_EXT, 4},
		{gles.GLenum_GL_RGBA_INTEGER, 4},
		{gles.GLenum_GL_CMYKA_EXT, 5},
	} {
		assert.For("%v", test.format).ThatInteger(gles.FormatChannels(ctx, test.format)).Equals(test.expect)
	}
}

func TestBitsPerPixel(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	for _, test := range []struct {
		format, ty gles.GLenum
		bits, unit int
	}{
		{gles.GLenum_GL_RGBA, gles.GLenum_GL_UNSIGNED_BYTE, 32, 8},
		{gles.GLenum_GL_RGB, gles.GLenum_GL_UNSIGNED_BYTE, 24, 8},
		{gles.GLenum_GL_RG, gles.GLenum_GL_HALF_FLOAT, 32, 16},
		{gles.GLenum_GL_RGBA, gles.GLenum_GL_FLOAT, 128, 32},
		{gles.GLenum_GL_COLOR_INDEX, gles.GLenum_GL_BITMAP, 1, 1},
		{gles.GLenum_GL_RGB, gles.GLenum_GL_UNSIGNED_BYTE_3_3_2, 8, 8},
		{gles.GLenum_GL_RGB, gles.GLenum_GL_UNSIGNED_SHORT_5_6_5, 16, 16},
		{gles.GLenum_GL_RGBA, gles.GLenum_GL_UNSIGNED_INT_8_8_8_8_REV, 32, 32},
		{gles.GLenum_GL_DEPTH_STENCIL, gles.GLenum_GL_UNSIGNED_INT_24_8, 32, 32},
		{gles.GLenum_GL_DEPTH_STENCIL, gles.GLenum_GL_FLOAT_32_UNSIGNED_INT_24_8_REV, 64, 64},
	} {
		bits, unit := gles.BitsPerPixel(ctx, test.format, test.ty)
		assert.For("%v/%v bits", test.format, test.ty).ThatInteger(bits).Equals(test.bits)
		assert.For("%v/%v unit", test.format, test.ty).ThatInteger(unit).Equals(test.unit)
	}
}

func TestMapAndClearBuffer(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	assert.For("map1 index").ThatInteger(gles.MapChannels(ctx, gles.GLenum_GL_MAP1_INDEX)).Equals(1)
	assert.For("map2 texcoord2").ThatInteger(gles.MapChannels(ctx, gles.GLenum_GL_MAP2_TEXTURE_COORD_2)).Equals(2)
	assert.For("map1 vertex3").ThatInteger(gles.MapChannels(ctx, gles.GLenum_GL_MAP1_VERTEX_3)).Equals(3)
	assert.For("map2 color4").ThatInteger(gles.MapChannels(ctx, gles.GLenum_GL_MAP2_COLOR_4)).Equals(4)
	assert.For("color").ThatInteger(gles.ClearBufferSize(ctx, gles.GLenum_GL_COLOR)).Equals(4)
	assert.For("front and back").ThatInteger(gles.ClearBufferSize(ctx, gles.GLenum_GL_FRONT_AND_BACK)).Equals(4)
	assert.For("depth").ThatInteger(gles.ClearBufferSize(ctx, gles.GLenum_GL_DEPTH)).Equals(1)
}

func TestEnumNames(t *testing.T) {
	assert := assert.To(t)
	assert.For("string").ThatString(gles.GLenum_GL_UNPACK_ALIGNMENT).Equals("GL_UNPACK_ALIGNMENT")
	assert.For("unknown").ThatString(gles.GLenum(0xBEEF)).Equals("GLenum(0xBEEF)")
	assert.For("zero").ThatString(gles.GLenum(0)).Equals("GL_NONE")
	e, ok := gles.ParseGLenum("TRIANGLES")
	assert.For("parse ok").ThatBoolean(ok).IsTrue()
	assert.For("parse").That(e).Equals(gles.GLenum_GL_TRIANGLES)
	_, ok = gles.ParseGLenum("GL_NOT_AN_ENUM")
	assert.For("parse missing").ThatBoolean(ok).IsFalse()
}
