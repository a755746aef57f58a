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

package size_test

import (
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/api/gles/size"
)

func TestArrayPointerSize(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	for _, test := range []struct {
		name     string
		size     int32
		ty       gles.GLenum
		stride   int32
		maxIndex uint32
		expect   uint64
	}{
		{"packed", 3, gles.GLenum_GL_FLOAT, 0, 9, 120},
		{"strided", 3, gles.GLenum_GL_FLOAT, 16, 2, 44},
		{"single", 4, gles.GLenum_GL_UNSIGNED_BYTE, 0, 0, 4},
		{"shorts", 2, gles.GLenum_GL_SHORT, 8, 3, 28},
		{"negative stride", 2, gles.GLenum_GL_SHORT, -8, 3, 0},
	} {
		got := size.ArrayPointerSize(ctx, test.size, test.ty, test.stride, test.maxIndex)
		assert.For(test.name).That(got).Equals(test.expect)
	}
	assert.For("normal").That(size.NormalPointerSize(ctx, gles.GLenum_GL_FLOAT, 0, 1)).Equals(uint64(24))
	assert.For("edge flag").That(size.EdgeFlagPointerSize(ctx, 0, 4)).Equals(uint64(5))
	assert.For("index").That(size.IndexPointerSize(ctx, gles.GLenum_GL_UNSIGNED_SHORT, 4, 2)).Equals(uint64(10))
	assert.For("attrib").That(size.VertexAttribPointerSize(ctx, 4, gles.GLenum_GL_UNSIGNED_BYTE, true, 0, 1)).Equals(uint64(8))
}

func TestArrayPointerSizeUnknownType(t *testing.T) {
	ctx, rec := log.Record(log.Testing(t))
	assert := assert.To(t)
	got := size.ArrayPointerSize(ctx, 3, gles.GLenum_GL_RGBA, 0, 9)
	assert.For("size").That(got).Equals(uint64(0))
	assert.For("diagnostics").ThatSlice(rec.Texts(log.Warning)).Equals([]string{
		"DataTypeSize: unknown GLenum 0x1908",
	})
}

func TestDrawArraysMaxIndex(t *testing.T) {
	assert := assert.To(t)
	assert.For("triangle").That(size.DrawArraysMaxIndex(0, 3)).Equals(uint32(2))
	assert.For("offset").That(size.DrawArraysMaxIndex(2, 4)).Equals(uint32(5))
	assert.For("empty").That(size.DrawArraysMaxIndex(5, 0)).Equals(uint32(0))
	assert.For("instanced").That(size.DrawArraysInstancedMaxIndex(2, 4, 100)).Equals(uint32(5))
	assert.For("multi").That(size.MultiDrawArraysMaxIndex([]int32{0, 10, 4}, []int32{3, 2, 0})).Equals(uint32(11))
}

func TestDrawElementsMaxIndexFromMemory(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	r := &size.Resolver{
		State:  newFakeState(),
		Memory: size.Region{Base: 0x1000, Data: shortsOf(3, 1, 4, 1, 5, 9, 2, 6)},
	}
	assert.For("max").That(r.DrawElementsMaxIndex(ctx, 8, gles.GLenum_GL_UNSIGNED_SHORT, 0x1000, 0)).Equals(uint32(9))
	assert.For("base vertex").That(r.DrawElementsMaxIndex(ctx, 8, gles.GLenum_GL_UNSIGNED_SHORT, 0x1000, 10)).Equals(uint32(19))
	assert.For("prefix").That(r.DrawElementsMaxIndex(ctx, 3, gles.GLenum_GL_UNSIGNED_SHORT, 0x1000, 0)).Equals(uint32(4))
	assert.For("offset").That(r.DrawElementsMaxIndex(ctx, 2, gles.GLenum_GL_UNSIGNED_SHORT, 0x100C, 0)).Equals(uint32(6))
	assert.For("null").That(r.DrawElementsMaxIndex(ctx, 8, gles.GLenum_GL_UNSIGNED_SHORT, 0, 10)).Equals(uint32(0))
	assert.For("empty").That(r.DrawElementsMaxIndex(ctx, 0, gles.GLenum_GL_UNSIGNED_SHORT, 0x1000, 10)).Equals(uint32(0))
}

func TestDrawElementsMaxIndexFromBuffer(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	state := newFakeState()
	state.ints[gles.GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING] = 1
	r := &size.Resolver{State: state}

	for _, test := range []struct {
		name string
		ty   gles.GLenum
		data []byte
	}{
		{"bytes", gles.GLenum_GL_UNSIGNED_BYTE, bytesOf(3, 1, 4, 1, 5, 9, 2, 6)},
		{"shorts", gles.GLenum_GL_UNSIGNED_SHORT, shortsOf(3, 1, 4, 1, 5, 9, 2, 6)},
		{"ints", gles.GLenum_GL_UNSIGNED_INT, intsOf(3, 1, 4, 1, 5, 9, 2, 6)},
	} {
		state.buffers[gles.GLenum_GL_ELEMENT_ARRAY_BUFFER] = test.data
		assert.For(test.name).That(r.DrawElementsMaxIndex(ctx, 8, test.ty, 0, 0)).Equals(uint32(9))
		assert.For("%s base vertex", test.name).That(r.DrawElementsMaxIndex(ctx, 8, test.ty, 0, 10)).Equals(uint32(19))
	}

	state.buffers[gles.GLenum_GL_ELEMENT_ARRAY_BUFFER] = shortsOf(3, 1, 4, 1, 5, 9, 2, 6)
	assert.For("range").That(r.DrawRangeElementsMaxIndex(ctx, 0, 100, 8, gles.GLenum_GL_UNSIGNED_SHORT, 0)).Equals(uint32(9))
	assert.For("instanced").That(r.DrawElementsInstancedBaseVertexMaxIndex(ctx, 8, gles.GLenum_GL_UNSIGNED_SHORT, 0, 4, 10)).Equals(uint32(19))
	assert.For("multi").That(r.MultiDrawElementsBaseVertexMaxIndex(ctx,
		[]int32{2, 2}, gles.GLenum_GL_UNSIGNED_SHORT, []uint64{0, 8}, []int32{100, 0})).Equals(uint32(103))
	assert.For("multi no base").That(r.MultiDrawElementsMaxIndex(ctx,
		[]int32{2, 2}, gles.GLenum_GL_UNSIGNED_SHORT, []uint64{0, 8})).Equals(uint32(9))
}

func TestDrawElementsMaxIndexDiagnostics(t *testing.T) {
	ctx, rec := log.Record(log.Testing(t))
	assert := assert.To(t)
	r := &size.Resolver{
		State:  newFakeState(),
		Memory: size.Region{Base: 0x1000, Data: shortsOf(3, 1)},
	}
	assert.For("unknown type").That(r.DrawElementsMaxIndex(ctx, 8, gles.GLenum_GL_FLOAT, 0x1000, 10)).Equals(uint32(10))
	assert.For("short read").That(r.DrawElementsMaxIndex(ctx, 8, gles.GLenum_GL_UNSIGNED_SHORT, 0x1000, 0)).Equals(uint32(0))
	assert.For("arrays indirect").That(size.DrawArraysIndirectMaxIndex(ctx, 0x10)).Equals(uint32(0))
	assert.For("elements indirect").That(r.DrawElementsIndirectMaxIndex(ctx, gles.GLenum_GL_UNSIGNED_INT, 0x10)).Equals(uint32(0))
	assert.For("diagnostics").ThatSlice(rec.Texts(log.Warning)).Equals([]string{
		"DrawElementsMaxIndex: unknown GLenum 0x1406",
		"DrawElementsMaxIndex: only 0 of 16 index bytes readable at 0x1000",
		"DrawArraysIndirectMaxIndex: unsupported",
		"DrawElementsIndirectMaxIndex: unsupported",
	})
}
