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

package size

import (
	"bytes"
	"context"
	eb "encoding/binary"

	"github.com/gfxreplay/glretrace/core/data/binary"
	"github.com/gfxreplay/glretrace/core/data/endian"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

// ArrayPointerSize returns the number of bytes spanned by a vertex array of
// size components of type ty, stride bytes apart, that is read up to the
// vertex maxIndex. A stride of 0 means tightly packed.
func ArrayPointerSize(ctx context.Context, size int32, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	if size < 0 || stride < 0 {
		return 0
	}
	elementSize := uint64(size) * uint64(gles.DataTypeSize(ctx, ty))
	s := uint64(stride)
	if s == 0 {
		s = elementSize
	}
	return s*uint64(maxIndex) + elementSize
}

// VertexPointerSize is the size of the glVertexPointer array.
func VertexPointerSize(ctx context.Context, size int32, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, size, ty, stride, maxIndex)
}

// NormalPointerSize is the size of the glNormalPointer array.
func NormalPointerSize(ctx context.Context, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, 3, ty, stride, maxIndex)
}

// ColorPointerSize is the size of the glColorPointer array.
func ColorPointerSize(ctx context.Context, size int32, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, size, ty, stride, maxIndex)
}

// IndexPointerSize is the size of the glIndexPointer array.
func IndexPointerSize(ctx context.Context, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, 1, ty, stride, maxIndex)
}

// TexCoordPointerSize is the size of the glTexCoordPointer array.
func TexCoordPointerSize(ctx context.Context, size int32, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, size, ty, stride, maxIndex)
}

// EdgeFlagPointerSize is the size of the glEdgeFlagPointer array.
func EdgeFlagPointerSize(ctx context.Context, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, 1, gles.GLenum_GL_BOOL, stride, maxIndex)
}

// FogCoordPointerSize is the size of the glFogCoordPointer array.
func FogCoordPointerSize(ctx context.Context, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, 1, ty, stride, maxIndex)
}

// SecondaryColorPointerSize is the size of the glSecondaryColorPointer array.
func SecondaryColorPointerSize(ctx context.Context, size int32, ty gles.GLenum, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, size, ty, stride, maxIndex)
}

// VertexAttribPointerSize is the size of the glVertexAttribPointer array.
// Normalization does not change the client layout.
func VertexAttribPointerSize(ctx context.Context, size int32, ty gles.GLenum, normalized bool, stride int32, maxIndex uint32) uint64 {
	return ArrayPointerSize(ctx, size, ty, stride, maxIndex)
}

// DrawArraysMaxIndex returns the highest vertex index read by a glDrawArrays
// call.
func DrawArraysMaxIndex(first, count int32) uint32 {
	if count <= 0 {
		return 0
	}
	return uint32(first) + uint32(count) - 1
}

// DrawArraysInstancedMaxIndex ignores the instance count. Per-instance
// attribute divisors are not taken into account.
func DrawArraysInstancedMaxIndex(first, count, instances int32) uint32 {
	return DrawArraysMaxIndex(first, count)
}

// DrawArraysIndirectMaxIndex cannot see the draw parameters, which live in
// the indirect buffer, and always returns 0.
func DrawArraysIndirectMaxIndex(ctx context.Context, indirect uint64) uint32 {
	unsupported(ctx, "DrawArraysIndirectMaxIndex")
	return 0
}

// DrawElementsMaxIndex returns the highest vertex index read by a
// glDrawElements call, including baseVertex.
//
// If a buffer is bound to GL_ELEMENT_ARRAY_BUFFER, indices is an offset into
// it and the indices are read back from the buffer. Otherwise indices is a
// client address and the indices are read from the resolver's Memory.
func (r *Resolver) DrawElementsMaxIndex(ctx context.Context, count int32, ty gles.GLenum, indices uint64, baseVertex int32) uint32 {
	if count <= 0 {
		return 0
	}

	var bits int32
	switch ty {
	case gles.GLenum_GL_UNSIGNED_BYTE:
		bits = 8
	case gles.GLenum_GL_UNSIGNED_SHORT:
		bits = 16
	case gles.GLenum_GL_UNSIGNED_INT:
		bits = 32
	default:
		unknownEnum(ctx, "DrawElementsMaxIndex", ty)
		return uint32(baseVertex)
	}
	size := uint64(count) * uint64(bits/8)

	var data []byte
	if buffer := r.getInteger(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING); buffer != 0 {
		if r.State != nil {
			data = r.State.GetBufferSubData(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER, indices, size)
		}
	} else {
		if indices == 0 {
			return 0
		}
		if r.Memory != nil {
			data = r.Memory.Read(indices, size)
		}
	}
	if uint64(len(data)) < size {
		log.W(ctx, "DrawElementsMaxIndex: only %d of %d index bytes readable at 0x%x", len(data), size, indices)
	}

	reader := endian.Reader(bytes.NewReader(data), eb.LittleEndian)
	max := uint32(0)
	for i := int32(0); i < count; i++ {
		v := uint32(binary.ReadUint(reader, bits))
		if reader.Error() != nil {
			break
		}
		if v > max {
			max = v
		}
	}
	return max + uint32(baseVertex)
}

// DrawElementsBaseVertexMaxIndex is DrawElementsMaxIndex.
func (r *Resolver) DrawElementsBaseVertexMaxIndex(ctx context.Context, count int32, ty gles.GLenum, indices uint64, baseVertex int32) uint32 {
	return r.DrawElementsMaxIndex(ctx, count, ty, indices, baseVertex)
}

// DrawRangeElementsMaxIndex scans the indices rather than trusting end.
func (r *Resolver) DrawRangeElementsMaxIndex(ctx context.Context, start, end uint32, count int32, ty gles.GLenum, indices uint64) uint32 {
	return r.DrawElementsMaxIndex(ctx, count, ty, indices, 0)
}

// DrawRangeElementsBaseVertexMaxIndex scans the indices rather than trusting
// end.
func (r *Resolver) DrawRangeElementsBaseVertexMaxIndex(ctx context.Context, start, end uint32, count int32, ty gles.GLenum, indices uint64, baseVertex int32) uint32 {
	return r.DrawElementsMaxIndex(ctx, count, ty, indices, baseVertex)
}

// DrawElementsInstancedMaxIndex ignores the instance count.
func (r *Resolver) DrawElementsInstancedMaxIndex(ctx context.Context, count int32, ty gles.GLenum, indices uint64, instances int32) uint32 {
	return r.DrawElementsMaxIndex(ctx, count, ty, indices, 0)
}

// DrawElementsInstancedBaseVertexMaxIndex ignores the instance count.
func (r *Resolver) DrawElementsInstancedBaseVertexMaxIndex(ctx context.Context, count int32, ty gles.GLenum, indices uint64, instances, baseVertex int32) uint32 {
	return r.DrawElementsMaxIndex(ctx, count, ty, indices, baseVertex)
}

// DrawElementsInstancedBaseVertexBaseInstanceMaxIndex ignores the instance
// count and base instance.
func (r *Resolver) DrawElementsInstancedBaseVertexBaseInstanceMaxIndex(ctx context.Context, count int32, ty gles.GLenum, indices uint64, instances, baseVertex int32, baseInstance uint32) uint32 {
	return r.DrawElementsMaxIndex(ctx, count, ty, indices, baseVertex)
}

// DrawElementsIndirectMaxIndex cannot see the draw parameters, which live in
// the indirect buffer, and always returns 0.
func (r *Resolver) DrawElementsIndirectMaxIndex(ctx context.Context, ty gles.GLenum, indirect uint64) uint32 {
	unsupported(ctx, "DrawElementsIndirectMaxIndex")
	return 0
}

// MultiDrawArraysMaxIndex returns the highest vertex index read by any of the
// draws of a glMultiDrawArrays call.
func MultiDrawArraysMaxIndex(first, count []int32) uint32 {
	max := uint32(0)
	for i := 0; i < len(first) && i < len(count); i++ {
		if m := DrawArraysMaxIndex(first[i], count[i]); m > max {
			max = m
		}
	}
	return max
}

// MultiModeDrawArraysMaxIndex is MultiDrawArraysMaxIndex. The modes do not
// affect the vertices read.
func MultiModeDrawArraysMaxIndex(first, count []int32) uint32 {
	return MultiDrawArraysMaxIndex(first, count)
}

// MultiDrawElementsMaxIndex returns the highest vertex index read by any of
// the draws of a glMultiDrawElements call.
func (r *Resolver) MultiDrawElementsMaxIndex(ctx context.Context, count []int32, ty gles.GLenum, indices []uint64) uint32 {
	return r.MultiDrawElementsBaseVertexMaxIndex(ctx, count, ty, indices, nil)
}

// MultiModeDrawElementsMaxIndex is MultiDrawElementsMaxIndex.
func (r *Resolver) MultiModeDrawElementsMaxIndex(ctx context.Context, count []int32, ty gles.GLenum, indices []uint64) uint32 {
	return r.MultiDrawElementsMaxIndex(ctx, count, ty, indices)
}

// MultiDrawElementsBaseVertexMaxIndex returns the highest vertex index read
// by any of the draws of a glMultiDrawElementsBaseVertex call. A nil
// baseVertex is all zeros.
func (r *Resolver) MultiDrawElementsBaseVertexMaxIndex(ctx context.Context, count []int32, ty gles.GLenum, indices []uint64, baseVertex []int32) uint32 {
	max := uint32(0)
	for i := 0; i < len(count) && i < len(indices); i++ {
		base := int32(0)
		if baseVertex != nil {
			if i >= len(baseVertex) {
				break
			}
			base = baseVertex[i]
		}
		if m := r.DrawElementsMaxIndex(ctx, count[i], ty, indices[i], base); m > max {
			max = m
		}
	}
	return max
}
