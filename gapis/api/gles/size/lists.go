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

	"github.com/gfxreplay/glretrace/core/data/endian"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

// maxAttribs bounds the number of words read by ReadAttribList.
const maxAttribs = 512

// Integer is the set of element types attribute lists are made of.
type Integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// AttribListSize returns the number of elements of a key/value list that is
// terminated by a single terminator key, including the terminator.
// A nil list has size 0. A list missing its terminator is sized to its
// length.
func AttribListSize[T Integer](list []T, terminator T) int {
	if list == nil {
		return 0
	}
	size := 0
	for size < len(list) && list[size] != terminator {
		size += 2
	}
	if size >= len(list) {
		return len(list)
	}
	return size + 1
}

// ZeroTerminatedListSize returns the number of elements of a list terminated
// by a zero element, including the terminator.
// A nil list has size 0. A list missing its terminator is sized to its
// length.
func ZeroTerminatedListSize[T Integer](list []T) int {
	if list == nil {
		return 0
	}
	for i, v := range list {
		if v == 0 {
			return i + 1
		}
	}
	return len(list)
}

// ReadAttribList reads a key/value list of 32 bit words from mem at addr up
// to and including the terminator key.
// It returns nil if addr is 0 or the first key cannot be read, and stops
// early if the list runs into unreadable memory.
func ReadAttribList(mem Memory, addr uint64, terminator int32) []int32 {
	if addr == 0 || mem == nil {
		return nil
	}
	var out []int32
	for len(out) < maxAttribs {
		n := uint64(2)
		data := mem.Read(addr+uint64(len(out))*4, n*4)
		if data == nil {
			n = 1
			if data = mem.Read(addr+uint64(len(out))*4, n*4); data == nil {
				break
			}
		}
		r := endian.Reader(bytes.NewReader(data), eb.LittleEndian)
		key := int32(r.Uint32())
		out = append(out, key)
		if key == terminator || n == 1 {
			break
		}
		out = append(out, int32(r.Uint32()))
	}
	return out
}

// CallListsSize returns the byte size of the list names of a glCallLists
// call.
func CallListsSize(ctx context.Context, n int32, ty gles.GLenum) uint64 {
	return nonNegative(n) * uint64(gles.DataTypeSize(ctx, ty))
}

// Map1Size returns the number of values of the control points of a glMap1
// call. An order below 1 or a stride shorter than a control point has size
// 0.
func Map1Size(ctx context.Context, target gles.GLenum, stride, order int32) uint64 {
	if order < 1 {
		return 0
	}
	channels := int32(gles.MapChannels(ctx, target))
	if stride < channels {
		return 0
	}
	return uint64(channels + stride*(order-1))
}

// Map2Size returns the number of values of the control points of a glMap2
// call. An order below 1 or a stride shorter than the data it spans has size
// 0.
func Map2Size(ctx context.Context, target gles.GLenum, ustride, uorder, vstride, vorder int32) uint64 {
	if uorder < 1 || vorder < 1 {
		return 0
	}
	channels := int32(gles.MapChannels(ctx, target))
	if ustride < channels || vstride < channels {
		return 0
	}
	return uint64(channels + ustride*(uorder-1) + vstride*(vorder-1))
}

// UniformSize returns the byte size of count values of the uniform type ty.
func UniformSize(ctx context.Context, ty gles.GLenum, count int32) uint64 {
	elem, n := gles.UniformShape(ctx, ty)
	if n == 0 {
		return 0
	}
	return nonNegative(count) * uint64(n) * uint64(gles.DataTypeSize(ctx, elem))
}

// ClearBufferSize returns the number of values read by a glClearBuffer call.
func ClearBufferSize(ctx context.Context, buffer gles.GLenum) uint64 {
	return uint64(gles.ClearBufferSize(ctx, buffer))
}
