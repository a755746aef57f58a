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

// Package size computes the byte length of the variable-length arguments of
// GL calls from the other arguments of the call and the ambient client state
// of the context the call is made against.
//
// A result of 0 from any function in this package means the length is
// unknown and the argument must not be dereferenced; it does not mean an
// empty argument.
package size

import (
	"context"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

// State is the ambient client state of a live context.
// It is read on every resolution and never cached, as it can change between
// calls.
type State interface {
	// GetIntegerv returns the integer value of the state parameter pname.
	GetIntegerv(pname gles.GLenum) int32
	// GetBufferSubData returns a copy of size bytes at offset of the buffer
	// object bound to target.
	GetBufferSubData(target gles.GLenum, offset, size uint64) []byte
}

// Memory is the client memory of the process that made a call.
type Memory interface {
	// Read returns size bytes starting at addr, or nil if the range is not
	// readable.
	Read(addr, size uint64) []byte
}

// Region is a Memory backed by a single block of bytes at Base.
type Region struct {
	Base uint64
	Data []byte
}

// Read returns size bytes of the region starting at addr.
func (r Region) Read(addr, size uint64) []byte {
	if addr < r.Base {
		return nil
	}
	offset := addr - r.Base
	if offset > uint64(len(r.Data)) || size > uint64(len(r.Data))-offset {
		return nil
	}
	return r.Data[offset : offset+size]
}

// Resolver sizes the arguments that depend on live context state.
type Resolver struct {
	// State is the context the calls are made against.
	State State
	// Memory is the client memory the calls' pointers refer to.
	Memory Memory
	// UnpackSubimage is true when the API variant of the context supports the
	// UNPACK_ROW_LENGTH, UNPACK_IMAGE_HEIGHT and UNPACK_SKIP_* parameters.
	UnpackSubimage bool
}

func (r *Resolver) getInteger(pname gles.GLenum) int32 {
	if r.State == nil {
		return 0
	}
	return r.State.GetIntegerv(pname)
}

func unknownEnum(ctx context.Context, fn string, e gles.GLenum) {
	log.W(ctx, "%s: unknown GLenum 0x%04X", fn, uint32(e))
}

func unsupported(ctx context.Context, fn string) {
	log.W(ctx, "%s: unsupported", fn)
}

func nonNegative(v int32) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
