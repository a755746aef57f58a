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

package shim

import (
	"context"
	"runtime"
	"unsafe"

	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

// Memory reads the memory of the current process.
type Memory struct{}

// Read copies size bytes at addr. A null address reads nothing.
func (Memory) Read(addr, size uint64) []byte {
	if addr == 0 || size == 0 {
		return nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), int(size))
	return append([]byte{}, src...)
}

// State queries the GL state of the calling thread through the real entry
// points of a table, without recording the queries.
type State struct {
	Table *Table
}

// GetIntegerv calls glGetIntegerv for pname.
func (s State) GetIntegerv(pname gles.GLenum) int32 {
	var v int32
	s.Table.Raw(context.Background(), "glGetIntegerv", uintptr(pname), uintptr(unsafe.Pointer(&v)))
	runtime.KeepAlive(&v)
	return v
}

// GetBufferSubData calls glGetBufferSubData for the buffer bound to target.
func (s State) GetBufferSubData(target gles.GLenum, offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	s.Table.Raw(context.Background(), "glGetBufferSubData", uintptr(target), uintptr(offset), uintptr(size), uintptr(unsafe.Pointer(&out[0])))
	runtime.KeepAlive(out)
	return out
}
