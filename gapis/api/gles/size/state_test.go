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
	eb "encoding/binary"

	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

// fakeState is an in-memory context state.
type fakeState struct {
	ints    map[gles.GLenum]int32
	buffers map[gles.GLenum][]byte
}

func newFakeState() *fakeState {
	return &fakeState{ints: map[gles.GLenum]int32{}, buffers: map[gles.GLenum][]byte{}}
}

func (s *fakeState) GetIntegerv(pname gles.GLenum) int32 { return s.ints[pname] }

func (s *fakeState) GetBufferSubData(target gles.GLenum, offset, size uint64) []byte {
	data := s.buffers[target]
	if offset >= uint64(len(data)) {
		return nil
	}
	end := offset + size
	if end > uint64(len(data)) {
		end = uint64(len(data))
	}
	return append([]byte{}, data[offset:end]...)
}

func bytesOf(v ...uint8) []byte { return v }

func shortsOf(v ...uint16) []byte {
	out := make([]byte, len(v)*2)
	for i, s := range v {
		eb.LittleEndian.PutUint16(out[i*2:], s)
	}
	return out
}

func intsOf(v ...uint32) []byte {
	out := make([]byte, len(v)*4)
	for i, s := range v {
		eb.LittleEndian.PutUint32(out[i*4:], s)
	}
	return out
}
