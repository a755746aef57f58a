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

package capture

import "fmt"

// Blob is a variable-length argument: a view of the client memory observed at
// Addr during capture. The number of bytes the argument spans depends on the
// other arguments of the call and on ambient context state, so it is resolved
// once per call with Resolve rather than stored in the record.
type Blob struct {
	// Addr is the address of the data in the captured process. 0 is a null
	// pointer.
	Addr uint64
	// Data is the observed memory starting at Addr.
	Data []byte

	resolved bool
	size     uint64
}

func (*Blob) isValue() {}

func (b *Blob) String() string {
	if b.resolved {
		return fmt.Sprintf("blob(0x%x, %d/%d bytes)", b.Addr, b.size, len(b.Data))
	}
	return fmt.Sprintf("blob(0x%x, %d bytes)", b.Addr, len(b.Data))
}

// Resolve computes the length of the argument with size the first time it is
// called and returns the resolved view of the data. Later calls return the
// same view without calling size again.
// The view is truncated to the observed data if the resolved length exceeds
// it.
func (b *Blob) Resolve(size func() uint64) []byte {
	if !b.resolved {
		b.size = size()
		b.resolved = true
	}
	return b.Bytes()
}

// Resolved returns the resolved length and whether Resolve has been called.
func (b *Blob) Resolved() (uint64, bool) {
	return b.size, b.resolved
}

// Bytes returns the resolved view of the data, or all of the observed data if
// the blob has not been resolved.
func (b *Blob) Bytes() []byte {
	if !b.resolved || b.size >= uint64(len(b.Data)) {
		return b.Data
	}
	return b.Data[:b.size]
}

// Reset forgets the resolved length, so that the next Resolve recomputes it.
func (b *Blob) Reset() {
	b.resolved, b.size = false, 0
}

// Memory is the client memory observed by a set of blobs.
type Memory []*Blob

// Read returns size bytes of observed memory starting at addr, or nil if no
// single blob covers the whole range.
func (m Memory) Read(addr, size uint64) []byte {
	for _, b := range m {
		if addr < b.Addr {
			continue
		}
		offset := addr - b.Addr
		if offset > uint64(len(b.Data)) || size > uint64(len(b.Data))-offset {
			continue
		}
		return b.Data[offset : offset+size]
	}
	return nil
}
