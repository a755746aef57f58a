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

package endian_test

import (
	"bytes"
	eb "encoding/binary"
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/data/binary"
	"github.com/gfxreplay/glretrace/core/data/endian"
)

func TestRoundTrip(t *testing.T) {
	assert := assert.To(t)
	for _, order := range []eb.ByteOrder{eb.LittleEndian, eb.BigEndian} {
		buf := &bytes.Buffer{}
		w := endian.Writer(buf, order)
		w.Uint8(0x12)
		w.Uint16(0x3456)
		binary.WriteUint(w, 32, 0x789abcde)
		w.Uint64(0x0102030405060708)
		w.Float32(1.5)
		assert.For("%v write", order).ThatError(w.Error()).Succeeded()

		r := endian.Reader(bytes.NewReader(buf.Bytes()), order)
		assert.For("%v u8", order).That(r.Uint8()).Equals(uint8(0x12))
		assert.For("%v u16", order).That(binary.ReadUint(r, 16)).Equals(uint64(0x3456))
		assert.For("%v u32", order).That(r.Uint32()).Equals(uint32(0x789abcde))
		assert.For("%v u64", order).That(r.Uint64()).Equals(uint64(0x0102030405060708))
		assert.For("%v f32", order).That(r.Float32()).Equals(float32(1.5))
		assert.For("%v read", order).ThatError(r.Error()).Succeeded()
	}
}

func TestLittleEndianLayout(t *testing.T) {
	assert := assert.To(t)
	r := endian.Reader(bytes.NewReader([]byte{0x01, 0x02, 0x03}), eb.LittleEndian)
	assert.For("u16").That(r.Uint16()).Equals(uint16(0x0201))
	assert.For("short").That(r.Uint16()).Equals(uint16(0))
	assert.For("err").ThatError(r.Error()).Failed()
	assert.For("sticky").That(r.Uint8()).Equals(uint8(0))
}

func TestUnsupportedWidth(t *testing.T) {
	assert := assert.To(t)
	r := endian.Reader(bytes.NewReader([]byte{1, 2, 3, 4}), eb.LittleEndian)
	assert.For("value").That(binary.ReadUint(r, 24)).Equals(uint64(0))
	assert.For("err").ThatError(r.Error()).Failed()
}
