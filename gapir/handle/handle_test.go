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

package handle_test

import (
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/gapir/handle"
)

func TestBindLookupRelease(t *testing.T) {
	assert := assert.To(t)
	m := handle.New[string]()

	_, replaced := m.Bind(0x10, "ctx-a")
	assert.For("first bind").ThatBoolean(replaced).IsFalse()
	old, replaced := m.Bind(0x10, "ctx-b")
	assert.For("rebind").ThatBoolean(replaced).IsTrue()
	assert.For("old").ThatString(old).Equals("ctx-a")

	v, ok := m.Lookup(0x10)
	assert.For("lookup ok").ThatBoolean(ok).IsTrue()
	assert.For("lookup").ThatString(v).Equals("ctx-b")

	_, ok = m.Lookup(0x20)
	assert.For("unknown").ThatBoolean(ok).IsFalse()

	v, ok = m.Release(0x10)
	assert.For("release ok").ThatBoolean(ok).IsTrue()
	assert.For("released").ThatString(v).Equals("ctx-b")
	_, ok = m.Release(0x10)
	assert.For("release twice").ThatBoolean(ok).IsFalse()
	assert.For("len").ThatInteger(m.Len()).Equals(0)
}

func TestNullHandle(t *testing.T) {
	assert := assert.To(t)
	m := handle.New[*int]()
	one := 1
	_, replaced := m.Bind(0, &one)
	assert.For("bind null").ThatBoolean(replaced).IsFalse()
	assert.For("len").ThatInteger(m.Len()).Equals(0)
	v, ok := m.Lookup(0)
	assert.For("lookup null").That(v).IsNil()
	assert.For("lookup null ok").ThatBoolean(ok).IsFalse()
}

func TestDrainOrder(t *testing.T) {
	assert := assert.To(t)
	m := handle.New[int]()
	for _, k := range []uint64{30, 10, 20} {
		m.Bind(k, int(k)*2)
	}
	assert.For("keys").ThatSlice(m.Keys()).Equals([]uint64{10, 20, 30})

	got := []int{}
	m.Drain(func(key uint64, value int) { got = append(got, value) })
	assert.For("drained").ThatSlice(got).Equals([]int{20, 40, 60})
	assert.For("empty").ThatInteger(m.Len()).Equals(0)
}
