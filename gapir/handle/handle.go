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

// Package handle translates the opaque handles recorded in a trace into the
// handles of the objects created for them during replay.
package handle

import (
	"github.com/google/btree"
)

const treeDegree = 8

type entry[R any] struct {
	key   uint64
	value R
}

func less[R any](a, b entry[R]) bool { return a.key < b.key }

// Map is an ordered mapping of recorded handles to live values.
// The recorded handle 0 is the null handle: it is never stored and always
// looks up as the zero value of R.
// A Map is not safe for concurrent use.
type Map[R any] struct {
	tree *btree.BTreeG[entry[R]]
}

// New returns an empty Map.
func New[R any]() *Map[R] {
	return &Map[R]{tree: btree.NewG(treeDegree, less[R])}
}

// Bind maps the recorded handle key to value, returning the value previously
// bound to key, if any. Binding the null handle does nothing.
func (m *Map[R]) Bind(key uint64, value R) (old R, replaced bool) {
	if key == 0 {
		return old, false
	}
	prev, replaced := m.tree.ReplaceOrInsert(entry[R]{key, value})
	return prev.value, replaced
}

// Lookup returns the value bound to the recorded handle key.
func (m *Map[R]) Lookup(key uint64) (R, bool) {
	if key == 0 {
		var zero R
		return zero, false
	}
	e, ok := m.tree.Get(entry[R]{key: key})
	return e.value, ok
}

// Release removes the binding of the recorded handle key, returning the value
// it was bound to.
func (m *Map[R]) Release(key uint64) (R, bool) {
	e, ok := m.tree.Delete(entry[R]{key: key})
	return e.value, ok
}

// Len returns the number of bound handles.
func (m *Map[R]) Len() int {
	return m.tree.Len()
}

// Keys returns the bound recorded handles in ascending order.
func (m *Map[R]) Keys() []uint64 {
	out := make([]uint64, 0, m.tree.Len())
	m.tree.Ascend(func(e entry[R]) bool {
		out = append(out, e.key)
		return true
	})
	return out
}

// Drain removes every binding, calling f for each in ascending handle order.
func (m *Map[R]) Drain(f func(key uint64, value R)) {
	for m.tree.Len() > 0 {
		e, _ := m.tree.DeleteMin()
		f(e.key, e.value)
	}
}
