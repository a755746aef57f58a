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

// Package shim routes calls to the real EGL and GL entry points through a
// capture hook.
//
// Entry points are resolved lazily, once, on first use. An entry point the
// loader cannot find behaves as a function that returns 0.
package shim

import (
	"context"
	"sort"
	"sync"

	"github.com/gfxreplay/glretrace/core/log"
)

// Func is a resolved entry point taking and returning raw machine words.
type Func func(args ...uintptr) uintptr

// Loader finds entry points by name.
type Loader interface {
	Lookup(name string) (Func, bool)
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc func(name string) (Func, bool)

// Lookup calls f.
func (f LoaderFunc) Lookup(name string) (Func, bool) { return f(name) }

// Hook observes every call made through a Table. It must call invoke exactly
// once to perform the real call and return its result.
type Hook interface {
	Call(ctx context.Context, name string, args []uintptr, invoke func() uintptr) uintptr
}

// HookFunc adapts a function to a Hook.
type HookFunc func(ctx context.Context, name string, args []uintptr, invoke func() uintptr) uintptr

// Call calls f.
func (f HookFunc) Call(ctx context.Context, name string, args []uintptr, invoke func() uintptr) uintptr {
	return f(ctx, name, args, invoke)
}

func absent(...uintptr) uintptr { return 0 }

type symbol struct {
	once  sync.Once
	fn    Func
	found bool
}

// Table is the set of entry points of an intercepted library.
type Table struct {
	loader Loader
	hook   Hook

	mutex   sync.Mutex
	symbols map[string]*symbol
}

// New returns a Table resolving entry points with loader and routing calls
// through hook. A nil hook calls the entry points directly.
func New(loader Loader, hook Hook) *Table {
	return &Table{loader: loader, hook: hook, symbols: map[string]*symbol{}}
}

func (t *Table) symbol(ctx context.Context, name string) *symbol {
	t.mutex.Lock()
	s, ok := t.symbols[name]
	if !ok {
		s = &symbol{}
		t.symbols[name] = s
	}
	t.mutex.Unlock()

	s.once.Do(func() {
		s.fn, s.found = t.loader.Lookup(name)
		if !s.found || s.fn == nil {
			log.W(ctx, "Entry point %v not found, calls return 0", name)
			s.fn, s.found = absent, false
		}
	})
	return s
}

// Call invokes the entry point name with args through the hook.
func (t *Table) Call(ctx context.Context, name string, args ...uintptr) uintptr {
	s := t.symbol(ctx, name)
	if t.hook == nil {
		return s.fn(args...)
	}
	return t.hook.Call(ctx, name, args, func() uintptr { return s.fn(args...) })
}

// Raw invokes the entry point name with args, bypassing the hook.
func (t *Table) Raw(ctx context.Context, name string, args ...uintptr) uintptr {
	return t.symbol(ctx, name).fn(args...)
}

// Found resolves name and returns true if the loader provided it.
func (t *Table) Found(ctx context.Context, name string) bool {
	return t.symbol(ctx, name).found
}

// Resolved returns the sorted names looked up so far.
func (t *Table) Resolved() []string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	out := make([]string, 0, len(t.symbols))
	for name := range t.symbols {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
