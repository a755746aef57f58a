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

//go:build darwin || linux

package shim

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

// Library is a shared library opened with dlopen.
type Library struct {
	path   string
	handle uintptr
}

// Open loads the shared library at path.
func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, errors.Wrapf(err, "Opening %v", path)
	}
	return &Library{path: path, handle: handle}, nil
}

// Lookup finds the entry point name with dlsym.
func (l *Library) Lookup(name string) (Func, bool) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil || addr == 0 {
		return nil, false
	}
	return func(args ...uintptr) uintptr {
		r, _, _ := purego.SyscallN(addr, args...)
		return r
	}, true
}

// Close unloads the library.
func (l *Library) Close() error {
	return errors.Wrapf(purego.Dlclose(l.handle), "Closing %v", l.path)
}

func (l *Library) String() string { return l.path }
