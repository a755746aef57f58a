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

// Chain is a Loader that tries each of its loaders in order.
type Chain []Loader

// Lookup returns the first entry point found.
func (c Chain) Lookup(name string) (Func, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if f, ok := l.Lookup(name); ok {
			return f, true
		}
	}
	return nil, false
}
