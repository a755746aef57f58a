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

import (
	"fmt"
	"strings"
)

// Call is a single recorded invocation of an API entry point.
// Calls are read-only once recorded, except for the resolved length of their
// blob arguments.
type Call struct {
	// ID is the position of the call in its stream.
	ID uint64
	// Name is the entry point name, for example "eglMakeCurrent".
	Name string
	// Args are the recorded arguments in declaration order.
	Args []Value
	// Result is the recorded return value, Null for void calls.
	Result Value
}

// Arg returns the i'th argument, or Null if the call has fewer arguments.
func (c *Call) Arg(i int) Value {
	if i < 0 || i >= len(c.Args) {
		return Null{}
	}
	return c.Args[i]
}

// Uint returns the i'th argument converted with ToUint.
func (c *Call) Uint(i int) uint64 { return ToUint(c.Arg(i)) }

// Int returns the i'th argument converted with ToInt.
func (c *Call) Int(i int) int64 { return ToInt(c.Arg(i)) }

// Float returns the i'th argument converted with ToFloat.
func (c *Call) Float(i int) float64 { return ToFloat(c.Arg(i)) }

// Blob returns the i'th argument if it is a blob, otherwise nil.
func (c *Call) Blob(i int) *Blob {
	b, _ := c.Arg(i).(*Blob)
	return b
}

// ResultUint returns the return value converted with ToUint.
func (c *Call) ResultUint() uint64 {
	if c.Result == nil {
		return 0
	}
	return ToUint(c.Result)
}

// Memory returns the client memory observed by the blob arguments of the
// call.
func (c *Call) Memory() Memory {
	var m Memory
	for _, a := range c.Args {
		if b, ok := a.(*Blob); ok && b.Addr != 0 {
			m = append(m, b)
		}
	}
	return m
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	s := fmt.Sprintf("%d %s(%s)", c.ID, c.Name, strings.Join(args, ", "))
	if c.Result != nil {
		if _, void := c.Result.(Null); !void {
			s += " = " + c.Result.String()
		}
	}
	return s
}
