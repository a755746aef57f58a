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
	"math"
	"strings"
)

// Value is a single recorded argument or return value.
// The concrete kinds are Null, Bool, Sint, Uint, Float, Enum, Pointer,
// String, Array and *Blob.
type Value interface {
	isValue()
	fmt.Stringer
}

type (
	// Null is an absent value, such as the result of a void call.
	Null struct{}
	// Bool is a recorded boolean.
	Bool bool
	// Sint is a recorded signed integer.
	Sint int64
	// Uint is a recorded unsigned integer.
	Uint uint64
	// Float is a recorded floating-point number.
	Float float64
	// Enum is a recorded enumerated constant. Its meaning depends on the API
	// of the call that holds it.
	Enum uint32
	// Pointer is a recorded pointer value. It is either an opaque handle of a
	// resource in the captured process, a client memory address or an offset
	// into a bound buffer object.
	Pointer uint64
	// String is a recorded NUL-terminated string.
	String string
	// Array is a recorded fixed-length array of values.
	Array []Value
)

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Sint) isValue()    {}
func (Uint) isValue()    {}
func (Float) isValue()   {}
func (Enum) isValue()    {}
func (Pointer) isValue() {}
func (String) isValue()  {}
func (Array) isValue()   {}

func (Null) String() string      { return "NULL" }
func (v Bool) String() string    { return fmt.Sprint(bool(v)) }
func (v Sint) String() string    { return fmt.Sprint(int64(v)) }
func (v Uint) String() string    { return fmt.Sprint(uint64(v)) }
func (v Float) String() string   { return fmt.Sprint(float64(v)) }
func (v Enum) String() string    { return fmt.Sprintf("0x%04X", uint32(v)) }
func (v Pointer) String() string { return fmt.Sprintf("0x%x", uint64(v)) }
func (v String) String() string  { return fmt.Sprintf("%q", string(v)) }
func (v Array) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ToUint converts v to an unsigned integer. Values without a numeric
// interpretation, including a nil Value, convert to 0.
func ToUint(v Value) uint64 {
	switch v := v.(type) {
	case Bool:
		if v {
			return 1
		}
		return 0
	case Sint:
		return uint64(v)
	case Uint:
		return uint64(v)
	case Float:
		return uint64(v)
	case Enum:
		return uint64(v)
	case Pointer:
		return uint64(v)
	case *Blob:
		return v.Addr
	default:
		return 0
	}
}

// ToInt converts v to a signed integer. Values without a numeric
// interpretation convert to 0.
func ToInt(v Value) int64 {
	switch v := v.(type) {
	case Sint:
		return int64(v)
	case Float:
		return int64(v)
	default:
		return int64(ToUint(v))
	}
}

// ToFloat converts v to a floating-point number.
func ToFloat(v Value) float64 {
	switch v := v.(type) {
	case Float:
		return float64(v)
	case Sint:
		return float64(v)
	default:
		u := ToUint(v)
		if u > math.MaxInt64 {
			return float64(u)
		}
		return float64(int64(u))
	}
}
