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
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gfxreplay/glretrace/gapis/api/egl"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// script is the YAML form of a call stream:
//
//	calls:
//	  - name: eglBindAPI
//	    args: [{enum: EGL_OPENGL_API}]
//	  - name: eglCreateContext
//	    args: [{ptr: 0x1}, {ptr: 0x2}, {ptr: 0}, {void: true}]
//	    result: {ptr: 0xc0}
//	  - name: glDrawElements
//	    args:
//	      - {enum: GL_TRIANGLES}
//	      - {int: 8}
//	      - {enum: GL_UNSIGNED_BYTE}
//	      - {blob: {addr: 0x1000, hex: "0301040105090206"}}
type script struct {
	Calls []scriptCall `yaml:"calls"`
}

type scriptCall struct {
	Name   string        `yaml:"name"`
	Args   []scriptValue `yaml:"args,omitempty"`
	Result *scriptValue  `yaml:"result,omitempty"`
}

type scriptValue struct {
	Void   bool          `yaml:"void,omitempty"`
	Bool   *bool         `yaml:"bool,omitempty"`
	Int    *int64        `yaml:"int,omitempty"`
	Uint   *uint64       `yaml:"uint,omitempty"`
	Float  *float64      `yaml:"float,omitempty"`
	Enum   *yaml.Node    `yaml:"enum,omitempty"`
	Ptr    *uint64       `yaml:"ptr,omitempty"`
	String *string       `yaml:"string,omitempty"`
	Array  []scriptValue `yaml:"array,omitempty"`
	Blob   *scriptBlob   `yaml:"blob,omitempty"`
}

type scriptBlob struct {
	Addr uint64 `yaml:"addr"`
	Hex  string `yaml:"hex,omitempty"`
	Data []byte `yaml:"data,flow,omitempty"`
}

// ReadScript decodes a YAML call script into a List. Enum arguments may be
// given as GL or EGL names, or as numbers.
func ReadScript(r io.Reader) (*List, error) {
	s := script{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "Decoding call script")
	}
	l := &List{Calls: make([]*Call, 0, len(s.Calls))}
	for i, sc := range s.Calls {
		c := &Call{ID: uint64(i), Name: sc.Name, Args: make([]Value, len(sc.Args)), Result: Null{}}
		if c.Name == "" {
			return nil, fmt.Errorf("Call %d has no name", i)
		}
		for j := range sc.Args {
			v, err := sc.Args[j].value()
			if err != nil {
				return nil, errors.Wrapf(err, "%s argument %d", c.Name, j)
			}
			c.Args[j] = v
		}
		if sc.Result != nil {
			v, err := sc.Result.value()
			if err != nil {
				return nil, errors.Wrapf(err, "%s result", c.Name)
			}
			c.Result = v
		}
		l.Calls = append(l.Calls, c)
	}
	return l, nil
}

func (s scriptValue) value() (Value, error) {
	switch {
	case s.Void:
		return Null{}, nil
	case s.Bool != nil:
		return Bool(*s.Bool), nil
	case s.Int != nil:
		return Sint(*s.Int), nil
	case s.Uint != nil:
		return Uint(*s.Uint), nil
	case s.Float != nil:
		return Float(*s.Float), nil
	case s.Enum != nil:
		return parseEnum(s.Enum)
	case s.Ptr != nil:
		return Pointer(*s.Ptr), nil
	case s.String != nil:
		return String(*s.String), nil
	case s.Array != nil:
		a := make(Array, len(s.Array))
		for i, e := range s.Array {
			v, err := e.value()
			if err != nil {
				return nil, err
			}
			a[i] = v
		}
		return a, nil
	case s.Blob != nil:
		b := &Blob{Addr: s.Blob.Addr, Data: s.Blob.Data}
		if s.Blob.Hex != "" {
			data, err := hex.DecodeString(s.Blob.Hex)
			if err != nil {
				return nil, errors.Wrap(err, "Decoding blob")
			}
			b.Data = data
		}
		return b, nil
	}
	return nil, fmt.Errorf("Value has no kind")
}

func parseEnum(n *yaml.Node) (Value, error) {
	var u uint32
	if err := n.Decode(&u); err == nil {
		return Enum(u), nil
	}
	name := n.Value
	if e, ok := gles.ParseGLenum(name); ok {
		return Enum(e), nil
	}
	if e, ok := egl.ParseEGLenum(name); ok {
		return Enum(e), nil
	}
	return nil, fmt.Errorf("Unknown enum %q", name)
}

// WriteScript encodes the calls as a YAML call script readable by
// ReadScript.
func WriteScript(w io.Writer, calls []*Call) error {
	s := script{Calls: make([]scriptCall, len(calls))}
	for i, c := range calls {
		sc := scriptCall{Name: c.Name, Args: make([]scriptValue, len(c.Args))}
		for j, a := range c.Args {
			sc.Args[j] = toScript(a)
		}
		if c.Result != nil {
			if _, void := c.Result.(Null); !void {
				r := toScript(c.Result)
				sc.Result = &r
			}
		}
		s.Calls[i] = sc
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return errors.Wrap(err, "Encoding call script")
	}
	return enc.Close()
}

func toScript(v Value) scriptValue {
	switch v := v.(type) {
	case Bool:
		b := bool(v)
		return scriptValue{Bool: &b}
	case Sint:
		i := int64(v)
		return scriptValue{Int: &i}
	case Uint:
		u := uint64(v)
		return scriptValue{Uint: &u}
	case Float:
		f := float64(v)
		return scriptValue{Float: &f}
	case Enum:
		n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%04X", uint32(v))}
		if name, ok := enumName(v); ok {
			n = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		}
		return scriptValue{Enum: n}
	case Pointer:
		p := uint64(v)
		return scriptValue{Ptr: &p}
	case String:
		s := string(v)
		return scriptValue{String: &s}
	case Array:
		a := make([]scriptValue, len(v))
		for i, e := range v {
			a[i] = toScript(e)
		}
		return scriptValue{Array: a}
	case *Blob:
		return scriptValue{Blob: &scriptBlob{Addr: v.Addr, Hex: hex.EncodeToString(v.Bytes())}}
	default:
		return scriptValue{Void: true}
	}
}

// enumName returns the name of e if it is a known GL or EGL enum.
// EGL names are preferred for values in the EGL range.
func enumName(e Enum) (string, bool) {
	if e >= 0x3000 && e < 0x3200 {
		if s := egl.EGLenum(e).String(); s[:4] == "EGL_" {
			return s, true
		}
	}
	if s := gles.GLenum(e).String(); len(s) > 3 && s[:3] == "GL_" {
		return s, true
	}
	return "", false
}
