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

// Package gapii records the EGL and GL calls made by an application.
package gapii

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/api/egl"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/api/gles/size"
	"github.com/gfxreplay/glretrace/gapis/capture"
)

// Options controls what a Recorder records.
type Options struct {
	// FramesToCapture stops recording after that many eglSwapBuffers calls.
	// 0 records everything.
	FramesToCapture uint32
}

const (
	timeGap      = time.Second
	maxStringLen = 4096
)

type siSize int64

var formats = []string{
	"%.0fB",
	"%.2fKB",
	"%.2fMB",
	"%.2fGB",
	"%.2fTB",
}

func (s siSize) String() string {
	if s <= 0 {
		return "0.0B"
	}
	size := float64(s)
	e := math.Floor(math.Log(size) / math.Log(1000))
	if int(e) >= len(formats) {
		e = float64(len(formats) - 1)
	}
	v := math.Floor(size/math.Pow(1000, e)*10+0.5) / 10
	return fmt.Sprintf(formats[int(e)], v)
}

// pendingArray is a client vertex array pointer call whose data is captured
// at the next draw.
type pendingArray struct {
	name string
	args []uint64
	sig  signature
}

// Recorder turns raw intercepted calls into recorded calls written to a
// sink. It is safe to use from multiple threads.
type Recorder struct {
	sink    capture.Sink
	state   size.State
	memory  size.Memory
	options Options

	mutex    sync.Mutex
	pending  map[string]*pendingArray
	warned   map[string]bool
	frames   uint32
	calls    int64
	bytes    siSize
	started  time.Time
	nextTime time.Time
	err      error
}

// NewRecorder returns a Recorder writing to sink. state is queried for the
// ambient GL state that sizes arguments and memory is the memory of the
// calling process.
func NewRecorder(sink capture.Sink, state size.State, memory size.Memory, options Options) *Recorder {
	now := time.Now()
	return &Recorder{
		sink:     sink,
		state:    state,
		memory:   memory,
		options:  options,
		pending:  map[string]*pendingArray{},
		warned:   map[string]bool{},
		started:  now,
		nextTime: now.Add(timeGap),
	}
}

// Err returns the first error returned by the sink.
func (r *Recorder) Err() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.err
}

// Frames returns the number of frames recorded.
func (r *Recorder) Frames() uint32 {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.frames
}

func (r *Recorder) recording() bool {
	return r.err == nil && (r.options.FramesToCapture == 0 || r.frames < r.options.FramesToCapture)
}

// Call records the call name with the raw argument words args around
// invoke, which performs the real call, and returns its result.
func (r *Recorder) Call(ctx context.Context, name string, args []uintptr, invoke func() uintptr) uintptr {
	words := make([]uint64, len(args))
	for i, a := range args {
		words[i] = uint64(a)
	}

	r.mutex.Lock()
	if !r.recording() {
		r.mutex.Unlock()
		return invoke()
	}
	call, sig := r.before(ctx, name, words)
	r.mutex.Unlock()

	result := invoke()
	if call == nil {
		return result
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	call.Result = r.value(ctx, sig.result, uint64(result))
	r.write(ctx, call)
	if name == "eglSwapBuffers" {
		r.frames++
		if !r.recording() {
			log.I(ctx, "Captured %d frames: %d calls, %v of memory", r.frames, r.calls, r.bytes)
		}
	}
	return result
}

// before builds the record of a call before it runs. It returns nil if the
// call is not recorded now.
func (r *Recorder) before(ctx context.Context, name string, args []uint64) (*capture.Call, signature) {
	sig, ok := signatures[name]
	if !ok {
		if !r.warned[name] {
			r.warned[name] = true
			log.W(ctx, "%v has no signature, recording raw arguments", name)
		}
		call := &capture.Call{Name: name, Args: make([]capture.Value, len(args))}
		for i, a := range args {
			call.Args[i] = capture.Uint(a)
		}
		return call, signature{result: unsigned}
	}
	if len(args) < len(sig.params) {
		log.W(ctx, "%v called with %d of %d arguments, not recorded", name, len(args), len(sig.params))
		return nil, sig
	}
	resolver := &size.Resolver{State: r.state, Memory: r.memory, UnpackSubimage: true}

	if sig.array != nil {
		key := arrayKey(name, args)
		last := len(sig.params) - 1
		if args[last] != 0 && !r.bound(sig.params[last].binding) {
			r.pending[key] = &pendingArray{name: name, args: args, sig: sig}
			return nil, sig
		}
		delete(r.pending, key)
	}

	if sig.draw != nil && len(r.pending) > 0 {
		maxIndex := sig.draw(ctx, resolver, args)
		r.flushArrays(ctx, maxIndex)
	}

	call := &capture.Call{Name: name, Args: make([]capture.Value, len(sig.params))}
	for i, p := range sig.params {
		call.Args[i] = r.arg(ctx, resolver, name, p, args, i)
	}
	return call, sig
}

func arrayKey(name string, args []uint64) string {
	if name == "glVertexAttribPointer" {
		return fmt.Sprintf("%v/%d", name, args[0])
	}
	return name
}

// flushArrays writes every pending client array sized for maxIndex. The
// pointers are written with GL_ARRAY_BUFFER unbound, and the current binding
// is restored after them.
func (r *Recorder) flushArrays(ctx context.Context, maxIndex uint32) {
	keys := make([]string, 0, len(r.pending))
	for k := range r.pending {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	buffer := uint32(0)
	if r.state != nil {
		buffer = uint32(r.state.GetIntegerv(gles.GLenum_GL_ARRAY_BUFFER_BINDING))
	}
	if buffer != 0 {
		r.write(ctx, bindArrayBuffer(0))
		defer r.write(ctx, bindArrayBuffer(buffer))
	}
	for _, k := range keys {
		a := r.pending[k]
		last := len(a.sig.params) - 1
		call := &capture.Call{Name: a.name, Args: make([]capture.Value, len(a.sig.params)), Result: capture.Null{}}
		for i := 0; i < last; i++ {
			call.Args[i] = r.value(ctx, a.sig.params[i].kind, a.args[i])
		}
		call.Args[last] = r.observe(ctx, a.name, a.args[last], a.sig.array(ctx, a.args, maxIndex))
		r.write(ctx, call)
	}
}

func bindArrayBuffer(buffer uint32) *capture.Call {
	return &capture.Call{
		Name:   "glBindBuffer",
		Args:   []capture.Value{capture.Enum(gles.GLenum_GL_ARRAY_BUFFER), capture.Uint(buffer)},
		Result: capture.Null{},
	}
}

func (r *Recorder) bound(binding gles.GLenum) bool {
	return binding != 0 && r.state != nil && r.state.GetIntegerv(binding) != 0
}

func (r *Recorder) arg(ctx context.Context, resolver *size.Resolver, name string, p param, args []uint64, i int) capture.Value {
	a := args[i]
	switch p.kind {
	case blob, clientArray:
		if a == 0 || r.bound(p.binding) {
			return capture.Pointer(a)
		}
		if p.size == nil {
			return capture.Pointer(a)
		}
		return r.observe(ctx, name, a, p.size(ctx, resolver, args))
	case attribs:
		list := size.ReadAttribList(r.memory, a, int32(egl.EGLenum_EGL_NONE))
		if list == nil {
			return capture.Pointer(a)
		}
		n := size.AttribListSize(list, int32(egl.EGLenum_EGL_NONE))
		return r.observe(ctx, name, a, uint64(n)*4)
	default:
		return r.value(ctx, p.kind, a)
	}
}

// observe copies n bytes of client memory at addr into a blob.
func (r *Recorder) observe(ctx context.Context, name string, addr, n uint64) capture.Value {
	b := &capture.Blob{Addr: addr}
	if n > 0 && r.memory != nil {
		if data := r.memory.Read(addr, n); data != nil {
			b.Data = append([]byte{}, data...)
		} else {
			log.W(ctx, "%v: %d bytes at 0x%x not readable", name, n, addr)
		}
	}
	r.bytes += siSize(len(b.Data))
	return b
}

func (r *Recorder) value(ctx context.Context, k kind, v uint64) capture.Value {
	switch k {
	case void:
		return capture.Null{}
	case sint:
		return capture.Sint(int32(uint32(v)))
	case sizeiptr:
		return capture.Sint(int64(v))
	case unsigned:
		return capture.Uint(uint32(v))
	case enum:
		return capture.Enum(uint32(v))
	case boolean:
		return capture.Bool(uint32(v) != 0)
	case str:
		if v == 0 {
			return capture.Null{}
		}
		return capture.String(r.readString(v))
	default:
		return capture.Pointer(v)
	}
}

func (r *Recorder) readString(addr uint64) string {
	if r.memory == nil {
		return ""
	}
	var out []byte
	for len(out) < maxStringLen {
		b := r.memory.Read(addr+uint64(len(out)), 1)
		if len(b) == 0 || b[0] == 0 {
			break
		}
		out = append(out, b[0])
	}
	return string(out)
}

func (r *Recorder) write(ctx context.Context, call *capture.Call) {
	if call.Result == nil {
		call.Result = capture.Null{}
	}
	if err := r.sink.Write(ctx, call); err != nil {
		r.err = err
		log.E(ctx, "Recording %v failed: %v", call.Name, err)
		return
	}
	r.calls++
	if now := time.Now(); now.After(r.nextTime) {
		r.nextTime = now.Add(timeGap)
		delta := time.Duration(int64(now.Sub(r.started)/time.Millisecond)) * time.Millisecond
		log.I(ctx, "Capturing: %d calls, %v in %v", r.calls, r.bytes, delta)
	}
}
