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

// Package endian provides binary.Reader and binary.Writer implementations for
// a fixed byte order.
package endian

import (
	eb "encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gfxreplay/glretrace/core/data/binary"
)

// Reader creates a binary.Reader that reads from the provided io.Reader, with
// the specified byte order.
func Reader(r io.Reader, order eb.ByteOrder) binary.Reader {
	return &reader{reader: r, byteOrder: order}
}

// Writer creates a binary.Writer that writes to the supplied stream, with the
// specified byte order.
func Writer(w io.Writer, order eb.ByteOrder) binary.Writer {
	return &writer{writer: w, byteOrder: order}
}

type reader struct {
	reader    io.Reader
	tmp       [8]byte
	byteOrder eb.ByteOrder
	err       error
}

type writer struct {
	writer    io.Writer
	tmp       [8]byte
	byteOrder eb.ByteOrder
	err       error
}

func (r *reader) Read(p []byte) (n int, err error) {
	return r.reader.Read(p)
}

func (r *reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	if n, err := io.ReadFull(r.reader, p); err != nil {
		r.err = fmt.Errorf("%v after reading %d bytes", err, n)
	}
}

// fill reads n bytes into tmp, returning false once the reader has failed.
func (r *reader) fill(n int) bool {
	if r.err != nil {
		return false
	}
	_, r.err = io.ReadFull(r.reader, r.tmp[:n])
	return r.err == nil
}

func (r *reader) Uint8() uint8 {
	if !r.fill(1) {
		return 0
	}
	return r.tmp[0]
}

func (r *reader) Uint16() uint16 {
	if !r.fill(2) {
		return 0
	}
	return r.byteOrder.Uint16(r.tmp[:])
}

func (r *reader) Uint32() uint32 {
	if !r.fill(4) {
		return 0
	}
	return r.byteOrder.Uint32(r.tmp[:])
}

func (r *reader) Uint64() uint64 {
	if !r.fill(8) {
		return 0
	}
	return r.byteOrder.Uint64(r.tmp[:])
}

func (r *reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

func (r *reader) Error() error {
	return r.err
}

func (r *reader) SetError(err error) {
	if r.err != nil {
		return
	}
	r.err = err
}

func (w *writer) Data(data []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(data)
	if err != nil {
		w.err = err
	} else if n != len(data) {
		w.err = io.ErrShortWrite
	}
}

func (w *writer) Uint8(v uint8) {
	w.tmp[0] = v
	w.Data(w.tmp[:1])
}

func (w *writer) Uint16(v uint16) {
	w.byteOrder.PutUint16(w.tmp[:], v)
	w.Data(w.tmp[:2])
}

func (w *writer) Uint32(v uint32) {
	w.byteOrder.PutUint32(w.tmp[:], v)
	w.Data(w.tmp[:4])
}

func (w *writer) Uint64(v uint64) {
	w.byteOrder.PutUint64(w.tmp[:], v)
	w.Data(w.tmp[:8])
}

func (w *writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

func (w *writer) Error() error {
	return w.err
}

func (w *writer) SetError(err error) {
	if w.err != nil {
		return
	}
	w.err = err
}
