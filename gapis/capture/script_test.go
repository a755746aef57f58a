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

package capture_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/api/egl"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/capture"
)

const testScript = `
calls:
  - name: eglBindAPI
    args: [{enum: EGL_OPENGL_API}]
  - name: eglCreateContext
    args: [{ptr: 0x1}, {ptr: 0x2}, {ptr: 0}, {void: true}]
    result: {ptr: 0xc0}
  - name: glDrawElements
    args:
      - {enum: GL_TRIANGLES}
      - {int: 8}
      - {enum: 0x1401}
      - {blob: {addr: 0x1000, hex: "0301040105090206"}}
  - name: glClearColor
    args: [{float: 0.5}, {float: 0}, {float: 0}, {float: 1}]
`

func TestReadScript(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	l, err := capture.ReadScript(strings.NewReader(testScript))
	assert.For("err").ThatError(err).Succeeded()
	assert.For("calls").ThatInteger(len(l.Calls)).Equals(4)

	bind, _ := l.Next(ctx)
	assert.For("bind name").ThatString(bind.Name).Equals("eglBindAPI")
	assert.For("bind api").That(bind.Uint(0)).Equals(uint64(egl.EGLenum_EGL_OPENGL_API))

	create, _ := l.Next(ctx)
	assert.For("create id").That(create.ID).Equals(uint64(1))
	assert.For("create share").That(create.Uint(2)).Equals(uint64(0))
	assert.For("create result").That(create.ResultUint()).Equals(uint64(0xc0))

	draw, _ := l.Next(ctx)
	assert.For("draw mode").That(draw.Uint(0)).Equals(uint64(gles.GLenum_GL_TRIANGLES))
	assert.For("draw count").That(draw.Int(1)).Equals(int64(8))
	assert.For("draw type").That(draw.Uint(2)).Equals(uint64(gles.GLenum_GL_UNSIGNED_BYTE))
	blob := draw.Blob(3)
	assert.For("blob").That(blob).IsNotNil()
	assert.For("blob addr").That(blob.Addr).Equals(uint64(0x1000))
	assert.For("blob data").ThatSlice(blob.Data).Equals([]byte{3, 1, 4, 1, 5, 9, 2, 6})
	assert.For("missing arg").That(draw.Arg(9)).Equals(capture.Value(capture.Null{}))

	clear, _ := l.Next(ctx)
	assert.For("clear red").That(clear.Float(0)).Equals(0.5)

	_, err = l.Next(ctx)
	assert.For("eof").ThatError(err).Equals(io.EOF)
}

func TestReadScriptErrors(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name   string
		script string
	}{
		{"unknown enum", "calls: [{name: glEnable, args: [{enum: GL_NOT_REAL}]}]"},
		{"no kind", "calls: [{name: glEnable, args: [{}]}]"},
		{"no name", "calls: [{args: [{int: 1}]}]"},
		{"bad hex", "calls: [{name: glBufferData, args: [{blob: {addr: 1, hex: zz}}]}]"},
		{"unknown field", "calls: [{name: glFlush, extra: 1}]"},
	} {
		_, err := capture.ReadScript(strings.NewReader(test.script))
		assert.For(test.name).ThatError(err).Failed()
	}
}

func TestScriptRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	in := &capture.List{}
	in.Write(ctx, &capture.Call{Name: "eglBindAPI", Args: []capture.Value{capture.Enum(egl.EGLenum_EGL_OPENGL_API)}, Result: capture.Bool(true)})
	in.Write(ctx, &capture.Call{Name: "glVertexPointer", Args: []capture.Value{
		capture.Sint(3), capture.Enum(gles.GLenum_GL_FLOAT), capture.Sint(0),
		&capture.Blob{Addr: 0x2000, Data: []byte{1, 2, 3, 4}},
	}, Result: capture.Null{}})
	in.Write(ctx, &capture.Call{Name: "glUniform1iv", Args: []capture.Value{
		capture.Sint(1), capture.Array{capture.Sint(7), capture.Sint(8)}, capture.String("x"),
	}, Result: capture.Null{}})

	buf := &bytes.Buffer{}
	assert.For("write").ThatError(capture.WriteScript(buf, in.Calls)).Succeeded()
	assert.For("egl name").ThatString(buf.String()).Contains("EGL_OPENGL_API")
	assert.For("gl name").ThatString(buf.String()).Contains("GL_FLOAT")

	out, err := capture.ReadScript(buf)
	assert.For("read").ThatError(err).Succeeded()
	assert.For("calls").ThatInteger(len(out.Calls)).Equals(3)
	for i := range in.Calls {
		assert.For("call %d", i).ThatString(out.Calls[i]).Equals(in.Calls[i].String())
	}
}

func TestBlobResolvesOnce(t *testing.T) {
	assert := assert.To(t)
	b := &capture.Blob{Addr: 0x10, Data: []byte{1, 2, 3, 4, 5, 6}}
	calls := 0
	size := func() uint64 { calls++; return 4 }
	assert.For("first").ThatSlice(b.Resolve(size)).Equals([]byte{1, 2, 3, 4})
	assert.For("second").ThatSlice(b.Resolve(size)).Equals([]byte{1, 2, 3, 4})
	assert.For("size calls").ThatInteger(calls).Equals(1)
	n, ok := b.Resolved()
	assert.For("resolved").ThatBoolean(ok).IsTrue()
	assert.For("length").That(n).Equals(uint64(4))

	b.Reset()
	big := b.Resolve(func() uint64 { return 100 })
	assert.For("truncated").ThatInteger(len(big)).Equals(6)
}

func TestMemoryRead(t *testing.T) {
	assert := assert.To(t)
	c := &capture.Call{Name: "glDrawElements", Args: []capture.Value{
		capture.Enum(gles.GLenum_GL_TRIANGLES),
		capture.Sint(4),
		&capture.Blob{Addr: 0, Data: []byte{9}},
		&capture.Blob{Addr: 0x100, Data: []byte{1, 2, 3, 4}},
	}}
	m := c.Memory()
	assert.For("blobs").ThatInteger(len(m)).Equals(1)
	assert.For("inside").ThatSlice(m.Read(0x101, 2)).Equals([]byte{2, 3})
	assert.For("whole").ThatSlice(m.Read(0x100, 4)).Equals([]byte{1, 2, 3, 4})
	assert.For("overflow").That(m.Read(0x102, 4)).IsNil()
	assert.For("before").That(m.Read(0xff, 1)).IsNil()
}

func TestListContext(t *testing.T) {
	assert := assert.To(t)
	l := &capture.List{Calls: []*capture.Call{{Name: "glFlush"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.Next(ctx)
	assert.For("cancelled").ThatError(err).Equals(context.Canceled)
}
