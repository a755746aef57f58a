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

package headless_test

import (
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/glws"
	"github.com/gfxreplay/glretrace/gapir/glws/headless"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

func newCurrent(t *testing.T) (*headless.System, *headless.Context, glws.GL) {
	ctx := log.Testing(t)
	s := headless.New()
	d, err := s.CreateDrawable(ctx, glws.DefaultVisual)
	assert.For(t, "drawable").ThatError(err).Succeeded()
	c, err := s.CreateContext(ctx, glws.DefaultVisual, nil)
	assert.For(t, "context").ThatError(err).Succeeded()
	assert.For(t, "make current").ThatError(s.MakeCurrent(ctx, d, c)).Succeeded()
	return s, c.(*headless.Context), s.GL()
}

func TestMakeCurrent(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	s := headless.New()
	d, _ := s.CreateDrawable(ctx, glws.DefaultVisual)
	c, _ := s.CreateContext(ctx, glws.DefaultVisual, nil)
	assert.For("live").ThatInteger(s.Live()).Equals(2)

	assert.For("half").ThatError(s.MakeCurrent(ctx, d, nil)).Equals(headless.ErrBadMatch)
	assert.For("bind").ThatError(s.MakeCurrent(ctx, d, c)).Succeeded()
	cd, cc := s.Current()
	assert.For("current drawable").That(cd).Equals(d)
	assert.For("current context").That(cc).Equals(c)

	other := headless.New()
	od, _ := other.CreateDrawable(ctx, glws.DefaultVisual)
	assert.For("foreign").ThatError(s.MakeCurrent(ctx, od, c)).Equals(headless.ErrForeign)

	c.Destroy(ctx)
	c.Destroy(ctx)
	assert.For("live after destroy").ThatInteger(s.Live()).Equals(1)
	assert.For("destroyed").ThatError(s.MakeCurrent(ctx, d, c)).Equals(headless.ErrDestroyed)
	_, err := s.CreateContext(ctx, glws.DefaultVisual, c)
	assert.For("destroyed share").ThatError(err).Equals(headless.ErrDestroyed)

	assert.For("release").ThatError(s.MakeCurrent(ctx, nil, nil)).Succeeded()
	cd, cc = s.Current()
	assert.For("released drawable").That(cd).IsNil()
	assert.For("released context").That(cc).IsNil()
}

func TestSwapBuffers(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	s := headless.New()
	d, _ := s.CreateDrawable(ctx, glws.DefaultVisual)
	assert.For("swap").ThatError(d.SwapBuffers(ctx)).Succeeded()
	assert.For("swaps").ThatInteger(d.(*headless.Drawable).Swaps()).Equals(1)
	d.Destroy(ctx)
	assert.For("destroyed").ThatError(d.SwapBuffers(ctx)).Equals(headless.ErrDestroyed)
}

func TestPixelStore(t *testing.T) {
	assert := assert.To(t)
	_, _, gl := newCurrent(t)
	assert.For("default alignment").That(gl.GetIntegerv(gles.GLenum_GL_UNPACK_ALIGNMENT)).Equals(int32(4))

	gl.PixelStorei(gles.GLenum_GL_UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gles.GLenum_GL_UNPACK_ROW_LENGTH, 64)
	assert.For("alignment").That(gl.GetIntegerv(gles.GLenum_GL_UNPACK_ALIGNMENT)).Equals(int32(1))
	assert.For("row length").That(gl.GetIntegerv(gles.GLenum_GL_UNPACK_ROW_LENGTH)).Equals(int32(64))
	assert.For("no error").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)

	gl.PixelStorei(gles.GLenum_GL_UNPACK_ALIGNMENT, 3)
	gl.PixelStorei(gles.GLenum_GL_TEXTURE_2D, 1)
	assert.For("first error").That(gl.GetError()).Equals(gles.GLenum_GL_INVALID_VALUE)
	assert.For("cleared").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)
	assert.For("unchanged").That(gl.GetIntegerv(gles.GLenum_GL_UNPACK_ALIGNMENT)).Equals(int32(1))
}

func TestBuffers(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	s, _, gl := newCurrent(t)

	gl.BufferData(gles.GLenum_GL_ARRAY_BUFFER, 4, nil, gles.GLenum_GL_STATIC_DRAW)
	assert.For("unbound").That(gl.GetError()).Equals(gles.GLenum_GL_INVALID_OPERATION)

	gl.BindBuffer(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER, 7)
	gl.BufferData(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER, 6, []byte{1, 2, 3}, gles.GLenum_GL_STATIC_DRAW)
	gl.BufferSubData(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER, 4, []byte{9, 9})
	assert.For("binding").That(gl.GetIntegerv(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING)).Equals(int32(7))
	assert.For("contents").ThatSlice(gl.GetBufferSubData(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER, 1, 100)).
		Equals([]byte{2, 3, 0, 9, 9})
	assert.For("no error").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)

	// A shared context sees the same buffer store.
	d, _ := s.Current()
	shared, err := s.CreateContext(ctx, glws.DefaultVisual, mustContext(s))
	assert.For("share").ThatError(err).Succeeded()
	assert.For("current").ThatError(s.MakeCurrent(ctx, d, shared)).Succeeded()
	gl.BindBuffer(gles.GLenum_GL_ARRAY_BUFFER, 7)
	assert.For("shared contents").ThatSlice(gl.GetBufferSubData(gles.GLenum_GL_ARRAY_BUFFER, 0, 2)).
		Equals([]byte{1, 2})
}

func mustContext(s *headless.System) glws.Context {
	_, c := s.Current()
	return c
}

func TestDrawValidation(t *testing.T) {
	assert := assert.To(t)
	_, c, gl := newCurrent(t)

	vertices := make([]byte, 3*3*4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gles.GLenum_GL_FLOAT, false, 0, 0, vertices)
	gl.DrawArrays(gles.GLenum_GL_TRIANGLES, 0, 3)
	assert.For("in range").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)
	gl.DrawArrays(gles.GLenum_GL_TRIANGLES, 1, 3)
	assert.For("past end").That(gl.GetError()).Equals(gles.GLenum_GL_INVALID_OPERATION)

	gl.DrawElementsBaseVertex(gles.GLenum_GL_TRIANGLES, 3, gles.GLenum_GL_UNSIGNED_BYTE, 0, []byte{0, 2, 1}, 0)
	assert.For("client indices").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)
	gl.DrawElementsBaseVertex(gles.GLenum_GL_TRIANGLES, 3, gles.GLenum_GL_UNSIGNED_BYTE, 0, []byte{0, 2, 1}, 1)
	assert.For("base vertex past end").That(gl.GetError()).Equals(gles.GLenum_GL_INVALID_OPERATION)

	gl.BindBuffer(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER, 1)
	gl.BufferData(gles.GLenum_GL_ELEMENT_ARRAY_BUFFER, 3, []byte{2, 1, 0}, gles.GLenum_GL_STATIC_DRAW)
	gl.DrawElementsBaseVertex(gles.GLenum_GL_TRIANGLES, 3, gles.GLenum_GL_UNSIGNED_BYTE, 0, nil, 0)
	assert.For("buffer indices").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)

	stats := c.Stats()
	assert.For("draws").ThatInteger(stats.Draws).Equals(3)
	assert.For("vertices").That(stats.Vertices).Equals(int64(9))
}

func TestTextureUpload(t *testing.T) {
	assert := assert.To(t)
	_, c, gl := newCurrent(t)

	gl.TexImage2D(gles.GLenum_GL_TEXTURE_2D, 0, int32(gles.GLenum_GL_RGB), 3, 2, 0,
		gles.GLenum_GL_RGB, gles.GLenum_GL_UNSIGNED_BYTE, 0, make([]byte, 24))
	assert.For("padded rows").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)

	gl.TexImage2D(gles.GLenum_GL_TEXTURE_2D, 0, int32(gles.GLenum_GL_RGB), 3, 2, 0,
		gles.GLenum_GL_RGB, gles.GLenum_GL_UNSIGNED_BYTE, 0, make([]byte, 18))
	assert.For("short").That(gl.GetError()).Equals(gles.GLenum_GL_INVALID_OPERATION)

	gl.PixelStorei(gles.GLenum_GL_UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gles.GLenum_GL_TEXTURE_2D, 0, 0, 0, 3, 2,
		gles.GLenum_GL_RGB, gles.GLenum_GL_UNSIGNED_BYTE, 0, make([]byte, 18))
	assert.For("tight rows").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)
	assert.For("bytes").That(c.Stats().TextureBytes).Equals(uint64(42))
}

func TestTextureUploadFromUnpackBuffer(t *testing.T) {
	assert := assert.To(t)
	_, c, gl := newCurrent(t)

	gl.BindBuffer(gles.GLenum_GL_PIXEL_UNPACK_BUFFER, 4)
	gl.BufferData(gles.GLenum_GL_PIXEL_UNPACK_BUFFER, 40, nil, gles.GLenum_GL_STATIC_DRAW)
	gl.TexImage2D(gles.GLenum_GL_TEXTURE_2D, 0, int32(gles.GLenum_GL_RGBA), 2, 2, 0,
		gles.GLenum_GL_RGBA, gles.GLenum_GL_UNSIGNED_BYTE, 24, nil)
	assert.For("in range").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)
	assert.For("bytes").That(c.Stats().TextureBytes).Equals(uint64(16))

	gl.TexSubImage2D(gles.GLenum_GL_TEXTURE_2D, 0, 0, 0, 2, 2,
		gles.GLenum_GL_RGBA, gles.GLenum_GL_UNSIGNED_BYTE, 32, nil)
	assert.For("past the end").That(gl.GetError()).Equals(gles.GLenum_GL_INVALID_OPERATION)

	gl.TexSubImage2D(gles.GLenum_GL_TEXTURE_2D, 0, 0, 0, 2, 2,
		gles.GLenum_GL_RGBA, gles.GLenum_GL_UNSIGNED_BYTE, 48, nil)
	assert.For("outside").That(gl.GetError()).Equals(gles.GLenum_GL_INVALID_OPERATION)
	assert.For("unchanged").That(c.Stats().TextureBytes).Equals(uint64(16))
}

func TestSnapshot(t *testing.T) {
	assert := assert.To(t)
	s, _, gl := newCurrent(t)
	gl.PixelStorei(gles.GLenum_GL_UNPACK_ALIGNMENT, 2)
	gl.Flush()

	snap := s.Snapshot()
	assert.For("live").That(snap["live"]).Equals(2)
	context := snap["context"].(map[string]interface{})
	pixelStore := context["pixelStore"].(map[string]interface{})
	assert.For("alignment").That(pixelStore["GL_UNPACK_ALIGNMENT"]).Equals(int64(2))
	stats := context["stats"].(map[string]interface{})
	assert.For("flushes").That(stats["flushes"]).Equals(1)
	drawable := snap["drawable"].(map[string]interface{})
	assert.For("double buffer").That(drawable["doubleBuffer"]).Equals(true)
}

func TestNoCurrentContext(t *testing.T) {
	assert := assert.To(t)
	gl := headless.New().GL()
	gl.Flush()
	gl.PixelStorei(gles.GLenum_GL_UNPACK_ALIGNMENT, 1)
	assert.For("integer").That(gl.GetIntegerv(gles.GLenum_GL_UNPACK_ALIGNMENT)).Equals(int32(0))
	assert.For("error").That(gl.GetError()).Equals(gles.GLenum_GL_NO_ERROR)
}
