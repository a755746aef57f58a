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

package headless

import (
	"context"
	"fmt"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/glws"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/api/gles/size"
)

// clientBase is the address client bytes are sized from. It only needs to be
// non-null.
const clientBase = 0x1000

// objects are the GL objects shared by a share group.
type objects struct {
	buffers map[uint32][]byte
}

func newObjects() *objects {
	return &objects{buffers: map[uint32][]byte{}}
}

type attrib struct {
	enabled    bool
	size       int32
	ty         gles.GLenum
	normalized bool
	stride     int32
	buffer     uint32
	offset     uint64
	data       []byte
}

// Stats counts the work a context has been given.
type Stats struct {
	Flushes      int
	Finishes     int
	Draws        int
	Vertices     int64
	TextureBytes uint64
	BufferBytes  uint64
}

// Context is an in-memory glws.Context holding GL client state.
type Context struct {
	system     *System
	id         uint32
	visual     glws.Visual
	objects    *objects
	pixelStore map[gles.GLenum]int32
	bindings   map[gles.GLenum]uint32
	attribs    map[uint32]*attrib
	err        gles.GLenum
	stats      Stats
	destroyed  bool
}

var (
	_ glws.Context = (*Context)(nil)
	_ glws.GL      = (*Context)(nil)
)

// bindingOf maps buffer targets to the state parameter holding their binding.
var bindingOf = map[gles.GLenum]gles.GLenum{
	gles.GLenum_GL_ARRAY_BUFFER:         gles.GLenum_GL_ARRAY_BUFFER_BINDING,
	gles.GLenum_GL_ELEMENT_ARRAY_BUFFER: gles.GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING,
	gles.GLenum_GL_PIXEL_UNPACK_BUFFER:  gles.GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING,
	gles.GLenum_GL_PIXEL_PACK_BUFFER:    gles.GLenum_GL_PIXEL_PACK_BUFFER_BINDING,
}

func newContext(s *System, id uint32, visual glws.Visual, objects *objects) *Context {
	return &Context{
		system:  s,
		id:      id,
		visual:  visual,
		objects: objects,
		pixelStore: map[gles.GLenum]int32{
			gles.GLenum_GL_UNPACK_ALIGNMENT: 4,
			gles.GLenum_GL_PACK_ALIGNMENT:   4,
		},
		bindings: map[gles.GLenum]uint32{},
		attribs:  map[uint32]*attrib{},
	}
}

// Destroy releases the context. A current context stays bound until the
// next MakeCurrent.
func (c *Context) Destroy(ctx context.Context) {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.system.live--
	log.D(ctx, "Destroyed context %d", c.id)
}

// Destroyed returns true once Destroy has been called.
func (c *Context) Destroyed() bool { return c.destroyed }

// Stats returns the work counted so far.
func (c *Context) Stats() Stats { return c.stats }

func (c *Context) String() string { return fmt.Sprintf("context %d", c.id) }

// setError records e unless an earlier error has not been read yet.
func (c *Context) setError(e gles.GLenum) {
	if c.err == gles.GLenum_GL_NO_ERROR {
		c.err = e
	}
}

func (c *Context) resolver() *size.Resolver {
	return &size.Resolver{State: c, UnpackSubimage: true}
}

// GetError returns and clears the oldest unread error.
func (c *Context) GetError() gles.GLenum {
	e := c.err
	c.err = gles.GLenum_GL_NO_ERROR
	return e
}

// GetIntegerv returns pixel-store parameters and buffer bindings. Other
// parameters are 0.
func (c *Context) GetIntegerv(pname gles.GLenum) int32 {
	if v, ok := c.pixelStore[pname]; ok {
		return v
	}
	for target, binding := range bindingOf {
		if binding == pname {
			return int32(c.bindings[target])
		}
	}
	return 0
}

// GetBufferSubData copies size bytes at offset of the buffer bound to
// target. The copy is truncated at the end of the buffer.
func (c *Context) GetBufferSubData(target gles.GLenum, offset, size uint64) []byte {
	data := c.bound(target)
	if offset >= uint64(len(data)) {
		return nil
	}
	end := offset + size
	if end > uint64(len(data)) || end < offset {
		end = uint64(len(data))
	}
	return append([]byte{}, data[offset:end]...)
}

func (c *Context) bound(target gles.GLenum) []byte {
	name := c.bindings[target]
	if name == 0 {
		return nil
	}
	return c.objects.buffers[name]
}

// Flush counts a flush.
func (c *Context) Flush() { c.stats.Flushes++ }

// Finish counts a finish.
func (c *Context) Finish() { c.stats.Finishes++ }

// PixelStorei sets a pixel-store parameter.
func (c *Context) PixelStorei(pname gles.GLenum, param int32) {
	switch pname {
	case gles.GLenum_GL_UNPACK_ALIGNMENT, gles.GLenum_GL_PACK_ALIGNMENT:
		switch param {
		case 1, 2, 4, 8:
		default:
			c.setError(gles.GLenum_GL_INVALID_VALUE)
			return
		}
	case gles.GLenum_GL_UNPACK_ROW_LENGTH,
		gles.GLenum_GL_UNPACK_SKIP_ROWS,
		gles.GLenum_GL_UNPACK_SKIP_PIXELS,
		gles.GLenum_GL_UNPACK_SKIP_IMAGES,
		gles.GLenum_GL_UNPACK_IMAGE_HEIGHT,
		gles.GLenum_GL_PACK_ROW_LENGTH,
		gles.GLenum_GL_PACK_SKIP_ROWS,
		gles.GLenum_GL_PACK_SKIP_PIXELS:
		if param < 0 {
			c.setError(gles.GLenum_GL_INVALID_VALUE)
			return
		}
	case gles.GLenum_GL_UNPACK_SWAP_BYTES, gles.GLenum_GL_UNPACK_LSB_FIRST:
	default:
		c.setError(gles.GLenum_GL_INVALID_ENUM)
		return
	}
	c.pixelStore[pname] = param
}

// BindBuffer binds the buffer name to target, creating it if needed.
func (c *Context) BindBuffer(target gles.GLenum, buffer uint32) {
	if _, ok := bindingOf[target]; !ok {
		c.setError(gles.GLenum_GL_INVALID_ENUM)
		return
	}
	if _, ok := c.objects.buffers[buffer]; !ok && buffer != 0 {
		c.objects.buffers[buffer] = nil
	}
	c.bindings[target] = buffer
}

// BufferData replaces the store of the buffer bound to target with size
// bytes copied from data, or zeros if data is nil.
func (c *Context) BufferData(target gles.GLenum, size int64, data []byte, usage gles.GLenum) {
	name := c.bindings[target]
	switch {
	case name == 0:
		c.setError(gles.GLenum_GL_INVALID_OPERATION)
		return
	case size < 0:
		c.setError(gles.GLenum_GL_INVALID_VALUE)
		return
	}
	store := make([]byte, size)
	copy(store, data)
	c.objects.buffers[name] = store
	c.stats.BufferBytes += uint64(size)
}

// BufferSubData copies data into the buffer bound to target at offset.
func (c *Context) BufferSubData(target gles.GLenum, offset int64, data []byte) {
	store := c.bound(target)
	if store == nil || offset < 0 || offset+int64(len(data)) > int64(len(store)) {
		c.setError(gles.GLenum_GL_INVALID_VALUE)
		return
	}
	copy(store[offset:], data)
}

func (c *Context) attrib(index uint32) *attrib {
	a, ok := c.attribs[index]
	if !ok {
		a = &attrib{size: 4, ty: gles.GLenum_GL_FLOAT}
		c.attribs[index] = a
	}
	return a
}

// EnableVertexAttribArray enables the generic attribute array index.
func (c *Context) EnableVertexAttribArray(index uint32) {
	c.attrib(index).enabled = true
}

// VertexAttribPointer sets the layout of the generic attribute array index.
// The array is sourced from the bound GL_ARRAY_BUFFER if there is one, or
// from data otherwise.
func (c *Context) VertexAttribPointer(index uint32, size int32, ty gles.GLenum, normalized bool, stride int32, offset uint64, data []byte) {
	if size < 1 || size > 4 || stride < 0 {
		c.setError(gles.GLenum_GL_INVALID_VALUE)
		return
	}
	a := c.attrib(index)
	a.size, a.ty, a.normalized, a.stride = size, ty, normalized, stride
	a.buffer = c.bindings[gles.GLenum_GL_ARRAY_BUFFER]
	a.offset, a.data = offset, nil
	if a.buffer == 0 {
		a.data = data
	}
}

// DrawArrays validates and counts a non-indexed draw.
func (c *Context) DrawArrays(mode gles.GLenum, first, count int32) {
	if first < 0 || count < 0 {
		c.setError(gles.GLenum_GL_INVALID_VALUE)
		return
	}
	if count == 0 {
		return
	}
	c.draw(size.DrawArraysMaxIndex(first, count), count)
}

// DrawElementsBaseVertex validates and counts an indexed draw.
func (c *Context) DrawElementsBaseVertex(mode gles.GLenum, count int32, ty gles.GLenum, offset uint64, data []byte, baseVertex int32) {
	if count < 0 {
		c.setError(gles.GLenum_GL_INVALID_VALUE)
		return
	}
	if count == 0 {
		return
	}
	r := c.resolver()
	indices := offset
	if c.bindings[gles.GLenum_GL_ELEMENT_ARRAY_BUFFER] == 0 {
		if data == nil {
			c.setError(gles.GLenum_GL_INVALID_OPERATION)
			return
		}
		r.Memory = size.Region{Base: clientBase, Data: data}
		indices = clientBase
	}
	c.draw(r.DrawElementsMaxIndex(context.Background(), count, ty, indices, baseVertex), count)
}

// draw checks that every enabled array holds maxIndex+1 vertices.
func (c *Context) draw(maxIndex uint32, count int32) {
	ctx := context.Background()
	for _, a := range c.attribs {
		if !a.enabled {
			continue
		}
		need := size.VertexAttribPointerSize(ctx, a.size, a.ty, a.normalized, a.stride, maxIndex)
		have := uint64(len(a.data))
		if a.buffer != 0 {
			store := c.objects.buffers[a.buffer]
			if a.offset > uint64(len(store)) {
				have = 0
			} else {
				have = uint64(len(store)) - a.offset
			}
		}
		if have < need {
			c.setError(gles.GLenum_GL_INVALID_OPERATION)
			return
		}
	}
	c.stats.Draws++
	c.stats.Vertices += int64(count)
}

// TexImage2D validates and counts a texture upload. The pixels are sourced
// from the bound GL_PIXEL_UNPACK_BUFFER at offset if there is one, or from
// pixels otherwise. Nil client pixels allocate the level without uploading.
func (c *Context) TexImage2D(target gles.GLenum, level, internalFormat, width, height, border int32, format, ty gles.GLenum, offset uint64, pixels []byte) {
	if width < 0 || height < 0 || border != 0 {
		c.setError(gles.GLenum_GL_INVALID_VALUE)
		return
	}
	c.upload(format, ty, width, height, offset, pixels)
}

// TexSubImage2D validates and counts a texture update.
func (c *Context) TexSubImage2D(target gles.GLenum, level, x, y, width, height int32, format, ty gles.GLenum, offset uint64, pixels []byte) {
	if x < 0 || y < 0 || width < 0 || height < 0 {
		c.setError(gles.GLenum_GL_INVALID_VALUE)
		return
	}
	c.upload(format, ty, width, height, offset, pixels)
}

func (c *Context) upload(format, ty gles.GLenum, width, height int32, offset uint64, pixels []byte) {
	if c.bindings[gles.GLenum_GL_PIXEL_UNPACK_BUFFER] != 0 {
		store := c.bound(gles.GLenum_GL_PIXEL_UNPACK_BUFFER)
		if offset > uint64(len(store)) {
			c.setError(gles.GLenum_GL_INVALID_OPERATION)
			return
		}
		pixels = store[offset:]
	} else if pixels == nil {
		return
	}
	need := c.resolver().TexImage2DSize(context.Background(), format, ty, width, height)
	if need == 0 && width > 0 && height > 0 {
		c.setError(gles.GLenum_GL_INVALID_ENUM)
		return
	}
	if uint64(len(pixels)) < need {
		c.setError(gles.GLenum_GL_INVALID_OPERATION)
		return
	}
	c.stats.TextureBytes += need
}

func (c *Context) snapshot() map[string]interface{} {
	pixelStore := map[string]interface{}{}
	for pname, v := range c.pixelStore {
		pixelStore[pname.String()] = int64(v)
	}
	bindings := map[string]interface{}{}
	for target, name := range c.bindings {
		bindings[bindingOf[target].String()] = int64(name)
	}
	buffers := map[string]interface{}{}
	for name, data := range c.objects.buffers {
		buffers[fmt.Sprint(name)] = int64(len(data))
	}
	return map[string]interface{}{
		"id":         int64(c.id),
		"pixelStore": pixelStore,
		"bindings":   bindings,
		"buffers":    buffers,
		"stats": map[string]interface{}{
			"flushes":      c.stats.Flushes,
			"finishes":     c.stats.Finishes,
			"draws":        c.stats.Draws,
			"vertices":     c.stats.Vertices,
			"textureBytes": c.stats.TextureBytes,
			"bufferBytes":  c.stats.BufferBytes,
		},
	}
}

// current forwards GL calls to the current context of a System.
type current struct {
	s *System
}

func (g current) GetIntegerv(pname gles.GLenum) int32 {
	if c := g.s.context; c != nil {
		return c.GetIntegerv(pname)
	}
	return 0
}

func (g current) GetBufferSubData(target gles.GLenum, offset, size uint64) []byte {
	if c := g.s.context; c != nil {
		return c.GetBufferSubData(target, offset, size)
	}
	return nil
}

func (g current) GetError() gles.GLenum {
	if c := g.s.context; c != nil {
		return c.GetError()
	}
	return gles.GLenum_GL_NO_ERROR
}

func (g current) Flush() {
	if c := g.s.context; c != nil {
		c.Flush()
	}
}

func (g current) Finish() {
	if c := g.s.context; c != nil {
		c.Finish()
	}
}

func (g current) PixelStorei(pname gles.GLenum, param int32) {
	if c := g.s.context; c != nil {
		c.PixelStorei(pname, param)
	}
}

func (g current) BindBuffer(target gles.GLenum, buffer uint32) {
	if c := g.s.context; c != nil {
		c.BindBuffer(target, buffer)
	}
}

func (g current) BufferData(target gles.GLenum, size int64, data []byte, usage gles.GLenum) {
	if c := g.s.context; c != nil {
		c.BufferData(target, size, data, usage)
	}
}

func (g current) BufferSubData(target gles.GLenum, offset int64, data []byte) {
	if c := g.s.context; c != nil {
		c.BufferSubData(target, offset, data)
	}
}

func (g current) EnableVertexAttribArray(index uint32) {
	if c := g.s.context; c != nil {
		c.EnableVertexAttribArray(index)
	}
}

func (g current) VertexAttribPointer(index uint32, size int32, ty gles.GLenum, normalized bool, stride int32, offset uint64, data []byte) {
	if c := g.s.context; c != nil {
		c.VertexAttribPointer(index, size, ty, normalized, stride, offset, data)
	}
}

func (g current) DrawArrays(mode gles.GLenum, first, count int32) {
	if c := g.s.context; c != nil {
		c.DrawArrays(mode, first, count)
	}
}

func (g current) DrawElementsBaseVertex(mode gles.GLenum, count int32, ty gles.GLenum, offset uint64, data []byte, baseVertex int32) {
	if c := g.s.context; c != nil {
		c.DrawElementsBaseVertex(mode, count, ty, offset, data, baseVertex)
	}
}

func (g current) TexImage2D(target gles.GLenum, level, internalFormat, width, height, border int32, format, ty gles.GLenum, offset uint64, pixels []byte) {
	if c := g.s.context; c != nil {
		c.TexImage2D(target, level, internalFormat, width, height, border, format, ty, offset, pixels)
	}
}

func (g current) TexSubImage2D(target gles.GLenum, level, x, y, width, height int32, format, ty gles.GLenum, offset uint64, pixels []byte) {
	if c := g.s.context; c != nil {
		c.TexSubImage2D(target, level, x, y, width, height, format, ty, offset, pixels)
	}
}
