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

package glretrace_test

import (
	"context"
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapir/frame"
	"github.com/gfxreplay/glretrace/gapir/glretrace"
	"github.com/gfxreplay/glretrace/gapir/glws"
	"github.com/gfxreplay/glretrace/gapir/glws/mock_glws"
	"github.com/gfxreplay/glretrace/gapis/api/egl"
	"github.com/gfxreplay/glretrace/gapis/api/gles"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
)

const (
	display  = capture.Pointer(0xd0)
	config   = capture.Pointer(0xcf)
	surfaceA = capture.Pointer(0x51)
	surfaceB = capture.Pointer(0x52)
	contextA = capture.Pointer(0xc1)
	contextB = capture.Pointer(0xc2)
)

func call(name string, result capture.Value, args ...capture.Value) *capture.Call {
	if result == nil {
		result = capture.Null{}
	}
	return &capture.Call{Name: name, Args: args, Result: result}
}

func bindAPI(api egl.EGLenum) *capture.Call {
	return call("eglBindAPI", capture.Bool(true), capture.Enum(api))
}

func createSurface(s capture.Pointer) *capture.Call {
	return call("eglCreateWindowSurface", s, display, config, capture.Pointer(0x77), capture.Null{})
}

func createContext(c, share capture.Pointer) *capture.Call {
	return call("eglCreateContext", c, display, config, share, capture.Null{})
}

func makeCurrent(s, c capture.Pointer) *capture.Call {
	return call("eglMakeCurrent", capture.Bool(true), display, s, s, c)
}

func swap(s capture.Pointer) *capture.Call {
	return call("eglSwapBuffers", capture.Bool(true), display, s)
}

type fixture struct {
	ctrl     *gomock.Controller
	system   *mock_glws.MockSystem
	gl       *mock_glws.MockGL
	frames   *frame.Counter
	engine   *glretrace.Engine
	contexts map[capture.Pointer]*mock_glws.MockContext
	surfaces map[capture.Pointer]*mock_glws.MockDrawable
}

func newFixture(t *testing.T, visual glws.Visual) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		system:   mock_glws.NewMockSystem(ctrl),
		gl:       mock_glws.NewMockGL(ctrl),
		frames:   &frame.Counter{},
		contexts: map[capture.Pointer]*mock_glws.MockContext{},
		surfaces: map[capture.Pointer]*mock_glws.MockDrawable{},
	}
	f.system.EXPECT().GL().Return(f.gl)
	f.engine = glretrace.New(f.system, visual, f.frames)
	return f
}

// setup creates the given surfaces and contexts through the engine.
func (f *fixture) setup(ctx context.Context, t *testing.T, surfaces []capture.Pointer, contexts []capture.Pointer) {
	assert := assert.To(t)
	assert.For("bind").ThatError(f.engine.Replay(ctx, bindAPI(egl.EGLenum_EGL_OPENGL_API))).Succeeded()
	for _, s := range surfaces {
		d := mock_glws.NewMockDrawable(f.ctrl)
		f.surfaces[s] = d
		f.system.EXPECT().CreateDrawable(gomock.Any(), gomock.Any()).Return(d, nil)
		assert.For("surface %v", s).ThatError(f.engine.Replay(ctx, createSurface(s))).Succeeded()
	}
	for _, c := range contexts {
		m := mock_glws.NewMockContext(f.ctrl)
		f.contexts[c] = m
		f.system.EXPECT().CreateContext(gomock.Any(), gomock.Any(), nil).Return(m, nil)
		assert.For("context %v", c).ThatError(f.engine.Replay(ctx, createContext(c, 0))).Succeeded()
	}
}

func (f *fixture) current(ctx context.Context, t *testing.T, s, c capture.Pointer) {
	f.system.EXPECT().MakeCurrent(gomock.Any(), f.surfaces[s], f.contexts[c]).Return(nil)
	assert.For(t, "make current").ThatError(f.engine.Replay(ctx, makeCurrent(s, c))).Succeeded()
}

func TestBindAPI(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	assert.For("initial").That(f.engine.API()).Equals(egl.EGLenum(0))
	f.engine.Replay(ctx, bindAPI(egl.EGLenum_EGL_OPENGL_API))
	assert.For("bound").That(f.engine.API()).Equals(egl.EGLenum_EGL_OPENGL_API)
}

func TestMakeCurrentSamePairIsNoOp(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA})

	f.current(ctx, t, surfaceA, contextA)
	// No further MakeCurrent or Flush is expected.
	assert.For("again").ThatError(f.engine.Replay(ctx, makeCurrent(surfaceA, contextA))).Succeeded()

	d, c := f.engine.Current()
	assert.For("drawable").That(d).Equals(f.surfaces[surfaceA])
	assert.For("context").That(c).Equals(f.contexts[contextA])
	assert.For("frames").That(f.frames.Frames()).Equals(uint64(0))
}

func TestContextSwitchDoubleBuffered(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA, contextB})
	f.current(ctx, t, surfaceA, contextA)

	f.gl.EXPECT().Flush()
	f.current(ctx, t, surfaceA, contextB)
	assert.For("frames").That(f.frames.Frames()).Equals(uint64(0))
}

func TestContextSwitchSingleBuffered(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.Visual{DoubleBuffer: false})
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA, contextB})
	f.current(ctx, t, surfaceA, contextA)

	f.gl.EXPECT().Flush()
	f.current(ctx, t, surfaceA, contextB)
	assert.For("frames").That(f.frames.Frames()).Equals(uint64(1))
}

func TestSwapDoubleBuffered(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA})
	f.current(ctx, t, surfaceA, contextA)

	f.surfaces[surfaceA].EXPECT().SwapBuffers(gomock.Any()).Return(nil).Times(2)
	assert.For("swap 1").ThatError(f.engine.Replay(ctx, swap(surfaceA))).Succeeded()
	assert.For("swap 2").ThatError(f.engine.Replay(ctx, swap(surfaceA))).Succeeded()
	assert.For("frames").That(f.frames.Frames()).Equals(uint64(2))
}

func TestSwapSingleBuffered(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.Visual{DoubleBuffer: false})
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA})
	f.current(ctx, t, surfaceA, contextA)

	f.gl.EXPECT().Flush()
	assert.For("swap").ThatError(f.engine.Replay(ctx, swap(surfaceA))).Succeeded()
	assert.For("frames").That(f.frames.Frames()).Equals(uint64(1))
}

func TestMakeCurrentFailureClearsPair(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceA, surfaceB}, []capture.Pointer{contextA})
	f.current(ctx, t, surfaceA, contextA)

	failure := errors.New("BAD_MATCH")
	f.gl.EXPECT().Flush()
	f.system.EXPECT().MakeCurrent(gomock.Any(), f.surfaces[surfaceB], f.contexts[contextA]).Return(failure)
	err := f.engine.Replay(ctx, makeCurrent(surfaceB, contextA))
	assert.For("err").ThatError(err).HasCause(failure)
	d, c := f.engine.Current()
	assert.For("drawable").That(d).IsNil()
	assert.For("context").That(c).IsNil()
}

func TestMakeCurrentUnknownHandles(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA})
	f.current(ctx, t, surfaceA, contextA)

	// Releasing the context resolves to a nil pair, which succeeds.
	f.gl.EXPECT().Flush()
	f.system.EXPECT().MakeCurrent(gomock.Any(), nil, nil).Return(nil)
	assert.For("release").ThatError(f.engine.Replay(ctx, makeCurrent(0, 0))).Succeeded()
	d, c := f.engine.Current()
	assert.For("drawable").That(d).IsNil()
	assert.For("context").That(c).IsNil()

	// A half-resolved pair never becomes current.
	f.system.EXPECT().MakeCurrent(gomock.Any(), f.surfaces[surfaceA], nil).Return(nil)
	assert.For("half").ThatError(f.engine.Replay(ctx, makeCurrent(surfaceA, 0x999))).Succeeded()
	d, c = f.engine.Current()
	assert.For("half drawable").That(d).IsNil()
	assert.For("half context").That(c).IsNil()
}

func TestDestroy(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA})

	destroyContext := call("eglDestroyContext", capture.Bool(true), display, contextA)
	destroySurface := call("eglDestroySurface", capture.Bool(true), display, surfaceA)
	f.contexts[contextA].EXPECT().Destroy(gomock.Any())
	f.surfaces[surfaceA].EXPECT().Destroy(gomock.Any())
	assert.For("context").ThatError(f.engine.Replay(ctx, destroyContext)).Succeeded()
	assert.For("surface").ThatError(f.engine.Replay(ctx, destroySurface)).Succeeded()

	// Destroying handles that are no longer known does nothing.
	assert.For("context again").ThatError(f.engine.Replay(ctx, destroyContext)).Succeeded()
	assert.For("surface again").ThatError(f.engine.Replay(ctx, destroySurface)).Succeeded()
	contexts, drawables := f.engine.Live()
	assert.For("contexts").ThatInteger(contexts).Equals(0)
	assert.For("drawables").ThatInteger(drawables).Equals(0)
}

func TestDestroyCurrent(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceA}, []capture.Pointer{contextA})
	f.current(ctx, t, surfaceA, contextA)

	gomock.InOrder(
		f.gl.EXPECT().Flush(),
		f.system.EXPECT().MakeCurrent(gomock.Any(), nil, nil).Return(nil),
		f.contexts[contextA].EXPECT().Destroy(gomock.Any()),
	)
	destroyContext := call("eglDestroyContext", capture.Bool(true), display, contextA)
	assert.For("destroy").ThatError(f.engine.Replay(ctx, destroyContext)).Succeeded()
	d, c := f.engine.Current()
	assert.For("drawable").That(d).IsNil()
	assert.For("context").That(c).IsNil()

	// The surface is no longer current, so it is destroyed without another
	// release.
	f.surfaces[surfaceA].EXPECT().Destroy(gomock.Any())
	destroySurface := call("eglDestroySurface", capture.Bool(true), display, surfaceA)
	assert.For("surface").ThatError(f.engine.Replay(ctx, destroySurface)).Succeeded()

	// Close has nothing left to release.
	assert.For("close").ThatError(f.engine.Close(ctx)).Succeeded()
}

func TestShareContext(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, nil, []capture.Pointer{contextA})

	shared := mock_glws.NewMockContext(f.ctrl)
	f.system.EXPECT().CreateContext(gomock.Any(), glws.DefaultVisual, f.contexts[contextA]).Return(shared, nil)
	assert.For("shared").ThatError(f.engine.Replay(ctx, createContext(contextB, contextA))).Succeeded()

	// An unknown share handle means no sharing.
	unshared := mock_glws.NewMockContext(f.ctrl)
	f.system.EXPECT().CreateContext(gomock.Any(), glws.DefaultVisual, nil).Return(unshared, nil)
	assert.For("unshared").ThatError(f.engine.Replay(ctx, createContext(0xc3, 0xbad))).Succeeded()
}

func TestCreateContextRequiresOpenGL(t *testing.T) {
	for _, test := range []struct {
		name string
		bind []*capture.Call
	}{
		{"unset", nil},
		{"es", []*capture.Call{bindAPI(egl.EGLenum_EGL_OPENGL_ES_API)}},
	} {
		t.Run(test.name, func(t *testing.T) {
			ctx, rec := log.Record(context.Background())
			assert := assert.To(t)
			f := newFixture(t, glws.DefaultVisual)
			for _, c := range test.bind {
				f.engine.Replay(ctx, c)
			}
			err := f.engine.Replay(ctx, createContext(contextA, 0))
			assert.For("cause").ThatError(err).HasCause(glretrace.ErrAbort)
			assert.For("reported").ThatInteger(rec.Count(log.Error)).Equals(1)
		})
	}
}

func TestUnknownCallsWarnOnce(t *testing.T) {
	ctx, rec := log.Record(context.Background())
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	for i := 0; i < 3; i++ {
		assert.For("skip").ThatError(f.engine.Replay(ctx, call("glFrobnicate", nil))).Succeeded()
	}
	assert.For("ignored").ThatError(f.engine.Replay(ctx, call("eglGetError", capture.Enum(0x3000)))).Succeeded()
	assert.For("warnings").ThatSlice(rec.Texts(log.Warning)).Equals([]string{
		"Unsupported call glFrobnicate skipped",
	})
	assert.For("supported").ThatBoolean(glretrace.Supported("eglQueryString")).IsTrue()
	assert.For("unsupported").ThatBoolean(glretrace.Supported("glFrobnicate")).IsFalse()
}

func TestClose(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.setup(ctx, t, []capture.Pointer{surfaceB, surfaceA}, []capture.Pointer{contextB, contextA})
	f.current(ctx, t, surfaceA, contextA)

	gomock.InOrder(
		f.system.EXPECT().MakeCurrent(gomock.Any(), nil, nil).Return(nil),
		f.contexts[contextA].EXPECT().Destroy(gomock.Any()),
		f.contexts[contextB].EXPECT().Destroy(gomock.Any()),
		f.surfaces[surfaceA].EXPECT().Destroy(gomock.Any()),
		f.surfaces[surfaceB].EXPECT().Destroy(gomock.Any()),
	)
	assert.For("close").ThatError(f.engine.Close(ctx)).Succeeded()
	contexts, drawables := f.engine.Live()
	assert.For("live").ThatInteger(contexts + drawables).Equals(0)
}

func TestRunAbort(t *testing.T) {
	ctx, _ := log.Record(context.Background())
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	source := &capture.List{Calls: []*capture.Call{
		call("glFrobnicate", nil),
		createContext(contextA, 0),
		bindAPI(egl.EGLenum_EGL_OPENGL_API),
	}}
	replayed := 0
	err := glretrace.Run(ctx, f.engine, source, func(*capture.Call, error) { replayed++ })
	assert.For("cause").ThatError(err).HasCause(glretrace.ErrAbort)
	assert.For("replayed").ThatInteger(replayed).Equals(2)
}

func TestRunContinuesAfterErrors(t *testing.T) {
	ctx, rec := log.Record(context.Background())
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.system.EXPECT().CreateDrawable(gomock.Any(), gomock.Any()).Return(nil, errors.New("no display"))
	source := &capture.List{Calls: []*capture.Call{
		createSurface(surfaceA),
		bindAPI(egl.EGLenum_EGL_OPENGL_API),
	}}
	err := glretrace.Run(ctx, f.engine, source, nil)
	assert.For("err").ThatError(err).Succeeded()
	assert.For("api").That(f.engine.API()).Equals(egl.EGLenum_EGL_OPENGL_API)
	assert.For("warnings").ThatInteger(rec.Count(log.Warning)).Equals(1)
}

func texImage2D(width, height int32, format, ty gles.GLenum, pixels capture.Value) *capture.Call {
	return call("glTexImage2D", nil, capture.Enum(gles.GLenum_GL_TEXTURE_2D), capture.Sint(0),
		capture.Sint(format), capture.Sint(width), capture.Sint(height), capture.Sint(0),
		capture.Enum(format), capture.Enum(ty), pixels)
}

func TestTexImageFromUnpackBuffer(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	f.gl.EXPECT().GetIntegerv(gles.GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING).Return(int32(5)).AnyTimes()
	f.gl.EXPECT().TexImage2D(gles.GLenum_GL_TEXTURE_2D, int32(0), int32(gles.GLenum_GL_RGBA),
		int32(2), int32(2), int32(0), gles.GLenum_GL_RGBA, gles.GLenum_GL_UNSIGNED_BYTE,
		uint64(24), gomock.Nil())

	upload := texImage2D(2, 2, gles.GLenum_GL_RGBA, gles.GLenum_GL_UNSIGNED_BYTE, capture.Pointer(24))
	assert.For("upload").ThatError(f.engine.Replay(ctx, upload)).Succeeded()
}

func TestBlobLengthsResolvedPerReplay(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	f := newFixture(t, glws.DefaultVisual)
	alignment := int32(0)
	f.gl.EXPECT().GetIntegerv(gomock.Any()).DoAndReturn(func(pname gles.GLenum) int32 {
		if pname == gles.GLenum_GL_UNPACK_ALIGNMENT {
			return alignment
		}
		return 0
	}).AnyTimes()
	uploaded := []int{}
	f.gl.EXPECT().TexImage2D(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(target gles.GLenum, level, internalFormat, width, height, border int32, format, ty gles.GLenum, offset uint64, pixels []byte) {
			uploaded = append(uploaded, len(pixels))
		}).Times(2)

	pixels := &capture.Blob{Addr: 0x1000, Data: make([]byte, 24)}
	upload := texImage2D(3, 2, gles.GLenum_GL_RGB, gles.GLenum_GL_UNSIGNED_BYTE, pixels)
	assert.For("padded").ThatError(f.engine.Replay(ctx, upload)).Succeeded()
	_, resolved := pixels.Resolved()
	assert.For("resolved").ThatBoolean(resolved).IsFalse()

	alignment = 1
	assert.For("tight").ThatError(f.engine.Replay(ctx, upload)).Succeeded()
	assert.For("lengths").ThatSlice(uploaded).Equals([]int{24, 18})
}
