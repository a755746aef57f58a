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

package gapii_test

import (
	"bytes"
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapii"
	"github.com/gfxreplay/glretrace/gapii/shim"
	"github.com/gfxreplay/glretrace/gapis/api/egl"
	"github.com/gfxreplay/glretrace/gapis/capture"
)

func TestSession(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	swaps := 0
	lib := map[string]shim.Func{
		"glGetIntegerv":  func(args ...uintptr) uintptr { return 0 },
		"eglBindAPI":     func(args ...uintptr) uintptr { return 1 },
		"eglSwapBuffers": func(args ...uintptr) uintptr { swaps++; return 1 },
		"glFlush":        func(args ...uintptr) uintptr { return 0 },
	}
	s := gapii.Start(shim.LoaderFunc(func(name string) (shim.Func, bool) {
		f, ok := lib[name]
		return f, ok
	}), gapii.Options{})

	s.Table.Call(ctx, "eglBindAPI", uintptr(egl.EGLenum_EGL_OPENGL_API))
	s.Table.Call(ctx, "glFlush")
	assert.For("swap").That(s.Table.Call(ctx, "eglSwapBuffers", 0xd0, 0x51)).Equals(uintptr(1))
	assert.For("swaps").ThatInteger(swaps).Equals(1)
	assert.For("frames").That(s.Recorder.Frames()).Equals(uint32(1))

	buf := &bytes.Buffer{}
	assert.For("save").ThatError(s.Save(buf)).Succeeded()
	calls, err := capture.ReadScript(buf)
	assert.For("read").ThatError(err).Succeeded()
	assert.For("calls").ThatInteger(len(calls.Calls)).Equals(3)
	assert.For("api").That(calls.Calls[0].Uint(0)).Equals(uint64(egl.EGLenum_EGL_OPENGL_API))
	assert.For("swap result").That(calls.Calls[2].Result).Equals(capture.Bool(true))
	assert.For("copy").ThatInteger(len(s.Calls())).Equals(3)
}
