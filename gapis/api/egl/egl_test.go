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

package egl_test

import (
	"testing"

	"github.com/gfxreplay/glretrace/core/assert"
	"github.com/gfxreplay/glretrace/gapis/api/egl"
)

func TestClientAPIs(t *testing.T) {
	assert := assert.To(t)
	assert.For("es").That(uint32(egl.EGLenum_EGL_OPENGL_ES_API)).Equals(uint32(0x30A0))
	assert.For("vg").That(uint32(egl.EGLenum_EGL_OPENVG_API)).Equals(uint32(0x30A1))
	assert.For("gl").That(uint32(egl.EGLenum_EGL_OPENGL_API)).Equals(uint32(0x30A2))
	assert.For("name").ThatString(egl.EGLenum_EGL_OPENGL_API).Equals("EGL_OPENGL_API")
	assert.For("unknown").ThatString(egl.EGLenum(0x1234)).Equals("EGLenum(0x1234)")
}

func TestParseEGLenum(t *testing.T) {
	assert := assert.To(t)
	e, ok := egl.ParseEGLenum("OPENGL_API")
	assert.For("ok").ThatBoolean(ok).IsTrue()
	assert.For("value").That(e).Equals(egl.EGLenum_EGL_OPENGL_API)
	e, ok = egl.ParseEGLenum("EGL_SINGLE_BUFFER")
	assert.For("prefixed").That(e).Equals(egl.EGLenum_EGL_SINGLE_BUFFER)
	_, ok = egl.ParseEGLenum("EGL_BOGUS")
	assert.For("missing").ThatBoolean(ok).IsFalse()
}
