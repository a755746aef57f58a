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

// Package egl holds the EGL enum values the replay engine interprets.
package egl

import (
	"fmt"
	"strings"
)

// EGLenum is an EGL enumerated value.
type EGLenum uint32

const (
	// Booleans
	EGLenum_EGL_FALSE EGLenum = 0x0000
	EGLenum_EGL_TRUE  EGLenum = 0x0001

	// Errors
	EGLenum_EGL_SUCCESS             EGLenum = 0x3000
	EGLenum_EGL_NOT_INITIALIZED     EGLenum = 0x3001
	EGLenum_EGL_BAD_ACCESS          EGLenum = 0x3002
	EGLenum_EGL_BAD_ALLOC           EGLenum = 0x3003
	EGLenum_EGL_BAD_ATTRIBUTE       EGLenum = 0x3004
	EGLenum_EGL_BAD_CONFIG          EGLenum = 0x3005
	EGLenum_EGL_BAD_CONTEXT         EGLenum = 0x3006
	EGLenum_EGL_BAD_CURRENT_SURFACE EGLenum = 0x3007
	EGLenum_EGL_BAD_DISPLAY         EGLenum = 0x3008
	EGLenum_EGL_BAD_MATCH           EGLenum = 0x3009
	EGLenum_EGL_BAD_NATIVE_PIXMAP   EGLenum = 0x300A
	EGLenum_EGL_BAD_NATIVE_WINDOW   EGLenum = 0x300B
	EGLenum_EGL_BAD_PARAMETER       EGLenum = 0x300C
	EGLenum_EGL_BAD_SURFACE         EGLenum = 0x300D
	EGLenum_EGL_CONTEXT_LOST        EGLenum = 0x300E

	// Config attributes
	EGLenum_EGL_BUFFER_SIZE     EGLenum = 0x3020
	EGLenum_EGL_ALPHA_SIZE      EGLenum = 0x3021
	EGLenum_EGL_BLUE_SIZE       EGLenum = 0x3022
	EGLenum_EGL_GREEN_SIZE      EGLenum = 0x3023
	EGLenum_EGL_RED_SIZE        EGLenum = 0x3024
	EGLenum_EGL_DEPTH_SIZE      EGLenum = 0x3025
	EGLenum_EGL_STENCIL_SIZE    EGLenum = 0x3026
	EGLenum_EGL_CONFIG_ID       EGLenum = 0x3028
	EGLenum_EGL_SAMPLES         EGLenum = 0x3031
	EGLenum_EGL_SAMPLE_BUFFERS  EGLenum = 0x3032
	EGLenum_EGL_SURFACE_TYPE    EGLenum = 0x3033
	EGLenum_EGL_NONE            EGLenum = 0x3038
	EGLenum_EGL_RENDERABLE_TYPE EGLenum = 0x3040

	// Surface attributes
	EGLenum_EGL_HEIGHT        EGLenum = 0x3056
	EGLenum_EGL_WIDTH         EGLenum = 0x3057
	EGLenum_EGL_DRAW          EGLenum = 0x3059
	EGLenum_EGL_READ          EGLenum = 0x305A
	EGLenum_EGL_BACK_BUFFER   EGLenum = 0x3084
	EGLenum_EGL_SINGLE_BUFFER EGLenum = 0x3085
	EGLenum_EGL_RENDER_BUFFER EGLenum = 0x3086

	// Context attributes
	EGLenum_EGL_CONTEXT_CLIENT_TYPE         EGLenum = 0x3097
	EGLenum_EGL_CONTEXT_CLIENT_VERSION      EGLenum = 0x3098
	EGLenum_EGL_CONTEXT_MINOR_VERSION       EGLenum = 0x30FB
	EGLenum_EGL_CONTEXT_OPENGL_PROFILE_MASK EGLenum = 0x30FD

	// Client APIs
	EGLenum_EGL_OPENGL_ES_API EGLenum = 0x30A0
	EGLenum_EGL_OPENVG_API    EGLenum = 0x30A1
	EGLenum_EGL_OPENGL_API    EGLenum = 0x30A2
)

var eglenumNames = map[EGLenum]string{
	EGLenum_EGL_FALSE:                       "EGL_FALSE",
	EGLenum_EGL_TRUE:                        "EGL_TRUE",
	EGLenum_EGL_SUCCESS:                     "EGL_SUCCESS",
	EGLenum_EGL_NOT_INITIALIZED:             "EGL_NOT_INITIALIZED",
	EGLenum_EGL_BAD_ACCESS:                  "EGL_BAD_ACCESS",
	EGLenum_EGL_BAD_ALLOC:                   "EGL_BAD_ALLOC",
	EGLenum_EGL_BAD_ATTRIBUTE:               "EGL_BAD_ATTRIBUTE",
	EGLenum_EGL_BAD_CONFIG:                  "EGL_BAD_CONFIG",
	EGLenum_EGL_BAD_CONTEXT:                 "EGL_BAD_CONTEXT",
	EGLenum_EGL_BAD_CURRENT_SURFACE:         "EGL_BAD_CURRENT_SURFACE",
	EGLenum_EGL_BAD_DISPLAY:                 "EGL_BAD_DISPLAY",
	EGLenum_EGL_BAD_MATCH:                   "EGL_BAD_MATCH",
	EGLenum_EGL_BAD_NATIVE_PIXMAP:           "EGL_BAD_NATIVE_PIXMAP",
	EGLenum_EGL_BAD_NATIVE_WINDOW:           "EGL_BAD_NATIVE_WINDOW",
	EGLenum_EGL_BAD_PARAMETER:               "EGL_BAD_PARAMETER",
	EGLenum_EGL_BAD_SURFACE:                 "EGL_BAD_SURFACE",
	EGLenum_EGL_CONTEXT_LOST:                "EGL_CONTEXT_LOST",
	EGLenum_EGL_BUFFER_SIZE:                 "EGL_BUFFER_SIZE",
	EGLenum_EGL_ALPHA_SIZE:                  "EGL_ALPHA_SIZE",
	EGLenum_EGL_BLUE_SIZE:                   "EGL_BLUE_SIZE",
	EGLenum_EGL_GREEN_SIZE:                  "EGL_GREEN_SIZE",
	EGLenum_EGL_RED_SIZE:                    "EGL_RED_SIZE",
	EGLenum_EGL_DEPTH_SIZE:                  "EGL_DEPTH_SIZE",
	EGLenum_EGL_STENCIL_SIZE:                "EGL_STENCIL_SIZE",
	EGLenum_EGL_CONFIG_ID:                   "EGL_CONFIG_ID",
	EGLenum_EGL_SAMPLES:                     "EGL_SAMPLES",
	EGLenum_EGL_SAMPLE_BUFFERS:              "EGL_SAMPLE_BUFFERS",
	EGLenum_EGL_SURFACE_TYPE:                "EGL_SURFACE_TYPE",
	EGLenum_EGL_NONE:                        "EGL_NONE",
	EGLenum_EGL_RENDERABLE_TYPE:             "EGL_RENDERABLE_TYPE",
	EGLenum_EGL_HEIGHT:                      "EGL_HEIGHT",
	EGLenum_EGL_WIDTH:                       "EGL_WIDTH",
	EGLenum_EGL_DRAW:                        "EGL_DRAW",
	EGLenum_EGL_READ:                        "EGL_READ",
	EGLenum_EGL_BACK_BUFFER:                 "EGL_BACK_BUFFER",
	EGLenum_EGL_SINGLE_BUFFER:               "EGL_SINGLE_BUFFER",
	EGLenum_EGL_RENDER_BUFFER:               "EGL_RENDER_BUFFER",
	EGLenum_EGL_CONTEXT_CLIENT_TYPE:         "EGL_CONTEXT_CLIENT_TYPE",
	EGLenum_EGL_CONTEXT_CLIENT_VERSION:      "EGL_CONTEXT_CLIENT_VERSION",
	EGLenum_EGL_CONTEXT_MINOR_VERSION:       "EGL_CONTEXT_MINOR_VERSION",
	EGLenum_EGL_CONTEXT_OPENGL_PROFILE_MASK: "EGL_CONTEXT_OPENGL_PROFILE_MASK",
	EGLenum_EGL_OPENGL_ES_API:               "EGL_OPENGL_ES_API",
	EGLenum_EGL_OPENVG_API:                  "EGL_OPENVG_API",
	EGLenum_EGL_OPENGL_API:                  "EGL_OPENGL_API",
}

func (e EGLenum) String() string {
	if name, ok := eglenumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EGLenum(0x%04X)", uint32(e))
}

// ParseEGLenum returns the enum with the given name. The "EGL_" prefix is
// optional.
func ParseEGLenum(name string) (EGLenum, bool) {
	if !strings.HasPrefix(name, "EGL_") {
		name = "EGL_" + name
	}
	for e, n := range eglenumNames {
		if n == name {
			return e, true
		}
	}
	return 0, false
}
