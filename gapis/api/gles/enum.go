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

package gles

import (
	"fmt"
	"strings"
)

// GLenum is an OpenGL enumerated value.
type GLenum uint32

const (
	GLenum_GL_NONE GLenum = 0x0000

	// Primitive modes
	GLenum_GL_POINTS         GLenum = 0x0000
	GLenum_GL_LINES          GLenum = 0x0001
	GLenum_GL_LINE_LOOP      GLenum = 0x0002
	GLenum_GL_LINE_STRIP     GLenum = 0x0003
	GLenum_GL_TRIANGLES      GLenum = 0x0004
	GLenum_GL_TRIANGLE_STRIP GLenum = 0x0005
	GLenum_GL_TRIANGLE_FAN   GLenum = 0x0006

	// Buffers
	GLenum_GL_FRONT          GLenum = 0x0404
	GLenum_GL_BACK           GLenum = 0x0405
	GLenum_GL_LEFT           GLenum = 0x0406
	GLenum_GL_RIGHT          GLenum = 0x0407
	GLenum_GL_FRONT_AND_BACK GLenum = 0x0408
	GLenum_GL_COLOR          GLenum = 0x1800
	GLenum_GL_DEPTH          GLenum = 0x1801
	GLenum_GL_STENCIL        GLenum = 0x1802

	// Errors
	GLenum_GL_NO_ERROR          GLenum = 0x0000
	GLenum_GL_INVALID_ENUM      GLenum = 0x0500
	GLenum_GL_INVALID_VALUE     GLenum = 0x0501
	GLenum_GL_INVALID_OPERATION GLenum = 0x0502
	GLenum_GL_OUT_OF_MEMORY     GLenum = 0x0505

	// Queries
	GLenum_GL_VIEWPORT            GLenum = 0x0BA2
	GLenum_GL_UNPACK_SWAP_BYTES   GLenum = 0x0CF0
	GLenum_GL_UNPACK_LSB_FIRST    GLenum = 0x0CF1
	GLenum_GL_UNPACK_ROW_LENGTH   GLenum = 0x0CF2
	GLenum_GL_UNPACK_SKIP_ROWS    GLenum = 0x0CF3
	GLenum_GL_UNPACK_SKIP_PIXELS  GLenum = 0x0CF4
	GLenum_GL_UNPACK_ALIGNMENT    GLenum = 0x0CF5
	GLenum_GL_PACK_ROW_LENGTH     GLenum = 0x0D02
	GLenum_GL_PACK_SKIP_ROWS      GLenum = 0x0D03
	GLenum_GL_PACK_SKIP_PIXELS    GLenum = 0x0D04
	GLenum_GL_PACK_ALIGNMENT      GLenum = 0x0D05
	GLenum_GL_UNPACK_SKIP_IMAGES  GLenum = 0x806D
	GLenum_GL_UNPACK_IMAGE_HEIGHT GLenum = 0x806E

	// Evaluator targets
	GLenum_GL_MAP1_COLOR_4         GLenum = 0x0D90
	GLenum_GL_MAP1_INDEX           GLenum = 0x0D91
	GLenum_GL_MAP1_NORMAL          GLenum = 0x0D92
	GLenum_GL_MAP1_TEXTURE_COORD_1 GLenum = 0x0D93
	GLenum_GL_MAP1_TEXTURE_COORD_2 GLenum = 0x0D94
	GLenum_GL_MAP1_TEXTURE_COORD_3 GLenum = 0x0D95
	GLenum_GL_MAP1_TEXTURE_COORD_4 GLenum = 0x0D96
	GLenum_GL_MAP1_VERTEX_3        GLenum = 0x0D97
	GLenum_GL_MAP1_VERTEX_4        GLenum = 0x0D98
	GLenum_GL_MAP2_COLOR_4         GLenum = 0x0DB0
	GLenum_GL_MAP2_INDEX           GLenum = 0x0DB1
	GLenum_GL_MAP2_NORMAL          GLenum = 0x0DB2
	GLenum_GL_MAP2_TEXTURE_COORD_1 GLenum = 0x0DB3
	GLenum_GL_MAP2_TEXTURE_COORD_2 GLenum = 0x0DB4
	GLenum_GL_MAP2_TEXTURE_COORD_3 GLenum = 0x0DB5
	GLenum_GL_MAP2_TEXTURE_COORD_4 GLenum = 0x0DB6
	GLenum_GL_MAP2_VERTEX_3        GLenum = 0x0DB7
	GLenum_GL_MAP2_VERTEX_4        GLenum = 0x0DB8

	// Texture targets
	GLenum_GL_TEXTURE_1D         GLenum = 0x0DE0
	GLenum_GL_TEXTURE_2D         GLenum = 0x0DE1
	GLenum_GL_TEXTURE_3D         GLenum = 0x806F
	GLenum_GL_TEXTURE_BINDING_2D GLenum = 0x8069

	// Data types
	GLenum_GL_BYTE           GLenum = 0x1400
	GLenum_GL_UNSIGNED_BYTE  GLenum = 0x1401
	GLenum_GL_SHORT          GLenum = 0x1402
	GLenum_GL_UNSIGNED_SHORT GLenum = 0x1403
	GLenum_GL_INT            GLenum = 0x1404
	GLenum_GL_UNSIGNED_INT   GLenum = 0x1405
	GLenum_GL_FLOAT          GLenum = 0x1406
	GLenum_GL_2_BYTES        GLenum = 0x1407
	GLenum_GL_3_BYTES        GLenum = 0x1408
	GLenum_GL_4_BYTES        GLenum = 0x1409
	GLenum_GL_DOUBLE         GLenum = 0x140A
	GLenum_GL_HALF_FLOAT     GLenum = 0x140B
	GLenum_GL_FIXED          GLenum = 0x140C
	GLenum_GL_HALF_FLOAT_OES GLenum = 0x8D61
	GLenum_GL_BITMAP         GLenum = 0x1A00

	// Pixel formats
	GLenum_GL_COLOR_INDEX     GLenum = 0x1900
	GLenum_GL_STENCIL_INDEX   GLenum = 0x1901
	GLenum_GL_DEPTH_COMPONENT GLenum = 0x1902
	GLenum_GL_RED             GLenum = 0x1903
	GLenum_GL_GREEN           GLenum = 0x1904
	GLenum_GL_BLUE            GLenum = 0x1905
	GLenum_GL_ALPHA           GLenum = 0x1906
	GLenum_GL_RGB             GLenum = 0x1907
	GLenum_GL_RGBA            GLenum = 0x1908
	GLenum_GL_LUMINANCE       GLenum = 0x1909
	GLenum_GL_LUMINANCE_ALPHA GLenum = 0x190A
	GLenum_GL_ABGR_EXT        GLenum = 0x8000
	GLenum_GL_CMYK_EXT        GLenum = 0x800C
	GLenum_GL_CMYKA_EXT       GLenum = 0x800D
	GLenum_GL_INTENSITY       GLenum = 0x8049
	GLenum_GL_BGR             GLenum = 0x80E0
	GLenum_GL_BGRA            GLenum = 0x80E1
	GLenum_GL_RG              GLenum = 0x8227
	GLenum_GL_RG_INTEGER      GLenum = 0x8228
	GLenum_GL_DEPTH_STENCIL   GLenum = 0x84F9
	GLenum_GL_HILO_NV         GLenum = 0x86F4
	GLenum_GL_DSDT_NV         GLenum = 0x86F5
	GLenum_GL_DSDT_MAG_NV     GLenum = 0x86F6
	GLenum_GL_DSDT_MAG_VIB_NV GLenum = 0x86F7
	GLenum_GL_RED_INTEGER     GLenum = 0x8D94
	GLenum_GL_GREEN_INTEGER   GLenum = 0x8D95
	GLenum_GL_BLUE_INTEGER    GLenum = 0x8D96
	GLenum_GL_ALPHA_INTEGER   GLenum = 0x8D97
	GLenum_GL_RGB_INTEGER     GLenum = 0x8D98
	GLenum_GL_RGBA_INTEGER    GLenum = 0x8D99
	GLenum_GL_BGR_INTEGER     GLenum = 0x8D9A
	GLenum_GL_BGRA_INTEGER    GLenum = 0x8D9B

	// Packed pixel types
	GLenum_GL_UNSIGNED_BYTE_3_3_2            GLenum = 0x8032
	GLenum_GL_UNSIGNED_SHORT_4_4_4_4         GLenum = 0x8033
	GLenum_GL_UNSIGNED_SHORT_5_5_5_1         GLenum = 0x8034
	GLenum_GL_UNSIGNED_INT_8_8_8_8           GLenum = 0x8035
	GLenum_GL_UNSIGNED_INT_10_10_10_2        GLenum = 0x8036
	GLenum_GL_UNSIGNED_BYTE_2_3_3_REV        GLenum = 0x8362
	GLenum_GL_UNSIGNED_SHORT_5_6_5           GLenum = 0x8363
	GLenum_GL_UNSIGNED_SHORT_5_6_5_REV       GLenum = 0x8364
	GLenum_GL_UNSIGNED_SHORT_4_4_4_4_REV     GLenum = 0x8365
	GLenum_GL_UNSIGNED_SHORT_1_5_5_5_REV     GLenum = 0x8366
	GLenum_GL_UNSIGNED_INT_8_8_8_8_REV       GLenum = 0x8367
	GLenum_GL_UNSIGNED_INT_2_10_10_10_REV    GLenum = 0x8368
	GLenum_GL_UNSIGNED_INT_24_8              GLenum = 0x84FA
	GLenum_GL_UNSIGNED_SHORT_8_8_MESA        GLenum = 0x85BA
	GLenum_GL_UNSIGNED_SHORT_8_8_REV_MESA    GLenum = 0x85BB
	GLenum_GL_UNSIGNED_INT_S8_S8_8_8_NV      GLenum = 0x86DA
	GLenum_GL_UNSIGNED_INT_8_8_S8_S8_REV_NV  GLenum = 0x86DB
	GLenum_GL_UNSIGNED_INT_10F_11F_11F_REV   GLenum = 0x8C3B
	GLenum_GL_UNSIGNED_INT_5_9_9_9_REV       GLenum = 0x8C3E
	GLenum_GL_FLOAT_32_UNSIGNED_INT_24_8_REV GLenum = 0x8DAD

	// Buffer objects
	GLenum_GL_ARRAY_BUFFER                 GLenum = 0x8892
	GLenum_GL_ELEMENT_ARRAY_BUFFER         GLenum = 0x8893
	GLenum_GL_ARRAY_BUFFER_BINDING         GLenum = 0x8894
	GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING GLenum = 0x8895
	GLenum_GL_STREAM_DRAW                  GLenum = 0x88E0
	GLenum_GL_STATIC_DRAW                  GLenum = 0x88E4
	GLenum_GL_DYNAMIC_DRAW                 GLenum = 0x88E8
	GLenum_GL_PIXEL_PACK_BUFFER            GLenum = 0x88EB
	GLenum_GL_PIXEL_UNPACK_BUFFER          GLenum = 0x88EC
	GLenum_GL_PIXEL_PACK_BUFFER_BINDING    GLenum = 0x88ED
	GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING  GLenum = 0x88EF
	GLenum_GL_DRAW_INDIRECT_BUFFER         GLenum = 0x8F3F
	GLenum_GL_DRAW_INDIRECT_BUFFER_BINDING GLenum = 0x8F43
	GLenum_GL_CURRENT_PROGRAM              GLenum = 0x8B8D

	// Uniform types
	GLenum_GL_FLOAT_VEC2                                GLenum = 0x8B50
	GLenum_GL_FLOAT_VEC3                                GLenum = 0x8B51
	GLenum_GL_FLOAT_VEC4                                GLenum = 0x8B52
	GLenum_GL_INT_VEC2                                  GLenum = 0x8B53
	GLenum_GL_INT_VEC3                                  GLenum = 0x8B54
	GLenum_GL_INT_VEC4                                  GLenum = 0x8B55
	GLenum_GL_BOOL                                      GLenum = 0x8B56
	GLenum_GL_BOOL_VEC2                                 GLenum = 0x8B57
	GLenum_GL_BOOL_VEC3                                 GLenum = 0x8B58
	GLenum_GL_BOOL_VEC4                                 GLenum = 0x8B59
	GLenum_GL_FLOAT_MAT2                                GLenum = 0x8B5A
	GLenum_GL_FLOAT_MAT3                                GLenum = 0x8B5B
	GLenum_GL_FLOAT_MAT4                                GLenum = 0x8B5C
	GLenum_GL_SAMPLER_1D                                GLenum = 0x8B5D
	GLenum_GL_SAMPLER_2D                                GLenum = 0x8B5E
	GLenum_GL_SAMPLER_3D                                GLenum = 0x8B5F
	GLenum_GL_SAMPLER_CUBE                              GLenum = 0x8B60
	GLenum_GL_SAMPLER_1D_SHADOW                         GLenum = 0x8B61
	GLenum_GL_SAMPLER_2D_SHADOW                         GLenum = 0x8B62
	GLenum_GL_SAMPLER_2D_RECT                           GLenum = 0x8B63
	GLenum_GL_SAMPLER_2D_RECT_SHADOW                    GLenum = 0x8B64
	GLenum_GL_FLOAT_MAT2x3                              GLenum = 0x8B65
	GLenum_GL_FLOAT_MAT2x4                              GLenum = 0x8B66
	GLenum_GL_FLOAT_MAT3x2                              GLenum = 0x8B67
	GLenum_GL_FLOAT_MAT3x4                              GLenum = 0x8B68
	GLenum_GL_FLOAT_MAT4x2                              GLenum = 0x8B69
	GLenum_GL_FLOAT_MAT4x3                              GLenum = 0x8B6A
	GLenum_GL_SAMPLER_1D_ARRAY                          GLenum = 0x8DC0
	GLenum_GL_SAMPLER_2D_ARRAY                          GLenum = 0x8DC1
	GLenum_GL_SAMPLER_BUFFER                            GLenum = 0x8DC2
	GLenum_GL_SAMPLER_1D_ARRAY_SHADOW                   GLenum = 0x8DC3
	GLenum_GL_SAMPLER_2D_ARRAY_SHADOW                   GLenum = 0x8DC4
	GLenum_GL_SAMPLER_CUBE_SHADOW                       GLenum = 0x8DC5
	GLenum_GL_UNSIGNED_INT_VEC2                         GLenum = 0x8DC6
	GLenum_GL_UNSIGNED_INT_VEC3                         GLenum = 0x8DC7
	GLenum_GL_UNSIGNED_INT_VEC4                         GLenum = 0x8DC8
	GLenum_GL_INT_SAMPLER_1D                            GLenum = 0x8DC9
	GLenum_GL_INT_SAMPLER_2D                            GLenum = 0x8DCA
	GLenum_GL_INT_SAMPLER_3D                            GLenum = 0x8DCB
	GLenum_GL_INT_SAMPLER_CUBE                          GLenum = 0x8DCC
	GLenum_GL_INT_SAMPLER_2D_RECT                       GLenum = 0x8DCD
	GLenum_GL_INT_SAMPLER_1D_ARRAY                      GLenum = 0x8DCE
	GLenum_GL_INT_SAMPLER_2D_ARRAY                      GLenum = 0x8DCF
	GLenum_GL_INT_SAMPLER_BUFFER                        GLenum = 0x8DD0
	GLenum_GL_UNSIGNED_INT_SAMPLER_1D                   GLenum = 0x8DD1
	GLenum_GL_UNSIGNED_INT_SAMPLER_2D                   GLenum = 0x8DD2
	GLenum_GL_UNSIGNED_INT_SAMPLER_3D                   GLenum = 0x8DD3
	GLenum_GL_UNSIGNED_INT_SAMPLER_CUBE                 GLenum = 0x8DD4
	GLenum_GL_UNSIGNED_INT_SAMPLER_2D_RECT              GLenum = 0x8DD5
	GLenum_GL_UNSIGNED_INT_SAMPLER_1D_ARRAY             GLenum = 0x8DD6
	GLenum_GL_UNSIGNED_INT_SAMPLER_2D_ARRAY             GLenum = 0x8DD7
	GLenum_GL_UNSIGNED_INT_SAMPLER_BUFFER               GLenum = 0x8DD8
	GLenum_GL_DOUBLE_MAT2                               GLenum = 0x8F46
	GLenum_GL_DOUBLE_MAT3                               GLenum = 0x8F47
	GLenum_GL_DOUBLE_MAT4                               GLenum = 0x8F48
	GLenum_GL_DOUBLE_MAT2x3                             GLenum = 0x8F49
	GLenum_GL_DOUBLE_MAT2x4                             GLenum = 0x8F4A
	GLenum_GL_DOUBLE_MAT3x2                             GLenum = 0x8F4B
	GLenum_GL_DOUBLE_MAT3x4                             GLenum = 0x8F4C
	GLenum_GL_DOUBLE_MAT4x2                             GLenum = 0x8F4D
	GLenum_GL_DOUBLE_MAT4x3                             GLenum = 0x8F4E
	GLenum_GL_DOUBLE_VEC2                               GLenum = 0x8FFC
	GLenum_GL_DOUBLE_VEC3                               GLenum = 0x8FFD
	GLenum_GL_DOUBLE_VEC4                               GLenum = 0x8FFE
	GLenum_GL_SAMPLER_CUBE_MAP_ARRAY                    GLenum = 0x900C
	GLenum_GL_SAMPLER_CUBE_MAP_ARRAY_SHADOW             GLenum = 0x900D
	GLenum_GL_INT_SAMPLER_CUBE_MAP_ARRAY                GLenum = 0x900E
	GLenum_GL_UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY       GLenum = 0x900F
	GLenum_GL_SAMPLER_2D_MULTISAMPLE                    GLenum = 0x9108
	GLenum_GL_INT_SAMPLER_2D_MULTISAMPLE                GLenum = 0x9109
	GLenum_GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE       GLenum = 0x910A
	GLenum_GL_SAMPLER_2D_MULTISAMPLE_ARRAY              GLenum = 0x910B
	GLenum_GL_INT_SAMPLER_2D_MULTISAMPLE_ARRAY          GLenum = 0x910C
	GLenum_GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY GLenum = 0x910D
)

// glenumNames lists every known enum with its name. Where two names share a
// value the first entry is the one String returns.
var glenumNames = []struct {
	name  string
	value GLenum
}{
	{"GL_NONE", GLenum_GL_NONE},
	{"GL_POINTS", GLenum_GL_POINTS},
	{"GL_LINES", GLenum_GL_LINES},
	{"GL_LINE_LOOP", GLenum_GL_LINE_LOOP},
	{"GL_LINE_STRIP", GLenum_GL_LINE_STRIP},
	{"GL_TRIANGLES", GLenum_GL_TRIANGLES},
	{"GL_TRIANGLE_STRIP", GLenum_GL_TRIANGLE_STRIP},
	{"GL_TRIANGLE_FAN", GLenum_GL_TRIANGLE_FAN},
	{"GL_FRONT", GLenum_GL_FRONT},
	{"GL_BACK", GLenum_GL_BACK},
	{"GL_LEFT", GLenum_GL_LEFT},
	{"GL_RIGHT", GLenum_GL_RIGHT},
	{"GL_FRONT_AND_BACK", GLenum_GL_FRONT_AND_BACK},
	{"GL_COLOR", GLenum_GL_COLOR},
	{"GL_DEPTH", GLenum_GL_DEPTH},
	{"GL_STENCIL", GLenum_GL_STENCIL},
	{"GL_NO_ERROR", GLenum_GL_NO_ERROR},
	{"GL_INVALID_ENUM", GLenum_GL_INVALID_ENUM},
	{"GL_INVALID_VALUE", GLenum_GL_INVALID_VALUE},
	{"GL_INVALID_OPERATION", GLenum_GL_INVALID_OPERATION},
	{"GL_OUT_OF_MEMORY", GLenum_GL_OUT_OF_MEMORY},
	{"GL_VIEWPORT", GLenum_GL_VIEWPORT},
	{"GL_UNPACK_SWAP_BYTES", GLenum_GL_UNPACK_SWAP_BYTES},
	{"GL_UNPACK_LSB_FIRST", GLenum_GL_UNPACK_LSB_FIRST},
	{"GL_UNPACK_ROW_LENGTH", GLenum_GL_UNPACK_ROW_LENGTH},
	{"GL_UNPACK_SKIP_ROWS", GLenum_GL_UNPACK_SKIP_ROWS},
	{"GL_UNPACK_SKIP_PIXELS", GLenum_GL_UNPACK_SKIP_PIXELS},
	{"GL_UNPACK_ALIGNMENT", GLenum_GL_UNPACK_ALIGNMENT},
	{"GL_PACK_ROW_LENGTH", GLenum_GL_PACK_ROW_LENGTH},
	{"GL_PACK_SKIP_ROWS", GLenum_GL_PACK_SKIP_ROWS},
	{"GL_PACK_SKIP_PIXELS", GLenum_GL_PACK_SKIP_PIXELS},
	{"GL_PACK_ALIGNMENT", GLenum_GL_PACK_ALIGNMENT},
	{"GL_UNPACK_SKIP_IMAGES", GLenum_GL_UNPACK_SKIP_IMAGES},
	{"GL_UNPACK_IMAGE_HEIGHT", GLenum_GL_UNPACK_IMAGE_HEIGHT},
	{"GL_MAP1_COLOR_4", GLenum_GL_MAP1_COLOR_4},
	{"GL_MAP1_INDEX", GLenum_GL_MAP1_INDEX},
	{"GL_MAP1_NORMAL", GLenum_GL_MAP1_NORMAL},
	{"GL_MAP1_TEXTURE_COORD_1", GLenum_GL_MAP1_TEXTURE_COORD_1},
	{"GL_MAP1_TEXTURE_COORD_2", GLenum_GL_MAP1_TEXTURE_COORD_2},
	{"GL_MAP1_TEXTURE_COORD_3", GLenum_GL_MAP1_TEXTURE_COORD_3},
	{"GL_MAP1_TEXTURE_COORD_4", GLenum_GL_MAP1_TEXTURE_COORD_4},
	{"GL_MAP1_VERTEX_3", GLenum_GL_MAP1_VERTEX_3},
	{"GL_MAP1_VERTEX_4", GLenum_GL_MAP1_VERTEX_4},
	{"GL_MAP2_COLOR_4", GLenum_GL_MAP2_COLOR_4},
	{"GL_MAP2_INDEX", GLenum_GL_MAP2_INDEX},
	{"GL_MAP2_NORMAL", GLenum_GL_MAP2_NORMAL},
	{"GL_MAP2_TEXTURE_COORD_1", GLenum_GL_MAP2_TEXTURE_COORD_1},
	{"GL_MAP2_TEXTURE_COORD_2", GLenum_GL_MAP2_TEXTURE_COORD_2},
	{"GL_MAP2_TEXTURE_COORD_3", GLenum_GL_MAP2_TEXTURE_COORD_3},
	{"GL_MAP2_TEXTURE_COORD_4", GLenum_GL_MAP2_TEXTURE_COORD_4},
	{"GL_MAP2_VERTEX_3", GLenum_GL_MAP2_VERTEX_3},
	{"GL_MAP2_VERTEX_4", GLenum_GL_MAP2_VERTEX_4},
	{"GL_TEXTURE_1D", GLenum_GL_TEXTURE_1D},
	{"GL_TEXTURE_2D", GLenum_GL_TEXTURE_2D},
	{"GL_TEXTURE_3D", GLenum_GL_TEXTURE_3D},
	{"GL_TEXTURE_BINDING_2D", GLenum_GL_TEXTURE_BINDING_2D},
	{"GL_BYTE", GLenum_GL_BYTE},
	{"GL_UNSIGNED_BYTE", GLenum_GL_UNSIGNED_BYTE},
	{"GL_SHORT", GLenum_GL_SHORT},
	{"GL_UNSIGNED_SHORT", GLenum_GL_UNSIGNED_SHORT},
	{"GL_INT", GLenum_GL_INT},
	{"GL_UNSIGNED_INT", GLenum_GL_UNSIGNED_INT},
	{"GL_FLOAT", GLenum_GL_FLOAT},
	{"GL_2_BYTES", GLenum_GL_2_BYTES},
	{"GL_3_BYTES", GLenum_GL_3_BYTES},
	{"GL_4_BYTES", GLenum_GL_4_BYTES},
	{"GL_DOUBLE", GLenum_GL_DOUBLE},
	{"GL_HALF_FLOAT", GLenum_GL_HALF_FLOAT},
	{"GL_FIXED", GLenum_GL_FIXED},
	{"GL_HALF_FLOAT_OES", GLenum_GL_HALF_FLOAT_OES},
	{"GL_BITMAP", GLenum_GL_BITMAP},
	{"GL_COLOR_INDEX", GLenum_GL_COLOR_INDEX},
	{"GL_STENCIL_INDEX", GLenum_GL_STENCIL_INDEX},
	{"GL_DEPTH_COMPONENT", GLenum_GL_DEPTH_COMPONENT},
	{"GL_RED", GLenum_GL_RED},
	{"GL_GREEN", GLenum_GL_GREEN},
	{"GL_BLUE", GLenum_GL_BLUE},
	{"GL_ALPHA", GLenum_GL_ALPHA},
	{"GL_RGB", GLenum_GL_RGB},
	{"GL_RGBA", GLenum_GL_RGBA},
	{"GL_LUMINANCE", GLenum_GL_LUMINANCE},
	{"GL_LUMINANCE_ALPHA", GLenum_GL_LUMINANCE_ALPHA},
	{"GL_ABGR_EXT", GLenum_GL_ABGR_EXT},
	{"GL_CMYK_EXT", GLenum_GL_CMYK_EXT},
	{"GL_CMYKA_EXT", GLenum_GL_CMYKA_EXT},
	{"GL_INTENSITY", GLenum_GL_INTENSITY},
	{"GL_BGR", GLenum_GL_BGR},
	{"GL_BGRA", GLenum_GL_BGRA},
	{"GL_RG", GLenum_GL_RG},
	{"GL_RG_INTEGER", GLenum_GL_RG_INTEGER},
	{"GL_DEPTH_STENCIL", GLenum_GL_DEPTH_STENCIL},
	{"GL_HILO_NV", GLenum_GL_HILO_NV},
	{"GL_DSDT_NV", GLenum_GL_DSDT_NV},
	{"GL_DSDT_MAG_NV", GLenum_GL_DSDT_MAG_NV},
	{"GL_DSDT_MAG_VIB_NV", GLenum_GL_DSDT_MAG_VIB_NV},
	{"GL_RED_INTEGER", GLenum_GL_RED_INTEGER},
	{"GL_GREEN_INTEGER", GLenum_GL_GREEN_INTEGER},
	{"GL_BLUE_INTEGER", GLenum_GL_BLUE_INTEGER},
	{"GL_ALPHA_INTEGER", GLenum_GL_ALPHA_INTEGER},
	{"GL_RGB_INTEGER", GLenum_GL_RGB_INTEGER},
	{"GL_RGBA_INTEGER", GLenum_GL_RGBA_INTEGER},
	{"GL_BGR_INTEGER", GLenum_GL_BGR_INTEGER},
	{"GL_BGRA_INTEGER", GLenum_GL_BGRA_INTEGER},
	{"GL_UNSIGNED_BYTE_3_3_2", GLenum_GL_UNSIGNED_BYTE_3_3_2},
	{"GL_UNSIGNED_SHORT_4_4_4_4", GLenum_GL_UNSIGNED_SHORT_4_4_4_4},
	{"GL_UNSIGNED_SHORT_5_5_5_1", GLenum_GL_UNSIGNED_SHORT_5_5_5_1},
	{"GL_UNSIGNED_INT_8_8_8_8", GLenum_GL_UNSIGNED_INT_8_8_8_8},
	{"GL_UNSIGNED_INT_10_10_10_2", GLenum_GL_UNSIGNED_INT_10_10_10_2},
	{"GL_UNSIGNED_BYTE_2_3_3_REV", GLenum_GL_UNSIGNED_BYTE_2_3_3_REV},
	{"GL_UNSIGNED_SHORT_5_6_5", GLenum_GL_UNSIGNED_SHORT_5_6_5},
	{"GL_UNSIGNED_SHORT_5_6_5_REV", GLenum_GL_UNSIGNED_SHORT_5_6_5_REV},
	{"GL_UNSIGNED_SHORT_4_4_4_4_REV", GLenum_GL_UNSIGNED_SHORT_4_4_4_4_REV},
	{"GL_UNSIGNED_SHORT_1_5_5_5_REV", GLenum_GL_UNSIGNED_SHORT_1_5_5_5_REV},
	{"GL_UNSIGNED_INT_8_8_8_8_REV", GLenum_GL_UNSIGNED_INT_8_8_8_8_REV},
	{"GL_UNSIGNED_INT_2_10_10_10_REV", GLenum_GL_UNSIGNED_INT_2_10_10_10_REV},
	{"GL_UNSIGNED_INT_24_8", GLenum_GL_UNSIGNED_INT_24_8},
	{"GL_UNSIGNED_SHORT_8_8_MESA", GLenum_GL_UNSIGNED_SHORT_8_8_MESA},
	{"GL_UNSIGNED_SHORT_8_8_REV_MESA", GLenum_GL_UNSIGNED_SHORT_8_8_REV_MESA},
	{"GL_UNSIGNED_INT_S8_S8_8_8_NV", GLenum_GL_UNSIGNED_INT_S8_S8_8_8_NV},
	{"GL_UNSIGNED_INT_8_8_S8_S8_REV_NV", GLenum_GL_UNSIGNED_INT_8_8_S8_S8_REV_NV},
	{"GL_UNSIGNED_INT_10F_11F_11F_REV", GLenum_GL_UNSIGNED_INT_10F_11F_11F_REV},
	{"GL_UNSIGNED_INT_5_9_9_9_REV", GLenum_GL_UNSIGNED_INT_5_9_9_9_REV},
	{"GL_FLOAT_32_UNSIGNED_INT_24_8_REV", GLenum_GL_FLOAT_32_UNSIGNED_INT_24_8_REV},
	{"GL_ARRAY_BUFFER", GLenum_GL_ARRAY_BUFFER},
	{"GL_ELEMENT_ARRAY_BUFFER", GLenum_GL_ELEMENT_ARRAY_BUFFER},
	{"GL_ARRAY_BUFFER_BINDING", GLenum_GL_ARRAY_BUFFER_BINDING},
	{"GL_ELEMENT_ARRAY_BUFFER_BINDING", GLenum_GL_ELEMENT_ARRAY_BUFFER_BINDING},
	{"GL_STREAM_DRAW", GLenum_GL_STREAM_DRAW},
	{"GL_STATIC_DRAW", GLenum_GL_STATIC_DRAW},
	{"GL_DYNAMIC_DRAW", GLenum_GL_DYNAMIC_DRAW},
	{"GL_PIXEL_PACK_BUFFER", GLenum_GL_PIXEL_PACK_BUFFER},
	{"GL_PIXEL_UNPACK_BUFFER", GLenum_GL_PIXEL_UNPACK_BUFFER},
	{"GL_PIXEL_PACK_BUFFER_BINDING", GLenum_GL_PIXEL_PACK_BUFFER_BINDING},
	{"GL_PIXEL_UNPACK_BUFFER_BINDING", GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING},
	{"GL_DRAW_INDIRECT_BUFFER", GLenum_GL_DRAW_INDIRECT_BUFFER},
	{"GL_DRAW_INDIRECT_BUFFER_BINDING", GLenum_GL_DRAW_INDIRECT_BUFFER_BINDING},
	{"GL_CURRENT_PROGRAM", GLenum_GL_CURRENT_PROGRAM},
	{"GL_FLOAT_VEC2", GLenum_GL_FLOAT_VEC2},
	{"GL_FLOAT_VEC3", GLenum_GL_FLOAT_VEC3},
	{"GL_FLOAT_VEC4", GLenum_GL_FLOAT_VEC4},
	{"GL_INT_VEC2", GLenum_GL_INT_VEC2},
	{"GL_INT_VEC3", GLenum_GL_INT_VEC3},
	{"GL_INT_VEC4", GLenum_GL_INT_VEC4},
	{"GL_BOOL", GLenum_GL_BOOL},
	{"GL_BOOL_VEC2", GLenum_GL_BOOL_VEC2},
	{"GL_BOOL_VEC3", GLenum_GL_BOOL_VEC3},
	{"GL_BOOL_VEC4", GLenum_GL_BOOL_VEC4},
	{"GL_FLOAT_MAT2", GLenum_GL_FLOAT_MAT2},
	{"GL_FLOAT_MAT3", GLenum_GL_FLOAT_MAT3},
	{"GL_FLOAT_MAT4", GLenum_GL_FLOAT_MAT4},
	{"GL_SAMPLER_1D", GLenum_GL_SAMPLER_1D},
	{"GL_SAMPLER_2D", GLenum_GL_SAMPLER_2D},
	{"GL_SAMPLER_3D", GLenum_GL_SAMPLER_3D},
	{"GL_SAMPLER_CUBE", GLenum_GL_SAMPLER_CUBE},
	{"GL_SAMPLER_1D_SHADOW", GLenum_GL_SAMPLER_1D_SHADOW},
	{"GL_SAMPLER_2D_SHADOW", GLenum_GL_SAMPLER_2D_SHADOW},
	{"GL_SAMPLER_2D_RECT", GLenum_GL_SAMPLER_2D_RECT},
	{"GL_SAMPLER_2D_RECT_SHADOW", GLenum_GL_SAMPLER_2D_RECT_SHADOW},
	{"GL_FLOAT_MAT2x3", GLenum_GL_FLOAT_MAT2x3},
	{"GL_FLOAT_MAT2x4", GLenum_GL_FLOAT_MAT2x4},
	{"GL_FLOAT_MAT3x2", GLenum_GL_FLOAT_MAT3x2},
	{"GL_FLOAT_MAT3x4", GLenum_GL_FLOAT_MAT3x4},
	{"GL_FLOAT_MAT4x2", GLenum_GL_FLOAT_MAT4x2},
	{"GL_FLOAT_MAT4x3", GLenum_GL_FLOAT_MAT4x3},
	{"GL_SAMPLER_1D_ARRAY", GLenum_GL_SAMPLER_1D_ARRAY},
	{"GL_SAMPLER_2D_ARRAY", GLenum_GL_SAMPLER_2D_ARRAY},
	{"GL_SAMPLER_BUFFER", GLenum_GL_SAMPLER_BUFFER},
	{"GL_SAMPLER_1D_ARRAY_SHADOW", GLenum_GL_SAMPLER_1D_ARRAY_SHADOW},
	{"GL_SAMPLER_2D_ARRAY_SHADOW", GLenum_GL_SAMPLER_2D_ARRAY_SHADOW},
	{"GL_SAMPLER_CUBE_SHADOW", GLenum_GL_SAMPLER_CUBE_SHADOW},
	{"GL_UNSIGNED_INT_VEC2", GLenum_GL_UNSIGNED_INT_VEC2},
	{"GL_UNSIGNED_INT_VEC3", GLenum_GL_UNSIGNED_INT_VEC3},
	{"GL_UNSIGNED_INT_VEC4", GLenum_GL_UNSIGNED_INT_VEC4},
	{"GL_INT_SAMPLER_1D", GLenum_GL_INT_SAMPLER_1D},
	{"GL_INT_SAMPLER_2D", GLenum_GL_INT_SAMPLER_2D},
	{"GL_INT_SAMPLER_3D", GLenum_GL_INT_SAMPLER_3D},
	{"GL_INT_SAMPLER_CUBE", GLenum_GL_INT_SAMPLER_CUBE},
	{"GL_INT_SAMPLER_2D_RECT", GLenum_GL_INT_SAMPLER_2D_RECT},
	{"GL_INT_SAMPLER_1D_ARRAY", GLenum_GL_INT_SAMPLER_1D_ARRAY},
	{"GL_INT_SAMPLER_2D_ARRAY", GLenum_GL_INT_SAMPLER_2D_ARRAY},
	{"GL_INT_SAMPLER_BUFFER", GLenum_GL_INT_SAMPLER_BUFFER},
	{"GL_UNSIGNED_INT_SAMPLER_1D", GLenum_GL_UNSIGNED_INT_SAMPLER_1D},
	{"GL_UNSIGNED_INT_SAMPLER_2D", GLenum_GL_UNSIGNED_INT_SAMPLER_2D},
	{"GL_UNSIGNED_INT_SAMPLER_3D", GLenum_GL_UNSIGNED_INT_SAMPLER_3D},
	{"GL_UNSIGNED_INT_SAMPLER_CUBE", GLenum_GL_UNSIGNED_INT_SAMPLER_CUBE},
	{"GL_UNSIGNED_INT_SAMPLER_2D_RECT", GLenum_GL_UNSIGNED_INT_SAMPLER_2D_RECT},
	{"GL_UNSIGNED_INT_SAMPLER_1D_ARRAY", GLenum_GL_UNSIGNED_INT_SAMPLER_1D_ARRAY},
	{"GL_UNSIGNED_INT_SAMPLER_2D_ARRAY", GLenum_GL_UNSIGNED_INT_SAMPLER_2D_ARRAY},
	{"GL_UNSIGNED_INT_SAMPLER_BUFFER", GLenum_GL_UNSIGNED_INT_SAMPLER_BUFFER},
	{"GL_DOUBLE_MAT2", GLenum_GL_DOUBLE_MAT2},
	{"GL_DOUBLE_MAT3", GLenum_GL_DOUBLE_MAT3},
	{"GL_DOUBLE_MAT4", GLenum_GL_DOUBLE_MAT4},
	{"GL_DOUBLE_MAT2x3", GLenum_GL_DOUBLE_MAT2x3},
	{"GL_DOUBLE_MAT2x4", GLenum_GL_DOUBLE_MAT2x4},
	{"GL_DOUBLE_MAT3x2", GLenum_GL_DOUBLE_MAT3x2},
	{"GL_DOUBLE_MAT3x4", GLenum_GL_DOUBLE_MAT3x4},
	{"GL_DOUBLE_MAT4x2", GLenum_GL_DOUBLE_MAT4x2},
	{"GL_DOUBLE_MAT4x3", GLenum_GL_DOUBLE_MAT4x3},
	{"GL_DOUBLE_VEC2", GLenum_GL_DOUBLE_VEC2},
	{"GL_DOUBLE_VEC3", GLenum_GL_DOUBLE_VEC3},
	{"GL_DOUBLE_VEC4", GLenum_GL_DOUBLE_VEC4},
	{"GL_SAMPLER_CUBE_MAP_ARRAY", GLenum_GL_SAMPLER_CUBE_MAP_ARRAY},
	{"GL_SAMPLER_CUBE_MAP_ARRAY_SHADOW", GLenum_GL_SAMPLER_CUBE_MAP_ARRAY_SHADOW},
	{"GL_INT_SAMPLER_CUBE_MAP_ARRAY", GLenum_GL_INT_SAMPLER_CUBE_MAP_ARRAY},
	{"GL_UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY", GLenum_GL_UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY},
	{"GL_SAMPLER_2D_MULTISAMPLE", GLenum_GL_SAMPLER_2D_MULTISAMPLE},
	{"GL_INT_SAMPLER_2D_MULTISAMPLE", GLenum_GL_INT_SAMPLER_2D_MULTISAMPLE},
	{"GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE", GLenum_GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE},
	{"GL_SAMPLER_2D_MULTISAMPLE_ARRAY", GLenum_GL_SAMPLER_2D_MULTISAMPLE_ARRAY},
	{"GL_INT_SAMPLER_2D_MULTISAMPLE_ARRAY", GLenum_GL_INT_SAMPLER_2D_MULTISAMPLE_ARRAY},
	{"GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY", GLenum_GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY},
}

var (
	glenumByValue = map[GLenum]string{}
	glenumByName  = map[string]GLenum{}
)

func init() {
	for _, e := range glenumNames {
		if _, dup := glenumByValue[e.value]; !dup {
			glenumByValue[e.value] = e.name
		}
		glenumByName[e.name] = e.value
	}
}

// String returns the name of the enum, or its hexadecimal value if the enum is
// not known.
func (e GLenum) String() string {
	if name, ok := glenumByValue[e]; ok {
		return name
	}
	return fmt.Sprintf("GLenum(0x%04X)", uint32(e))
}

// ParseGLenum returns the enum with the given name. The "GL_" prefix is
// optional.
func ParseGLenum(name string) (GLenum, bool) {
	if !strings.HasPrefix(name, "GL_") {
		name = "GL_" + name
	}
	e, ok := glenumByName[name]
	return e, ok
}
