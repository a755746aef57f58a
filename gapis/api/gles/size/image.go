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

package size

import (
	"context"

	"github.com/gfxreplay/glretrace/gapis/api/gles"
)

// ImageSize returns the number of bytes of client memory read for an image of
// the given format, type and dimensions under the current unpack state.
//
// When unpackSubimage is false the unpack row length, image height and skip
// parameters are taken as 0, as the API variant has no such state.
func (r *Resolver) ImageSize(ctx context.Context, format, ty gles.GLenum, width, height, depth int32, unpackSubimage bool) uint64 {
	bits, unit := gles.BitsPerPixel(ctx, format, ty)
	if bits == 0 {
		return 0
	}
	bpp := uint64(bits)

	alignment := uint64(4)
	if a := r.getInteger(gles.GLenum_GL_UNPACK_ALIGNMENT); a > 0 {
		alignment = uint64(a)
	}

	var rowLength, imageHeight, skipPixels, skipRows, skipImages uint64
	if unpackSubimage {
		rowLength = nonNegative(r.getInteger(gles.GLenum_GL_UNPACK_ROW_LENGTH))
		imageHeight = nonNegative(r.getInteger(gles.GLenum_GL_UNPACK_IMAGE_HEIGHT))
		skipPixels = nonNegative(r.getInteger(gles.GLenum_GL_UNPACK_SKIP_PIXELS))
		skipRows = nonNegative(r.getInteger(gles.GLenum_GL_UNPACK_SKIP_ROWS))
		skipImages = nonNegative(r.getInteger(gles.GLenum_GL_UNPACK_SKIP_IMAGES))
	}
	if rowLength == 0 {
		rowLength = nonNegative(width)
	}
	if imageHeight == 0 {
		imageHeight = nonNegative(height)
	}

	rowStride := (rowLength*bpp + 7) / 8
	if alignedRows(uint64(unit), alignment) {
		rowStride = (rowStride + alignment - 1) / alignment * alignment
	}
	imageStride := imageHeight * rowStride

	return nonNegative(depth)*imageStride +
		(skipPixels*bpp+7)/8 +
		skipRows*rowStride +
		skipImages*imageStride
}

// alignedRows returns true if rows of elements of unit bits are padded to
// alignment bytes. Only whole power-of-two byte elements smaller than the
// alignment are padded.
func alignedRows(unit, alignment uint64) bool {
	if unit == 0 || unit%8 != 0 {
		return false
	}
	bytes := unit / 8
	return bytes&(bytes-1) == 0 && unit < alignment*8
}

// TexImage3DSize is the size of the pixels of a glTexImage3D call.
func (r *Resolver) TexImage3DSize(ctx context.Context, format, ty gles.GLenum, width, height, depth int32) uint64 {
	return r.ImageSize(ctx, format, ty, width, height, depth, r.UnpackSubimage)
}

// TexImage2DSize is the size of the pixels of a glTexImage2D call.
func (r *Resolver) TexImage2DSize(ctx context.Context, format, ty gles.GLenum, width, height int32) uint64 {
	return r.ImageSize(ctx, format, ty, width, height, 1, r.UnpackSubimage)
}

// TexImage1DSize is the size of the pixels of a glTexImage1D call.
func (r *Resolver) TexImage1DSize(ctx context.Context, format, ty gles.GLenum, width int32) uint64 {
	return r.ImageSize(ctx, format, ty, width, 1, 1, r.UnpackSubimage)
}

// DrawPixelsSize is the size of the pixels of a glDrawPixels call.
func (r *Resolver) DrawPixelsSize(ctx context.Context, width, height int32, format, ty gles.GLenum) uint64 {
	return r.TexImage2DSize(ctx, format, ty, width, height)
}

// BitmapSize is the size of the bitmap of a glBitmap call.
func (r *Resolver) BitmapSize(ctx context.Context, width, height int32) uint64 {
	return r.TexImage2DSize(ctx, gles.GLenum_GL_COLOR_INDEX, gles.GLenum_GL_BITMAP, width, height)
}

// PolygonStippleSize is the size of the 32x32 pattern of a glPolygonStipple
// call.
func (r *Resolver) PolygonStippleSize(ctx context.Context) uint64 {
	return r.BitmapSize(ctx, 32, 32)
}

// ColorTableSize is the size of the table of a glColorTable call.
func (r *Resolver) ColorTableSize(ctx context.Context, format, ty gles.GLenum, width int32) uint64 {
	return r.TexImage1DSize(ctx, format, ty, width)
}

// ConvolutionFilter1DSize is the size of the image of a
// glConvolutionFilter1D call.
func (r *Resolver) ConvolutionFilter1DSize(ctx context.Context, format, ty gles.GLenum, width int32) uint64 {
	return r.TexImage1DSize(ctx, format, ty, width)
}

// ConvolutionFilter2DSize is the size of the image of a
// glConvolutionFilter2D call.
func (r *Resolver) ConvolutionFilter2DSize(ctx context.Context, format, ty gles.GLenum, width, height int32) uint64 {
	return r.TexImage2DSize(ctx, format, ty, width, height)
}
