// seehuhn.de/go/bitmap - an off-screen pixel buffer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bitmap

import "image"

// The drawing primitives clip instead of failing: points outside the
// buffer are silently discarded. Callers that need to detect
// out-of-range writes use PixelRef directly.

// DrawPoint writes pix at the given point. If the point lies outside the
// buffer, the call is a no-op.
func (b *Bitmap) DrawPoint(p image.Point, pix Pixel) {
	if ref, err := b.PixelRef(p); err == nil {
		*ref = pix
	}
}

// DrawRect fills an axis-aligned box with a single pixel value. The box
// has the width and height of r and is translated by offset; pixels
// falling outside the buffer are clipped silently.
//
// The fill is half-open, matching the image.Rectangle convention:
// exactly r.Dx()*r.Dy() points are painted, covering
// [offset.X, offset.X+r.Dx()) × [offset.Y, offset.Y+r.Dy())
// before clipping.
func (b *Bitmap) DrawRect(offset image.Point, r image.Rectangle, pix Pixel) {
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			b.DrawPoint(image.Pt(offset.X+x, offset.Y+y), pix)
		}
	}
}

// Fill sets every pixel of the buffer to pix.
func (b *Bitmap) Fill(pix Pixel) {
	for i := range b.pix {
		b.pix[i] = pix
	}
}
