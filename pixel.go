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

import "image/color"

// Pixel is a single BGRX8888 color value: three 8-bit channels stored in
// blue, green, red byte order, followed by one padding byte which is
// always zero. The layout matches common 32-bit-aligned framebuffer
// formats, so a row of Pixel values can be handed to a blitter unchanged.
//
// There are no alpha semantics; the X byte is inert.
type Pixel struct {
	B, G, R, X uint8
}

// NewPixel builds a Pixel from red, green and blue channel values.
// The padding byte is zero.
func NewPixel(r, g, b uint8) Pixel {
	return Pixel{B: b, G: g, R: r}
}

// PixelFromColor converts an arbitrary color to the BGRX8888 encoding,
// discarding any alpha information.
func PixelFromColor(c color.Color) Pixel {
	return PixelModel.Convert(c).(Pixel)
}

// RGB returns the pixel's channel values in red, green, blue order.
func (p Pixel) RGB() (r, g, b uint8) {
	return p.R, p.G, p.B
}

// RGBA implements the color.Color interface. A Pixel is always fully
// opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// PixelModel converts colors to the BGRX8888 encoding.
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pixel{
		B: uint8(b >> 8),
		G: uint8(g >> 8),
		R: uint8(r >> 8),
	}
}
