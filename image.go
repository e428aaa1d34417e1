package bitmap

import (
	"image"
	"image/color"
	"image/draw"
)

// A Bitmap can be used as a destination for the stdlib and
// golang.org/x/image drawing routines. Writes through Set go through the
// same clipping path as DrawPoint.
var (
	_ image.Image = (*Bitmap)(nil)
	_ draw.Image  = (*Bitmap)(nil)
)

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return PixelModel
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// RGBAAt returns the color at (x, y) as a color.RGBA value. Points
// inside the buffer are fully opaque; points outside yield the zero
// color.
func (b *Bitmap) RGBAAt(x, y int) color.RGBA {
	pix, ok := b.PixelAt(image.Pt(x, y))
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: pix.R, G: pix.G, B: pix.B, A: 0xff}
}

// Set implements the draw.Image interface. Points outside the buffer are
// discarded silently.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.DrawPoint(image.Pt(x, y), PixelFromColor(c))
}
