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

// Package bitmap implements a fixed-size off-screen pixel buffer in the
// BGRX8888 layout, for use as a render target inside a larger pipeline.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"math"
	"unsafe"
)

// Error values returned by the constructor and the pixel accessors.
var (
	// ErrDrawOOB indicates a write to a point outside the buffer.
	// The caller can recover, for example by clamping the point or by
	// ignoring the write.
	ErrDrawOOB = errors.New("draw out of bounds")

	// ErrMemory indicates that the requested buffer size cannot be
	// represented, or that the backing store could not supply a location
	// for a validated index. The latter does not occur in a correctly
	// constructed Bitmap.
	ErrMemory = errors.New("memory error")
)

// Bitmap is a width×height buffer of BGRX8888 pixels in row-major order,
// with no inter-row padding. The buffer is allocated zero-filled at
// construction time and never resized; drawing operations only ever
// overwrite existing slots. The backing memory is owned exclusively by
// the Bitmap and is released by the garbage collector once the Bitmap
// becomes unreachable.
//
// A Bitmap is not safe for concurrent use. Read-only access from
// multiple goroutines is safe as long as no goroutine writes.
type Bitmap struct {
	width  int
	height int
	pix    []Pixel // len(pix) == width*height
}

// Pixel values must stay exactly four bytes wide, so that the buffer can
// be reinterpreted as raw BGRX8888 bytes in RawBytes.
var _ [4]byte = [unsafe.Sizeof(Pixel{})]byte{}

// New allocates a zero-filled Bitmap sized to the given rectangle. Every
// pixel of the new buffer is the zero value (black, zero padding).
//
// If the element count width*height, or its size in bytes, cannot be
// represented in an int, New fails with an error wrapping ErrMemory.
// Exhaustion of the underlying allocator is not recoverable in Go and
// aborts the process instead.
func New(size image.Rectangle) (*Bitmap, error) {
	width, height := size.Dx(), size.Dy()
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("bitmap: invalid size %dx%d: %w", width, height, ErrMemory)
	}
	if height > 0 && width > math.MaxInt/4/height {
		return nil, fmt.Errorf("bitmap: size %dx%d not representable: %w", width, height, ErrMemory)
	}
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Stride returns the distance in bytes between vertically adjacent
// pixels. Rows are packed, so this is always four times the width.
func (b *Bitmap) Stride() int {
	return b.width * bytesPerPixel
}

// Area returns the number of pixels in the buffer.
func (b *Bitmap) Area() int {
	return b.width * b.height
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%d,%d)", b.width, b.height)
}

// index resolves a point to its linear index y*width+x. The second
// return value reports whether the point lies inside the buffer; an
// index equal to width*height is one-past-the-end and never valid.
func (b *Bitmap) index(p image.Point) (int, bool) {
	if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
		return 0, false
	}
	return p.Y*b.width + p.X, true
}

// PixelAt returns the pixel value at the given point. The second return
// value is false if the point lies outside the buffer. The bounds check
// is performed on every call, in every build configuration.
func (b *Bitmap) PixelAt(p image.Point) (Pixel, bool) {
	i, ok := b.index(p)
	if !ok {
		return Pixel{}, false
	}
	return b.pix[i], true
}

// PixelRef returns a pointer to the pixel at the given point, for
// in-place modification. It fails with an error wrapping ErrDrawOOB if
// the point lies outside the buffer, and with an error wrapping
// ErrMemory if the backing store cannot supply a location for a
// validated index. The latter indicates a broken invariant and does not
// occur in normal operation.
func (b *Bitmap) PixelRef(p image.Point) (*Pixel, error) {
	i, ok := b.index(p)
	if !ok {
		return nil, fmt.Errorf("bitmap: point %v outside %dx%d buffer: %w",
			p, b.width, b.height, ErrDrawOOB)
	}
	if i >= len(b.pix) {
		return nil, fmt.Errorf("bitmap: no storage for index %d: %w", i, ErrMemory)
	}
	return &b.pix[i], nil
}

// RawBytes exposes the backing memory as width*height*4 raw BGRX8888
// bytes, for handing to a blitter or encoder. This is an interop escape
// hatch: the caller must not write through the returned slice, must not
// read past its length, and must not retain it beyond the lifetime of
// the Bitmap. RawBytes returns nil for an empty buffer.
func (b *Bitmap) RawBytes() []byte {
	if len(b.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.pix[0])), len(b.pix)*bytesPerPixel)
}

// bytesPerPixel is the size of the BGRX8888 encoding.
const bytesPerPixel = 4
