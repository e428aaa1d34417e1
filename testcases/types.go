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

// Package testcases defines drawing scenarios shared by the bitmap
// tests. The scenarios are expressed in plain image geometry and RGB
// triples, so that they can be replayed against independent
// implementations and compared.
package testcases

import "image"

// TestCase defines a single drawing scenario.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // buffer width in pixels
	Height int    // buffer height in pixels
	Ops    []Op   // drawing operations, applied in order
}

// Op is a single drawing operation applied to the buffer.
type Op interface {
	isOp()
}

// Point draws a single pixel.
type Point struct {
	P       image.Point
	R, G, B uint8
}

func (Point) isOp() {}

// Rect fills the axis-aligned box with the width and height of Size,
// translated by Offset. The fill is half-open: Size.Dx()*Size.Dy()
// points before clipping.
type Rect struct {
	Offset  image.Point
	Size    image.Rectangle
	R, G, B uint8
}

func (Rect) isOp() {}

// Fill floods the whole buffer with one color.
type Fill struct {
	R, G, B uint8
}

func (Fill) isOp() {}

// pt is a helper to create an image.Point.
func pt(x, y int) image.Point {
	return image.Pt(x, y)
}

// sz is a helper to create a width×height rectangle at the origin.
func sz(w, h int) image.Rectangle {
	return image.Rect(0, 0, w, h)
}
