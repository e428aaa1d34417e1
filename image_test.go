package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	xdraw "golang.org/x/image/draw"
)

// TestBlitFromRGBA copies a stdlib image into the buffer through the
// draw.Image surface and checks that the result lands in BGRX byte
// order.
func TestBlitFromRGBA(t *testing.T) {
	const w, h = 4, 4

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 60),
				G: uint8(y * 60),
				B: uint8(x + y),
				A: 0xff,
			})
		}
	}

	b, err := New(image.Rect(0, 0, w, h))
	if err != nil {
		t.Fatal(err)
	}
	xdraw.Copy(b, image.Point{}, src, src.Bounds(), xdraw.Src, nil)

	wantRaw := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.RGBAAt(x, y)
			wantRaw = append(wantRaw, c.B, c.G, c.R, 0)
		}
	}
	if diff := cmp.Diff(wantRaw, b.RawBytes()); diff != "" {
		t.Errorf("blit result mismatch (-want +got):\n%s", diff)
	}
}

func TestSetClips(t *testing.T) {
	b, err := New(image.Rect(0, 0, 3, 3))
	if err != nil {
		t.Fatal(err)
	}

	b.Set(-1, -1, color.White)
	b.Set(3, 0, color.White)
	b.Set(0, 3, color.White)
	b.Set(5, 5, color.White)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if pix, _ := b.PixelAt(image.Pt(x, y)); pix != (Pixel{}) {
				t.Errorf("pixel at (%d,%d) = %+v after out-of-range Set", x, y, pix)
			}
		}
	}
}

func TestAtBounds(t *testing.T) {
	b, err := New(image.Rect(0, 0, 3, 2))
	if err != nil {
		t.Fatal(err)
	}
	b.DrawPoint(image.Pt(1, 1), NewPixel(200, 100, 50))

	if got := b.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}

	// inside: opaque, channels in R,G,B order
	if got := b.RGBAAt(1, 1); got != (color.RGBA{R: 200, G: 100, B: 50, A: 0xff}) {
		t.Errorf("RGBAAt(1,1) = %+v", got)
	}
	// untouched pixels read as opaque black
	if got := b.RGBAAt(0, 0); got != (color.RGBA{A: 0xff}) {
		t.Errorf("RGBAAt(0,0) = %+v", got)
	}
	// outside: zero color
	if got := b.RGBAAt(-1, 0); got != (color.RGBA{}) {
		t.Errorf("RGBAAt(-1,0) = %+v", got)
	}
	if got := b.RGBAAt(3, 0); got != (color.RGBA{}) {
		t.Errorf("RGBAAt(3,0) = %+v", got)
	}
}

func TestColorModel(t *testing.T) {
	b, err := New(image.Rect(0, 0, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	m := b.ColorModel()
	got := m.Convert(color.RGBA{R: 7, G: 8, B: 9, A: 0xff})
	if got != NewPixel(7, 8, 9) {
		t.Errorf("ColorModel().Convert = %+v", got)
	}
}
