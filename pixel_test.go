package bitmap

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPixelLayout(t *testing.T) {
	got := NewPixel(1, 2, 3)
	want := Pixel{B: 3, G: 2, R: 1, X: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pixel layout mismatch (-want +got):\n%s", diff)
	}
}

func TestPixelRGB(t *testing.T) {
	r, g, b := NewPixel(10, 20, 30).RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("RGB() = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestPixelFromColor(t *testing.T) {
	cases := []struct {
		in   color.Color
		want Pixel
	}{
		{color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, NewPixel(10, 20, 30)},
		{color.White, NewPixel(255, 255, 255)},
		{color.Black, Pixel{}},
		// a Pixel converts to itself
		{NewPixel(40, 50, 60), NewPixel(40, 50, 60)},
	}
	for _, c := range cases {
		if got := PixelFromColor(c.in); got != c.want {
			t.Errorf("PixelFromColor(%v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestPixelAsColor(t *testing.T) {
	p := NewPixel(255, 0, 128)

	// converting through the stdlib color model must preserve the
	// channels and report full opacity
	got := color.RGBAModel.Convert(p).(color.RGBA)
	want := color.RGBA{R: 255, G: 0, B: 128, A: 0xff}
	if got != want {
		t.Errorf("converted to %+v, want %+v", got, want)
	}
}

func TestPixelModelIdentity(t *testing.T) {
	p := NewPixel(1, 2, 3)
	if got := PixelModel.Convert(p); got != p {
		t.Errorf("PixelModel.Convert(%+v) = %+v", p, got)
	}
}
