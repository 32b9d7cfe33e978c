package render

import (
	"image"
	"image/color"
	"testing"
)

var red = color.NRGBA{R: 255, A: 255}

func countSet(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestFillCircleCoverage(t *testing.T) {
	img := NewCanvas(11)
	FillCircle(img, 5, 5, 2, red)
	// Radius 2 is a plus shape with a filled 3x3 core.
	want := []image.Point{{5, 3}, {5, 7}, {3, 5}, {7, 5}, {4, 4}, {6, 6}}
	for _, p := range want {
		if img.NRGBAAt(p.X, p.Y) != red {
			t.Errorf("pixel %v not painted", p)
		}
	}
	for _, p := range []image.Point{{3, 3}, {7, 7}, {5, 2}, {8, 5}} {
		if img.NRGBAAt(p.X, p.Y).A != 0 {
			t.Errorf("pixel %v painted unexpectedly", p)
		}
	}
	if n := countSet(img); n != 13 {
		t.Errorf("painted %d pixels, want 13", n)
	}
}

func TestFillCircleZeroAndNegativeRadius(t *testing.T) {
	img := NewCanvas(5)
	FillCircle(img, 2, 2, 0, red)
	if n := countSet(img); n != 1 {
		t.Errorf("radius 0 painted %d pixels, want 1", n)
	}
	img = NewCanvas(5)
	FillCircle(img, 2, 2, -1, red)
	if n := countSet(img); n != 0 {
		t.Errorf("negative radius painted %d pixels", n)
	}
}

func TestFillCircleClipsToCanvas(t *testing.T) {
	img := NewCanvas(4)
	FillCircle(img, 0, 0, 3, red)
	if img.NRGBAAt(0, 0) != red {
		t.Error("corner not painted")
	}
}

func TestFillReplacesPixels(t *testing.T) {
	img := NewCanvas(4)
	FillCircle(img, 1, 1, 2, red)
	half := color.NRGBA{R: 10, G: 20, B: 30, A: 128}
	FillCircle(img, 1, 1, 0, half)
	if got := img.NRGBAAt(1, 1); got != half {
		t.Errorf("got %v, want fill replaced to %v", got, half)
	}
}

func TestFillRoundedRect(t *testing.T) {
	img := NewCanvas(30)
	rect := image.Rect(5, 5, 26, 16) // inclusive 5..25 by 5..15
	FillRoundedRect(img, rect, 4, red)

	for _, p := range []image.Point{{5, 10}, {25, 10}, {15, 5}, {15, 15}, {9, 5}, {15, 10}} {
		if img.NRGBAAt(p.X, p.Y) != red {
			t.Errorf("pixel %v not painted", p)
		}
	}
	for _, p := range []image.Point{{5, 5}, {25, 5}, {5, 15}, {25, 15}, {4, 10}, {26, 10}, {15, 16}} {
		if img.NRGBAAt(p.X, p.Y).A != 0 {
			t.Errorf("pixel %v painted unexpectedly", p)
		}
	}
}

func TestFillRoundedRectZeroRadiusIsRect(t *testing.T) {
	img := NewCanvas(10)
	FillRoundedRect(img, image.Rect(2, 2, 6, 5), 0, red)
	if n := countSet(img); n != 12 {
		t.Errorf("painted %d pixels, want 12", n)
	}
}

func TestFillRoundedRectClampsRadius(t *testing.T) {
	img := NewCanvas(20)
	FillRoundedRect(img, image.Rect(0, 0, 11, 5), 50, red)
	// Clamped to 2: the vertical middle row spans the full width.
	if img.NRGBAAt(0, 2) != red || img.NRGBAAt(10, 2) != red {
		t.Error("middle row ends not painted")
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("corner painted despite rounding")
	}
}
