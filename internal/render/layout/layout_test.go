package layout

import (
	"image"
	"testing"
)

func TestScalePxTruncates(t *testing.T) {
	s := ScaleFor(96)
	tests := []struct {
		in, want int
	}{
		{80, 15},
		{150, 28},
		{200, 37},
		{120, 22},
		{25, 4},
	}
	for _, tt := range tests {
		if got := s.Px(tt.in); got != tt.want {
			t.Errorf("Px(%d) at 96 = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestScaleIdentityAtDesignSize(t *testing.T) {
	s := ScaleFor(DesignSize)
	for _, v := range []int{0, 1, 25, 80, 390} {
		if got := s.Px(v); got != v {
			t.Errorf("Px(%d) = %d, want %d", v, got, v)
		}
	}
}

func TestBoxBoundsInclusive(t *testing.T) {
	b := Box{X: 15, Y: 28, Width: 37, Height: 22}
	want := image.Rect(15, 28, 53, 51)
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := b.MidY(); got != 39 {
		t.Errorf("MidY() = %d, want 39", got)
	}
}

func TestColumns(t *testing.T) {
	cols := Columns(image.Rect(0, 0, 100, 10), 3)
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}
	if cols[0] != image.Rect(0, 0, 33, 10) || cols[2] != image.Rect(66, 0, 99, 10) {
		t.Errorf("unexpected columns %v", cols)
	}
	if Columns(image.Rect(0, 0, 10, 10), 0) != nil {
		t.Error("expected nil for zero columns")
	}
}

func TestCenterSquare(t *testing.T) {
	got := CenterSquare(image.Rect(0, 0, 100, 60), 40)
	if got != image.Rect(30, 10, 70, 50) {
		t.Errorf("CenterSquare = %v", got)
	}
	got = CenterSquare(image.Rect(0, 0, 100, 60), 500)
	if got.Dx() != 60 || got.Dy() != 60 {
		t.Errorf("expected clamp to 60, got %v", got)
	}
}

func TestInsetAndSplit(t *testing.T) {
	r := Inset(image.Rect(0, 0, 20, 20), 5)
	if r != image.Rect(5, 5, 15, 15) {
		t.Errorf("Inset = %v", r)
	}
	top, bottom := SplitHorizontal(image.Rect(0, 0, 10, 10), 30)
	if top.Dy() != 10 || !bottom.Empty() {
		t.Errorf("SplitHorizontal clamp failed: %v %v", top, bottom)
	}
}
