package layout

import "image"

// DesignSize is the edge length, in pixels, the icon geometry is authored at.
const DesignSize = 512

// Scale converts design-space lengths into pixels for one target size.
type Scale float64

// ScaleFor returns the scale that maps DesignSize onto sizePx.
func ScaleFor(sizePx int) Scale {
	return Scale(float64(sizePx) / DesignSize)
}

// Px scales v and truncates toward zero.
func (s Scale) Px(v int) int {
	return int(float64(v) * float64(s))
}

// Box is a rectangle given by its top-left corner and extent. Far edges are
// inclusive: the box covers X..X+Width and Y..Y+Height.
type Box struct {
	X, Y          int
	Width, Height int
	Radius        int
}

// Bounds returns the pixel area covered by b as a half-open rectangle.
func (b Box) Bounds() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width+1, b.Y+b.Height+1)
}

// MidY returns the vertical middle of b, rounded down.
func (b Box) MidY() int {
	return b.Y + b.Height/2
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Columns splits rect into n equal-width columns left to right. Any remainder
// from the division is left unused at the right edge.
func Columns(rect image.Rectangle, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	rect = Normalize(rect)
	width := rect.Dx() / n
	cols := make([]image.Rectangle, n)
	for i := range cols {
		x := rect.Min.X + i*width
		cols[i] = image.Rect(x, rect.Min.Y, x+width, rect.Max.Y)
	}
	return cols
}

// CenterSquare returns a square of sidePx centered in rect.
// sidePx is clamped to the shorter side of rect.
func CenterSquare(rect image.Rectangle, sidePx int) image.Rectangle {
	rect = Normalize(rect)
	if sidePx < 0 {
		sidePx = 0
	}
	if sidePx > rect.Dx() {
		sidePx = rect.Dx()
	}
	if sidePx > rect.Dy() {
		sidePx = rect.Dy()
	}
	x := rect.Min.X + (rect.Dx()-sidePx)/2
	y := rect.Min.Y + (rect.Dy()-sidePx)/2
	return image.Rect(x, y, x+sidePx, y+sidePx)
}
