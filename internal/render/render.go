package render

import (
	"image"
	"image/color"
)

// NewCanvas returns a fully transparent square canvas.
//
// Canvases are non-premultiplied so fills carrying alpha are stored exactly as
// given and encode to PNG without rounding.
func NewCanvas(size int) *image.NRGBA {
	if size < 0 {
		size = 0
	}
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// FillCircle paints every pixel within radius of (cx, cy), replacing whatever
// was there. The covered span is [cx-radius, cx+radius] on both axes.
// A negative radius paints nothing.
func FillCircle(img *image.NRGBA, cx, cy, radius int, c color.NRGBA) {
	if radius < 0 {
		return
	}
	clip := img.Bounds()
	rr := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		if y < clip.Min.Y || y >= clip.Max.Y {
			continue
		}
		dy := y - cy
		for x := cx - radius; x <= cx+radius; x++ {
			if x < clip.Min.X || x >= clip.Max.X {
				continue
			}
			dx := x - cx
			if dx*dx+dy*dy <= rr {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// FillRoundedRect paints rect (Max exclusive) with circular corners of the
// given radius, replacing whatever was there. The radius is clamped to half
// of the shorter side.
func FillRoundedRect(img *image.NRGBA, rect image.Rectangle, radius int, c color.NRGBA) {
	if rect.Empty() {
		return
	}
	x0, y0 := rect.Min.X, rect.Min.Y
	x1, y1 := rect.Max.X-1, rect.Max.Y-1
	if radius < 0 {
		radius = 0
	}
	if radius > (x1-x0)/2 {
		radius = (x1 - x0) / 2
	}
	if radius > (y1-y0)/2 {
		radius = (y1 - y0) / 2
	}
	rr := radius * radius

	area := rect.Intersect(img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		cy, inRow := cornerCenter(y, y0, y1, radius)
		for x := area.Min.X; x < area.Max.X; x++ {
			cx, inCol := cornerCenter(x, x0, x1, radius)
			if inRow && inCol {
				dx, dy := x-cx, y-cy
				if dx*dx+dy*dy > rr {
					continue
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

// cornerCenter reports whether v falls in a corner band of [lo, hi] and, if
// so, the coordinate of that corner's circle center.
func cornerCenter(v, lo, hi, radius int) (int, bool) {
	switch {
	case v < lo+radius:
		return lo + radius, true
	case v > hi-radius:
		return hi - radius, true
	}
	return 0, false
}
