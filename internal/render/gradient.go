package render

import (
	"image"
	"image/color"
)

// GradientInset is the gap in pixels between the gradient circle and the
// canvas edge.
const GradientInset = 10

// RadialGradient returns a size×size canvas holding a centered circle of
// radius size/2-GradientInset. The circle is painted as concentric rings from
// the outside in, each ring overwriting the larger ones before it, so a pixel
// ends up with the color of the smallest ring covering it. Everything outside
// the circle stays transparent, as does the whole canvas when the radius is
// not positive.
func RadialGradient(size int, colors [3]color.NRGBA) *image.NRGBA {
	img := NewCanvas(size)
	center := size / 2
	maxRadius := center - GradientInset
	for i := 0; i < maxRadius; i++ {
		ratio := float64(i) / float64(maxRadius)
		FillCircle(img, center, center, maxRadius-i, GradientColor(colors, ratio))
	}
	return img
}

// GradientColor maps ratio in [0, 1) onto the two-segment ramp
// colors[0]→colors[1]→colors[2], switching segments at 0.5.
func GradientColor(colors [3]color.NRGBA, ratio float64) color.NRGBA {
	if ratio < 0.5 {
		return Blend(colors[0], colors[1], ratio*2)
	}
	return Blend(colors[1], colors[2], (ratio-0.5)*2)
}

// Blend linearly interpolates the RGB channels of a and b, truncating each
// channel toward zero. The result is opaque.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: 0xFF,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	// Explicit conversions round each product on its own. Without them the
	// compiler may fuse either one into an FMA (arm64 does), which changes
	// truncated results.
	v := float64(float64(a)*(1-t)) + float64(float64(b)*t)
	return uint8(int(v))
}
