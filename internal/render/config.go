package render

import "image/color"

// Icon palette and fills, as in the reference artwork.
var (
	// Gradient control colors, outer to inner.
	GradientOuter = color.NRGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF} // #4ecdc4
	GradientMid   = color.NRGBA{R: 0x44, G: 0xA0, B: 0x8D, A: 0xFF} // #44a08d
	GradientInner = color.NRGBA{R: 0x09, G: 0x36, B: 0x37, A: 0xFF} // #093637

	MainBubbleFill      = color.NRGBA{R: 68, G: 160, B: 141, A: 200}
	SecondaryBubbleFill = color.NRGBA{R: 168, G: 230, B: 207, A: 180}
	MainDotFill         = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
	SmallDotFill        = color.NRGBA{R: 255, G: 255, B: 255, A: 200}

	// Preview sheet background and label color.
	SheetBackground = color.NRGBA{R: 0xF4, G: 0xF4, B: 0xF4, A: 0xFF}
	SheetForeground = color.NRGBA{R: 0x09, G: 0x36, B: 0x37, A: 0xFF}
)

// Palette returns the three gradient control colors in blend order.
func Palette() [3]color.NRGBA {
	return [3]color.NRGBA{GradientOuter, GradientMid, GradientInner}
}
