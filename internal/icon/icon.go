// Package icon composes the chat bubble launcher icon.
package icon

import (
	"image"

	"github.com/simplechat/appicon/internal/render"
	"github.com/simplechat/appicon/internal/render/layout"
)

// Dot is a filled circle inside one of the bubbles.
type Dot struct {
	X, Y   int
	Radius int
}

// Layout holds the pixel geometry of the icon for one target size.
type Layout struct {
	Size      int
	Main      layout.Box
	Secondary layout.Box
	MainDots  [3]Dot
	SmallDots [3]Dot
}

var (
	mainDotOffsets  = [3]int{40, 80, 120}
	smallDotOffsets = [3]int{25, 50, 75}
)

// NewLayout scales the design-space geometry to sizePx.
//
// Dot x positions add a design offset to the already scaled bubble origin and
// scale the sum again. Below the design size that shifts the dots left of
// where a single scaling would put them; published icons depend on it.
func NewLayout(sizePx int) Layout {
	s := layout.ScaleFor(sizePx)
	l := Layout{
		Size: sizePx,
		Main: layout.Box{
			X: s.Px(80), Y: s.Px(150),
			Width: s.Px(200), Height: s.Px(120),
			Radius: s.Px(25),
		},
		Secondary: layout.Box{
			X: s.Px(250), Y: s.Px(220),
			Width: s.Px(140), Height: s.Px(80),
			Radius: s.Px(20),
		},
	}

	dotRadius := s.Px(12)
	for i, off := range mainDotOffsets {
		l.MainDots[i] = Dot{X: s.Px(l.Main.X + off), Y: l.Main.MidY(), Radius: dotRadius}
	}
	smallRadius := s.Px(8)
	for i, off := range smallDotOffsets {
		l.SmallDots[i] = Dot{X: s.Px(l.Secondary.X + off), Y: l.Secondary.MidY(), Radius: smallRadius}
	}
	return l
}

// Compose renders the icon at sizePx×sizePx.
func Compose(sizePx int) *image.NRGBA {
	img := render.RadialGradient(sizePx, render.Palette())
	l := NewLayout(sizePx)

	render.FillRoundedRect(img, l.Main.Bounds(), l.Main.Radius, render.MainBubbleFill)
	render.FillRoundedRect(img, l.Secondary.Bounds(), l.Secondary.Radius, render.SecondaryBubbleFill)
	for _, d := range l.MainDots {
		render.FillCircle(img, d.X, d.Y, d.Radius, render.MainDotFill)
	}
	for _, d := range l.SmallDots {
		render.FillCircle(img, d.X, d.Y, d.Radius, render.SmallDotFill)
	}
	return img
}
