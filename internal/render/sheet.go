package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/simplechat/appicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Contact sheet geometry.
const (
	SheetCellPx    = 256
	SheetPaddingPx = 16
	SheetLabelPx   = 40
	sheetFontPt    = 14
)

// Tile is one icon shown on a contact sheet.
type Tile struct {
	Label string
	Image image.Image
}

// TileLabel formats the caption used for an exported icon.
func TileLabel(name string, sizePx int) string {
	return fmt.Sprintf("%s %dx%d", name, sizePx, sizePx)
}

// ContactSheet lays tiles out left to right. Each icon is upscaled
// nearest-neighbor so small sizes stay pixel-exact when inspected, and is
// captioned underneath. An empty tile list yields an empty image.
func ContactSheet(tiles []Tile) *image.NRGBA {
	if len(tiles) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	colWidth := SheetCellPx + 2*SheetPaddingPx
	height := SheetCellPx + 2*SheetPaddingPx + SheetLabelPx
	sheet := image.NewNRGBA(image.Rect(0, 0, colWidth*len(tiles), height))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: SheetBackground}, image.Point{}, draw.Src)

	face := sheetFace()
	for i, col := range layout.Columns(sheet.Bounds(), len(tiles)) {
		cell, caption := layout.SplitHorizontal(col, col.Dy()-SheetLabelPx)
		drawTile(sheet, layout.Inset(cell, SheetPaddingPx), tiles[i].Image)
		drawCaption(sheet, caption, tiles[i].Label, face)
	}
	return sheet
}

func drawTile(dst *image.NRGBA, cell image.Rectangle, src image.Image) {
	if src == nil {
		return
	}
	// Largest whole multiple of the source that fits keeps pixels square;
	// sources bigger than the cell are shrunk to it.
	side := src.Bounds().Dx()
	if side <= 0 {
		return
	}
	factor := cell.Dx() / side
	if factor < 1 {
		factor = 1
	}
	target := layout.CenterSquare(cell, side*factor)
	xdraw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), xdraw.Over, nil)
}

func drawCaption(dst *image.NRGBA, area image.Rectangle, text string, face font.Face) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(SheetForeground),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	x := area.Min.X + (area.Dx()-textWidth)/2
	y := area.Min.Y + (area.Dy()+ascent)/2 - SheetPaddingPx/2
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)
}

func sheetFace() font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(tt, &truetype.Options{Size: sheetFontPt, DPI: 96, Hinting: font.HintingFull})
}
