//go:build linux && cgo

package render

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// DefaultFramebuffer is the device used when none is given.
const DefaultFramebuffer = "/dev/fb0"

// ShowOnFramebuffer blits img onto the framebuffer device at path, scaled
// nearest-neighbor to the device bounds. Transparent areas show as black.
func ShowOnFramebuffer(path string, img image.Image) error {
	if path == "" {
		path = DefaultFramebuffer
	}
	dev, err := fb.Open(path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	defer dev.Close()
	blit(dev, img)
	return nil
}

type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

func blit(dst pixelSink, src image.Image) {
	bounds := dst.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	srcBounds := src.Bounds()
	srcWidth, srcHeight := srcBounds.Dx(), srcBounds.Dy()
	if dstWidth <= 0 || dstHeight <= 0 || srcWidth <= 0 || srcHeight <= 0 {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcWidth)/dstWidth
			r, g, b, _ := src.At(sx, sy).RGBA()
			// Premultiplied channels over black.
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
