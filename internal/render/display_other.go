//go:build !linux || !cgo

package render

import (
	"errors"
	"image"
)

const DefaultFramebuffer = "/dev/fb0"

// ShowOnFramebuffer is only available on Linux.
func ShowOnFramebuffer(path string, img image.Image) error {
	return errors.New("framebuffer display is only supported on linux")
}
