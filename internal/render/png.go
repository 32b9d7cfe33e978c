package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
)

// EncodePNG returns img as PNG bytes. Output carries no timestamps or other
// metadata, so equal images always encode to equal bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePNG encodes img and writes it to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
