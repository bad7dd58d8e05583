// Package imaging provides image decoding and display scaling helpers.
package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// Load decodes the image at the specified path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// FitHeight scales img down to the given height, preserving aspect ratio.
// Images already at or below the height are returned unchanged.
func FitHeight(img image.Image, height int) image.Image {
	if img == nil || height <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dy() <= height {
		return img
	}

	w := b.Dx() * height / b.Dy()
	if w < 1 {
		w = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
