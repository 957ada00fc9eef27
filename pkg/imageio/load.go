package imageio

import (
	"fmt"
	"image"
	"path/filepath"

	// Registers the WebP decoder with image.Decode.
	_ "github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// LoadBackground decodes a background photo, applying EXIF orientation so
// phone pictures are upright before they are cover-fitted.
func LoadBackground(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open background %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// FitToScreen scales a rendered canvas to a device's native pixel size.
func FitToScreen(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if width <= 0 || height <= 0 || (b.Dx() == width && b.Dy() == height) {
		return img
	}
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}
