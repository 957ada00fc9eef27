package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
)

// Format is an output encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
)

// DefaultQuality is used for lossy formats when no quality is given
const DefaultQuality = 90

// Options controls encoding
type Options struct {
	Format  Format
	Quality int // 1-100, ignored for PNG
}

// FormatFromPath picks an output format from the file extension. Unknown
// extensions fall back to PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".webp":
		return FormatWebP
	default:
		return FormatPNG
	}
}

// ParseFormat converts a user supplied format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use png, jpeg or webp)", name)
	}
}

// Save writes img to path and returns the encoded size in bytes.
func Save(img image.Image, path string, opts Options) (int64, error) {
	if opts.Format == "" {
		opts.Format = FormatFromPath(path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	outFile, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if err := Encode(outFile, img, opts); err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	info, err := outFile.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat output file: %w", err)
	}
	return info.Size(), nil
}

// Encode writes img to w in the requested format.
func Encode(w io.Writer, img image.Image, opts Options) error {
	switch opts.Format {
	case FormatWebP:
		return encodeWebP(w, img, opts.Quality)
	case FormatJPEG:
		return encodeJPEG(w, img, opts.Quality)
	case FormatPNG, "":
		return encodePNG(w, img)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

func clampQuality(q int) int {
	if q <= 0 {
		return DefaultQuality
	}
	if q > 100 {
		return 100
	}
	return q
}

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: clampQuality(quality)})
}

func encodeWebP(w io.Writer, img image.Image, quality int) error {
	options := &webp.Options{
		Lossless: false,
		Quality:  float32(clampQuality(quality)),
	}
	return webp.Encode(w, img, options)
}

func encodePNG(w io.Writer, img image.Image) error {
	encoder := &png.Encoder{
		CompressionLevel: png.BestCompression,
	}
	return encoder.Encode(w, img)
}
