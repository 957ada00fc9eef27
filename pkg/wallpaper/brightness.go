package wallpaper

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

const (
	// Downsample grid; keeps sampling cost constant for any photo size
	sampleGrid = 12

	// Band of the canvas the text actually lands on
	sampleBandTop    = 0.38
	sampleBandBottom = 0.85
	sampleBandRight  = 0.80

	neutralBrightness = 0.5

	// Only near-white backgrounds switch the text to black. White text with
	// a shadow stays readable on most photos.
	darkTextThreshold = 0.85
)

// ColorBrightness returns the luma of c in [0,1]. Alpha is ignored.
func ColorBrightness(c color.Color) float64 {
	switch g := c.(type) {
	case nil:
		return 0
	case color.Gray:
		return float64(g.Y) / 0xff
	case color.Gray16:
		return float64(g.Y) / 0xffff
	}

	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return luma(float64(n.R)/0xffff, float64(n.G)/0xffff, float64(n.B)/0xffff)
}

// SampleBrightness scores how bright the background is where text sits.
// Photos are cover-fitted to the canvas first so the sampled band matches
// what is drawn under the notes.
func SampleBrightness(bg Background) float64 {
	if !bg.hasImage() {
		return ColorBrightness(bg.fillColor())
	}
	fitted, ok := coverFit(bg.Image, bg.fillColor())
	if !ok {
		return neutralBrightness
	}
	return sampleFitted(fitted)
}

// AutoTextColor picks the text color for a background brightness.
func AutoTextColor(brightness float64) color.NRGBA {
	if brightness >= darkTextThreshold {
		return opacity(black, 0.9)
	}
	return white
}

// sampleFitted averages the text band of a canvas-sized image, falling back
// to the whole image and then to a neutral score.
func sampleFitted(img image.Image) float64 {
	band := textBand(img.Bounds())
	if v, ok := averageLuma(imaging.Crop(img, band)); ok {
		return v
	}

	Logger().Warn("brightness band sampling failed, sampling full image",
		"bounds", img.Bounds().String())
	if v, ok := averageLuma(img); ok {
		return v
	}

	Logger().Warn("brightness sampling failed, using neutral brightness")
	return neutralBrightness
}

// textBand maps the sample band fractions onto bounds.
func textBand(bounds image.Rectangle) image.Rectangle {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	return image.Rect(
		bounds.Min.X,
		bounds.Min.Y+int(math.Round(h*sampleBandTop)),
		bounds.Min.X+int(math.Round(w*sampleBandRight)),
		bounds.Min.Y+int(math.Round(h*sampleBandBottom)),
	)
}

// averageLuma downsamples img to the sample grid and averages its luma.
func averageLuma(img image.Image) (float64, bool) {
	if img == nil || img.Bounds().Empty() {
		return 0, false
	}

	small := imaging.Resize(img, sampleGrid, sampleGrid, imaging.Box)
	var sum float64
	var count int
	for i := 0; i+3 < len(small.Pix); i += 4 {
		sum += luma(float64(small.Pix[i])/0xff, float64(small.Pix[i+1])/0xff, float64(small.Pix[i+2])/0xff)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func luma(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}
