package wallpaper

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestColorBrightness(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  float64
	}{
		{"white", color.White, 1.0},
		{"black", color.Black, 0.0},
		{"gray8", color.Gray{Y: 128}, 128.0 / 255},
		{"gray16", color.Gray16{Y: 0x8000}, float64(0x8000) / 0xffff},
		{"red", color.NRGBA{R: 255, A: 255}, 0.299},
		{"green", color.NRGBA{G: 255, A: 255}, 0.587},
		{"blue", color.NRGBA{B: 255, A: 255}, 0.114},
		{"translucent white ignores alpha", color.NRGBA{R: 255, G: 255, B: 255, A: 40}, 1.0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorBrightness(tt.color)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("ColorBrightness(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestAutoTextColorThreshold(t *testing.T) {
	tests := []struct {
		name       string
		background color.Color
		wantBlack  bool
	}{
		{"pure white", color.White, true},
		{"pure black", color.Black, false},
		{"mid gray", color.Gray{Y: 128}, false},
		{"light gray below threshold", color.Gray{Y: 200}, false},
		{"near white", color.Gray{Y: 240}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AutoTextColor(SampleBrightness(SolidBackground(tt.background)))
			isBlack := c.R == 0 && c.G == 0 && c.B == 0
			if isBlack != tt.wantBlack {
				t.Errorf("Expected black=%v for %v, got %v", tt.wantBlack, tt.background, c)
			}
			if isBlack && c.A != 230 {
				t.Errorf("Expected black text at 90%% opacity (230), got alpha %d", c.A)
			}
			if !isBlack && c != white {
				t.Errorf("Expected opaque white, got %v", c)
			}
		})
	}
}

func TestSampleBrightnessUsesTextBand(t *testing.T) {
	// Dark top half, white bottom half: the text band (38%-85%) is mostly
	// white, the full image is only half white.
	img := solidImage(CanvasWidth, CanvasHeight, color.White)
	draw.Draw(img, image.Rect(0, 0, CanvasWidth, CanvasHeight*38/100), image.NewUniform(color.Black), image.Point{}, draw.Src)

	got := SampleBrightness(ImageBackground(img))
	if got < 0.9 {
		t.Errorf("Expected band sampling to ignore the dark top, got brightness %v", got)
	}
}

func TestSampleBrightnessImageSizes(t *testing.T) {
	for _, size := range []image.Point{{1, 1}, {3, 7}, {4000, 3000}} {
		img := solidImage(size.X, size.Y, color.White)
		if got := SampleBrightness(ImageBackground(img)); math.Abs(got-1) > 0.01 {
			t.Errorf("Size %v: expected brightness 1, got %v", size, got)
		}
	}
}

func TestSampleBrightnessEmptyImage(t *testing.T) {
	bg := Background{Color: color.White, Image: image.NewRGBA(image.Rect(0, 0, 0, 0))}
	if got := SampleBrightness(bg); got != 1 {
		t.Errorf("Empty image should fall back to the flat color, got %v", got)
	}
}

// brokenImage reports bounds but panics when read
type brokenImage struct{}

func (brokenImage) ColorModel() color.Model { return color.RGBAModel }
func (brokenImage) Bounds() image.Rectangle { return image.Rect(0, 0, 100, 100) }
func (brokenImage) At(x, y int) color.Color  { panic("corrupt pixel data") }

func TestSampleBrightnessCorruptImage(t *testing.T) {
	if got := SampleBrightness(ImageBackground(brokenImage{})); got != neutralBrightness {
		t.Errorf("Expected neutral brightness for corrupt image, got %v", got)
	}
}

func TestTransparentPhotoUsesFillColor(t *testing.T) {
	photo := image.NewNRGBA(image.Rect(0, 0, 400, 800))
	bg := Background{Color: color.White, Image: photo}

	if got := SampleBrightness(bg); got < 0.99 {
		t.Errorf("Transparent photo over white should sample as white, got %.2f", got)
	}

	r := NewRenderer()
	frame := r.Plan([]Note{{Text: "Call mom"}}, DefaultStyle(), bg)
	if want := opacity(black, 0.9); frame.TextColor != want {
		t.Errorf("Expected %v text over the white fill, got %v", want, frame.TextColor)
	}

	img := r.RenderBlank(bg)
	if c := img.RGBAAt(CanvasWidth/2, CanvasHeight/2); c.R != 0xff || c.G != 0xff || c.B != 0xff {
		t.Errorf("Expected the white fill to show through, got %v", c)
	}
}

func TestHalfTransparentPhotoBlendsWithFill(t *testing.T) {
	// Black at half alpha over white lands mid grey
	photo := solidImage(300, 600, color.NRGBA{A: 0x80})
	bg := Background{Color: color.White, Image: photo}

	got := SampleBrightness(bg)
	if got < 0.4 || got > 0.6 {
		t.Errorf("Expected mid brightness for half transparent black over white, got %.2f", got)
	}
}
