package wallpaper

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

// toNRGBA converts any color to non-premultiplied 8-bit RGBA.
func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// withOpacity scales the alpha channel of c by factor.
func withOpacity(c color.NRGBA, factor float64) color.NRGBA {
	factor = math.Max(0, math.Min(1, factor))
	c.A = uint8(math.Round(float64(c.A) * factor))
	return c
}

// opacity returns c with an absolute alpha value in [0,1].
func opacity(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = 0xff
	return withOpacity(c, alpha)
}

// isLight reports whether c reads as a light color, ignoring alpha.
func isLight(c color.NRGBA) bool {
	return ColorBrightness(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}) > 0.5
}

// contrastColor returns black for light colors and white for dark ones.
func contrastColor(c color.NRGBA) color.NRGBA {
	if isLight(c) {
		return black
	}
	return white
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#'
// is optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
