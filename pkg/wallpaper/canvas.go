package wallpaper

import (
	"math"

	"github.com/alde/notewall/pkg/device"
)

// Fixed output resolution, portrait 19.5:9
const (
	CanvasWidth  = 1290
	CanvasHeight = 2796
)

// Margin fractions of the canvas. Widgets occupy the band under the clock,
// so the text starts lower when they are present.
const (
	topMarginFraction        = 0.30
	topMarginWidgetsFraction = 0.38
	bottomMarginFraction     = 0.16 // Flashlight / camera row
	sideMarginFraction       = 0.08
)

// Region is the part of the canvas notes are laid out in
type Region struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// RegionFor derives the text region for a device bucket.
func RegionFor(bucket device.Bucket, hasWidgets bool) Region {
	base := topMarginFraction
	if hasWidgets {
		base = topMarginWidgetsFraction
	}

	side := math.Round(CanvasWidth * sideMarginFraction)
	return Region{
		Top:    math.Round(CanvasHeight * device.CorrectTopMargin(base, bucket)),
		Bottom: math.Round(CanvasHeight * bottomMarginFraction),
		Left:   side,
		Right:  side,
	}
}

// AvailableHeight is the vertical space notes may use.
func (r Region) AvailableHeight() float64 {
	return CanvasHeight - r.Top - r.Bottom
}

// TextWidth is the horizontal space of every line.
func (r Region) TextWidth() float64 {
	return CanvasWidth - r.Left - r.Right
}

// Rect is an axis aligned rectangle in canvas pixels
type Rect struct {
	X, Y, W, H float64
}

// Inset grows (negative) or shrinks (positive) the rectangle on all sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Union returns the smallest rectangle containing r and o. An empty r is
// treated as absent.
func (r Rect) Union(o Rect) Rect {
	if r.W <= 0 && r.H <= 0 {
		return o
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.X+r.W, o.X+o.W)
	y1 := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
