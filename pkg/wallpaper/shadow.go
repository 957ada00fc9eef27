package wallpaper

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// drawBlurred paints into an offscreen layer covering bounds, blurs it and
// composites it onto dc at the shadow offset. Only the area around bounds is
// blurred, not the whole canvas.
func drawBlurred(dc *gg.Context, bounds Rect, s Shadow, paint func(layer *gg.Context)) {
	if bounds.W <= 0 || bounds.H <= 0 || s.Color.A == 0 {
		return
	}

	pad := math.Ceil(s.Blur*2) + 2
	originX := math.Floor(bounds.X - pad)
	originY := math.Floor(bounds.Y - pad)
	w := int(math.Ceil(bounds.X+bounds.W+pad) - originX)
	h := int(math.Ceil(bounds.Y+bounds.H+pad) - originY)

	layer := gg.NewContext(w, h)
	layer.Translate(-originX, -originY)
	paint(layer)

	var img image.Image = layer.Image()
	if s.Blur > 0 {
		img = imaging.Blur(img, s.Blur/2)
	}

	dc.DrawImage(img, int(originX+math.Round(s.OffsetX)), int(originY+math.Round(s.OffsetY)))
}
