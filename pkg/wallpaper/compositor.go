package wallpaper

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Frame is a fully planned render: the layout, the display list and the
// legibility decision that produced them.
type Frame struct {
	Layout     Layout
	Ops        []DrawOp
	Brightness float64
	TextColor  color.NRGBA

	// Cover-fitted background photo, nil for flat backgrounds
	photo image.Image
}

const (
	strikeOffsetRatio  = 0.30
	strikeWidthRatio   = 0.06
	lineHighlightPadX  = 0.20
	lineHighlightRound = 0.18
)

// coverFit flattens img over fill and scales it uniformly to cover the
// canvas, centered, cropping the overflow.
func coverFit(img image.Image, fill color.NRGBA) (*image.NRGBA, bool) {
	src, ok := flattened(img, fill)
	if !ok {
		return nil, false
	}
	return imaging.Fill(src, CanvasWidth, CanvasHeight, imaging.Center, imaging.Lanczos), true
}

// flattened composites img over an opaque fill on the calling goroutine,
// so both the brightness sampler and the compositor see the pixels that
// end up under the text. imaging processes images on worker goroutines,
// where a panicking At method of a malformed image could not be recovered.
func flattened(img image.Image, fill color.NRGBA) (out *image.NRGBA, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("background image could not be read", "panic", r)
			out, ok = nil, false
		}
	}()

	if img == nil || img.Bounds().Empty() {
		return nil, false
	}
	if n, isNRGBA := img.(*image.NRGBA); isNRGBA && n.Opaque() {
		return n, true
	}

	fill.A = 0xff
	b := img.Bounds()
	out = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out, true
}

// rasterize executes the display list. If drawing the text fails the
// result falls back to the background alone, never a partial frame.
func (f Frame) rasterize() *image.RGBA {
	img, err := f.draw(f.Ops)
	if err == nil {
		return img
	}
	Logger().Warn("drawing failed, rendering background only", "error", err)

	if img, err = f.draw(backgroundOps(f.Ops)); err == nil {
		return img
	}
	Logger().Warn("background drawing failed, rendering fill only", "error", err)

	fill := black
	if len(f.Ops) > 0 && f.Ops[0].Kind == OpFill {
		fill = f.Ops[0].Color
	}
	out := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return out
}

// backgroundOps keeps the steps that come before any text treatment.
func backgroundOps(ops []DrawOp) []DrawOp {
	var out []DrawOp
	for _, op := range ops {
		if op.Kind == OpFill || op.Kind == OpImage {
			out = append(out, op)
		}
	}
	return out
}

func (f Frame) draw(ops []DrawOp) (img *image.RGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("compositor: %v", r)
		}
	}()

	img = image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	dc := gg.NewContextForRGBA(img)

	for _, op := range ops {
		switch op.Kind {
		case OpFill:
			dc.SetColor(op.Color)
			dc.Clear()
		case OpImage:
			if f.photo != nil {
				dc.DrawImage(f.photo, 0, 0)
			}
		case OpPanel:
			f.drawPanel(dc, op)
		case OpOutline:
			c := op.Color
			f.drawRuns(dc, op.DX, op.DY, &c)
		case OpGlyphs:
			f.drawShadows(dc)
			f.drawLineHighlights(dc)
			f.drawRuns(dc, 0, 0, nil)
		}
	}

	return img, nil
}

func (f Frame) drawPanel(dc *gg.Context, op DrawOp) {
	if op.Shadow != nil {
		drawBlurred(dc, op.Rect, *op.Shadow, func(layer *gg.Context) {
			layer.SetColor(op.Shadow.Color)
			layer.DrawRoundedRectangle(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.Radius)
			layer.Fill()
		})
	}
	dc.SetColor(op.Color)
	dc.DrawRoundedRectangle(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.Radius)
	dc.Fill()
}

// drawShadows paints every run's shadow before any glyph, so a shadow never
// lands on top of the previous note.
func (f Frame) drawShadows(dc *gg.Context) {
	lines := f.Layout.Lines()
	for i, run := range f.Layout.Runs {
		if run.Shadow == nil {
			continue
		}

		var runLines []LineBox
		var bounds Rect
		for _, box := range lines {
			if box.Run == i {
				runLines = append(runLines, box)
				bounds = bounds.Union(box.Rect)
			}
		}

		shadow := *run.Shadow
		drawBlurred(dc, bounds, shadow, func(layer *gg.Context) {
			layer.SetFontFace(f.Layout.face)
			for _, box := range runLines {
				f.drawLine(layer, run, box, 0, 0, shadow.Color)
			}
		})
	}
}

// drawLineHighlights paints the per-line panels of runs that carry one.
func (f Frame) drawLineHighlights(dc *gg.Context) {
	size := f.Layout.FontSize
	padX := size * lineHighlightPadX
	padY := f.Layout.LineSpacing / 2

	for _, box := range f.Layout.Lines() {
		run := f.Layout.Runs[box.Run]
		if run.Highlight == nil || box.Rect.W <= 0 {
			continue
		}
		dc.SetColor(*run.Highlight)
		dc.DrawRoundedRectangle(box.Rect.X-padX, box.Rect.Y-padY, box.Rect.W+2*padX, box.Rect.H+2*padY, size*lineHighlightRound)
		dc.Fill()
	}
}

// drawRuns draws the run sequence translated by (dx, dy). A non-nil
// override paints every run in one color, which is how the outline copy
// is produced.
func (f Frame) drawRuns(dc *gg.Context, dx, dy float64, override *color.NRGBA) {
	dc.SetFontFace(f.Layout.face)
	for _, box := range f.Layout.Lines() {
		run := f.Layout.Runs[box.Run]
		c := run.Color
		if override != nil {
			c = *override
		}
		f.drawLine(dc, run, box, dx, dy, c)
	}
}

func (f Frame) drawLine(dc *gg.Context, run TextRun, box LineBox, dx, dy float64, c color.NRGBA) {
	dc.SetColor(c)
	dc.DrawString(box.Text, box.Rect.X+dx, box.Baseline+dy)

	if run.Strikethrough && box.Rect.W > 0 {
		y := box.Baseline - run.FontSize*strikeOffsetRatio + dy
		dc.SetLineWidth(math.Max(2, run.FontSize*strikeWidthRatio))
		dc.DrawLine(box.Rect.X+dx, y, box.Rect.X+box.Rect.W+dx, y)
		dc.Stroke()
	}
}
