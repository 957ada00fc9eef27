package wallpaper

import (
	"image/color"

	"golang.org/x/image/font"
)

// Layout is the planned text block: which notes render, at what size, and
// where.
type Layout struct {
	FontSize  float64
	Family    FontFamily
	Alignment Alignment

	Runs     []TextRun
	Included int
	Total    int

	// Rect spans the text region width and the measured block height
	Rect Rect

	Ascent      float64
	LineHeight  float64
	LineSpacing float64

	face font.Face
}

// LineBox is the position of one wrapped line on the canvas
type LineBox struct {
	Run      int
	Text     string
	Rect     Rect
	Baseline float64
}

// PlanLayout re-walks the notes at size and builds the run sequence. Notes
// are included in order until the next one would overflow availableHeight.
// The solver normally guarantees they all fit; this guards the overflow case
// at MinFontSize.
func (b *FontBook) PlanLayout(notes []Note, size float64, region Region, style Style, base color.NRGBA) Layout {
	face := b.Face(style.FontFamily, size)
	ascent, lineHeight := lineMetrics(face)

	layout := Layout{
		FontSize:    size,
		Family:      style.FontFamily,
		Alignment:   style.Alignment,
		Total:       len(notes),
		Ascent:      ascent,
		LineHeight:  lineHeight,
		LineSpacing: lineSpacing(size),
		face:        face,
	}

	available := region.AvailableHeight()
	width := region.TextWidth()

	var total float64
	for i, n := range notes {
		var spacing float64
		if i > 0 {
			spacing = noteSeparator(size)
		}

		block := measureText(face, n.Text, size, width)
		if total+spacing+block.Height > available {
			break
		}
		total += spacing + block.Height

		run := TextRun{
			NoteID:        n.ID,
			Content:       n.Text,
			Lines:         block.Lines,
			LineWidths:    block.LineWidths,
			Height:        block.Height,
			FontSize:      size,
			SpacingBefore: spacing,
		}
		resolveRun(&run, n, style, base)
		layout.Runs = append(layout.Runs, run)
	}

	layout.Included = len(layout.Runs)
	layout.Rect = Rect{X: region.Left, Y: region.Top, W: width, H: total}
	return layout
}

// Lines returns the box of every wrapped line, top to bottom.
func (l Layout) Lines() []LineBox {
	var boxes []LineBox
	y := l.Rect.Y
	for i, run := range l.Runs {
		y += run.SpacingBefore
		for j, line := range run.Lines {
			if j > 0 {
				y += l.LineSpacing
			}
			w := run.LineWidths[j]
			boxes = append(boxes, LineBox{
				Run:      i,
				Text:     line,
				Rect:     Rect{X: l.alignX(w), Y: y, W: w, H: l.LineHeight},
				Baseline: y + l.Ascent,
			})
			y += l.LineHeight
		}
	}
	return boxes
}

// Bounds is the union of all line boxes.
func (l Layout) Bounds() Rect {
	var bounds Rect
	for _, box := range l.Lines() {
		bounds = bounds.Union(box.Rect)
	}
	return bounds
}

func (l Layout) alignX(lineWidth float64) float64 {
	switch l.Alignment {
	case AlignCenter:
		return l.Rect.X + (l.Rect.W-lineWidth)/2
	case AlignRight:
		return l.Rect.X + l.Rect.W - lineWidth
	default:
		return l.Rect.X
	}
}
