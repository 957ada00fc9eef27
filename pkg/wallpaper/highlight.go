package wallpaper

import (
	"image/color"
	"math"
)

// OpKind identifies a compositing step
type OpKind int

const (
	OpFill OpKind = iota
	OpImage
	OpPanel
	OpOutline
	OpGlyphs
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpImage:
		return "image"
	case OpPanel:
		return "panel"
	case OpOutline:
		return "outline"
	case OpGlyphs:
		return "glyphs"
	default:
		return "unknown"
	}
}

// DrawOp is one instruction of the compositing display list
type DrawOp struct {
	Kind  OpKind
	Color color.NRGBA

	// OpPanel
	Rect   Rect
	Radius float64
	Shadow *Shadow

	// OpOutline translation of the single-color text copy
	DX, DY float64
}

const (
	panelPadding        = 40.0
	panelRadius         = 36.0
	whitePanelOpacity   = 0.85
	blackPanelOpacity   = 0.60
	panelShadowOpacity  = 0.35
	panelShadowOffset   = 10.0
	panelShadowBlur     = 28.0
	outlineMinMagnitude = 3.0
	outlineRatio        = 0.045
	outlineDiagonal     = 0.7
)

// OutlineMagnitude is the offset of each outline pass at size.
func OutlineMagnitude(size float64) float64 {
	return math.Max(outlineMinMagnitude, size*outlineRatio)
}

// planDecorations returns the ops drawn between the background and the
// glyphs for the highlight mode.
func planDecorations(layout Layout, style Style, base color.NRGBA) []DrawOp {
	switch style.Highlight {
	case HighlightWhiteBox, HighlightBlackBox:
		return []DrawOp{panelOp(layout, style)}
	case HighlightOutline:
		return outlineOps(layout.FontSize, contrastColor(base))
	default:
		return nil
	}
}

// panelOp covers the whole text block with one rounded panel.
func panelOp(layout Layout, style Style) DrawOp {
	op := DrawOp{
		Kind:   OpPanel,
		Rect:   layout.Bounds().Inset(-panelPadding),
		Radius: panelRadius,
		Color:  opacity(white, whitePanelOpacity),
	}
	if style.Highlight == HighlightBlackBox {
		op.Color = opacity(black, blackPanelOpacity)
	}
	if style.ShadowEnabled && style.ShadowIntensity > 0 {
		op.Shadow = &Shadow{
			Color:   opacity(black, panelShadowOpacity*style.ShadowIntensity),
			OffsetY: panelShadowOffset,
			Blur:    panelShadowBlur,
		}
	}
	return op
}

// outlineOps strokes the text by drawing a single-color copy in eight
// directions. A native stroke distorts curved glyphs at large sizes.
func outlineOps(size float64, c color.NRGBA) []DrawOp {
	m := OutlineMagnitude(size)
	d := m * outlineDiagonal

	offsets := [8][2]float64{
		{0, -m}, {0, m}, {m, 0}, {-m, 0},
		{d, -d}, {-d, -d}, {d, d}, {-d, d},
	}

	ops := make([]DrawOp, 0, len(offsets))
	for _, o := range offsets {
		ops = append(ops, DrawOp{Kind: OpOutline, Color: c, DX: o[0], DY: o[1]})
	}
	return ops
}

// boxedTextColor is the text color inside a panel.
func boxedTextColor(mode HighlightMode) color.NRGBA {
	if mode == HighlightWhiteBox {
		return opacity(black, 0.9)
	}
	return white
}
