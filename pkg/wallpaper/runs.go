package wallpaper

import "image/color"

// Shadow is a blurred, offset copy of the glyphs drawn beneath them
type Shadow struct {
	Color   color.NRGBA
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// TextRun is one laid-out note with its resolved attributes
type TextRun struct {
	NoteID  string
	Content string

	Lines      []string
	LineWidths []float64
	Height     float64

	FontSize      float64
	Color         color.NRGBA
	Shadow        *Shadow
	Strikethrough bool

	// Highlight is a translucent panel behind each line, nil when absent
	Highlight *color.NRGBA

	// SpacingBefore separates this run from the previous one
	SpacingBefore float64
}

const (
	completedOpacity = 0.5

	explicitShadowOpacity = 0.7
	explicitShadowOffset  = 4.0
	explicitShadowBlur    = 0.15

	defaultShadowOpacity = 0.35
	defaultShadowOffset  = 2.0
	defaultShadowBlur    = 0.08

	neonGlowBlur = 0.35

	strongDarkPanelOpacity  = 0.55
	strongLightPanelOpacity = 0.75
)

// resolveRun fills in color, decoration, shadow and panel for one note.
func resolveRun(run *TextRun, note Note, style Style, base color.NRGBA) {
	run.Color = base
	if note.Completed {
		run.Color = withOpacity(base, completedOpacity)
		run.Strikethrough = true
	}

	// Outline and boxed modes provide their own contrast
	if style.Highlight != HighlightNone {
		return
	}

	if panel, ok := strongPanel(style, base); ok {
		run.Highlight = &panel
		return
	}

	run.Shadow = runShadow(style, run.Color, run.FontSize)
}

// strongPanel derives the caption-style panel of the Strong family. It is
// tied to the font choice, not to the highlight setting, and only applies
// while no shadow is requested.
func strongPanel(style Style, base color.NRGBA) (color.NRGBA, bool) {
	if style.FontFamily != FamilyStrong || style.ShadowEnabled {
		return color.NRGBA{}, false
	}
	if isLight(base) {
		return opacity(black, strongDarkPanelOpacity), true
	}
	return opacity(white, strongLightPanelOpacity), true
}

// runShadow picks the shadow for a run in HighlightNone mode.
func runShadow(style Style, runColor color.NRGBA, size float64) *Shadow {
	// Neon glows in its own color whatever the shadow toggle says
	if style.FontFamily == FamilyNeon {
		return &Shadow{
			Color: runColor,
			Blur:  size * neonGlowBlur,
		}
	}

	if style.ShadowEnabled {
		if style.ShadowIntensity <= 0 {
			return nil
		}
		return &Shadow{
			Color:   opacity(black, explicitShadowOpacity*style.ShadowIntensity),
			OffsetY: explicitShadowOffset,
			Blur:    size * explicitShadowBlur,
		}
	}

	if isLight(runColor) {
		return &Shadow{
			Color:   opacity(black, defaultShadowOpacity),
			OffsetY: defaultShadowOffset,
			Blur:    size * defaultShadowBlur,
		}
	}
	return nil
}
