package wallpaper

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// FontFamily selects the typeface of the notes. The weight is always
// semibold, so each family resolves to the medium or bold cut it ships.
type FontFamily int

const (
	FamilyClassic FontFamily = iota
	FamilyModern
	FamilyRounded
	FamilyMono
	FamilyStrong // also gets an automatic caption panel, see resolveRun
	FamilyNeon   // always glows in its own color
)

// HighlightMode is the treatment drawn behind or around the text
type HighlightMode int

const (
	HighlightNone HighlightMode = iota
	HighlightOutline
	HighlightWhiteBox
	HighlightBlackBox
)

// Alignment of every paragraph inside the text region
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Style is the immutable per-render styling configuration
type Style struct {
	FontFamily FontFamily

	// TextColor overrides the automatic legibility decision when non-nil
	TextColor color.Color

	Highlight HighlightMode

	ShadowEnabled   bool
	ShadowIntensity float64 // 0..1

	Alignment Alignment

	// Widgets push the text region further down the screen
	HasLockScreenWidgets bool
}

// DefaultStyle returns the style used when nothing is configured.
func DefaultStyle() Style {
	return Style{
		FontFamily:      FamilyClassic,
		Highlight:       HighlightNone,
		ShadowIntensity: 0.5,
		Alignment:       AlignLeft,
	}
}

// normalized clamps out-of-range values instead of rejecting them.
func (s Style) normalized() Style {
	if s.FontFamily < FamilyClassic || s.FontFamily > FamilyNeon {
		s.FontFamily = FamilyClassic
	}
	if s.Highlight < HighlightNone || s.Highlight > HighlightBlackBox {
		s.Highlight = HighlightNone
	}
	if s.Alignment < AlignLeft || s.Alignment > AlignRight {
		s.Alignment = AlignLeft
	}
	if math.IsNaN(s.ShadowIntensity) {
		s.ShadowIntensity = 0
	}
	s.ShadowIntensity = math.Max(0, math.Min(1, s.ShadowIntensity))
	return s
}

var familyNames = map[FontFamily]string{
	FamilyClassic: "classic",
	FamilyModern:  "modern",
	FamilyRounded: "rounded",
	FamilyMono:    "mono",
	FamilyStrong:  "strong",
	FamilyNeon:    "neon",
}

var highlightNames = map[HighlightMode]string{
	HighlightNone:     "none",
	HighlightOutline:  "outline",
	HighlightWhiteBox: "white-box",
	HighlightBlackBox: "black-box",
}

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

func (f FontFamily) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FontFamily(%d)", int(f))
}

func (h HighlightMode) String() string {
	if name, ok := highlightNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HighlightMode(%d)", int(h))
}

func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// boxed reports whether the mode draws a panel behind the whole text block.
func (h HighlightMode) boxed() bool {
	return h == HighlightWhiteBox || h == HighlightBlackBox
}

// ParseFontFamily resolves a family name such as "classic" or "Neon".
func ParseFontFamily(name string) (FontFamily, error) {
	key := normalizeName(name)
	for family, n := range familyNames {
		if n == key {
			return family, nil
		}
	}
	return FamilyClassic, fmt.Errorf("%w: %q", ErrUnknownFontFamily, name)
}

// ParseHighlightMode resolves names like "outline", "white-box" or "whitebox".
func ParseHighlightMode(name string) (HighlightMode, error) {
	key := strings.ReplaceAll(normalizeName(name), "-", "")
	for mode, n := range highlightNames {
		if strings.ReplaceAll(n, "-", "") == key {
			return mode, nil
		}
	}
	return HighlightNone, fmt.Errorf("%w: %q", ErrUnknownHighlight, name)
}

// ParseAlignment resolves "left", "center" (or "centre") and "right".
func ParseAlignment(name string) (Alignment, error) {
	key := normalizeName(name)
	if key == "centre" {
		key = "center"
	}
	for align, n := range alignmentNames {
		if n == key {
			return align, nil
		}
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, name)
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "_", "-")
}
