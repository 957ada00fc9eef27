package wallpaper

import "errors"

// Sentinel errors for wallpaper package.
var (
	// ErrUnknownFontFamily is returned when a font family name is not recognized.
	ErrUnknownFontFamily = errors.New("wallpaper: unknown font family")

	// ErrUnknownHighlight is returned when a highlight mode name is not recognized.
	ErrUnknownHighlight = errors.New("wallpaper: unknown highlight mode")

	// ErrUnknownAlignment is returned when an alignment name is not recognized.
	ErrUnknownAlignment = errors.New("wallpaper: unknown text alignment")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("wallpaper: invalid color")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("wallpaper: empty font data")
)
