package wallpaper

import (
	"image"
	"image/color"
	"strings"
)

// Note is a single line item shown on the wallpaper
type Note struct {
	ID        string
	Text      string
	Completed bool
}

// Background is either a flat color or a decoded photo drawn over it.
// A nil Color means black.
type Background struct {
	Color color.Color
	Image image.Image
}

// SolidBackground returns a flat color background.
func SolidBackground(c color.Color) Background {
	return Background{Color: c}
}

// ImageBackground returns a photo background over black.
func ImageBackground(img image.Image) Background {
	return Background{Color: color.Black, Image: img}
}

// hasImage reports whether the background carries a usable bitmap.
func (b Background) hasImage() bool {
	return b.Image != nil && !b.Image.Bounds().Empty()
}

// fillColor returns the opaque fill for the canvas.
func (b Background) fillColor() color.NRGBA {
	if b.Color == nil {
		return color.NRGBA{A: 0xff}
	}
	c := toNRGBA(b.Color)
	c.A = 0xff
	return c
}

// visibleNotes drops notes with no printable text. They would take up a
// line of vertical space without showing anything.
func visibleNotes(notes []Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.TrimSpace(n.Text) == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
