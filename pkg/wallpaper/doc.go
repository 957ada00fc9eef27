// Package wallpaper renders lock screen wallpapers that carry a list of
// notes.
//
// A render takes an ordered list of notes, a [Style] and a [Background] and
// produces an opaque bitmap at the fixed canvas size. Along the way it:
//
//   - samples the background brightness where the text will land and picks
//     a legible text color,
//   - binary-searches the largest font size at which every note fits the
//     text region of the canvas,
//   - lays the notes out as stacked paragraphs and resolves per note
//     attributes (dimmed strikethrough for completed notes, shadows, panels),
//   - composites background, highlight panel or outline passes, and glyphs.
//
// Rendering never fails: degraded inputs produce fewer notes, a minimum
// font size, or a background-only image.
//
// # Example usage
//
//	r := wallpaper.NewRenderer(wallpaper.WithDevice(profile))
//	img := r.Render(notes, wallpaper.DefaultStyle(), wallpaper.SolidBackground(color.Black))
//
// A [Renderer] holds no mutable state after construction, so independent
// renders may run on separate goroutines.
package wallpaper
