package wallpaper

// Font size bounds for the fixed canvas. The maximum suits notes of one or
// two lines; below the minimum text stops being legible on a lock screen.
const (
	MaxFontSize = 140.0
	MinFontSize = 48.0
)

// NotesFit reports whether every note, stacked with separators, fits
// availableHeight at size. Fitting is monotonic: if the notes fit at some
// size they fit at every smaller one.
func (b *FontBook) NotesFit(notes []Note, size, availableHeight, maxWidth float64, family FontFamily) bool {
	face := b.Face(family, size)
	defer face.Close()

	var total float64
	for i, n := range notes {
		if i > 0 {
			total += noteSeparator(size)
		}
		total += measureText(face, n.Text, size, maxWidth).Height
		if total > availableHeight {
			return false
		}
	}
	return true
}

// SolveFontSize returns the largest integer font size in
// [MinFontSize, MaxFontSize] at which all notes fit. When nothing fits it
// returns MinFontSize and the layout drops the notes that overflow.
func (b *FontBook) SolveFontSize(notes []Note, availableHeight, maxWidth float64, family FontFamily) float64 {
	if len(notes) == 0 || b.NotesFit(notes, MaxFontSize, availableHeight, maxWidth, family) {
		return MaxFontSize
	}

	best := MinFontSize
	lo, hi := int(MinFontSize), int(MaxFontSize)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if b.NotesFit(notes, float64(mid), availableHeight, maxWidth, family) {
			best = float64(mid)
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return best
}
