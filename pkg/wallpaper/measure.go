package wallpaper

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Spacing ratios relative to the font size. The separator between notes is
// larger than the spacing between wrapped lines so notes read as groups.
const (
	lineSpacingRatio   = 0.15
	noteSeparatorRatio = 0.45
)

// textBlock is the measured shape of one note at one size
type textBlock struct {
	Lines       []string
	LineWidths  []float64
	LineHeight  float64
	LineSpacing float64
	Ascent      float64
	Height      float64
}

// lineMetrics returns ascent and line height of face in pixels.
func lineMetrics(face font.Face) (ascent, height float64) {
	m := face.Metrics()
	ascent = fixedToFloat(m.Ascent)
	height = ascent + fixedToFloat(m.Descent)
	return ascent, height
}

// lineSpacing returns the gap between wrapped lines of one note.
func lineSpacing(size float64) float64 {
	return size * lineSpacingRatio
}

// noteSeparator returns the gap between two notes.
func noteSeparator(size float64) float64 {
	return size * noteSeparatorRatio
}

// measureText wraps text to maxWidth and returns its block height. This is
// the only measurement used, both while searching for a size and when
// drawing, so the search answer always matches the final layout.
func measureText(face font.Face, text string, size, maxWidth float64) textBlock {
	ascent, lineHeight := lineMetrics(face)
	lines := wrapText(face, text, maxWidth)

	widths := make([]float64, len(lines))
	for i, line := range lines {
		widths[i] = fixedToFloat(font.MeasureString(face, line))
	}

	spacing := lineSpacing(size)
	height := float64(len(lines)) * lineHeight
	if len(lines) > 1 {
		height += float64(len(lines)-1) * spacing
	}

	return textBlock{
		Lines:       lines,
		LineWidths:  widths,
		LineHeight:  lineHeight,
		LineSpacing: spacing,
		Ascent:      ascent,
		Height:      height,
	}
}

// wrapText breaks text into lines no wider than maxWidth. Explicit newlines
// start new lines, words wrap greedily, and words wider than a full line
// are broken between characters.
func wrapText(face font.Face, text string, maxWidth float64) []string {
	limit := floatToFixed(maxWidth)
	space := font.MeasureString(face, " ")

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var current strings.Builder
		var currentWidth fixed.Int26_6
		flush := func() {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}

		for _, word := range words {
			wordWidth := font.MeasureString(face, word)

			if current.Len() > 0 {
				if currentWidth+space+wordWidth <= limit {
					current.WriteByte(' ')
					current.WriteString(word)
					currentWidth += space + wordWidth
					continue
				}
				flush()
			}

			if wordWidth <= limit {
				current.WriteString(word)
				currentWidth = wordWidth
				continue
			}

			// Overlong word: emit full-width chunks, keep the tail open
			chunks := breakWord(face, word, limit)
			for _, chunk := range chunks[:len(chunks)-1] {
				lines = append(lines, chunk)
			}
			tail := chunks[len(chunks)-1]
			current.WriteString(tail)
			currentWidth = font.MeasureString(face, tail)
		}
		flush()
	}

	return lines
}

// breakWord splits a word into pieces that each fit limit. Every piece
// holds at least one rune, so a single glyph wider than the line still
// makes progress.
func breakWord(face font.Face, word string, limit fixed.Int26_6) []string {
	var chunks []string
	start := 0
	for start < len(word) {
		end := start
		for end < len(word) {
			_, size := utf8.DecodeRuneInString(word[end:])
			if end > start && font.MeasureString(face, word[start:end+size]) > limit {
				break
			}
			end += size
		}
		chunks = append(chunks, word[start:end])
		start = end
	}
	return chunks
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
