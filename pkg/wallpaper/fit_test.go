package wallpaper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alde/notewall/pkg/device"
)

func longNote(chars int) Note {
	words := []string{"remember", "to", "water", "the", "plants", "and", "call", "the", "landlord", "about", "heating"}
	var b strings.Builder
	for i := 0; b.Len() < chars; i++ {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[i%len(words)])
	}
	return Note{ID: "long", Text: b.String()[:chars]}
}

func shortNotes(n int) []Note {
	notes := make([]Note, n)
	for i := range notes {
		notes[i] = Note{ID: fmt.Sprintf("n%d", i), Text: fmt.Sprintf("Note number %d", i+1)}
	}
	return notes
}

func TestSolveFontSizeFastPath(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)

	notes := []Note{{Text: "Call mom"}, {Text: "Gym 6pm"}, {Text: "Finish report"}}
	size := book.SolveFontSize(notes, region.AvailableHeight(), region.TextWidth(), FamilyClassic)

	if size != MaxFontSize {
		t.Errorf("Expected max font size %v, got %v", MaxFontSize, size)
	}
}

func TestSolveFontSizeShrinksLongNote(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)

	notes := []Note{longNote(600)}
	size := book.SolveFontSize(notes, region.AvailableHeight(), region.TextWidth(), FamilyClassic)

	if size >= MaxFontSize || size < MinFontSize {
		t.Fatalf("Expected size in [%v, %v), got %v", MinFontSize, MaxFontSize, size)
	}
	if !book.NotesFit(notes, size, region.AvailableHeight(), region.TextWidth(), FamilyClassic) {
		t.Errorf("Chosen size %v does not fit", size)
	}
	if size < MaxFontSize && book.NotesFit(notes, size+1, region.AvailableHeight(), region.TextWidth(), FamilyClassic) {
		t.Errorf("Size %v is not the largest fitting size, %v fits too", size, size+1)
	}
}

func TestSolveFontSizeOverflowReturnsMinimum(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)

	notes := shortNotes(60)
	size := book.SolveFontSize(notes, region.AvailableHeight(), region.TextWidth(), FamilyClassic)
	if size != MinFontSize {
		t.Errorf("Expected min font size %v, got %v", MinFontSize, size)
	}
}

func TestSolveFontSizeDeterministic(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketStandard, true)
	notes := append(shortNotes(5), longNote(300))

	first := book.SolveFontSize(notes, region.AvailableHeight(), region.TextWidth(), FamilyStrong)
	for i := 0; i < 5; i++ {
		if got := book.SolveFontSize(notes, region.AvailableHeight(), region.TextWidth(), FamilyStrong); got != first {
			t.Fatalf("Run %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestNotesFitMonotonic(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)

	sets := map[string][]Note{
		"long note":   {longNote(600)},
		"many short":  shortNotes(12),
		"mixed":       append(shortNotes(4), longNote(250), longNote(120)),
		"overlong":    {{Text: strings.Repeat("W", 200)}},
		"with breaks": {{Text: "a\nb\nc\nd\ne\nf\ng\nh"}},
	}

	for _, family := range []FontFamily{FamilyClassic, FamilyMono, FamilyStrong} {
		for name, notes := range sets {
			fitted := false
			for size := MaxFontSize; size >= MinFontSize; size-- {
				fits := book.NotesFit(notes, size, region.AvailableHeight(), region.TextWidth(), family)
				if fitted && !fits {
					t.Errorf("%s/%v: fits at a larger size but not at %v", name, family, size)
					break
				}
				fitted = fitted || fits
			}
		}
	}
}

func TestSolveFontSizeEmpty(t *testing.T) {
	book := NewFontBook()
	if got := book.SolveFontSize(nil, 1000, 1000, FamilyClassic); got != MaxFontSize {
		t.Errorf("Expected max size for no notes, got %v", got)
	}
}
