package wallpaper

import (
	"image/color"
	"math"
	"testing"

	"github.com/alde/notewall/pkg/device"
)

func TestPlanLayoutIncludesAllWhenFitting(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)
	notes := shortNotes(4)

	size := book.SolveFontSize(notes, region.AvailableHeight(), region.TextWidth(), FamilyClassic)
	layout := book.PlanLayout(notes, size, region, DefaultStyle(), white)

	if layout.Included != 4 || layout.Total != 4 {
		t.Fatalf("Expected 4/4 notes, got %d/%d", layout.Included, layout.Total)
	}
	if layout.Rect.H > region.AvailableHeight() {
		t.Errorf("Layout height %v exceeds available %v", layout.Rect.H, region.AvailableHeight())
	}
	if layout.Rect.X != region.Left || layout.Rect.Y != region.Top || layout.Rect.W != region.TextWidth() {
		t.Errorf("Unexpected layout rect %+v for region %+v", layout.Rect, region)
	}
	if layout.Runs[0].SpacingBefore != 0 {
		t.Errorf("First run should have no spacing, got %v", layout.Runs[0].SpacingBefore)
	}
	for _, run := range layout.Runs[1:] {
		if run.SpacingBefore != noteSeparator(size) {
			t.Errorf("Expected separator %v, got %v", noteSeparator(size), run.SpacingBefore)
		}
	}
}

func TestPlanLayoutTruncatesOverflow(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)
	notes := shortNotes(60)

	layout := book.PlanLayout(notes, MinFontSize, region, DefaultStyle(), white)
	if layout.Included == 0 || layout.Included >= 60 {
		t.Fatalf("Expected partial inclusion, got %d of 60", layout.Included)
	}
	for i, run := range layout.Runs {
		if run.NoteID != notes[i].ID {
			t.Errorf("Run %d: expected note %s, got %s", i, notes[i].ID, run.NoteID)
		}
	}
}

func TestPlanLayoutMatchesMeasuredHeight(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)
	notes := []Note{longNote(200), {Text: "Gym"}, longNote(90)}

	layout := book.PlanLayout(notes, 64, region, DefaultStyle(), white)
	lines := layout.Lines()
	last := lines[len(lines)-1]

	bottom := last.Rect.Y + last.Rect.H
	if math.Abs(bottom-(layout.Rect.Y+layout.Rect.H)) > 1e-6 {
		t.Errorf("Line boxes end at %v, measured block ends at %v", bottom, layout.Rect.Y+layout.Rect.H)
	}
}

func TestLayoutAlignment(t *testing.T) {
	book := NewFontBook()
	region := RegionFor(device.BucketUnknown, false)
	notes := []Note{{Text: "Gym"}}

	for _, tt := range []struct {
		align Alignment
		check func(box LineBox) bool
	}{
		{AlignLeft, func(b LineBox) bool { return b.Rect.X == region.Left }},
		{AlignRight, func(b LineBox) bool {
			return math.Abs(b.Rect.X+b.Rect.W-(region.Left+region.TextWidth())) < 1e-6
		}},
		{AlignCenter, func(b LineBox) bool {
			return math.Abs(b.Rect.X+b.Rect.W/2-(region.Left+region.TextWidth()/2)) < 1e-6
		}},
	} {
		style := DefaultStyle()
		style.Alignment = tt.align
		layout := book.PlanLayout(notes, 100, region, style, white)
		if box := layout.Lines()[0]; !tt.check(box) {
			t.Errorf("%v: unexpected line box %+v", tt.align, box.Rect)
		}
	}
}

func TestResolveRunCompleted(t *testing.T) {
	run := TextRun{FontSize: 100}
	resolveRun(&run, Note{Text: "done", Completed: true}, DefaultStyle(), white)

	if !run.Strikethrough {
		t.Error("Completed note should be struck through")
	}
	if run.Color.A != 128 {
		t.Errorf("Completed note should be at 50%% opacity, got alpha %d", run.Color.A)
	}

	active := TextRun{FontSize: 100}
	resolveRun(&active, Note{Text: "todo"}, DefaultStyle(), white)
	if active.Strikethrough || active.Color != white {
		t.Errorf("Active note should be plain full color, got %+v", active)
	}
}

func TestResolveRunShadowPolicy(t *testing.T) {
	dark := opacity(black, 0.9)

	tests := []struct {
		name      string
		style     func(s *Style)
		base      color.NRGBA
		wantNil   bool
		wantColor *color.NRGBA
		wantBlur  float64
		wantOffY  float64
	}{
		{
			name:     "default light text gets subtle shadow",
			style:    func(s *Style) {},
			base:     white,
			wantBlur: 100 * defaultShadowBlur,
			wantOffY: defaultShadowOffset,
		},
		{
			name:    "default dark text gets none",
			style:   func(s *Style) {},
			base:    dark,
			wantNil: true,
		},
		{
			name:     "explicit shadow",
			style:    func(s *Style) { s.ShadowEnabled = true; s.ShadowIntensity = 1 },
			base:     dark,
			wantBlur: 100 * explicitShadowBlur,
			wantOffY: explicitShadowOffset,
		},
		{
			name:      "neon glows without shadow flag",
			style:     func(s *Style) { s.FontFamily = FamilyNeon },
			base:      white,
			wantColor: &white,
			wantBlur:  100 * neonGlowBlur,
		},
		{
			name:    "boxed mode has no run shadow",
			style:   func(s *Style) { s.Highlight = HighlightBlackBox; s.ShadowEnabled = true; s.ShadowIntensity = 1 },
			base:    white,
			wantNil: true,
		},
		{
			name:    "outline mode has no run shadow",
			style:   func(s *Style) { s.Highlight = HighlightOutline; s.FontFamily = FamilyNeon },
			base:    white,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DefaultStyle()
			tt.style(&style)
			run := TextRun{FontSize: 100}
			resolveRun(&run, Note{Text: "x"}, style, tt.base)

			if tt.wantNil {
				if run.Shadow != nil {
					t.Errorf("Expected no shadow, got %+v", *run.Shadow)
				}
				return
			}
			if run.Shadow == nil {
				t.Fatal("Expected a shadow")
			}
			if math.Abs(run.Shadow.Blur-tt.wantBlur) > 1e-9 {
				t.Errorf("Expected blur %v, got %v", tt.wantBlur, run.Shadow.Blur)
			}
			if run.Shadow.OffsetY != tt.wantOffY {
				t.Errorf("Expected offset %v, got %v", tt.wantOffY, run.Shadow.OffsetY)
			}
			if tt.wantColor != nil && run.Shadow.Color != *tt.wantColor {
				t.Errorf("Expected shadow color %v, got %v", *tt.wantColor, run.Shadow.Color)
			}
		})
	}
}

func TestResolveRunExplicitShadowOpacity(t *testing.T) {
	style := DefaultStyle()
	style.ShadowEnabled = true
	style.ShadowIntensity = 0.5

	run := TextRun{FontSize: 80}
	resolveRun(&run, Note{Text: "x"}, style, white)

	want := uint8(math.Round(255 * 0.7 * 0.5))
	if run.Shadow == nil || run.Shadow.Color.A != want {
		t.Fatalf("Expected shadow alpha %d, got %+v", want, run.Shadow)
	}
}

func TestResolveRunStrongPanel(t *testing.T) {
	style := DefaultStyle()
	style.FontFamily = FamilyStrong

	light := TextRun{FontSize: 100}
	resolveRun(&light, Note{Text: "x"}, style, white)
	if light.Highlight == nil || isLight(*light.Highlight) {
		t.Errorf("Light text should get a dark panel, got %v", light.Highlight)
	}
	if light.Shadow != nil {
		t.Error("Panel runs should not carry a shadow")
	}

	dark := TextRun{FontSize: 100}
	resolveRun(&dark, Note{Text: "x"}, style, opacity(black, 0.9))
	if dark.Highlight == nil || !isLight(*dark.Highlight) {
		t.Errorf("Dark text should get a light panel, got %v", dark.Highlight)
	}

	style.ShadowEnabled = true
	shadowed := TextRun{FontSize: 100}
	resolveRun(&shadowed, Note{Text: "x"}, style, white)
	if shadowed.Highlight != nil {
		t.Error("Requesting a shadow should disable the automatic panel")
	}

	style.ShadowEnabled = false
	style.Highlight = HighlightOutline
	outlined := TextRun{FontSize: 100}
	resolveRun(&outlined, Note{Text: "x"}, style, white)
	if outlined.Highlight != nil {
		t.Error("Explicit highlight modes should disable the automatic panel")
	}
}
