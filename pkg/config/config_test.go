package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/alde/notewall/pkg/device"
	"github.com/alde/notewall/pkg/wallpaper"
)

const sampleFile = `
device: iphone-se
style:
  font: neon
  color: "#ff0000"
  highlight: outline
  align: center
  widgets: true
  shadow:
    enabled: true
    intensity: 0.8
background:
  color: "#102030"
  image: photos/beach.jpg
notes:
  - Call mom
  - text: Gym 6pm
    completed: true
  - id: report
    text: Finish report
`

func TestParseAndResolve(t *testing.T) {
	cfg, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	resolved, err := cfg.Resolve("/home/me")
	if err != nil {
		t.Fatalf("Unexpected resolve error: %v", err)
	}

	if resolved.Device.Bucket() != device.BucketCompact {
		t.Errorf("Expected compact device, got %v", resolved.Device.Bucket())
	}

	s := resolved.Style
	if s.FontFamily != wallpaper.FamilyNeon || s.Highlight != wallpaper.HighlightOutline || s.Alignment != wallpaper.AlignCenter {
		t.Errorf("Unexpected style %+v", s)
	}
	if !s.HasLockScreenWidgets || !s.ShadowEnabled || s.ShadowIntensity != 0.8 {
		t.Errorf("Unexpected widgets/shadow settings %+v", s)
	}
	if s.TextColor != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("Expected red text override, got %v", s.TextColor)
	}

	if resolved.BackgroundColor != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("Unexpected background color %v", resolved.BackgroundColor)
	}
	if want := filepath.Join("/home/me", "photos/beach.jpg"); resolved.BackgroundImage != want {
		t.Errorf("Expected image path %s, got %s", want, resolved.BackgroundImage)
	}

	if len(resolved.Notes) != 3 {
		t.Fatalf("Expected 3 notes, got %d", len(resolved.Notes))
	}
	if resolved.Notes[0].Text != "Call mom" || resolved.Notes[0].ID != "note-1" {
		t.Errorf("Unexpected shorthand note %+v", resolved.Notes[0])
	}
	if !resolved.Notes[1].Completed {
		t.Error("Second note should be completed")
	}
	if resolved.Notes[2].ID != "report" {
		t.Errorf("Expected explicit id, got %s", resolved.Notes[2].ID)
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Parse([]byte("notes: [Buy milk]"))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	resolved, err := cfg.Resolve(".")
	if err != nil {
		t.Fatalf("Unexpected resolve error: %v", err)
	}

	if resolved.DeviceName != "generic" {
		t.Errorf("Expected generic device, got %s", resolved.DeviceName)
	}
	if resolved.Style != wallpaper.DefaultStyle() {
		t.Errorf("Expected default style, got %+v", resolved.Style)
	}
	if resolved.BackgroundColor != (color.NRGBA{A: 0xff}) {
		t.Errorf("Expected black background, got %v", resolved.BackgroundColor)
	}
	if resolved.BackgroundImage != "" {
		t.Errorf("Expected no image, got %s", resolved.BackgroundImage)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown font", "style: {font: papyrus}", wallpaper.ErrUnknownFontFamily},
		{"unknown highlight", "style: {highlight: glow}", wallpaper.ErrUnknownHighlight},
		{"unknown align", "style: {align: justify}", wallpaper.ErrUnknownAlignment},
		{"bad text color", "style: {color: red}", wallpaper.ErrInvalidColor},
		{"bad background", "background: {color: '#12'}", wallpaper.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Unexpected parse error: %v", err)
			}
			_, err = cfg.Resolve(".")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	cfg, _ := Parse([]byte("device: pager"))
	if _, err := cfg.Resolve("."); err == nil {
		t.Error("Expected error for unknown device")
	}

	cfg, _ = Parse([]byte("style: {shadow: {enabled: true, intensity: 2}}"))
	if _, err := cfg.Resolve("."); err == nil {
		t.Error("Expected error for out of range shadow intensity")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wall.yaml")
	if err := os.WriteFile(path, []byte(sampleFile), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected load error: %v", err)
	}
	if cfg.Device != "iphone-se" || len(cfg.Notes) != 3 {
		t.Errorf("Unexpected config %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("notes: {{"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
