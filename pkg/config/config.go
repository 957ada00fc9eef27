package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alde/notewall/pkg/device"
	"github.com/alde/notewall/pkg/wallpaper"
	"gopkg.in/yaml.v3"
)

// File represents a wallpaper description file
type File struct {
	Device     string           `yaml:"device,omitempty"`
	Style      StyleConfig      `yaml:"style"`
	Background BackgroundConfig `yaml:"background"`
	Notes      []NoteConfig     `yaml:"notes"`
}

// StyleConfig mirrors wallpaper.Style with string enums
type StyleConfig struct {
	Font      string        `yaml:"font,omitempty"`
	Color     string        `yaml:"color,omitempty"`
	Highlight string        `yaml:"highlight,omitempty"`
	Align     string        `yaml:"align,omitempty"`
	Shadow    *ShadowConfig `yaml:"shadow,omitempty"`
	Widgets   bool          `yaml:"widgets,omitempty"`
}

// ShadowConfig contains shadow settings
type ShadowConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Intensity *float64 `yaml:"intensity,omitempty"`
}

// BackgroundConfig selects a flat color and optionally a photo
type BackgroundConfig struct {
	Color string `yaml:"color,omitempty"`
	Image string `yaml:"image,omitempty"`
}

// NoteConfig is one note. A plain string item is shorthand for an active
// note with that text.
type NoteConfig struct {
	ID        string `yaml:"id,omitempty"`
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed,omitempty"`
}

// UnmarshalYAML accepts both `- Buy milk` and `- {text: Buy milk}`.
func (n *NoteConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.Text = value.Value
		return nil
	}

	type plain NoteConfig
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*n = NoteConfig(p)
	return nil
}

// Resolved contains validated values ready for rendering
type Resolved struct {
	DeviceName      string
	Device          device.Profile
	Style           wallpaper.Style
	Notes           []wallpaper.Note
	BackgroundColor color.NRGBA

	// BackgroundImage is an absolute path, empty for flat backgrounds
	BackgroundImage string
}

// Load reads and parses a wallpaper file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Parse decodes wallpaper file contents.
func Parse(data []byte) (*File, error) {
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve validates the file and fills in defaults. Relative image paths
// are resolved against baseDir.
func (f *File) Resolve(baseDir string) (*Resolved, error) {
	deviceName := strings.TrimSpace(f.Device)
	if deviceName == "" {
		deviceName = "generic"
	}
	profile, err := device.GetProfile(deviceName)
	if err != nil {
		return nil, fmt.Errorf("device: %w", err)
	}

	style, err := f.Style.resolve()
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	bgColor := color.NRGBA{A: 0xff}
	if f.Background.Color != "" {
		bgColor, err = wallpaper.ParseHexColor(f.Background.Color)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	image := strings.TrimSpace(f.Background.Image)
	if image != "" && !filepath.IsAbs(image) {
		image = filepath.Join(baseDir, image)
	}

	notes := make([]wallpaper.Note, 0, len(f.Notes))
	for i, n := range f.Notes {
		id := n.ID
		if id == "" {
			id = fmt.Sprintf("note-%d", i+1)
		}
		notes = append(notes, wallpaper.Note{ID: id, Text: n.Text, Completed: n.Completed})
	}

	return &Resolved{
		DeviceName:      strings.ToLower(deviceName),
		Device:          profile,
		Style:           style,
		Notes:           notes,
		BackgroundColor: bgColor,
		BackgroundImage: image,
	}, nil
}

func (s StyleConfig) resolve() (wallpaper.Style, error) {
	style := wallpaper.DefaultStyle()
	style.HasLockScreenWidgets = s.Widgets

	if s.Font != "" {
		family, err := wallpaper.ParseFontFamily(s.Font)
		if err != nil {
			return style, err
		}
		style.FontFamily = family
	}

	if s.Highlight != "" {
		mode, err := wallpaper.ParseHighlightMode(s.Highlight)
		if err != nil {
			return style, err
		}
		style.Highlight = mode
	}

	if s.Align != "" {
		align, err := wallpaper.ParseAlignment(s.Align)
		if err != nil {
			return style, err
		}
		style.Alignment = align
	}

	if s.Color != "" && !strings.EqualFold(s.Color, "auto") {
		c, err := wallpaper.ParseHexColor(s.Color)
		if err != nil {
			return style, err
		}
		style.TextColor = c
	}

	if s.Shadow != nil {
		style.ShadowEnabled = s.Shadow.Enabled
		if s.Shadow.Intensity != nil {
			if *s.Shadow.Intensity < 0 || *s.Shadow.Intensity > 1 {
				return style, fmt.Errorf("shadow intensity %v outside [0, 1]", *s.Shadow.Intensity)
			}
			style.ShadowIntensity = *s.Shadow.Intensity
		}
	}

	return style, nil
}
