package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alde/notewall/pkg/config"
	"github.com/alde/notewall/pkg/device"
	"github.com/alde/notewall/pkg/imageio"
	"github.com/alde/notewall/pkg/wallpaper"
	"github.com/spf13/cobra"
)

// wallpaperFlags are the overrides shared by render, capacity and batch.
// Only flags the user actually set replace values from the notes file.
type wallpaperFlags struct {
	device          string
	font            string
	fontFile        string
	highlight       string
	align           string
	color           string
	background      string
	image           string
	widgets         bool
	shadow          bool
	shadowIntensity float64
	notes           []string
}

func (f *wallpaperFlags) register(cmd *cobra.Command, withDevice bool) {
	flags := cmd.Flags()
	if withDevice {
		flags.StringVar(&f.device, "device", "generic", "Device profile for margin correction (see 'notewall devices')")
	}
	flags.StringVar(&f.font, "font", "", "Font family (classic, modern, rounded, mono, strong, neon)")
	flags.StringVar(&f.fontFile, "font-file", "", "TrueType file replacing the selected font family")
	flags.StringVar(&f.highlight, "highlight", "", "Highlight mode (none, outline, white-box, black-box)")
	flags.StringVar(&f.align, "align", "", "Text alignment (left, center, right)")
	flags.StringVar(&f.color, "color", "", "Text color as #RRGGBB, or 'auto'")
	flags.StringVar(&f.background, "background", "", "Background color as #RRGGBB")
	flags.StringVar(&f.image, "image", "", "Background photo (jpeg, png or webp)")
	flags.BoolVar(&f.widgets, "widgets", false, "Reserve room for lock screen widgets")
	flags.BoolVar(&f.shadow, "shadow", false, "Enable text shadow")
	flags.Float64Var(&f.shadowIntensity, "shadow-intensity", 0.5, "Shadow intensity between 0 and 1")
	flags.StringArrayVarP(&f.notes, "note", "n", nil, "Note text, may be repeated; prefix with '[x] ' for completed")
}

// load reads the optional notes file and applies flag overrides.
func (f *wallpaperFlags) load(cmd *cobra.Command, args []string) (*config.Resolved, error) {
	file := &config.File{}
	baseDir := "."

	if len(args) > 0 {
		if err := validateInputFile(args[0]); err != nil {
			return nil, fmt.Errorf("input validation failed: %w", err)
		}

		var err error
		file, err = config.Load(args[0])
		if err != nil {
			return nil, err
		}
		baseDir = filepath.Dir(args[0])
	}

	changed := cmd.Flags().Changed
	if changed("device") {
		file.Device = f.device
	}
	if changed("font") {
		file.Style.Font = f.font
	}
	if changed("highlight") {
		file.Style.Highlight = f.highlight
	}
	if changed("align") {
		file.Style.Align = f.align
	}
	if changed("color") {
		file.Style.Color = f.color
	}
	if changed("background") {
		file.Background.Color = f.background
	}
	if changed("image") {
		file.Background.Image = f.image
	}
	if changed("widgets") {
		file.Style.Widgets = f.widgets
	}
	if changed("shadow") || changed("shadow-intensity") {
		var shadow config.ShadowConfig
		if file.Style.Shadow != nil {
			shadow = *file.Style.Shadow
		}
		if changed("shadow") {
			shadow.Enabled = f.shadow
		}
		if changed("shadow-intensity") {
			intensity := f.shadowIntensity
			shadow.Intensity = &intensity
		}
		file.Style.Shadow = &shadow
	}

	for i, text := range f.notes {
		note := config.NoteConfig{ID: fmt.Sprintf("cli-%d", i+1), Text: text}
		if rest, ok := strings.CutPrefix(text, "[x] "); ok {
			note.Text = rest
			note.Completed = true
		}
		file.Notes = append(file.Notes, note)
	}

	return file.Resolve(baseDir)
}

// fontBook returns nil unless a custom font file was given, which keeps the
// renderer on its built-in typefaces.
func (f *wallpaperFlags) fontBook(family wallpaper.FontFamily) (*wallpaper.FontBook, error) {
	if f.fontFile == "" {
		return nil, nil
	}

	book := wallpaper.NewFontBook()
	if err := book.RegisterFile(family, f.fontFile); err != nil {
		return nil, fmt.Errorf("custom font: %w", err)
	}
	return book, nil
}

func loadBackground(resolved *config.Resolved) (wallpaper.Background, error) {
	bg := wallpaper.SolidBackground(resolved.BackgroundColor)
	if resolved.BackgroundImage == "" {
		return bg, nil
	}

	img, err := imageio.LoadBackground(resolved.BackgroundImage)
	if err != nil {
		return bg, err
	}
	bg.Image = img
	return bg, nil
}

func newRenderer(profile device.Profile, family wallpaper.FontFamily, book *wallpaper.FontBook) *wallpaper.Renderer {
	return wallpaper.NewRenderer(
		wallpaper.WithDevice(profile),
		wallpaper.WithDefaultFamily(family),
		wallpaper.WithFontBook(book),
	)
}

func validateInputFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported input format: %s (only .yaml and .yml are supported)", ext)
	}

	return nil
}

func validateOutputPath(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", dir)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (use .png, .jpg or .webp)", filepath.Ext(path))
	}
}
