package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Built-in typefaces per family, all medium or bold cuts since the weight
// is fixed at semibold. Parsed once, read-only afterwards.
var builtinTTF = map[FontFamily][]byte{
	FamilyClassic: gomedium.TTF,
	FamilyModern:  gomediumitalic.TTF,
	FamilyRounded: gobolditalic.TTF,
	FamilyMono:    gomonobold.TTF,
	FamilyStrong:  gobold.TTF,
	FamilyNeon:    gomedium.TTF,
}

var (
	builtinOnce  sync.Once
	builtinFonts map[FontFamily]*truetype.Font
)

func loadBuiltinFonts() map[FontFamily]*truetype.Font {
	builtinOnce.Do(func() {
		builtinFonts = make(map[FontFamily]*truetype.Font, len(builtinTTF))
		for family, data := range builtinTTF {
			f, err := truetype.Parse(data)
			if err != nil {
				panic(fmt.Errorf("parse built-in %s font: %w", family, err))
			}
			builtinFonts[family] = f
		}
	})
	return builtinFonts
}

// FontBook resolves a font family and size to a face. Register replaces a
// family's typeface; a FontBook should not be modified while renders using
// it are in flight.
type FontBook struct {
	fonts map[FontFamily]*truetype.Font
}

// NewFontBook returns a book holding the built-in typefaces.
func NewFontBook() *FontBook {
	builtin := loadBuiltinFonts()
	fonts := make(map[FontFamily]*truetype.Font, len(builtin))
	for family, f := range builtin {
		fonts[family] = f
	}
	return &FontBook{fonts: fonts}
}

// Register replaces the typeface of a family with TrueType font data.
func (b *FontBook) Register(family FontFamily, ttf []byte) error {
	if len(ttf) == 0 {
		return ErrEmptyFontData
	}
	if _, ok := familyNames[family]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownFontFamily, family)
	}

	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font for %s: %w", family, err)
	}

	b.fonts[family] = f
	return nil
}

// RegisterFile reads a .ttf file and registers it for family.
func (b *FontBook) RegisterFile(family FontFamily, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", filepath.Base(path), err)
	}
	return b.Register(family, data)
}

// Face returns a new face for the family at size pixels. Faces are not safe
// for concurrent use; every render creates its own.
//
// Hinting is off so advances scale linearly with size, which keeps the fit
// search monotonic.
func (b *FontBook) Face(family FontFamily, size float64) font.Face {
	f, ok := b.fonts[family]
	if !ok {
		builtin := loadBuiltinFonts()
		if f, ok = builtin[family]; !ok {
			f = builtin[FamilyClassic]
		}
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
