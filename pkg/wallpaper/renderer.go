package wallpaper

import (
	"image"
	"image/color"

	"github.com/alde/notewall/pkg/device"
)

// Renderer composes wallpapers for one device profile. It is immutable
// after construction and safe for concurrent use.
type Renderer struct {
	fonts  *FontBook
	device device.Profile
	family FontFamily
}

// Option configures a Renderer
type Option func(*Renderer)

// WithDevice selects the profile whose height bucket corrects the margins.
func WithDevice(p device.Profile) Option {
	return func(r *Renderer) { r.device = p }
}

// WithFontBook replaces the built-in typefaces.
func WithFontBook(b *FontBook) Option {
	return func(r *Renderer) {
		if b != nil {
			r.fonts = b
		}
	}
}

// WithDefaultFamily sets the family the capacity queries measure with.
func WithDefaultFamily(f FontFamily) Option {
	return func(r *Renderer) { r.family = f }
}

// NewRenderer creates a renderer. Without options it uses the built-in
// fonts and uncorrected margins.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		fonts:  NewFontBook(),
		family: FamilyClassic,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Device returns the profile the renderer corrects margins for.
func (r *Renderer) Device() device.Profile {
	return r.device
}

// Region returns the text region for the renderer's device.
func (r *Renderer) Region(hasWidgets bool) Region {
	return RegionFor(r.device.Bucket(), hasWidgets)
}

// Render composes the full wallpaper. It never fails; see the package
// documentation for how degraded inputs are handled.
func (r *Renderer) Render(notes []Note, style Style, bg Background) *image.RGBA {
	return r.Plan(notes, style, bg).rasterize()
}

// RenderBlank composes the background alone, for the no-notes state.
func (r *Renderer) RenderBlank(bg Background) *image.RGBA {
	return r.planBackground(bg).rasterize()
}

// Plan resolves everything a render needs without touching pixels beyond
// the background fit.
func (r *Renderer) Plan(notes []Note, style Style, bg Background) Frame {
	style = style.normalized()
	frame := r.planBackground(bg)

	visible := visibleNotes(notes)
	if len(visible) == 0 {
		return frame
	}

	frame.TextColor = r.textColor(style, frame.Brightness)

	region := r.Region(style.HasLockScreenWidgets)
	size := r.fonts.SolveFontSize(visible, region.AvailableHeight(), region.TextWidth(), style.FontFamily)
	layout := r.fonts.PlanLayout(visible, size, region, style, frame.TextColor)

	logger := Logger()
	logger.Debug("wallpaper layout planned",
		"font_size", size,
		"family", style.FontFamily.String(),
		"brightness", frame.Brightness,
		"included", layout.Included,
		"total", layout.Total,
		"bucket", r.device.Bucket().String())

	if layout.Included < layout.Total {
		logger.Warn("notes do not fit the wallpaper",
			"included", layout.Included,
			"dropped", layout.Total-layout.Included)
	}
	if layout.Included == 0 {
		return frame
	}

	frame.Layout = layout
	frame.Ops = append(frame.Ops, planDecorations(layout, style, frame.TextColor)...)
	frame.Ops = append(frame.Ops, DrawOp{Kind: OpGlyphs, Color: frame.TextColor})
	return frame
}

// planBackground fits the photo, samples its brightness and emits the
// background steps of the display list.
func (r *Renderer) planBackground(bg Background) Frame {
	fill := bg.fillColor()
	frame := Frame{
		Ops:        []DrawOp{{Kind: OpFill, Color: fill}},
		Brightness: ColorBrightness(fill),
	}

	if !bg.hasImage() {
		return frame
	}

	fitted, ok := coverFit(bg.Image, fill)
	if !ok {
		frame.Brightness = neutralBrightness
		return frame
	}

	frame.photo = fitted
	frame.Brightness = sampleFitted(fitted)
	frame.Ops = append(frame.Ops, DrawOp{Kind: OpImage})
	return frame
}

// textColor resolves the base text color: explicit override, then the
// panel's contrast color, then the brightness decision.
func (r *Renderer) textColor(style Style, brightness float64) color.NRGBA {
	if style.TextColor != nil {
		return toNRGBA(style.TextColor)
	}
	if style.Highlight.boxed() {
		return boxedTextColor(style.Highlight)
	}
	return AutoTextColor(brightness)
}

// Capacity answers how a note list would render under style
type Capacity struct {
	Included int
	Total    int
	FontSize float64
}

// Full reports whether adding another note would be pointless: notes are
// already dropped or the text sits at the minimum size.
func (c Capacity) Full() bool {
	return c.Included < c.Total || (c.Total > 0 && c.FontSize <= MinFontSize)
}

// Capacity measures notes under style without rendering.
func (r *Renderer) Capacity(notes []Note, style Style) Capacity {
	style = style.normalized()
	visible := visibleNotes(notes)
	if len(visible) == 0 {
		return Capacity{FontSize: MaxFontSize}
	}

	region := r.Region(style.HasLockScreenWidgets)
	size := r.fonts.SolveFontSize(visible, region.AvailableHeight(), region.TextWidth(), style.FontFamily)

	// Attributes don't affect measurement, any base color will do
	layout := r.fonts.PlanLayout(visible, size, region, style, white)
	return Capacity{
		Included: layout.Included,
		Total:    len(visible),
		FontSize: size,
	}
}

// CountNotesThatWillRender returns how many notes fit on the wallpaper,
// measured with the renderer's default family.
func (r *Renderer) CountNotesThatWillRender(notes []Note, hasWidgets bool) int {
	return r.Capacity(notes, r.queryStyle(hasWidgets)).Included
}

// FontSizeThatWillBeUsed returns the font size a render would choose,
// measured with the renderer's default family.
func (r *Renderer) FontSizeThatWillBeUsed(notes []Note, hasWidgets bool) float64 {
	return r.Capacity(notes, r.queryStyle(hasWidgets)).FontSize
}

func (r *Renderer) queryStyle(hasWidgets bool) Style {
	style := DefaultStyle()
	style.FontFamily = r.family
	style.HasLockScreenWidgets = hasWidgets
	return style
}
