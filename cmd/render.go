package cmd

import (
	"fmt"
	"image"
	"time"

	"github.com/alde/notewall/pkg/config"
	"github.com/alde/notewall/pkg/device"
	"github.com/alde/notewall/pkg/imageio"
	"github.com/alde/notewall/pkg/wallpaper"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	renderFlags  wallpaperFlags
	renderOutput string
	quality      int
	dryRun       bool
	native       bool
)

var renderCmd = &cobra.Command{
	Use:   "render [notes.yaml]",
	Short: "Render notes onto a wallpaper",
	Long: `Render a notes file, or notes given with --note, onto a wallpaper image.

Flags override values from the file. With no notes the plain background is
written.

Examples:
  notewall render notes.yaml -o wall.png
  notewall render -n "Buy milk" -n "[x] Call mom" --image beach.jpg -o wall.jpg
  notewall render notes.yaml --device iphone-se --highlight outline --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderFlags.register(renderCmd, true)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output image path (.png, .jpg or .webp)")
	renderCmd.Flags().IntVar(&quality, "quality", imageio.DefaultQuality, "Quality for jpeg and webp output (1-100)")
	renderCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the layout plan without writing an image")
	renderCmd.Flags().BoolVar(&native, "native", false, "Scale the output to the device's native resolution")
}

func runRender(cmd *cobra.Command, args []string) error {
	if !dryRun {
		if renderOutput == "" {
			return fmt.Errorf("--output is required unless --dry-run is set")
		}
		if err := validateOutputPath(renderOutput); err != nil {
			return fmt.Errorf("output validation failed: %w", err)
		}
	}

	resolved, err := renderFlags.load(cmd, args)
	if err != nil {
		return err
	}

	bg, err := loadBackground(resolved)
	if err != nil {
		return err
	}

	book, err := renderFlags.fontBook(resolved.Style.FontFamily)
	if err != nil {
		return err
	}
	renderer := newRenderer(resolved.Device, resolved.Style.FontFamily, book)

	if dryRun {
		printPlan(cmd, resolved, renderer.Plan(resolved.Notes, resolved.Style, bg))
		return nil
	}

	start := time.Now()
	var img *image.RGBA
	if len(resolved.Notes) == 0 {
		img = renderer.RenderBlank(bg)
	} else {
		img = renderer.Render(resolved.Notes, resolved.Style, bg)
	}

	out := screenImage(img, resolved.Device, native)
	size, err := imageio.Save(out, renderOutput, imageio.Options{Quality: quality})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%s, %dx%d) in %v\n",
		renderOutput, humanize.Bytes(uint64(size)),
		out.Bounds().Dx(), out.Bounds().Dy(), time.Since(start).Round(time.Millisecond))
	return nil
}

// screenImage optionally scales the canvas to the profile's pixel size.
// Profiles without screen information keep the canvas size.
func screenImage(img image.Image, profile device.Profile, native bool) image.Image {
	if !native {
		return img
	}
	w, h := profile.PixelSize()
	return imageio.FitToScreen(img, w, h)
}

func printPlan(cmd *cobra.Command, resolved *config.Resolved, frame wallpaper.Frame) {
	w := cmd.OutOrStdout()
	layout := frame.Layout

	fmt.Fprintf(w, "Device:     %s (%s bucket)\n", resolved.Device.Name, resolved.Device.Bucket())
	fmt.Fprintf(w, "Brightness: %.2f\n", frame.Brightness)
	fmt.Fprintf(w, "Text color: #%02x%02x%02x\n", frame.TextColor.R, frame.TextColor.G, frame.TextColor.B)
	fmt.Fprintf(w, "Font:       %s at %.0fpx\n", layout.Family, layout.FontSize)
	fmt.Fprintf(w, "Notes:      %d of %d\n", layout.Included, layout.Total)

	if verbose {
		for _, line := range layout.Lines() {
			fmt.Fprintf(w, "  y=%-6.0f %s\n", line.Baseline, line.Text)
		}
	}

	counts := make(map[wallpaper.OpKind]int)
	var order []wallpaper.OpKind
	for _, op := range frame.Ops {
		if counts[op.Kind] == 0 {
			order = append(order, op.Kind)
		}
		counts[op.Kind]++
	}
	fmt.Fprint(w, "Draw ops:  ")
	for _, kind := range order {
		fmt.Fprintf(w, " %s×%d", kind, counts[kind])
	}
	fmt.Fprintln(w)

	if layout.Included < layout.Total {
		fmt.Fprintf(w, "⚠ %d note(s) do not fit and will be left off\n", layout.Total-layout.Included)
	}
}
