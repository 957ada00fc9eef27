package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var capacityFlags wallpaperFlags

var capacityCmd = &cobra.Command{
	Use:   "capacity [notes.yaml]",
	Short: "Report how many notes fit on the wallpaper",
	Long: `Measure notes without rendering and report how many fit and at what
font size. Warns when the wallpaper is full, so a new note would either be
left off or shrink everything to the minimum size.

Examples:
  notewall capacity notes.yaml
  notewall capacity notes.yaml --widgets --device iphone-se
  notewall capacity notes.yaml -n "One more thing"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
	capacityFlags.register(capacityCmd, true)
}

func runCapacity(cmd *cobra.Command, args []string) error {
	resolved, err := capacityFlags.load(cmd, args)
	if err != nil {
		return err
	}

	book, err := capacityFlags.fontBook(resolved.Style.FontFamily)
	if err != nil {
		return err
	}

	renderer := newRenderer(resolved.Device, resolved.Style.FontFamily, book)
	capacity := renderer.Capacity(resolved.Notes, resolved.Style)
	region := renderer.Region(resolved.Style.HasLockScreenWidgets)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Device:     %s (%s bucket)\n", resolved.Device.Name, resolved.Device.Bucket())
	fmt.Fprintf(w, "Text area:  %.0f x %.0f px from y=%.0f\n", region.TextWidth(), region.AvailableHeight(), region.Top)
	fmt.Fprintf(w, "Notes:      %d of %d will render\n", capacity.Included, capacity.Total)
	fmt.Fprintf(w, "Font size:  %.0fpx\n", capacity.FontSize)

	if capacity.Full() {
		fmt.Fprintln(w, "⚠ Wallpaper full: new notes will not be shown")
	}
	return nil
}
