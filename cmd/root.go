package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alde/notewall/pkg/wallpaper"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "notewall",
	Short: "Render to-do notes onto phone lock screen wallpapers",
	Long: `Notewall renders a list of notes onto a 1290x2796 lock screen wallpaper.

Text is sized to fill the space between the clock and the bottom controls,
colored for contrast with the background, and kept readable with shadows,
outlines or panels.

Commands:
- render: compose one wallpaper from a notes file or flags
- capacity: report how many notes fit and at what size
- devices: list the phone profiles used for margin correction
- batch: render one wallpaper per device profile`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			wallpaper.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
