package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alde/notewall/pkg/device"
	"github.com/alde/notewall/pkg/wallpaper"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List device profiles",
	Long: `List the phone profiles available for --device, with the height bucket
each falls into and the top margin that bucket produces.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	profiles := device.ListProfiles()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDEVICE\tMODEL\tPOINTS\tPIXELS\tBUCKET\tCORRECTION\tTOP MARGIN")

	for _, name := range device.Names() {
		p := profiles[name]

		points, pixels := "-", "-"
		if p.Screen.HeightPoints > 0 {
			points = fmt.Sprintf("%.0fx%.0f", p.Screen.WidthPoints, p.Screen.HeightPoints)
			w, h := p.PixelSize()
			pixels = fmt.Sprintf("%dx%d", w, h)
		}

		bucket := p.Bucket()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t×%.2f\t%.0fpx\n",
			name, p.Name, p.Description(), points, pixels, bucket,
			device.CorrectionFactor(bucket), wallpaper.RegionFor(bucket, false).Top)
	}

	return tw.Flush()
}
