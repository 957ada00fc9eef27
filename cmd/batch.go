package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/alde/notewall/internal/worker"
	"github.com/alde/notewall/pkg/config"
	"github.com/alde/notewall/pkg/device"
	"github.com/alde/notewall/pkg/imageio"
	"github.com/alde/notewall/pkg/progress"
	"github.com/alde/notewall/pkg/wallpaper"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	batchFlags   wallpaperFlags
	batchOutDir  string
	batchDevices string
	batchFormat  string
	batchQuality int
	batchNative  bool
	workerCount  int
)

var batchCmd = &cobra.Command{
	Use:   "batch [notes.yaml]",
	Short: "Render one wallpaper per device profile",
	Long: `Render the same notes for several device profiles concurrently. Each
profile gets its own margin correction and, with --native, its own output
resolution. Files are named after the profile.

Examples:
  notewall batch notes.yaml -o walls/
  notewall batch notes.yaml -o walls/ --devices iphone-se,iphone-pro-max --format webp
  notewall batch notes.yaml -o walls/ --native --workers 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchFlags.register(batchCmd, false)
	batchCmd.Flags().StringVarP(&batchOutDir, "output", "o", "", "Output directory (required)")
	batchCmd.Flags().StringVar(&batchDevices, "devices", "all", "Comma separated device profiles, or 'all'")
	batchCmd.Flags().StringVar(&batchFormat, "format", "png", "Output format (png, jpeg, webp)")
	batchCmd.Flags().IntVar(&batchQuality, "quality", imageio.DefaultQuality, "Quality for jpeg and webp output (1-100)")
	batchCmd.Flags().BoolVar(&batchNative, "native", false, "Scale each output to the device's native resolution")
	batchCmd.Flags().IntVar(&workerCount, "workers", 0, "Number of worker goroutines (0 = auto)")

	batchCmd.MarkFlagRequired("output")
}

// renderJob renders and saves the wallpaper for one device profile
type renderJob struct {
	name     string
	profile  device.Profile
	resolved *config.Resolved
	bg       wallpaper.Background
	book     *wallpaper.FontBook
	path     string
	opts     imageio.Options
	native   bool

	size     int64
	capacity wallpaper.Capacity
}

func (j *renderJob) ID() string {
	return j.name
}

func (j *renderJob) Process(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	renderer := newRenderer(j.profile, j.resolved.Style.FontFamily, j.book)
	j.capacity = renderer.Capacity(j.resolved.Notes, j.resolved.Style)

	img := renderer.Render(j.resolved.Notes, j.resolved.Style, j.bg)
	size, err := imageio.Save(screenImage(img, j.profile, j.native), j.path, j.opts)
	if err != nil {
		return err
	}
	j.size = size
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	format, err := imageio.ParseFormat(batchFormat)
	if err != nil {
		return err
	}

	names, err := parseDeviceList(batchDevices)
	if err != nil {
		return err
	}

	resolved, err := batchFlags.load(cmd, args)
	if err != nil {
		return err
	}

	bg, err := loadBackground(resolved)
	if err != nil {
		return err
	}

	book, err := batchFlags.fontBook(resolved.Style.FontFamily)
	if err != nil {
		return err
	}
	if book == nil {
		// One shared book keeps the parsed fonts from being copied per job
		book = wallpaper.NewFontBook()
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ext := string(format)
	if format == imageio.FormatJPEG {
		ext = "jpg"
	}

	jobs := make([]worker.Job, 0, len(names))
	byName := make(map[string]*renderJob, len(names))
	for _, name := range names {
		profile, err := device.GetProfile(name)
		if err != nil {
			return err
		}
		job := &renderJob{
			name:     name,
			profile:  profile,
			resolved: resolved,
			bg:       bg,
			book:     book,
			path:     filepath.Join(batchOutDir, name+"."+ext),
			opts:     imageio.Options{Format: format, Quality: batchQuality},
			native:   batchNative,
		}
		jobs = append(jobs, job)
		byName[name] = job
	}

	workers := workerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := cmd.OutOrStdout()
	var tracker *progress.Tracker
	if verbose {
		tracker = progress.NewTracker(out, workers, len(jobs))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pool := worker.NewPool(ctx, workers, tracker)
	results := pool.Run(jobs)

	sort.Slice(results, func(i, k int) bool { return results[i].JobID < results[k].JobID })

	var total int64
	var failed []string
	for _, r := range results {
		job := byName[r.JobID]
		if r.Error != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", r.JobID, r.Error))
			continue
		}
		total += job.size
		fmt.Fprintf(out, "✓ %-16s %-10s %2d/%d notes at %3.0fpx  %s\n",
			job.name, humanize.Bytes(uint64(job.size)),
			job.capacity.Included, job.capacity.Total, job.capacity.FontSize, job.path)
	}

	fmt.Fprintf(out, "Rendered %d wallpapers (%s total)\n", len(results)-len(failed), humanize.Bytes(uint64(total)))

	if len(failed) > 0 {
		return fmt.Errorf("%d render(s) failed:\n  %s", len(failed), strings.Join(failed, "\n  "))
	}
	return nil
}

func parseDeviceList(list string) ([]string, error) {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		return device.Names(), nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		if _, err := device.GetProfile(name); err != nil {
			return nil, err
		}
		seen[name] = true
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no device profiles selected")
	}
	return names, nil
}
