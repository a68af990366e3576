package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/application/watch"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/data/store"
	"github.com/spf13/cobra"
)

var (
	watchRefreshRate int
	watchLayout      int
	watchExportDir   string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the terminal viewport in real-time",
	Long: `Displays the current viewport, the closest device presets and the observation
history in an alternate screen. Every terminal resize records a new observation.

Keys:
  s  sample now          c  clear history
  e  export report       v  export CSV
  t  switch layout       h  help
  q  quit (also Esc, Ctrl+C)`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchRefreshRate, "refresh-rate", 0,
		"Display refresh interval in seconds (default from config)")
	watchCmd.Flags().IntVar(&watchLayout, "layout", 0,
		"Initial layout (0 = full dashboard, 1 = minimal)")
	watchCmd.Flags().StringVar(&watchExportDir, "export-dir", ".",
		"Directory receiving files exported with e/v")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	refresh := a.config.Watch.RefreshSeconds
	if watchRefreshRate > 0 {
		refresh = watchRefreshRate
	}
	if refresh < 1 || refresh > 60 {
		return fmt.Errorf("refresh-rate must be between 1 and 60 seconds")
	}

	// Threshold edits by other processes are picked up from the file store
	var thresholdFiles []string
	if fs, ok := a.store.(*store.FileStore); ok {
		thresholdFiles = []string{fs.Path(model.ThresholdsKey)}
	}

	config := &watch.WatchConfig{
		Timezone:          a.config.Timezone,
		LayoutStyle:       watchLayout,
		UIRefreshInterval: time.Duration(refresh) * time.Second,
		ExportDir:         expandPath(watchExportDir),
		ThresholdFiles:    thresholdFiles,
	}

	orchestrator, err := watch.NewOrchestrator(config, watch.Dependencies{
		Observer:   a.newObserver(a.terminal()),
		Thresholds: a.thresholds,
		UserAgent:  a.userAgent,
	})
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := ensureDir(filepath.Clean(config.ExportDir)); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return orchestrator.Run(ctx)
}
