package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-viewport-monitor/internal/analyzer"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Configuration and storage
	configPath   string
	storeBackend string
	dataDir      string
	redisAddr    string

	// Output related
	outputFormat string
	timezone     string

	rootCmd = &cobra.Command{
		Use:   "go-viewport-monitor [flags]",
		Short: "Terminal viewport monitoring tool",
		Long: `go-viewport-monitor measures the terminal viewport, keeps a history of observations
and compares the current size against common device presets.

Examples:
  go-viewport-monitor                               # Sample once and print the result
  go-viewport-monitor --output json                 # Print the viewport report as JSON
  go-viewport-monitor watch                         # Live view, resampling on every resize
  go-viewport-monitor sample --width 390 --height 844 --density 3
  go-viewport-monitor history --sort width --limit 10
  go-viewport-monitor export --format csv --out ./reports
  go-viewport-monitor --store redis --redis-addr localhost:6379`,
		SilenceUsage: true,
		RunE:         runAnalyze,
	}
)

func init() {
	// Configuration
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.go-viewport-monitor/config.yaml)")

	// Storage
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "",
		"Storage backend (file, redis, memory)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"Directory of the file store")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "",
		"Redis server address for the redis store")

	// Output configuration
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	config := &analyzer.Config{
		OutputFormat: outputFormat,
		Record:       true,
		UserAgent:    a.userAgent,
	}
	observer := a.newObserver(a.terminal())
	return analyzer.New(config, observer, a.thresholds).Run(cmd.Context(), cmd.OutOrStdout())
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
