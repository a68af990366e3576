package commands

import (
	"fmt"

	"github.com/penwyp/go-viewport-monitor/internal/analyzer"
	"github.com/penwyp/go-viewport-monitor/internal/application/export"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/formatter"
	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportOut      string
	exportStdout   bool
	exportNoSample bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the viewport report, CSV history or full snapshot",
	Long: `Writes one export file named after its format:

  report    viewport-report-<unix ms>.json  (current viewport, 10 newest entries, presets)
  csv       viewport-history-<date>.csv     (every history entry)
  snapshot  viewport-checker-<date>.json    (current viewport, history and thresholds)

The terminal is sampled first unless --no-sample is given, in which case the
newest history entry is exported as the current viewport.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", model.FormatReport,
		"Export format (report, csv, snapshot)")
	exportCmd.Flags().StringVar(&exportOut, "out", ".",
		"Output directory")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false,
		"Write to stdout instead of a file")
	exportCmd.Flags().BoolVar(&exportNoSample, "no-sample", false,
		"Export without taking a new sample")
}

func runExport(cmd *cobra.Command, args []string) error {
	switch exportFormat {
	case model.FormatReport, model.FormatCSV, model.FormatSnapshot:
	default:
		return fmt.Errorf("unsupported export format: %s", exportFormat)
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	config := &analyzer.Config{
		Record:    !exportNoSample,
		UserAgent: a.userAgent,
	}
	data, err := analyzer.New(config, a.newObserver(a.terminal()), a.thresholds).Analyze(cmd.Context())
	if err != nil {
		return err
	}

	if exportStdout {
		f, err := formatter.New(exportFormat)
		if err != nil {
			return err
		}
		return f.Format(cmd.OutOrStdout(), data)
	}

	path, err := export.NewExporter(expandPath(exportOut)).Export(exportFormat, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", exportFormat, path)
	return nil
}
