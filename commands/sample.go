package commands

import (
	"fmt"

	"github.com/penwyp/go-viewport-monitor/internal/analyzer"
	"github.com/penwyp/go-viewport-monitor/internal/core/viewport"
	"github.com/spf13/cobra"
)

var (
	sampleWidth   int
	sampleHeight  int
	sampleDensity float64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Record one viewport observation",
	Long: `Records one observation into the history and prints the result.

Without --width/--height the terminal is measured. With them a manual
observation is recorded, for example to log a browser or device size.`,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVar(&sampleWidth, "width", 0,
		"Viewport width in logical pixels")
	sampleCmd.Flags().IntVar(&sampleHeight, "height", 0,
		"Viewport height in logical pixels")
	sampleCmd.Flags().Float64Var(&sampleDensity, "density", 1.0,
		"Device pixel ratio")
}

func runSample(cmd *cobra.Command, args []string) error {
	env, err := sampleEnvironment(cmd)
	if err != nil {
		return err
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if env == nil {
		env = a.terminal()
	}

	config := &analyzer.Config{
		OutputFormat: outputFormat,
		Record:       true,
		UserAgent:    a.userAgent,
	}
	return analyzer.New(config, a.newObserver(env), a.thresholds).Run(cmd.Context(), cmd.OutOrStdout())
}

// sampleEnvironment returns a static environment when a manual size was
// given, or nil to measure the terminal
func sampleEnvironment(cmd *cobra.Command) (viewport.Environment, error) {
	manual := cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
	if !manual {
		return nil, nil
	}
	if sampleWidth <= 0 || sampleHeight <= 0 {
		return nil, fmt.Errorf("--width and --height must both be positive")
	}
	if sampleDensity <= 0 {
		return nil, fmt.Errorf("--density must be positive")
	}
	return viewport.NewStaticEnvironment(sampleWidth, sampleHeight, sampleDensity), nil
}
