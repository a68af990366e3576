package commands

import (
	"fmt"

	"github.com/penwyp/go-viewport-monitor/internal/core/device"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/core/report"
	"github.com/penwyp/go-viewport-monitor/internal/core/viewport"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/formatter"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Rank device presets by similarity to the current viewport",
	Long: `Measures the terminal (or uses --width/--height) without recording it, and
ranks the built-in device presets by Euclidean distance to that size.`,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.Flags().IntVar(&sampleWidth, "width", 0,
		"Compare this width instead of the terminal")
	devicesCmd.Flags().IntVar(&sampleHeight, "height", 0,
		"Compare this height instead of the terminal")
	devicesCmd.Flags().Float64Var(&sampleDensity, "density", 1.0,
		"Device pixel ratio of the manual size")
}

func runDevices(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case model.FormatTable, model.FormatJSON, "":
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}

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

	current := viewport.NewSampler(env).Sample()
	presets := model.DevicePresets()
	rankings := device.RankObservation(current, presets)

	out := cmd.OutOrStdout()
	if outputFormat == model.FormatJSON {
		encoded, err := report.Marshal(rankings)
		if err != nil {
			return err
		}
		_, err = out.Write(append(encoded, '\n'))
		return err
	}

	return formatter.NewDevicesFormatter().Format(out, formatter.ViewportData{
		Current:  current,
		Rankings: rankings,
		Presets:  presets,
	})
}
