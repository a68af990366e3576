package commands

import (
	"fmt"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/core/report"
	"github.com/spf13/cobra"
)

var (
	thresholdsSet bool
	minWidth      int
	maxWidth      int
	minHeight     int
	maxHeight     int
)

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Show or change the acceptable viewport bounds",
	Long: `Prints the active thresholds. With --set, the given bounds replace the
current ones and are persisted; bounds not given keep their value.

Examples:
  go-viewport-monitor thresholds
  go-viewport-monitor thresholds --set --min-width 360 --max-width 1440
  go-viewport-monitor thresholds reset`,
	RunE: runThresholds,
}

var thresholdsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default thresholds",
	RunE:  runThresholdsReset,
}

func init() {
	rootCmd.AddCommand(thresholdsCmd)
	thresholdsCmd.AddCommand(thresholdsResetCmd)

	thresholdsCmd.Flags().BoolVar(&thresholdsSet, "set", false,
		"Persist the given bounds")
	thresholdsCmd.Flags().IntVar(&minWidth, "min-width", 0, "Minimum width")
	thresholdsCmd.Flags().IntVar(&maxWidth, "max-width", 0, "Maximum width")
	thresholdsCmd.Flags().IntVar(&minHeight, "min-height", 0, "Minimum height")
	thresholdsCmd.Flags().IntVar(&maxHeight, "max-height", 0, "Maximum height")
}

func runThresholds(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	t := a.thresholds.Load(ctx)

	if thresholdsSet {
		flags := cmd.Flags()
		if !flags.Changed("min-width") && !flags.Changed("max-width") &&
			!flags.Changed("min-height") && !flags.Changed("max-height") {
			return fmt.Errorf("--set needs at least one of --min-width, --max-width, --min-height, --max-height")
		}
		if flags.Changed("min-width") {
			t.MinWidth = minWidth
		}
		if flags.Changed("max-width") {
			t.MaxWidth = maxWidth
		}
		if flags.Changed("min-height") {
			t.MinHeight = minHeight
		}
		if flags.Changed("max-height") {
			t.MaxHeight = maxHeight
		}
		if err := a.thresholds.Save(ctx, t); err != nil {
			return err
		}
	}

	return printThresholds(cmd, t)
}

func runThresholdsReset(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.thresholds.Reset(cmd.Context()); err != nil {
		return err
	}
	return printThresholds(cmd, a.thresholds.Current())
}

func printThresholds(cmd *cobra.Command, t model.Thresholds) error {
	out := cmd.OutOrStdout()
	if outputFormat == model.FormatJSON {
		encoded, err := report.Marshal(t)
		if err != nil {
			return err
		}
		_, err = out.Write(append(encoded, '\n'))
		return err
	}
	fmt.Fprintf(out, "Width:  %d - %d\n", t.MinWidth, t.MaxWidth)
	fmt.Fprintf(out, "Height: %d - %d\n", t.MinHeight, t.MaxHeight)
	return nil
}
