package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/penwyp/go-viewport-monitor/internal/analyzer"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historySort   string
	historyAsc    bool
	historyClear  bool
	historyRemove string
	historyYes    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or edit the observation history",
	Long: `Prints the recorded observations, newest first unless --sort is given.

Examples:
  go-viewport-monitor history --limit 10
  go-viewport-monitor history --sort width --asc
  go-viewport-monitor history --output csv > history.csv
  go-viewport-monitor history --remove 1705312800000
  go-viewport-monitor history --clear --yes`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 0,
		"Limit result count (0 = unlimited)")
	historyCmd.Flags().StringVar(&historySort, "sort", "",
		"Sort field (time, width, height, density)")
	historyCmd.Flags().BoolVar(&historyAsc, "asc", false,
		"Sort ascending instead of descending")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false,
		"Delete the whole history")
	historyCmd.Flags().StringVar(&historyRemove, "remove", "",
		"Delete the entry with this id")
	historyCmd.Flags().BoolVarP(&historyYes, "yes", "y", false,
		"Do not ask for confirmation")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if historyClear {
		if !historyYes && !confirm(cmd, "Clear viewport history? This deletes every recorded observation. (y/N): ") {
			fmt.Fprintln(out, "Clear cancelled.")
			return nil
		}
		if err := a.history.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Viewport history cleared.")
		return nil
	}

	if historyRemove != "" {
		a.history.Load(ctx)
		removed, err := a.history.Remove(ctx, historyRemove)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("no history entry with id %s", historyRemove)
		}
		fmt.Fprintf(out, "Removed entry %s.\n", historyRemove)
		return nil
	}

	config := &analyzer.Config{
		OutputFormat: outputFormat,
		Limit:        historyLimit,
		SortBy:       historySort,
		Ascending:    historyAsc,
		UserAgent:    a.userAgent,
	}
	return analyzer.New(config, a.newObserver(a.terminal()), a.thresholds).Run(ctx, out)
}

// confirm prompts on the command output and reads one answer line
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
