package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// SummaryFormatter prints aggregate statistics over the history
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(w io.Writer, data ViewportData) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Viewport Summary Report")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	c := data.Current
	fmt.Fprintln(w, "Current Viewport:")
	fmt.Fprintf(w, "  Size:          %s\n", util.FormatDimensions(c.Width, c.Height))
	fmt.Fprintf(w, "  Aspect Ratio:  %s\n", util.FormatRatio(c.AspectRatio))
	fmt.Fprintf(w, "  Pixel Density: %s\n", util.FormatDensity(c.PixelDensity))
	fmt.Fprintf(w, "  Orientation:   %s\n", c.Orientation)
	if data.Status != "" {
		fmt.Fprintf(w, "  Thresholds:    %s (width %d-%d, height %d-%d)\n", data.Status,
			data.Thresholds.MinWidth, data.Thresholds.MaxWidth,
			data.Thresholds.MinHeight, data.Thresholds.MaxHeight)
	}
	fmt.Fprintln(w)

	if len(data.History) == 0 {
		fmt.Fprintln(w, "No history to summarize")
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Repeat("=", 60))
		return nil
	}

	tp := util.GetTimeProvider()
	oldest := data.History[len(data.History)-1]
	newest := data.History[0]
	fmt.Fprintf(w, "Time Range: %s to %s\n", tp.FormatMillis(oldest.Timestamp, historyTimeLayout), tp.FormatMillis(newest.Timestamp, historyTimeLayout))
	fmt.Fprintf(w, "Entries:    %d/%d\n", len(data.History), data.HistoryCap)
	fmt.Fprintln(w)

	minW, maxW := newest.Width, newest.Width
	minH, maxH := newest.Height, newest.Height
	var sumW, sumH int
	orientations := make(map[model.Orientation]int)
	for _, e := range data.History {
		minW, maxW = min(minW, e.Width), max(maxW, e.Width)
		minH, maxH = min(minH, e.Height), max(maxH, e.Height)
		sumW += e.Width
		sumH += e.Height
		orientations[e.Orientation]++
	}
	n := len(data.History)

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width:   min %d  max %d  avg %d\n", minW, maxW, sumW/n)
	fmt.Fprintf(w, "  Height:  min %d  max %d  avg %d\n", minH, maxH, sumH/n)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Orientation:")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	keys := make([]string, 0, len(orientations))
	for o := range orientations {
		keys = append(keys, string(o))
	}
	sort.Strings(keys)
	for _, k := range keys {
		count := orientations[model.Orientation(k)]
		pct := float64(count) * 100 / float64(n)
		fmt.Fprintf(w, "  %-10s %s %3d (%s)\n", k, util.CreateProgressBar(pct, 20), count, util.FormatPercent(pct))
	}

	if len(data.Rankings) > 0 {
		fmt.Fprintln(w)
		best := data.Rankings[0]
		fmt.Fprintf(w, "Closest Device: %s (%s)\n", best.Preset.Name, util.FormatPercent(best.Similarity))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}
