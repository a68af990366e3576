package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// TableFormatter prints the current viewport and the history as a boxed table
type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"#", "ID", "Time", "Size", "Ratio", "DPR", "Orientation", "Age"},
	}
}

func (f *TableFormatter) Format(w io.Writer, data ViewportData) error {
	c := data.Current
	fmt.Fprintf(w, "Current viewport: %s  ratio %s  density %s  %s\n",
		util.FormatDimensions(c.Width, c.Height),
		util.FormatRatio(c.AspectRatio),
		util.FormatDensity(c.PixelDensity),
		c.Orientation)
	if data.Status != "" {
		fmt.Fprintf(w, "Threshold status: %s\n", data.Status)
	}
	if len(data.Rankings) > 0 {
		best := data.Rankings[0]
		fmt.Fprintf(w, "Closest device:   %s (%s, %s similar)\n",
			best.Preset.Name,
			util.FormatDimensions(best.Preset.Width, best.Preset.Height),
			util.FormatPercent(best.Similarity))
	}
	fmt.Fprintf(w, "History:          %d/%d entries\n\n", len(data.History), data.HistoryCap)

	entries := data.Rows()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history recorded")
		return nil
	}

	tp := util.GetTimeProvider()
	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			entry.ID,
			tp.FormatMillis(entry.Timestamp, historyTimeLayout),
			util.FormatDimensions(entry.Width, entry.Height),
			util.FormatRatio(entry.AspectRatio),
			util.FormatDensity(entry.PixelDensity),
			string(entry.Orientation),
			util.FormatAge(entry.Timestamp, data.Now),
		})
	}

	// Numeric columns are right-aligned
	rightAligned := map[int]bool{0: true, 4: true, 5: true}
	return writeTable(w, f.headers, rows, rightAligned)
}

// DevicesFormatter prints the preset ranking against the current viewport
type DevicesFormatter struct {
	headers []string
}

func NewDevicesFormatter() *DevicesFormatter {
	return &DevicesFormatter{
		headers: []string{"Rank", "Device", "Type", "Size", "Distance", "Similarity"},
	}
}

func (f *DevicesFormatter) Format(w io.Writer, data ViewportData) error {
	fmt.Fprintf(w, "Compared with %s\n", util.FormatDimensions(data.Current.Width, data.Current.Height))

	rows := make([][]string, 0, len(data.Rankings))
	for i, r := range data.Rankings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Preset.Name,
			string(r.Preset.Type),
			util.FormatDimensions(r.Preset.Width, r.Preset.Height),
			fmt.Sprintf("%.1f", r.Distance),
			util.FormatPercent(r.Similarity),
		})
	}

	rightAligned := map[int]bool{0: true, 4: true, 5: true}
	return writeTable(w, f.headers, rows, rightAligned)
}

func writeTable(w io.Writer, headers []string, rows [][]string, rightAligned map[int]bool) error {
	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeBorder(&b, widths, "top")
	writeRow(&b, headers, widths, nil)
	writeBorder(&b, widths, "middle")
	for _, row := range rows {
		writeRow(&b, row, widths, rightAligned)
	}
	writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

// columnWidths measures display width so multi-byte glyphs like × line up
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, v := range row {
			if w := runewidth.StringWidth(v); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, values []string, widths []int, rightAligned map[int]bool) {
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" ")
		if rightAligned[i] {
			b.WriteString(runewidth.FillLeft(value, widths[i]))
		} else {
			b.WriteString(runewidth.FillRight(value, widths[i]))
		}
		b.WriteString(" │")
	}
	b.WriteString("\n")
}
