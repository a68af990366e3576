package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-viewport-monitor/internal/util"
)

const (
	defaultHistoryRows = 8
	rankingRows        = 3
)

// FullLayoutStrategy implements the full dashboard layout
type FullLayoutStrategy struct {
	BaseStrategy
}

func (s *FullLayoutStrategy) GetName() string {
	return "Full Dashboard"
}

func (s *FullLayoutStrategy) Render(w io.Writer, view View) {
	width := s.width(view)
	lines := make([]string, 0, 32)

	lines = append(lines, s.Border("╭", "╮", width))
	lines = append(lines, s.header(view, width))
	lines = append(lines, s.Border("├", "┤", width))
	lines = append(lines, s.currentSection(view, width)...)
	lines = append(lines, s.Border("├", "┤", width))
	lines = append(lines, s.deviceSection(view, width)...)
	lines = append(lines, s.Border("├", "┤", width))
	lines = append(lines, s.historySection(view, width)...)
	lines = append(lines, s.Border("╰", "╯", width))
	lines = append(lines, " s sample  c clear  e export  v csv  t layout  h help  q quit")

	for _, line := range lines {
		fmt.Fprintln(w, line+util.ClearLineRight)
	}
}

func (s *FullLayoutStrategy) header(view View, width int) string {
	title := "Viewport Monitor"
	clock := util.GetTimeProvider().Format(view.Now, "15:04:05")
	inner := width - 4
	gap := inner - util.GetDisplayWidth(title) - util.GetDisplayWidth(clock)
	if gap < 1 {
		gap = 1
	}
	plain := title + strings.Repeat(" ", gap) + clock
	styled := util.FormatHeaderTitle(title) + strings.Repeat(" ", gap) + clock
	return s.BoxLineStyled(plain, styled, width)
}

func (s *FullLayoutStrategy) currentSection(view View, width int) []string {
	if !view.HasCurrent {
		return []string{s.BoxLine("Waiting for the first sample...", width)}
	}

	c := view.Current
	t := view.Thresholds
	lines := []string{
		s.BoxLine(fmt.Sprintf("Size:         %s", util.FormatDimensions(c.Width, c.Height)), width),
		s.BoxLine(fmt.Sprintf("Aspect ratio: %-8s Density: %s", util.FormatRatio(c.AspectRatio), util.FormatDensity(c.PixelDensity)), width),
		s.BoxLine(fmt.Sprintf("Orientation:  %s", c.Orientation), width),
	}

	rangeText := fmt.Sprintf(" (width %d-%d, height %d-%d)", t.MinWidth, t.MaxWidth, t.MinHeight, t.MaxHeight)
	plain := "Thresholds:   " + string(view.Status) + rangeText
	styled := "Thresholds:   " + s.StatusLabel(view.Status) + rangeText
	lines = append(lines, s.BoxLineStyled(plain, styled, width))

	barWidth := max(10, width-40)
	if t.MaxWidth > 0 && t.MaxHeight > 0 {
		wPct := float64(c.Width) * 100 / float64(t.MaxWidth)
		hPct := float64(c.Height) * 100 / float64(t.MaxHeight)
		lines = append(lines,
			s.BoxLine("Width  "+s.ProgressBar(wPct, barWidth, util.FormatPercent(wPct)+" of max"), width),
			s.BoxLine("Height "+s.ProgressBar(hPct, barWidth, util.FormatPercent(hPct)+" of max"), width),
		)
	}
	return lines
}

func (s *FullLayoutStrategy) deviceSection(view View, width int) []string {
	lines := []string{s.BoxLine("Closest devices", width)}
	if len(view.Rankings) == 0 {
		return append(lines, s.BoxLine("  no presets", width))
	}

	sizer := s.GetSizer()
	for i, r := range view.Rankings {
		if i >= rankingRows {
			break
		}
		name := sizer.PadString(r.Preset.Name, 20, true)
		dims := sizer.PadString(util.FormatDimensions(r.Preset.Width, r.Preset.Height), 13, true)
		lines = append(lines, s.BoxLine(fmt.Sprintf("  %d. %s %s %s", i+1, name, dims,
			s.ProgressBar(r.Similarity, 10, util.FormatPercent(r.Similarity))), width))
	}
	return lines
}

func (s *FullLayoutStrategy) historySection(view View, width int) []string {
	lines := []string{s.BoxLine(fmt.Sprintf("History (%d/%d)", len(view.History), view.HistoryCap), width)}
	if len(view.History) == 0 {
		return append(lines, s.BoxLine("  no entries", width))
	}

	rows := view.MaxRows
	if rows <= 0 {
		rows = defaultHistoryRows
	}

	tp := util.GetTimeProvider()
	sizer := s.GetSizer()
	for i, e := range view.History {
		if i >= rows {
			lines = append(lines, s.BoxLine(fmt.Sprintf("  ... %d more", len(view.History)-rows), width))
			break
		}
		lines = append(lines, s.BoxLine(fmt.Sprintf("  %s  %s %s %s  %s",
			tp.FormatMillis(e.Timestamp, "15:04:05"),
			sizer.PadString(util.FormatDimensions(e.Width, e.Height), 13, true),
			sizer.PadString(string(e.Orientation), 9, true),
			util.FormatDensity(e.PixelDensity),
			util.FormatAge(e.Timestamp, view.Now)), width))
	}
	return lines
}
