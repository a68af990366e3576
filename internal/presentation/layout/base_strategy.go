package layout

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-viewport-monitor/internal/core/threshold"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

func (b *BaseStrategy) width(view View) int {
	if view.Width > 0 {
		return b.GetSizer().ClampWidth(view.Width)
	}
	return b.GetSizer().GetMaxWidth()
}

// BoxLine renders content inside the dashboard's side borders
func (b *BaseStrategy) BoxLine(content string, width int) string {
	return "│ " + b.GetSizer().Fit(content, width-4) + " │"
}

// BoxLineStyled pads by the width of plain while printing styled, so color
// escapes do not break alignment. styled must render as plain.
func (b *BaseStrategy) BoxLineStyled(plain, styled string, width int) string {
	inner := width - 4
	w := util.GetDisplayWidth(plain)
	if w > inner {
		return b.BoxLine(plain, width)
	}
	return "│ " + styled + strings.Repeat(" ", inner-w) + " │"
}

func (b *BaseStrategy) Border(left, right string, width int) string {
	return left + strings.Repeat("─", width-2) + right
}

// StatusLabel colors a threshold status
func (b *BaseStrategy) StatusLabel(status threshold.Status) string {
	switch status {
	case threshold.StatusWithinRange:
		return util.Colorize(util.ColorGreen, string(status))
	case threshold.StatusBelowMin:
		return util.Colorize(util.ColorYellow, string(status))
	case threshold.StatusAboveMax:
		return util.Colorize(util.ColorRed, string(status))
	default:
		return string(status)
	}
}

// ProgressBar creates a progress bar with optional label
func (b *BaseStrategy) ProgressBar(percentage float64, width int, label string) string {
	bar := util.CreateProgressBar(percentage, width)
	if label != "" {
		return fmt.Sprintf("%s %s", bar, label)
	}
	return bar
}
