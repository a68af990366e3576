package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatRatio renders an aspect ratio with two decimals
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}

// FormatDensity renders a pixel density with one decimal
func FormatDensity(density float64) string {
	return fmt.Sprintf("%.1f", density)
}

// FormatFloat renders f in its shortest exact decimal form
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatDimensions renders "W × H"
func FormatDimensions(width, height int) string {
	return fmt.Sprintf("%d × %d", width, height)
}

// FormatPercent renders a 0-100 value as a whole percentage
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatAge renders how long ago a unix millisecond timestamp was, relative to now
func FormatAge(ms int64, now time.Time) string {
	return humanize.RelTime(time.UnixMilli(ms), now, "ago", "from now")
}
