package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-viewport-monitor/internal/util"
	"golang.org/x/term"
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

const (
	minWidth     = 60
	defaultWidth = 74
	maxWidth     = 100
)

type Sizer struct {
}

// displayWidth calculates the actual display width of a string containing wide characters
func (i Sizer) displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads a string to a specific display width
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Fit pads or truncates s to exactly width columns
func (i Sizer) Fit(s string, width int) string {
	if i.displayWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return i.PadString(s, width, true)
}

// GetMaxWidth derives the dashboard width from the terminal width
func (i Sizer) GetMaxWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = 0
	}
	width := i.ClampWidth(termWidth)
	util.LogDebugf("GetMaxWidth %d", width)
	return width
}

// ClampWidth maps a terminal width onto the supported dashboard range
func (i Sizer) ClampWidth(termWidth int) int {
	if termWidth < minWidth {
		return defaultWidth
	}
	width := termWidth - 4 // Leave some margin
	if width > maxWidth {
		width = maxWidth
	}
	if width < minWidth {
		width = minWidth
	}
	return width
}
