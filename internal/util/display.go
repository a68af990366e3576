package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"

	// Terminal control sequences
	EnterAltScreen   = "\033[?1049h"
	ExitAltScreen    = "\033[?1049l"
	ClearScreen      = "\033[2J"
	ClearLine        = "\033[2K"
	ClearLineRight   = "\033[K"
	ClearToEnd       = "\033[J"
	ClearScrollback  = "\033[3J"
	MoveCursorHome   = "\033[H"
	MoveCursorBottom = "\033[999;1H"
	SaveCursor       = "\033[s"
	RestoreCursor    = "\033[u"
	HideCursor       = "\033[?25l"
	ShowCursor       = "\033[?25h"
)

// GetDisplayWidth calculates the actual display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Colorize wraps text in a color sequence
func Colorize(color, text string) string {
	return color + text + ColorReset
}

// FormatHeaderTitle formats main header titles (Cyan + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}

// CreateProgressBar renders a fixed-width bar filled to percentage
func CreateProgressBar(percentage float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int((percentage / 100) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// CenterText centers text within the given display width
func CenterText(text string, width int) string {
	textWidth := GetDisplayWidth(text)
	if textWidth >= width {
		return runewidth.Truncate(text, width, "")
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-padding-textWidth)
}
