// Package display draws the live watch screen in the terminal's alternate buffer.
package display

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/layout"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

type TerminalDisplay struct {
	out               io.Writer
	inAlternateScreen bool
	lastLayoutStyle   int
	isFirstRender     bool              // Track if this is the first render
	currentMode       model.DisplayMode // Track current display mode for proper transitions
}

func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{
		out:           out,
		isFirstRender: true,
		currentMode:   model.ModeNormal,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.inAlternateScreen {
		fmt.Fprint(td.out, util.EnterAltScreen+util.ClearScreen+util.MoveCursorHome+util.ClearScrollback+util.HideCursor)
		td.inAlternateScreen = true
		td.isFirstRender = true
	}
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if td.inAlternateScreen {
		fmt.Fprint(td.out, util.ClearScreen+util.MoveCursorHome+util.ShowCursor+util.ExitAltScreen)
		td.inAlternateScreen = false
	}
}

// ClearScreen clears the alternate screen buffer
func (td *TerminalDisplay) ClearScreen() {
	if td.inAlternateScreen {
		fmt.Fprint(td.out, util.ClearScreen+util.MoveCursorHome)
	}
}

// determineDisplayMode determines the current display mode based on interaction state
func (td *TerminalDisplay) determineDisplayMode(state model.InteractionState) model.DisplayMode {
	// Priority order: Dialog > Help > Normal
	if state.ConfirmDialog != nil {
		return model.ModeDialog
	}
	if state.ShowHelp {
		return model.ModeHelp
	}
	return model.ModeNormal
}

// RenderWithState draws one frame. The frame is composed off-screen and
// written in a single call so the terminal never shows a half-drawn screen.
func (td *TerminalDisplay) RenderWithState(view layout.View, state model.InteractionState) {
	var frame bytes.Buffer

	newMode := td.determineDisplayMode(state)
	if td.isFirstRender || newMode != td.currentMode || td.lastLayoutStyle != state.LayoutStyle {
		frame.WriteString(util.ClearScreen)
		td.isFirstRender = false
		td.currentMode = newMode
		td.lastLayoutStyle = state.LayoutStyle
	}
	frame.WriteString(util.MoveCursorHome)

	switch newMode {
	case model.ModeDialog:
		renderConfirmDialog(&frame, state.ConfirmDialog)
	case model.ModeHelp:
		renderHelp(&frame)
	default:
		layout.GetLayoutStrategy(state.LayoutStyle).Render(&frame, view)
		if state.StatusMessage != "" {
			renderStatusMessage(&frame, state.StatusMessage)
		}
	}
	frame.WriteString(util.ClearToEnd)

	_, _ = td.out.Write(frame.Bytes())
}

func renderHelp(w io.Writer) {
	fmt.Fprintln(w, "Viewport Monitor - Help")
	fmt.Fprintln(w, strings.Repeat("═", 60))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keyboard Shortcuts:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  s            - Sample the viewport now")
	fmt.Fprintln(w, "  c            - Clear history")
	fmt.Fprintln(w, "  e            - Export JSON report")
	fmt.Fprintln(w, "  v            - Export history as CSV")
	fmt.Fprintln(w, "  t            - Change layout style (Full → Minimal)")
	fmt.Fprintln(w, "  h            - Show this help")
	fmt.Fprintln(w, "  q/Esc/Ctrl+C - Quit (Esc closes help first)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Threshold Status:")
	fmt.Fprintln(w, "  "+util.Colorize(util.ColorGreen, "within-range")+" - inside the configured bounds")
	fmt.Fprintln(w, "  "+util.Colorize(util.ColorYellow, "below-min")+"    - narrower or shorter than the minimum")
	fmt.Fprintln(w, "  "+util.Colorize(util.ColorRed, "above-max")+"    - wider or taller than the maximum")
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("═", 60))
	fmt.Fprintln(w, "Press 'h' to return...")
}

func renderConfirmDialog(w io.Writer, dialog *model.ConfirmDialog) {
	termWidth := 80 // Assume 80 chars width
	boxWidth := 60
	pad := strings.Repeat(" ", (termWidth-boxWidth)/2)

	// Move cursor down a bit
	fmt.Fprint(w, "\n\n\n\n\n")

	fmt.Fprintf(w, "%s╔%s╗\n", pad, strings.Repeat("═", boxWidth-2))
	fmt.Fprintf(w, "%s║%s║\n", pad, util.CenterText(dialog.Title, boxWidth-2))
	fmt.Fprintf(w, "%s╠%s╣\n", pad, strings.Repeat("═", boxWidth-2))
	fmt.Fprintf(w, "%s║%s║\n", pad, strings.Repeat(" ", boxWidth-2))

	for _, line := range wrapText(dialog.Message, boxWidth-4) {
		fmt.Fprintf(w, "%s║ %s%s ║\n", pad, line, strings.Repeat(" ", boxWidth-4-util.GetDisplayWidth(line)))
	}

	fmt.Fprintf(w, "%s║%s║\n", pad, strings.Repeat(" ", boxWidth-2))
	fmt.Fprintf(w, "%s║%s║\n", pad, util.CenterText("(Y)es / (N)o", boxWidth-2))
	fmt.Fprintf(w, "%s╚%s╝\n", pad, strings.Repeat("═", boxWidth-2))
}

func renderStatusMessage(w io.Writer, message string) {
	fmt.Fprint(w, util.SaveCursor)
	fmt.Fprint(w, util.MoveCursorBottom)
	fmt.Fprint(w, util.ClearLine)
	fmt.Fprintf(w, "  Status: %s", message)
	fmt.Fprint(w, util.RestoreCursor)
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{}
	}

	if util.GetDisplayWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if util.GetDisplayWidth(currentLine)+1+util.GetDisplayWidth(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
