package viewport

import (
	"os"
	"strconv"
)

const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	fallbackCols      = 80
	fallbackRows      = 24
)

// TerminalConfig controls how a character grid maps to logical pixels
type TerminalConfig struct {
	CellWidth       int     // logical pixels per column
	CellHeight      int     // logical pixels per row
	FallbackDensity float64 // used when the terminal does not report its pixel size
}

func (c *TerminalConfig) normalize() {
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultCellHeight
	}
	if c.FallbackDensity <= 0 {
		c.FallbackDensity = 1.0
	}
}

// TerminalEnvironment measures the terminal attached to a file descriptor
type TerminalEnvironment struct {
	fd     int
	config TerminalConfig
}

// NewTerminalEnvironment measures the terminal behind f
func NewTerminalEnvironment(f *os.File, config TerminalConfig) *TerminalEnvironment {
	config.normalize()
	return &TerminalEnvironment{fd: int(f.Fd()), config: config}
}

// winsize is the portable subset of the kernel window size
type winsize struct {
	cols, rows     int
	xpixel, ypixel int
}

// Measure converts the grid to logical pixels. Density is the ratio of the
// reported pixel width to the logical width when the terminal reports it.
func (e *TerminalEnvironment) Measure() Measurement {
	ws := e.winsize()

	width := ws.cols * e.config.CellWidth
	height := ws.rows * e.config.CellHeight
	density := e.config.FallbackDensity
	if ws.xpixel > 0 && width > 0 {
		density = float64(ws.xpixel) / float64(width)
	}

	return Measurement{Width: width, Height: height, PixelDensity: density}
}

// envGrid reads $COLUMNS/$LINES, then the classic 80x24
func envGrid() winsize {
	cols, rows := fallbackCols, fallbackRows
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		cols = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINES")); err == nil && v > 0 {
		rows = v
	}
	return winsize{cols: cols, rows: rows}
}
