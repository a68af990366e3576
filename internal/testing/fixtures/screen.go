package fixtures

import (
	"regexp"
	"strings"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// Screen is a minimal virtual terminal. It understands cursor movement and
// erase sequences and ignores every other one (colors, alternate screen,
// cursor visibility).
type Screen struct {
	rows, cols     int
	cells          [][]rune
	x, y           int
	savedX, savedY int
}

func NewScreen(rows, cols int) *Screen {
	s := &Screen{rows: rows, cols: cols, cells: make([][]rune, rows)}
	for i := range s.cells {
		s.cells[i] = blankRow(cols)
	}
	return s
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Write feeds terminal output into the screen
func (s *Screen) Write(p []byte) (int, error) {
	runes := []rune(string(p))
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[':
			i = s.escape(runes, i+2)
		case r == '\r':
			s.x = 0
		case r == '\n':
			s.newline()
		default:
			s.put(r)
		}
	}
	return len(p), nil
}

// escape applies the CSI sequence starting at start and returns the index of
// its final byte
func (s *Screen) escape(runes []rune, start int) int {
	var params []int
	current, private := 0, false
	for i := start; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '?':
			private = true
		case r >= '0' && r <= '9':
			current = current*10 + int(r-'0')
		case r == ';':
			params = append(params, current)
			current = 0
		default:
			params = append(params, current)
			if !private {
				s.command(r, params)
			}
			return i
		}
	}
	return len(runes)
}

func (s *Screen) command(cmd rune, params []int) {
	switch cmd {
	case 'H', 'f':
		row, col := 1, 1
		if len(params) > 0 && params[0] > 0 {
			row = params[0]
		}
		if len(params) > 1 && params[1] > 0 {
			col = params[1]
		}
		s.y, s.x = min(row-1, s.rows-1), min(col-1, s.cols-1)
	case 'J':
		switch params[0] {
		case 0:
			s.eraseLine(s.x, s.cols)
			for i := s.y + 1; i < s.rows; i++ {
				s.cells[i] = blankRow(s.cols)
			}
		case 2, 3:
			for i := range s.cells {
				s.cells[i] = blankRow(s.cols)
			}
		}
	case 's':
		s.savedX, s.savedY = s.x, s.y
	case 'u':
		s.x, s.y = s.savedX, s.savedY
	case 'K':
		switch params[0] {
		case 0:
			s.eraseLine(s.x, s.cols)
		case 1:
			s.eraseLine(0, s.x+1)
		case 2:
			s.eraseLine(0, s.cols)
		}
	}
}

func (s *Screen) eraseLine(from, to int) {
	for j := from; j < min(to, s.cols); j++ {
		s.cells[s.y][j] = ' '
	}
}

func (s *Screen) put(r rune) {
	if s.x >= s.cols {
		s.newline()
	}
	s.cells[s.y][s.x] = r
	s.x++
}

func (s *Screen) newline() {
	s.x = 0
	if s.y < s.rows-1 {
		s.y++
		return
	}
	copy(s.cells, s.cells[1:])
	s.cells[s.rows-1] = blankRow(s.cols)
}

// Line returns row i without trailing blanks
func (s *Screen) Line(i int) string {
	if i < 0 || i >= s.rows {
		return ""
	}
	return strings.TrimRight(string(s.cells[i]), " ")
}

// Render returns the visible text, one line per row
func (s *Screen) Render() string {
	lines := make([]string, s.rows)
	for i := range lines {
		lines[i] = s.Line(i)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func (s *Screen) Contains(text string) bool {
	return strings.Contains(s.Render(), text)
}
