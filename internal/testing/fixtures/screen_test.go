package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "ok", StripANSI("\x1b[32mok\x1b[0m\x1b[?25l"))
}

func TestScreenRedrawInPlace(t *testing.T) {
	s := NewScreen(5, 20)
	s.Write([]byte("\x1b[?1049h\x1b[2J\x1b[Hfirst line long\nsecond"))
	assert.Equal(t, "first line long", s.Line(0))
	assert.Equal(t, "second", s.Line(1))

	// Home and overwrite: without erase the tail survives, with \x1b[K it does not
	s.Write([]byte("\x1b[Hshort\n\x1b[33mnext\x1b[0m\x1b[K\x1b[J"))
	assert.Equal(t, "short line long", s.Line(0))
	assert.Equal(t, "next", s.Line(1))
	assert.False(t, s.Contains("second"))
}

func TestScreenScrollsAndPositions(t *testing.T) {
	s := NewScreen(2, 10)
	s.Write([]byte("a\nb\nc"))
	assert.Equal(t, "b\nc", s.Render())

	s.Write([]byte("\x1b[1;5HX"))
	assert.Equal(t, "b   X", s.Line(0))
}
