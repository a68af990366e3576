package interaction

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
)

const (
	KeyCtrlC rune = 3
	KeyEsc   rune = 27
)

var ErrNotTerminal = errors.New("stdin is not a terminal")

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	in       io.Reader
	fd       int
	oldState *term.State
	input    chan KeyEvent
	stop     chan struct{}
}

// NewKeyboardReader puts stdin into raw mode and starts reading keys
func NewKeyboardReader() (*KeyboardReader, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	kr := newKeyboardReader(os.Stdin)
	kr.fd = fd
	kr.oldState = oldState
	go kr.readInput()
	return kr, nil
}

// NewKeyboardReaderFrom reads keys from r without touching terminal modes
func NewKeyboardReaderFrom(r io.Reader) *KeyboardReader {
	kr := newKeyboardReader(r)
	go kr.readInput()
	return kr
}

func newKeyboardReader(r io.Reader) *KeyboardReader {
	return &KeyboardReader{
		in:    r,
		fd:    -1,
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}
}

// readInput reads keyboard input in a goroutine
func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 3)

	for {
		n, err := kr.in.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		event := kr.parseInput(buf[:n])
		if event != nil {
			select {
			case kr.input <- *event:
			case <-kr.stop:
				return
			}
		}
	}
}

// parseInput parses raw keyboard input
func (kr *KeyboardReader) parseInput(buf []byte) *KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	if buf[0] == byte(KeyCtrlC) {
		return &KeyEvent{Key: KeyCtrlC, Type: KeyChar}
	}

	// A lone ESC is the key; longer sequences are arrows and the like
	if buf[0] == byte(KeyEsc) {
		if len(buf) == 1 {
			return &KeyEvent{Key: KeyEsc, Type: KeyEscape}
		}
		return nil
	}

	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal
func (kr *KeyboardReader) Close() error {
	select {
	case <-kr.stop:
		return nil
	default:
		close(kr.stop)
	}
	if kr.oldState != nil {
		return term.Restore(kr.fd, kr.oldState)
	}
	return nil
}
