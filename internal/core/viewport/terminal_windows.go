//go:build windows

package viewport

import (
	"context"
	"os"
	"time"

	"golang.org/x/term"
)

func (e *TerminalEnvironment) winsize() winsize {
	if cols, rows, err := term.GetSize(e.fd); err == nil && cols > 0 && rows > 0 {
		return winsize{cols: cols, rows: rows}
	}
	return envGrid()
}

// ResizeEvents polls the console size once per second and emits on change
func ResizeEvents(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)
	fd := int(os.Stdout.Fd())

	go func() {
		defer close(out)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		lastCols, lastRows, _ := term.GetSize(fd)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cols, rows, err := term.GetSize(fd)
				if err != nil || (cols == lastCols && rows == lastRows) {
					continue
				}
				lastCols, lastRows = cols, rows
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
