//go:build !windows

package viewport

import (
	"context"
	"os"
	"os/signal"

	"github.com/penwyp/go-viewport-monitor/internal/util"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

func (e *TerminalEnvironment) winsize() winsize {
	ws, err := unix.IoctlGetWinsize(e.fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return winsize{
			cols:   int(ws.Col),
			rows:   int(ws.Row),
			xpixel: int(ws.Xpixel),
			ypixel: int(ws.Ypixel),
		}
	}

	if cols, rows, err := term.GetSize(e.fd); err == nil && cols > 0 && rows > 0 {
		return winsize{cols: cols, rows: rows}
	}

	util.LogDebugf("Terminal size unavailable on fd %d, using environment fallback", e.fd)
	return envGrid()
}

// ResizeEvents delivers one value per SIGWINCH until ctx is done
func ResizeEvents(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)
	sigChan := make(chan os.Signal, 8)
	signal.Notify(sigChan, unix.SIGWINCH)

	go func() {
		defer signal.Stop(sigChan)
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigChan:
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
