package layout

import (
	"fmt"
	"io"

	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// MinimalLayoutStrategy implements the single-line layout
type MinimalLayoutStrategy struct {
	BaseStrategy
}

func (s *MinimalLayoutStrategy) GetName() string {
	return "Minimal Dashboard"
}

func (s *MinimalLayoutStrategy) Render(w io.Writer, view View) {
	clock := util.GetTimeProvider().Format(view.Now, "15:04:05")
	if !view.HasCurrent {
		fmt.Fprintf(w, "Viewport: waiting | %s%s\n", clock, util.ClearLineRight)
		return
	}

	c := view.Current
	closest := "-"
	if len(view.Rankings) > 0 {
		closest = view.Rankings[0].Preset.Name
	}

	fmt.Fprintf(w, "Viewport: %s | %s | %sx | %s | %s | history %d/%d | %s%s\n",
		util.FormatDimensions(c.Width, c.Height),
		c.Orientation,
		util.FormatDensity(c.PixelDensity),
		s.StatusLabel(view.Status),
		closest,
		len(view.History), view.HistoryCap,
		clock,
		util.ClearLineRight)
}
