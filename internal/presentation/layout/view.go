package layout

import (
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/device"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/core/threshold"
)

// View is the state rendered by the watch screen
type View struct {
	Current    model.Observation
	HasCurrent bool
	History    []model.HistoryEntry
	HistoryCap int
	Thresholds model.Thresholds
	Status     threshold.Status
	Rankings   []device.Ranking
	Now        time.Time
	Width      int // screen width in columns; 0 asks the sizer
	MaxRows    int // history rows to show; 0 uses the default
}
