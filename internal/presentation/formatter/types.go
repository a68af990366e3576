package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/device"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/core/threshold"
)

// ViewportData is everything an output format may render
type ViewportData struct {
	Current    model.Observation
	History    []model.HistoryEntry // newest first
	HistoryCap int

	// DisplayHistory is a sorted or limited view of History for the row
	// based formats. Reports and summaries always use History.
	DisplayHistory []model.HistoryEntry

	Thresholds model.Thresholds
	Status     threshold.Status
	Rankings   []device.Ranking
	Presets    []model.DevicePreset
	UserAgent  string
	Now        time.Time
}

// Rows returns the entries printed one per row
func (d ViewportData) Rows() []model.HistoryEntry {
	if d.DisplayHistory != nil {
		return d.DisplayHistory
	}
	return d.History
}

// Formatter renders viewport data to w
type Formatter interface {
	Format(w io.Writer, data ViewportData) error
}

// New returns the formatter registered for format
func New(format string) (Formatter, error) {
	switch format {
	case model.FormatTable, "":
		return NewTableFormatter(), nil
	case model.FormatJSON, model.FormatReport:
		return NewJSONFormatter(), nil
	case model.FormatCSV:
		return NewCSVFormatter(), nil
	case model.FormatSummary:
		return NewSummaryFormatter(), nil
	case model.FormatSnapshot:
		return NewSnapshotFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
