package formatter

import (
	"io"

	"github.com/penwyp/go-viewport-monitor/internal/core/report"
)

// JSONFormatter writes the viewport report
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(w io.Writer, data ViewportData) error {
	r := report.Generate(data.Current, data.History, data.Presets, data.UserAgent, data.Now)
	return writeJSON(w, r)
}

// SnapshotFormatter writes the full-state snapshot
type SnapshotFormatter struct{}

func NewSnapshotFormatter() *SnapshotFormatter {
	return &SnapshotFormatter{}
}

func (f *SnapshotFormatter) Format(w io.Writer, data ViewportData) error {
	s := report.BuildSnapshot(data.Current, data.History, data.Thresholds, data.Now)
	return writeJSON(w, s)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoded, err := report.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(encoded, '\n')); err != nil {
		return err
	}
	return nil
}
