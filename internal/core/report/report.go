// Package report builds the exportable viewport report and full-state snapshot.
package report

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// Version is stamped into the client identifier; set by the build
var Version = "dev"

// Generate builds a report from the given state. It has no side effects;
// history and presets are copied, history limited to the newest entries.
func Generate(current model.Observation, history []model.HistoryEntry, presets []model.DevicePreset, userAgent string, now time.Time) model.Report {
	n := min(len(history), model.ReportHistoryLimit)
	recent := make([]model.HistoryEntry, n)
	copy(recent, history[:n])

	presetCopy := make([]model.DevicePreset, len(presets))
	copy(presetCopy, presets)

	return model.Report{
		Title:           model.ReportTitle,
		GeneratedAt:     util.FormatISO(now),
		CurrentViewport: current,
		History:         recent,
		UserAgent:       userAgent,
		DevicePresets:   presetCopy,
	}
}

// BuildSnapshot bundles the full history and thresholds
func BuildSnapshot(current model.Observation, history []model.HistoryEntry, thresholds model.Thresholds, now time.Time) model.Snapshot {
	all := make([]model.HistoryEntry, len(history))
	copy(all, history)

	return model.Snapshot{
		CurrentViewport: current,
		History:         all,
		Thresholds:      thresholds,
		ExportDate:      util.FormatISO(now),
	}
}

// Marshal encodes v as two-space indented JSON
func Marshal(v interface{}) ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a report produced by Marshal
func Unmarshal(data []byte) (model.Report, error) {
	var r model.Report
	if err := sonic.ConfigStd.Unmarshal(data, &r); err != nil {
		return model.Report{}, fmt.Errorf("failed to decode report: %w", err)
	}
	return r, nil
}

// UserAgent identifies this client in exported reports
func UserAgent() string {
	termName := os.Getenv("TERM")
	if termName == "" {
		termName = "unknown"
	}
	return fmt.Sprintf("go-viewport-monitor/%s (%s; %s; %s)", Version, runtime.GOOS, runtime.GOARCH, termName)
}

// ReportFileName is the download name for a report generated at now
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("viewport-report-%d.json", now.UnixMilli())
}

// CSVFileName is the download name for a CSV history export
func CSVFileName(now time.Time) string {
	return fmt.Sprintf("viewport-history-%s.csv", util.GetTimeProvider().Format(now, "2006-01-02"))
}

// SnapshotFileName is the download name for a snapshot export
func SnapshotFileName(now time.Time) string {
	return fmt.Sprintf("viewport-checker-%s.json", util.GetTimeProvider().Format(now, "2006-01-02"))
}
