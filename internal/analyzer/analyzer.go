// Package analyzer runs one-shot viewport analyses: sample (or reuse the
// newest history entry), check thresholds, rank presets and print the result.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/device"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/core/threshold"
	"github.com/penwyp/go-viewport-monitor/internal/core/viewport"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/interaction"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// FormatDevices selects the preset ranking table
const FormatDevices = "devices"

type Config struct {
	OutputFormat string
	// Record takes and persists a new sample; otherwise the newest history
	// entry stands in for the current viewport.
	Record bool
	// Limit caps the printed history rows (0 = unlimited). Sort and limit
	// only shape the row based formats; reports keep the newest entries.
	Limit     int
	SortBy    string
	Ascending bool
	UserAgent string
}

type Analyzer struct {
	config     *Config
	observer   *viewport.Observer
	thresholds *threshold.Manager
	presets    []model.DevicePreset
	now        func() time.Time
}

func New(config *Config, observer *viewport.Observer, thresholds *threshold.Manager) *Analyzer {
	return &Analyzer{
		config:     config,
		observer:   observer,
		thresholds: thresholds,
		presets:    model.DevicePresets(),
		now:        time.Now,
	}
}

// WithClock replaces the wall clock used for report timestamps
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Analyze gathers the viewport data without printing it
func (a *Analyzer) Analyze(ctx context.Context) (formatter.ViewportData, error) {
	startTime := time.Now()

	// Phase 1: Load thresholds
	t := a.thresholds.Load(ctx)

	// Phase 2: Load history and take the current sample
	var current model.Observation
	if a.config.Record {
		update, err := a.observer.Start(ctx)
		if err != nil {
			return formatter.ViewportData{}, fmt.Errorf("failed to record sample: %w", err)
		}
		current = update.Current
	} else {
		a.observer.LoadHistory(ctx)
		if history := a.observer.History(); len(history) > 0 {
			current = history[0].Observation
		}
	}
	util.LogDebugf("Phase 2 - sampling duration: %v", time.Since(startTime))

	// Phase 3: Order and limit a display copy; History stays newest first
	history := a.observer.History()
	display, err := a.displayHistory(history)
	if err != nil {
		return formatter.ViewportData{}, err
	}

	data := formatter.ViewportData{
		Current:        current,
		History:        history,
		DisplayHistory: display,
		HistoryCap:     a.observer.HistoryCap(),
		Thresholds:     t,
		Presets:        a.presets,
		UserAgent:      a.config.UserAgent,
		Now:            a.now(),
	}
	if current.Width > 0 {
		data.Status = threshold.Check(t, current.Width, current.Height)
		data.Rankings = device.RankObservation(current, a.presets)
	}

	util.LogDebugf("Analysis finished in %v (%d history entries)", time.Since(startTime), len(history))
	return data, nil
}

// displayHistory applies the configured sort and limit to a copy of history.
// It returns nil when neither is set.
func (a *Analyzer) displayHistory(history []model.HistoryEntry) ([]model.HistoryEntry, error) {
	if a.config.SortBy == "" && a.config.Limit <= 0 {
		return nil, nil
	}

	display := history
	if a.config.SortBy != "" {
		field, err := interaction.ParseSortField(a.config.SortBy)
		if err != nil {
			return nil, err
		}
		sorter := interaction.NewHistorySorter()
		sorter.SetField(field)
		if a.config.Ascending {
			sorter.SetOrder(interaction.SortAscending)
		}
		display = sorter.Sort(history)
	}
	if a.config.Limit > 0 && len(display) > a.config.Limit {
		display = display[:a.config.Limit]
	}
	return display, nil
}

// Run analyzes and writes the result to w in the configured format
func (a *Analyzer) Run(ctx context.Context, w io.Writer) error {
	util.LogInfo("Starting viewport analysis...")

	data, err := a.Analyze(ctx)
	if err != nil {
		return err
	}

	f, err := a.formatterFor(a.config.OutputFormat)
	if err != nil {
		return err
	}
	return f.Format(w, data)
}

func (a *Analyzer) formatterFor(format string) (formatter.Formatter, error) {
	if format == FormatDevices {
		return formatter.NewDevicesFormatter(), nil
	}
	return formatter.New(format)
}
