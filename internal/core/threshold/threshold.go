// Package threshold persists viewport bounds and classifies observations against them.
package threshold

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/data/store"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// Status is the result of checking a viewport against thresholds
type Status string

const (
	StatusBelowMin    Status = "below-min"
	StatusAboveMax    Status = "above-max"
	StatusWithinRange Status = "within-range"
)

// Check classifies width/height. Falling below either minimum wins over
// exceeding a maximum.
func Check(t model.Thresholds, width, height int) Status {
	if width < t.MinWidth || height < t.MinHeight {
		return StatusBelowMin
	}
	if width > t.MaxWidth || height > t.MaxHeight {
		return StatusAboveMax
	}
	return StatusWithinRange
}

// Manager holds the active thresholds and their persisted copy
type Manager struct {
	store   store.Store
	current model.Thresholds
	mu      sync.RWMutex
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s, current: model.DefaultThresholds()}
}

// Load reads persisted thresholds; missing or invalid data leaves the defaults
func (m *Manager) Load(ctx context.Context) model.Thresholds {
	loaded := model.DefaultThresholds()

	data, err := m.store.Get(ctx, model.ThresholdsKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		util.LogWarn("Failed to read thresholds, using defaults", util.F("error", err.Error()))
	default:
		var t model.Thresholds
		if err := sonic.Unmarshal(data, &t); err != nil {
			util.LogWarn("Corrupt thresholds, using defaults", util.F("error", err.Error()))
		} else if err := t.Validate(); err != nil {
			util.LogWarn("Invalid thresholds, using defaults", util.F("error", err.Error()))
		} else {
			loaded = t
		}
	}

	m.mu.Lock()
	m.current = loaded
	m.mu.Unlock()
	return loaded
}

// Save validates and persists t, then makes it current
func (m *Manager) Save(ctx context.Context, t model.Thresholds) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid thresholds: %w", err)
	}

	data, err := sonic.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode thresholds: %w", err)
	}
	if err := m.store.Set(ctx, model.ThresholdsKey, data); err != nil {
		return fmt.Errorf("failed to save thresholds: %w", err)
	}

	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
	return nil
}

// Reset removes persisted thresholds and restores the defaults
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.store.Delete(ctx, model.ThresholdsKey); err != nil {
		return fmt.Errorf("failed to reset thresholds: %w", err)
	}
	m.mu.Lock()
	m.current = model.DefaultThresholds()
	m.mu.Unlock()
	return nil
}

// Current returns the active thresholds
func (m *Manager) Current() model.Thresholds {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Status checks obs against the active thresholds
func (m *Manager) Status(obs model.Observation) Status {
	return Check(m.Current(), obs.Width, obs.Height)
}
