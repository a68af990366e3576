// Package history keeps the bounded, newest-first log of viewport observations
// and mirrors it into a blob store after every change.
package history

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/data/store"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// Manager owns the in-memory history and its persisted copy.
// After every Append/Clear/Remove returns, memory and storage hold the same sequence.
type Manager struct {
	store   store.Store
	key     string
	cap     int
	entries []model.HistoryEntry
	lastID  int64
	mu      sync.Mutex
}

// NewManager creates a manager; a non-positive cap uses model.DefaultHistoryCap
func NewManager(s store.Store, capacity int) *Manager {
	if capacity <= 0 {
		capacity = model.DefaultHistoryCap
	}
	return &Manager{
		store:   s,
		key:     model.HistoryKey,
		cap:     capacity,
		entries: make([]model.HistoryEntry, 0),
	}
}

// Load reads the persisted history. Missing or corrupt data yields an empty
// history; the failure is logged, never returned. A history longer than the
// cap is trimmed to the newest entries and written back.
func (m *Manager) Load(ctx context.Context) []model.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = m.readPersisted(ctx)
	if len(m.entries) > m.cap {
		util.LogInfof("Persisted history has %d entries, keeping newest %d", len(m.entries), m.cap)
		m.entries = m.entries[:m.cap]
		if err := m.persist(ctx, m.entries); err != nil {
			util.LogWarn("Failed to save trimmed history", util.F("error", err.Error()))
		}
	}

	m.lastID = 0
	for _, entry := range m.entries {
		if id, err := strconv.ParseInt(entry.ID, 10, 64); err == nil && id > m.lastID {
			m.lastID = id
		}
	}

	util.LogDebugf("Loaded %d history entries", len(m.entries))
	return m.snapshot()
}

func (m *Manager) readPersisted(ctx context.Context) []model.HistoryEntry {
	data, err := m.store.Get(ctx, m.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.LogInfo("No existing viewport history found, starting fresh")
		} else {
			util.LogWarnf("Failed to read viewport history, starting fresh: %v", err)
		}
		return make([]model.HistoryEntry, 0)
	}

	var entries []model.HistoryEntry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		util.LogWarnf("Viewport history is not valid JSON, starting fresh: %v", err)
		return make([]model.HistoryEntry, 0)
	}
	if entries == nil {
		entries = make([]model.HistoryEntry, 0)
	}
	return entries
}

// Append prepends obs, drops anything beyond the cap and persists the result.
// If persisting fails the in-memory history is left untouched.
func (m *Manager) Append(ctx context.Context, obs model.Observation) (model.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID(obs.Timestamp)
	entry := model.HistoryEntry{Observation: obs, ID: strconv.FormatInt(id, 10)}

	size := len(m.entries) + 1
	if size > m.cap {
		size = m.cap
	}
	next := make([]model.HistoryEntry, 0, size)
	next = append(next, entry)
	next = append(next, m.entries[:size-1]...)

	if err := m.persist(ctx, next); err != nil {
		return model.HistoryEntry{}, err
	}

	if dropped := len(m.entries) + 1 - len(next); dropped > 0 {
		util.LogDebugf("History cap %d reached, evicted %d oldest entries", m.cap, dropped)
	}
	m.entries = next
	m.lastID = id
	return entry, nil
}

// nextID returns a strictly increasing id derived from the sample timestamp
func (m *Manager) nextID(timestamp int64) int64 {
	if timestamp <= m.lastID {
		return m.lastID + 1
	}
	return timestamp
}

// Clear removes the persisted key entirely, then empties memory
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, m.key); err != nil {
		return fmt.Errorf("failed to clear viewport history: %w", err)
	}
	m.entries = make([]model.HistoryEntry, 0)
	util.LogInfo("Viewport history cleared")
	return nil
}

// Remove deletes a single entry by id. It reports whether the id was present.
func (m *Manager) Remove(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]model.HistoryEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		if entry.ID != id {
			next = append(next, entry)
		}
	}
	if len(next) == len(m.entries) {
		return false, nil
	}

	if err := m.persist(ctx, next); err != nil {
		return false, err
	}
	m.entries = next
	return true, nil
}

func (m *Manager) persist(ctx context.Context, entries []model.HistoryEntry) error {
	data, err := sonic.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal viewport history: %w", err)
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		return fmt.Errorf("failed to save viewport history: %w", err)
	}
	return nil
}

// Entries returns a copy of the history, newest first
func (m *Manager) Entries() []model.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Manager) snapshot() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of entries held
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Cap returns the maximum number of entries retained
func (m *Manager) Cap() int {
	return m.cap
}
