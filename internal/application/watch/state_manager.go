package watch

import (
	"sync"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
)

// StateManager manages application state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	// Viewport state
	current    model.Observation
	hasCurrent bool
	history    []model.HistoryEntry

	// Interaction state
	interactionState model.InteractionState

	// Metadata
	lastSample int64 // Timestamp of last completed sample
	samples    int
}

// NewStateManager creates a new StateManager instance
func NewStateManager() *StateManager {
	return &StateManager{
		history:          make([]model.HistoryEntry, 0),
		interactionState: model.InteractionState{},
	}
}

// SetViewport records the outcome of a sample cycle
func (sm *StateManager) SetViewport(current model.Observation, history []model.HistoryEntry) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.current = current
	sm.hasCurrent = true
	sm.history = history
	sm.lastSample = current.Timestamp
	sm.samples++
}

// SetHistory replaces the history after a clear or remove
func (sm *StateManager) SetHistory(history []model.HistoryEntry) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.history = history
}

// GetViewport returns the current observation and a copy of the history
func (sm *StateManager) GetViewport() (model.Observation, bool, []model.HistoryEntry) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]model.HistoryEntry, len(sm.history))
	copy(history, sm.history)
	return sm.current, sm.hasCurrent, history
}

// GetInteractionState returns current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	updateFunc(&sm.interactionState)
}

// SetStatusMessage shows message at the bottom of the screen
func (sm *StateManager) SetStatusMessage(message string) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.StatusMessage = message
	})
}

// GetLastSample returns the timestamp of the last completed sample
func (sm *StateManager) GetLastSample() int64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.lastSample
}

// SampleCount returns how many sample cycles have been recorded
func (sm *StateManager) SampleCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.samples
}
