package watch

import (
	"testing"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
)

func TestStateManagerViewport(t *testing.T) {
	sm := NewStateManager()
	_, ok, history := sm.GetViewport()
	assert.False(t, ok)
	assert.Empty(t, history)

	obs := fixtures.NewObservationGenerator().Next()
	entries := []model.HistoryEntry{{Observation: obs, ID: "1"}}
	sm.SetViewport(obs, entries)

	current, ok, history := sm.GetViewport()
	assert.True(t, ok)
	assert.Equal(t, obs, current)
	assert.Equal(t, entries, history)
	assert.Equal(t, obs.Timestamp, sm.GetLastSample())
	assert.Equal(t, 1, sm.SampleCount())

	history[0].Width = -1
	_, _, again := sm.GetViewport()
	assert.NotEqual(t, -1, again[0].Width)

	sm.SetHistory(nil)
	_, _, history = sm.GetViewport()
	assert.Empty(t, history)
}

func TestStateManagerInteraction(t *testing.T) {
	sm := NewStateManager()
	sm.SetStatusMessage("hello")
	sm.UpdateInteractionState(func(s *model.InteractionState) { s.ShowHelp = true })

	state := sm.GetInteractionState()
	assert.Equal(t, "hello", state.StatusMessage)
	assert.True(t, state.ShowHelp)
}
