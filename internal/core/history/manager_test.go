package history

import (
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/data/store"
	"github.com/penwyp/go-viewport-monitor/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persisted(t *testing.T, s store.Store) []model.HistoryEntry {
	t.Helper()
	data, err := s.Get(context.Background(), model.HistoryKey)
	require.NoError(t, err)

	var entries []model.HistoryEntry
	require.NoError(t, sonic.Unmarshal(data, &entries))
	return entries
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), 0)
	assert.Equal(t, model.DefaultHistoryCap, m.Cap())
	assert.Equal(t, 0, m.Len())
	assert.NotNil(t, m.Entries())
}

func TestAppendPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	m := NewManager(s, 50)
	gen := fixtures.NewObservationGenerator()

	first, err := m.Append(ctx, gen.Next())
	require.NoError(t, err)
	second, err := m.Append(ctx, gen.Next())
	require.NoError(t, err)

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	assert.Equal(t, entries, persisted(t, s))
}

func TestAppendCapsHistory(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	m := NewManager(s, 50)
	gen := fixtures.NewObservationGenerator()

	original, err := m.Append(ctx, gen.Next())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	var last model.HistoryEntry
	for i := 0; i < 50; i++ {
		last, err = m.Append(ctx, gen.Next())
		require.NoError(t, err)
		assert.LessOrEqual(t, m.Len(), 50)
	}

	entries := m.Entries()
	require.Len(t, entries, 50)
	assert.Equal(t, last.ID, entries[0].ID)
	for _, entry := range entries {
		assert.NotEqual(t, original.ID, entry.ID, "oldest entry should have been evicted")
	}

	// Newest first: widths encode the sequence number and must be strictly decreasing
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].Width, entries[i].Width)
	}

	assert.Len(t, persisted(t, s), 50)
}

func TestAppendAssignsUniqueMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore(), 10)
	gen := fixtures.NewObservationGenerator()
	obs := gen.Next()

	// Identical timestamps must still produce unique ids
	a, err := m.Append(ctx, obs)
	require.NoError(t, err)
	b, err := m.Append(ctx, obs)
	require.NoError(t, err)

	assert.Equal(t, "1705312800000", a.ID)
	assert.Equal(t, "1705312800001", b.ID)
}

func TestClearDeletesKey(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	m := NewManager(s, 50)
	gen := fixtures.NewObservationGenerator()

	for i := 0; i < 3; i++ {
		_, err := m.Append(ctx, gen.Next())
		require.NoError(t, err)
	}

	require.NoError(t, m.Clear(ctx))
	assert.Equal(t, 0, m.Len())
	assert.False(t, s.Has(model.HistoryKey), "clear must delete the key, not write an empty array")

	reloaded := NewManager(s, 50)
	assert.Empty(t, reloaded.Load(ctx))
}

func TestLoadFailsSoft(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		data string
	}{
		{"corrupt_json", "{not json"},
		{"wrong_shape", `{"width": 1}`},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemoryStore()
			require.NoError(t, s.Set(ctx, model.HistoryKey, []byte(tt.data)))

			m := NewManager(s, 50)
			entries := m.Load(ctx)
			assert.NotNil(t, entries)
			assert.Empty(t, entries)
		})
	}

	t.Run("missing_key", func(t *testing.T) {
		m := NewManager(store.NewMemoryStore(), 50)
		assert.Empty(t, m.Load(ctx))
	})
}

func TestLoadRestoresAndTruncates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	gen := fixtures.NewObservationGenerator()

	writer := NewManager(s, 20)
	for i := 0; i < 20; i++ {
		_, err := writer.Append(ctx, gen.Next())
		require.NoError(t, err)
	}
	saved := writer.Entries()

	reader := NewManager(s, 5)
	loaded := reader.Load(ctx)
	require.Len(t, loaded, 5)
	assert.Equal(t, saved[:5], loaded)
	assert.Equal(t, loaded, persisted(t, s), "trimmed history is written back")

	// Ids continue after the newest persisted id
	next, err := reader.Append(ctx, loaded[0].Observation)
	require.NoError(t, err)
	assert.Greater(t, next.ID, loaded[0].ID)
}

func TestLoadTrimFailureStaysSoft(t *testing.T) {
	ctx := context.Background()
	s := fixtures.NewFailingStore(store.NewMemoryStore())
	gen := fixtures.NewObservationGenerator()

	writer := NewManager(s, 10)
	for i := 0; i < 10; i++ {
		_, err := writer.Append(ctx, gen.Next())
		require.NoError(t, err)
	}

	s.SetFail(true)
	reader := NewManager(s, 4)
	assert.Len(t, reader.Load(ctx), 4)
	assert.Len(t, persisted(t, s), 10)
}

func TestAppendRollsBackOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	s := fixtures.NewFailingStore(store.NewMemoryStore())
	m := NewManager(s, 50)
	gen := fixtures.NewObservationGenerator()

	kept, err := m.Append(ctx, gen.Next())
	require.NoError(t, err)

	s.SetFail(true)
	_, err = m.Append(ctx, gen.Next())
	require.ErrorIs(t, err, fixtures.ErrInjected)

	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, kept.ID, entries[0].ID)
	assert.Equal(t, entries, persisted(t, s))

	err = m.Clear(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	m := NewManager(s, 50)
	gen := fixtures.NewObservationGenerator()

	a, err := m.Append(ctx, gen.Next())
	require.NoError(t, err)
	b, err := m.Append(ctx, gen.Next())
	require.NoError(t, err)

	removed, err := m.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = m.Remove(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, removed)

	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, b.ID, entries[0].ID)
	assert.Equal(t, entries, persisted(t, s))
}

func TestEntriesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore(), 50)
	_, err := m.Append(ctx, fixtures.NewObservationGenerator().Next())
	require.NoError(t, err)

	entries := m.Entries()
	entries[0].Width = -1
	assert.NotEqual(t, -1, m.Entries()[0].Width)
}
