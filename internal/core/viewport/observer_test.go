package viewport

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/history"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/data/store"
	"github.com/penwyp/go-viewport-monitor/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestObserver(env Environment, s store.Store) (*Observer, *fixtures.Clock) {
	clock := fixtures.NewClock(fixtures.BaseTime)
	return NewObserver(NewSamplerWithClock(env, clock.Now), history.NewManager(s, 50)), clock
}

func TestObserverStartPerformsStartupSample(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestObserver(NewStaticEnvironment(1920, 1080, 1), store.NewMemoryStore())

	_, ok := o.Current()
	assert.False(t, ok)

	update, err := o.Start(ctx)
	require.NoError(t, err)

	current, ok := o.Current()
	require.True(t, ok)
	assert.Equal(t, update.Current, current)
	require.Len(t, o.History(), 1)
	assert.Equal(t, current, o.History()[0].Observation)
}

func TestObserverStartKeepsPersistedHistory(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	first, _ := newTestObserver(NewStaticEnvironment(800, 600, 1), s)
	_, err := first.Start(ctx)
	require.NoError(t, err)

	second, clock := newTestObserver(NewStaticEnvironment(1024, 768, 2), s)
	clock.Advance(time.Minute)
	_, err = second.Start(ctx)
	require.NoError(t, err)

	entries := second.History()
	require.Len(t, entries, 2)
	assert.Equal(t, 1024, entries[0].Width)
	assert.Equal(t, 800, entries[1].Width)
}

func TestObserverSubscribersCalledInOrder(t *testing.T) {
	ctx := context.Background()
	env := NewStaticEnvironment(800, 600, 1)
	o, clock := newTestObserver(env, store.NewMemoryStore())

	var calls []string
	o.Subscribe(func(u Update) { calls = append(calls, "a") })
	unsubscribe := o.Subscribe(func(u Update) { calls = append(calls, "b") })
	o.Subscribe(func(u Update) { calls = append(calls, "c") })

	_, err := o.SampleNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	unsubscribe()
	unsubscribe()
	calls = nil
	clock.Advance(time.Second)
	env.Measurement.Width = 900

	update, err := o.SampleNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, calls)
	assert.Equal(t, 900, update.Current.Width)
	assert.Len(t, update.History, 2)
}

func TestObserverAppendFailureKeepsCurrent(t *testing.T) {
	ctx := context.Background()
	s := fixtures.NewFailingStore(store.NewMemoryStore())
	o, _ := newTestObserver(NewStaticEnvironment(640, 480, 1), s)

	s.SetFail(true)
	var got Update
	o.Subscribe(func(u Update) { got = u })

	_, err := o.SampleNow(ctx)
	require.ErrorIs(t, err, fixtures.ErrInjected)
	assert.ErrorIs(t, got.Err, fixtures.ErrInjected)

	current, ok := o.Current()
	assert.True(t, ok)
	assert.Equal(t, 640, current.Width)
	assert.Empty(t, o.History())
}

func TestObserverClearAndRemove(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	o, clock := newTestObserver(NewStaticEnvironment(800, 600, 1), s)

	a, err := o.SampleNow(ctx)
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = o.SampleNow(ctx)
	require.NoError(t, err)

	removed, err := o.RemoveEntry(ctx, a.Entry.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, o.History(), 1)

	require.NoError(t, o.ClearHistory(ctx))
	assert.Empty(t, o.History())
	assert.False(t, s.Has(model.HistoryKey))
}

func TestObserverConcurrentSamplesDoNotOverlap(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestObserver(NewStaticEnvironment(800, 600, 1), store.NewMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.SampleNow(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries := o.History()
	require.Len(t, entries, 20)
	seen := make(map[string]bool)
	for _, e := range entries {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Equal(t, 50, o.HistoryCap())
}
