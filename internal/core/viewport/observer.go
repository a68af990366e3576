package viewport

import (
	"context"
	"fmt"
	"sync"

	"github.com/penwyp/go-viewport-monitor/internal/core/history"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// Update is delivered to subscribers after each completed sample cycle
type Update struct {
	Current model.Observation
	Entry   model.HistoryEntry
	History []model.HistoryEntry
	Err     error // non-nil when the history write failed; Current is still updated
}

// Observer runs the sample -> set current -> append cycle and fans out updates
type Observer struct {
	sampler *Sampler
	history *history.Manager

	mu          sync.Mutex // serializes cycles
	stateMu     sync.RWMutex
	current     model.Observation
	hasCurrent  bool
	subscribers map[int]func(Update)
	order       []int
	nextSubID   int
}

// NewObserver wires a sampler to a history manager
func NewObserver(sampler *Sampler, manager *history.Manager) *Observer {
	return &Observer{
		sampler:     sampler,
		history:     manager,
		subscribers: make(map[int]func(Update)),
	}
}

// Start loads persisted history and performs the startup sample
func (o *Observer) Start(ctx context.Context) (Update, error) {
	loaded := o.LoadHistory(ctx)
	util.LogDebugf("Observer starting with %d persisted entries", len(loaded))
	return o.SampleNow(ctx)
}

// LoadHistory reloads the persisted history without sampling
func (o *Observer) LoadHistory(ctx context.Context) []model.HistoryEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.Load(ctx)
}

// SampleNow performs one full cycle. Subscribers are called synchronously in
// subscription order after the cycle completes, even when the append failed.
func (o *Observer) SampleNow(ctx context.Context) (Update, error) {
	o.mu.Lock()
	obs := o.sampler.Sample()

	o.stateMu.Lock()
	o.current = obs
	o.hasCurrent = true
	o.stateMu.Unlock()

	entry, err := o.history.Append(ctx, obs)
	if err != nil {
		err = fmt.Errorf("failed to record observation: %w", err)
		util.LogWarn("Observation not recorded", util.F("error", err.Error()))
	}
	update := Update{Current: obs, Entry: entry, History: o.history.Entries(), Err: err}
	subs := o.subscriberList()
	o.mu.Unlock()

	for _, fn := range subs {
		fn(update)
	}
	return update, err
}

// Current returns the latest observation and whether one exists yet
func (o *Observer) Current() (model.Observation, bool) {
	o.stateMu.RLock()
	defer o.stateMu.RUnlock()
	return o.current, o.hasCurrent
}

// History returns a copy of the history, newest first
func (o *Observer) History() []model.HistoryEntry {
	return o.history.Entries()
}

// HistoryCap returns the history capacity
func (o *Observer) HistoryCap() int {
	return o.history.Cap()
}

// ClearHistory deletes the persisted history
func (o *Observer) ClearHistory(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.Clear(ctx)
}

// RemoveEntry drops a single history entry by id
func (o *Observer) RemoveEntry(ctx context.Context, id string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.Remove(ctx, id)
}

// Subscribe registers fn for updates and returns a function that removes it
func (o *Observer) Subscribe(fn func(Update)) func() {
	o.stateMu.Lock()
	defer o.stateMu.Unlock()

	id := o.nextSubID
	o.nextSubID++
	o.subscribers[id] = fn
	o.order = append(o.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.stateMu.Lock()
			defer o.stateMu.Unlock()
			delete(o.subscribers, id)
			for i, sid := range o.order {
				if sid == id {
					o.order = append(o.order[:i], o.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (o *Observer) subscriberList() []func(Update) {
	o.stateMu.RLock()
	defer o.stateMu.RUnlock()
	subs := make([]func(Update), 0, len(o.order))
	for _, id := range o.order {
		subs = append(subs, o.subscribers[id])
	}
	return subs
}
