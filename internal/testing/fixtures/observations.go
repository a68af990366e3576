// Package fixtures builds deterministic viewport data for tests.
package fixtures

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/data/store"
)

// BaseTime is the timestamp of the first generated observation
var BaseTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

// ObservationGenerator produces distinct observations one second apart
type ObservationGenerator struct {
	next  time.Time
	count int
}

func NewObservationGenerator() *ObservationGenerator {
	return &ObservationGenerator{next: BaseTime}
}

// Next returns a new landscape observation whose width encodes its sequence number
func (g *ObservationGenerator) Next() model.Observation {
	g.count++
	obs, err := model.NewObservation(1000+g.count, 700, 1.0, g.next)
	if err != nil {
		panic(err)
	}
	g.next = g.next.Add(time.Second)
	return obs
}

// At returns an observation of the given size at the generator's clock
func (g *ObservationGenerator) At(width, height int, density float64) model.Observation {
	obs, err := model.NewObservation(width, height, density, g.next)
	if err != nil {
		panic(err)
	}
	g.next = g.next.Add(time.Second)
	return obs
}

// Clock is a manually advanced clock
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var ErrInjected = errors.New("injected store failure")

// FailingStore wraps a store and fails writes while Fail is set
type FailingStore struct {
	store.Store
	mu   sync.Mutex
	fail bool
}

func NewFailingStore(inner store.Store) *FailingStore {
	return &FailingStore{Store: inner}
}

// SetFail toggles write failures
func (s *FailingStore) SetFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *FailingStore) failing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail
}

func (s *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failing() {
		return ErrInjected
	}
	return s.Store.Set(ctx, key, value)
}

func (s *FailingStore) Delete(ctx context.Context, key string) error {
	if s.failing() {
		return ErrInjected
	}
	return s.Store.Delete(ctx, key)
}
