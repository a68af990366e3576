// Package viewport samples display geometry and drives the observe-append cycle.
package viewport

import (
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// Measurement is the raw geometry reported by an environment
type Measurement struct {
	Width        int
	Height       int
	PixelDensity float64
}

// Environment reports the current display geometry. Implementations are
// expected to always produce a measurement, falling back to defaults.
type Environment interface {
	Measure() Measurement
}

// StaticEnvironment always reports the same measurement
type StaticEnvironment struct {
	Measurement Measurement
}

func NewStaticEnvironment(width, height int, density float64) *StaticEnvironment {
	return &StaticEnvironment{Measurement: Measurement{Width: width, Height: height, PixelDensity: density}}
}

func (e *StaticEnvironment) Measure() Measurement {
	return e.Measurement
}

// Sampler turns environment measurements into observations
type Sampler struct {
	env Environment
	now func() time.Time
}

// NewSampler creates a sampler using the wall clock
func NewSampler(env Environment) *Sampler {
	return &Sampler{env: env, now: time.Now}
}

// NewSamplerWithClock creates a sampler with an injected clock
func NewSamplerWithClock(env Environment, now func() time.Time) *Sampler {
	return &Sampler{env: env, now: now}
}

// Sample reads the environment and returns a fresh observation. It never fails:
// non-positive dimensions are clamped to 1 and a non-positive density to 1.0.
func (s *Sampler) Sample() model.Observation {
	m := s.env.Measure()

	if m.Width <= 0 || m.Height <= 0 {
		util.LogWarnf("Environment reported invalid size %dx%d, clamping", m.Width, m.Height)
		m.Width = max(m.Width, 1)
		m.Height = max(m.Height, 1)
	}
	if !(m.PixelDensity > 0) {
		util.LogWarnf("Environment reported invalid pixel density %v, using 1.0", m.PixelDensity)
		m.PixelDensity = 1.0
	}

	obs, err := model.NewObservation(m.Width, m.Height, m.PixelDensity, s.now())
	if err != nil {
		// Unreachable after clamping, kept so the contract holds if validation tightens
		util.LogErrorf("Failed to build observation: %v", err)
		obs, _ = model.NewObservation(1, 1, 1.0, s.now())
	}
	return obs
}
