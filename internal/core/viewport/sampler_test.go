package viewport

import (
	"testing"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
)

func TestSamplerFullHD(t *testing.T) {
	clock := fixtures.NewClock(fixtures.BaseTime)
	s := NewSamplerWithClock(NewStaticEnvironment(1920, 1080, 1.0), clock.Now)

	obs := s.Sample()
	assert.Equal(t, 1920, obs.Width)
	assert.Equal(t, 1080, obs.Height)
	assert.InDelta(t, 1.78, obs.AspectRatio, 0.005)
	assert.Equal(t, model.OrientationLandscape, obs.Orientation)
	assert.Equal(t, 1.0, obs.PixelDensity)
	assert.Equal(t, fixtures.BaseTime.UnixMilli(), obs.Timestamp)
}

func TestSamplerClampsInvalidMeasurements(t *testing.T) {
	tests := []struct {
		name    string
		m       Measurement
		width   int
		height  int
		density float64
	}{
		{"zero_size", Measurement{0, 0, 2}, 1, 1, 2},
		{"negative_width", Measurement{-5, 600, 1}, 1, 600, 1},
		{"zero_density", Measurement{800, 600, 0}, 800, 600, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &StaticEnvironment{Measurement: tt.m}
			obs := NewSampler(env).Sample()
			assert.Equal(t, tt.width, obs.Width)
			assert.Equal(t, tt.height, obs.Height)
			assert.Equal(t, tt.density, obs.PixelDensity)
		})
	}
}

func TestSamplerUsesClock(t *testing.T) {
	clock := fixtures.NewClock(fixtures.BaseTime)
	s := NewSamplerWithClock(NewStaticEnvironment(800, 800, 1), clock.Now)

	first := s.Sample()
	clock.Advance(1500 * time.Millisecond)
	second := s.Sample()

	assert.Equal(t, model.OrientationSquare, first.Orientation)
	assert.Equal(t, first.Timestamp+1500, second.Timestamp)
}
