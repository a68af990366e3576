package model

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOrientation(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		expected Orientation
	}{
		{"full_hd_landscape", 1920, 1080, OrientationLandscape},
		{"phone_portrait", 390, 844, OrientationPortrait},
		{"exact_square", 800, 800, OrientationSquare},
		{"inside_band_wide", 1090, 1000, OrientationSquare},
		{"inside_band_tall", 1000, 1090, OrientationSquare},
		{"just_outside_band_wide", 1101, 1000, OrientationLandscape},
		{"just_outside_band_tall", 899, 1000, OrientationPortrait},
		{"tiny_square", 3, 3, OrientationSquare},
		{"huge_square", 100000, 99000, OrientationSquare},
		{"huge_landscape", 200000, 100000, OrientationLandscape},
		{"tiny_portrait", 1, 2, OrientationPortrait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyOrientation(tt.width, tt.height))
		})
	}
}

func TestNewObservation(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	obs, err := NewObservation(1920, 1080, 1.0, now)
	require.NoError(t, err)

	assert.Equal(t, 1920, obs.Width)
	assert.Equal(t, 1080, obs.Height)
	assert.InDelta(t, 1.78, obs.AspectRatio, 0.005)
	assert.Equal(t, 1.0, obs.PixelDensity)
	assert.Equal(t, OrientationLandscape, obs.Orientation)
	assert.Equal(t, now.UnixMilli(), obs.Timestamp)
	assert.True(t, obs.Time().Equal(now))
}

func TestNewObservationRejectsInvalidInput(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		width   int
		height  int
		density float64
	}{
		{"zero_width", 0, 100, 1},
		{"negative_height", 100, -1, 1},
		{"zero_density", 100, 100, 0},
		{"negative_density", 100, 100, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewObservation(tt.width, tt.height, tt.density, now)
			assert.Error(t, err)
		})
	}

	_, err := NewObservation(0, 0, 1, now)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestHistoryEntryJSONShape(t *testing.T) {
	obs, err := NewObservation(390, 844, 3, time.UnixMilli(1700000000000))
	require.NoError(t, err)

	data, err := sonic.Marshal(HistoryEntry{Observation: obs, ID: "1700000000000"})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, sonic.Unmarshal(data, &fields))

	for _, key := range []string{"width", "height", "aspectRatio", "pixelDensity", "orientation", "timestamp", "id"} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "portrait", fields["orientation"])
	assert.Equal(t, "1700000000000", fields["id"])
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())

	assert.Error(t, Thresholds{MinWidth: 500, MaxWidth: 400, MinHeight: 1, MaxHeight: 2}.Validate())
	assert.Error(t, Thresholds{MinWidth: 1, MaxWidth: 2, MinHeight: 5, MaxHeight: 4}.Validate())
	assert.Error(t, Thresholds{MinWidth: 0, MaxWidth: 2, MinHeight: 1, MaxHeight: 4}.Validate())
}

func TestDevicePresets(t *testing.T) {
	presets := DevicePresets()
	require.Len(t, presets, 8)

	assert.Equal(t, "iphone13", presets[0].ID)
	assert.Equal(t, 3840, presets[7].Width)
	assert.Equal(t, 2160, presets[7].Height)

	// Mutating the returned slice must not affect the seed table
	presets[0].Width = 1
	assert.Equal(t, 390, DevicePresets()[0].Width)

	counts := map[DeviceType]int{}
	for _, p := range DevicePresets() {
		counts[p.Type]++
	}
	assert.Equal(t, 4, counts[DeviceMobile])
	assert.Equal(t, 1, counts[DeviceTablet])
	assert.Equal(t, 3, counts[DeviceDesktop])
}
