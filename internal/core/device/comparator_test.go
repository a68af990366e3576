package device

import (
	"testing"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(rankings []Ranking, id string) int {
	for i, r := range rankings {
		if r.Preset.ID == id {
			return i
		}
	}
	return -1
}

func TestRankOrdersByDistance(t *testing.T) {
	rankings := Rank(1000, 800, model.DevicePresets())
	require.Len(t, rankings, 8)

	for i := 1; i < len(rankings); i++ {
		assert.LessOrEqual(t, rankings[i-1].Distance, rankings[i].Distance)
	}

	iphone := rankings[indexOf(rankings, "iphone13")]
	fullHD := rankings[indexOf(rankings, "desktopFullHD")]
	assert.InDelta(t, 611.6, iphone.Distance, 0.1)
	assert.InDelta(t, 961.7, fullHD.Distance, 0.1)
	assert.Less(t, indexOf(rankings, "iphone13"), indexOf(rankings, "desktopFullHD"))

	assert.Equal(t, "desktopHD", rankings[0].Preset.ID)
}

func TestRankIsStableForTies(t *testing.T) {
	// iphone13 and iphone13Pro share dimensions and must keep table order
	for i := 0; i < 5; i++ {
		rankings := Rank(390, 844, model.DevicePresets())
		assert.Equal(t, "iphone13", rankings[0].Preset.ID)
		assert.Equal(t, "iphone13Pro", rankings[1].Preset.ID)
		assert.Equal(t, 0.0, rankings[0].Distance)
		assert.Equal(t, 100.0, rankings[0].Similarity)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		distance float64
		expected float64
	}{
		{0, 100},
		{500, 95},
		{10000, 0},
		{25000, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Similarity(tt.distance), 1e-9)
	}
}

func TestClosest(t *testing.T) {
	_, ok := Closest(100, 100, nil)
	assert.False(t, ok)

	best, ok := Closest(3800, 2100, model.DevicePresets())
	require.True(t, ok)
	assert.Equal(t, "desktop4K", best.Preset.ID)

	obs, err := model.NewObservation(1920, 1080, 1, time.Unix(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "desktopFullHD", RankObservation(obs, model.DevicePresets())[0].Preset.ID)
}
