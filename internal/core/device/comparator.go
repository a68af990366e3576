// Package device ranks reference device presets by closeness to a viewport.
package device

import (
	"math"
	"sort"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
)

// Ranking is a preset with its distance from the current viewport
type Ranking struct {
	Preset     model.DevicePreset `json:"preset"`
	Distance   float64            `json:"distance"`
	Similarity float64            `json:"similarity"` // 0-100
}

// Rank orders presets by Euclidean distance in (width, height) space, closest
// first. Equal distances keep the input order.
func Rank(width, height int, presets []model.DevicePreset) []Ranking {
	rankings := make([]Ranking, 0, len(presets))
	for _, p := range presets {
		d := Distance(width, height, p.Width, p.Height)
		rankings = append(rankings, Ranking{
			Preset:     p,
			Distance:   d,
			Similarity: Similarity(d),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Distance < rankings[j].Distance
	})
	return rankings
}

// RankObservation ranks presets against an observation
func RankObservation(obs model.Observation, presets []model.DevicePreset) []Ranking {
	return Rank(obs.Width, obs.Height, presets)
}

// Closest returns the best match, false when presets is empty
func Closest(width, height int, presets []model.DevicePreset) (Ranking, bool) {
	rankings := Rank(width, height, presets)
	if len(rankings) == 0 {
		return Ranking{}, false
	}
	return rankings[0], true
}

func Distance(w1, h1, w2, h2 int) float64 {
	dw := float64(w1 - w2)
	dh := float64(h1 - h2)
	return math.Sqrt(dw*dw + dh*dh)
}

// Similarity maps a distance onto 0-100; it loses one point per 100 pixels
func Similarity(distance float64) float64 {
	return math.Max(0, 100-distance/100)
}
