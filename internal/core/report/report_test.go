package report

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/testing/fixtures"
	"github.com/penwyp/go-viewport-monitor/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHistory(n int) []model.HistoryEntry {
	gen := fixtures.NewObservationGenerator()
	entries := make([]model.HistoryEntry, 0, n)
	for i := 0; i < n; i++ {
		obs := gen.Next()
		entries = append([]model.HistoryEntry{{Observation: obs, ID: strconv.FormatInt(obs.Timestamp, 10)}}, entries...)
	}
	return entries
}

func TestGenerateLimitsHistory(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 123000000, time.UTC)
	current := fixtures.NewObservationGenerator().At(1920, 1080, 1)

	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"empty", 0, 0},
		{"short", 4, 4},
		{"exact", 10, 10},
		{"long", 25, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := buildHistory(tt.size)
			r := Generate(current, history, model.DevicePresets(), "agent", now)

			require.Len(t, r.History, tt.expected)
			if tt.expected > 0 {
				assert.Equal(t, history[:tt.expected], r.History)
			}
			assert.Equal(t, model.ReportTitle, r.Title)
			assert.Equal(t, "2024-03-01T12:00:00.123Z", r.GeneratedAt)
			assert.Len(t, r.DevicePresets, 8)
		})
	}
}

func TestGenerateCopiesInputs(t *testing.T) {
	history := buildHistory(3)
	presets := model.DevicePresets()
	r := Generate(history[0].Observation, history, presets, "agent", time.Now())

	history[0].Width = -1
	presets[0].Width = -1
	assert.NotEqual(t, -1, r.History[0].Width)
	assert.NotEqual(t, -1, r.DevicePresets[0].Width)
}

func TestMarshalRoundTrip(t *testing.T) {
	history := buildHistory(12)
	current, err := model.NewObservation(1366, 768, 1.25, fixtures.BaseTime)
	require.NoError(t, err)

	r := Generate(current, history, model.DevicePresets(), UserAgent(), fixtures.BaseTime)
	data, err := Marshal(r)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n  \"title\": \"Viewport Report\""), text[:40])

	// Keys appear in declaration order
	order := []string{`"title"`, `"generatedAt"`, `"currentViewport"`, `"history"`, `"userAgent"`, `"devicePresets"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		require.Greater(t, idx, last, key)
		last = idx
	}

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, current, decoded.CurrentViewport)
	assert.Equal(t, history[:10], decoded.History)
	assert.Equal(t, r, decoded)
}

func TestBuildSnapshotKeepsFullHistory(t *testing.T) {
	history := buildHistory(30)
	s := BuildSnapshot(history[0].Observation, history, model.DefaultThresholds(), fixtures.BaseTime)

	assert.Len(t, s.History, 30)
	assert.Equal(t, model.DefaultThresholds(), s.Thresholds)
	assert.Equal(t, "2024-01-15T10:00:00.000Z", s.ExportDate)

	data, err := Marshal(s)
	require.NoError(t, err)
	for _, key := range []string{"currentViewport", "history", "thresholds", "exportDate", "minWidth"} {
		assert.Contains(t, string(data), key)
	}
}

func TestUserAgent(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	ua := UserAgent()
	assert.True(t, strings.HasPrefix(ua, "go-viewport-monitor/"))
	assert.Contains(t, ua, "xterm-256color")

	t.Setenv("TERM", "")
	assert.Contains(t, UserAgent(), "unknown")
}

func TestFileNames(t *testing.T) {
	require.NoError(t, util.InitializeTimeProvider("UTC"))
	t.Cleanup(func() { _ = util.InitializeTimeProvider("Local") })

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "viewport-report-1705312800000.json", ReportFileName(now))
	assert.Equal(t, "viewport-history-2024-01-15.csv", CSVFileName(now))
	assert.Equal(t, "viewport-checker-2024-01-15.json", SnapshotFileName(now))
}
