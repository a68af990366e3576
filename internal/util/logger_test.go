package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutputs(LevelWarn, NewConsoleOutput(&buf, FormatText))

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown", F("width", 80))
	logger.Errorf("failed: %d", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown width=80")
	assert.Contains(t, out, "[ERROR] failed: 42")
}

func TestLoggerWithFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutputs(LevelDebug, NewConsoleOutput(&buf, FormatText))

	logger.With(F("component", "observer")).Info("sampled", F("b", 2), F("a", 1))

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "sampled a=1 b=2 component=observer"), line)
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutputs(LevelInfo, NewConsoleOutput(&buf, FormatJSON))

	logger.Info("resize", F("height", 24))

	var entry map[string]interface{}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "resize", entry["message"])
}

func TestFileOutputCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger := NewLogger("debug", path, false)
	logger.Debug("hello")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] hello")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, LevelError, ParseLogLevel("error"))
	assert.Equal(t, LevelInfo, ParseLogLevel("bogus"))
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := SetLogger(NewLoggerWithOutputs(LevelDebug, NewConsoleOutput(&buf, FormatText)))
	defer SetLogger(prev)

	LogDebugf("size %dx%d", 80, 24)
	LogWarn("careful", F("key", "viewport-history"))

	assert.Contains(t, buf.String(), "size 80x24")
	assert.Contains(t, buf.String(), "careful key=viewport-history")
}
