package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, AppDirName, "data"), cfg.Store.DataDir)
	assert.Equal(t, filepath.Join(home, AppDirName, "logs", "app.log"), cfg.LogFile)
	assert.Equal(t, 50, cfg.HistoryCap)
	assert.Equal(t, 8, cfg.Terminal.CellWidth)
	assert.Equal(t, 16, cfg.Terminal.CellHeight)
	assert.Equal(t, 1.0, cfg.Terminal.FallbackDensity)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, DefaultPath(home), `
store:
  backend: redis
  redis_addr: cache:6379
  key_prefix: team
terminal:
  cell_width: 10
history_cap: 20
timezone: UTC
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	assert.Equal(t, "team", cfg.Store.KeyPrefix)
	assert.Equal(t, 10, cfg.Terminal.CellWidth)
	assert.Equal(t, 16, cfg.Terminal.CellHeight, "unset keys keep defaults")
	assert.Equal(t, 20, cfg.HistoryCap)
	assert.Equal(t, "UTC", cfg.Timezone)

	t.Setenv("VIEWPORT_STORE", "memory")
	t.Setenv("VIEWPORT_HISTORY_CAP", "5")
	t.Setenv("VIEWPORT_PIXEL_DENSITY", "2.5")
	t.Setenv("VIEWPORT_CELL_HEIGHT", "not-a-number")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, 5, cfg.HistoryCap)
	assert.Equal(t, 2.5, cfg.Terminal.FallbackDensity)
	assert.Equal(t, 16, cfg.Terminal.CellHeight)
}

func TestLoadExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "store: [unclosed")
	_, err = Load(bad)
	assert.Error(t, err)

	good := filepath.Join(dir, "good.yaml")
	writeFile(t, good, "log_level: debug\n")
	cfg, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("VIEWPORT_TEST_STR", "value")
	t.Setenv("VIEWPORT_TEST_INT", "42")
	t.Setenv("VIEWPORT_TEST_BAD", "x")

	assert.Equal(t, "value", getEnv("VIEWPORT_TEST_STR", "d"))
	assert.Equal(t, "d", getEnv("VIEWPORT_TEST_MISSING", "d"))
	assert.Equal(t, 42, getEnvAsInt("VIEWPORT_TEST_INT", 1))
	assert.Equal(t, 1, getEnvAsInt("VIEWPORT_TEST_BAD", 1))
	assert.Equal(t, 1.5, getEnvAsFloat("VIEWPORT_TEST_BAD", 1.5))
}
