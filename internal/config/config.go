// Package config resolves runtime settings from defaults, an optional YAML
// file and VIEWPORT_* environment variables (including a local .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory holding data, logs and config
const AppDirName = ".go-viewport-monitor"

// Config holds all configuration for the application
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Terminal TerminalConfig `yaml:"terminal"`
	Watch    WatchConfig    `yaml:"watch"`

	HistoryCap int    `yaml:"history_cap"`
	Timezone   string `yaml:"timezone"`
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	Backend       string `yaml:"backend"`
	DataDir       string `yaml:"data_dir"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	KeyPrefix     string `yaml:"key_prefix"`
}

// TerminalConfig maps character cells to logical pixels
type TerminalConfig struct {
	CellWidth       int     `yaml:"cell_width"`
	CellHeight      int     `yaml:"cell_height"`
	FallbackDensity float64 `yaml:"fallback_density"`
}

// WatchConfig tunes the live view
type WatchConfig struct {
	RefreshSeconds int `yaml:"refresh_seconds"`
}

// Default returns the built-in configuration rooted at home
func Default(home string) *Config {
	base := filepath.Join(home, AppDirName)
	return &Config{
		Store: StoreConfig{
			Backend:   "file",
			DataDir:   filepath.Join(base, "data"),
			RedisAddr: "localhost:6379",
			KeyPrefix: "viewport",
		},
		Terminal: TerminalConfig{
			CellWidth:       8,
			CellHeight:      16,
			FallbackDensity: 1.0,
		},
		Watch: WatchConfig{
			RefreshSeconds: 1,
		},
		HistoryCap: 50,
		Timezone:   "Local",
		LogLevel:   "info",
		LogFile:    filepath.Join(base, "logs", "app.log"),
	}
}

// DefaultPath is the config file looked up when none is given
func DefaultPath(home string) string {
	return filepath.Join(home, AppDirName, "config.yaml")
}

// Load builds the configuration. An explicit path must exist; the default
// path is optional.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (optional)
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg := Default(home)

	explicit := path != ""
	if !explicit {
		path = DefaultPath(home)
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Store.Backend = getEnv("VIEWPORT_STORE", c.Store.Backend)
	c.Store.DataDir = getEnv("VIEWPORT_DATA_DIR", c.Store.DataDir)
	c.Store.RedisAddr = getEnv("VIEWPORT_REDIS_ADDR", c.Store.RedisAddr)
	c.Store.RedisPassword = getEnv("VIEWPORT_REDIS_PASSWORD", c.Store.RedisPassword)
	c.Store.RedisDB = getEnvAsInt("VIEWPORT_REDIS_DB", c.Store.RedisDB)
	c.Store.KeyPrefix = getEnv("VIEWPORT_KEY_PREFIX", c.Store.KeyPrefix)

	c.Terminal.CellWidth = getEnvAsInt("VIEWPORT_CELL_WIDTH", c.Terminal.CellWidth)
	c.Terminal.CellHeight = getEnvAsInt("VIEWPORT_CELL_HEIGHT", c.Terminal.CellHeight)
	c.Terminal.FallbackDensity = getEnvAsFloat("VIEWPORT_PIXEL_DENSITY", c.Terminal.FallbackDensity)

	c.Watch.RefreshSeconds = getEnvAsInt("VIEWPORT_REFRESH_SECONDS", c.Watch.RefreshSeconds)

	c.HistoryCap = getEnvAsInt("VIEWPORT_HISTORY_CAP", c.HistoryCap)
	c.Timezone = getEnv("VIEWPORT_TIMEZONE", c.Timezone)
	c.LogLevel = getEnv("VIEWPORT_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("VIEWPORT_LOG_FILE", c.LogFile)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
