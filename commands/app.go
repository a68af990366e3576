package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/penwyp/go-viewport-monitor/internal/config"
	"github.com/penwyp/go-viewport-monitor/internal/core/history"
	"github.com/penwyp/go-viewport-monitor/internal/core/report"
	"github.com/penwyp/go-viewport-monitor/internal/core/threshold"
	"github.com/penwyp/go-viewport-monitor/internal/core/viewport"
	"github.com/penwyp/go-viewport-monitor/internal/data/store"
	"github.com/penwyp/go-viewport-monitor/internal/util"
	"github.com/spf13/cobra"
)

// app holds the components every subcommand is built from
type app struct {
	config     *config.Config
	store      store.Store
	history    *history.Manager
	thresholds *threshold.Manager
	userAgent  string
}

// setup resolves configuration (defaults < YAML < env < flags), then
// initializes logging, the timezone and the store
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, cfg)

	// Determine log level based on debug flag
	logLevel := cfg.LogLevel
	if debug {
		logLevel = "debug"
	}

	// Initialize logging
	logFile := expandPath(cfg.LogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	s, err := store.New(store.Config{
		Backend:       cfg.Store.Backend,
		Dir:           expandPath(cfg.Store.DataDir),
		RedisAddr:     cfg.Store.RedisAddr,
		RedisPassword: cfg.Store.RedisPassword,
		RedisDB:       cfg.Store.RedisDB,
		KeyPrefix:     cfg.Store.KeyPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &app{
		config:     cfg,
		store:      s,
		history:    history.NewManager(s, cfg.HistoryCap),
		thresholds: threshold.NewManager(s),
		userAgent:  report.UserAgent(),
	}, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Backend = storeBackend
	}
	if flags.Changed("data-dir") {
		cfg.Store.DataDir = dataDir
	}
	if flags.Changed("redis-addr") {
		cfg.Store.RedisAddr = redisAddr
	}
	if flags.Changed("timezone") {
		cfg.Timezone = timezone
	}
}

// terminal measures the terminal attached to stdout
func (a *app) terminal() *viewport.TerminalEnvironment {
	return viewport.NewTerminalEnvironment(os.Stdout, viewport.TerminalConfig{
		CellWidth:       a.config.Terminal.CellWidth,
		CellHeight:      a.config.Terminal.CellHeight,
		FallbackDensity: a.config.Terminal.FallbackDensity,
	})
}

// newObserver builds an observer sampling env into the shared history
func (a *app) newObserver(env viewport.Environment) *viewport.Observer {
	return viewport.NewObserver(viewport.NewSampler(env), a.history)
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		util.LogWarnf("Failed to close store: %v", err)
	}
}
