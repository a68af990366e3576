// Package store provides the durable string-keyed blob stores the viewport
// observer persists its history and thresholds into.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// ErrNotFound is returned by Get when the key is absent
var ErrNotFound = errors.New("store: key not found")

// Store is a blob store with get/set/delete semantics.
// Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config selects and configures a backend
type Config struct {
	Backend string // file, redis, memory
	Dir     string // file backend directory

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string // redis key namespace
}

// New creates a store based on configuration
func New(cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case model.StoreFile, "":
		util.LogDebugf("Using file store at %s", cfg.Dir)
		return NewFileStore(cfg.Dir)
	case model.StoreRedis:
		util.LogDebugf("Using redis store at %s (db %d, prefix %q)", cfg.RedisAddr, cfg.RedisDB, cfg.KeyPrefix)
		return NewRedisStore(cfg), nil
	case model.StoreMemory:
		util.LogDebug("Using in-memory store, nothing will be persisted")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}

// sanitizeKey strips path separators so a key can never escape its namespace
func sanitizeKey(key string) string {
	key = strings.ReplaceAll(key, "/", "_")
	return strings.ReplaceAll(key, "\\", "_")
}
