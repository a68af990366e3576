package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps blobs as plain redis strings under an optional prefix
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a redis-backed store
func NewRedisStore(cfg Config) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return NewRedisStoreFromClient(rdb, cfg.KeyPrefix)
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) buildKey(key string) string {
	if s.prefix == "" {
		return sanitizeKey(key)
	}
	return fmt.Sprintf("%s/%s", s.prefix, sanitizeKey(key))
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	redisKey := s.buildKey(key)

	result, err := s.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get key %s from Redis: %w", redisKey, err)
	}
	return result, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	redisKey := s.buildKey(key)

	// SET replaces the whole value atomically; no expiry
	if err := s.client.Set(ctx, redisKey, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in Redis: %w", redisKey, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	redisKey := s.buildKey(key)

	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from Redis: %w", redisKey, err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
