package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"filmreel/internal/config"
	"filmreel/internal/syncbus"
)

// NewRedis creates a new Redis client and verifies connectivity.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("connected to Redis", "addr", cfg.Addr)
	return client, nil
}

// RedisBackend persists records in redis and publishes each completed
// write on the shared change channel so other processes can refresh.
// The origin id keeps a process from re-announcing its own writes.
type RedisBackend struct {
	rdb    *redis.Client
	origin string
}

// NewRedisBackend wraps an existing redis client.
func NewRedisBackend(rdb *redis.Client, origin string) *RedisBackend {
	return &RedisBackend{rdb: rdb, origin: origin}
}

func (b *RedisBackend) Get(key string) ([]byte, bool, error) {
	v, err := b.rdb.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

func (b *RedisBackend) Set(key string, value []byte) error {
	ctx := context.Background()
	if err := b.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	// Publish only after the write is durable.
	if err := b.rdb.Publish(ctx, syncbus.Channel, syncbus.Message(b.origin, key)).Err(); err != nil {
		slog.Warn("failed to publish storage change", "key", key, "error", err)
	}
	return nil
}

func (b *RedisBackend) Delete(key string) error {
	ctx := context.Background()
	if err := b.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	if err := b.rdb.Publish(ctx, syncbus.Channel, syncbus.Message(b.origin, key)).Err(); err != nil {
		slog.Warn("failed to publish storage change", "key", key, "error", err)
	}
	return nil
}
