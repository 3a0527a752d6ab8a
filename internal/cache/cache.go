// Package cache はテスト(問題付き)の読み取りキャッシュ
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vocab_learn/internal/config"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vocab:test:"

// TestCache はキャッシュ障害を呼び出し元に返さない。失敗はミス扱い
type TestCache interface {
	Get(ctx context.Context, testID uuid.UUID) (*model.Test, bool)
	Set(ctx context.Context, test *model.Test)
	Delete(ctx context.Context, testIDs ...uuid.UUID)
}

// NewTestCache は redis.addr が空なら何もしないキャッシュを返す
func NewTestCache(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger) (TestCache, func() error, error) {
	if cfg.Addr == "" {
		logger.Info("Redis address not set, test cache disabled")
		return NoopCache{}, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	logger.Info("Redis test cache enabled", "addr", cfg.Addr, "ttl", cfg.TTL)
	return NewRedisCache(client, cfg.TTL), client.Close, nil
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = config.DefaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func key(testID uuid.UUID) string {
	return keyPrefix + testID.String()
}

func (c *RedisCache) Get(ctx context.Context, testID uuid.UUID) (*model.Test, bool) {
	b, err := c.client.Get(ctx, key(testID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			middleware.GetLogger(ctx).Warn("Test cache get failed", "error", err, "test_id", testID.String())
		}
		return nil, false
	}
	var t model.Test
	if err := json.Unmarshal(b, &t); err != nil {
		middleware.GetLogger(ctx).Warn("Test cache entry is broken", "error", err, "test_id", testID.String())
		return nil, false
	}
	return &t, true
}

func (c *RedisCache) Set(ctx context.Context, test *model.Test) {
	b, err := json.Marshal(test)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(test.TestID), b, c.ttl).Err(); err != nil {
		middleware.GetLogger(ctx).Warn("Test cache set failed", "error", err, "test_id", test.TestID.String())
	}
}

func (c *RedisCache) Delete(ctx context.Context, testIDs ...uuid.UUID) {
	if len(testIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(testIDs))
	for _, id := range testIDs {
		keys = append(keys, key(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		middleware.GetLogger(ctx).Warn("Test cache delete failed", "error", err, "keys", len(keys))
	}
}

// NoopCache は常にミスする
type NoopCache struct{}

func (NoopCache) Get(context.Context, uuid.UUID) (*model.Test, bool) { return nil, false }
func (NoopCache) Set(context.Context, *model.Test) {}
func (NoopCache) Delete(context.Context, ...uuid.UUID) {}
