package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vocab_learn/internal/config"
	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestCache_DisabledWithoutAddr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, closeFn, err := NewTestCache(context.Background(), &config.RedisConfig{}, logger)
	require.NoError(t, err)
	assert.IsType(t, NoopCache{}, c)
	assert.NoError(t, closeFn())
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NoopCache{}
	test := &model.Test{TestID: uuid.New()}
	c.Set(ctx, test)
	got, ok := c.Get(ctx, test.TestID)
	assert.False(t, ok)
	assert.Nil(t, got)
}

// 接続できない redis はミス扱いになり、エラーもパニックも出さない
func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewRedisCache(client, 0)
	assert.Equal(t, config.DefaultCacheTTL, c.ttl)

	test := &model.Test{TestID: uuid.New(), Title: "quiz"}
	c.Set(ctx, test)
	got, ok := c.Get(ctx, test.TestID)
	assert.False(t, ok)
	assert.Nil(t, got)
	c.Delete(ctx, test.TestID)
}

func TestKey(t *testing.T) {
	id := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	assert.Equal(t, "vocab:test:7c9e6679-7425-40de-944b-e07fc1f90ae7", key(id))
}
