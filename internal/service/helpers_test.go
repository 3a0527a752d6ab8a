package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repository.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

// recordingCache は Delete されたIDを記録するだけのキャッシュ
type recordingCache struct {
	mu      sync.Mutex
	stored  map[uuid.UUID]*model.Test
	deleted []uuid.UUID
	hits    int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{stored: map[uuid.UUID]*model.Test{}}
}

func (c *recordingCache) Get(_ context.Context, id uuid.UUID) (*model.Test, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.stored[id]
	if ok {
		c.hits++
	}
	return t, ok
}

func (c *recordingCache) Set(_ context.Context, t *model.Test) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stored[t.TestID] = t
}

func (c *recordingCache) Delete(_ context.Context, ids ...uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.stored, id)
	}
	c.deleted = append(c.deleted, ids...)
}

// recordingPublisher は発行されたイベントを溜める
type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	p.events = append(p.events, payload)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }
