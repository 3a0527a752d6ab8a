// internal/repository/topic_progress_repository_test.go
package repository

import (
	"context"
	"testing"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicProgressRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormTopicProgressRepository()
	userID := uuid.New()
	topicID := uuid.New()

	upsert := func(pct, idx, total int) *model.UserTopicProgress {
		t.Helper()
		require.NoError(t, repo.Upsert(ctx, db, &model.UserTopicProgress{
			UserID:               userID,
			TopicID:              topicID,
			CompletionPercentage: pct,
			IsCompleted:          pct >= 100,
			CurrentWordIndex:     idx,
			TotalWords:           total,
		}))
		p, err := repo.Find(ctx, db, userID, topicID)
		require.NoError(t, err)
		return p
	}

	t.Run("未登録なら NotFound", func(t *testing.T) {
		_, err := repo.Find(ctx, db, userID, topicID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("初回作成", func(t *testing.T) {
		p := upsert(30, 2, 10)
		assert.Equal(t, 30, p.CompletionPercentage)
		assert.False(t, p.IsCompleted)
		assert.Equal(t, 2, p.CurrentWordIndex)
		assert.Equal(t, 10, p.TotalWords)
	})

	t.Run("前進は反映される", func(t *testing.T) {
		p := upsert(100, 9, 10)
		assert.Equal(t, 100, p.CompletionPercentage)
		assert.True(t, p.IsCompleted)
		assert.Equal(t, 9, p.CurrentWordIndex)
	})

	t.Run("後退しても進捗率と完了は維持", func(t *testing.T) {
		p := upsert(20, 1, 10)
		assert.Equal(t, 100, p.CompletionPercentage)
		assert.True(t, p.IsCompleted)
		assert.Equal(t, 9, p.CurrentWordIndex)
	})

	count, err := repo.CountCompletedByUser(ctx, db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
