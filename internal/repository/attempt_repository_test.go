// internal/repository/attempt_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormAttemptRepository()
	userID := uuid.New()
	testID := uuid.New()

	t.Run("受験記録が無ければ 0件・平均0", func(t *testing.T) {
		sum, err := repo.SummarizeByUser(ctx, db, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), sum.Total)
		assert.Equal(t, 0.0, sum.Average)
	})

	base := time.Now().Add(-time.Hour)
	for i, score := range []int{75, 75, 90} {
		require.NoError(t, repo.Create(ctx, db, &model.TestAttempt{
			AttemptID:          uuid.New(),
			UserID:             userID,
			TestID:             testID,
			Score:              score,
			FlaggedQuestionIDs: []string{"q1"},
			CreatedAt:          base.Add(time.Duration(i) * time.Minute),
		}))
	}

	t.Run("平均と件数", func(t *testing.T) {
		sum, err := repo.SummarizeByUser(ctx, db, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), sum.Total)
		assert.InDelta(t, 80.0, sum.Average, 0.0001)
	})

	t.Run("新しい順に limit 件", func(t *testing.T) {
		got, err := repo.FindByUser(ctx, db, userID, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 90, got[0].Score)
		assert.Equal(t, []string{"q1"}, []string(got[0].FlaggedQuestionIDs))
	})
}
