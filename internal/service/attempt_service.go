// internal/service/attempt_service.go
package service

import (
	"context"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxAttemptHistoryLimit = 500

// AttemptService は受験記録を作成・参照する。記録は作成後に変更しない
type AttemptService interface {
	Record(ctx context.Context, userID, testID uuid.UUID, score int, flaggedQuestionIDs []string) (uuid.UUID, error)
	ListAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.TestAttempt, error)
}

type attemptService struct {
	db           *gorm.DB
	attemptRepo  repository.AttemptRepository
	defaultLimit int
}

func NewAttemptService(db *gorm.DB, attemptRepo repository.AttemptRepository, defaultLimit int) AttemptService {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &attemptService{db: db, attemptRepo: attemptRepo, defaultLimit: defaultLimit}
}

// Record は flaggedQuestionIDs を検証せずそのまま保存する
func (s *attemptService) Record(ctx context.Context, userID, testID uuid.UUID, score int, flaggedQuestionIDs []string) (uuid.UUID, error) {
	if score < 0 || score > 100 {
		return uuid.Nil, model.NewAppError("INVALID_SCORE", "スコアは0から100の範囲で指定してください。", "score", model.ErrInvalidInput)
	}
	if flaggedQuestionIDs == nil {
		flaggedQuestionIDs = []string{}
	}

	attempt := &model.TestAttempt{
		AttemptID:          uuid.New(),
		UserID:             userID,
		TestID:             testID,
		Score:              score,
		FlaggedQuestionIDs: flaggedQuestionIDs,
	}
	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		middleware.GetLogger(ctx).Error("Failed to record test attempt", "error", err, "test_id", testID.String())
		return uuid.Nil, err
	}
	return attempt.AttemptID, nil
}

// ListAttempts は新しい順に最大 limit 件返す
func (s *attemptService) ListAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.TestAttempt, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxAttemptHistoryLimit {
		limit = maxAttemptHistoryLimit
	}
	attempts, err := s.attemptRepo.FindByUser(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list attempts", "error", err)
		return nil, internalError(err)
	}
	return attempts, nil
}
