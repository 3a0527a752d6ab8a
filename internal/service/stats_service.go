// internal/service/stats_service.go
package service

import (
	"context"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsSummary, error)
}

type statsService struct {
	db             *gorm.DB
	vocabErrorRepo repository.VocabErrorRepository
	progressRepo   repository.TopicProgressRepository
	attemptRepo    repository.AttemptRepository
}

func NewStatsService(db *gorm.DB, vocabErrorRepo repository.VocabErrorRepository, progressRepo repository.TopicProgressRepository, attemptRepo repository.AttemptRepository) StatsService {
	return &statsService{
		db:             db,
		vocabErrorRepo: vocabErrorRepo,
		progressRepo:   progressRepo,
		attemptRepo:    attemptRepo,
	}
}

// GetStats は学習状況をまとめる。
// wordsLearned は誤答記録(マークのみも含む)がある単語の数で、習得語数ではない。streak は常に0
func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsSummary, error) {
	logger := middleware.GetLogger(ctx)

	words, err := s.vocabErrorRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count vocabulary records", "error", err)
		return nil, internalError(err)
	}
	completed, err := s.progressRepo.CountCompletedByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count completed topics", "error", err)
		return nil, internalError(err)
	}
	summary, err := s.attemptRepo.SummarizeByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to summarize attempts", "error", err)
		return nil, internalError(err)
	}

	return &model.StatsSummary{
		WordsLearned:    words,
		CompletedTopics: completed,
		AverageScore:    summary.Average,
		TotalAttempts:   summary.Total,
		Streak:          0,
	}, nil
}
