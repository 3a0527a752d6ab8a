// internal/service/progress_service.go
package service

import (
	"context"
	"errors"

	"vocab_learn/internal/metrics"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"
	"vocab_learn/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService はトピックごとの学習進捗を扱う
type ProgressService interface {
	Advance(ctx context.Context, userID, topicID uuid.UUID, currentWordIndex, totalWords int) (*model.ProgressState, error)
	GetProgress(ctx context.Context, userID, topicID uuid.UUID) (*model.ProgressState, error)
}

type progressService struct {
	db           *gorm.DB
	progressRepo repository.TopicProgressRepository
	content      ContentService
}

func NewProgressService(db *gorm.DB, progressRepo repository.TopicProgressRepository, content ContentService) ProgressService {
	return &progressService{db: db, progressRepo: progressRepo, content: content}
}

// Advance は進捗を書き込み、保存後の状態を返す。完了済みのトピックは完了のまま
func (s *progressService) Advance(ctx context.Context, userID, topicID uuid.UUID, currentWordIndex, totalWords int) (*model.ProgressState, error) {
	logger := middleware.GetLogger(ctx)

	pct, err := scoring.CompletionPercentage(currentWordIndex, totalWords)
	if err != nil {
		return nil, err
	}
	if _, err := s.content.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}

	index := min(max(currentWordIndex, 0), totalWords-1)
	progress := &model.UserTopicProgress{
		UserID:               userID,
		TopicID:              topicID,
		CompletionPercentage: pct,
		IsCompleted:          pct >= 100,
		CurrentWordIndex:     index,
		TotalWords:           totalWords,
	}
	err = retryOnStorageConflict(ctx, "UpsertProgress", func() error {
		return s.progressRepo.Upsert(ctx, s.db, progress)
	})
	if err != nil {
		if errors.Is(err, model.ErrStorageConflict) {
			return nil, storageConflict(err)
		}
		logger.Error("Failed to upsert topic progress", "error", err, "topic_id", topicID.String())
		return nil, err
	}

	stored, err := s.progressRepo.Find(ctx, s.db, userID, topicID)
	if err != nil {
		logger.Error("Failed to read back topic progress", "error", err, "topic_id", topicID.String())
		return nil, internalError(err)
	}
	metrics.ObserveProgressUpdate(stored.IsCompleted)
	return toProgressState(stored), nil
}

// GetProgress は未着手なら0%の初期状態を返す。単語数が保存時から変わっていれば位置を進捗率から割り出す
func (s *progressService) GetProgress(ctx context.Context, userID, topicID uuid.UUID) (*model.ProgressState, error) {
	if _, err := s.content.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}
	liveTotal, err := s.content.GetConceptCountForTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}

	stored, err := s.progressRepo.Find(ctx, s.db, userID, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.ProgressState{
				TopicID:    topicID,
				TotalWords: liveTotal,
			}, nil
		}
		middleware.GetLogger(ctx).Error("Failed to find topic progress", "error", err, "topic_id", topicID.String())
		return nil, internalError(err)
	}

	state := toProgressState(stored)
	if liveTotal > 0 && liveTotal != stored.TotalWords {
		state.CurrentWordIndex = scoring.IndexFromPercentage(stored.CompletionPercentage, liveTotal)
		state.TotalWords = liveTotal
	}
	return state, nil
}

func toProgressState(p *model.UserTopicProgress) *model.ProgressState {
	return &model.ProgressState{
		TopicID:              p.TopicID,
		CompletionPercentage: p.CompletionPercentage,
		IsCompleted:          p.IsCompleted,
		CurrentWordIndex:     p.CurrentWordIndex,
		TotalWords:           p.TotalWords,
	}
}
