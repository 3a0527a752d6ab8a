// internal/service/review_service.go
package service

import (
	"context"
	"errors"

	"vocab_learn/internal/metrics"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は誤答の記録と復習リストを扱う
type ReviewService interface {
	// RecordMisses は conceptIDs の出現ごとに誤答数を1つ増やす (重複も個別に数える)
	RecordMisses(ctx context.Context, userID uuid.UUID, conceptIDs []uuid.UUID) error
	GetReviewList(ctx context.Context, userID uuid.UUID, threshold int) ([]model.ReviewItemResponse, error)
	SetMarked(ctx context.Context, userID, conceptID uuid.UUID, marked bool) error
}

type reviewService struct {
	db             *gorm.DB
	vocabErrorRepo repository.VocabErrorRepository
	content        ContentService
}

func NewReviewService(db *gorm.DB, vocabErrorRepo repository.VocabErrorRepository, content ContentService) ReviewService {
	return &reviewService{
		db:             db,
		vocabErrorRepo: vocabErrorRepo,
		content:        content,
	}
}

func (s *reviewService) RecordMisses(ctx context.Context, userID uuid.UUID, conceptIDs []uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	for _, conceptID := range conceptIDs {
		err := retryOnStorageConflict(ctx, "IncrementError", func() error {
			return s.vocabErrorRepo.IncrementError(ctx, s.db, userID, conceptID)
		})
		if err != nil {
			logger.Error("Failed to record vocabulary error", "error", err, "concept_id", conceptID.String())
			if errors.Is(err, model.ErrStorageConflict) {
				return storageConflict(err)
			}
			return err
		}
	}
	if len(conceptIDs) > 0 {
		metrics.ObserveVocabularyErrors(len(conceptIDs))
		logger.Debug("Vocabulary errors recorded", "count", len(conceptIDs))
	}
	return nil
}

// GetReviewList は誤答数が threshold を超えたか、マーク済みの単語を返す。順序は保証しない
func (s *reviewService) GetReviewList(ctx context.Context, userID uuid.UUID, threshold int) ([]model.ReviewItemResponse, error) {
	if threshold < 0 {
		return nil, model.NewAppError("INVALID_THRESHOLD", "閾値は0以上で指定してください。", "threshold", model.ErrInvalidInput)
	}

	rows, err := s.vocabErrorRepo.FindReviewable(ctx, s.db, userID, threshold)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to find reviewable concepts", "error", err)
		return nil, err
	}
	if len(rows) == 0 {
		return []model.ReviewItemResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ConceptID)
	}
	concepts, err := s.content.GetConceptsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.Concept, len(concepts))
	for _, c := range concepts {
		byID[c.ConceptID] = c
	}

	items := make([]model.ReviewItemResponse, 0, len(rows))
	for _, r := range rows {
		c, ok := byID[r.ConceptID]
		if !ok {
			continue
		}
		items = append(items, model.ReviewItemResponse{
			ConceptID:     c.ConceptID,
			TopicID:       c.TopicID,
			Term:          c.Term,
			Meaning:       c.Meaning,
			Pronunciation: c.Pronunciation,
			Example:       c.Example,
			ImageURL:      c.ImageURL,
			AudioURL:      c.AudioURL,
			ErrorCount:    r.ErrorCount,
			IsMarked:      r.IsMarked,
		})
	}
	return items, nil
}

// SetMarked は復習マークを付け外しする。記録が無ければ誤答数0で作る
func (s *reviewService) SetMarked(ctx context.Context, userID, conceptID uuid.UUID, marked bool) error {
	concepts, err := s.content.GetConceptsByIDs(ctx, []uuid.UUID{conceptID})
	if err != nil {
		return err
	}
	if len(concepts) == 0 {
		return conceptNotFound()
	}

	err = retryOnStorageConflict(ctx, "SetMarked", func() error {
		return s.vocabErrorRepo.SetMarked(ctx, s.db, userID, conceptID, marked)
	})
	if err != nil {
		if errors.Is(err, model.ErrStorageConflict) {
			return storageConflict(err)
		}
		middleware.GetLogger(ctx).Error("Failed to set review mark", "error", err, "concept_id", conceptID.String())
		return err
	}
	return nil
}
