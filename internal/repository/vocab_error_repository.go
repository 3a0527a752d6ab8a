//go:generate mockery --name VocabErrorRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VocabErrorRepository はユーザー×単語の誤答カウンタを扱う
type VocabErrorRepository interface {
	// IncrementError は (user, concept) の行が無ければ error_count=1 で作成し、あれば +1 する。
	// 加算は1文の upsert で行う
	IncrementError(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) error
	SetMarked(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID, marked bool) error
	Find(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) (*model.UserVocabularyError, error)
	// FindReviewable は error_count > threshold または is_marked の行を返す。順序は保証しない
	FindReviewable(ctx context.Context, db *gorm.DB, userID uuid.UUID, threshold int) ([]*model.UserVocabularyError, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormVocabErrorRepository struct{}

func NewGormVocabErrorRepository() VocabErrorRepository {
	return &gormVocabErrorRepository{}
}

func (r *gormVocabErrorRepository) IncrementError(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) error {
	now := time.Now()
	rec := model.UserVocabularyError{
		UserID:     userID,
		ConceptID:  conceptID,
		ErrorCount: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "concept_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"error_count": gorm.Expr("user_vocabulary_errors.error_count + 1"),
			"updated_at":  now,
		}),
	}).Create(&rec).Error
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrStorageConflict
		}
		return fmt.Errorf("gormVocabErrorRepository.IncrementError: %w", err)
	}
	return nil
}

func (r *gormVocabErrorRepository) SetMarked(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID, marked bool) error {
	now := time.Now()
	rec := model.UserVocabularyError{
		UserID:    userID,
		ConceptID: conceptID,
		IsMarked:  marked,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "concept_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_marked":  marked,
			"updated_at": now,
		}),
	}).Select("*").Create(&rec).Error
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrStorageConflict
		}
		return fmt.Errorf("gormVocabErrorRepository.SetMarked: %w", err)
	}
	return nil
}

func (r *gormVocabErrorRepository) Find(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) (*model.UserVocabularyError, error) {
	var rec model.UserVocabularyError
	err := db.WithContext(ctx).Where("user_id = ? AND concept_id = ?", userID, conceptID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormVocabErrorRepository.Find: %w", err)
	}
	return &rec, nil
}

func (r *gormVocabErrorRepository) FindReviewable(ctx context.Context, db *gorm.DB, userID uuid.UUID, threshold int) ([]*model.UserVocabularyError, error) {
	var recs []*model.UserVocabularyError
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("(error_count > ? OR is_marked = ?)", threshold, true).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("gormVocabErrorRepository.FindReviewable: %w", err)
	}
	return recs, nil
}

func (r *gormVocabErrorRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.UserVocabularyError{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormVocabErrorRepository.CountByUser: %w", err)
	}
	return count, nil
}
