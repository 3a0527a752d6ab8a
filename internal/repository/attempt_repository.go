//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptSummary はユーザーの受験回数と平均点
type AttemptSummary struct {
	Total   int64
	Average float64
}

// AttemptRepository は受験記録を扱う。更新・削除のメソッドは持たない
type AttemptRepository interface {
	Create(ctx context.Context, db *gorm.DB, attempt *model.TestAttempt) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.TestAttempt, error)
	SummarizeByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*AttemptSummary, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.TestAttempt) error {
	if err := db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("gormAttemptRepository.Create: %w", err)
	}
	return nil
}

// FindByUser は新しい順に最大 limit 件返す
func (r *gormAttemptRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.TestAttempt, error) {
	var attempts []*model.TestAttempt
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("gormAttemptRepository.FindByUser: %w", err)
	}
	return attempts, nil
}

func (r *gormAttemptRepository) SummarizeByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*AttemptSummary, error) {
	var row struct {
		Total   int64
		Average float64
	}
	err := db.WithContext(ctx).Model(&model.TestAttempt{}).
		Select("COUNT(*) AS total, COALESCE(AVG(score), 0) AS average").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("gormAttemptRepository.SummarizeByUser: %w", err)
	}
	return &AttemptSummary{Total: row.Total, Average: row.Average}, nil
}
