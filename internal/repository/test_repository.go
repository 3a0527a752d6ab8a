//go:generate mockery --name TestRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestRepository はテストと問題の永続化を扱う
type TestRepository interface {
	Create(ctx context.Context, db *gorm.DB, test *model.Test) error
	FindByID(ctx context.Context, db *gorm.DB, testID uuid.UUID) (*model.Test, error)
	// FindWithQuestions は問題を作成順に Preload して返す
	FindWithQuestions(ctx context.Context, db *gorm.DB, testID uuid.UUID) (*model.Test, error)
	FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Test, error)
	FindIDsByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]uuid.UUID, error)
	// FindIDsByRelatedConcept は指定単語を参照する問題を持つテストのIDを返す
	FindIDsByRelatedConcept(ctx context.Context, db *gorm.DB, conceptID uuid.UUID) ([]uuid.UUID, error)
	CreateQuestion(ctx context.Context, db *gorm.DB, question *model.Question) error
	// Delete は問題 -> テストの順で削除する。tx の中で呼ぶこと
	Delete(ctx context.Context, tx *gorm.DB, testID uuid.UUID) error
}

type gormTestRepository struct{}

func NewGormTestRepository() TestRepository {
	return &gormTestRepository{}
}

func (r *gormTestRepository) Create(ctx context.Context, db *gorm.DB, test *model.Test) error {
	if err := db.WithContext(ctx).Omit("Questions").Create(test).Error; err != nil {
		return fmt.Errorf("gormTestRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTestRepository) FindByID(ctx context.Context, db *gorm.DB, testID uuid.UUID) (*model.Test, error) {
	var t model.Test
	if err := db.WithContext(ctx).Where("test_id = ?", testID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTestRepository.FindByID: %w", err)
	}
	return &t, nil
}

func (r *gormTestRepository) FindWithQuestions(ctx context.Context, db *gorm.DB, testID uuid.UUID) (*model.Test, error) {
	var t model.Test
	err := db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.created_at ASC")
		}).
		Where("test_id = ?", testID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTestRepository.FindWithQuestions: %w", err)
	}
	return &t, nil
}

func (r *gormTestRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Test, error) {
	var tests []*model.Test
	if err := db.WithContext(ctx).Where("topic_id = ?", topicID).Order("created_at ASC").Find(&tests).Error; err != nil {
		return nil, fmt.Errorf("gormTestRepository.FindByTopic: %w", err)
	}
	return tests, nil
}

func (r *gormTestRepository) FindIDsByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := db.WithContext(ctx).Model(&model.Test{}).Where("topic_id = ?", topicID).Pluck("test_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("gormTestRepository.FindIDsByTopic: %w", err)
	}
	return ids, nil
}

func (r *gormTestRepository) FindIDsByRelatedConcept(ctx context.Context, db *gorm.DB, conceptID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).Model(&model.Question{}).
		Distinct("test_id").
		Where("related_concept_id = ?", conceptID).
		Pluck("test_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("gormTestRepository.FindIDsByRelatedConcept: %w", err)
	}
	return ids, nil
}

func (r *gormTestRepository) CreateQuestion(ctx context.Context, db *gorm.DB, question *model.Question) error {
	if err := db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("gormTestRepository.CreateQuestion: %w", err)
	}
	return nil
}

func (r *gormTestRepository) Delete(ctx context.Context, tx *gorm.DB, testID uuid.UUID) error {
	db := tx.WithContext(ctx)
	if err := db.Where("test_id = ?", testID).Delete(&model.Question{}).Error; err != nil {
		return fmt.Errorf("gormTestRepository.Delete questions: %w", err)
	}
	result := db.Where("test_id = ?", testID).Delete(&model.Test{})
	if result.Error != nil {
		return fmt.Errorf("gormTestRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
