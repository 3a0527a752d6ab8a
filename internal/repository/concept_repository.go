//go:generate mockery --name ConceptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConceptRepository interface {
	Create(ctx context.Context, db *gorm.DB, concept *model.Concept) error
	CreateBatch(ctx context.Context, tx *gorm.DB, concepts []*model.Concept) error
	FindByID(ctx context.Context, db *gorm.DB, conceptID uuid.UUID) (*model.Concept, error)
	FindByIDs(ctx context.Context, db *gorm.DB, conceptIDs []uuid.UUID) ([]*model.Concept, error)
	FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Concept, error)
	CountByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (int64, error)
	ExistsTermInTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID, term string) (bool, error)
	Update(ctx context.Context, db *gorm.DB, concept *model.Concept) error
	// Delete は単語を削除し、その単語を参照する問題の関連を外す。tx の中で呼ぶこと
	Delete(ctx context.Context, tx *gorm.DB, conceptID uuid.UUID) error
}

type gormConceptRepository struct{}

func NewGormConceptRepository() ConceptRepository {
	return &gormConceptRepository{}
}

func (r *gormConceptRepository) Create(ctx context.Context, db *gorm.DB, concept *model.Concept) error {
	if err := db.WithContext(ctx).Create(concept).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("gormConceptRepository.Create: %w", err)
	}
	return nil
}

func (r *gormConceptRepository) CreateBatch(ctx context.Context, tx *gorm.DB, concepts []*model.Concept) error {
	if len(concepts) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).CreateInBatches(concepts, 100).Error; err != nil {
		return fmt.Errorf("gormConceptRepository.CreateBatch: %w", err)
	}
	return nil
}

func (r *gormConceptRepository) FindByID(ctx context.Context, db *gorm.DB, conceptID uuid.UUID) (*model.Concept, error) {
	var c model.Concept
	if err := db.WithContext(ctx).Where("concept_id = ?", conceptID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormConceptRepository.FindByID: %w", err)
	}
	return &c, nil
}

// FindByIDs は存在する単語だけを返す。順序は保証しない
func (r *gormConceptRepository) FindByIDs(ctx context.Context, db *gorm.DB, conceptIDs []uuid.UUID) ([]*model.Concept, error) {
	var concepts []*model.Concept
	if len(conceptIDs) == 0 {
		return concepts, nil
	}
	if err := db.WithContext(ctx).Where("concept_id IN ?", conceptIDs).Find(&concepts).Error; err != nil {
		return nil, fmt.Errorf("gormConceptRepository.FindByIDs: %w", err)
	}
	return concepts, nil
}

func (r *gormConceptRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Concept, error) {
	var concepts []*model.Concept
	if err := db.WithContext(ctx).Where("topic_id = ?", topicID).Order("created_at ASC").Find(&concepts).Error; err != nil {
		return nil, fmt.Errorf("gormConceptRepository.FindByTopic: %w", err)
	}
	return concepts, nil
}

func (r *gormConceptRepository) CountByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Concept{}).Where("topic_id = ?", topicID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormConceptRepository.CountByTopic: %w", err)
	}
	return count, nil
}

func (r *gormConceptRepository) ExistsTermInTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID, term string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Concept{}).
		Where("topic_id = ? AND term = ?", topicID, term).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gormConceptRepository.ExistsTermInTopic: %w", err)
	}
	return count > 0, nil
}

func (r *gormConceptRepository) Update(ctx context.Context, db *gorm.DB, concept *model.Concept) error {
	result := db.WithContext(ctx).Model(concept).Where("concept_id = ?", concept.ConceptID).
		Select("term", "meaning", "pronunciation", "example", "image_url", "audio_url").
		Updates(concept)
	if result.Error != nil {
		return fmt.Errorf("gormConceptRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormConceptRepository) Delete(ctx context.Context, tx *gorm.DB, conceptID uuid.UUID) error {
	db := tx.WithContext(ctx)
	err := db.Model(&model.Question{}).Where("related_concept_id = ?", conceptID).
		Update("related_concept_id", nil).Error
	if err != nil {
		return fmt.Errorf("gormConceptRepository.Delete detach questions: %w", err)
	}
	if err := db.Where("concept_id = ?", conceptID).Delete(&model.UserVocabularyError{}).Error; err != nil {
		return fmt.Errorf("gormConceptRepository.Delete vocabulary errors: %w", err)
	}
	result := db.Where("concept_id = ?", conceptID).Delete(&model.Concept{})
	if result.Error != nil {
		return fmt.Errorf("gormConceptRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
