//go:generate mockery --name TopicRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(ctx context.Context, db *gorm.DB, topic *model.Topic) error
	FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Topic, error)
	Update(ctx context.Context, db *gorm.DB, topic *model.Topic) error
	// DeleteCascade は 問題 -> テスト -> 単語 -> トピック の順に削除する。tx の中で呼ぶこと
	DeleteCascade(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) error
}

type gormTopicRepository struct{}

func NewGormTopicRepository() TopicRepository {
	return &gormTopicRepository{}
}

func (r *gormTopicRepository) Create(ctx context.Context, db *gorm.DB, topic *model.Topic) error {
	if err := db.WithContext(ctx).Create(topic).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("gormTopicRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTopicRepository) FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error) {
	var topic model.Topic
	if err := db.WithContext(ctx).Where("topic_id = ?", topicID).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTopicRepository.FindByID: %w", err)
	}
	return &topic, nil
}

func (r *gormTopicRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Topic, error) {
	var topics []*model.Topic
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("gormTopicRepository.FindAll: %w", err)
	}
	return topics, nil
}

func (r *gormTopicRepository) Update(ctx context.Context, db *gorm.DB, topic *model.Topic) error {
	result := db.WithContext(ctx).Model(topic).Where("topic_id = ?", topic.TopicID).
		Select("name", "description", "image_url").Updates(topic)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		return fmt.Errorf("gormTopicRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTopicRepository) DeleteCascade(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	db := tx.WithContext(ctx)

	testIDs := db.Model(&model.Test{}).Select("test_id").Where("topic_id = ?", topicID)
	conceptIDs := db.Model(&model.Concept{}).Select("concept_id").Where("topic_id = ?", topicID)

	questions := db.Where("test_id IN (?)", testIDs).Delete(&model.Question{})
	if questions.Error != nil {
		return fmt.Errorf("gormTopicRepository.DeleteCascade questions: %w", questions.Error)
	}
	tests := db.Where("topic_id = ?", topicID).Delete(&model.Test{})
	if tests.Error != nil {
		return fmt.Errorf("gormTopicRepository.DeleteCascade tests: %w", tests.Error)
	}
	// 削除される単語を参照する学習記録も残さない
	if err := db.Where("concept_id IN (?)", conceptIDs).Delete(&model.UserVocabularyError{}).Error; err != nil {
		return fmt.Errorf("gormTopicRepository.DeleteCascade vocabulary errors: %w", err)
	}
	concepts := db.Where("topic_id = ?", topicID).Delete(&model.Concept{})
	if concepts.Error != nil {
		return fmt.Errorf("gormTopicRepository.DeleteCascade concepts: %w", concepts.Error)
	}
	if err := db.Where("topic_id = ?", topicID).Delete(&model.UserTopicProgress{}).Error; err != nil {
		return fmt.Errorf("gormTopicRepository.DeleteCascade progress: %w", err)
	}
	topic := db.Where("topic_id = ?", topicID).Delete(&model.Topic{})
	if topic.Error != nil {
		return fmt.Errorf("gormTopicRepository.DeleteCascade topic: %w", topic.Error)
	}
	if topic.RowsAffected == 0 {
		return model.ErrNotFound
	}

	logger.Info("Topic deleted with contents",
		"topic_id", topicID.String(),
		"questions", questions.RowsAffected,
		"tests", tests.RowsAffected,
		"concepts", concepts.RowsAffected,
	)
	return nil
}
