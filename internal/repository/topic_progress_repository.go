//go:generate mockery --name TopicProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type TopicProgressRepository interface {
	// Upsert は進捗を1文で書き込む。進捗率は既存値より大きいときだけ進み、完了フラグは一度立つと戻らない
	Upsert(ctx context.Context, db *gorm.DB, progress *model.UserTopicProgress) error
	Find(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) (*model.UserTopicProgress, error)
	CountCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormTopicProgressRepository struct{}

func NewGormTopicProgressRepository() TopicProgressRepository {
	return &gormTopicProgressRepository{}
}

const (
	forwardOnly = "CASE WHEN excluded.completion_percentage > user_topic_progress.completion_percentage " +
		"THEN excluded.completion_percentage ELSE user_topic_progress.completion_percentage END"
	// 進捗率が下がる更新では位置も据え置く
	positionIfNotBehind = "CASE WHEN excluded.completion_percentage >= user_topic_progress.completion_percentage " +
		"THEN excluded.%[1]s ELSE user_topic_progress.%[1]s END"
)

func (r *gormTopicProgressRepository) Upsert(ctx context.Context, db *gorm.DB, progress *model.UserTopicProgress) error {
	now := time.Now()
	progress.CreatedAt = now
	progress.UpdatedAt = now

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completion_percentage": gorm.Expr(forwardOnly),
			"is_completed":          gorm.Expr("user_topic_progress.is_completed OR excluded.is_completed"),
			"current_word_index":    gorm.Expr(fmt.Sprintf(positionIfNotBehind, "current_word_index")),
			"total_words":           gorm.Expr(fmt.Sprintf(positionIfNotBehind, "total_words")),
			"updated_at":            now,
		}),
	}).Select("*").Create(progress).Error
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrStorageConflict
		}
		return fmt.Errorf("gormTopicProgressRepository.Upsert: %w", err)
	}
	return nil
}

func (r *gormTopicProgressRepository) Find(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) (*model.UserTopicProgress, error) {
	var p model.UserTopicProgress
	err := db.WithContext(ctx).Where("user_id = ? AND topic_id = ?", userID, topicID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTopicProgressRepository.Find: %w", err)
	}
	return &p, nil
}

func (r *gormTopicProgressRepository) CountCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.UserTopicProgress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormTopicProgressRepository.CountCompletedByUser: %w", err)
	}
	return count, nil
}
