// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserTopicProgress はユーザー×トピックごとの学習進捗
type UserTopicProgress struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TopicID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompletionPercentage int       `gorm:"not null;default:0"`
	IsCompleted          bool      `gorm:"not null;default:false;index"`
	CurrentWordIndex     int       `gorm:"not null;default:0"`
	TotalWords           int       `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (UserTopicProgress) TableName() string {
	return "user_topic_progress"
}

// ProgressUpdateRequest は進捗更新リクエストDTO
type ProgressUpdateRequest struct {
	CurrentWordIndex *int `json:"currentWordIndex" validate:"required"`
	TotalWords       *int `json:"totalWords" validate:"required"`
}

// ProgressState は進捗の返却形
type ProgressState struct {
	TopicID              uuid.UUID `json:"topicId"`
	CompletionPercentage int       `json:"completionPercentage"`
	IsCompleted          bool      `json:"isCompleted"`
	CurrentWordIndex     int       `json:"currentWordIndex"`
	TotalWords           int       `json:"totalWords"`
}

// StatsSummary はプロフィール画面の集計値
type StatsSummary struct {
	WordsLearned    int64   `json:"wordsLearned"` // 誤答記録のある単語数
	CompletedTopics int64   `json:"completedTopics"`
	AverageScore    float64 `json:"averageScore"`
	TotalAttempts   int64   `json:"totalAttempts"`
	Streak          int     `json:"streak"` // 常に0
}
