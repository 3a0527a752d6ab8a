// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserVocabularyError はユーザー×単語ごとの累積誤答数と復習マーク
type UserVocabularyError struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConceptID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ErrorCount int       `gorm:"not null;default:0"`
	IsMarked   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (UserVocabularyError) TableName() string {
	return "user_vocabulary_errors"
}

// ReviewItemResponse は復習リストの1件
type ReviewItemResponse struct {
	ConceptID     uuid.UUID `json:"conceptId"`
	TopicID       uuid.UUID `json:"topicId"`
	Term          string    `json:"term"`
	Meaning       string    `json:"meaning"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	Example       string    `json:"example,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	AudioURL      string    `json:"audioUrl,omitempty"`
	ErrorCount    int       `json:"errorCount"`
	IsMarked      bool      `json:"isMarked"`
}

// MarkReviewRequest は復習マークの切り替えリクエストDTO
type MarkReviewRequest struct {
	IsMarked *bool `json:"isMarked" validate:"required"`
}
