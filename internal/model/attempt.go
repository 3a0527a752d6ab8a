// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TestAttempt は1回分の受験記録。作成後は更新も削除もしない
type TestAttempt struct {
	AttemptID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"attemptId"`
	UserID             uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	TestID             uuid.UUID                   `gorm:"type:uuid;not null;index" json:"testId"`
	Score              int                         `gorm:"not null" json:"score"`
	FlaggedQuestionIDs datatypes.JSONSlice[string] `json:"flaggedQuestionIds"`
	CreatedAt          time.Time                   `gorm:"index" json:"createdAt"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}

// SubmittedAnswer は1問分の回答。UserAnswer が null なら未回答 (不正解扱い)
type SubmittedAnswer struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	UserAnswer *string   `json:"userAnswer"`
}

// SubmitTestRequest はテスト提出リクエストDTO
type SubmitTestRequest struct {
	TestID             uuid.UUID         `json:"testId" validate:"required"`
	Answers            []SubmittedAnswer `json:"answers" validate:"dive"`
	FlaggedQuestionIDs []string          `json:"flaggedQuestionIds"`
}

// SubmitTestResponse はテスト提出結果
type SubmitTestResponse struct {
	AttemptID        uuid.UUID   `json:"attemptId"`
	Score            int         `json:"score"`
	CorrectCount     int         `json:"correctCount"`
	TotalQuestions   int         `json:"totalQuestions"`
	MissedConceptIDs []uuid.UUID `json:"missedConceptIds"`
}
