// internal/model/content.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DefaultMaxScore はテスト作成時に満点が省略された場合の値
const DefaultMaxScore = 100

// Topic は単語とテストをまとめる単位
type Topic struct {
	TopicID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"topicId"`
	Name        string    `gorm:"not null;uniqueIndex" json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Topic) TableName() string {
	return "topics"
}

// Concept は単語 (語彙項目)。必ず1つのTopicに属する
type Concept struct {
	ConceptID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"conceptId"`
	TopicID       uuid.UUID `gorm:"type:uuid;not null;index" json:"topicId"`
	Term          string    `gorm:"not null" json:"term"`    // 単語
	Meaning       string    `gorm:"not null" json:"meaning"` // 意味
	Pronunciation string    `json:"pronunciation,omitempty"`
	Example       string    `json:"example,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	AudioURL      string    `json:"audioUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Concept) TableName() string {
	return "concepts"
}

// Test はTopicに属する選択式テスト
type Test struct {
	TestID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"testId"`
	TopicID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"topicId"`
	Title     string     `gorm:"not null" json:"title"`
	MaxScore  int        `gorm:"not null;default:100" json:"maxScore"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Questions []Question `gorm:"foreignKey:TestID;references:TestID" json:"questions,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// Question はテストの1問。CorrectAnswer は Answers のいずれかと一致する
type Question struct {
	QuestionID       uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"questionId"`
	TestID           uuid.UUID                   `gorm:"type:uuid;not null;index" json:"testId"`
	Content          string                      `gorm:"not null" json:"content"`
	Answers          datatypes.JSONSlice[string] `gorm:"not null" json:"answers"`
	CorrectAnswer    string                      `gorm:"not null" json:"correctAnswer"`
	RelatedConceptID *uuid.UUID                  `gorm:"type:uuid;index" json:"relatedConceptId,omitempty"` // 誤答をどの単語に紐づけるか
	CreatedAt        time.Time                   `json:"createdAt"`
}

func (Question) TableName() string {
	return "questions"
}

// トピック作成・更新リクエストDTO
type TopicRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

// 単語作成・更新リクエストDTO
type ConceptRequest struct {
	Term          string `json:"term" validate:"required,max=200"`
	Meaning       string `json:"meaning" validate:"required,max=1000"`
	Pronunciation string `json:"pronunciation" validate:"max=200"`
	Example       string `json:"example" validate:"max=2000"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	AudioURL      string `json:"audioUrl" validate:"omitempty,url"`
}

// テスト作成リクエストDTO。MaxScore が0なら DefaultMaxScore を使う
type CreateTestRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	MaxScore int    `json:"maxScore" validate:"gte=0,lte=1000"`
}

// 問題追加リクエストDTO
type CreateQuestionRequest struct {
	Content          string     `json:"content" validate:"required"`
	Answers          []string   `json:"answers" validate:"required,min=2,dive,required"`
	CorrectAnswer    string     `json:"correctAnswer" validate:"required"`
	RelatedConceptID *uuid.UUID `json:"relatedConceptId"`
}

// ImportResult は単語一括インポートの結果
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// QuestionForTaking は受験者に返す問題 (正解は含めない)
type QuestionForTaking struct {
	QuestionID uuid.UUID `json:"questionId"`
	Content    string    `json:"content"`
	Answers    []string  `json:"answers"`
}

// TestForTakingResponse は受験用のテスト
type TestForTakingResponse struct {
	TestID    uuid.UUID           `json:"testId"`
	TopicID   uuid.UUID           `json:"topicId"`
	Title     string              `json:"title"`
	MaxScore  int                 `json:"maxScore"`
	Questions []QuestionForTaking `json:"questions"`
}

func NewTestForTakingResponse(t *Test) TestForTakingResponse {
	qs := make([]QuestionForTaking, 0, len(t.Questions))
	for _, q := range t.Questions {
		qs = append(qs, QuestionForTaking{
			QuestionID: q.QuestionID,
			Content:    q.Content,
			Answers:    []string(q.Answers),
		})
	}
	return TestForTakingResponse{
		TestID:    t.TestID,
		TopicID:   t.TopicID,
		Title:     t.Title,
		MaxScore:  t.MaxScore,
		Questions: qs,
	}
}
