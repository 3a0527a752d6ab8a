// internal/service/submission_service.go
package service

import (
	"context"
	"errors"
	"time"

	"vocab_learn/internal/event"
	"vocab_learn/internal/metrics"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/scoring"

	"github.com/google/uuid"
)

// SubmissionService はテスト提出を 採点 -> 誤答記録 -> 受験記録 -> イベント発行 の順に処理する
type SubmissionService interface {
	SubmitTest(ctx context.Context, userID uuid.UUID, req *model.SubmitTestRequest) (*model.SubmitTestResponse, error)
}

type submissionService struct {
	content   ContentService
	reviews   ReviewService
	attempts  AttemptService
	publisher event.Publisher
}

func NewSubmissionService(content ContentService, reviews ReviewService, attempts AttemptService, publisher event.Publisher) SubmissionService {
	if publisher == nil {
		publisher = event.LogPublisher{}
	}
	return &submissionService{
		content:   content,
		reviews:   reviews,
		attempts:  attempts,
		publisher: publisher,
	}
}

// SubmitTest は誤答数の更新を受験記録の失敗時にも巻き戻さない
func (s *submissionService) SubmitTest(ctx context.Context, userID uuid.UUID, req *model.SubmitTestRequest) (*model.SubmitTestResponse, error) {
	logger := middleware.GetLogger(ctx).With("test_id", req.TestID.String())

	resp, err := s.submit(ctx, userID, req)
	if err != nil {
		metrics.ObserveSubmissionFailure()
		logger.Warn("Test submission failed", "error", err)
		return nil, err
	}
	metrics.ObserveSubmission(resp.Score)
	logger.Info("Test submitted", "attempt_id", resp.AttemptID.String(), "score", resp.Score)
	return resp, nil
}

func (s *submissionService) submit(ctx context.Context, userID uuid.UUID, req *model.SubmitTestRequest) (*model.SubmitTestResponse, error) {
	test, err := s.content.GetTestWithQuestions(ctx, req.TestID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TEST_NOT_FOUND", "指定されたテストは存在しません。", "testId", model.ErrInvalidInput)
		}
		return nil, err
	}

	answers, err := collectAnswers(test, req.Answers)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Grade(test, answers)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.RecordMisses(ctx, userID, result.MissedConceptIDs); err != nil {
		return nil, err
	}

	attemptID, err := s.attempts.Record(ctx, userID, test.TestID, result.Score, req.FlaggedQuestionIDs)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &event.TestSubmittedEvent{
		AttemptID:        attemptID,
		UserID:           userID,
		TestID:           test.TestID,
		Score:            result.Score,
		CorrectCount:     result.CorrectCount,
		TotalQuestions:   result.TotalQuestions,
		MissedConceptIDs: result.MissedConceptIDs,
		SubmittedAt:      time.Now(),
	})

	return &model.SubmitTestResponse{
		AttemptID:        attemptID,
		Score:            result.Score,
		CorrectCount:     result.CorrectCount,
		TotalQuestions:   result.TotalQuestions,
		MissedConceptIDs: result.MissedConceptIDs,
	}, nil
}

// collectAnswers はテストに無い問題IDや同じ問題への重複回答を拒否する
func collectAnswers(test *model.Test, submitted []model.SubmittedAnswer) (map[uuid.UUID]*string, error) {
	known := make(map[uuid.UUID]struct{}, len(test.Questions))
	for _, q := range test.Questions {
		known[q.QuestionID] = struct{}{}
	}

	answers := make(map[uuid.UUID]*string, len(submitted))
	for _, a := range submitted {
		if _, ok := known[a.QuestionID]; !ok {
			return nil, model.NewAppError("UNKNOWN_QUESTION", "テストに含まれない問題への回答があります。", "answers", model.ErrInvalidInput)
		}
		if _, dup := answers[a.QuestionID]; dup {
			return nil, model.NewAppError("DUPLICATE_ANSWER", "同じ問題に複数の回答があります。", "answers", model.ErrInvalidInput)
		}
		answers[a.QuestionID] = a.UserAnswer
	}
	return answers, nil
}

// publish の失敗は提出結果に影響させない
func (s *submissionService) publish(ctx context.Context, ev *event.TestSubmittedEvent) {
	if err := s.publisher.Publish(ctx, event.TestSubmitted, ev); err != nil {
		middleware.GetLogger(ctx).Error("Failed to publish test submitted event", "error", err, "attempt_id", ev.AttemptID.String())
	}
}
