package service_test

import (
	"context"
	"errors"
	"testing"

	"vocab_learn/internal/event"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service"
	servicemocks "vocab_learn/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type submissionFixture struct {
	content   *servicemocks.ContentService
	reviews   *servicemocks.ReviewService
	attempts  *servicemocks.AttemptService
	publisher *recordingPublisher
	svc       service.SubmissionService
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	f := &submissionFixture{
		content:   servicemocks.NewContentService(t),
		reviews:   servicemocks.NewReviewService(t),
		attempts:  servicemocks.NewAttemptService(t),
		publisher: &recordingPublisher{},
	}
	f.svc = service.NewSubmissionService(f.content, f.reviews, f.attempts, f.publisher)
	return f
}

// fourQuestionTest は4問のテスト。最後の問題だけ単語 cat に紐づく
func fourQuestionTest(cat uuid.UUID) *model.Test {
	test := &model.Test{TestID: uuid.New(), TopicID: uuid.New(), Title: "animals"}
	for i := 0; i < 4; i++ {
		q := model.Question{QuestionID: uuid.New(), TestID: test.TestID, Answers: []string{"a", "b"}, CorrectAnswer: "a"}
		if i == 3 {
			id := cat
			q.RelatedConceptID = &id
		}
		test.Questions = append(test.Questions, q)
	}
	return test
}

func TestSubmitTest_ScoresRecordsAndPublishes(t *testing.T) {
	ctx := context.Background()
	f := newSubmissionFixture(t)
	userID := uuid.New()
	cat := uuid.New()
	test := fourQuestionTest(cat)
	attemptID := uuid.New()

	req := &model.SubmitTestRequest{
		TestID: test.TestID,
		Answers: []model.SubmittedAnswer{
			{QuestionID: test.Questions[0].QuestionID, UserAnswer: strPtr("a")},
			{QuestionID: test.Questions[1].QuestionID, UserAnswer: strPtr("a")},
			{QuestionID: test.Questions[2].QuestionID, UserAnswer: strPtr("a")},
			{QuestionID: test.Questions[3].QuestionID, UserAnswer: strPtr("b")},
		},
		FlaggedQuestionIDs: []string{test.Questions[3].QuestionID.String()},
	}

	f.content.On("GetTestWithQuestions", mock.Anything, test.TestID).Return(test, nil).Once()
	f.reviews.On("RecordMisses", mock.Anything, userID, []uuid.UUID{cat}).Return(nil).Once()
	f.attempts.On("Record", mock.Anything, userID, test.TestID, 75, req.FlaggedQuestionIDs).Return(attemptID, nil).Once()

	resp, err := f.svc.SubmitTest(ctx, userID, req)
	require.NoError(t, err)
	assert.Equal(t, 75, resp.Score)
	assert.Equal(t, 3, resp.CorrectCount)
	assert.Equal(t, 4, resp.TotalQuestions)
	assert.Equal(t, attemptID, resp.AttemptID)
	assert.Equal(t, []uuid.UUID{cat}, resp.MissedConceptIDs)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, event.TestSubmitted, f.publisher.keys[0])
	ev := f.publisher.events[0].(*event.TestSubmittedEvent)
	assert.Equal(t, attemptID, ev.AttemptID)
	assert.Equal(t, 75, ev.Score)
}

func TestSubmitTest_UnansweredCountsAsWrong(t *testing.T) {
	f := newSubmissionFixture(t)
	userID := uuid.New()
	cat := uuid.New()
	test := fourQuestionTest(cat)

	req := &model.SubmitTestRequest{
		TestID: test.TestID,
		Answers: []model.SubmittedAnswer{
			{QuestionID: test.Questions[0].QuestionID, UserAnswer: strPtr("a")},
			{QuestionID: test.Questions[3].QuestionID, UserAnswer: nil},
		},
	}

	f.content.On("GetTestWithQuestions", mock.Anything, test.TestID).Return(test, nil).Once()
	f.reviews.On("RecordMisses", mock.Anything, userID, []uuid.UUID{cat}).Return(nil).Once()
	f.attempts.On("Record", mock.Anything, userID, test.TestID, 25, []string(nil)).Return(uuid.New(), nil).Once()

	resp, err := f.svc.SubmitTest(context.Background(), userID, req)
	require.NoError(t, err)
	assert.Equal(t, 25, resp.Score)
	assert.Equal(t, 1, resp.CorrectCount)
}

func TestSubmitTest_Rejects(t *testing.T) {
	cat := uuid.New()

	testCases := []struct {
		name    string
		test    *model.Test
		loadErr error
		answers func(test *model.Test) []model.SubmittedAnswer
		wantErr error
	}{
		{
			name:    "存在しないテスト",
			loadErr: model.NewAppError("TEST_NOT_FOUND", "", "testId", model.ErrNotFound),
			answers: func(*model.Test) []model.SubmittedAnswer { return nil },
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "テストに無い問題ID",
			test: fourQuestionTest(cat),
			answers: func(*model.Test) []model.SubmittedAnswer {
				return []model.SubmittedAnswer{{QuestionID: uuid.New(), UserAnswer: strPtr("a")}}
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "同じ問題への重複回答",
			test: fourQuestionTest(cat),
			answers: func(test *model.Test) []model.SubmittedAnswer {
				id := test.Questions[0].QuestionID
				return []model.SubmittedAnswer{{QuestionID: id, UserAnswer: strPtr("a")}, {QuestionID: id, UserAnswer: strPtr("b")}}
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "問題が0件のテスト",
			test:    &model.Test{TestID: uuid.New()},
			answers: func(*model.Test) []model.SubmittedAnswer { return nil },
			wantErr: model.ErrInvalidTestState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newSubmissionFixture(t)
			testID := uuid.New()
			if tc.test != nil {
				testID = tc.test.TestID
			}
			f.content.On("GetTestWithQuestions", mock.Anything, testID).Return(tc.test, tc.loadErr).Once()

			var answers []model.SubmittedAnswer
			if tc.test != nil {
				answers = tc.answers(tc.test)
			}
			resp, err := f.svc.SubmitTest(context.Background(), uuid.New(), &model.SubmitTestRequest{TestID: testID, Answers: answers})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.wantErr)
			// 誤答記録・受験記録・イベントは何も起きない
			f.reviews.AssertNotCalled(t, "RecordMisses", mock.Anything, mock.Anything, mock.Anything)
			f.attempts.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestSubmitTest_AttemptFailureKeepsErrorCounts(t *testing.T) {
	f := newSubmissionFixture(t)
	userID := uuid.New()
	cat := uuid.New()
	test := fourQuestionTest(cat)
	storageErr := errors.New("connection reset")

	f.content.On("GetTestWithQuestions", mock.Anything, test.TestID).Return(test, nil).Once()
	f.reviews.On("RecordMisses", mock.Anything, userID, []uuid.UUID{cat}).Return(nil).Once()
	f.attempts.On("Record", mock.Anything, userID, test.TestID, 0, mock.Anything).Return(uuid.Nil, storageErr).Once()

	resp, err := f.svc.SubmitTest(context.Background(), userID, &model.SubmitTestRequest{TestID: test.TestID})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, storageErr)
	assert.Empty(t, f.publisher.events)
}

func TestSubmitTest_PublishFailureIsIgnored(t *testing.T) {
	f := newSubmissionFixture(t)
	f.publisher.err = errors.New("broker unavailable")
	userID := uuid.New()
	test := fourQuestionTest(uuid.New())

	answers := make([]model.SubmittedAnswer, 0, len(test.Questions))
	for _, q := range test.Questions {
		answers = append(answers, model.SubmittedAnswer{QuestionID: q.QuestionID, UserAnswer: strPtr("a")})
	}

	f.content.On("GetTestWithQuestions", mock.Anything, test.TestID).Return(test, nil).Once()
	f.reviews.On("RecordMisses", mock.Anything, userID, []uuid.UUID{}).Return(nil).Once()
	f.attempts.On("Record", mock.Anything, userID, test.TestID, 100, mock.Anything).Return(uuid.New(), nil).Once()

	resp, err := f.svc.SubmitTest(context.Background(), userID, &model.SubmitTestRequest{TestID: test.TestID, Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Score)
	assert.Empty(t, resp.MissedConceptIDs)
	assert.Len(t, f.publisher.events, 1)
}
