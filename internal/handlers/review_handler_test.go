package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vocab_learn/internal/model"
)

func TestReviewHandler_GetReviewList(t *testing.T) {
	userID := uuid.New()
	items := []model.ReviewItemResponse{
		{ConceptID: uuid.New(), TopicID: uuid.New(), Term: "cat", Meaning: "猫", ErrorCount: 3},
	}

	tests := []struct {
		name              string
		query             string
		expectedThreshold int
	}{
		{name: "Default threshold from config", query: "", expectedThreshold: 2},
		{name: "Explicit threshold", query: "?threshold=0", expectedThreshold: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := newTestServer(t)
			m.reviews.On("GetReviewList", mock.Anything, userID, tt.expectedThreshold).Return(items, nil).Once()

			status, body := sendRequest(t, server, httpRequestDetails{
				Method: http.MethodGet, Path: "/api/v1/reviews" + tt.query, UserID: userID,
			})

			require.Equal(t, http.StatusOK, status, string(body))
			var got []model.ReviewItemResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, items, got)
		})
	}

	t.Run("Failure - negative threshold rejected by service", func(t *testing.T) {
		server, m := newTestServer(t)
		m.reviews.On("GetReviewList", mock.Anything, userID, -1).
			Return(nil, model.NewAppError("INVALID_THRESHOLD", "閾値は0以上で指定してください。", "threshold", model.ErrInvalidInput)).Once()

		status, body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodGet, Path: "/api/v1/reviews?threshold=-1", UserID: userID,
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assertErrorCode(t, body, "INVALID_THRESHOLD")
	})
}

func TestReviewHandler_MarkReview(t *testing.T) {
	userID := uuid.New()
	conceptID := uuid.New()
	path := "/api/v1/reviews/" + conceptID.String() + "/mark"

	t.Run("Success - 204", func(t *testing.T) {
		server, m := newTestServer(t)
		m.reviews.On("SetMarked", mock.Anything, userID, conceptID, true).Return(nil).Once()

		status, body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPut, Path: path, UserID: userID, Body: map[string]bool{"isMarked": true},
		})

		assert.Equal(t, http.StatusNoContent, status)
		assert.Empty(t, body)
	})

	t.Run("Success - unmark", func(t *testing.T) {
		server, m := newTestServer(t)
		m.reviews.On("SetMarked", mock.Anything, userID, conceptID, false).Return(nil).Once()

		status, _ := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPut, Path: path, UserID: userID, Body: map[string]bool{"isMarked": false},
		})

		assert.Equal(t, http.StatusNoContent, status)
	})

	t.Run("Failure - isMarked missing", func(t *testing.T) {
		server, _ := newTestServer(t)

		status, body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPut, Path: path, UserID: userID, Body: map[string]bool{},
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assertErrorCode(t, body, "VALIDATION_ERROR")
	})

	t.Run("Failure - storage conflict", func(t *testing.T) {
		server, m := newTestServer(t)
		m.reviews.On("SetMarked", mock.Anything, userID, conceptID, true).
			Return(model.NewAppError("STORAGE_CONFLICT", "他の更新と競合しました。再度お試しください。", "", model.ErrStorageConflict)).Once()

		status, body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPut, Path: path, UserID: userID, Body: map[string]bool{"isMarked": true},
		})

		assert.Equal(t, http.StatusConflict, status)
		assertErrorCode(t, body, "STORAGE_CONFLICT")
	})
}
