// internal/handlers/attempt_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service"
	"vocab_learn/internal/webutil"
)

type AttemptHandler struct {
	submissions service.SubmissionService
	attempts    service.AttemptService
}

func NewAttemptHandler(submissions service.SubmissionService, attempts service.AttemptService) *AttemptHandler {
	return &AttemptHandler{submissions: submissions, attempts: attempts}
}

// SubmitTest は回答を採点し、誤答と受験記録を保存した結果を返す
func (h *AttemptHandler) SubmitTest(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SubmitTest"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitTestRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid submission request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.submissions.SubmitTest(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}

// ListAttempts は新しい順の受験履歴。?limit= 省略時は設定値
func (h *AttemptHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListAttempts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	limit, err := webutil.QueryInt(r, "limit", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	attempts, err := h.attempts.ListAttempts(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if attempts == nil {
		attempts = []*model.TestAttempt{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, attempts, logger)
}
