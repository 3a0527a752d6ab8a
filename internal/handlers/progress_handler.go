// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service"
	"vocab_learn/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.GetProgress(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// UpdateProgress はフラッシュカードの現在位置を保存する。進捗率は後退しない
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.ProgressUpdateRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.Advance(r.Context(), userID, topicID, *req.CurrentWordIndex, *req.TotalWords)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}
