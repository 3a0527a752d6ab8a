// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service"
	"vocab_learn/internal/webutil"
)

type ReviewHandler struct {
	service          service.ReviewService
	defaultThreshold int
}

// NewReviewHandler の defaultThreshold は ?threshold= 省略時に使う
func NewReviewHandler(s service.ReviewService, defaultThreshold int) *ReviewHandler {
	return &ReviewHandler{service: s, defaultThreshold: defaultThreshold}
}

// GetReviewList は誤答数が閾値を超えた単語、またはマーク済みの単語を返す
func (h *ReviewHandler) GetReviewList(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetReviewList"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	threshold, err := webutil.QueryInt(r, "threshold", h.defaultThreshold)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	items, err := h.service.GetReviewList(r.Context(), userID, threshold)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []model.ReviewItemResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

func (h *ReviewHandler) MarkReview(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "MarkReview"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	conceptID, err := webutil.URLParamUUID(r, "concept_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.MarkReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.SetMarked(r.Context(), userID, conceptID, *req.IsMarked); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
