// internal/handlers/stats_handler.go
package handlers

import (
	"net/http"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/service"
	"vocab_learn/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GetStats はプロフィール画面の学習統計
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
