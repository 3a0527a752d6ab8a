// internal/handlers/content_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service"
	"vocab_learn/internal/webutil"
)

// ContentHandler は学習者向けのトピック・単語・テストの参照API
type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{service: s}
}

func (h *ContentHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListTopics"))

	topics, err := h.service.ListTopics(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if topics == nil {
		topics = []*model.Topic{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

func (h *ContentHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetTopic"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topic, err := h.service.GetTopic(r.Context(), topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}

// ListConcepts はトピックの単語 (フラッシュカード) 一覧
func (h *ContentHandler) ListConcepts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListConcepts"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	concepts, err := h.service.ListConcepts(r.Context(), topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if concepts == nil {
		concepts = []*model.Concept{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, concepts, logger)
}

func (h *ContentHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListTests"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	tests, err := h.service.ListTests(r.Context(), topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if tests == nil {
		tests = []*model.Test{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, tests, logger)
}

// GetTestForTaking は正解を含まない受験用のテストを返す
func (h *ContentHandler) GetTestForTaking(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetTestForTaking"))

	testID, err := webutil.URLParamUUID(r, "test_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	test, err := h.service.GetTestForTaking(r.Context(), testID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, test, logger)
}
