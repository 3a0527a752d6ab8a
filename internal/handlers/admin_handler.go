// internal/handlers/admin_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service"
	"vocab_learn/internal/webutil"
)

// 取り込みファイルの上限 (10MB)
const maxImportFileSize = 10 << 20

// AdminHandler は管理者向けのコンテンツ管理・ユーザー一覧API
type AdminHandler struct {
	content service.ContentService
	auth    service.AuthService
}

func NewAdminHandler(content service.ContentService, auth service.AuthService) *AdminHandler {
	return &AdminHandler{content: content, auth: auth}
}

func (h *AdminHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateTopic"))

	var req model.TopicRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topic, err := h.content.CreateTopic(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Topic created", slog.String("topic_id", topic.TopicID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, topic, logger)
}

func (h *AdminHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateTopic"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.TopicRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topic, err := h.content.UpdateTopic(r.Context(), topicID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}

// DeleteTopic は配下の単語・テスト・学習状況ごと削除する
func (h *AdminHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteTopic"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.content.DeleteTopic(r.Context(), topicID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Topic deleted", slog.String("topic_id", topicID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) CreateConcept(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateConcept"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.ConceptRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	concept, err := h.content.CreateConcept(r.Context(), topicID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, concept, logger)
}

func (h *AdminHandler) UpdateConcept(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateConcept"))

	conceptID, err := webutil.URLParamUUID(r, "concept_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.ConceptRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	concept, err := h.content.UpdateConcept(r.Context(), conceptID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, concept, logger)
}

func (h *AdminHandler) DeleteConcept(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteConcept"))

	conceptID, err := webutil.URLParamUUID(r, "concept_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.content.DeleteConcept(r.Context(), conceptID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportConcepts は multipart の "file" (CSV / XLSX) から単語を一括登録する
func (h *AdminHandler) ImportConcepts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ImportConcepts"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportFileSize)
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		logger.Warn("Failed to parse multipart form", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_FILE", "ファイルを読み取れませんでした。", "file", model.ErrInvalidInput))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			webutil.HandleError(w, logger, model.NewAppError("FILE_REQUIRED", "ファイルを指定してください。", "file", model.ErrInvalidInput))
			return
		}
		webutil.HandleError(w, logger, model.NewAppError("INVALID_FILE", "ファイルを読み取れませんでした。", "file", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	result, err := h.content.ImportConcepts(r.Context(), topicID, header.Filename, file)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Concepts imported",
		slog.String("filename", header.Filename),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *AdminHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateTest"))

	topicID, err := webutil.URLParamUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateTestRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	test, err := h.content.CreateTest(r.Context(), topicID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, test, logger)
}

func (h *AdminHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "AddQuestion"))

	testID, err := webutil.URLParamUUID(r, "test_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateQuestionRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	question, err := h.content.AddQuestion(r.Context(), testID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, question, logger)
}

func (h *AdminHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteTest"))

	testID, err := webutil.URLParamUUID(r, "test_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.content.DeleteTest(r.Context(), testID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers は ?limit= と ?offset= でページングする
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListUsers"))

	limit, err := webutil.QueryInt(r, "limit", 50)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	offset, err := webutil.QueryInt(r, "offset", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	users, err := h.auth.ListUsers(r.Context(), limit, offset)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	resp := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, model.NewUserResponse(u))
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
