// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"vocab_learn/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) && statusCode != http.StatusInternalServerError {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		// 内部エラーの詳細はログにだけ出す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "サーバー内部でエラーが発生しました。",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidTestState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrStorageConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger != nil {
			logger.Error("Error marshaling JSON response", slog.Any("error", err))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse は全ての検証エラーを1つの AppError にまとめる
// Field には先頭の項目を入れ、各項目のメッセージは Errors に並べる
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	fieldErrors := make([]model.FieldError, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		msg := err.Translate(Trans)
		fieldErrors = append(fieldErrors, model.FieldError{Field: err.Field(), Message: msg})
		messages = append(messages, msg)
	}

	appErr := model.NewAppError("VALIDATION_ERROR", strings.Join(messages, " "), "", model.ErrInvalidInput)
	if len(fieldErrors) > 0 {
		appErr.Detail.Field = fieldErrors[0].Field
	}
	appErr.Detail.Errors = fieldErrors
	return appErr
}
