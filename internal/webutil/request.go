package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"vocab_learn/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxBodyBytes はJSONリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

// DecodeAndValidate はボディをデコードし、validate タグを検証する。
// 失敗時はそのまま HandleError に渡せる AppError を返す
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", err)
	}
	return ValidateStruct(dst)
}

// ValidateStruct は validate タグの検証エラーを全件まとめた AppError にする
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationErrorResponse(validationErrors)
	}
	return err
}

// URLParamUUID は chi のURLパラメータを UUID として取り出す
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}

// QueryInt はクエリパラメータを整数で取り出す。未指定なら def
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", name+"は整数で指定してください。", name, model.ErrInvalidInput)
	}
	return n, nil
}
