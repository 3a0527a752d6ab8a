// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternalServer   = errors.New("internal server error")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrConflict         = errors.New("resource conflict")  // 重複エラー用
	ErrInvalidTestState = errors.New("invalid test state") // 問題が0件のテストを採点しようとした
	ErrStorageConflict  = errors.New("storage conflict")   // upsert を再試行しても解消しない競合
)

// FieldError は入力検証エラー1件分
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorDetail はクライアントに返すエラーの中身
// Field は先頭のエラー項目、Errors は検証エラーの全件
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Field   string       `json:"field,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はセンチネルエラーにクライアント向けの詳細を付与したもの
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Detail.Message
	}
	return e.Detail.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
