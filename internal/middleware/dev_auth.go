// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"vocab_learn/internal/model"
	"vocab_learn/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダー (と任意の X-User-Role) をそのままコンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID ヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "value", userIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID の形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		role := model.RoleLearner
		if r.Header.Get("X-User-Role") == model.RoleAdmin {
			role = model.RoleAdmin
		}
		logger.Debug("[DEV AUTH] User set to context (no validation)", "user_id", userID.String(), "role", role)

		ctx := WithUser(r.Context(), userID, role)
		ctx = WithLogger(ctx, logger.With("user_id", userID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
