package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"vocab_learn/internal/config"
	"vocab_learn/internal/model"
	"vocab_learn/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub のユーザーIDとロールをコンテキストに入れる
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized))
				return
			}

			// "Bearer {token}" の形式
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized))
				return
			}

			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				code, msg := "INVALID_TOKEN", "トークンが無効です。"
				if errors.Is(err, jwt.ErrTokenExpired) {
					code, msg = "TOKEN_EXPIRED", "トークンの有効期限が切れています。再度ログインしてください。"
				}
				webutil.HandleError(w, logger, model.NewAppError(code, msg, "", model.ErrUnauthorized))
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized))
				return
			}

			role := claims.Role
			if role == "" {
				role = model.RoleLearner
			}
			ctx := WithUser(r.Context(), userID, role)
			ctx = WithLogger(ctx, logger.With("user_id", userID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin は admin ロール以外を 403 で弾く。認証ミドルウェアの後に置くこと
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())
		if GetUserRoleFromContext(r.Context()) != model.RoleAdmin {
			logger.Warn("Admin access denied")
			webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", "この操作には管理者権限が必要です。", "", model.ErrForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser はユーザーIDとロールをコンテキストに格納する
func WithUser(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return context.WithValue(ctx, model.UserRoleKey, role)
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		// 認証ミドルウェアを通っていない
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return value, nil
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(model.UserRoleKey).(string)
	return role
}
