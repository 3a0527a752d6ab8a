package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vocab_learn/internal/config"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub, role string, exp time.Time) string {
	t.Helper()
	claims := &model.JWTCustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

// echoUser はコンテキストのユーザー情報をヘッダーに書き戻す
func echoUser(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("X-Got-User", id.String())
	w.Header().Set("X-Got-Role", middleware.GetUserRoleFromContext(r.Context()))
	w.WriteHeader(http.StatusOK)
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: testSecret}}
	handler := middleware.JWTAuthMiddleware(cfg)(http.HandlerFunc(echoUser))
	userID := uuid.New()

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantRole   string
	}{
		{"有効なトークン", "Bearer " + signToken(t, userID.String(), model.RoleAdmin, time.Now().Add(time.Hour)), http.StatusOK, model.RoleAdmin},
		{"ロール無しは learner", "Bearer " + signToken(t, userID.String(), "", time.Now().Add(time.Hour)), http.StatusOK, model.RoleLearner},
		{"ヘッダー無し", "", http.StatusUnauthorized, ""},
		{"形式違い", "Token abc", http.StatusUnauthorized, ""},
		{"期限切れ", "Bearer " + signToken(t, userID.String(), "", time.Now().Add(-time.Minute)), http.StatusUnauthorized, ""},
		{"sub がUUIDでない", "Bearer " + signToken(t, "someone", "", time.Now().Add(time.Hour)), http.StatusUnauthorized, ""},
		{"署名が違う", "Bearer " + signToken(t, userID.String(), "", time.Now().Add(time.Hour)) + "x", http.StatusUnauthorized, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rr.Header().Get("X-Got-User"))
				assert.Equal(t, tc.wantRole, rr.Header().Get("X-Got-Role"))
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := middleware.DevUserContextMiddleware(middleware.RequireAdmin(http.HandlerFunc(echoUser)))
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", userID.String())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req.Header.Set("X-User-Role", model.RoleAdmin)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.RoleAdmin, rr.Header().Get("X-Got-Role"))
}

func TestDevUserContextMiddleware_RejectsMissingOrInvalidHeader(t *testing.T) {
	handler := middleware.DevUserContextMiddleware(http.HandlerFunc(echoUser))

	for _, v := range []string{"", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if v != "" {
			req.Header.Set("X-User-ID", v)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	}
}
