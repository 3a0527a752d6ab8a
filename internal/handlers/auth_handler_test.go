package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vocab_learn/internal/config"
	"vocab_learn/internal/handlers"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service/mocks"
)

func TestAuthHandler_Register(t *testing.T) {
	validBody := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "password123"}

	tests := []struct {
		name         string
		body         interface{}
		setupMock    func(m *serviceMocks)
		expectedCode int
		errorCode    string
	}{
		{
			name: "Success",
			body: validBody,
			setupMock: func(m *serviceMocks) {
				m.auth.On("Register", mock.Anything, &model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}).
					Return(&model.User{UserID: uuid.New(), Email: "alice@example.com"}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Failure - invalid email",
			body:         map[string]string{"name": "Alice", "email": "not-an-email", "password": "password123"},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
		{
			name:         "Failure - short password",
			body:         map[string]string{"name": "Alice", "email": "alice@example.com", "password": "short"},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
		{
			name: "Failure - duplicate email",
			body: validBody,
			setupMock: func(m *serviceMocks) {
				m.auth.On("Register", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)).Once()
			},
			expectedCode: http.StatusConflict,
			errorCode:    "DUPLICATE_EMAIL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := newTestServer(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			status, body := sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/auth/register", Body: tt.body})

			assert.Equal(t, tt.expectedCode, status, string(body))
			if tt.errorCode != "" {
				assertErrorCode(t, body, tt.errorCode)
			}
		})
	}
}

func TestAuthHandler_VerifyAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, m := newTestServer(t)
		m.auth.On("VerifyAccount", mock.Anything, "abcdef0123456789").Return(nil).Once()

		status, _ := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/auth/verify?token=abcdef0123456789"})

		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("Failure - token missing", func(t *testing.T) {
		server, _ := newTestServer(t)

		status, body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/auth/verify"})

		assert.Equal(t, http.StatusBadRequest, status)
		assertErrorCode(t, body, "INVALID_REQUEST")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, m := newTestServer(t)
		resp := &model.LoginResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600}
		m.auth.On("Login", mock.Anything, &model.LoginRequest{Email: "alice@example.com", Password: "password123"}).Return(resp, nil).Once()

		status, body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPost, Path: "/api/v1/auth/login",
			Body: map[string]string{"email": "alice@example.com", "password": "password123"},
		})

		require.Equal(t, http.StatusOK, status, string(body))
		assert.JSONEq(t, `{"accessToken":"token","tokenType":"Bearer","expiresIn":3600}`, string(body))
	})

	t.Run("Failure - wrong credentials", func(t *testing.T) {
		server, m := newTestServer(t)
		m.auth.On("Login", mock.Anything, mock.Anything).
			Return(nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)).Once()

		status, body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPost, Path: "/api/v1/auth/login",
			Body: map[string]string{"email": "alice@example.com", "password": "wrong"},
		})

		assert.Equal(t, http.StatusUnauthorized, status)
		assertErrorCode(t, body, "INVALID_CREDENTIALS")
	})
}

// JWT 認証を有効にしたルーターで /me まで通す
func TestRouter_JWTAuthEnabled(t *testing.T) {
	const secret = "router-test-secret"
	authMock := mocks.NewAuthService(t)
	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.JWT.SecretKey = secret

	router := handlers.NewRouter(handlers.RouterDeps{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Auth:        authMock,
		Content:     mocks.NewContentService(t),
		Submissions: mocks.NewSubmissionService(t),
		Attempts:    mocks.NewAttemptService(t),
		Reviews:     mocks.NewReviewService(t),
		Progress:    mocks.NewProgressService(t),
		Stats:       mocks.NewStatsService(t),
	})
	server := httptest.NewServer(router)
	defer server.Close()

	userID := uuid.New()
	claims := &model.JWTCustomClaims{
		Role: model.RoleLearner,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	authMock.On("GetUser", mock.Anything, userID).
		Return(&model.User{UserID: userID, Name: "Alice", Email: "alice@example.com", Role: model.RoleLearner, IsActive: true}, nil).Once()

	status, body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodGet, Path: "/api/v1/me", Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var me model.UserResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, userID, me.UserID)

	// X-User-ID だけでは通らない
	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/me", UserID: userID})
	assert.Equal(t, http.StatusUnauthorized, status)
	assertErrorCode(t, body, "UNAUTHORIZED")
}

func TestHealthAndMetrics(t *testing.T) {
	server, _ := newTestServer(t)

	status, body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/health"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(body))

	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/metrics"})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "vocab_http_request_duration_seconds")
}
