// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocab_learn/internal/config"
	"vocab_learn/internal/handlers"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service/mocks"
)

// serviceMocks はルーターに注入したモック一式
type serviceMocks struct {
	auth        *mocks.AuthService
	content     *mocks.ContentService
	submissions *mocks.SubmissionService
	attempts    *mocks.AttemptService
	reviews     *mocks.ReviewService
	progress    *mocks.ProgressService
	stats       *mocks.StatsService
}

// newTestServer は開発用認証 (X-User-ID) でルーターを立ち上げる
func newTestServer(t *testing.T) (*httptest.Server, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		auth:        mocks.NewAuthService(t),
		content:     mocks.NewContentService(t),
		submissions: mocks.NewSubmissionService(t),
		attempts:    mocks.NewAttemptService(t),
		reviews:     mocks.NewReviewService(t),
		progress:    mocks.NewProgressService(t),
		stats:       mocks.NewStatsService(t),
	}
	cfg := &config.Config{}
	cfg.Auth.Enabled = false
	cfg.App.ReviewErrorThreshold = 2

	router := handlers.NewRouter(handlers.RouterDeps{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Auth:        m.auth,
		Content:     m.content,
		Submissions: m.submissions,
		Attempts:    m.attempts,
		Reviews:     m.reviews,
		Progress:    m.progress,
		Stats:       m.stats,
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, m
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	UserID  uuid.UUID
	Admin   bool
	Headers map[string]string
}

// sendRequest はHTTPリクエストを送信し、ステータスとボディを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.UserID != uuid.Nil {
		req.Header.Set("X-User-ID", details.UserID.String())
	}
	if details.Admin {
		req.Header.Set("X-User-Role", model.RoleAdmin)
	}
	for k, v := range details.Headers {
		req.Header.Set(k, v)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to send request")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp.StatusCode, respBody
}

// assertErrorCode はエラーレスポンスのコードを検証する
func assertErrorCode(t *testing.T, body []byte, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal error response: %s", string(body))
	assert.Equal(t, expectedCode, errResp.Error.Code)
}
