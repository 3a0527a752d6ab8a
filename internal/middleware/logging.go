package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// maxLoggedBody を超えるボディは切り詰めてログに出す
const maxLoggedBody = 4 << 10

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名 (小文字)
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// パスワードやトークンはボディ内でも伏せる
var sensitiveJSONField = regexp.MustCompile(`"(password|accessToken|token)"\s*:\s*"[^"]*"`)

// responseLogger は http.ResponseWriter をラップし、ステータスコードと (デバッグ時のみ) ボディを記録します。
type responseLogger struct {
	http.ResponseWriter
	statusCode  int
	bytesOut    int
	captureBody bool
	body        bytes.Buffer
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	if rl.captureBody && rl.body.Len() < maxLoggedBody {
		rl.body.Write(b)
	}
	n, err := rl.ResponseWriter.Write(b)
	rl.bytesOut += n
	return n, err
}

// LoggingMiddleware はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// chi の RequestID ミドルウェアより後に置くこと
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			debug := logger.Enabled(r.Context(), slog.LevelDebug)

			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			// multipart (インポート用ファイル) は読まない
			var reqBodyBytes []byte
			if debug && r.Body != nil && !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
				reqBodyBytes, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewReader(reqBodyBytes))
			}

			rl := &responseLogger{ResponseWriter: w, statusCode: http.StatusOK, captureBody: debug}
			next.ServeHTTP(rl, r)

			latency := time.Since(startTime)
			logLevel := slog.LevelInfo
			if rl.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rl.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"status", rl.statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.bytesOut,
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", maskBody(reqBodyBytes),
				)
				requestLogger.Debug("Response detail",
					"status", rl.statusCode,
					"headers", formatHeaders(rl.Header()),
					"body", maskBody(rl.body.Bytes()),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングする
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

func maskBody(b []byte) string {
	if len(b) > maxLoggedBody {
		b = b[:maxLoggedBody]
	}
	return sensitiveJSONField.ReplaceAllString(string(b), `"$1":"[SENSITIVE]"`)
}
