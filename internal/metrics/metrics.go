// Package metrics は Prometheus 向けの指標を定義する
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	testSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vocab_test_submissions_total",
			Help: "Total number of test submissions",
		},
		[]string{"status"},
	)

	testScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vocab_test_score",
			Help:    "Distribution of graded test scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	vocabularyErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vocab_vocabulary_errors_recorded_total",
			Help: "Total number of per-concept error increments",
		},
	)

	progressUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vocab_progress_updates_total",
			Help: "Total number of topic progress updates",
		},
		[]string{"completed"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vocab_http_request_duration_seconds",
			Help:    "Time spent processing HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveSubmission は採点済みの提出を記録する
func ObserveSubmission(score int) {
	testSubmissions.WithLabelValues("graded").Inc()
	testScores.Observe(float64(score))
}

// ObserveSubmissionFailure は採点や保存に失敗した提出を記録する
func ObserveSubmissionFailure() {
	testSubmissions.WithLabelValues("failed").Inc()
}

func ObserveVocabularyErrors(n int) {
	vocabularyErrors.Add(float64(n))
}

func ObserveProgressUpdate(completed bool) {
	progressUpdates.WithLabelValues(strconv.FormatBool(completed)).Inc()
}

// Handler は /metrics 用
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware はリクエスト処理時間を chi のルートパターン単位で記録する
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		httpDuration.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	})
}
