// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"vocab_learn/internal/config"
	"vocab_learn/internal/metrics"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/service"
)

// RouterDeps はルーター構築に必要な依存
type RouterDeps struct {
	Config      *config.Config
	Logger      *slog.Logger
	DB          *gorm.DB // ヘルスチェック用。nil なら ping しない
	Auth        service.AuthService
	Content     service.ContentService
	Submissions service.SubmissionService
	Attempts    service.AttemptService
	Reviews     service.ReviewService
	Progress    service.ProgressService
	Stats       service.StatsService
}

func NewRouter(d RouterDeps) http.Handler {
	cfg := d.Config

	authHandler := NewAuthHandler(d.Auth)
	contentHandler := NewContentHandler(d.Content)
	adminHandler := NewAdminHandler(d.Content, d.Auth)
	attemptHandler := NewAttemptHandler(d.Submissions, d.Attempts)
	progressHandler := NewProgressHandler(d.Progress)
	reviewHandler := NewReviewHandler(d.Reviews, cfg.App.ReviewErrorThreshold)
	statsHandler := NewStatsHandler(d.Stats)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger))
	r.Use(metrics.Middleware)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Get("/auth/verify", authHandler.VerifyAccount)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				d.Logger.Warn("Authentication is disabled. Using X-User-ID header middleware")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Get("/me", authHandler.GetMe)

			r.Route("/topics", func(r chi.Router) {
				r.Get("/", contentHandler.ListTopics)
				r.Get("/{topic_id}", contentHandler.GetTopic)
				r.Get("/{topic_id}/concepts", contentHandler.ListConcepts)
				r.Get("/{topic_id}/tests", contentHandler.ListTests)
				r.Get("/{topic_id}/progress", progressHandler.GetProgress)
				r.Put("/{topic_id}/progress", progressHandler.UpdateProgress)
			})
			r.Get("/tests/{test_id}", contentHandler.GetTestForTaking)

			r.Route("/attempts", func(r chi.Router) {
				r.Post("/", attemptHandler.SubmitTest)
				r.Get("/", attemptHandler.ListAttempts)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", reviewHandler.GetReviewList)
				r.Put("/{concept_id}/mark", reviewHandler.MarkReview)
			})

			r.Get("/profile/stats", statsHandler.GetStats)

			// --- Admin routes ---
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/topics", adminHandler.CreateTopic)
				r.Put("/topics/{topic_id}", adminHandler.UpdateTopic)
				r.Delete("/topics/{topic_id}", adminHandler.DeleteTopic)
				r.Post("/topics/{topic_id}/concepts", adminHandler.CreateConcept)
				r.Post("/topics/{topic_id}/concepts/import", adminHandler.ImportConcepts)
				r.Post("/topics/{topic_id}/tests", adminHandler.CreateTest)
				r.Put("/concepts/{concept_id}", adminHandler.UpdateConcept)
				r.Delete("/concepts/{concept_id}", adminHandler.DeleteConcept)
				r.Post("/tests/{test_id}/questions", adminHandler.AddQuestion)
				r.Delete("/tests/{test_id}", adminHandler.DeleteTest)
				r.Get("/users", adminHandler.ListUsers)
			})
		})
	})

	r.Get("/health", healthHandler(d.DB))
	r.Handle("/metrics", metrics.Handler())

	return r
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if db != nil {
			sqlDB, err := db.DB()
			if err != nil {
				slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
