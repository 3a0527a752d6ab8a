// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"vocab_learn/internal/cache"
	"vocab_learn/internal/config"
	"vocab_learn/internal/event"
	"vocab_learn/internal/handlers"
	"vocab_learn/internal/repository"
	"vocab_learn/internal/scheduler"
	"vocab_learn/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	log.Println("Log Config Loaded...")

	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	// 1. Database
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Cache / Events / Mailer
	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	testCache, closeCache, err := cache.NewTestCache(initCtx, &config.Cfg.Redis, logger)
	initCancel()
	if err != nil {
		// キャッシュは必須ではない
		slog.Warn("Redis unavailable, continuing without test cache", slog.Any("error", err))
		testCache, closeCache = cache.NoopCache{}, func() error { return nil }
	}
	defer closeCache()

	publisher := event.NewPublisher(&config.Cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("Error closing event publisher", slog.Any("error", err))
		}
	}()

	mailer, err := service.NewMailer(&config.Cfg)
	if err != nil {
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	topicRepo := repository.NewGormTopicRepository()
	conceptRepo := repository.NewGormConceptRepository()
	testRepo := repository.NewGormTestRepository()
	vocabErrorRepo := repository.NewGormVocabErrorRepository()
	progressRepo := repository.NewGormTopicProgressRepository()
	attemptRepo := repository.NewGormAttemptRepository()

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, &config.Cfg)
	contentService := service.NewContentService(db, topicRepo, conceptRepo, testRepo, testCache)
	reviewService := service.NewReviewService(db, vocabErrorRepo, contentService)
	attemptService := service.NewAttemptService(db, attemptRepo, config.Cfg.App.AttemptHistoryLimit)
	progressService := service.NewProgressService(db, progressRepo, contentService)
	statsService := service.NewStatsService(db, vocabErrorRepo, progressRepo, attemptRepo)
	submissionService := service.NewSubmissionService(contentService, reviewService, attemptService, publisher)

	// 4. Scheduler
	if config.Cfg.Scheduler.Enabled {
		sched := scheduler.New(db, tokenRepo, logger)
		if err := sched.Start(); err != nil {
			slog.Error("Error starting scheduler", slog.Any("error", err))
			os.Exit(1)
		}
		defer sched.Stop()
	}

	// 5. Router
	router := handlers.NewRouter(handlers.RouterDeps{
		Config:      &config.Cfg,
		Logger:      logger,
		DB:          db,
		Auth:        authService,
		Content:     contentService,
		Submissions: submissionService,
		Attempts:    attemptService,
		Reviews:     reviewService,
		Progress:    progressService,
		Stats:       statsService,
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON で出力する
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
