// Package scheduler は定期実行ジョブを管理する
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vocab_learn/internal/repository"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// Scheduler は期限切れの確認トークンを定期的に削除する
type Scheduler struct {
	scheduler *gocron.Scheduler
	db        *gorm.DB
	tokenRepo repository.TokenRepository
	logger    *slog.Logger
	now       func() time.Time
}

func New(db *gorm.DB, tokenRepo repository.TokenRepository, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		db:        db,
		tokenRepo: tokenRepo,
		logger:    logger.With("component", "scheduler"),
		now:       time.Now,
	}
}

// Start はジョブを登録して非同期に動かす
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(1).Hour().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		s.PurgeExpiredTokens(ctx)
	})
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "jobs", len(s.scheduler.Jobs()))
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

// PurgeExpiredTokens は期限切れの確認トークンを削除し件数を返す
func (s *Scheduler) PurgeExpiredTokens(ctx context.Context) int64 {
	n, err := s.tokenRepo.DeleteExpired(ctx, s.db, s.now())
	if err != nil {
		s.logger.Error("Failed to purge expired verification tokens", "error", err)
		return 0
	}
	if n > 0 {
		s.logger.Info("Expired verification tokens purged", "count", n)
	}
	return n
}
