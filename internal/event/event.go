// Package event は学習イベントの発行を扱う
package event

import (
	"context"
	"log/slog"
	"time"

	"vocab_learn/internal/config"
	"vocab_learn/internal/middleware"

	"github.com/google/uuid"
)

// ルーティングキー
const (
	TestSubmitted = "test.submitted"
)

// TestSubmittedEvent はテスト提出時に発行する
type TestSubmittedEvent struct {
	AttemptID        uuid.UUID   `json:"attemptId"`
	UserID           uuid.UUID   `json:"userId"`
	TestID           uuid.UUID   `json:"testId"`
	Score            int         `json:"score"`
	CorrectCount     int         `json:"correctCount"`
	TotalQuestions   int         `json:"totalQuestions"`
	MissedConceptIDs []uuid.UUID `json:"missedConceptIds"`
	SubmittedAt      time.Time   `json:"submittedAt"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// LogPublisher はイベントをログに出すだけ
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	middleware.GetLogger(ctx).Info("--- Publishing event (LogPublisher) ---", "routing_key", routingKey, "payload", payload)
	return nil
}

func (LogPublisher) Close() error { return nil }

// NewPublisher は events.type に応じて実装を選ぶ。amqp への接続に失敗したら LogPublisher に落とす
func NewPublisher(cfg *config.Config) Publisher {
	logger := slog.Default()
	switch cfg.Events.Type {
	case "amqp":
		logger.Info("Initializing AMQP event publisher...", "exchange", cfg.Events.Exchange)
		p, err := NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			logger.Error("Failed to connect to AMQP broker, falling back to LogPublisher", "error", err)
			return LogPublisher{}
		}
		return p
	case "log", "":
		logger.Info("Initializing Log event publisher...")
		return LogPublisher{}
	default:
		logger.Warn("Unknown events type, defaulting to LogPublisher", "type", cfg.Events.Type)
		return LogPublisher{}
	}
}
