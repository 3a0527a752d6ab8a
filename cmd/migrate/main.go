// cmd/migrate/main.go
//
// スキーマのマイグレーションと初期データ投入を行う管理用コマンド。
//
//	go run ./cmd/migrate --seed-topic Animals --seed-file words.xlsx
//	go run ./cmd/migrate --promote-admin admin@example.com
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"

	"vocab_learn/internal/config"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"
	"vocab_learn/internal/service"
)

func main() {
	configDir := flag.String("config", "../configs", "config.yaml のあるディレクトリ")
	seedTopic := flag.String("seed-topic", "", "単語を取り込むトピック名 (無ければ作成)")
	seedFile := flag.String("seed-file", "", "取り込む CSV / XLSX ファイル")
	promoteAdmin := flag.String("promote-admin", "", "admin ロールに昇格させるユーザーのメールアドレス")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.RFC3339}))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configDir); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Migration completed", slog.Int("tables", len(repository.Models())))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *seedFile != "" {
		if *seedTopic == "" {
			logger.Error("--seed-topic is required with --seed-file")
			os.Exit(2)
		}
		content := service.NewContentService(db,
			repository.NewGormTopicRepository(),
			repository.NewGormConceptRepository(),
			repository.NewGormTestRepository(),
			nil)
		if err := seed(ctx, content, *seedTopic, *seedFile); err != nil {
			logger.Error("Seeding failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	if *promoteAdmin != "" {
		if err := repository.NewGormUserRepository().UpdateRoleByEmail(ctx, db, *promoteAdmin, model.RoleAdmin); err != nil {
			logger.Error("Failed to promote user", slog.String("email", *promoteAdmin), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("User promoted to admin", slog.String("email", *promoteAdmin))
	}
}

// seed はトピックを名前で探し (無ければ作成し)、ファイルの単語を取り込む
func seed(ctx context.Context, content service.ContentService, topicName, path string) error {
	topics, err := content.ListTopics(ctx)
	if err != nil {
		return err
	}
	var topic *model.Topic
	for _, t := range topics {
		if t.Name == topicName {
			topic = t
			break
		}
	}
	if topic == nil {
		topic, err = content.CreateTopic(ctx, &model.TopicRequest{Name: topicName})
		if err != nil {
			return err
		}
		slog.Info("Topic created", slog.String("name", topicName), slog.String("topic_id", topic.TopicID.String()))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := content.ImportConcepts(ctx, topic.TopicID, filepath.Base(path), f)
	if err != nil {
		return err
	}
	slog.Info("Concepts imported",
		slog.String("topic", topicName),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Any("errors", result.Errors))
	return nil
}
