package repository

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"vocab_learn/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/driver/sqlite"                 // ローカル実行・テスト用
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteScheme = "sqlite://"

// NewDB はURLのスキームに応じて postgres か sqlite に接続する
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	// APP_ENV=dev のときだけ全クエリを出す
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	var dialector gorm.Dialector
	isSQLite := strings.HasPrefix(databaseURL, sqliteScheme)
	if isSQLite {
		dialector = sqlite.Open(strings.TrimPrefix(databaseURL, sqliteScheme))
	} else {
		dialector = postgres.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に揃える
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if isSQLite {
		// sqlite は書き込みが1本に限られる
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", "sqlite", isSQLite)
	return db, nil
}

// Models はマイグレーション対象のテーブル一覧
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.UserVerificationToken{},
		&model.Topic{},
		&model.Concept{},
		&model.Test{},
		&model.Question{},
		&model.TestAttempt{},
		&model.UserVocabularyError{},
		&model.UserTopicProgress{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// isUniqueViolation は postgres / sqlite どちらの一意制約違反も判定する
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
