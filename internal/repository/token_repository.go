//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vocab_learn/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, db *gorm.DB, token *model.UserVerificationToken) error
	FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error)
	DeleteVerificationToken(ctx context.Context, db *gorm.DB, token string) error
	// DeleteExpired は now 時点で期限切れのトークンを削除し件数を返す
	DeleteExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) CreateVerificationToken(ctx context.Context, db *gorm.DB, token *model.UserVerificationToken) error {
	if err := db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("gormTokenRepository.CreateVerificationToken: %w", err)
	}
	return nil
}

func (r *gormTokenRepository) FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error) {
	var t model.UserVerificationToken
	if err := db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTokenRepository.FindVerificationToken: %w", err)
	}
	return &t, nil
}

func (r *gormTokenRepository) DeleteVerificationToken(ctx context.Context, db *gorm.DB, token string) error {
	if err := db.WithContext(ctx).Where("token = ?", token).Delete(&model.UserVerificationToken{}).Error; err != nil {
		return fmt.Errorf("gormTokenRepository.DeleteVerificationToken: %w", err)
	}
	return nil
}

func (r *gormTokenRepository) DeleteExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	result := db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.UserVerificationToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("gormTokenRepository.DeleteExpired: %w", result.Error)
	}
	return result.RowsAffected, nil
}
