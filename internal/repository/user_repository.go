//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	Activate(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
	List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*model.User, error)
	UpdateRoleByEmail(ctx context.Context, db *gorm.DB, email, role string) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create user", "error", result.Error, "email", user.Email)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "email", user.Email)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding user by ID in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("User not found by email", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by email in DB", "error", result.Error, "email", email)
		return nil, fmt.Errorf("gormUserRepository.FindByEmail: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) Activate(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	result := db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Update("is_active", true)
	if result.Error != nil {
		return fmt.Errorf("gormUserRepository.Activate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*model.User, error) {
	var users []*model.User
	result := db.WithContext(ctx).Order("created_at ASC").Limit(limit).Offset(offset).Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("gormUserRepository.List: %w", result.Error)
	}
	return users, nil
}

// UpdateRoleByEmail は管理者の昇格に使う (cmd/migrate から)
func (r *gormUserRepository) UpdateRoleByEmail(ctx context.Context, db *gorm.DB, email, role string) error {
	result := db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("gormUserRepository.UpdateRoleByEmail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
