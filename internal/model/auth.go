// internal/model/auth.go
package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"` // 秒
}

// JWTCustomClaims はJWTに含めるクレーム。sub にユーザーIDを入れる
type JWTCustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserVerificationToken はアカウント有効化用のトークン
type UserVerificationToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (UserVerificationToken) TableName() string {
	return "user_verification_tokens"
}
