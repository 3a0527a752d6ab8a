package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"vocab_learn/internal/config"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const verificationTokenTTL = 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	VerifyAccount(ctx context.Context, tokenString string) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error)
}

type authService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

// Register は新しいユーザーを登録し、有効化メールを送信します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return internalError(err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
			Role:         model.RoleLearner,
			IsActive:     false,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// 同時登録でチェックをすり抜けた場合
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user

		tokenString, err := s.generateAndSaveVerificationToken(ctx, tx, newUser.UserID)
		if err != nil {
			return err
		}

		if err := s.mailer.SendVerificationMail(ctx, newUser, tokenString); err != nil {
			return model.NewAppError("EMAIL_SEND_FAILED", "確認メールの送信に失敗しました。時間をおいて再度お試しください。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered and verification email sent", "user_id", newUser.UserID, "email", newUser.Email)
	return newUser, nil
}

// VerifyAccount は提供されたトークンを検証し、アカウントを有効化します
func (s *authService) VerifyAccount(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindVerificationToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Verification token not found")
				return model.NewAppError("INVALID_TOKEN", "このリンクは無効か、既に使用されています。", "token", model.ErrInvalidInput)
			}
			logger.Error("Error finding verification token", "error", err)
			return internalError(err)
		}

		if time.Now().After(token.ExpiresAt) {
			logger.Warn("Verification token expired", "expires_at", token.ExpiresAt)
			_ = s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "このリンクの有効期限が切れています。", "token", model.ErrInvalidInput)
		}

		if err := s.userRepo.Activate(ctx, tx, token.UserID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Error("User not found during activation", "user_id", token.UserID)
				return model.NewAppError("NOT_FOUND", "アカウントが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to activate user account", "error", err, "user_id", token.UserID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの有効化に失敗しました。", "", err)
		}

		// トークン削除の失敗は致命的ではない
		if err := s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used verification token", "error", err)
		}

		logger.Info("Account verified successfully", "user_id", token.UserID)
		return nil
	})
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, internalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
	}

	if !user.IsActive {
		logger.Warn("Login failed: account not active", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "アカウントが有効化されていません。登録時に送信されたメールをご確認ください。", "", model.ErrForbidden)
	}

	now := time.Now()
	claims := &model.JWTCustomClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.App.Name,
			Subject:   user.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{
		AccessToken: signedToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.JWT.AccessTokenTTL.Seconds()),
	}, nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, internalError(err)
	}
	return user, nil
}

func (s *authService) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.List(ctx, s.db, limit, offset)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list users", "error", err)
		return nil, internalError(err)
	}
	return users, nil
}

// --- ヘルパー関数 ---

func (s *authService) generateAndSaveVerificationToken(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (string, error) {
	logger := middleware.GetLogger(ctx)
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		logger.Error("Failed to generate random bytes for token", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	tokenString := hex.EncodeToString(tokenBytes)

	verificationToken := &model.UserVerificationToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}
	if err := s.tokenRepo.CreateVerificationToken(ctx, tx, verificationToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの保存に失敗しました。", "", err)
	}
	return tokenString, nil
}
