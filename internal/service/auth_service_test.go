package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vocab_learn/internal/config"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository/mocks"
	"vocab_learn/internal/service"
	servicemocks "vocab_learn/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite

	mockUserRepo  *mocks.UserRepository
	mockTokenRepo *mocks.TokenRepository
	mockMailer    *servicemocks.Mailer
	cfg           *config.Config
	authService   service.AuthService
}

// 各テストの前にモックを作り直す
func (s *AuthServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(mocks.UserRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockMailer = new(servicemocks.Mailer)

	s.cfg = &config.Config{
		App: config.AppConfig{Name: "VocabLearn", FrontendURL: "http://localhost:3000"},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}

	// トランザクションを張るためだけに実DBを使う (リポジトリはモック)
	db := newTestDB(s.T())
	s.authService = service.NewAuthService(db, s.mockUserRepo, s.mockTokenRepo, s.mockMailer, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) assertMocks() {
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockTokenRepo.AssertExpectations(s.T())
	s.mockMailer.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegister() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "Success - 正常に登録できる",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.UserVerificationToken")).Return(nil).Once()
				s.mockMailer.On("SendVerificationMail", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "test@example.com" && !u.IsActive
				}), mock.AnythingOfType("string")).Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Require().NoError(err)
				s.Equal("test@example.com", user.Email)
				s.Equal(model.RoleLearner, user.Role)
				s.False(user.IsActive)
				s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password")))
			},
		},
		{
			name: "Failure - Emailが重複している",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(&model.User{}, nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
				s.ErrorIs(err, model.ErrConflict)
			},
		},
		{
			name: "Failure - 同時登録で一意制約に当たった",
			req:  &model.RegisterRequest{Name: "test", Email: "race@example.com", Password: "password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "race@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(model.ErrConflict).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.ErrorIs(err, model.ErrConflict)
			},
		},
		{
			name: "Failure - メール送信に失敗",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			user, err := s.authService.Register(context.Background(), tc.req)

			tc.checkResult(user, err)
			s.assertMocks()
		})
	}
}

func (s *AuthServiceTestSuite) TestVerifyAccount() {
	userID := uuid.New()

	s.Run("Success - 有効なトークンでアカウントを有効化", func() {
		s.SetupTest()
		token := &model.UserVerificationToken{Token: "tok", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "tok").Return(token, nil).Once()
		s.mockUserRepo.On("Activate", mock.Anything, mock.Anything, userID).Return(nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "tok").Return(nil).Once()

		s.NoError(s.authService.VerifyAccount(context.Background(), "tok"))
		s.assertMocks()
	})

	s.Run("Failure - 期限切れトークン", func() {
		s.SetupTest()
		token := &model.UserVerificationToken{Token: "old", UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)}
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "old").Return(token, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "old").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "old")
		s.ErrorIs(err, model.ErrInvalidInput)
		s.assertMocks()
	})

	s.Run("Failure - 存在しないトークン", func() {
		s.SetupTest()
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "nope").Return(nil, model.ErrNotFound).Once()

		err := s.authService.VerifyAccount(context.Background(), "nope")
		s.ErrorIs(err, model.ErrInvalidInput)
		s.assertMocks()
	})
}

func (s *AuthServiceTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	s.Require().NoError(err)
	active := &model.User{UserID: uuid.New(), Email: "a@example.com", PasswordHash: string(hash), Role: model.RoleAdmin, IsActive: true}
	inactive := &model.User{UserID: uuid.New(), Email: "b@example.com", PasswordHash: string(hash), Role: model.RoleLearner}

	s.Run("Success - JWTにユーザーIDとロールが入る", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "a@example.com").Return(active, nil).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "a@example.com", Password: "password"})
		s.Require().NoError(err)
		s.Equal("Bearer", resp.TokenType)
		s.Equal(int64(900), resp.ExpiresIn)

		claims := &model.JWTCustomClaims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		s.Require().NoError(err)
		s.Equal(active.UserID.String(), claims.Subject)
		s.Equal(model.RoleAdmin, claims.Role)
		s.assertMocks()
	})

	s.Run("Failure - パスワード不一致", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "a@example.com").Return(active, nil).Once()

		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "a@example.com", Password: "wrong"})
		s.ErrorIs(err, model.ErrUnauthorized)
	})

	s.Run("Failure - 未有効化アカウント", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "b@example.com").Return(inactive, nil).Once()

		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "b@example.com", Password: "password"})
		s.ErrorIs(err, model.ErrForbidden)
	})

	s.Run("Failure - ユーザーが存在しない", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "x@example.com").Return(nil, model.ErrNotFound).Once()

		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "x@example.com", Password: "password"})
		s.ErrorIs(err, model.ErrUnauthorized)
	})
}

func (s *AuthServiceTestSuite) TestListUsers_ClampsLimit() {
	s.mockUserRepo.On("List", mock.Anything, mock.Anything, 50, 0).Return([]*model.User{}, nil).Once()

	users, err := s.authService.ListUsers(context.Background(), 0, -5)
	s.NoError(err)
	s.Empty(users)
	s.assertMocks()
}
