package handlers

import (
	"net/http"

	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/service"
	"vocab_learn/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register は新規ユーザーを登録し、有効化メールの送信をトリガーします
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid registration request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if _, err := h.service.Register(r.Context(), &req); err != nil {
		logger.Error("Registration process failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Registration request successful. Verification email sent.")
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "確認メールを送信しました。メールボックスをご確認の上、アカウントを有効化してください。",
	}, logger)
}

// VerifyAccount は提供されたトークンでアカウントを有効化します
func (h *AuthHandler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("Verification attempt with no token")
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST", "有効化トークンが必要です。", "token", model.ErrInvalidInput))
		return
	}
	logger = logger.With("token_prefix", token[:min(8, len(token))]) // トークンの先頭だけログに残す

	if err := h.service.VerifyAccount(r.Context(), token); err != nil {
		logger.Warn("Account verification failed", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Account successfully verified")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "アカウントが正常に有効化されました。ログインしてください。",
	}, logger)
}

// Login はユーザーを認証し、JWTを返します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid login request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	loginResponse, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// サービス層でログは出力済み
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, loginResponse, logger)
}

// GetMe は認証済みユーザー自身の情報を返します
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}
