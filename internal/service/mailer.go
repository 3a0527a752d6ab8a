package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"text/template"

	"vocab_learn/internal/config"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
)

// Mailer は学習者アカウントに関するメールを送る
type Mailer interface {
	SendVerificationMail(ctx context.Context, user *model.User, token string) error
}

// mailMessage は組み立て済みの1通分
type mailMessage struct {
	To      string
	Subject string
	Body    string
}

// mailTransport は組み立て済みメッセージの配送だけを担う (log / smtp / ses)
type mailTransport interface {
	Deliver(ctx context.Context, msg mailMessage) error
	Name() string
}

var (
	verificationSubjectTmpl = template.Must(template.New("verification_subject").Option("missingkey=zero").Parse(
		`【{{.AppName}}】アカウントの有効化をお願いします`))

	verificationBodyTmpl = template.Must(template.New("verification_body").Option("missingkey=zero").Parse(
		`{{.UserName}} 様

{{.AppName}} にご登録いただきありがとうございます。
以下のリンクからアカウントを有効化すると、単語テストと復習リストが使えるようになります。

{{.VerifyURL}}

このリンクの有効期限は{{.ExpiresInHours}}時間です。
期限が切れた場合はお手数ですが再度ご登録ください。
お心当たりのない場合はこのメールを破棄してください。
`))
)

type verificationMailData struct {
	AppName        string
	UserName       string
	VerifyURL      string
	ExpiresInHours int
}

// accountMailer はアプリの文面を組み立ててトランスポートへ渡す
type accountMailer struct {
	appName     string
	frontendURL string
	transport   mailTransport
}

func newAccountMailer(app *config.AppConfig, transport mailTransport) *accountMailer {
	return &accountMailer{
		appName:     app.Name,
		frontendURL: app.FrontendURL,
		transport:   transport,
	}
}

func (m *accountMailer) SendVerificationMail(ctx context.Context, user *model.User, token string) error {
	logger := middleware.GetLogger(ctx)

	msg, err := m.buildVerificationMessage(user, token)
	if err != nil {
		logger.Error("Failed to build verification mail", "error", err, "user_id", user.UserID)
		return err
	}

	logger.Info("Sending verification email", "to", msg.To, "transport", m.transport.Name())
	return m.transport.Deliver(ctx, msg)
}

func (m *accountMailer) buildVerificationMessage(user *model.User, token string) (mailMessage, error) {
	verifyURL, err := buildVerifyURL(m.frontendURL, token)
	if err != nil {
		return mailMessage{}, err
	}
	data := verificationMailData{
		AppName:        m.appName,
		UserName:       user.Name,
		VerifyURL:      verifyURL,
		ExpiresInHours: int(verificationTokenTTL.Hours()),
	}

	var subject, body bytes.Buffer
	if err := verificationSubjectTmpl.Execute(&subject, data); err != nil {
		return mailMessage{}, fmt.Errorf("render subject: %w", err)
	}
	if err := verificationBodyTmpl.Execute(&body, data); err != nil {
		return mailMessage{}, fmt.Errorf("render body: %w", err)
	}
	return mailMessage{To: user.Email, Subject: subject.String(), Body: body.String()}, nil
}

// buildVerifyURL はフロントエンドの /verify-email にトークンを付けたURLを返す
func buildVerifyURL(frontendURL, token string) (string, error) {
	base, err := url.Parse(strings.TrimRight(frontendURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid frontend url %q: %w", frontendURL, err)
	}
	u := base.JoinPath("verify-email")
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NewMailer は設定に応じたトランスポートでアカウントメーラーを作る
func NewMailer(cfg *config.Config) (Mailer, error) {
	transport, err := newMailTransport(cfg)
	if err != nil {
		return nil, err
	}
	return newAccountMailer(&cfg.App, transport), nil
}

func newMailTransport(cfg *config.Config) (mailTransport, error) {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "smtp":
		logger.Info("Initializing SMTP mailer...", "host", cfg.SMTP.Host)
		return &smtpTransport{cfg: &cfg.SMTP}, nil
	case "ses":
		logger.Info("Initializing SES mailer...", "region", cfg.SES.Region)
		t, err := newSESTransport(context.Background(), &cfg.SES)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "log", "":
		logger.Info("Initializing Log mailer...")
		return logTransport{}, nil
	default:
		logger.Warn("Unknown mailer type, defaulting to log", "type", cfg.Mailer.Type)
		return logTransport{}, nil
	}
}
