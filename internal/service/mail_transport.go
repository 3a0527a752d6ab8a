package service

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"vocab_learn/internal/config"
	"vocab_learn/internal/middleware"
)

// logTransport は送信せずにログへ出す (開発用)
type logTransport struct{}

func (logTransport) Name() string { return "log" }

func (logTransport) Deliver(ctx context.Context, msg mailMessage) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (log) ---", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

// smtpTransport は認証なしのSMTPリレーへ平文で送る
type smtpTransport struct {
	cfg *config.SMTPConfig
}

func (t *smtpTransport) Name() string { return "smtp" }

func (t *smtpTransport) Deliver(ctx context.Context, msg mailMessage) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", t.cfg.Host, t.cfg.Port)

	logger.Debug("Attempting to send email via SMTP", "smtp_addr", addr, "from", t.cfg.From, "to", msg.To)
	if err := smtp.SendMail(addr, nil, t.cfg.From, []string{msg.To}, buildRawMessage(t.cfg.From, msg)); err != nil {
		logger.Error("Failed to send email via SMTP", "error", err, "smtp_addr", addr, "to", msg.To)
		return err
	}

	logger.Info("Email sent successfully via SMTP", "to", msg.To)
	return nil
}

// buildRawMessage はヘッダー付きの RFC 5322 メッセージを組み立てる
// 件名は日本語を含むので B エンコードする
func buildRawMessage(from string, msg mailMessage) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.BEncoding.Encode("UTF-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}
