package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"vocab_learn/internal/config"
	"vocab_learn/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var errMissingSESCredentials = errors.New("ses: auth_type is static_credentials but access_key_id or secret_access_key is empty")

// sesEmailSender は sesv2.Client のうち使う部分だけ
type sesEmailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesTransport struct {
	client sesEmailSender
	from   string
}

// newSESTransport は auth_type に応じて認証方法を切り替える
// 設定ミスは起動時にエラーとして返す
func newSESTransport(ctx context.Context, cfg *config.SESConfig) (*sesTransport, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}

	switch cfg.AuthType {
	case "static_credentials":
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, errMissingSESCredentials
		}
		slog.Info("Configuring SES with static credentials.")
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	case "iam_role":
		slog.Info("Configuring SES with IAM Role credentials.")
	default:
		slog.Warn("Unknown SES auth_type specified, defaulting to IAM Role.", "type", cfg.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config for ses: %w", err)
	}
	return &sesTransport{client: sesv2.NewFromConfig(awsCfg), from: cfg.From}, nil
}

func (t *sesTransport) Name() string { return "ses" }

func (t *sesTransport) Deliver(ctx context.Context, msg mailMessage) error {
	logger := middleware.GetLogger(ctx)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(t.from),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := t.client.SendEmail(ctx, input)
	if err != nil {
		logger.Error("Failed to send email via SES", "error", err, "to", msg.To)
		return err
	}

	logger.Info("Email sent successfully via SES", "to", msg.To, "message_id", aws.ToString(out.MessageId))
	return nil
}
