package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"mergingtonactivities/internal/domain"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// sesAPI is the subset of the SES client the mailer uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES; "noop" or unknown uses a no-op mailer.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case "ses":
		if config.SES.Region == "" {
			return nil, fmt.Errorf("ses mailer: region is required")
		}
		awsCfg := aws.Config{
			Region: config.SES.Region,
		}
		if config.SES.AccessKeyID != "" {
			awsCfg.Credentials = aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					config.SES.AccessKeyID,
					config.SES.SecretAccessKey,
					"",
				),
			)
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
			logger:      logger,
		}, nil
	case "noop":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

type sesMailer struct {
	client      sesAPI
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if html != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(html),
			Charset: aws.String("UTF-8"),
		}
	}
	if text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(text),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	s.logger.DebugContext(ctx, "email sent via SES", "message_id", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, html, text string) error {
	n.logger.InfoContext(ctx, "email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
