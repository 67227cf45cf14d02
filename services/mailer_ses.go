package services

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"

	"skibidi-db/config"
)

// SESMailer delivers mail through AWS SES v2.
type SESMailer struct {
	client *sesv2.Client
	from   string
	logger *zap.Logger
}

// NewSESMailer uses static credentials when both keys are configured and the
// default AWS credential chain otherwise.
func NewSESMailer(ctx context.Context, cfg config.MailerConfig, logger *zap.Logger) (*SESMailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SESRegion),
	}

	switch {
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	case cfg.AccessKeyID != "" || cfg.SecretAccessKey != "":
		return nil, errors.New("ses: both SES_ACCESS_KEY_ID and SES_SECRET_ACCESS_KEY must be set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		from:   cfg.From,
		logger: logger,
	}, nil
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		m.logger.Error("failed to send email via SES", zap.Error(err), zap.String("to", to))
		return err
	}

	m.logger.Info("email sent via SES", zap.String("to", to), zap.String("subject", subject))
	return nil
}
