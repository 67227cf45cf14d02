package services

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"skibidi-db/config"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

var tokenParam = regexp.MustCompile(`(token=)[^&\s]+`)

// LogMailer writes messages to the log instead of delivering them. Link
// tokens are masked at info level; the raw body is only logged at debug.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("email (log mailer)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", redactTokens(body)),
	)
	m.logger.Debug("email body (log mailer)", zap.String("to", to), zap.String("body", body))
	return nil
}

func redactTokens(body string) string {
	return tokenParam.ReplaceAllString(body, "${1}REDACTED")
}

func NewMailer(cfg *config.Config, logger *zap.Logger) (Mailer, error) {
	switch cfg.Mailer.Type {
	case "ses":
		logger.Info("initializing SES mailer", zap.String("region", cfg.Mailer.SESRegion))
		mailer, err := NewSESMailer(context.Background(), cfg.Mailer, logger)
		if err != nil {
			return nil, err
		}
		return mailer, nil
	case "log", "":
		logger.Info("initializing log mailer")
		return NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("unknown mailer type %q", cfg.Mailer.Type)
	}
}
