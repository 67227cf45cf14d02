// Package testutil provides in-memory databases and fakes for package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skibidi-db/config"
)

// NewDB opens a private in-memory sqlite database with every table migrated.
// A single connection serializes transactions: concurrent callers queue on
// the pool, so a transaction never observes another one in flight.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func NewConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		AppEnv:             "test",
		AppURL:             "http://localhost:5173",
		LogLevel:           "error",
		JWTSecret:          []byte("test-secret"),
		JWTExpiration:      time.Hour,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		AdminEmails:        []string{"admin@skibidi.test"},
		Mailer:             config.MailerConfig{Type: "log", From: "no-reply@skibidi.test"},
	}
}

type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailbox records every message instead of sending it.
type Mailbox struct {
	mu       sync.Mutex
	messages []Mail
	Err      error
}

func (m *Mailbox) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.messages = append(m.messages, Mail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *Mailbox) Messages() []Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Mail(nil), m.messages...)
}

// LastToken returns the token query parameter of the newest message sent to addr.
func (m *Mailbox) LastToken(addr string) string {
	messages := m.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].To != addr {
			continue
		}
		body := messages[i].Body
		idx := strings.Index(body, "token=")
		if idx < 0 {
			continue
		}
		return strings.Fields(body[idx+len("token="):])[0]
	}
	return ""
}
