package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultJWTSecret only signs tokens in development; Validate refuses it elsewhere.
const defaultJWTSecret = "your-secret-key-change-this-in-production"

type Config struct {
	Port        string
	AppEnv      string
	AppURL      string
	LogLevel    string
	DatabaseURL string
	AutoMigrate bool

	JWTSecret     []byte
	JWTExpiration time.Duration

	CORSAllowedOrigins []string

	// AdminEmails are granted the admin role when they register.
	AdminEmails []string

	Mailer MailerConfig
}

type MailerConfig struct {
	Type            string // "log" or "ses"
	From            string
	SESRegion       string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "production"),
		AppURL:      strings.TrimRight(getEnv("APP_URL", "http://localhost:5173"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: databaseURL(),
		AutoMigrate: getBool("AUTO_MIGRATE", true),

		JWTSecret:     []byte(getEnv("JWT_SECRET", defaultJWTSecret)),
		JWTExpiration: getDuration("JWT_EXPIRATION", 24*time.Hour),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminEmails:        splitList(strings.ToLower(os.Getenv("ADMIN_EMAILS"))),

		Mailer: MailerConfig{
			Type:            getEnv("MAILER_TYPE", "log"),
			From:            getEnv("MAIL_FROM", "no-reply@skibididb.local"),
			SESRegion:       getEnv("SES_REGION", "us-east-1"),
			AccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
		},
	}
	return cfg
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "dev") || strings.EqualFold(c.AppEnv, "development")
}

// Validate rejects settings that must not reach a non-development deployment.
func (c *Config) Validate() error {
	if !c.IsDevelopment() && string(c.JWTSecret) == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set when APP_ENV is %q", c.AppEnv)
	}
	return nil
}

// PasswordResetURL is where reset links in emails point to.
func (c *Config) PasswordResetURL() string {
	return c.AppURL + "/reset-password"
}

func (c *Config) EmailVerificationURL() string {
	return c.AppURL + "/verify-email"
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "skibidi_db"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
