package config

import (
	"time"

	"github.com/moritzm/zapgorm2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skibidi-db/models"
)

func InitDB(cfg *Config, logger *zap.Logger) (*gorm.DB, error) {
	dbLogger := zapgorm2.New(logger.Named("gorm"))
	dbLogger.SlowThreshold = 500 * time.Millisecond
	dbLogger.IgnoreRecordNotFoundError = true
	dbLogger.SetAsDefault()

	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         dbLogger.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	logger.Info("database connection established", zap.Bool("auto_migrate", cfg.AutoMigrate))
	return db, nil
}

// publishedSlugIndex keeps one published, live term per slug so the detail
// route always resolves to a single term.
const publishedSlugIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_terms_published_slug
	ON terms (slug) WHERE status = 'published' AND deleted_at IS NULL`

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return err
	}
	return db.Exec(publishedSlugIndex).Error
}
