package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skibidi-db/models"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	Find(ctx context.Context, token string, purpose models.TokenPurpose) (*models.AuthToken, error)
	Delete(ctx context.Context, token string) error
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) Find(ctx context.Context, token string, purpose models.TokenPurpose) (*models.AuthToken, error) {
	var t models.AuthToken
	err := r.db.WithContext(ctx).Where("token = ? AND purpose = ?", token, purpose).First(&t).Error
	return &t, err
}

func (r *tokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&models.AuthToken{}, "token = ?", token).Error
}

func (r *tokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

func (r *tokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

func (r *tokenRepository) PurgeExpired(ctx context.Context, now time.Time) error {
	if err := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.RevokedToken{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.AuthToken{}).Error
}
