package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skibidi-db/models"
)

type TermVersionRepository interface {
	WithTx(tx *gorm.DB) TermVersionRepository
	Create(ctx context.Context, version *models.TermVersion) error
	NextVersionNumber(ctx context.Context, termID uuid.UUID) (int, error)
	ListByTerm(ctx context.Context, termID uuid.UUID) ([]models.TermVersion, error)
}

type termVersionRepository struct {
	db *gorm.DB
}

func NewTermVersionRepository(db *gorm.DB) TermVersionRepository {
	return &termVersionRepository{db: db}
}

func (r *termVersionRepository) WithTx(tx *gorm.DB) TermVersionRepository {
	return &termVersionRepository{db: tx}
}

func (r *termVersionRepository) Create(ctx context.Context, version *models.TermVersion) error {
	return r.db.WithContext(ctx).Create(version).Error
}

func (r *termVersionRepository) NextVersionNumber(ctx context.Context, termID uuid.UUID) (int, error) {
	var current int
	err := r.db.WithContext(ctx).
		Model(&models.TermVersion{}).
		Where("term_id = ?", termID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&current).Error
	return current + 1, err
}

func (r *termVersionRepository) ListByTerm(ctx context.Context, termID uuid.UUID) ([]models.TermVersion, error) {
	var versions []models.TermVersion
	err := r.db.WithContext(ctx).
		Where("term_id = ?", termID).
		Order("version_number desc").
		Find(&versions).Error
	return versions, err
}
