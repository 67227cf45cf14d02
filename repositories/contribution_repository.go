package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skibidi-db/models"
)

type ContributionRepository interface {
	WithTx(tx *gorm.DB) ContributionRepository
	Create(ctx context.Context, contribution *models.Contribution) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contribution, error)
	ListAll(ctx context.Context) ([]models.Contribution, error)
	ListBySubmitter(ctx context.Context, profileID uuid.UUID) ([]models.Contribution, error)
	// Transition moves a pending contribution to status. It reports false when
	// the row is missing or no longer pending.
	Transition(ctx context.Context, id uuid.UUID, status models.ContributionStatus, moderator uuid.UUID, note string, termID *uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type contributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) WithTx(tx *gorm.DB) ContributionRepository {
	return &contributionRepository{db: tx}
}

func (r *contributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

func (r *contributionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contribution, error) {
	var contribution models.Contribution
	err := r.db.WithContext(ctx).First(&contribution, "id = ?", id).Error
	return &contribution, err
}

func (r *contributionRepository) ListAll(ctx context.Context) ([]models.Contribution, error) {
	var contributions []models.Contribution
	err := r.db.WithContext(ctx).
		Order("submitted_at desc").
		Find(&contributions).Error
	return contributions, err
}

func (r *contributionRepository) ListBySubmitter(ctx context.Context, profileID uuid.UUID) ([]models.Contribution, error) {
	var contributions []models.Contribution
	err := r.db.WithContext(ctx).
		Where("submitted_by = ?", profileID).
		Order("submitted_at desc").
		Find(&contributions).Error
	return contributions, err
}

func (r *contributionRepository) Transition(ctx context.Context, id uuid.UUID, status models.ContributionStatus, moderator uuid.UUID, note string, termID *uuid.UUID) (bool, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"status":          status,
		"moderated_by":    moderator,
		"moderated_at":    now,
		"moderator_notes": note,
	}
	if termID != nil {
		updates["term_id"] = *termID
	}

	result := r.db.WithContext(ctx).
		Model(&models.Contribution{}).
		Where("id = ? AND status = ?", id, models.ContributionPending).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *contributionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Contribution{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
