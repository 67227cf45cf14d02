package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skibidi-db/models"
)

const (
	titleLike             = `LOWER(title) LIKE ? ESCAPE '\'`
	titleOrDefinitionLike = `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(definition) LIKE ? ESCAPE '\')`
)

type TermRepository interface {
	WithTx(tx *gorm.DB) TermRepository
	Create(ctx context.Context, term *models.Term) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Term, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Term, error)
	ExistsPublishedSlug(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
	ListPublished(ctx context.Context, params models.TermListParams) ([]models.Term, int64, error)
	Suggest(ctx context.Context, query string, limit int) ([]models.Term, error)
	ListForAdmin(ctx context.Context, filter models.AdminTermFilter) ([]models.Term, error)
	Update(ctx context.Context, term *models.Term) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type termRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) WithTx(tx *gorm.DB) TermRepository {
	return &termRepository{db: tx}
}

func (r *termRepository) Create(ctx context.Context, term *models.Term) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *termRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Term, error) {
	var term models.Term
	err := r.db.WithContext(ctx).First(&term, "id = ?", id).Error
	return &term, err
}

// GetPublishedBySlug returns the newest published term with that slug.
func (r *termRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Term, error) {
	var term models.Term
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.TermPublished).
		Order("created_at desc").
		First(&term).Error
	return &term, err
}

// ExistsPublishedSlug reports whether a published term other than exclude
// already answers on slug. Pass uuid.Nil to check every term.
func (r *termRepository) ExistsPublishedSlug(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Term{}).
		Where("slug = ? AND status = ?", slug, models.TermPublished)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *termRepository) ListPublished(ctx context.Context, params models.TermListParams) ([]models.Term, int64, error) {
	var terms []models.Term
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Term{}).Where("status = ?", models.TermPublished)

	if q := strings.TrimSpace(params.Query); q != "" {
		pattern := containsPattern(q)
		query = query.Where(titleOrDefinitionLike, pattern, pattern)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("title asc").Offset(offset).Limit(params.Limit).Find(&terms).Error
	return terms, total, err
}

func (r *termRepository) Suggest(ctx context.Context, query string, limit int) ([]models.Term, error) {
	var terms []models.Term
	pattern := containsPattern(query)
	err := r.db.WithContext(ctx).
		Where("status = ?", models.TermPublished).
		Where(titleOrDefinitionLike, pattern, pattern).
		Order("title asc").
		Limit(limit).
		Find(&terms).Error
	return terms, err
}

func (r *termRepository) ListForAdmin(ctx context.Context, filter models.AdminTermFilter) ([]models.Term, error) {
	var terms []models.Term

	query := r.db.WithContext(ctx).Model(&models.Term{})
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where(titleLike, containsPattern(s))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Order("created_at desc").Find(&terms).Error
	return terms, err
}

func (r *termRepository) Update(ctx context.Context, term *models.Term) error {
	return r.db.WithContext(ctx).Save(term).Error
}

func (r *termRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Term{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// containsPattern builds a lower-cased LIKE pattern, escaping wildcards typed by the user.
func containsPattern(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}
