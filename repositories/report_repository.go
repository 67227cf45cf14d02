package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skibidi-db/models"
)

type ReportRepository interface {
	WithTx(tx *gorm.DB) ReportRepository
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	List(ctx context.Context, params models.ReportListParams) ([]models.Report, error)
	Resolve(ctx context.Context, id uuid.UUID, resolver uuid.UUID) (bool, error)
	ResolveByContent(ctx context.Context, contentID uuid.UUID, resolver uuid.UUID) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) WithTx(tx *gorm.DB) ReportRepository {
	return &reportRepository{db: tx}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	return &report, err
}

func (r *reportRepository) List(ctx context.Context, params models.ReportListParams) ([]models.Report, error) {
	var reports []models.Report
	query := r.db.WithContext(ctx).Model(&models.Report{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	err := query.Order("created_at desc").Find(&reports).Error
	return reports, err
}

// Resolve closes an open report; it reports false when the report is not open.
func (r *reportRepository) Resolve(ctx context.Context, id uuid.UUID, resolver uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ? AND status = ?", id, models.ReportOpen).
		Updates(map[string]interface{}{
			"status":      models.ReportResolved,
			"resolved_by": resolver,
			"resolved_at": time.Now(),
		})
	return result.RowsAffected == 1, result.Error
}

// ResolveByContent closes every open report that points at contentID.
func (r *reportRepository) ResolveByContent(ctx context.Context, contentID uuid.UUID, resolver uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("content_id = ? AND status = ?", contentID, models.ReportOpen).
		Updates(map[string]interface{}{
			"status":      models.ReportResolved,
			"resolved_by": resolver,
			"resolved_at": time.Now(),
		}).Error
}
