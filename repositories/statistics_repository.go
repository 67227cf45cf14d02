package repositories

import (
	"context"

	"gorm.io/gorm"

	"skibidi-db/models"
)

type StatisticsRepository interface {
	Get(ctx context.Context) (*models.Statistics, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// Get computes the dashboard counters in a single round trip.
func (r *statisticsRepository) Get(ctx context.Context) (*models.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM terms WHERE deleted_at IS NULL) AS total_terms,
			(SELECT COUNT(*) FROM terms WHERE deleted_at IS NULL AND status = 'published') AS published_terms,
			(SELECT COUNT(*) FROM contributions) AS total_contributions,
			(SELECT COUNT(*) FROM contributions WHERE status = 'pending') AS pending_contributions,
			(SELECT COUNT(*) FROM contributions WHERE status = 'approved') AS approved_contributions,
			(SELECT COUNT(*) FROM contributions WHERE status = 'rejected') AS rejected_contributions,
			(SELECT COUNT(*) FROM profiles) AS total_users,
			(SELECT COUNT(*) FROM profiles WHERE role = 'admin') AS admin_users,
			(SELECT COUNT(*) FROM profiles WHERE suspended) AS suspended_users,
			(SELECT COUNT(*) FROM reports WHERE status = 'open') AS open_reports
	`

	var stats models.Statistics
	if err := r.db.WithContext(ctx).Raw(query).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
