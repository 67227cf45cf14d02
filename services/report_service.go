package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skibidi-db/models"
	"skibidi-db/repositories"
)

type ReportService interface {
	Create(ctx context.Context, termID uuid.UUID, reporter uuid.UUID, req models.CreateReportRequest) (*models.Report, error)
	List(ctx context.Context, params models.ReportListParams) ([]models.Report, error)
	Resolve(ctx context.Context, id uuid.UUID, resolver uuid.UUID) (*models.Report, error)
	DeleteContent(ctx context.Context, id uuid.UUID, resolver uuid.UUID) error
}

type reportService struct {
	tx               repositories.Transactor
	reportRepo       repositories.ReportRepository
	termRepo         repositories.TermRepository
	contributionRepo repositories.ContributionRepository
	logger           *zap.Logger
}

func NewReportService(tx repositories.Transactor, reportRepo repositories.ReportRepository, termRepo repositories.TermRepository, contributionRepo repositories.ContributionRepository, logger *zap.Logger) ReportService {
	return &reportService{
		tx:               tx,
		reportRepo:       reportRepo,
		termRepo:         termRepo,
		contributionRepo: contributionRepo,
		logger:           logger,
	}
}

// Create flags a term for admin review.
func (s *reportService) Create(ctx context.Context, termID uuid.UUID, reporter uuid.UUID, req models.CreateReportRequest) (*models.Report, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, models.ErrorValidation{Field: "reason", Message: "Reason is required"}
	}

	if _, err := s.termRepo.GetByID(ctx, termID); err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorNotFound{Message: "term not found"}
		}
		return nil, models.Internal("Failed to submit report.", err)
	}

	report := &models.Report{
		ContentType: models.ContentTerm,
		ContentID:   termID,
		Reason:      reason,
		ReportedBy:  reporter,
		Status:      models.ReportOpen,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, models.Internal("Failed to submit report.", err)
	}

	s.logger.Info("report created", zap.String("report_id", report.ID.String()), zap.String("term_id", termID.String()))
	return report, nil
}

func (s *reportService) List(ctx context.Context, params models.ReportListParams) ([]models.Report, error) {
	if params.Status != "" && params.Status != models.ReportOpen && params.Status != models.ReportResolved {
		return nil, models.ErrorValidation{Field: "status", Message: "Status is invalid"}
	}
	reports, err := s.reportRepo.List(ctx, params)
	if err != nil {
		return nil, models.Internal("Failed to load reports.", err)
	}
	return reports, nil
}

func (s *reportService) Resolve(ctx context.Context, id uuid.UUID, resolver uuid.UUID) (*models.Report, error) {
	report, err := s.load(ctx, s.reportRepo, id)
	if err != nil {
		return nil, err
	}
	if report.Status != models.ReportOpen {
		return nil, models.ErrorConflict{Message: "report already resolved"}
	}

	ok, err := s.reportRepo.Resolve(ctx, id, resolver)
	if err != nil {
		return nil, models.Internal("Failed to resolve report.", err)
	}
	if !ok {
		return nil, models.ErrorConflict{Message: "report already resolved"}
	}

	return s.load(ctx, s.reportRepo, id)
}

// DeleteContent removes whatever the report points at and closes every open
// report on that content.
func (s *reportService) DeleteContent(ctx context.Context, id uuid.UUID, resolver uuid.UUID) error {
	return s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		reports := s.reportRepo.WithTx(tx)

		report, err := s.load(ctx, reports, id)
		if err != nil {
			return err
		}

		var deleted bool
		switch report.ContentType {
		case models.ContentTerm:
			deleted, err = s.termRepo.WithTx(tx).Delete(ctx, report.ContentID)
		case models.ContentContribution:
			deleted, err = s.contributionRepo.WithTx(tx).Delete(ctx, report.ContentID)
		default:
			return models.ErrorValidation{Field: "content_type", Message: "Unknown content type"}
		}
		if err != nil {
			return models.Internal("Failed to delete content.", err)
		}
		if !deleted {
			s.logger.Info("reported content already gone", zap.String("report_id", id.String()), zap.String("content_id", report.ContentID.String()))
		}

		if err := reports.ResolveByContent(ctx, report.ContentID, resolver); err != nil {
			return models.Internal("Failed to delete content.", err)
		}
		return nil
	})
}

func (s *reportService) load(ctx context.Context, repo repositories.ReportRepository, id uuid.UUID) (*models.Report, error) {
	report, err := repo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorNotFound{Message: "report not found"}
		}
		return nil, models.Internal("Failed to load report.", err)
	}
	return report, nil
}
