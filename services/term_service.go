package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skibidi-db/models"
	"skibidi-db/repositories"
)

// SuggestLimit caps search-as-you-type results.
const SuggestLimit = 8

type TermService interface {
	ListPublished(ctx context.Context, params models.TermListParams) ([]models.Term, int64, error)
	Suggest(ctx context.Context, query string) ([]models.Term, error)
	GetBySlug(ctx context.Context, slug string) (*models.Term, error)
	AdminList(ctx context.Context, filter models.AdminTermFilter) ([]models.Term, error)
	Update(ctx context.Context, id uuid.UUID, req models.UpdateTermRequest, editor uuid.UUID) (*models.Term, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Versions(ctx context.Context, id uuid.UUID) ([]models.TermVersion, error)
}

type termService struct {
	tx          repositories.Transactor
	termRepo    repositories.TermRepository
	versionRepo repositories.TermVersionRepository
	logger      *zap.Logger
}

func NewTermService(tx repositories.Transactor, termRepo repositories.TermRepository, versionRepo repositories.TermVersionRepository, logger *zap.Logger) TermService {
	return &termService{
		tx:          tx,
		termRepo:    termRepo,
		versionRepo: versionRepo,
		logger:      logger,
	}
}

func (s *termService) ListPublished(ctx context.Context, params models.TermListParams) ([]models.Term, int64, error) {
	params.Normalize()
	if params.Category != "" && !models.IsCategory(params.Category) {
		return nil, 0, models.ErrorValidation{Field: "category", Message: "Category is invalid"}
	}

	terms, total, err := s.termRepo.ListPublished(ctx, params)
	if err != nil {
		return nil, 0, models.Internal("Failed to load terms.", err)
	}
	return terms, total, nil
}

// Suggest backs search-as-you-type. A blank query matches nothing.
func (s *termService) Suggest(ctx context.Context, query string) ([]models.Term, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Term{}, nil
	}
	terms, err := s.termRepo.Suggest(ctx, query, SuggestLimit)
	if err != nil {
		return nil, models.Internal("Failed to search terms.", err)
	}
	return terms, nil
}

func (s *termService) GetBySlug(ctx context.Context, slug string) (*models.Term, error) {
	term, err := s.termRepo.GetPublishedBySlug(ctx, models.Slugify(slug))
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorNotFound{Message: "term not found"}
		}
		return nil, models.Internal("Failed to load term.", err)
	}
	return term, nil
}

// AdminList returns terms of every status. Search and status narrow the list together.
func (s *termService) AdminList(ctx context.Context, filter models.AdminTermFilter) ([]models.Term, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, models.ErrorValidation{Field: "status", Message: "Status is invalid"}
	}
	terms, err := s.termRepo.ListForAdmin(ctx, filter)
	if err != nil {
		return nil, models.Internal("Failed to load terms.", err)
	}
	return terms, nil
}

func (s *termService) Update(ctx context.Context, id uuid.UUID, req models.UpdateTermRequest, editor uuid.UUID) (*models.Term, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, models.ErrorValidation{Field: "title", Message: "Term title is required"}
	}
	if !req.Status.Valid() {
		return nil, models.ErrorValidation{Field: "status", Message: "Status is invalid"}
	}

	var term *models.Term
	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		terms := s.termRepo.WithTx(tx)
		versions := s.versionRepo.WithTx(tx)

		var err error
		term, err = terms.GetByID(ctx, id)
		if err != nil {
			if repositories.IsNotFound(err) {
				return models.ErrorNotFound{Message: "term not found"}
			}
			return models.Internal("Failed to update term.", err)
		}

		if req.Status == models.TermPublished {
			slug := models.Slugify(title)
			exists, err := terms.ExistsPublishedSlug(ctx, slug, term.ID)
			if err != nil {
				return models.Internal("Failed to update term.", err)
			}
			if exists {
				return slugConflict(slug)
			}
		}

		term.Title = title
		term.Status = req.Status
		if err := terms.Update(ctx, term); err != nil {
			if repositories.IsDuplicate(err) {
				return slugConflict(term.Slug)
			}
			return models.Internal("Failed to update term.", err)
		}

		next, err := versions.NextVersionNumber(ctx, term.ID)
		if err != nil {
			return models.Internal("Failed to update term.", err)
		}
		if err := versions.Create(ctx, models.NewTermVersion(term, next, models.ChangeUpdate, &editor)); err != nil {
			return models.Internal("Failed to update term.", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("term updated", zap.String("term_id", id.String()), zap.String("status", string(term.Status)), zap.String("editor", editor.String()))
	return term, nil
}

func (s *termService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.termRepo.Delete(ctx, id)
	if err != nil {
		return models.Internal("Failed to delete term.", err)
	}
	if !deleted {
		return models.ErrorNotFound{Message: "term not found"}
	}
	s.logger.Info("term deleted", zap.String("term_id", id.String()))
	return nil
}

// Versions returns the term's history, newest first.
func (s *termService) Versions(ctx context.Context, id uuid.UUID) ([]models.TermVersion, error) {
	if _, err := s.termRepo.GetByID(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorNotFound{Message: "term not found"}
		}
		return nil, models.Internal("Failed to load term history.", err)
	}
	versions, err := s.versionRepo.ListByTerm(ctx, id)
	if err != nil {
		return nil, models.Internal("Failed to load term history.", err)
	}
	return versions, nil
}

func slugConflict(slug string) error {
	return models.ErrorConflict{Message: fmt.Sprintf("a published term already uses the slug %q", slug)}
}
