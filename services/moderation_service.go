package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skibidi-db/models"
	"skibidi-db/repositories"
)

type ModerationService interface {
	List(ctx context.Context) ([]models.Contribution, error)
	Approve(ctx context.Context, id uuid.UUID, moderator uuid.UUID, note string) (*models.Contribution, *models.Term, error)
	Reject(ctx context.Context, id uuid.UUID, moderator uuid.UUID, note string) (*models.Contribution, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type moderationService struct {
	tx               repositories.Transactor
	contributionRepo repositories.ContributionRepository
	termRepo         repositories.TermRepository
	versionRepo      repositories.TermVersionRepository
	logger           *zap.Logger
}

func NewModerationService(tx repositories.Transactor, contributionRepo repositories.ContributionRepository, termRepo repositories.TermRepository, versionRepo repositories.TermVersionRepository, logger *zap.Logger) ModerationService {
	return &moderationService{
		tx:               tx,
		contributionRepo: contributionRepo,
		termRepo:         termRepo,
		versionRepo:      versionRepo,
		logger:           logger,
	}
}

// List returns every contribution, whatever its status, newest first.
func (s *moderationService) List(ctx context.Context) ([]models.Contribution, error) {
	contributions, err := s.contributionRepo.ListAll(ctx)
	if err != nil {
		return nil, models.Internal("Failed to load contributions.", err)
	}
	return contributions, nil
}

// Approve promotes a pending contribution into a published term. The status
// change, the term and its first version are written in one transaction, and
// the status change only applies while the row is still pending, so two
// moderators racing on the same contribution produce a single term.
func (s *moderationService) Approve(ctx context.Context, id uuid.UUID, moderator uuid.UUID, note string) (*models.Contribution, *models.Term, error) {
	var term *models.Term

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		contributions := s.contributionRepo.WithTx(tx)
		terms := s.termRepo.WithTx(tx)

		contribution, err := s.loadPending(ctx, contributions, id)
		if err != nil {
			return err
		}

		slug := models.Slugify(contribution.Title)
		exists, err := terms.ExistsPublishedSlug(ctx, slug, uuid.Nil)
		if err != nil {
			return models.Internal("Failed to approve contribution.", err)
		}
		if exists {
			return slugConflict(slug)
		}

		term = promote(contribution)
		ok, err := contributions.Transition(ctx, id, models.ContributionApproved, moderator, note, &term.ID)
		if err != nil {
			return models.Internal("Failed to approve contribution.", err)
		}
		if !ok {
			return models.ErrorConflict{Message: "contribution is no longer pending"}
		}

		if err := terms.Create(ctx, term); err != nil {
			if repositories.IsDuplicate(err) {
				return slugConflict(slug)
			}
			return models.Internal("Failed to approve contribution.", err)
		}
		if err := s.versionRepo.WithTx(tx).Create(ctx, models.NewTermVersion(term, 1, models.ChangeCreation, &moderator)); err != nil {
			return models.Internal("Failed to approve contribution.", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure("approve", id, err)
		return nil, nil, err
	}

	s.logger.Info("contribution approved",
		zap.String("contribution_id", id.String()),
		zap.String("term_id", term.ID.String()),
		zap.String("moderator", moderator.String()),
	)

	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, models.Internal("Failed to load contribution.", err)
	}
	return contribution, term, nil
}

func (s *moderationService) Reject(ctx context.Context, id uuid.UUID, moderator uuid.UUID, note string) (*models.Contribution, error) {
	if _, err := s.loadPending(ctx, s.contributionRepo, id); err != nil {
		s.logFailure("reject", id, err)
		return nil, err
	}

	ok, err := s.contributionRepo.Transition(ctx, id, models.ContributionRejected, moderator, note, nil)
	if err != nil {
		s.logFailure("reject", id, err)
		return nil, models.Internal("Failed to reject contribution.", err)
	}
	if !ok {
		return nil, models.ErrorConflict{Message: "contribution is no longer pending"}
	}

	s.logger.Info("contribution rejected", zap.String("contribution_id", id.String()), zap.String("moderator", moderator.String()))

	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.Internal("Failed to load contribution.", err)
	}
	return contribution, nil
}

// Delete removes a contribution regardless of its status.
func (s *moderationService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.contributionRepo.Delete(ctx, id)
	if err != nil {
		return models.Internal("Failed to delete contribution.", err)
	}
	if !deleted {
		return models.ErrorNotFound{Message: "contribution not found"}
	}
	return nil
}

func (s *moderationService) loadPending(ctx context.Context, repo repositories.ContributionRepository, id uuid.UUID) (*models.Contribution, error) {
	contribution, err := repo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorNotFound{Message: "contribution not found"}
		}
		return nil, models.Internal("Failed to load contribution.", err)
	}
	if contribution.Status.Terminal() {
		return nil, models.ErrorConflict{Message: fmt.Sprintf("contribution already %s", contribution.Status)}
	}
	return contribution, nil
}

func (s *moderationService) logFailure(action string, id uuid.UUID, err error) {
	switch err.(type) {
	case models.ErrorNotFound, models.ErrorConflict:
		s.logger.Info("moderation refused", zap.String("action", action), zap.String("contribution_id", id.String()), zap.String("reason", err.Error()))
	default:
		s.logger.Error("moderation failed", zap.String("action", action), zap.String("contribution_id", id.String()), zap.Error(err))
	}
}

func promote(c *models.Contribution) *models.Term {
	submitter := c.SubmittedBy
	return &models.Term{
		ID:             uuid.New(),
		Title:          c.Title,
		Icon:           c.Icon,
		Category:       c.Category,
		Definition:     c.Definition,
		Origin:         c.Origin,
		Examples:       append(datatypes.JSONSlice[string]{}, c.Examples...),
		RelatedTerms:   append(datatypes.JSONSlice[string]{}, c.RelatedTerms...),
		PopularityData: datatypes.JSONSlice[int]{},
		Status:         models.TermPublished,
		SubmittedBy:    &submitter,
	}
}
