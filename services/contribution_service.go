package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skibidi-db/models"
	"skibidi-db/repositories"
)

// AuthPromptDelay is how long a client should wait before showing the sign-in
// prompt after an anonymous submission is refused.
const AuthPromptDelay = time.Second

type ContributionService interface {
	Submit(ctx context.Context, identity *Identity, req models.CreateContributionRequest) (*models.Contribution, error)
	ListMine(ctx context.Context, profileID uuid.UUID) ([]models.Contribution, error)
}

type contributionService struct {
	contributionRepo repositories.ContributionRepository
	logger           *zap.Logger
}

func NewContributionService(contributionRepo repositories.ContributionRepository, logger *zap.Logger) ContributionService {
	return &contributionService{
		contributionRepo: contributionRepo,
		logger:           logger,
	}
}

func (s *contributionService) Submit(ctx context.Context, identity *Identity, req models.CreateContributionRequest) (*models.Contribution, error) {
	if identity == nil {
		return nil, models.ErrorUnauthorized{
			Message: "Please sign in to contribute terms",
			Data:    map[string]interface{}{"auth_prompt_after_ms": AuthPromptDelay.Milliseconds()},
		}
	}

	if err := ValidateContribution(req); err != nil {
		return nil, err
	}

	icon := strings.TrimSpace(req.Icon)
	if icon == "" {
		icon = models.DefaultIcon
	}

	contribution := &models.Contribution{
		Title:        strings.TrimSpace(req.Title),
		Icon:         icon,
		Category:     req.Category,
		Definition:   strings.TrimSpace(req.Definition),
		Origin:       strings.TrimSpace(req.Origin),
		Examples:     nonBlank(req.Examples),
		RelatedTerms: nonBlank(req.RelatedTerms),
		SubmittedBy:  identity.ProfileID,
		Status:       models.ContributionPending,
	}

	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		s.logger.Error("failed to insert contribution", zap.Error(err), zap.String("submitted_by", identity.ProfileID.String()))
		return nil, models.Internal("Failed to submit contribution. Please try again.", err)
	}

	s.logger.Info("contribution submitted",
		zap.String("contribution_id", contribution.ID.String()),
		zap.String("submitted_by", identity.ProfileID.String()),
	)
	return contribution, nil
}

func (s *contributionService) ListMine(ctx context.Context, profileID uuid.UUID) ([]models.Contribution, error) {
	contributions, err := s.contributionRepo.ListBySubmitter(ctx, profileID)
	if err != nil {
		return nil, models.Internal("Failed to load contributions.", err)
	}
	return contributions, nil
}

// ValidateContribution checks the required fields in form order and returns
// the first failure.
func ValidateContribution(req models.CreateContributionRequest) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return models.ErrorValidation{Field: "title", Message: "Term title is required"}
	case strings.TrimSpace(req.Definition) == "":
		return models.ErrorValidation{Field: "definition", Message: "Definition is required"}
	case req.Category == "":
		return models.ErrorValidation{Field: "category", Message: "Category is required"}
	case !models.IsCategory(req.Category):
		return models.ErrorValidation{Field: "category", Message: "Category is invalid"}
	case len(nonBlank(req.Examples)) == 0:
		return models.ErrorValidation{Field: "examples", Message: "At least one usage example is required"}
	}
	return nil
}

// nonBlank trims each entry and drops the empty ones. The result is never nil
// so it serializes as [] rather than null.
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
