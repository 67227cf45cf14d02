package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skibidi-db/models"
	"skibidi-db/repositories"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.Profile, error)
	SetSuspended(ctx context.Context, actor uuid.UUID, id uuid.UUID, suspended bool) (*models.Profile, error)
	SetRole(ctx context.Context, actor uuid.UUID, id uuid.UUID, role models.UserRole) (*models.Profile, error)
	ResetUserPassword(ctx context.Context, id uuid.UUID) error
	DeleteUser(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
	Statistics(ctx context.Context) (*models.Statistics, error)
}

type adminService struct {
	profileRepo repositories.ProfileRepository
	statsRepo   repositories.StatisticsRepository
	authService AuthService
	logger      *zap.Logger
}

func NewAdminService(profileRepo repositories.ProfileRepository, statsRepo repositories.StatisticsRepository, authService AuthService, logger *zap.Logger) AdminService {
	return &adminService{
		profileRepo: profileRepo,
		statsRepo:   statsRepo,
		authService: authService,
		logger:      logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, models.Internal("Failed to load users.", err)
	}
	return profiles, nil
}

func (s *adminService) SetSuspended(ctx context.Context, actor uuid.UUID, id uuid.UUID, suspended bool) (*models.Profile, error) {
	if actor == id {
		return nil, models.ErrorForbidden{Message: "you cannot suspend your own account"}
	}
	return s.update(ctx, id, map[string]interface{}{"suspended": suspended})
}

func (s *adminService) SetRole(ctx context.Context, actor uuid.UUID, id uuid.UUID, role models.UserRole) (*models.Profile, error) {
	if !role.Valid() {
		return nil, models.ErrorValidation{Field: "role", Message: "Role is invalid"}
	}
	if actor == id && role != models.RoleAdmin {
		return nil, models.ErrorForbidden{Message: "you cannot remove your own admin role"}
	}
	return s.update(ctx, id, map[string]interface{}{"role": role})
}

// ResetUserPassword mails the user a reset link, as if they had asked for it.
func (s *adminService) ResetUserPassword(ctx context.Context, id uuid.UUID) error {
	profile, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	return s.authService.RequestPasswordReset(ctx, profile.Email)
}

func (s *adminService) DeleteUser(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	if actor == id {
		return models.ErrorForbidden{Message: "you cannot delete your own account"}
	}
	deleted, err := s.profileRepo.Delete(ctx, id)
	if err != nil {
		return models.Internal("Failed to delete user.", err)
	}
	if !deleted {
		return models.ErrorNotFound{Message: "User not found"}
	}
	s.logger.Info("user deleted", zap.String("profile_id", id.String()), zap.String("actor", actor.String()))
	return nil
}

func (s *adminService) Statistics(ctx context.Context) (*models.Statistics, error) {
	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("failed to compute statistics", zap.Error(err))
		return nil, models.Internal("Failed to load statistics.", err)
	}
	return stats, nil
}

func (s *adminService) update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Profile, error) {
	updated, err := s.profileRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, models.Internal("Failed to update user.", err)
	}
	if !updated {
		return nil, models.ErrorNotFound{Message: "User not found"}
	}
	s.logger.Info("user updated", zap.String("profile_id", id.String()), zap.Any("fields", fields))
	return s.get(ctx, id)
}

func (s *adminService) get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.Internal("Failed to load user.", err)
	}
	return profile, nil
}
