package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

type profileRepository interface {
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

// ProfileService reads and edits the caller's own portal profile.
type ProfileService struct {
	repo      profileRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService creates an instance of ProfileService.
func NewProfileService(repo profileRepository, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator(nil)
	}
	return &ProfileService{repo: repo, validator: validate, logger: logger}
}

// Get returns the caller's profile.
func (s *ProfileService) Get(ctx context.Context, claims *models.JWTClaims) (*models.UserProfile, error) {
	if claims == nil || claims.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "authentication required")
	}
	profile, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return profile, nil
}

// Update creates or edits the caller's profile. Email and role always come from the token.
func (s *ProfileService) Update(ctx context.Context, claims *models.JWTClaims, req dto.UpdateProfileRequest) (*models.UserProfile, error) {
	if claims == nil || claims.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "authentication required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	profile, err := s.repo.FindByID(ctx, claims.UserID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		profile = &models.UserProfile{ID: claims.UserID}
	case err != nil:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}

	profile.Email = claims.Email
	profile.Role = claims.Role
	if req.TeamNumber != nil {
		team := *req.TeamNumber
		profile.TeamNumber = &team
	}
	profile.Department = strings.TrimSpace(req.Department)
	if req.ExistingSkills != nil {
		skills := make([]string, 0, len(req.ExistingSkills))
		for _, skill := range req.ExistingSkills {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}
		profile.ExistingSkills = skills
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	s.logger.Info("profile updated", zap.String("user_id", profile.ID))
	return profile, nil
}
