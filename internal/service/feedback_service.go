package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/repository"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

type feedbackStore interface {
	Acquire(ctx context.Context) (repository.FeedbackSession, error)
}

// FeedbackService accepts survey submissions and serves team listings.
type FeedbackService struct {
	store     feedbackStore
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewFeedbackService constructs the service. The validator must know the survey tags.
func NewFeedbackService(store feedbackStore, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = NewValidator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{store: store, validator: validate, metrics: metrics, logger: logger}
}

// Submit validates and stores one submission owned by the caller.
func (s *FeedbackService) Submit(ctx context.Context, claims *models.JWTClaims, req dto.SubmitFeedbackRequest) (*models.FeedbackRecord, error) {
	record, err := s.submit(ctx, claims, req)
	s.metrics.RecordSubmission(err)
	return record, err
}

func (s *FeedbackService) submit(ctx context.Context, claims *models.JWTClaims, req dto.SubmitFeedbackRequest) (*models.FeedbackRecord, error) {
	if claims == nil || claims.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "authentication required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	record := req.Record(claims.UserID)
	err := withSession(ctx, s.store, func(sess repository.FeedbackSession) error {
		return sess.Create(ctx, record)
	})
	if err != nil {
		s.logger.Error("store feedback", zap.Int("team_number", record.TeamNumber), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store feedback")
	}

	s.logger.Info("feedback stored", zap.String("feedback_id", record.ID), zap.Int("team_number", record.TeamNumber))
	return record, nil
}

// ListByTeam returns the team's records; an unknown team yields an empty slice.
func (s *FeedbackService) ListByTeam(ctx context.Context, teamNumber int) ([]models.FeedbackRecord, error) {
	return loadTeamFeedback(ctx, s.store, teamNumber)
}

// ListTeam is the caller-facing listing: it checks access and reports an empty team as not found.
func (s *FeedbackService) ListTeam(ctx context.Context, claims *models.JWTClaims, teamNumber int) ([]models.FeedbackRecord, error) {
	if err := authorizeTeam(claims, teamNumber); err != nil {
		return nil, err
	}
	records, err := loadTeamFeedback(ctx, s.store, teamNumber)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, appErrors.TeamNotFound(teamNumber)
	}
	return records, nil
}

func withSession(ctx context.Context, store feedbackStore, fn func(repository.FeedbackSession) error) (err error) {
	sess, err := store.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release feedback session: %w", cerr)
		}
	}()
	return fn(sess)
}

func loadTeamFeedback(ctx context.Context, store feedbackStore, teamNumber int) ([]models.FeedbackRecord, error) {
	var records []models.FeedbackRecord
	err := withSession(ctx, store, func(sess repository.FeedbackSession) error {
		var err error
		records, err = sess.ListByTeam(ctx, teamNumber)
		return err
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load feedback")
	}
	if records == nil {
		records = []models.FeedbackRecord{}
	}
	return records, nil
}

// authorizeTeam lets admins read any team and managers their own.
func authorizeTeam(claims *models.JWTClaims, teamNumber int) error {
	if claims == nil || claims.UserID == "" {
		return appErrors.Clone(appErrors.ErrUnauthorized, "authentication required")
	}
	if teamNumber <= 0 {
		return appErrors.Validation("teamNumber", "teamNumber must be greater than 0")
	}
	if !claims.CanViewTeam(teamNumber) {
		return appErrors.WithDetail(appErrors.Clone(appErrors.ErrForbidden, "not allowed to view this team"), "teamNumber", teamNumber)
	}
	return nil
}
