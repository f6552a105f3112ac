package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

func validSubmission(team int) dto.SubmitFeedbackRequest {
	return dto.SubmitFeedbackRequest{
		TeamNumber:                   team,
		WorkSatisfaction:             "Satisfied",
		WorkLifeBalance:              "Mostly balanced",
		WorkSupport:                  "Supported",
		InterDepartmentCommunication: "Effective",
		WorkRecognition:              "Valued",
		ToolsSatisfaction:            "Neutral",
		CultureAlignment:             "Somewhat aligned",
		CareerGrowthSatisfaction:     "Dissatisfied",
		TrainingPreference:           "Technical skills",
		DevelopmentOpportunities:     "Occasionally",
		LearningPreference:           "Online courses",
		WeakestSkill:                 "Communication skills",
		RecognitionSatisfaction:      "Satisfied",
		FeedbackFrequency:            "Monthly",
		RecommendCompany:             "Likely",
		OverallWorkLifeBalance:       "Good most weeks",
		WorkRelatedStressors:         "Release deadlines",
	}
}

func TestFeedbackSubmitThenList(t *testing.T) {
	store := &memoryFeedbackStore{}
	metrics := NewMetricsService()
	svc := NewFeedbackService(store, nil, metrics, nil)

	req := validSubmission(4)
	rec, err := svc.Submit(context.Background(), employeeClaims(4), req)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "employee-1", rec.UserID)

	records, err := svc.ListByTeam(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, records, 1)
	got := records[0]
	assert.Equal(t, req.WorkSatisfaction, got.WorkSatisfaction)
	assert.Equal(t, req.RecommendCompany, got.RecommendCompany)
	assert.Equal(t, req.WorkRelatedStressors, got.WorkRelatedStressors)
	assert.Equal(t, "", got.ImproveExperience)

	assert.Equal(t, store.acquired, store.closed)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.feedbackSubmitted.WithLabelValues("stored")))
}

func TestFeedbackSubmitRejectsUnknownOption(t *testing.T) {
	store := &memoryFeedbackStore{}
	metrics := NewMetricsService()
	svc := NewFeedbackService(store, nil, metrics, nil)

	req := validSubmission(4)
	req.WorkSatisfaction = "Okay"
	_, err := svc.Submit(context.Background(), employeeClaims(4), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, "workSatisfaction", appErrors.FromError(err).Details["field"])
	assert.Empty(t, store.records)
	assert.Equal(t, 0, store.acquired)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.feedbackSubmitted.WithLabelValues("rejected")))
}

func TestFeedbackSubmitRequiresSession(t *testing.T) {
	store := &memoryFeedbackStore{}
	svc := NewFeedbackService(store, nil, nil, nil)

	_, err := svc.Submit(context.Background(), nil, validSubmission(4))

	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
	assert.Empty(t, store.records)
}

func TestFeedbackSubmitStoreFailure(t *testing.T) {
	store := &memoryFeedbackStore{createErr: errors.New("disk full")}
	svc := NewFeedbackService(store, nil, nil, nil)

	_, err := svc.Submit(context.Background(), employeeClaims(4), validSubmission(4))

	assert.True(t, errors.Is(err, appErrors.ErrInternal))
	assert.Equal(t, 1, store.closed)
}

func TestFeedbackListTeam(t *testing.T) {
	store := &memoryFeedbackStore{}
	svc := NewFeedbackService(store, nil, nil, nil)
	_, err := svc.Submit(context.Background(), employeeClaims(4), validSubmission(4))
	require.NoError(t, err)

	records, err := svc.ListTeam(context.Background(), managerClaims(4), 4)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.ListTeam(context.Background(), adminClaims(), 9)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, 9, appErrors.FromError(err).Details["teamNumber"])

	internal, err := svc.ListByTeam(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, internal)
	assert.Empty(t, internal)

	_, err = svc.ListTeam(context.Background(), managerClaims(5), 4)
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))

	_, err = svc.ListTeam(context.Background(), employeeClaims(4), 4)
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))
}
