package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/survey"
	"github.com/noah-isme/team-pulse-api/pkg/classifier"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

type sentimentBackend interface {
	Classify(ctx context.Context, teamNumber int, fields []string) (map[string]classifier.Counts, error)
}

// SentimentService proxies the external classifier for open-ended answers.
type SentimentService struct {
	backend   sentimentBackend
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewSentimentService constructs the service.
func NewSentimentService(backend sentimentBackend, metrics *MetricsService, logger *zap.Logger) *SentimentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SentimentService{backend: backend, validator: NewValidator(nil), metrics: metrics, logger: logger}
}

// Classify returns counts for the requested open-ended fields, defaulting to the three
// sentiment fields. Fields the classifier did not report are absent from the result.
func (s *SentimentService) Classify(ctx context.Context, teamNumber int, fields []string) (models.TeamSentiment, error) {
	if len(fields) == 0 {
		fields = survey.SentimentFields
	}

	start := time.Now()
	raw, err := s.backend.Classify(ctx, teamNumber, fields)
	s.metrics.ObserveUpstream("classifier", "sentiment", time.Since(start), err)
	if err != nil {
		s.logger.Warn("classifier call failed", zap.Int("team_number", teamNumber), zap.Error(err))
		return nil, appErrors.Upstream("classifier", err)
	}

	out := make(models.TeamSentiment, len(fields))
	for _, f := range fields {
		if c, ok := raw[f]; ok {
			out[f] = models.SentimentCounts{Positive: c.Positive, Negative: c.Negative, Neutral: c.Neutral}
		}
	}
	return out, nil
}

// ClassifyTeam is the caller-facing variant that checks team access first.
func (s *SentimentService) ClassifyTeam(ctx context.Context, claims *models.JWTClaims, teamNumber int, fields []string) (models.TeamSentiment, error) {
	if err := authorizeTeam(claims, teamNumber); err != nil {
		return nil, err
	}
	return s.Classify(ctx, teamNumber, fields)
}

// ClassifyRequest validates a caller request and classifies the named fields.
func (s *SentimentService) ClassifyRequest(ctx context.Context, claims *models.JWTClaims, req dto.SentimentRequest) (*dto.SentimentResponse, error) {
	if err := authorizeTeam(claims, req.TeamNumber); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	fields, err := s.Classify(ctx, req.TeamNumber, req.Fields)
	if err != nil {
		return nil, err
	}
	requested := req.Fields
	if len(requested) == 0 {
		requested = survey.SentimentFields
	}
	for _, f := range requested {
		if _, ok := fields[f]; !ok {
			fields[f] = models.SentimentCounts{}
		}
	}
	return &dto.SentimentResponse{TeamNumber: req.TeamNumber, Fields: fields}, nil
}

// SumSentiment adds up counts over fields.
func SumSentiment(ts models.TeamSentiment, fields []string) models.SentimentCounts {
	var total models.SentimentCounts
	for _, f := range fields {
		c := ts[f]
		total.Positive += c.Positive
		total.Negative += c.Negative
		total.Neutral += c.Neutral
	}
	return total
}
