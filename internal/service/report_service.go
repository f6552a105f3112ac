package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/survey"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
	"github.com/noah-isme/team-pulse-api/pkg/llm"
)

type teamClassifier interface {
	Classify(ctx context.Context, teamNumber int, fields []string) (models.TeamSentiment, error)
}

// ReportConfig tunes generation requests.
type ReportConfig struct {
	Model          string
	Temperature    float64
	MaxTokens      int
	RequestTimeout time.Duration
	// Provider only labels metrics.
	Provider string
}

// ReportService requests narrative manager reports from the text generator.
type ReportService struct {
	store     feedbackStore
	generator llm.Generator
	sentiment teamClassifier
	schema    *survey.Schema
	cfg       ReportConfig
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewReportService constructs the service.
func NewReportService(store feedbackStore, generator llm.Generator, sentiment teamClassifier, schema *survey.Schema, cfg ReportConfig, metrics *MetricsService, logger *zap.Logger) *ReportService {
	if schema == nil {
		schema = survey.Default()
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1200
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 90 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{store: store, generator: generator, sentiment: sentiment, schema: schema, cfg: cfg, metrics: metrics, logger: logger}
}

// GenerateReport makes one generation call over records and validates the result.
// Failures are returned as-is; nothing is retried.
func (s *ReportService) GenerateReport(ctx context.Context, teamNumber int, records []models.FeedbackRecord) (*models.ManagerReport, error) {
	report, err := s.generate(ctx, teamNumber, records)
	if err != nil {
		s.metrics.RecordReportFailure(err)
	}
	return report, err
}

func (s *ReportService) generate(ctx context.Context, teamNumber int, records []models.FeedbackRecord) (*models.ManagerReport, error) {
	req := llm.Request{
		Model:       s.cfg.Model,
		System:      reportSystemPrompt,
		Prompt:      BuildReportPrompt(s.schema, teamNumber, records),
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		JSON:        true,
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, req)
	s.metrics.ObserveUpstream("generator", s.cfg.Provider, time.Since(start), err)
	if err != nil {
		s.logger.Warn("report generation failed", zap.Int("team_number", teamNumber), zap.Error(err))
		return nil, appErrors.Upstream("generator", err)
	}

	report, err := ParseManagerReport(text)
	if err != nil {
		s.logger.Warn("malformed manager report", zap.Int("team_number", teamNumber), zap.Error(err))
		return nil, err
	}
	return report, nil
}

// Summary builds the caller-facing report: the generated report plus sentiment counts summed
// over the three sentiment fields. A team without feedback is not found.
func (s *ReportService) Summary(ctx context.Context, claims *models.JWTClaims, teamNumber int) (*dto.ReportSummaryResponse, error) {
	if err := authorizeTeam(claims, teamNumber); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	records, err := loadTeamFeedback(ctx, s.store, teamNumber)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, appErrors.TeamNotFound(teamNumber)
	}

	var (
		report    *models.ManagerReport
		sentiment models.TeamSentiment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report, err = s.GenerateReport(gctx, teamNumber, records)
		return err
	})
	g.Go(func() error {
		var err error
		sentiment, err = s.sentiment.Classify(gctx, teamNumber, survey.SentimentFields)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ReportSummaryResponse{
		ManagerReport:   dto.ManagerReportEnvelope{ManagerReport: report.Raw},
		SentimentCounts: SumSentiment(sentiment, survey.SentimentFields),
	}, nil
}
