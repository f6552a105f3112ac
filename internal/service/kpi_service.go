package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/survey"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
	"github.com/noah-isme/team-pulse-api/pkg/export"
)

type reportGenerator interface {
	GenerateReport(ctx context.Context, teamNumber int, records []models.FeedbackRecord) (*models.ManagerReport, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

// KPIConfig tunes KPI requests.
type KPIConfig struct {
	RequestTimeout time.Duration
}

// ExportFile is a rendered KPI export.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// KPIService loads team feedback, gathers classifier and generator inputs and aggregates them.
type KPIService struct {
	store      feedbackStore
	aggregator *KPIAggregator
	sentiment  teamClassifier
	reports    reportGenerator
	csv        datasetRenderer
	pdf        datasetRenderer
	validator  *validator.Validate
	cfg        KPIConfig
	logger     *zap.Logger
}

// NewKPIService constructs the service. nil renderers use the pkg/export defaults.
func NewKPIService(store feedbackStore, aggregator *KPIAggregator, sentiment teamClassifier, reports reportGenerator, cfg KPIConfig, logger *zap.Logger, csv, pdf datasetRenderer) *KPIService {
	if aggregator == nil {
		aggregator = NewKPIAggregator(nil, nil, defaultWeakSkillThreshold)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 90 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &KPIService{store: store, aggregator: aggregator, sentiment: sentiment, reports: reports, csv: csv, pdf: pdf, validator: NewValidator(nil), cfg: cfg, logger: logger}
}

// Compute returns the team's KPIs. A team without records aggregates to zeros and no
// outbound call is made.
func (s *KPIService) Compute(ctx context.Context, claims *models.JWTClaims, req dto.KPIRequest) (*models.TeamKPI, error) {
	if err := authorizeTeam(claims, req.TeamNumber); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	records, err := loadTeamFeedback(ctx, s.store, req.TeamNumber)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		kpi := s.aggregator.Aggregate(req.TeamNumber, records, KPIInputs{})
		return &kpi, nil
	}

	in, err := s.gatherInputs(ctx, req.TeamNumber, records, req.WantsSuggestions())
	if err != nil {
		return nil, err
	}
	kpi := s.aggregator.Aggregate(req.TeamNumber, records, in)
	s.logger.Debug("kpis computed", zap.Int("team_number", req.TeamNumber), zap.Int("records", len(records)))
	return &kpi, nil
}

func (s *KPIService) gatherInputs(ctx context.Context, teamNumber int, records []models.FeedbackRecord, withSuggestions bool) (KPIInputs, error) {
	var in KPIInputs
	fields := append(append([]string{}, survey.SentimentFields...), survey.FieldWorkRelatedStressors)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sentiment, err := s.sentiment.Classify(gctx, teamNumber, fields)
		if err != nil {
			return err
		}
		in.Sentiment = sentiment
		if stress, ok := sentiment[survey.FieldWorkRelatedStressors]; ok {
			in.Stress = &stress
		} else {
			s.logger.Warn("classifier did not report stressor answers", zap.Int("team_number", teamNumber))
		}
		return nil
	})
	if withSuggestions && s.reports != nil {
		g.Go(func() error {
			report, err := s.reports.GenerateReport(gctx, teamNumber, records)
			if err != nil {
				return err
			}
			in.Suggestions = report.ActionableSuggestions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return KPIInputs{}, err
	}
	return in, nil
}

// Export renders the deterministic KPIs of a team as CSV or PDF. Suggestions are never
// generated for exports.
func (s *KPIService) Export(ctx context.Context, claims *models.JWTClaims, teamNumber int, format dto.ExportFormat) (*ExportFile, error) {
	if err := s.validator.Struct(dto.KPIExportQuery{Format: string(format)}); err != nil {
		return nil, validationError(err)
	}
	renderer := s.csv
	if format == dto.ExportFormatPDF {
		renderer = s.pdf
	}

	noSuggestions := false
	kpi, err := s.Compute(ctx, claims, dto.KPIRequest{TeamNumber: teamNumber, IncludeSuggestions: &noSuggestions})
	if err != nil {
		return nil, err
	}

	payload, err := renderer.Render(kpiDataset(kpi))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("team_%d_kpis_%s.%s", teamNumber, time.Now().UTC().Format("20060102"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Payload:     payload,
	}, nil
}

func kpiDataset(kpi *models.TeamKPI) export.Dataset {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	stress := "unavailable"
	if kpi.PercentageOfEmployeesReportingWorkRelatedStress != nil {
		stress = num(*kpi.PercentageOfEmployeesReportingWorkRelatedStress)
	}
	weak := "none"
	if len(kpi.CommonWeakSkillsReportedByEmployees) > 0 {
		weak = strings.Join(kpi.CommonWeakSkillsReportedByEmployees, "; ")
	}

	rows := [][]string{
		{"Responses", strconv.Itoa(kpi.ResponseCount)},
		{"Average work satisfaction", num(kpi.AverageWorkSatisfaction)},
		{"Average work-life balance", num(kpi.AverageWorkLifeBalance)},
		{"Employees reporting work-related stress (%)", stress},
		{"Common weak skills", weak},
		{"Net promoter score", num(kpi.NetPromoterScore)},
		{"Positive sentiment (%)", num(kpi.PositiveSentimentPercentage)},
		{"Negative sentiment (%)", num(kpi.NegativeSentimentPercentage)},
	}

	keys := make([]string, 0, len(kpi.BreakdownOfTrainingPreferences))
	for k := range kpi.BreakdownOfTrainingPreferences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, []string{"Training preference " + k + " (%)", num(kpi.BreakdownOfTrainingPreferences[k])})
	}

	return export.Dataset{
		Title:   fmt.Sprintf("Team %d KPIs", kpi.TeamNumber),
		Notes:   []string{"Generated " + time.Now().UTC().Format(time.RFC3339)},
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
}
