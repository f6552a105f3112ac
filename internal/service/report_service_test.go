package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/survey"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

const validReportJSON = `{
  "summary_of_report": "The team is broadly satisfied.",
  "positive_points_employee_wellbeing": ["Flexible hours"],
  "negative_points_employee_wellbeing": ["Deadline pressure"],
  "positive_points_work_environment": ["Helpful colleagues"],
  "negative_points_work_environment": ["Slow tooling"],
  "actionable_suggestions_for_improvement": ["Review release cadence", "Upgrade build machines"]
}`

func TestBuildReportPrompt(t *testing.T) {
	records := []models.FeedbackRecord{
		recordWith(func(r *models.FeedbackRecord) { r.EnjoymentOfWork = "The people\nand the product" }),
		recordWith(nil),
	}

	prompt := BuildReportPrompt(nil, 7, records)

	assert.Contains(t, prompt, "Feedback #1:")
	assert.Contains(t, prompt, "Feedback #2:")
	assert.Contains(t, prompt, "- Work Satisfaction: Satisfied")
	assert.Contains(t, prompt, "- Enjoyment of Work: The people and the product")
	assert.Contains(t, prompt, "- Improve Experience: N/A")
	assert.Contains(t, prompt, "Very dissatisfied=1")
	assert.Contains(t, prompt, "Never=1, Rarely=2, Occasionally=3, Very often=4")
	assert.Contains(t, prompt, "Training Preference, Learning Preference, Weakest Skill, Feedback Frequency")
	for _, key := range models.RequiredReportKeys {
		assert.Contains(t, prompt, `"`+key+`"`)
	}
}

func TestParseManagerReport(t *testing.T) {
	report, err := ParseManagerReport("```json\n" + validReportJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "The team is broadly satisfied.", report.Summary)
	assert.Equal(t, []string{"Review release cadence", "Upgrade build machines"}, report.ActionableSuggestions)
	assert.True(t, strings.HasPrefix(report.Raw, "{"))

	_, err = ParseManagerReport(validReportJSON)
	assert.NoError(t, err)
}

func TestParseManagerReportMissingSummary(t *testing.T) {
	body := strings.Replace(validReportJSON, `"summary_of_report": "The team is broadly satisfied.",`, "", 1)

	report, err := ParseManagerReport(body)

	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrMalformedReport))
	assert.Equal(t, models.ReportKeySummary, appErrors.FromError(err).Details["missingKey"])
}

func TestParseManagerReportRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"not json":     "Here is your report: the team is fine.",
		"array":        `["summary_of_report"]`,
		"summary type": strings.Replace(validReportJSON, `"The team is broadly satisfied."`, `42`, 1),
		"list type":    strings.Replace(validReportJSON, `["Flexible hours"]`, `"Flexible hours"`, 1),
		"item type":    strings.Replace(validReportJSON, `["Slow tooling"]`, `[{"text":"Slow tooling"}]`, 1),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManagerReport(body)
			assert.True(t, errors.Is(err, appErrors.ErrMalformedReport), "got %v", err)
		})
	}
}

func TestGenerateReportSendsOneDeterministicRequest(t *testing.T) {
	gen := &stubGenerator{text: validReportJSON}
	svc := NewReportService(&memoryFeedbackStore{}, gen, &stubTeamClassifier{}, nil, ReportConfig{Model: "gpt-test", Provider: "openai"}, NewMetricsService(), nil)

	report, err := svc.GenerateReport(context.Background(), 7, []models.FeedbackRecord{recordWith(nil)})
	require.NoError(t, err)
	assert.Len(t, report.PositiveWellbeing, 1)

	require.Len(t, gen.reqs, 1)
	req := gen.reqs[0]
	assert.Equal(t, "gpt-test", req.Model)
	assert.Equal(t, 0.0, req.Temperature)
	assert.Equal(t, 1200, req.MaxTokens)
	assert.True(t, req.JSON)
	assert.Equal(t, reportSystemPrompt, req.System)
}

func TestGenerateReportFailures(t *testing.T) {
	metrics := NewMetricsService()

	down := NewReportService(nil, &stubGenerator{err: errors.New("503 from provider")}, nil, nil, ReportConfig{}, metrics, nil)
	_, err := down.GenerateReport(context.Background(), 7, []models.FeedbackRecord{recordWith(nil)})
	assert.True(t, errors.Is(err, appErrors.ErrUpstream))
	assert.Equal(t, "generator", appErrors.FromError(err).Details["service"])

	malformed := NewReportService(nil, &stubGenerator{text: "{}"}, nil, nil, ReportConfig{}, metrics, nil)
	_, err = malformed.GenerateReport(context.Background(), 7, []models.FeedbackRecord{recordWith(nil)})
	assert.True(t, errors.Is(err, appErrors.ErrMalformedReport))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.reportFailures.WithLabelValues("UPSTREAM_SERVICE_ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.reportFailures.WithLabelValues("MALFORMED_REPORT")))
}

func TestReportSummary(t *testing.T) {
	store := &memoryFeedbackStore{records: []models.FeedbackRecord{recordWith(nil), recordWith(nil)}}
	classifier := &stubTeamClassifier{result: models.TeamSentiment{
		survey.FieldOverallWorkLifeBalance:  {Positive: 1, Negative: 1},
		survey.FieldTeamWorkingRelationship: {Positive: 2},
		survey.FieldEnjoymentOfWork:         {Neutral: 2},
	}}
	gen := &stubGenerator{text: validReportJSON}
	svc := NewReportService(store, gen, classifier, nil, ReportConfig{}, nil, nil)

	got, err := svc.Summary(context.Background(), managerClaims(7), 7)
	require.NoError(t, err)

	assert.JSONEq(t, validReportJSON, got.ManagerReport.ManagerReport)
	assert.Equal(t, models.SentimentCounts{Positive: 3, Negative: 1, Neutral: 2}, got.SentimentCounts)
	require.Len(t, classifier.calls, 1)
	assert.Equal(t, survey.SentimentFields, classifier.calls[0])
}

func TestReportSummaryEmptyTeam(t *testing.T) {
	gen := &stubGenerator{text: validReportJSON}
	classifier := &stubTeamClassifier{}
	svc := NewReportService(&memoryFeedbackStore{}, gen, classifier, nil, ReportConfig{}, nil, nil)

	_, err := svc.Summary(context.Background(), adminClaims(), 7)

	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Empty(t, gen.reqs)
	assert.Empty(t, classifier.calls)
}

func TestReportSummaryPropagatesFailure(t *testing.T) {
	store := &memoryFeedbackStore{records: []models.FeedbackRecord{recordWith(nil)}}
	svc := NewReportService(store, &stubGenerator{text: "not json"}, &stubTeamClassifier{}, nil, ReportConfig{}, nil, nil)

	got, err := svc.Summary(context.Background(), adminClaims(), 7)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, appErrors.ErrMalformedReport))
}
