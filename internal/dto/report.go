package dto

import (
	"github.com/noah-isme/team-pulse-api/internal/models"
)

// ManagerReportEnvelope wraps the generated report JSON as a string.
type ManagerReportEnvelope struct {
	ManagerReport string `json:"manager_report"`
}

// ReportSummaryResponse is returned by the report endpoint.
type ReportSummaryResponse struct {
	ManagerReport   ManagerReportEnvelope  `json:"manager_report"`
	SentimentCounts models.SentimentCounts `json:"sentiment_counts"`
}

// SentimentRequest asks the classifier for a team. Empty Fields uses the standard three.
type SentimentRequest struct {
	TeamNumber int      `json:"teamNumber" validate:"required,gt=0"`
	Fields     []string `json:"fields,omitempty" validate:"omitempty,dive,survey_open_field"`
}

// SentimentResponse echoes the per-field counts.
type SentimentResponse struct {
	TeamNumber int                  `json:"teamNumber"`
	Fields     models.TeamSentiment `json:"fields"`
}
