package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/pkg/response"
)

type reportService interface {
	Summary(ctx context.Context, claims *models.JWTClaims, teamNumber int) (*dto.ReportSummaryResponse, error)
}

type sentimentService interface {
	ClassifyRequest(ctx context.Context, claims *models.JWTClaims, req dto.SentimentRequest) (*dto.SentimentResponse, error)
}

// ReportHandler exposes the manager report and sentiment endpoints.
type ReportHandler struct {
	reports   reportService
	sentiment sentimentService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports reportService, sentiment sentimentService) *ReportHandler {
	return &ReportHandler{reports: reports, sentiment: sentiment}
}

// Summary godoc
// @Summary Manager report
// @Description Generates a narrative report for the team plus sentiment counts over the well-being answers.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.TeamRequest true "Team"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /reports/summary [post]
func (h *ReportHandler) Summary(c *gin.Context) {
	var req dto.TeamRequest
	if !bindJSON(c, &req, "invalid report payload") {
		return
	}
	summary, err := h.reports.Summary(c.Request.Context(), claimsFromContext(c), req.TeamNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Sentiment godoc
// @Summary Sentiment counts
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SentimentRequest true "Team and optional open-ended fields"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /sentiment [post]
func (h *ReportHandler) Sentiment(c *gin.Context) {
	var req dto.SentimentRequest
	if !bindJSON(c, &req, "invalid sentiment payload") {
		return
	}
	resp, err := h.sentiment.ClassifyRequest(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
