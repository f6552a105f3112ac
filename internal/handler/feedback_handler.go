package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/pkg/response"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type feedbackService interface {
	Submit(ctx context.Context, claims *models.JWTClaims, req dto.SubmitFeedbackRequest) (*models.FeedbackRecord, error)
	ListTeam(ctx context.Context, claims *models.JWTClaims, teamNumber int) ([]models.FeedbackRecord, error)
}

// FeedbackHandler exposes survey submission and listing endpoints.
type FeedbackHandler struct {
	service feedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(service feedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit godoc
// @Summary Submit survey feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SubmitFeedbackRequest true "Survey answers"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if !bindJSON(c, &req, "invalid feedback payload") {
		return
	}
	record, err := h.service.Submit(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SubmitFeedbackResponse{ID: record.ID, CreatedAt: record.CreatedAt.Format(time.RFC3339)})
}

// List godoc
// @Summary List a team's feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.TeamRequest true "Team"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /feedback/list [post]
func (h *FeedbackHandler) List(c *gin.Context) {
	var req dto.TeamRequest
	if !bindJSON(c, &req, "invalid team payload") {
		return
	}
	h.list(c, req.TeamNumber)
}

// ListByTeam godoc
// @Summary List a team's feedback
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Param team path int true "Team number"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Records per page, at most 200"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teams/{team}/feedback [get]
func (h *FeedbackHandler) ListByTeam(c *gin.Context) {
	team, err := teamParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, team)
}

// list answers with one page of records; ?page and ?page_size default to 1 and 50.
func (h *FeedbackHandler) list(c *gin.Context, team int) {
	records, err := h.service.ListTeam(c.Request.Context(), claimsFromContext(c), team)
	if err != nil {
		response.Error(c, err)
		return
	}

	page := positiveQuery(c, "page", 1)
	size := positiveQuery(c, "page_size", defaultPageSize)
	if size > maxPageSize {
		size = maxPageSize
	}
	start := (page - 1) * size
	if start > len(records) {
		start = len(records)
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}

	response.JSON(c, http.StatusOK, records[start:end], &models.Pagination{
		Page:       page,
		PageSize:   size,
		TotalCount: len(records),
	})
}

func positiveQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
