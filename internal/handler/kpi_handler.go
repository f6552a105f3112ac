package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/service"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
	"github.com/noah-isme/team-pulse-api/pkg/response"
)

type kpiService interface {
	Compute(ctx context.Context, claims *models.JWTClaims, req dto.KPIRequest) (*models.TeamKPI, error)
	Export(ctx context.Context, claims *models.JWTClaims, teamNumber int, format dto.ExportFormat) (*service.ExportFile, error)
}

// KPIHandler exposes team KPI endpoints.
type KPIHandler struct {
	service kpiService
}

// NewKPIHandler constructs handler.
func NewKPIHandler(service kpiService) *KPIHandler {
	return &KPIHandler{service: service}
}

// Compute godoc
// @Summary Team KPIs
// @Description Aggregates the team's feedback; suggestions come from the report generator unless disabled.
// @Tags KPIs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.KPIRequest true "Team"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /kpis [post]
func (h *KPIHandler) Compute(c *gin.Context) {
	var req dto.KPIRequest
	if !bindJSON(c, &req, "invalid kpi payload") {
		return
	}
	kpi, err := h.service.Compute(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, kpi, nil)
}

// Export godoc
// @Summary Export team KPIs
// @Tags KPIs
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param team path int true "Team number"
// @Param format query string false "csv or pdf" Enums(csv, pdf)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /teams/{team}/kpis/export [get]
func (h *KPIHandler) Export(c *gin.Context) {
	team, err := teamParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var query dto.KPIExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export query"))
		return
	}

	file, err := h.service.Export(c.Request.Context(), claimsFromContext(c), team, dto.ExportFormat(strings.ToLower(query.Format)))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
