package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/dto"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/survey"
	"github.com/noah-isme/team-pulse-api/pkg/response"
)

type profileService interface {
	Get(ctx context.Context, claims *models.JWTClaims) (*models.UserProfile, error)
	Update(ctx context.Context, claims *models.JWTClaims, req dto.UpdateProfileRequest) (*models.UserProfile, error)
}

// ProfileHandler serves the caller's profile and the survey form.
type ProfileHandler struct {
	profiles profileService
	schema   *survey.Schema
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profiles profileService, schema *survey.Schema) *ProfileHandler {
	if schema == nil {
		schema = survey.Default()
	}
	return &ProfileHandler{profiles: profiles, schema: schema}
}

// Me godoc
// @Summary Current user profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// UpdateMe godoc
// @Summary Update current user profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req, "invalid profile payload") {
		return
	}
	profile, err := h.profiles.Update(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// Survey godoc
// @Summary Survey questions
// @Tags Survey
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /survey [get]
func (h *ProfileHandler) Survey(c *gin.Context) {
	questions := h.schema.Questions()
	response.JSON(c, http.StatusOK, questions, nil, map[string]interface{}{"count": len(questions)})
}
