package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/middleware"
	"github.com/noah-isme/team-pulse-api/internal/models"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
	"github.com/noah-isme/team-pulse-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// teamParam reads the :team path parameter.
func teamParam(c *gin.Context) (int, error) {
	team, err := strconv.Atoi(c.Param("team"))
	if err != nil || team <= 0 {
		return 0, appErrors.Validation("teamNumber", "teamNumber must be a positive integer")
	}
	return team, nil
}

func bindJSON(c *gin.Context, dest interface{}, message string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, message))
		return false
	}
	return true
}
