package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/models"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
	"github.com/noah-isme/team-pulse-api/pkg/response"
)

// RequireRoles lets only callers holding one of roles through. Team scoping is checked by services.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		claims, ok := claimsValue.(*models.JWTClaims)
		if !exists || !ok || claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if _, ok := allowed[claims.Role]; ok {
			c.Next()
			return
		}

		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "role not permitted"))
		c.Abort()
	}
}
