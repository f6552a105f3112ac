package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/pkg/response"
)

// Limiter decides whether a user may make another request in scope.
type Limiter interface {
	Allow(ctx context.Context, userID, scope string) error
}

// RateLimit throttles authenticated callers per scope. Anonymous requests pass through.
func RateLimit(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		claimsValue, _ := c.Get(ContextUserKey)
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok || claims == nil {
			c.Next()
			return
		}
		if err := limiter.Allow(c.Request.Context(), claims.UserID, scope); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
