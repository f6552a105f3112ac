package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/team-pulse-api/internal/service"
)

// unmatchedRoute labels requests that hit no registered route, so arbitrary
// URLs do not become metric series.
const unmatchedRoute = "unmatched"

// Metrics records method, route pattern and status for every request except
// those on skipPaths (typically the scrape endpoint itself).
func Metrics(metricsSvc *service.MetricsService, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, ok := skip[route]; ok {
			return
		}
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
