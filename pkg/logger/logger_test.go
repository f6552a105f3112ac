package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/team-pulse-api/pkg/middleware/requestid"
)

func TestGinMiddlewareLogsRouteAndUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(requestid.Middleware(), GinMiddleware(zap.New(core)))
	r.GET("/teams/:team/kpis", func(c *gin.Context) {
		c.Set(UserIDKey, "user-1")
		c.Status(http.StatusForbidden)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/3/kpis", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/teams/:team/kpis", fields["route"])
	assert.Equal(t, "user-1", fields["user_id"])
	assert.NotEmpty(t, fields["request_id"])
}
