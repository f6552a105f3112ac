package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/service"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
	"github.com/noah-isme/team-pulse-api/pkg/logger"
)

type validatorStub struct {
	claims *models.JWTClaims
	err    error
}

func (v validatorStub) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != "good" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return v.claims, v.err
}

type limiterStub struct {
	err   error
	calls int
}

func (l *limiterStub) Allow(ctx context.Context, userID, scope string) error {
	l.calls++
	return l.err
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.UserIDKey))
	})
	r.GET("/x", handlers...)
	return r
}

func serve(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWT(t *testing.T) {
	v := validatorStub{claims: &models.JWTClaims{UserID: "u1", Role: models.RoleManager}}
	r := newRouter(JWT(v))

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Token good").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer bad").Code)

	w := serve(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestOptionalJWT(t *testing.T) {
	r := newRouter(OptionalJWT(validatorStub{claims: &models.JWTClaims{UserID: "u1"}}))

	assert.Equal(t, http.StatusOK, serve(r, "").Code)
	assert.Equal(t, "", serve(r, "Bearer bad").Body.String())
	assert.Equal(t, "u1", serve(r, "Bearer good").Body.String())
}

func TestRequireRoles(t *testing.T) {
	manager := validatorStub{claims: &models.JWTClaims{UserID: "u1", Role: models.RoleManager}}
	employee := validatorStub{claims: &models.JWTClaims{UserID: "u2", Role: models.RoleEmployee}}

	allowed := newRouter(JWT(manager), RequireRoles(models.RoleManager, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, serve(allowed, "Bearer good").Code)

	denied := newRouter(JWT(employee), RequireRoles(models.RoleManager, models.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, serve(denied, "Bearer good").Code)

	anonymous := newRouter(RequireRoles(models.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, serve(anonymous, "").Code)
}

func TestRateLimit(t *testing.T) {
	v := validatorStub{claims: &models.JWTClaims{UserID: "u1", Role: models.RoleAdmin}}

	open := &limiterStub{}
	assert.Equal(t, http.StatusOK, serve(newRouter(JWT(v), RateLimit(open, "reports")), "Bearer good").Code)
	assert.Equal(t, 1, open.calls)

	closed := &limiterStub{err: appErrors.WithDetail(appErrors.ErrRateLimited, "retryAfterSeconds", 30)}
	w := serve(newRouter(JWT(v), RateLimit(closed, "reports")), "Bearer good")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))

	anonymous := &limiterStub{err: errors.New("unused")}
	assert.Equal(t, http.StatusOK, serve(newRouter(RateLimit(anonymous, "reports")), "").Code)
	assert.Equal(t, 0, anonymous.calls)
}

func TestMetricsObservesRoutePattern(t *testing.T) {
	metrics := service.NewMetricsService()
	r := newRouter(Metrics(metrics))

	serve(r, "")
	serve(r, "")

	count, err := testutil.GatherAndCount(metrics.Registry(), "http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetricsLabelsUnmatchedAndSkipsScrape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics, "/metrics"))
	r.GET("/teams/:team/feedback", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/teams/4/feedback", "/teams/5/feedback", "/nope/1", "/nope/2", "/metrics"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := metrics.Registry().Gather()
	assert.NoError(t, err)
	routes := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "path" {
					routes[l.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{"/teams/:team/feedback": 2, unmatchedRoute: 2}, routes)
}
