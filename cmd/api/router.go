package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/team-pulse-api/internal/handler"
	"github.com/noah-isme/team-pulse-api/internal/middleware"
	"github.com/noah-isme/team-pulse-api/internal/models"
	"github.com/noah-isme/team-pulse-api/internal/service"
	"github.com/noah-isme/team-pulse-api/pkg/config"
	"github.com/noah-isme/team-pulse-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/team-pulse-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/team-pulse-api/pkg/middleware/requestid"
)

type routerDeps struct {
	auth      middleware.TokenValidator
	metrics   *service.MetricsService
	limiter   middleware.Limiter
	feedback  *handler.FeedbackHandler
	kpis      *handler.KPIHandler
	reports   *handler.ReportHandler
	profiles  *handler.ProfileHandler
	readiness *handler.MetricsHandler
}

func newRouter(cfg *config.Config, logr *zap.Logger, d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(d.metrics, "/metrics"))

	r.GET("/health", d.readiness.Health)
	r.GET("/ready", d.readiness.Ready)
	r.GET("/metrics", d.readiness.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/survey", d.profiles.Survey)

	authed := api.Group("")
	authed.Use(middleware.JWT(d.auth))
	authed.GET("/me", d.profiles.Me)
	authed.PUT("/me", d.profiles.UpdateMe)
	authed.POST("/feedback", d.feedback.Submit)

	readers := authed.Group("")
	readers.Use(middleware.RequireRoles(models.RoleManager, models.RoleAdmin))
	readers.POST("/feedback/list", d.feedback.List)
	readers.GET("/teams/:team/feedback", d.feedback.ListByTeam)
	readers.GET("/teams/:team/kpis/export", d.kpis.Export)
	readers.POST("/kpis", middleware.RateLimit(d.limiter, "kpis"), d.kpis.Compute)
	readers.POST("/reports/summary", middleware.RateLimit(d.limiter, "reports"), d.reports.Summary)
	readers.POST("/sentiment", middleware.RateLimit(d.limiter, "sentiment"), d.reports.Sentiment)

	return r
}
