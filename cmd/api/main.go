package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/team-pulse-api/api/swagger"
	"github.com/noah-isme/team-pulse-api/internal/handler"
	"github.com/noah-isme/team-pulse-api/internal/repository"
	"github.com/noah-isme/team-pulse-api/internal/service"
	"github.com/noah-isme/team-pulse-api/internal/survey"
	"github.com/noah-isme/team-pulse-api/pkg/cache"
	"github.com/noah-isme/team-pulse-api/pkg/classifier"
	"github.com/noah-isme/team-pulse-api/pkg/config"
	"github.com/noah-isme/team-pulse-api/pkg/database"
	"github.com/noah-isme/team-pulse-api/pkg/logger"
)

// @title Team Pulse API
// @version 1.0.0
// @description Employee feedback collection, team KPIs and manager reports
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	generator, err := newGenerator(ctx, cfg.LLM, logr)
	if err != nil {
		logr.Fatal("failed to init text generator", zap.Error(err))
	}

	schema := survey.Default()
	metrics := service.NewMetricsService()
	validate := service.NewValidator(schema)

	feedbackRepo := repository.NewFeedbackRepository(db)
	userRepo := repository.NewUserRepository(db)
	rateRepo := repository.NewRateLimitRepository(redisClient, logr)
	defer rateRepo.Close() //nolint:errcheck
	classifierClient := classifier.NewClient(cfg.Classifier.BaseURL, cfg.Classifier.Timeout)

	authSvc := service.NewAuthService(logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	feedbackSvc := service.NewFeedbackService(feedbackRepo, validate, metrics, logr)
	sentimentSvc := service.NewSentimentService(classifierClient, metrics, logr)
	reportSvc := service.NewReportService(feedbackRepo, generator, sentimentSvc, schema, service.ReportConfig{
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		MaxTokens:      cfg.LLM.MaxTokens,
		RequestTimeout: cfg.Reports.RequestTimeout,
		Provider:       cfg.LLM.Provider,
	}, metrics, logr)
	aggregator := service.NewKPIAggregator(schema, survey.NewNormalizer(schema, cfg.KPI.NormalizerDefault), cfg.KPI.WeakSkillThreshold)
	kpiSvc := service.NewKPIService(feedbackRepo, aggregator, sentimentSvc, reportSvc, service.KPIConfig{RequestTimeout: cfg.Reports.RequestTimeout}, logr, nil, nil)
	profileSvc := service.NewProfileService(userRepo, validate, logr)
	limiter := service.NewRateLimitService(rateRepo, service.RateLimitConfig{
		Enabled:  cfg.RateLimit.Enabled,
		Requests: cfg.RateLimit.Requests,
		Window:   cfg.RateLimit.Window,
	}, metrics, logr)

	r := newRouter(cfg, logr, routerDeps{
		auth:      authSvc,
		metrics:   metrics,
		limiter:   limiter,
		feedback:  handler.NewFeedbackHandler(feedbackSvc),
		kpis:      handler.NewKPIHandler(kpiSvc),
		reports:   handler.NewReportHandler(reportSvc, sentimentSvc),
		profiles:  handler.NewProfileHandler(profileSvc, schema),
		readiness: handler.NewMetricsHandler(metrics, map[string]handler.Pinger{"database": feedbackRepo, "classifier": classifierClient}),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Reports.RequestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "llm_provider", cfg.LLM.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
