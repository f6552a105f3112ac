package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

type rateLimitCounter interface {
	Enabled() bool
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimitConfig bounds requests per user and scope within a fixed window.
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// RateLimitService throttles generation-backed endpoints per user.
type RateLimitService struct {
	counter rateLimitCounter
	cfg     RateLimitConfig
	metrics *MetricsService
	logger  *zap.Logger
}

// NewRateLimitService constructs the limiter.
func NewRateLimitService(counter rateLimitCounter, cfg RateLimitConfig, metrics *MetricsService, logger *zap.Logger) *RateLimitService {
	if cfg.Requests <= 0 {
		cfg.Requests = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimitService{counter: counter, cfg: cfg, metrics: metrics, logger: logger}
}

// Enabled reports whether requests are being counted.
func (s *RateLimitService) Enabled() bool {
	return s != nil && s.cfg.Enabled && s.counter != nil && s.counter.Enabled()
}

// Allow counts one request. It fails open when the counter store errors.
func (s *RateLimitService) Allow(ctx context.Context, userID, scope string) error {
	if !s.Enabled() || userID == "" {
		return nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", scope, userID)
	count, remaining, err := s.counter.Increment(ctx, key, s.cfg.Window)
	if err != nil {
		s.logger.Warn("rate limit counter unavailable", zap.String("scope", scope), zap.Error(err))
		return nil
	}
	if count <= int64(s.cfg.Requests) {
		return nil
	}

	s.metrics.RecordRateLimited(scope)
	retryAfter := int(math.Ceil(remaining.Seconds()))
	if retryAfter < 1 {
		retryAfter = 1
	}
	return appErrors.WithDetail(appErrors.ErrRateLimited, "retryAfterSeconds", retryAfter)
}
