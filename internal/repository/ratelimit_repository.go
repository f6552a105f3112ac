package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitRepository keeps fixed-window request counters in Redis.
type RateLimitRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRateLimitRepository constructs the repository. A nil client disables counting.
func NewRateLimitRepository(client *redis.Client, logger *zap.Logger) *RateLimitRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimitRepository{client: client, logger: logger}
}

// Enabled reports whether counters are backed by Redis.
func (r *RateLimitRepository) Enabled() bool {
	return r != nil && r.client != nil
}

// Increment bumps the counter for key and returns the new count and the time left in the window.
func (r *RateLimitRepository) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if !r.Enabled() {
		return 0, 0, nil
	}

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("redis incr %s: %w", key, err)
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}
	return incr.Val(), remaining, nil
}

// Close releases the underlying Redis connection if present.
func (r *RateLimitRepository) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
