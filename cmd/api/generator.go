package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/team-pulse-api/pkg/config"
	"github.com/noah-isme/team-pulse-api/pkg/llm"
	"github.com/noah-isme/team-pulse-api/pkg/llm/gemini"
	"github.com/noah-isme/team-pulse-api/pkg/llm/openai"
)

// newGenerator selects the report backend named by LLM_PROVIDER.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logr *zap.Logger) (llm.Generator, error) {
	observe := func(provider, model string, d time.Duration, err error) {
		fields := []zap.Field{zap.String("provider", provider), zap.String("model", model), zap.Duration("latency", d)}
		if err != nil {
			logr.Warn("llm call failed", append(fields, zap.Error(err))...)
			return
		}
		logr.Debug("llm call", fields...)
	}

	switch cfg.Provider {
	case config.LLMProviderOpenAI, "":
		return openai.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout).WithObserver(observe), nil
	case config.LLMProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Options{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return client.WithObserver(observe), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}
}
