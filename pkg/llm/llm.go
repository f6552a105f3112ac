// Package llm defines the text-generation boundary used for manager reports.
package llm

import (
	"context"
	"time"
)

// Request is one non-streaming generation call.
type Request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
	// JSON asks the backend to constrain output to a JSON object when it supports it.
	JSON bool
}

// Generator turns one prompt into one textual response.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ObserveFunc receives the outcome of each outbound call.
type ObserveFunc func(provider, model string, duration time.Duration, err error)
