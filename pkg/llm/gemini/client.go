// Package gemini adapts the Google GenAI SDK to the llm.Generator boundary.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/noah-isme/team-pulse-api/pkg/llm"
)

const (
	defaultModel = "gemini-2.0-flash"
	providerName = "gemini"
)

// Client generates manager reports through the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	observe llm.ObserveFunc
}

// Options configures the SDK client. BaseURL is only needed for proxies and tests.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewClient builds a Gemini client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini: api key is empty")
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: opts.Timeout},
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(opts.BaseURL, "/") + "/"}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: client, model: opts.Model}, nil
}

// WithObserver installs a callback run after every request.
func (c *Client) WithObserver(fn llm.ObserveFunc) *Client {
	c.observe = fn
	return c
}

// Generate implements llm.Generator.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), config)
	if c.observe != nil {
		c.observe(providerName, model, time.Since(start), err)
	}
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}
