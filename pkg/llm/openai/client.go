// Package openai is a minimal Chat Completions client for OpenAI-compatible endpoints.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noah-isme/team-pulse-api/pkg/llm"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	providerName   = "openai"
)

// ErrMissingAPIKey is returned before any request is sent without credentials.
var ErrMissingAPIKey = errors.New("openai: api key is empty")

// StatusError reports a non-success response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openai: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("openai: unexpected status %d", e.StatusCode)
}

// Client performs Chat Completions requests.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
	observe llm.ObserveFunc
}

// NewClient creates a client. Empty baseURL and model fall back to the public API defaults.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

// WithObserver installs a callback run after every request.
func (c *Client) WithObserver(fn llm.ObserveFunc) *Client {
	c.observe = fn
	return c
}

// ChatCompletionRequest is the request body.
type ChatCompletionRequest struct {
	Model          string                        `json:"model"`
	Messages       []ChatMessage                 `json:"messages"`
	Temperature    float64                       `json:"temperature"`
	MaxTokens      int                           `json:"max_tokens,omitempty"`
	ResponseFormat *ChatCompletionResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage is one message of the conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatCompletionResponseFormat constrains the response.
type ChatCompletionResponseFormat struct {
	Type string `json:"type"`
}

// ResponseFormatTypeJSONObject asks for a single JSON object.
const ResponseFormatTypeJSONObject = "json_object"

// ChatCompletionResponse is the decoded response body.
type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
}

// ChatCompletionChoice holds one model message.
type ChatCompletionChoice struct {
	Message ChatMessage `json:"message"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate implements llm.Generator.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	body := ChatCompletionRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, ChatMessage{Role: RoleSystem, Content: req.System})
	}
	body.Messages = append(body.Messages, ChatMessage{Role: RoleUser, Content: req.Prompt})
	if req.JSON {
		body.ResponseFormat = &ChatCompletionResponseFormat{Type: ResponseFormatTypeJSONObject}
	}

	start := time.Now()
	completion, err := c.CreateChatCompletion(ctx, body)
	if c.observe != nil {
		c.observe(providerName, model, time.Since(start), err)
	}
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai: response has no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// CreateChatCompletion calls /chat/completions.
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error) {
	if c.apiKey == "" {
		return ChatCompletionResponse{}, ErrMissingAPIKey
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return ChatCompletionResponse{}, fmt.Errorf("openai: marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return ChatCompletionResponse{}, fmt.Errorf("openai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return ChatCompletionResponse{}, fmt.Errorf("openai: do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return ChatCompletionResponse{}, fmt.Errorf("openai: read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var apiErr apiErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil {
			statusErr.Message = apiErr.Error.Message
		}
		return ChatCompletionResponse{}, statusErr
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return ChatCompletionResponse{}, fmt.Errorf("openai: decode response: %w", err)
	}
	return completion, nil
}
