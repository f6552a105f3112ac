// Package classifier talks to the sentiment classification service.
package classifier

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

	"github.com/tidwall/gjson"
)

const (
	sentimentPath = "/api/getFeedbackSentiment"
	healthPath    = "/api/healthchecker"
)

// Counts is the tally for one open-ended field.
type Counts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// StatusError reports a non-success response from the service.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("classifier: unexpected status %d", e.StatusCode)
}

// Client calls the classifier over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a classifier client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type sentimentRequest struct {
	TeamNumber int      `json:"teamNumber"`
	Fields     []string `json:"fields,omitempty"`
}

// Classify returns per-field counts for the team's answers to fields. A service that replies
// with a single flat tally is attributed to the first requested field. Fields the service did
// not report are absent from the result.
func (c *Client) Classify(ctx context.Context, teamNumber int, fields []string) (map[string]Counts, error) {
	if len(fields) == 0 {
		return nil, errors.New("classifier: no fields requested")
	}
	payload, err := json.Marshal(sentimentRequest{TeamNumber: teamNumber, Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("classifier: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sentimentPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("classifier: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("classifier: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("classifier: response is not valid JSON")
	}

	return decodeCounts(body, fields)
}

func decodeCounts(body []byte, fields []string) (map[string]Counts, error) {
	out := make(map[string]Counts, len(fields))
	doc := gjson.ParseBytes(body)

	if doc.Get("positive").Exists() {
		out[fields[0]] = countsOf(doc)
		return out, nil
	}

	for _, f := range fields {
		node := doc.Get(gjson.Escape(f))
		if !node.Exists() {
			continue
		}
		if !node.IsObject() {
			return nil, fmt.Errorf("classifier: field %s is not an object", f)
		}
		out[f] = countsOf(node)
	}
	return out, nil
}

func countsOf(node gjson.Result) Counts {
	return Counts{
		Positive: int(node.Get("positive").Int()),
		Negative: int(node.Get("negative").Int()),
		Neutral:  int(node.Get("neutral").Int()),
	}
}

// Ping calls the service health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("classifier: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("classifier: do request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
