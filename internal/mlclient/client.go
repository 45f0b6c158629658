// Package mlclient is the HTTP client for the sentiment model sidecar.
// The sidecar serves an already-trained binary classifier; this client
// implements the classifier.Model capability over it.
package mlclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/feedbacklens/classifier/internal/classifier"
	"github.com/feedbacklens/classifier/internal/mltransport"
)

// ErrUnavailable indicates the sentiment model service is unreachable.
var ErrUnavailable = errors.New("sentiment model service unavailable")

// Client is an HTTP client for the sentiment model sidecar.
type Client struct {
	baseURL string
}

// ClassifyResponse is the response body from POST /classify.
type ClassifyResponse struct {
	Label            string  `json:"label"` // "POSITIVE" or "NEGATIVE"
	Score            float64 `json:"score"` // model confidence, 0-1
	ModelVersion     string  `json:"model_version"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

// NewClient creates a new model client.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// Infer sends a classification request to the model service and
// normalizes the response to a ModelVerdict.
func (c *Client) Infer(ctx context.Context, text string) (*classifier.ModelVerdict, error) {
	req := &mltransport.ClassifyRequest{Text: text}
	var result ClassifyResponse
	if err := mltransport.DoClassify(ctx, c.baseURL, req, &result); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return &classifier.ModelVerdict{
		Label:        result.Label,
		Score:        result.Score,
		ModelVersion: result.ModelVersion,
	}, nil
}

// Health checks if the model service is healthy.
func (c *Client) Health(ctx context.Context) error {
	reachable, _, _, err := mltransport.DoHealth(ctx, c.baseURL)
	if err != nil {
		if !reachable {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	return nil
}

// BaseURL returns the configured sidecar base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
