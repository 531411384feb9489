// Package venice provides a client for the Venice AI image generation API.
package venice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	httputil "github.com/jmylchreest/veniceimg/internal/util/http"
)

// Client issues requests against the Venice AI API. One client is safe for
// concurrent use; it holds no per-request state.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	log     hclog.Logger
}

// New creates a Venice API client. The base URL is used without a trailing
// slash; logger may be nil for a silent client.
func New(baseURL, apiKey string, timeout time.Duration, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		log:     logger.Named("venice"),
	}
}

// Generate performs a single blocking image generation call. Non-2xx
// responses, transport failures, and malformed bodies are all reported as
// errors; the caller collapses them into one failure notification.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := c.baseURL + "/image/generate"

	c.log.Debug("generating image", "model", req.Model, "width", req.Width, "height", req.Height,
		"steps", req.Steps, "cfg_scale", req.CFGScale, "seed", req.Seed)

	body, err := httputil.PostJSON(ctx, url, req, httputil.RequestOptions{
		Timeout: c.timeout,
		Headers: c.authHeaders(),
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	var resp GenerateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	c.log.Debug("generation response", "images", len(resp.Images))

	return &resp, nil
}

// ListModels fetches the models available for image generation.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	url := c.baseURL + "/models?type=image"

	body, err := httputil.Fetch(ctx, url, httputil.RequestOptions{
		Timeout: c.timeout,
		Headers: c.authHeaders(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var resp ModelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode models response: %w", err)
	}

	return resp.Data, nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}
}
