// Package investease implements the advisor engine client over HTTP.
package investease

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"investease-gateway/internal/advisor"
)

const maxResponseBytes = 4 << 20

// Client calls the advisor engine's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient constructs an advisor engine client. requestsPerSecond caps the
// outbound call rate; zero or negative disables the limiter.
func NewClient(baseURL string, timeout time.Duration, requestsPerSecond float64) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("advisor base URL is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		burst := int(requestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
	}, nil
}

// Recommend sends the recommendation request payload and returns the raw
// advisor response body.
func (c *Client) Recommend(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/recommend", payload)
}

// CategoryReport fetches the advisor's report for one investment category.
func (c *Client) CategoryReport(ctx context.Context, category string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/report/"+url.PathEscape(category), nil)
}

// ComparePlans fetches the advisor's top-plan comparison for a risk level.
func (c *Client) ComparePlans(ctx context.Context, riskPreference string) (json.RawMessage, error) {
	query := url.Values{"risk_preference": []string{riskPreference}}
	return c.do(ctx, http.MethodGet, "/api/compare?"+query.Encode(), nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload json.RawMessage) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("advisor request timeout: %w", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	// Failures surface as a generic status error; the body is never
	// inspected on a non-2xx response.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("advisor request failed: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON from advisor engine")
	}
	return json.RawMessage(raw), nil
}

var _ advisor.Client = (*Client)(nil)
