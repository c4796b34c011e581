// Package advisor abstracts the upstream recommendation engine.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
)

// Client calls the advisor engine for recommendations, category reports,
// and top-plan comparisons.
type Client interface {
	Recommend(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	CategoryReport(ctx context.Context, category string) (json.RawMessage, error)
	ComparePlans(ctx context.Context, riskPreference string) (json.RawMessage, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("advisor engine not configured")

// PlaceholderClient is a stub implementation until an engine URL is wired.
type PlaceholderClient struct{}

// Recommend returns ErrNotConfigured.
func (PlaceholderClient) Recommend(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	_ = ctx
	_ = payload
	return nil, ErrNotConfigured
}

// CategoryReport returns ErrNotConfigured.
func (PlaceholderClient) CategoryReport(ctx context.Context, category string) (json.RawMessage, error) {
	_ = ctx
	_ = category
	return nil, ErrNotConfigured
}

// ComparePlans returns ErrNotConfigured.
func (PlaceholderClient) ComparePlans(ctx context.Context, riskPreference string) (json.RawMessage, error) {
	_ = ctx
	_ = riskPreference
	return nil, ErrNotConfigured
}
