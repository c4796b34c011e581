package profile

import (
	"context"
	"encoding/json"
)

// Repo persists the raw detail documents keyed by session and detail key.
type Repo interface {
	Save(ctx context.Context, sessionID, detailKey string, payload json.RawMessage) error
	Get(ctx context.Context, sessionID, detailKey string) (json.RawMessage, error)
}
