package preference

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepo stores preference payloads in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	payloads map[string]json.RawMessage
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{payloads: make(map[string]json.RawMessage)}
}

// Save stores the payload for the session; last writer wins.
func (r *MemoryRepo) Save(ctx context.Context, sessionID string, payload json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make(json.RawMessage, len(payload))
	copy(stored, payload)
	r.payloads[sessionID] = stored
	return nil
}

// Get returns the stored payload or ErrNotFound.
func (r *MemoryRepo) Get(ctx context.Context, sessionID string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.payloads[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(json.RawMessage, len(payload))
	copy(out, payload)
	return out, nil
}
