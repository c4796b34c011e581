package profile

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepo stores detail documents in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[string]json.RawMessage)}
}

// Save stores a detail document, replacing any previous value.
func (r *MemoryRepo) Save(ctx context.Context, sessionID, detailKey string, payload json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make(json.RawMessage, len(payload))
	copy(stored, payload)
	r.docs[sessionID+"|"+detailKey] = stored
	return nil
}

// Get returns a detail document or ErrNotFound.
func (r *MemoryRepo) Get(ctx context.Context, sessionID, detailKey string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.docs[sessionID+"|"+detailKey]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(json.RawMessage, len(payload))
	copy(out, payload)
	return out, nil
}
