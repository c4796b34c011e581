package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Service contains business logic for detail storage and profile assembly.
type Service struct {
	Repo Repo
}

// SaveDetails validates and stores a detail document for the session.
func (s *Service) SaveDetails(ctx context.Context, sessionID, detailKey string, payload json.RawMessage) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}
	if detailKey != KeyMandatoryDetails && detailKey != KeyOptionalDetails {
		return fmt.Errorf("unknown detail key: %s", detailKey)
	}
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return fmt.Errorf("details must be a JSON object: %w", err)
	}
	return s.Repo.Save(ctx, sessionID, detailKey, payload)
}

// Profile loads both detail documents and assembles the canonical profile.
// A missing optional document is fine; a missing mandatory document surfaces
// as ErrIncomplete so callers route back to the collection flow.
func (s *Service) Profile(ctx context.Context, sessionID string) (UserProfile, error) {
	if sessionID == "" {
		return UserProfile{}, errors.New("sessionID is required")
	}
	mandatory, err := s.Repo.Get(ctx, sessionID, KeyMandatoryDetails)
	if errors.Is(err, ErrNotFound) {
		return UserProfile{}, fmt.Errorf("%w: no mandatory details stored", ErrIncomplete)
	}
	if err != nil {
		return UserProfile{}, err
	}
	optional, err := s.Repo.Get(ctx, sessionID, KeyOptionalDetails)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return UserProfile{}, err
	}
	return Assemble(mandatory, optional)
}
