package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Save upserts a detail document for the session.
func (r *PGRepo) Save(ctx context.Context, sessionID, detailKey string, payload json.RawMessage) error {
	const query = `
INSERT INTO session_details (session_id, detail_key, payload, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_id, detail_key)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query, sessionID, detailKey, []byte(payload), time.Now().UTC())
	return err
}

// Get returns a detail document or ErrNotFound.
func (r *PGRepo) Get(ctx context.Context, sessionID, detailKey string) (json.RawMessage, error) {
	const query = `SELECT payload FROM session_details WHERE session_id = $1 AND detail_key = $2`
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, sessionID, detailKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(payload), nil
}
