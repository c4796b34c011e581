package preference

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

// Save upserts the preference payload for the session.
func (r *PGRepo) Save(ctx context.Context, sessionID string, payload json.RawMessage) error {
	const query = `
INSERT INTO report_preferences (session_id, payload, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (session_id)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query, sessionID, []byte(payload), time.Now().UTC())
	return err
}

// Get returns the stored preference payload or ErrNotFound.
func (r *PGRepo) Get(ctx context.Context, sessionID string) (json.RawMessage, error) {
	const query = `SELECT payload FROM report_preferences WHERE session_id = $1`
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(payload), nil
}
