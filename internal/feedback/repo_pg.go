package feedback

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a feedback entry.
func (r *PGRepo) Create(ctx context.Context, entry Entry) error {
	const query = `
INSERT INTO feedback (id, name, email, category, rating, message, contact_consent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID,
		nullableString(entry.Name),
		nullableString(entry.Email),
		entry.Category,
		entry.Rating,
		entry.Message,
		entry.ContactConsent,
		entry.CreatedAt,
	)
	return err
}

// List returns a newest-first window of entries and the total count.
func (r *PGRepo) List(ctx context.Context, offset, limit int) ([]Entry, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
SELECT id, name, email, category, rating, message, contact_consent, created_at
FROM feedback
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var entry Entry
		var name, email sql.NullString
		if err := rows.Scan(&entry.ID, &name, &email, &entry.Category, &entry.Rating, &entry.Message, &entry.ContactConsent, &entry.CreatedAt); err != nil {
			return nil, 0, err
		}
		entry.Name = name.String
		entry.Email = email.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
