package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query, res.ID, res.UserID, res.Title, res.Content, res.CreatedAt, res.UpdatedAt)
	return err
}

// GetByID fetches a resume scoped by owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Resume, error) {
	const query = `
SELECT id, user_id, title, content, created_at, updated_at
FROM resumes
WHERE id = $1 AND user_id = $2`
	var res Resume
	err := r.DB.QueryRowContext(ctx, query, id, userID).Scan(
		&res.ID, &res.UserID, &res.Title, &res.Content, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// ListByUser lists the user's resumes, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, title, content, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var res Resume
		if err := rows.Scan(&res.ID, &res.UserID, &res.Title, &res.Content, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Update applies the non-nil fields and refreshes updated_at server-side.
func (r *PGRepo) Update(ctx context.Context, userID, id string, title, content *string) (Resume, error) {
	const query = `
UPDATE resumes
SET title = COALESCE($1, title), content = COALESCE($2, content), updated_at = now()
WHERE id = $3 AND user_id = $4
RETURNING id, user_id, title, content, created_at, updated_at`
	var res Resume
	err := r.DB.QueryRowContext(ctx, query, title, content, id, userID).Scan(
		&res.ID, &res.UserID, &res.Title, &res.Content, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// Delete removes the row if present and owned. Deleting an absent row is a no-op.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	_, err := r.DB.ExecContext(ctx, query, id, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
