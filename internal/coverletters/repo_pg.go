package coverletters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, l CoverLetter) error {
	const query = `
INSERT INTO cover_letters (id, user_id, title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query, l.ID, l.UserID, l.Title, l.Content, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (CoverLetter, error) {
	const query = `
SELECT id, user_id, title, content, created_at, updated_at
FROM cover_letters
WHERE id = $1 AND user_id = $2`
	var l CoverLetter
	err := r.DB.QueryRowContext(ctx, query, id, userID).Scan(
		&l.ID, &l.UserID, &l.Title, &l.Content, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	return l, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	const query = `
SELECT id, user_id, title, content, created_at, updated_at
FROM cover_letters
WHERE user_id = $1
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CoverLetter{}
	for rows.Next() {
		var l CoverLetter
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Content, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, userID, id string, title, content *string) (CoverLetter, error) {
	const query = `
UPDATE cover_letters
SET title = COALESCE($1, title), content = COALESCE($2, content), updated_at = now()
WHERE id = $3 AND user_id = $4
RETURNING id, user_id, title, content, created_at, updated_at`
	var l CoverLetter
	err := r.DB.QueryRowContext(ctx, query, title, content, id, userID).Scan(
		&l.ID, &l.UserID, &l.Title, &l.Content, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	return l, nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM cover_letters WHERE id = $1 AND user_id = $2`
	_, err := r.DB.ExecContext(ctx, query, id, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
