package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Ensure upserts the user row and returns the current state.
func (r *PGRepo) Ensure(ctx context.Context, id, email string) (User, error) {
	const query = `
INSERT INTO users (id, email)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, updated_at = now()
RETURNING id, email, premium, premium_since, created_at, updated_at`
	return r.scanRow(r.DB.QueryRowContext(ctx, query, id, email))
}

// GetByID returns the user row.
func (r *PGRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
SELECT id, email, premium, premium_since, created_at, updated_at
FROM users
WHERE id = $1`
	u, err := r.scanRow(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

// SetPremium flips the flag, creating the row if the user was never seen.
func (r *PGRepo) SetPremium(ctx context.Context, id string, premium bool) error {
	const query = `
INSERT INTO users (id, premium, premium_since)
VALUES ($1, $2, CASE WHEN $2 THEN now() END)
ON CONFLICT (id) DO UPDATE SET
    premium = EXCLUDED.premium,
    premium_since = CASE WHEN EXCLUDED.premium THEN COALESCE(users.premium_since, now()) END,
    updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query, id, premium)
	return err
}

func (r *PGRepo) scanRow(row *sql.Row) (User, error) {
	var u User
	var since sql.NullTime
	if err := row.Scan(&u.ID, &u.Email, &u.Premium, &since, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return User{}, err
	}
	if since.Valid {
		t := since.Time
		u.PremiumSince = &t
	}
	return u, nil
}

var _ Repo = (*PGRepo)(nil)
