package payments

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new payment attempt.
func (r *PGRepo) Create(ctx context.Context, p Payment) error {
	const query = `
INSERT INTO payments (id, user_id, provider, provider_ref, amount_cents, currency, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.UserID, p.Provider, p.ProviderRef, p.AmountCents, p.Currency, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByProviderRef fetches the attempt for a provider-side identifier.
func (r *PGRepo) GetByProviderRef(ctx context.Context, provider, ref string) (Payment, error) {
	const query = `
SELECT id, user_id, provider, provider_ref, amount_cents, currency, status, created_at, updated_at
FROM payments
WHERE provider = $1 AND provider_ref = $2`
	var p Payment
	err := r.DB.QueryRowContext(ctx, query, provider, ref).Scan(
		&p.ID, &p.UserID, &p.Provider, &p.ProviderRef, &p.AmountCents, &p.Currency, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payment{}, ErrNotFound
		}
		return Payment{}, err
	}
	return p, nil
}

// MarkStatus transitions the attempt and refreshes updated_at server-side.
func (r *PGRepo) MarkStatus(ctx context.Context, provider, ref, status string) error {
	const query = `
UPDATE payments
SET status = $1, updated_at = now()
WHERE provider = $2 AND provider_ref = $3`
	_, err := r.DB.ExecContext(ctx, query, status, provider, ref)
	return err
}

var _ Repo = (*PGRepo)(nil)
