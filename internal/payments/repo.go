package payments

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("payment not found")

// Repo defines persistence for payment attempts.
type Repo interface {
	Create(ctx context.Context, p Payment) error
	GetByProviderRef(ctx context.Context, provider, ref string) (Payment, error)
	// MarkStatus transitions the row for (provider, ref) to the given status.
	MarkStatus(ctx context.Context, provider, ref, status string) error
}
