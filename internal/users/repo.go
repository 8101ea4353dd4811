package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repo defines persistence for users.
type Repo interface {
	// Ensure creates the row on first sight of an identity and returns it.
	Ensure(ctx context.Context, id, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// SetPremium flips the premium flag, creating the row if needed.
	SetPremium(ctx context.Context, id string, premium bool) error
}
