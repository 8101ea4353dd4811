package coverletters

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("cover letter not found")

// Repo defines persistence for cover letters, scoped by (id, userId).
type Repo interface {
	Create(ctx context.Context, l CoverLetter) error
	GetByID(ctx context.Context, userID, id string) (CoverLetter, error)
	ListByUser(ctx context.Context, userID string) ([]CoverLetter, error)
	Update(ctx context.Context, userID, id string, title, content *string) (CoverLetter, error)
	Delete(ctx context.Context, userID, id string) error
}
