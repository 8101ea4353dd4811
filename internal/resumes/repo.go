package resumes

import (
	"context"
	"errors"
)

// ErrNotFound covers both "absent" and "owned by someone else" — callers must
// not be able to tell the difference.
var ErrNotFound = errors.New("resume not found")

// Repo defines persistence for resumes. Every read/update/delete is scoped by
// (id, userId); Delete is an idempotent no-op when the row is absent.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, userID, id string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, userID, id string, title, content *string) (Resume, error)
	Delete(ctx context.Context, userID, id string) error
}
