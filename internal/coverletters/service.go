package coverletters

import (
	"context"
	"time"

	"github.com/google/uuid"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
)

// Service contains business logic for cover letters.
type Service struct {
	Repo Repo
	Gen  *generate.Adapter
}

func (s *Service) List(ctx context.Context, userID string) ([]CoverLetter, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (CoverLetter, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// Create stores a new cover letter owned by the authenticated caller.
func (s *Service) Create(ctx context.Context, userID string, in contract.DocumentInput) (CoverLetter, error) {
	now := time.Now().UTC()
	l := CoverLetter{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return CoverLetter{}, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in contract.DocumentUpdate) (CoverLetter, error) {
	return s.Repo.Update(ctx, userID, id, in.Title, in.Content)
}

// Delete 404s via the existence check; the repo delete itself is idempotent.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Repo.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, userID, id)
}

// Generate writes a cover letter from the wizard form input.
func (s *Service) Generate(ctx context.Context, in contract.GenerateCoverLetterInput) (contract.GeneratedDocument, error) {
	content, err := s.Gen.CoverLetter(ctx, in)
	if err != nil {
		return contract.GeneratedDocument{}, err
	}
	return contract.GeneratedDocument{Content: content}, nil
}
