package resumes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/shared/metrics"
	"careerforge-backend/internal/shared/telemetry"
)

// Service contains business logic for resumes.
type Service struct {
	Repo Repo
	Gen  *generate.Adapter
}

// List returns the caller's resumes.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one resume owned by the caller.
func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// Create stores a new resume. The owner is always the authenticated caller;
// any owner field in the request never reaches this layer.
func (s *Service) Create(ctx context.Context, userID string, in contract.DocumentInput) (Resume, error) {
	now := time.Now().UTC()
	res := Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Update applies the supplied fields; the repo refreshes updatedAt.
func (s *Service) Update(ctx context.Context, userID, id string, in contract.DocumentUpdate) (Resume, error) {
	return s.Repo.Update(ctx, userID, id, in.Title, in.Content)
}

// Delete removes a resume after confirming it exists and is owned. The repo
// delete itself is idempotent; the existence check is what produces 404s.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Repo.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, userID, id)
}

// Generate writes a resume from the wizard form input.
func (s *Service) Generate(ctx context.Context, in contract.GenerateResumeInput) (contract.GeneratedDocument, error) {
	content, err := s.Gen.Resume(ctx, in)
	if err != nil {
		return contract.GeneratedDocument{}, err
	}
	return contract.GeneratedDocument{Content: content}, nil
}

// Optimize analyzes a resume against a job description. A malformed model
// response degrades to a canned analysis instead of failing the request.
func (s *Service) Optimize(ctx context.Context, in contract.OptimizeResumeInput) (contract.ResumeAnalysis, error) {
	analysis, err := s.Gen.Optimize(ctx, in)
	if err != nil {
		if errors.Is(err, llm.ErrMalformed) {
			telemetry.Error("resumes.optimize.degraded", map[string]any{"error": err.Error()})
			metrics.IncGenerationDegraded()
			return generate.DegradedAnalysis(), nil
		}
		return contract.ResumeAnalysis{}, err
	}
	return analysis, nil
}
