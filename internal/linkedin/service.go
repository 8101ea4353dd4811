package linkedin

import (
	"context"
	"errors"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/shared/metrics"
	"careerforge-backend/internal/shared/telemetry"
)

// Service rewrites LinkedIn profile sections.
type Service struct {
	Gen *generate.Adapter
}

func NewService(gen *generate.Adapter) *Service {
	return &Service{Gen: gen}
}

func (s *Service) Optimize(ctx context.Context, in contract.LinkedInOptimizeInput) (contract.LinkedInProfile, error) {
	out, err := s.Gen.LinkedIn(ctx, in)
	if err != nil {
		if errors.Is(err, llm.ErrMalformed) {
			telemetry.Error("linkedin.optimize.degraded", map[string]any{"error": err.Error()})
			metrics.IncGenerationDegraded()
			return generate.DegradedLinkedIn(in), nil
		}
		return contract.LinkedInProfile{}, err
	}
	return out, nil
}
