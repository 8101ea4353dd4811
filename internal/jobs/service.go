package jobs

import (
	"context"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/generate"
)

// Service fetches a posting page and extracts structured job data from it.
type Service struct {
	Fetch Fetcher
	Gen   *generate.Adapter
}

func NewService(fetch Fetcher, gen *generate.Adapter) *Service {
	return &Service{Fetch: fetch, Gen: gen}
}

// Extract pulls the posting page and asks the model for structured fields.
// Unlike the rewrite endpoints there is no degraded fallback here: a posting
// we could not read is an upstream failure the caller must see.
func (s *Service) Extract(ctx context.Context, in contract.JobFetchInput) (contract.JobPosting, error) {
	text, err := s.Fetch.PageText(ctx, in.URL)
	if err != nil {
		return contract.JobPosting{}, err
	}
	return s.Gen.ExtractJob(ctx, text)
}
