package users

import (
	"context"

	"careerforge-backend/internal/contract"
)

// Service contains business logic for user profiles.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Profile returns the caller's profile, creating the row on first sight.
func (s *Service) Profile(ctx context.Context, id, email string) (contract.UserProfile, error) {
	u, err := s.Repo.Ensure(ctx, id, email)
	if err != nil {
		return contract.UserProfile{}, err
	}
	return profilePayload(u), nil
}

// Premium returns just the premium flag for the caller.
func (s *Service) Premium(ctx context.Context, id string) (bool, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return u.Premium, nil
}

func profilePayload(u User) contract.UserProfile {
	return contract.UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Premium:      u.Premium,
		PremiumSince: u.PremiumSince,
	}
}
