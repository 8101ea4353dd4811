package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: map[string]User{}}
}

func (r *MemoryRepo) Ensure(_ context.Context, id, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		if email != "" && u.Email != email {
			u.Email = email
			u.UpdatedAt = time.Now().UTC()
			r.users[id] = u
		}
		return u, nil
	}
	now := time.Now().UTC()
	u := User{ID: id, Email: email, CreatedAt: now, UpdatedAt: now}
	r.users[id] = u
	return u, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemoryRepo) SetPremium(_ context.Context, id string, premium bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	u, ok := r.users[id]
	if !ok {
		u = User{ID: id, CreatedAt: now}
	}
	u.Premium = premium
	if premium && u.PremiumSince == nil {
		t := now
		u.PremiumSince = &t
	}
	if !premium {
		u.PremiumSince = nil
	}
	u.UpdatedAt = now
	r.users[id] = u
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
