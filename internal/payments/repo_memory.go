package payments

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	payments map[string]Payment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{payments: map[string]Payment{}}
}

func key(provider, ref string) string { return provider + ":" + ref }

func (r *MemoryRepo) Create(_ context.Context, p Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[key(p.Provider, p.ProviderRef)] = p
	return nil
}

func (r *MemoryRepo) GetByProviderRef(_ context.Context, provider, ref string) (Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[key(provider, ref)]
	if !ok {
		return Payment{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepo) MarkStatus(_ context.Context, provider, ref, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[key(provider, ref)]
	if !ok {
		return nil
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	r.payments[key(provider, ref)] = p
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
