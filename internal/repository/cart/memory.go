package cart

import (
	"context"
	"sync"

	"rakumane/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

// NewMemory builds an empty in-memory cart repository.
func NewMemory() Repository {
	return &memoryRepo{carts: make(map[string]domain.Cart)}
}

func (r *memoryRepo) Create(_ context.Context, cart domain.Cart) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = cart
	stored := cart
	return &stored, nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	found := cart
	return &found, nil
}

func (r *memoryRepo) ReplaceItems(_ context.Context, id string, items []domain.CartItem) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	// The item slice is installed as-is; callers build a fresh slice per
	// mutation so earlier snapshots stay intact.
	cart.Items = items
	r.carts[id] = cart
	stored := cart
	return &stored, nil
}
