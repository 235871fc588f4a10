package order

import (
	"context"
	"sync"

	"rakumane/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders []domain.ShippingOrder
}

// NewMemory builds an in-memory repository seeded with the given orders.
func NewMemory(seed []domain.ShippingOrder) Repository {
	orders := make([]domain.ShippingOrder, len(seed))
	copy(orders, seed)
	return &memoryRepo{orders: orders}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.ShippingOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders, nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (*domain.ShippingOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Replace(_ context.Context, order domain.ShippingOrder) (*domain.ShippingOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != order.ID {
			continue
		}
		next := make([]domain.ShippingOrder, len(r.orders))
		copy(next, r.orders)
		next[i] = order
		r.orders = next
		stored := order
		return &stored, nil
	}
	return nil, domain.ErrNotFound
}
