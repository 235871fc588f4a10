package inventory

import (
	"context"
	"sync"

	"rakumane/internal/domain"
)

type memoryRepo struct {
	mu        sync.RWMutex
	items     []domain.Item
	histories map[string][]domain.ItemHistory
}

// NewMemory builds an in-memory repository seeded with the given items.
// The seed slice is copied, not retained.
func NewMemory(seed []domain.Item) Repository {
	items := make([]domain.Item, len(seed))
	copy(items, seed)
	return &memoryRepo{items: items, histories: make(map[string][]domain.ItemHistory)}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items, nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// History returns the item's recorded stock movements, newest first.
func (r *memoryRepo) History(_ context.Context, itemID string) ([]domain.ItemHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.contains(itemID) {
		return nil, domain.ErrNotFound
	}
	entries := r.histories[itemID]
	out := make([]domain.ItemHistory, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

func (r *memoryRepo) AppendHistory(_ context.Context, entry domain.ItemHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.contains(entry.ItemID) {
		return domain.ErrNotFound
	}
	r.histories[entry.ItemID] = append(r.histories[entry.ItemID], entry)
	return nil
}

func (r *memoryRepo) contains(itemID string) bool {
	for _, item := range r.items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

func (r *memoryRepo) Replace(_ context.Context, item domain.Item) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != item.ID {
			continue
		}
		// Copy-on-write: previously returned snapshots must stay intact.
		next := make([]domain.Item, len(r.items))
		copy(next, r.items)
		next[i] = item
		r.items = next
		stored := item
		return &stored, nil
	}
	return nil, domain.ErrNotFound
}
