package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rakumane/internal/domain"
	inventoryrepo "rakumane/internal/repository/inventory"
)

// Service owns the inventory item list and its derived state.
type Service struct {
	repo itemRepo
	now  func() time.Time
}

type itemRepo interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	Replace(ctx context.Context, item domain.Item) (*domain.Item, error)
	History(ctx context.Context, itemID string) ([]domain.ItemHistory, error)
	AppendHistory(ctx context.Context, entry domain.ItemHistory) error
}

func New(repo inventoryrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// StockStatus buckets an item by its stock level and low flag.
type StockStatus string

const (
	StockAll        StockStatus = "all"
	StockInStock    StockStatus = "inStock"
	StockLowStock   StockStatus = "lowStock"
	StockOutOfStock StockStatus = "outOfStock"
)

// Filter is the conjunction of active item filters. Zero or "all" fields are
// inactive.
type Filter struct {
	Search      string
	StockStatus StockStatus
	Location    string
	Category    string
}

func (f Filter) active() bool {
	return f.Search != "" ||
		(f.StockStatus != "" && f.StockStatus != StockAll) ||
		(f.Location != "" && f.Location != "all") ||
		(f.Category != "" && f.Category != "all")
}

// List returns the items matching the filter, preserving stored order.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(items, f), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.Get(ctx, id)
}

// AdjustStock moves an item's stock by delta, clamping at zero, and refreshes
// the low flag and update timestamp. The applied change is recorded in the
// item's stock history under the given reason; a fully clamped adjustment
// that moves nothing leaves no record. The state is unchanged when the id is
// unknown; the miss is reported as domain.ErrNotFound.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int, reason string) (*domain.Item, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := item.Stock
	item.Stock = max(0, item.Stock+delta)
	item.RecomputeLow()
	item.LastUpdated = s.now().UTC()
	updated, err := s.repo.Replace(ctx, *item)
	if err != nil {
		return nil, err
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		reason = "手動調整"
	}
	if err := s.recordChange(ctx, *updated, updated.Stock-before, reason); err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateItem replaces the stored item wholesale, keeping the derived fields
// consistent with the new values. A stock difference against the previous
// version is recorded in the item's history.
func (s *Service) UpdateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	previous, err := s.repo.Get(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	item.Stock = max(0, item.Stock)
	item.RecomputeLow()
	item.LastUpdated = s.now().UTC()
	updated, err := s.repo.Replace(ctx, item)
	if err != nil {
		return nil, err
	}
	if err := s.recordChange(ctx, *updated, updated.Stock-previous.Stock, "商品編集"); err != nil {
		return nil, err
	}
	return updated, nil
}

// History returns the item's recorded stock movements, newest first.
func (s *Service) History(ctx context.Context, id string) ([]domain.ItemHistory, error) {
	return s.repo.History(ctx, id)
}

func (s *Service) recordChange(ctx context.Context, item domain.Item, change int, reason string) error {
	if change == 0 {
		return nil
	}
	return s.repo.AppendHistory(ctx, domain.ItemHistory{
		ID:       uuid.NewString(),
		ItemID:   item.ID,
		Date:     item.LastUpdated,
		Change:   change,
		Reason:   reason,
		Location: item.Locations,
	})
}

// ApplyFilter returns the subsequence of items matching every active filter.
// It is pure and stable; an inactive filter returns the input unchanged.
func ApplyFilter(items []domain.Item, f Filter) []domain.Item {
	if !f.active() {
		return items
	}
	matched := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if matchesFilter(item, f) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesFilter(item domain.Item, f Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.SKU), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			return false
		}
	}
	switch f.StockStatus {
	case StockInStock:
		if item.Stock <= 0 || item.Low {
			return false
		}
	case StockLowStock:
		if !item.Low {
			return false
		}
	case StockOutOfStock:
		if item.Stock > 0 {
			return false
		}
	}
	if f.Location != "" && f.Location != "all" {
		if !strings.Contains(item.Locations, f.Location) {
			return false
		}
	}
	if f.Category != "" && f.Category != "all" {
		if item.Category != f.Category {
			return false
		}
	}
	return true
}
