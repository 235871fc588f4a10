package inventory

import (
	"context"

	"rakumane/internal/domain"
)

// Repository stores the inventory item list. List results are immutable
// snapshots: a mutation installs a freshly built list, so slices handed out
// earlier never change underneath the caller.
type Repository interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	Replace(ctx context.Context, item domain.Item) (*domain.Item, error)
	History(ctx context.Context, itemID string) ([]domain.ItemHistory, error)
	AppendHistory(ctx context.Context, entry domain.ItemHistory) error
}
