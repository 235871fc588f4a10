package order

import (
	"context"

	"rakumane/internal/domain"
)

// Repository stores the shipping order list. Like the inventory repository,
// mutations install a fresh list so earlier List results are stable snapshots.
type Repository interface {
	List(ctx context.Context) ([]domain.ShippingOrder, error)
	Get(ctx context.Context, id string) (*domain.ShippingOrder, error)
	Replace(ctx context.Context, order domain.ShippingOrder) (*domain.ShippingOrder, error)
}
