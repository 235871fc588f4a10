package cart

import (
	"context"

	"rakumane/internal/domain"
)

// Repository stores session carts keyed by cart id. Carts live only as long
// as the process; there is no persistence behind this interface.
type Repository interface {
	Create(ctx context.Context, cart domain.Cart) (*domain.Cart, error)
	Get(ctx context.Context, id string) (*domain.Cart, error)
	ReplaceItems(ctx context.Context, id string, items []domain.CartItem) (*domain.Cart, error)
}
