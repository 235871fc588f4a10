package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rakumane/internal/domain"
	cartrepo "rakumane/internal/repository/cart"
)

// Service owns ephemeral sales-session carts and their pricing.
type Service struct {
	repo cartRepo
	now  func() time.Time
}

type cartRepo interface {
	Create(ctx context.Context, cart domain.Cart) (*domain.Cart, error)
	Get(ctx context.Context, id string) (*domain.Cart, error)
	ReplaceItems(ctx context.Context, id string, items []domain.CartItem) (*domain.Cart, error)
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// AddItemInput carries the item snapshot copied into the cart. Cart lines do
// not stay linked to the inventory item they came from.
type AddItemInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Price int64  `json:"price"`
	Image string `json:"image,omitempty"`
}

// Receipt is the result of a finalized (simulated) sale.
type Receipt struct {
	CartID        string            `json:"cartId"`
	Items         []domain.CartItem `json:"items"`
	Totals        domain.CartTotals `json:"totals"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	PaidAt        time.Time         `json:"paidAt"`
}

// Create opens a new empty session cart.
func (s *Service) Create(ctx context.Context) (*domain.Cart, error) {
	return s.repo.Create(ctx, domain.Cart{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Cart, error) {
	return s.repo.Get(ctx, id)
}

// AddItem adds one unit of the item to the cart. An existing line with the
// same id is incremented in place; a new line is appended with quantity 1.
func (s *Service) AddItem(ctx context.Context, cartID string, in AddItemInput) (*domain.Cart, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("%w: item id required", domain.ErrInvalid)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: item name required", domain.ErrInvalid)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalid)
	}
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.repo.ReplaceItems(ctx, cartID, addItem(cart.Items, in))
}

// UpdateQuantity moves a line's quantity by delta, clamping at zero. A line
// that reaches zero is removed from the cart.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, itemID string, delta int) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.repo.ReplaceItems(ctx, cartID, changeQuantity(cart.Items, itemID, delta))
}

// RemoveItem drops the line unconditionally.
func (s *Service) RemoveItem(ctx context.Context, cartID, itemID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	return s.repo.ReplaceItems(ctx, cartID, items)
}

// Totals prices the cart under the given discount.
func (s *Service) Totals(ctx context.Context, cartID string, discount domain.Discount) (*domain.CartTotals, error) {
	if err := validateDiscount(discount); err != nil {
		return nil, err
	}
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	totals := ComputeTotals(cart.Items, discount)
	return &totals, nil
}

// Checkout finalizes the sale: payment is simulated as always succeeding and
// the cart is reset to empty.
func (s *Service) Checkout(ctx context.Context, cartID string, discount domain.Discount, paymentMethod string) (*Receipt, error) {
	if err := validateDiscount(discount); err != nil {
		return nil, err
	}
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	receipt := &Receipt{
		CartID:        cart.ID,
		Items:         cart.Items,
		Totals:        ComputeTotals(cart.Items, discount),
		PaymentMethod: paymentMethod,
		PaidAt:        s.now().UTC(),
	}
	if _, err := s.repo.ReplaceItems(ctx, cartID, nil); err != nil {
		return nil, err
	}
	return receipt, nil
}

func validateDiscount(d domain.Discount) error {
	switch d.Type {
	case "", domain.DiscountNone, domain.DiscountFixed, domain.DiscountPercent:
	default:
		return fmt.Errorf("%w: unsupported discount type %q", domain.ErrInvalid, d.Type)
	}
	if d.Value < 0 {
		return fmt.Errorf("%w: discount value must not be negative", domain.ErrInvalid)
	}
	return nil
}

func addItem(items []domain.CartItem, in AddItemInput) []domain.CartItem {
	next := make([]domain.CartItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID == in.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, domain.CartItem{
		ID:       in.ID,
		Name:     in.Name,
		SKU:      in.SKU,
		Price:    in.Price,
		Quantity: 1,
		Image:    in.Image,
	})
}

func changeQuantity(items []domain.CartItem, itemID string, delta int) []domain.CartItem {
	next := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID == itemID {
			item.Quantity = max(0, item.Quantity+delta)
		}
		if item.Quantity > 0 {
			next = append(next, item)
		}
	}
	return next
}

// ComputeTotals derives subtotal, discount amount and total for the lines.
// The total never drops below zero regardless of discount size.
func ComputeTotals(items []domain.CartItem, discount domain.Discount) domain.CartTotals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * int64(item.Quantity)
	}
	var amount int64
	switch discount.Type {
	case domain.DiscountFixed:
		amount = discount.Value
	case domain.DiscountPercent:
		amount = subtotal * discount.Value / 100
	}
	return domain.CartTotals{
		Subtotal:       subtotal,
		DiscountAmount: amount,
		Total:          max(0, subtotal-amount),
	}
}
