package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"rakumane/internal/domain"
	cartrepo "rakumane/internal/repository/cart"
)

func newTestService() *Service {
	svc := New(cartrepo.NewMemory())
	svc.now = func() time.Time { return time.Date(2024, 5, 18, 12, 0, 0, 0, time.UTC) }
	return svc
}

func itemA() AddItemInput {
	return AddItemInput{ID: "i1", Name: "作品A", SKU: "A-001", Price: 1200}
}

func itemB() AddItemInput {
	return AddItemInput{ID: "i2", Name: "作品B", SKU: "B-104", Price: 800}
}

func mustCreate(t *testing.T, svc *Service) string {
	t.Helper()
	cart, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}
	if cart.ID == "" {
		t.Fatalf("expected generated cart id")
	}
	return cart.ID
}

func TestAddItemIncrementsExistingLineInPlace(t *testing.T) {
	svc := newTestService()
	id := mustCreate(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, id, itemA()); err != nil {
		t.Fatalf("add A: %v", err)
	}
	if _, err := svc.AddItem(ctx, id, itemB()); err != nil {
		t.Fatalf("add B: %v", err)
	}
	cart, err := svc.AddItem(ctx, id, itemA())
	if err != nil {
		t.Fatalf("re-add A: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	// Re-incremented lines keep their original position.
	if cart.Items[0].ID != "i1" || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected i1 first with quantity 2, got %+v", cart.Items[0])
	}
	if cart.Items[1].ID != "i2" || cart.Items[1].Quantity != 1 {
		t.Fatalf("expected i2 second with quantity 1, got %+v", cart.Items[1])
	}
}

func TestAddItemValidation(t *testing.T) {
	svc := newTestService()
	id := mustCreate(t, svc)

	if _, err := svc.AddItem(context.Background(), id, AddItemInput{Name: "x"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if _, err := svc.AddItem(context.Background(), id, AddItemInput{ID: "x", Name: "y", Price: -1}); err == nil {
		t.Fatalf("expected error for negative price")
	}
}

func TestUpdateQuantityRemovesLineAtZero(t *testing.T) {
	svc := newTestService()
	id := mustCreate(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, id, itemA()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.UpdateQuantity(ctx, id, "i1", -1)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	for _, line := range cart.Items {
		if line.ID == "i1" {
			t.Fatalf("expected i1 removed at quantity 0, got %+v", line)
		}
	}
}

func TestUpdateQuantityClampsBelowZero(t *testing.T) {
	svc := newTestService()
	id := mustCreate(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, id, itemA()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.UpdateQuantity(ctx, id, "i1", -10)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestRemoveItem(t *testing.T) {
	svc := newTestService()
	id := mustCreate(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, id, itemA()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, id, itemB()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.RemoveItem(ctx, id, "i1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ID != "i2" {
		t.Fatalf("expected only i2 left, got %+v", cart.Items)
	}
}

func TestComputeTotals(t *testing.T) {
	items := []domain.CartItem{
		{ID: "i1", Price: 1200, Quantity: 1},
		{ID: "i2", Price: 800, Quantity: 2},
	}

	cases := []struct {
		name     string
		discount domain.Discount
		want     domain.CartTotals
	}{
		{"no discount", domain.Discount{Type: domain.DiscountNone}, domain.CartTotals{Subtotal: 2800, DiscountAmount: 0, Total: 2800}},
		{"fixed", domain.Discount{Type: domain.DiscountFixed, Value: 300}, domain.CartTotals{Subtotal: 2800, DiscountAmount: 300, Total: 2500}},
		{"percent", domain.Discount{Type: domain.DiscountPercent, Value: 10}, domain.CartTotals{Subtotal: 2800, DiscountAmount: 280, Total: 2520}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeTotals(items, tc.discount); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestComputeTotalsNeverNegative(t *testing.T) {
	items := []domain.CartItem{{ID: "i1", Price: 500, Quantity: 1}}
	got := ComputeTotals(items, domain.Discount{Type: domain.DiscountFixed, Value: 1000})
	if got.Total != 0 {
		t.Fatalf("expected total floored at 0, got %d", got.Total)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	svc := newTestService()
	id := mustCreate(t, svc)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, id, itemA()); err != nil {
		t.Fatalf("add: %v", err)
	}
	receipt, err := svc.Checkout(ctx, id, domain.Discount{Type: domain.DiscountNone}, "cash")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if receipt.Totals.Total != 1200 {
		t.Fatalf("expected receipt total 1200, got %d", receipt.Totals.Total)
	}
	if len(receipt.Items) != 1 {
		t.Fatalf("expected receipt to carry the sold lines")
	}

	cart, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after checkout: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %+v", cart.Items)
	}
}

func TestDiscountValidation(t *testing.T) {
	svc := newTestService()
	id := mustCreate(t, svc)

	if _, err := svc.Totals(context.Background(), id, domain.Discount{Type: "coupon"}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unsupported discount type, got %v", err)
	}
	if _, err := svc.Totals(context.Background(), id, domain.Discount{Type: domain.DiscountFixed, Value: -5}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for negative discount value, got %v", err)
	}
}

func TestOperationsOnUnknownCart(t *testing.T) {
	svc := newTestService()
	if _, err := svc.AddItem(context.Background(), "missing", itemA()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
