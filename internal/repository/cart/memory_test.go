package cart

import (
	"context"
	"errors"
	"testing"

	"rakumane/internal/domain"
)

func TestCreateAndGet(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Cart{ID: "c1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "c1" {
		t.Fatalf("unexpected cart %+v", created)
	}

	got, err := repo.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "c1" || len(got.Items) != 0 {
		t.Fatalf("unexpected cart %+v", got)
	}
}

func TestReplaceItemsKeepsEarlierSnapshotIntact(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.Cart{ID: "c1", Items: []domain.CartItem{{ID: "i1", Quantity: 1}}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	before, err := repo.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if _, err := repo.ReplaceItems(ctx, "c1", []domain.CartItem{{ID: "i1", Quantity: 5}}); err != nil {
		t.Fatalf("replace items: %v", err)
	}

	if before.Items[0].Quantity != 1 {
		t.Fatalf("earlier snapshot mutated: %+v", before.Items[0])
	}
}

func TestGetUnknownCart(t *testing.T) {
	repo := NewMemory()
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.ReplaceItems(context.Background(), "missing", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
