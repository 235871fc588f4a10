package stats

import (
	"context"
	"time"

	"rakumane/internal/domain"
	inventoryrepo "rakumane/internal/repository/inventory"
	orderrepo "rakumane/internal/repository/order"
	"rakumane/internal/service/shipping"
)

// Service derives dashboard figures from the inventory and order lists. It
// holds no state of its own; every call recomputes from current snapshots.
type Service struct {
	items  itemLister
	orders orderLister
	now    func() time.Time
}

type itemLister interface {
	List(ctx context.Context) ([]domain.Item, error)
}

type orderLister interface {
	List(ctx context.Context) ([]domain.ShippingOrder, error)
}

func New(items inventoryrepo.Repository, orders orderrepo.Repository) *Service {
	return &Service{items: items, orders: orders, now: time.Now}
}

// Summary is the dashboard KPI set.
type Summary struct {
	TotalItems      int `json:"totalItems"`
	LowStockItems   int `json:"lowStockItems"`
	OutOfStockItems int `json:"outOfStockItems"`
	UnshippedOrders int `json:"unshippedOrders"`
	OrdersDueSoon   int `json:"ordersDueSoon"`
}

// Summarize computes the KPI set against the service clock. Orders count as
// unshipped until they reach droppedOff; due-soon covers unshipped orders
// that are overdue or due within 24 hours.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalItems: len(items)}
	for _, item := range items {
		if item.Low {
			summary.LowStockItems++
		}
		if item.Stock <= 0 {
			summary.OutOfStockItems++
		}
	}

	now := s.now()
	for _, order := range orders {
		if order.Status.Rank() >= domain.StatusDroppedOff.Rank() {
			continue
		}
		summary.UnshippedOrders++
		switch shipping.DeadlineUrgency(order, now) {
		case domain.UrgencyOverdue, domain.UrgencyTodayOrLess:
			summary.OrdersDueSoon++
		}
	}
	return summary, nil
}
