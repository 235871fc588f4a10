package shipping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rakumane/internal/domain"
	orderrepo "rakumane/internal/repository/order"
)

// Service owns the shipping order list, the storage location list, and the
// derived workflow values.
type Service struct {
	repo      orderRepo
	locations []domain.Location
	strict    bool
	now       func() time.Time
}

type orderRepo interface {
	List(ctx context.Context) ([]domain.ShippingOrder, error)
	Get(ctx context.Context, id string) (*domain.ShippingOrder, error)
	Replace(ctx context.Context, order domain.ShippingOrder) (*domain.ShippingOrder, error)
}

// New builds a Service. With strict enabled, SetStatus rejects transitions
// other than staying put or advancing to the immediate next workflow state.
func New(repo orderrepo.Repository, locations []domain.Location, strict bool) *Service {
	locs := make([]domain.Location, len(locations))
	copy(locs, locations)
	return &Service{repo: repo, locations: locs, strict: strict, now: time.Now}
}

// Filter is the conjunction of active order filters. Zero or "all" fields are
// inactive.
type Filter struct {
	Status  string
	Channel string
}

func (f Filter) active() bool {
	return (f.Status != "" && f.Status != "all") ||
		(f.Channel != "" && f.Channel != "all")
}

// List returns the orders matching the filter, preserving stored order.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.ShippingOrder, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(orders, f), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.ShippingOrder, error) {
	return s.repo.Get(ctx, id)
}

// Locations returns the storage location list.
func (s *Service) Locations() []domain.Location {
	return s.locations
}

// SetStatus overwrites the order's workflow status. The baseline behavior is
// an unguarded overwrite; strict mode additionally rejects anything but a
// repeat of the current status or the immediate next step.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.ShippingOrder, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalid, status)
	}
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.strict {
		from, to := order.Status.Rank(), status.Rank()
		if to != from && to != from+1 {
			return nil, domain.ErrBadTransition
		}
	}
	order.Status = status
	return s.repo.Replace(ctx, *order)
}

// SetTrackingNumber records a tracking number. Blank input (after trimming)
// is accepted and changes nothing; the tracking number is never cleared here.
func (s *Service) SetTrackingNumber(ctx context.Context, id, value string) (*domain.ShippingOrder, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return order, nil
	}
	order.TrackingNumber = trimmed
	return s.repo.Replace(ctx, *order)
}

// ApplyChecklist advances the order to the highest checked step and returns
// the checklist progress. An all-unchecked list leaves the order untouched.
func (s *Service) ApplyChecklist(ctx context.Context, id string, steps domain.Checklist) (*domain.ShippingOrder, int, error) {
	progress := ChecklistProgress(steps)
	target, ok := highestChecked(steps)
	if !ok {
		order, err := s.repo.Get(ctx, id)
		return order, progress, err
	}
	order, err := s.SetStatus(ctx, id, target)
	return order, progress, err
}

func highestChecked(steps domain.Checklist) (domain.OrderStatus, bool) {
	switch {
	case steps.Tracking:
		return domain.StatusTracking, true
	case steps.DroppedOff:
		return domain.StatusDroppedOff, true
	case steps.Labeled:
		return domain.StatusLabeled, true
	case steps.Packing:
		return domain.StatusPacking, true
	case steps.Picking:
		return domain.StatusPicking, true
	}
	return "", false
}

// DeadlineUrgency labels the time remaining until the order's deadline.
func DeadlineUrgency(order domain.ShippingOrder, now time.Time) domain.Urgency {
	hours := order.Deadline.Sub(now).Hours()
	switch {
	case hours < 0:
		return domain.UrgencyOverdue
	case hours < 24:
		return domain.UrgencyTodayOrLess
	case hours < 48:
		return domain.UrgencyTomorrow
	}
	return domain.UrgencyOnTime
}

// Urgency labels the order's deadline against the service clock.
func (s *Service) Urgency(order domain.ShippingOrder) domain.Urgency {
	return DeadlineUrgency(order, s.now())
}

// ChecklistProgress returns the completed share of the five shipping steps as
// a percentage in steps of 20. Step ordering is not enforced.
func ChecklistProgress(steps domain.Checklist) int {
	count := 0
	for _, done := range []bool{steps.Picking, steps.Packing, steps.Labeled, steps.DroppedOff, steps.Tracking} {
		if done {
			count++
		}
	}
	return count * 20
}

// OrderTotal recomputes an order's total from its lines. It must always equal
// the stored Total field.
func OrderTotal(order domain.ShippingOrder) int64 {
	var total int64
	for _, item := range order.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ApplyFilter returns the subsequence of orders matching every active filter.
// It is pure and stable; an inactive filter returns the input unchanged.
func ApplyFilter(orders []domain.ShippingOrder, f Filter) []domain.ShippingOrder {
	if !f.active() {
		return orders
	}
	matched := make([]domain.ShippingOrder, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && f.Status != "all" && string(o.Status) != f.Status {
			continue
		}
		if f.Channel != "" && f.Channel != "all" && string(o.Channel) != f.Channel {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}
