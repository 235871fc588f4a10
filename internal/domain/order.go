package domain

import "time"

// OrderStatus is the shipping workflow position of an order. The workflow is
// linear: picking, packing, labeled, droppedOff, tracking.
type OrderStatus string

const (
	StatusPicking    OrderStatus = "picking"
	StatusPacking    OrderStatus = "packing"
	StatusLabeled    OrderStatus = "labeled"
	StatusDroppedOff OrderStatus = "droppedOff"
	StatusTracking   OrderStatus = "tracking"
)

// StatusOrder lists the workflow states in progression order.
var StatusOrder = []OrderStatus{
	StatusPicking,
	StatusPacking,
	StatusLabeled,
	StatusDroppedOff,
	StatusTracking,
}

// Valid reports whether s names a known workflow state.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPicking, StatusPacking, StatusLabeled, StatusDroppedOff, StatusTracking:
		return true
	}
	return false
}

// Rank returns the zero-based position of s in the workflow, or -1 for an
// unknown status.
func (s OrderStatus) Rank() int {
	for i, st := range StatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Channel identifies the sales channel an order came from.
type Channel string

const (
	ChannelMercari Channel = "mercari"
	ChannelMinne   Channel = "minne"
	ChannelEvent   Channel = "event"
	ChannelOther   Channel = "other"
)

// ShippingOrder is a single order awaiting or undergoing shipment. Total must
// always equal the sum of Price*Quantity over Items.
type ShippingOrder struct {
	ID             string         `json:"id"`
	OrderNumber    string         `json:"orderNumber"`
	Date           time.Time      `json:"date"`
	Deadline       time.Time      `json:"deadline"`
	Status         OrderStatus    `json:"status"`
	Channel        Channel        `json:"channel"`
	Customer       string         `json:"customer"`
	Items          []ShippingItem `json:"items"`
	Total          int64          `json:"total"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Assignee       string         `json:"assignee,omitempty"`
}

// ShippingItem is an order line. Item data is copied by value at order
// creation; later inventory edits do not flow back into it.
type ShippingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// Urgency is the categorical label for time remaining until a shipping
// deadline.
type Urgency string

const (
	UrgencyOverdue     Urgency = "overdue"
	UrgencyTodayOrLess Urgency = "todayOrLess"
	UrgencyTomorrow    Urgency = "tomorrow"
	UrgencyOnTime      Urgency = "onTime"
)

// Checklist holds the five fixed shipping steps for an order.
type Checklist struct {
	Picking    bool `json:"picking"`
	Packing    bool `json:"packing"`
	Labeled    bool `json:"labeled"`
	DroppedOff bool `json:"droppedOff"`
	Tracking   bool `json:"tracking"`
}
