package domain

import "time"

// Item is a single inventory entry. Low is derived state and must equal
// Stock <= MinStock after every stock mutation.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"`
	MaxStock    int       `json:"maxStock"`
	Low         bool      `json:"low"`
	Locations   string    `json:"locations"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// RecomputeLow refreshes the derived low-stock flag from the current stock level.
func (i *Item) RecomputeLow() {
	i.Low = i.Stock <= i.MinStock
}

// ItemHistory is one recorded stock movement for an item. Change is the
// applied difference, after clamping, not the requested delta.
type ItemHistory struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"itemId"`
	Date     time.Time `json:"date"`
	Change   int       `json:"change"`
	Reason   string    `json:"reason"`
	Location string    `json:"location,omitempty"`
}
