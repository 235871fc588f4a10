package domain

import "time"

// Cart is an ephemeral sales-session cart. It exists only for the lifetime of
// the process and is emptied on checkout.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CartItem is one cart line. Quantity never rests at zero; a line whose
// quantity reaches zero is removed from the cart.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
}

// DiscountType selects how a discount reduces the subtotal.
type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountFixed   DiscountType = "fixed"
	DiscountPercent DiscountType = "percent"
)

// Discount is a transient checkout-time modifier, not a stored entity.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value int64        `json:"value"`
}

// CartTotals is the derived pricing for a cart under a discount.
type CartTotals struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discountAmount"`
	Total          int64 `json:"total"`
}
