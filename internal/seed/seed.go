package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"rakumane/internal/domain"
)

//go:embed items.json
var itemsJSON []byte

//go:embed orders.json
var ordersJSON []byte

//go:embed locations.json
var locationsJSON []byte

// Data is the startup state of the three stores. There is no persistence
// behind it; every process starts from these fixtures.
type Data struct {
	Items     []domain.Item
	Orders    []domain.ShippingOrder
	Locations []domain.Location
}

// Load parses the embedded fixtures and normalizes derived fields: stock is
// clamped at zero and the low flag recomputed, and each order's stored total
// is checked against its lines.
func Load() (*Data, error) {
	var data Data
	if err := json.Unmarshal(itemsJSON, &data.Items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	if err := json.Unmarshal(ordersJSON, &data.Orders); err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}
	if err := json.Unmarshal(locationsJSON, &data.Locations); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}

	for i := range data.Items {
		if data.Items[i].Stock < 0 {
			data.Items[i].Stock = 0
		}
		data.Items[i].RecomputeLow()
	}

	for _, order := range data.Orders {
		if !order.Status.Valid() {
			return nil, fmt.Errorf("order %s: unknown status %q", order.ID, order.Status)
		}
		var total int64
		for _, line := range order.Items {
			total += line.Price * int64(line.Quantity)
		}
		if total != order.Total {
			return nil, fmt.Errorf("order %s: stored total %d does not match line total %d", order.ID, order.Total, total)
		}
	}

	return &data, nil
}
