package domain

// LocationType classifies where stock physically sits.
type LocationType string

const (
	LocationShelf       LocationType = "shelf"
	LocationCase        LocationType = "case"
	LocationEvent       LocationType = "event"
	LocationConsignment LocationType = "consignment"
)

// Location is a physical storage slot with a fixed capacity.
type Location struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      LocationType `json:"type"`
	ItemCount int          `json:"itemCount"`
	Capacity  int          `json:"capacity"`
}

// Utilization returns how full the location is as a whole percentage.
// A location with zero capacity reports 0.
func (l Location) Utilization() int {
	if l.Capacity <= 0 {
		return 0
	}
	return l.ItemCount * 100 / l.Capacity
}
