package seed

import "testing"

func TestLoad(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data.Items) == 0 || len(data.Orders) == 0 || len(data.Locations) == 0 {
		t.Fatalf("expected all fixture sets populated: %d items, %d orders, %d locations",
			len(data.Items), len(data.Orders), len(data.Locations))
	}
}

func TestLoadNormalizesLowFlag(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, item := range data.Items {
		if item.Stock < 0 {
			t.Fatalf("item %s: negative stock after load", item.ID)
		}
		if item.Low != (item.Stock <= item.MinStock) {
			t.Fatalf("item %s: low=%v inconsistent with stock=%d minStock=%d",
				item.ID, item.Low, item.Stock, item.MinStock)
		}
	}
}

func TestLoadVerifiesOrderTotals(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, order := range data.Orders {
		var total int64
		for _, line := range order.Items {
			total += line.Price * int64(line.Quantity)
		}
		if total != order.Total {
			t.Fatalf("order %s: stored total %d, line total %d", order.ID, order.Total, total)
		}
	}
}
