package httpserver

import (
	"net/http"
	"testing"
)

func TestListItemsFiltered(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodGet, "/api/items?stockStatus=outOfStock", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items, ok := body["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("expected one out-of-stock item, got %v", body["items"])
	}
	first := items[0].(map[string]interface{})
	if first["id"] != "item-4" {
		t.Fatalf("expected item-4, got %v", first["id"])
	}
}

func TestListItemsSearch(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodGet, "/api/items?search=b-104", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items := body["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected one match, got %d", len(items))
	}
}

func TestAdjustStockEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// item-2 starts at stock 2; a -5 adjustment clamps to 0 and keeps low set.
	rec, body := doJSON(t, router, http.MethodPost, "/api/items/item-2/adjust", `{"delta": -5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, body)
	}
	if body["stock"].(float64) != 0 {
		t.Fatalf("expected stock 0, got %v", body["stock"])
	}
	if body["low"] != true {
		t.Fatalf("expected low flag, got %v", body["low"])
	}
}

func TestAdjustStockUnknownItem(t *testing.T) {
	router := newTestRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/items/nope/adjust", `{"delta": 1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdjustStockRequiresDelta(t *testing.T) {
	router := newTestRouter(t)
	rec, _ := doJSON(t, router, http.MethodPost, "/api/items/item-1/adjust", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestItemHistoryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/items/item-1/adjust", `{"delta": -2, "reason": "販売"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec, body := doJSON(t, router, http.MethodGet, "/api/items/item-1/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, body)
	}
	history, ok := body["history"].([]interface{})
	if !ok || len(history) != 1 {
		t.Fatalf("expected one history entry, got %v", body["history"])
	}
	entry := history[0].(map[string]interface{})
	if entry["change"].(float64) != -2 {
		t.Fatalf("expected change -2, got %v", entry["change"])
	}
	if entry["reason"] != "販売" {
		t.Fatalf("expected reason 販売, got %v", entry["reason"])
	}
	if entry["itemId"] != "item-1" {
		t.Fatalf("expected itemId item-1, got %v", entry["itemId"])
	}
}

func TestItemHistoryUnknownItem(t *testing.T) {
	router := newTestRouter(t)
	rec, _ := doJSON(t, router, http.MethodGet, "/api/items/nope/history", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateItemEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodPut, "/api/items/item-1",
		`{"name":"作品A改","sku":"A-001","price":1500,"stock":1,"minStock":3,"maxStock":30,"locations":"棚1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, body)
	}
	if body["name"] != "作品A改" {
		t.Fatalf("expected replaced name, got %v", body["name"])
	}
	if body["low"] != true {
		t.Fatalf("expected low recomputed from stock 1 <= minStock 3")
	}
}
