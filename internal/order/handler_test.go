package order

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/denimstore/jeans-shop-backend/internal/customer"
	"github.com/denimstore/jeans-shop-backend/internal/product"
)

func setupApp(seed []Order) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(seed)
	products := &fakeProducts{known: product.Product{ID: 5, Name: "Skinny Jeans", Price: 49.99}}
	customers := &fakeCustomers{repo: customer.NewInMemoryRepository(nil)}
	h := NewHandler(NewService(repo, products, customers, false))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)
	return app, repo
}

func TestPlaceOrder_HTTP(t *testing.T) {
	app, repo := setupApp(nil)

	payload := map[string]any{
		"product_id":       5,
		"customer_name":    "Sam",
		"customer_phone":   "0100",
		"customer_address": "addr",
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	var ord Order
	json.NewDecoder(res.Body).Decode(&ord)
	if ord.Status != StatusPending || ord.ProductName != "Skinny Jeans" {
		t.Fatalf("unexpected order %+v", ord)
	}

	all, _ := repo.List()
	if len(all) != 1 || all[0].ID != ord.ID {
		t.Fatalf("expected the placed order first in the list, got %+v", all)
	}
}

func TestPlaceOrder_MissingFields(t *testing.T) {
	app, repo := setupApp(nil)

	b, _ := json.Marshal(map[string]any{"product_id": 5})
	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}

	all, _ := repo.List()
	if len(all) != 0 {
		t.Fatalf("expected no writes, got %d", len(all))
	}
}

func TestUpdateStatus_HTTP(t *testing.T) {
	seed := []Order{{ID: 1, Status: StatusPending}}
	app, repo := setupApp(seed)

	b, _ := json.Marshal(map[string]string{"status": StatusShipped})
	req := httptest.NewRequest("PATCH", "/api/v1/admin/orders/1/status", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	current, _ := repo.GetByID(1)
	if current.Status != StatusShipped {
		t.Fatalf("expected shipped, got %q", current.Status)
	}
}

func TestUpdateStatus_HTTP_UnknownValue(t *testing.T) {
	seed := []Order{{ID: 1, Status: StatusPending}}
	app, repo := setupApp(seed)

	b, _ := json.Marshal(map[string]string{"status": "lost"})
	req := httptest.NewRequest("PATCH", "/api/v1/admin/orders/1/status", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}

	current, _ := repo.GetByID(1)
	if current.Status != StatusPending {
		t.Fatalf("status must not change, got %q", current.Status)
	}
}

func TestDeleteOrder_Idempotent(t *testing.T) {
	seed := []Order{{ID: 1, Status: StatusPending}}
	app, repo := setupApp(seed)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("DELETE", "/api/v1/admin/orders/1", nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("delete attempt %d: expected 200 got %d", i+1, res.StatusCode)
		}
	}

	all, _ := repo.List()
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d", len(all))
	}
}

func TestGetOrders_StatusFilter(t *testing.T) {
	seed := []Order{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusShipped},
		{ID: 3, Status: StatusCancelled},
	}
	app, _ := setupApp(seed)

	req := httptest.NewRequest("GET", "/api/v1/admin/orders?status=pending,cancelled", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var orders []Order
	json.NewDecoder(res.Body).Decode(&orders)
	if len(orders) != 2 {
		t.Fatalf("expected 2 filtered orders, got %d", len(orders))
	}

	// an unknown status in the filter is rejected, nothing is queried
	req2 := httptest.NewRequest("GET", "/api/v1/admin/orders?status=bogus", nil)
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatal(err)
	}
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res2.StatusCode)
	}
}
