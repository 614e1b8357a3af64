package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"
)

type productsResponse struct {
	Products []productView `json:"products"`
	Total    int           `json:"total"`
}

func listProducts(t *testing.T, path string) productsResponse {
	t.Helper()
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, path, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body productsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestListProducts(t *testing.T) {
	body := listProducts(t, "/products")
	if body.Total != 6 {
		t.Fatalf("expected 6 products, got %d", body.Total)
	}
	// Default order is popularity: highest rating first.
	if body.Products[0].ID != "p2" {
		t.Fatalf("expected p2 first, got %s", body.Products[0].ID)
	}
}

func TestListProductsCategoryFilter(t *testing.T) {
	body := listProducts(t, "/products?category=Men")
	if body.Total != 2 {
		t.Fatalf("expected 2 products, got %d", body.Total)
	}
	for _, p := range body.Products {
		if p.Category != "Men" {
			t.Fatalf("unexpected category %s", p.Category)
		}
	}
}

func TestListProductsPriceAndSort(t *testing.T) {
	body := listProducts(t, "/products?minPrice=400&maxPrice=900&sort=price-low")
	ids := make([]string, 0, len(body.Products))
	for _, p := range body.Products {
		ids = append(ids, p.ID)
	}
	want := []string{"p6", "p1", "p4", "p5"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestListProductsBadParams(t *testing.T) {
	router, _ := testRouter(t)
	for _, path := range []string{
		"/products?category=Shoes",
		"/products?minPrice=abc",
		"/products?maxPrice=-5",
		"/products?sort=rainbow",
	} {
		rec := doJSON(t, router, http.MethodGet, path, "", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestGetProduct(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/products/p1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var p productView
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Kurta" {
		t.Fatalf("unexpected product: %+v", p)
	}
	// p1 is 500 against an original 1000.
	if p.DiscountPercent != 50 {
		t.Fatalf("expected 50%% discount, got %d%%", p.DiscountPercent)
	}

	rec = doJSON(t, router, http.MethodGet, "/products/missing", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
