package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartView {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var v cartView
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return v
}

func TestCartFlow(t *testing.T) {
	router, _ := testRouter(t)
	token := openSession(t, router)

	// Empty cart to start.
	v := decodeCart(t, doJSON(t, router, http.MethodGet, "/me/cart", token, ""))
	if len(v.Lines) != 0 || v.TotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", v)
	}

	// Add p1 twice: one line, quantity 2, total 1000.
	doJSON(t, router, http.MethodPost, "/me/cart/items", token, `{"productId":"p1"}`)
	v = decodeCart(t, doJSON(t, router, http.MethodPost, "/me/cart/items", token, `{"productId":"p1"}`))
	if len(v.Lines) != 1 || v.Lines[0].Quantity != 2 {
		t.Fatalf("expected one line quantity 2, got %+v", v.Lines)
	}
	if v.TotalCents != 1000 {
		t.Fatalf("expected total 1000, got %d", v.TotalCents)
	}
	// p1 is 500 against original 1000: savings 500 per unit.
	if v.SavingsCents != 1000 {
		t.Fatalf("expected savings 1000, got %d", v.SavingsCents)
	}

	// Update quantity.
	v = decodeCart(t, doJSON(t, router, http.MethodPatch, "/me/cart/items/p1", token, `{"quantity":5}`))
	if v.Lines[0].Quantity != 5 || v.TotalCents != 2500 {
		t.Fatalf("expected quantity 5 total 2500, got %+v", v)
	}

	// Quantity 0 removes the line.
	v = decodeCart(t, doJSON(t, router, http.MethodPatch, "/me/cart/items/p1", token, `{"quantity":0}`))
	if len(v.Lines) != 0 {
		t.Fatalf("expected line removed, got %+v", v.Lines)
	}

	// Add two products, remove one, clear.
	doJSON(t, router, http.MethodPost, "/me/cart/items", token, `{"productId":"p1"}`)
	doJSON(t, router, http.MethodPost, "/me/cart/items", token, `{"productId":"p3"}`)
	v = decodeCart(t, doJSON(t, router, http.MethodDelete, "/me/cart/items/p1", token, ""))
	if len(v.Lines) != 1 || v.Lines[0].Product.ID != "p3" {
		t.Fatalf("expected only p3 left, got %+v", v.Lines)
	}
	v = decodeCart(t, doJSON(t, router, http.MethodDelete, "/me/cart", token, ""))
	if len(v.Lines) != 0 {
		t.Fatalf("expected cleared cart, got %+v", v.Lines)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	router, _ := testRouter(t)
	token := openSession(t, router)

	rec := doJSON(t, router, http.MethodPost, "/me/cart/items", token, `{"productId":"missing"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartAddMissingBody(t *testing.T) {
	router, _ := testRouter(t)
	token := openSession(t, router)

	rec := doJSON(t, router, http.MethodPost, "/me/cart/items", token, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, _ := testRouter(t)
	tokenA := openSession(t, router)
	tokenB := openSession(t, router)

	doJSON(t, router, http.MethodPost, "/me/cart/items", tokenA, `{"productId":"p1"}`)

	v := decodeCart(t, doJSON(t, router, http.MethodGet, "/me/cart", tokenB, ""))
	if len(v.Lines) != 0 {
		t.Fatalf("session B must not see session A's cart, got %+v", v.Lines)
	}
}
