package settlement

import (
	"errors"
	"testing"
	"time"

	"vastrabazaar/internal/domain"
	"vastrabazaar/internal/trycart"
)

func staged(paid bool, prices ...int64) trycart.Snapshot {
	var tc trycart.TryCart
	for i, price := range prices {
		tc.Add(domain.Product{
			ID:         string(rune('a' + i)),
			PriceCents: price,
			Category:   domain.CategoryMen,
		}, time.Unix(int64(i), 0))
	}
	if paid {
		tc.Pay()
	}
	return tc.Snapshot()
}

func TestTrialValue(t *testing.T) {
	s := staged(false, 500, 700, 300)
	if got := TrialValueCents(s); got != 1500 {
		t.Fatalf("expected trial value 1500, got %d", got)
	}
	if got := TrialValueCents(staged(false)); got != 0 {
		t.Fatalf("expected trial value 0 for empty trycart, got %d", got)
	}
}

func TestResolveUnpaid(t *testing.T) {
	_, err := Resolve(staged(false, 500), []string{"a"})
	if !errors.Is(err, domain.ErrUnpaidDeposit) {
		t.Fatalf("expected ErrUnpaidDeposit, got %v", err)
	}
}

func TestResolveNoPurchase(t *testing.T) {
	d, err := Resolve(staged(true, 500, 700), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.VisitChargeCents != 100 {
		t.Fatalf("expected visit charge 100, got %d", d.VisitChargeCents)
	}
	if d.RefundCents != 900 {
		t.Fatalf("expected refund 900, got %d", d.RefundCents)
	}
	if d.CreditedCents != 0 || d.PurchasedTotalCents != 0 {
		t.Fatalf("expected no credit on no purchase, got %+v", d)
	}
}

func TestResolvePurchaseBelowDeposit(t *testing.T) {
	// Item a costs 500; deposit 1000 covers it with 500 left over.
	d, err := Resolve(staged(true, 500, 700), []string{"a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.PurchasedTotalCents != 500 {
		t.Fatalf("expected purchased total 500, got %d", d.PurchasedTotalCents)
	}
	if d.CreditedCents != 500 {
		t.Fatalf("expected credited 500, got %d", d.CreditedCents)
	}
	if d.RefundCents != 500 {
		t.Fatalf("expected refund 500, got %d", d.RefundCents)
	}
	if d.VisitChargeCents != 0 {
		t.Fatalf("no visit charge applies when something was purchased, got %d", d.VisitChargeCents)
	}
}

func TestResolvePurchaseAboveDeposit(t *testing.T) {
	d, err := Resolve(staged(true, 1200), []string{"a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.CreditedCents != 1000 {
		t.Fatalf("expected whole deposit credited, got %d", d.CreditedCents)
	}
	if d.RefundCents != 0 {
		t.Fatalf("expected refund 0, got %d", d.RefundCents)
	}
}

func TestResolveIgnoresUnstagedIDs(t *testing.T) {
	// Only unstaged ids purchased: treated as no purchase.
	d, err := Resolve(staged(true, 500), []string{"zzz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.VisitChargeCents != 100 || d.RefundCents != 900 {
		t.Fatalf("unstaged-only purchase must settle as no purchase, got %+v", d)
	}

	// Mixed: the unstaged id contributes nothing.
	d, err = Resolve(staged(true, 500, 700), []string{"a", "zzz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.PurchasedTotalCents != 500 {
		t.Fatalf("expected purchased total 500, got %d", d.PurchasedTotalCents)
	}
}

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name  string
		price int64
		orig  int64
		want  int
	}{
		{"no original price", 500, 0, 0},
		{"original equals price", 500, 500, 0},
		{"original below price", 500, 400, 0},
		{"half off", 500, 1000, 50},
		{"rounds down", 667, 1000, 33},
		{"rounds up", 664, 1000, 34},
		{"tie rounds away from zero", 335, 1000, 67},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{PriceCents: tt.price, OriginalPriceCents: tt.orig}
			if got := DiscountPercent(p); got != tt.want {
				t.Fatalf("expected %d%%, got %d%%", tt.want, got)
			}
		})
	}
}
