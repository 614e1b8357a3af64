// Package settlement derives the financial disposition of a TryCart
// session. Everything here is a pure function over snapshots; nothing
// mutates store state.
package settlement

import (
	"math"

	"vastrabazaar/internal/domain"
	"vastrabazaar/internal/trycart"
)

// VisitChargeCents is the non-refundable fee deducted from the
// deposit when no staged item is purchased.
const VisitChargeCents int64 = 100

// Disposition resolves how a paid security deposit settles once the
// trial outcome is known.
type Disposition struct {
	PurchasedTotalCents int64 `json:"purchasedTotalCents"`
	CreditedCents       int64 `json:"creditedCents"`
	VisitChargeCents    int64 `json:"visitChargeCents"`
	RefundCents         int64 `json:"refundCents"`
}

// TrialValueCents sums the prices of all staged items.
func TrialValueCents(s trycart.Snapshot) int64 {
	var total int64
	for i := range s.Items {
		total += s.Items[i].Product.PriceCents
	}
	return total
}

// Resolve computes the deposit disposition for a trial given the ids
// the shopper decided to purchase. Ids that are not staged are
// ignored; if nothing staged was purchased the visit charge applies
// and the remainder of the deposit is refunded, otherwise the deposit
// is credited against the purchased total and any excess refunded.
//
// The deposit must have been paid: calling Resolve on an unpaid
// snapshot returns domain.ErrUnpaidDeposit.
func Resolve(s trycart.Snapshot, purchasedIDs []string) (Disposition, error) {
	if !s.Paid {
		return Disposition{}, domain.ErrUnpaidDeposit
	}

	purchased := make(map[string]bool, len(purchasedIDs))
	for _, id := range purchasedIDs {
		purchased[id] = true
	}

	var purchasedTotal int64
	bought := false
	for i := range s.Items {
		if purchased[s.Items[i].Product.ID] {
			purchasedTotal += s.Items[i].Product.PriceCents
			bought = true
		}
	}

	deposit := s.SecurityDepositCents
	if !bought {
		return Disposition{
			VisitChargeCents: VisitChargeCents,
			RefundCents:      deposit - VisitChargeCents,
		}, nil
	}

	credited := purchasedTotal
	if credited > deposit {
		credited = deposit
	}
	refund := deposit - purchasedTotal
	if refund < 0 {
		refund = 0
	}
	return Disposition{
		PurchasedTotalCents: purchasedTotal,
		CreditedCents:       credited,
		RefundCents:         refund,
	}, nil
}

// DiscountPercent is the rounded percentage saved against the
// original price, 0 when the product is not discounted.
func DiscountPercent(p domain.Product) int {
	if p.OriginalPriceCents <= p.PriceCents || p.OriginalPriceCents == 0 {
		return 0
	}
	ratio := float64(p.OriginalPriceCents-p.PriceCents) / float64(p.OriginalPriceCents)
	return int(math.Round(ratio * 100))
}
