package httpserver

import (
	"time"

	"vastrabazaar/internal/cart"
	"vastrabazaar/internal/domain"
	"vastrabazaar/internal/settlement"
	"vastrabazaar/internal/trycart"
)

// productView is the storefront JSON shape of a catalog product,
// with the discount percentage precomputed for display.
type productView struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	PriceCents         int64           `json:"priceCents"`
	OriginalPriceCents int64           `json:"originalPriceCents,omitempty"`
	DiscountPercent    int             `json:"discountPercent,omitempty"`
	Category           domain.Category `json:"category"`
	Subcategory        string          `json:"subcategory,omitempty"`
	Stock              int             `json:"stock"`
	Rating             float64         `json:"rating"`
	Reviews            int             `json:"reviews"`
	Images             []string        `json:"images,omitempty"`
	IsNew              bool            `json:"isNew,omitempty"`
	IsTrending         bool            `json:"isTrending,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func toProductView(p domain.Product) productView {
	return productView{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		PriceCents:         p.PriceCents,
		OriginalPriceCents: p.OriginalPriceCents,
		DiscountPercent:    settlement.DiscountPercent(p),
		Category:           p.Category,
		Subcategory:        p.Subcategory,
		Stock:              p.Stock,
		Rating:             p.Rating,
		Reviews:            p.Reviews,
		Images:             p.Images,
		IsNew:              p.IsNew,
		IsTrending:         p.IsTrending,
		CreatedAt:          p.CreatedAt,
	}
}

func toProductViews(products []domain.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

type cartLineView struct {
	Product    productView `json:"product"`
	Quantity   int         `json:"quantity"`
	TotalCents int64       `json:"totalCents"`
}

type cartView struct {
	Lines        []cartLineView `json:"lines"`
	TotalItems   int            `json:"totalItems"`
	TotalCents   int64          `json:"totalCents"`
	SavingsCents int64          `json:"savingsCents"`
}

func toCartView(s cart.Snapshot) cartView {
	lines := make([]cartLineView, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, cartLineView{
			Product:    toProductView(l.Product),
			Quantity:   l.Quantity,
			TotalCents: l.Product.PriceCents * int64(l.Quantity),
		})
	}
	return cartView{
		Lines:        lines,
		TotalItems:   s.TotalItems,
		TotalCents:   s.TotalCents,
		SavingsCents: s.SavingsCents,
	}
}

type tryCartItemView struct {
	Product productView `json:"product"`
	AddedAt time.Time   `json:"addedAt"`
}

type tryCartView struct {
	Items                []tryCartItemView `json:"items"`
	MaxItems             int               `json:"maxItems"`
	SecurityDepositCents int64             `json:"securityDepositCents"`
	IsPaid               bool              `json:"isPaid"`
	State                trycart.State     `json:"state"`
	TrialValueCents      int64             `json:"trialValueCents"`
}

func toTryCartView(s trycart.Snapshot) tryCartView {
	items := make([]tryCartItemView, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, tryCartItemView{
			Product: toProductView(it.Product),
			AddedAt: it.AddedAt,
		})
	}
	return tryCartView{
		Items:                items,
		MaxItems:             s.MaxItems,
		SecurityDepositCents: s.SecurityDepositCents,
		IsPaid:               s.Paid,
		State:                s.State,
		TrialValueCents:      settlement.TrialValueCents(s),
	}
}

type settlementView struct {
	SecurityDepositCents int64 `json:"securityDepositCents"`
	PurchasedTotalCents  int64 `json:"purchasedTotalCents"`
	CreditedCents        int64 `json:"creditedCents"`
	VisitChargeCents     int64 `json:"visitChargeCents"`
	RefundCents          int64 `json:"refundCents"`
}

func toSettlementView(deposit int64, d settlement.Disposition) settlementView {
	return settlementView{
		SecurityDepositCents: deposit,
		PurchasedTotalCents:  d.PurchasedTotalCents,
		CreditedCents:        d.CreditedCents,
		VisitChargeCents:     d.VisitChargeCents,
		RefundCents:          d.RefundCents,
	}
}
