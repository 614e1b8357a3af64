package seed

import (
	"context"
	"fmt"

	"vastrabazaar/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedProduct struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	OrigCents   int64
	Category    domain.Category
	Subcategory string
	Stock       int
	Rating      float64
	Reviews     int
	IsNew       bool
	IsTrending  bool
}

// Apply inserts basic seed data for manual testing. Fixed ids keep it
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []seedProduct{
		{
			ID:          "6a6f9b3e-0001-4a6e-9d3b-000000000001",
			Name:        "Classic Cotton Kurta",
			Description: "Breathable handloom cotton kurta for everyday wear",
			PriceCents:  79900,
			OrigCents:   99900,
			Category:    domain.CategoryMen,
			Subcategory: "Kurtas",
			Stock:       42,
			Rating:      4.4,
			Reviews:     187,
			IsTrending:  true,
		},
		{
			ID:          "6a6f9b3e-0002-4a6e-9d3b-000000000002",
			Name:        "Banarasi Silk Saree",
			Description: "Zari-woven silk saree with contrast border",
			PriceCents:  349900,
			OrigCents:   429900,
			Category:    domain.CategoryWomen,
			Subcategory: "Sarees",
			Stock:       12,
			Rating:      4.8,
			Reviews:     94,
		},
		{
			ID:          "6a6f9b3e-0003-4a6e-9d3b-000000000003",
			Name:        "Printed Kids Tee",
			Description: "Soft jersey tee with block print",
			PriceCents:  29900,
			Category:    domain.CategoryKids,
			Subcategory: "T-Shirts",
			Stock:       120,
			Rating:      4.1,
			Reviews:     63,
			IsNew:       true,
		},
		{
			ID:          "6a6f9b3e-0004-4a6e-9d3b-000000000004",
			Name:        "Jute Tote Bag",
			Description: "Hand-stitched jute tote with cotton lining",
			PriceCents:  54900,
			OrigCents:   64900,
			Category:    domain.CategoryAccessories,
			Subcategory: "Bags",
			Stock:       35,
			Rating:      4.6,
			Reviews:     211,
		},
		{
			ID:          "6a6f9b3e-0005-4a6e-9d3b-000000000005",
			Name:        "Denim Jacket",
			Description: "Stonewashed denim jacket, relaxed fit",
			PriceCents:  189900,
			Category:    domain.CategoryMen,
			Subcategory: "Jackets",
			Stock:       27,
			Rating:      4.3,
			Reviews:     142,
			IsNew:       true,
		},
		{
			ID:          "6a6f9b3e-0006-4a6e-9d3b-000000000006",
			Name:        "Chanderi Dupatta",
			Description: "Lightweight chanderi dupatta with gold tassels",
			PriceCents:  89900,
			OrigCents:   109900,
			Category:    domain.CategoryWomen,
			Subcategory: "Dupattas",
			Stock:       58,
			Rating:      4.5,
			Reviews:     76,
			IsTrending:  true,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p seedProduct) error {
	const q = `
INSERT INTO products (id, name, description, price_cents, original_price_cents, category, subcategory, stock, rating, reviews, images, is_new, is_trending)
VALUES ($1, $2, $3, $4, NULLIF($5, 0), $6, $7, $8, $9, $10, '[]'::jsonb, $11, $12)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    original_price_cents = EXCLUDED.original_price_cents,
    category = EXCLUDED.category,
    subcategory = EXCLUDED.subcategory,
    stock = EXCLUDED.stock,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    is_new = EXCLUDED.is_new,
    is_trending = EXCLUDED.is_trending
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Description, p.PriceCents, p.OrigCents,
		string(p.Category), p.Subcategory, p.Stock, p.Rating, p.Reviews, p.IsNew, p.IsTrending)
	if err != nil {
		return err
	}
	return nil
}
