package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"vastrabazaar/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, name, COALESCE(description, ''), price_cents, COALESCE(original_price_cents, 0), category, COALESCE(subcategory, ''), stock, rating, reviews, images, is_new, is_trending, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("catalog repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("catalog repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("catalog repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("catalog repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, description, price_cents, original_price_cents, category, subcategory, stock, rating, reviews, images, is_new, is_trending)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, NULLIF($3, ''), $4, NULLIF($5, 0), $6, NULLIF($7, ''), $8, $9, $10, COALESCE($11, '[]'::jsonb), $12, $13)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    original_price_cents = EXCLUDED.original_price_cents,
    category = EXCLUDED.category,
    subcategory = EXCLUDED.subcategory,
    stock = EXCLUDED.stock,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    images = EXCLUDED.images,
    is_new = EXCLUDED.is_new,
    is_trending = EXCLUDED.is_trending
RETURNING id::text, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.OriginalPriceCents,
		string(product.Category),
		product.Subcategory,
		product.Stock,
		product.Rating,
		product.Reviews,
		product.Images,
		product.IsNew,
		product.IsTrending,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("catalog repo: upsert name=%q error=%v", product.Name, err)
		return nil, err
	}
	r.logger.Printf("catalog repo: upserted name=%q id=%s", res.Name, res.ID)
	return &res, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var category string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.OriginalPriceCents,
		&category, &p.Subcategory, &p.Stock, &p.Rating, &p.Reviews, &p.Images,
		&p.IsNew, &p.IsTrending, &p.CreatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	p.Category = domain.Category(category)
	return p, nil
}
