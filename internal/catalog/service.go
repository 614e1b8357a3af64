// Package catalog holds the immutable product snapshot the storefront
// serves from. The snapshot is loaded once at startup; a changed
// catalog is a full replacement (restart), never an in-place update.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"

	"vastrabazaar/internal/domain"
)

// Repository supplies the product list at load time.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// Order is a catalog sort order.
type Order string

const (
	OrderPopularity Order = "popularity"
	OrderPriceLow   Order = "price-low"
	OrderPriceHigh  Order = "price-high"
	OrderNewest     Order = "newest"
)

// Query narrows and orders the catalog. Zero values mean "no filter";
// MaxPriceCents of 0 is unbounded.
type Query struct {
	Category      domain.Category
	MinPriceCents int64
	MaxPriceCents int64
	Sort          Order
}

// Service answers read-only catalog queries over the loaded snapshot.
type Service struct {
	products []domain.Product
	byID     map[string]domain.Product
	logger   *log.Logger
}

// Load reads the full catalog from repo into memory.
func Load(ctx context.Context, repo Repository, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	products, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	logger.Printf("catalog: loaded %d products", len(products))
	return &Service{products: products, byID: byID, logger: logger}, nil
}

// All returns a copy of the full catalog in load order.
func (s *Service) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks a product up by id.
func (s *Service) Get(id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Len is the number of products in the snapshot.
func (s *Service) Len() int {
	return len(s.products)
}

// Search filters and sorts a copy of the snapshot.
func (s *Service) Search(q Query) []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if p.PriceCents < q.MinPriceCents {
			continue
		}
		if q.MaxPriceCents > 0 && p.PriceCents > q.MaxPriceCents {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case OrderPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents < out[j].PriceCents })
	case OrderPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents > out[j].PriceCents })
	case OrderNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case OrderPopularity, "":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
