package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vastrabazaar/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads storefront catalog CSV exports and inserts/updates
// products. A row carrying only images.url continues the previous
// product's image list.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

type csvRow struct {
	ID          string
	Name        string
	Desc        string
	Category    string
	Subcategory string
	PriceCents  int64
	OrigCents   int64
	Stock       int
	Rating      float64
	Reviews     int
	ImageURLs   []string
}

// Run parses CSV rows and upserts products grouped by product name rows.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows (images) belong to the current product.
		if current != nil && len(row.ImageURLs) > 0 {
			current.ImageURLs = append(current.ImageURLs, row.ImageURLs...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Name == "" || row.PriceCents <= 0 {
		return fmt.Errorf("invalid product row (missing required fields) for name %q", row.Name)
	}
	category := domain.Category(row.Category)
	if !category.Valid() {
		return fmt.Errorf("invalid category %q for name %q", row.Category, row.Name)
	}
	if row.OrigCents != 0 && row.OrigCents < row.PriceCents {
		return fmt.Errorf("original price below price for name %q", row.Name)
	}
	if row.ID != "" && len(row.ID) != 36 {
		return fmt.Errorf("invalid id for name %q: %s", row.Name, row.ID)
	}

	p := domain.Product{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Desc,
		PriceCents:         row.PriceCents,
		OriginalPriceCents: row.OrigCents,
		Category:           category,
		Subcategory:        row.Subcategory,
		Stock:              row.Stock,
		Rating:             row.Rating,
		Reviews:            row.Reviews,
		Images:             row.ImageURLs,
	}

	_, err := i.productRepo.Upsert(ctx, p)
	if err != nil {
		return fmt.Errorf("upsert product %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	name := pick(record, index, "name")
	imageURL := pick(record, index, "images.url")

	if name == "" && imageURL == "" {
		return nil
	}

	row := &csvRow{
		ID:          pick(record, index, "id"),
		Name:        name,
		Desc:        pick(record, index, "description"),
		Category:    pick(record, index, "category"),
		Subcategory: pick(record, index, "subcategory"),
		PriceCents:  parseInt(pick(record, index, "price_cents")),
		OrigCents:   parseInt(pick(record, index, "original_price_cents")),
		Stock:       int(parseInt(pick(record, index, "stock"))),
		Reviews:     int(parseInt(pick(record, index, "reviews"))),
	}
	if v := pick(record, index, "rating"); v != "" {
		row.Rating, _ = strconv.ParseFloat(v, 64)
	}
	if imageURL != "" {
		row.ImageURLs = []string{imageURL}
	}
	return row
}

func parseInt(v string) int64 {
	if v == "" {
		return 0
	}
	n, _ := strconv.ParseInt(v, 10, 64)
	return n
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
