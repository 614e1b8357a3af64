package domain

import "time"

// Category is the fixed set of catalog departments.
type Category string

const (
	CategoryMen         Category = "Men"
	CategoryWomen       Category = "Women"
	CategoryKids        Category = "Kids"
	CategoryAccessories Category = "Accessories"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories}

func (c Category) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories:
		return true
	}
	return false
}

// Product is an immutable catalog record. Prices are in the smallest
// currency unit. OriginalPriceCents of 0 means the product is not
// discounted; when set it is >= PriceCents.
type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	PriceCents         int64     `json:"priceCents"`
	OriginalPriceCents int64     `json:"originalPriceCents,omitempty"`
	Category           Category  `json:"category"`
	Subcategory        string    `json:"subcategory,omitempty"`
	Stock              int       `json:"stock"`
	Rating             float64   `json:"rating"`
	Reviews            int       `json:"reviews"`
	Images             []string  `json:"images,omitempty"`
	IsNew              bool      `json:"isNew,omitempty"`
	IsTrending         bool      `json:"isTrending,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
