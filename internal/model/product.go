package model

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Category groups fragrances in the catalogue.
type Category string

const (
	CategoryMen    Category = "men"
	CategoryWomen  Category = "women"
	CategoryUnisex Category = "unisex"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryUnisex:
		return true
	}
	return false
}

// Size is a purchasable variant of a product, e.g. "50ml".
type Size struct {
	Label string          `json:"size"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// Product represents a fragrance in the catalogue.
type Product struct {
	ID            string    `json:"id" db:"id"`
	Slug          string    `json:"slug" db:"slug"`
	NameEn        string    `json:"nameEn" db:"name_en"`
	NameAr        string    `json:"nameAr" db:"name_ar"`
	Category      Category  `json:"category" db:"category"`
	DescriptionEn string    `json:"description" db:"description_en"`
	DescriptionAr string    `json:"descriptionAr,omitempty" db:"description_ar"`
	TopNotes      []string  `json:"topNotes" db:"top_notes"`
	HeartNotes    []string  `json:"heartNotes" db:"heart_notes"`
	BaseNotes     []string  `json:"baseNotes" db:"base_notes"`
	Sizes         []Size    `json:"sizes" db:"sizes"`
	Images        []string  `json:"images" db:"images"`
	Featured      bool      `json:"featured" db:"is_featured"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// FindSize returns the size variant with the given label.
func (p *Product) FindSize(label string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.Label == label {
			return s, true
		}
	}
	return Size{}, false
}

// Name returns the display name for the language tag ("en" or "ar").
func (p *Product) Name(lang string) string {
	if lang == "ar" && p.NameAr != "" {
		return p.NameAr
	}
	return p.NameEn
}

// Description returns the description for the language tag, falling back to English.
func (p *Product) Description(lang string) string {
	if lang == "ar" && p.DescriptionAr != "" {
		return p.DescriptionAr
	}
	return p.DescriptionEn
}

// Validate checks the catalogue invariants for a single product.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("product %s: slug %q is not URL-safe", p.ID, p.Slug)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("product %s: at least one size is required", p.ID)
	}

	seen := make(map[string]struct{}, len(p.Sizes))
	for _, s := range p.Sizes {
		if s.Label == "" {
			return fmt.Errorf("product %s: size label is required", p.ID)
		}
		if _, dup := seen[s.Label]; dup {
			return fmt.Errorf("product %s: duplicate size %q", p.ID, s.Label)
		}
		seen[s.Label] = struct{}{}

		if s.Price.IsNegative() {
			return fmt.Errorf("product %s: size %q has a negative price", p.ID, s.Label)
		}
		if s.Stock < 0 {
			return fmt.Errorf("product %s: size %q has negative stock", p.ID, s.Label)
		}
	}

	return nil
}
