package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the domain entity.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Categories is the closed set of product categories.
var Categories = []string{
	"men",
	"women",
	"accessories",
	"kids",
	"grocery",
	"electronics",
	"others",
}

// NormalizeCategory maps unrecognized input to "others".
// Deliberate policy: category is display taxonomy, not access control,
// so loose input degrades instead of erroring.
func NormalizeCategory(category string) string {
	for _, c := range Categories {
		if category == c {
			return c
		}
	}
	return "others"
}

// ValidCategory reports whether the value is one of the known categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if category == c {
			return true
		}
	}
	return false
}
