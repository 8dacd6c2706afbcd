package cart

import "github.com/shopspring/decimal"

// Entry is one product line in a session cart. Price is snapshotted
// from the catalog when the item is added, not re-fetched at checkout.
type Entry struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart maps product id (string form of the numeric id) to an entry.
type Cart map[string]Entry

// Quantity bounds enforced on every add.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// ClampQuantity forces a requested quantity into [MinQuantity, MaxQuantity].
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

// Total reduces the cart to a single decimal amount.
// Empty cart totals zero.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c {
		line := entry.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		total = total.Add(line)
	}
	return total
}

// MinorUnits converts a decimal amount to integer paise, rounding
// to the nearest unit.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
