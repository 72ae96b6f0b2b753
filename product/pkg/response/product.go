package response

import (
	"github.com/shopspring/decimal"
)

// Money is a string-encoded decimal on the wire, always rendered with two
// decimal places so "10.00" stays "10.00" instead of collapsing to "10".
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

// Product is the catalog snapshot shape the client decodes.
type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Price        Money  `json:"price"`
	Manufacturer string `json:"manufacturer"`
	ImageUrl     string `json:"image_url"`
	Category     string `json:"category"`
	Description  string `json:"description"`
}
