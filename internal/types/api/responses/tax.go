package responses

import (
	"time"

	"github.com/maplecart/storefront-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// TaxBreakdownLine is one per-code entry of a quote
type TaxBreakdownLine struct {
	TaxCode    string          `json:"tax_code"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// TaxQuoteResult contains the calculated tax for a single amount. Amounts are
// rounded to 2 places for presentation; percentages are exact.
type TaxQuoteResult struct {
	TaxClass     string             `json:"tax_class"`
	Jurisdiction string             `json:"jurisdiction,omitempty"`
	Rate         decimal.Decimal    `json:"rate"`
	Percent      decimal.Decimal    `json:"percent"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	TaxAmount    decimal.Decimal    `json:"tax_amount"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Breakdown    []TaxBreakdownLine `json:"breakdown"`
	CalculatedAt time.Time          `json:"calculated_at"`
}

// OrderTaxResult contains the aggregated tax for an order: the total and the
// per-code detail map consumed by receipt rendering.
type OrderTaxResult struct {
	OrderID      string              `json:"order_id"`
	Jurisdiction string              `json:"jurisdiction,omitempty"`
	TotalTax     decimal.Decimal     `json:"total_tax"`
	Details      business.TaxDetails `json:"details"`
	CalculatedAt time.Time           `json:"calculated_at"`
}
