package business

import (
	"github.com/shopspring/decimal"
)

// TaxRate is a single applicable rate record in reduced form. Percentage
// holds the fractional rate (0.05 for 5%). Compound rates apply on top of
// everything accumulated before them, ordered by CompoundOrder. An Override
// rate replaces all other applicable rates.
type TaxRate struct {
	TaxCode       string          `json:"tax_code"`
	Percentage    decimal.Decimal `json:"percentage"`
	Compound      bool            `json:"compound"`
	CompoundOrder int32           `json:"compound_order"`
	Override      bool            `json:"override"`
}

// RateLine is one receipt breakdown entry: a tax code and its effective
// fractional percentage.
type RateLine struct {
	TaxCode    string          `json:"tax_code"`
	Percentage decimal.Decimal `json:"percentage"`
}

// RateResult is the reduction of a set of rate records into a single
// effective rate plus a per-code breakdown. The breakdown percentages sum
// exactly to TotalRate.
type RateResult struct {
	TotalRate decimal.Decimal `json:"total_rate"`
	Breakdown []RateLine      `json:"breakdown"`
}

// TaxDetails maps tax-code labels to amounts for receipt rendering
type TaxDetails map[string]decimal.Decimal
