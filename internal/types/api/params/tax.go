package params

import (
	"github.com/shopspring/decimal"
)

// TaxQuoteParams contains parameters for a single-amount tax quote
type TaxQuoteParams struct {
	TaxClass string // class title; empty means the Default class
	Amount   decimal.Decimal
	Country  string // raw ISO2 code; empty falls back to the store country
	State    string // raw state/province name or abbreviation
}
