package business

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the storefront order view the tax calculator consumes. Address
// fields carry raw checkout strings (ISO2 country codes, state names or
// abbreviations).
type Order struct {
	ID               uuid.UUID       `json:"id"`
	ShipCountry      string          `json:"ship_country"`
	ShipState        string          `json:"ship_state"`
	BillCountry      string          `json:"bill_country"`
	BillState        string          `json:"bill_state"`
	ShippingSubtotal decimal.Decimal `json:"shipping_subtotal"`
	Items            []OrderItem     `json:"items"`
}

// OrderItem is a single order line. TaxClass is the class title; empty means
// the Default class. Subtotal is the quantity-priced amount for the line.
type OrderItem struct {
	ProductName string          `json:"product_name"`
	TaxClass    string          `json:"tax_class"`
	Taxable     bool            `json:"taxable"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Product is the catalog view needed for tax: its class, taxability and unit
// price.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	TaxClass  string          `json:"tax_class"`
	Taxable   bool            `json:"taxable"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// QtyPrice returns the price for the given quantity of the product
func (p Product) QtyPrice(qty decimal.Decimal) decimal.Decimal {
	return p.UnitPrice.Mul(qty)
}

// Customer is an authenticated storefront customer. Either address may be
// absent; absence is a valid state, not an error.
type Customer struct {
	ID              uuid.UUID `json:"id"`
	ShippingAddress *Address  `json:"shipping_address,omitempty"`
	BillingAddress  *Address  `json:"billing_address,omitempty"`
}
