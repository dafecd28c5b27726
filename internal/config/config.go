package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/maplecart/storefront-api/internal/constants"
)

// TaxSettings exposes the store settings consumed by the tax calculator.
// Implementations are injected so services never reach for ambient state.
type TaxSettings interface {
	// TaxAreaAddress reports which order address selects the taxing
	// jurisdiction: "ship" or "bill".
	TaxAreaAddress() string
	// TaxShippingEnabled reports whether shipping charges are taxed.
	TaxShippingEnabled() bool
	// ShippingTaxClass returns the title of the tax class applied to
	// shipping charges.
	ShippingTaxClass() string
	// ShippingDetailsSeparate reports whether shipping tax entries are kept
	// separate from merchandise tax on receipts.
	ShippingDetailsSeparate() bool
}

// EnvTaxSettings reads tax settings from the process environment. The .env
// file, when present, is loaded at startup by the entrypoint.
type EnvTaxSettings struct{}

// NewEnvTaxSettings creates an environment-backed settings provider
func NewEnvTaxSettings() *EnvTaxSettings {
	return &EnvTaxSettings{}
}

func (*EnvTaxSettings) TaxAreaAddress() string {
	if strings.EqualFold(os.Getenv("TAX_AREA_ADDRESS"), constants.ShipAddress) {
		return constants.ShipAddress
	}
	return constants.BillAddress
}

func (*EnvTaxSettings) TaxShippingEnabled() bool {
	return boolEnv("TAX_SHIPPING_CANADIAN")
}

func (*EnvTaxSettings) ShippingTaxClass() string {
	if v := os.Getenv("TAX_CLASS"); v != "" {
		return v
	}
	return constants.ShippingTaxClassTitle
}

func (*EnvTaxSettings) ShippingDetailsSeparate() bool {
	return boolEnv("TAX_SHIPPING_DETAILS_SEPARATE")
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}

// StaticTaxSettings is a fixed-value TaxSettings implementation, used in tests
// and anywhere settings should not come from the environment.
type StaticTaxSettings struct {
	AreaAddress      string
	TaxShipping      bool
	ShippingClass    string
	SeparateShipping bool
}

func (s StaticTaxSettings) TaxAreaAddress() string {
	if s.AreaAddress == "" {
		return constants.BillAddress
	}
	return s.AreaAddress
}

func (s StaticTaxSettings) TaxShippingEnabled() bool {
	return s.TaxShipping
}

func (s StaticTaxSettings) ShippingTaxClass() string {
	if s.ShippingClass == "" {
		return constants.ShippingTaxClassTitle
	}
	return s.ShippingClass
}

func (s StaticTaxSettings) ShippingDetailsSeparate() bool {
	return s.SeparateShipping
}
