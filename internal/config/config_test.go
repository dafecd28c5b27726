package config_test

import (
	"testing"

	"github.com/maplecart/storefront-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestEnvTaxSettings(t *testing.T) {
	settings := config.NewEnvTaxSettings()

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TAX_AREA_ADDRESS", "")
		t.Setenv("TAX_SHIPPING_CANADIAN", "")
		t.Setenv("TAX_CLASS", "")
		t.Setenv("TAX_SHIPPING_DETAILS_SEPARATE", "")

		assert.Equal(t, "bill", settings.TaxAreaAddress())
		assert.False(t, settings.TaxShippingEnabled())
		assert.Equal(t, "Shipping", settings.ShippingTaxClass())
		assert.False(t, settings.ShippingDetailsSeparate())
	})

	t.Run("ship address selection is case-insensitive", func(t *testing.T) {
		t.Setenv("TAX_AREA_ADDRESS", "SHIP")

		assert.Equal(t, "ship", settings.TaxAreaAddress())
	})

	t.Run("unrecognized address value falls back to bill", func(t *testing.T) {
		t.Setenv("TAX_AREA_ADDRESS", "warehouse")

		assert.Equal(t, "bill", settings.TaxAreaAddress())
	})

	t.Run("shipping tax enabled", func(t *testing.T) {
		t.Setenv("TAX_SHIPPING_CANADIAN", "true")
		t.Setenv("TAX_CLASS", "Freight")

		assert.True(t, settings.TaxShippingEnabled())
		assert.Equal(t, "Freight", settings.ShippingTaxClass())
	})

	t.Run("invalid bool reads as false", func(t *testing.T) {
		t.Setenv("TAX_SHIPPING_DETAILS_SEPARATE", "maybe")

		assert.False(t, settings.ShippingDetailsSeparate())
	})
}

func TestStaticTaxSettings(t *testing.T) {
	t.Run("zero value uses defaults", func(t *testing.T) {
		settings := config.StaticTaxSettings{}

		assert.Equal(t, "bill", settings.TaxAreaAddress())
		assert.False(t, settings.TaxShippingEnabled())
		assert.Equal(t, "Shipping", settings.ShippingTaxClass())
		assert.False(t, settings.ShippingDetailsSeparate())
	})

	t.Run("explicit values win", func(t *testing.T) {
		settings := config.StaticTaxSettings{
			AreaAddress:      "ship",
			TaxShipping:      true,
			ShippingClass:    "Freight",
			SeparateShipping: true,
		}

		assert.Equal(t, "ship", settings.TaxAreaAddress())
		assert.True(t, settings.TaxShippingEnabled())
		assert.Equal(t, "Freight", settings.ShippingTaxClass())
		assert.True(t, settings.ShippingDetailsSeparate())
	})
}
