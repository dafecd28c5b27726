package helpers_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/maplecart/storefront-api/internal/helpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericToDecimal(t *testing.T) {
	t.Run("fractional rate", func(t *testing.T) {
		n := helpers.DecimalToNumeric(decimal.RequireFromString("0.0735"))

		d := helpers.NumericToDecimal(n)

		assert.Equal(t, "0.0735", d.String())
	})

	t.Run("invalid numeric is zero", func(t *testing.T) {
		d := helpers.NumericToDecimal(pgtype.Numeric{})

		assert.True(t, d.IsZero())
	})

	t.Run("nan is zero", func(t *testing.T) {
		d := helpers.NumericToDecimal(pgtype.Numeric{NaN: true, Valid: true})

		assert.True(t, d.IsZero())
	})
}

func TestDecimalToNumeric(t *testing.T) {
	n := helpers.DecimalToNumeric(decimal.RequireFromString("13.25"))

	assert.True(t, n.Valid)
	assert.Equal(t, int32(-2), n.Exp)
	assert.Equal(t, "1325", n.Int.String())
}
