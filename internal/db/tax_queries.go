package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getTaxClassByTitle = `-- name: GetTaxClassByTitle :one
SELECT id, title, description, created_at, updated_at
FROM tax_classes
WHERE LOWER(title) = LOWER($1)
`

// GetTaxClassByTitle looks up a tax class by title, case-insensitively
func (q *Queries) GetTaxClassByTitle(ctx context.Context, title string) (TaxClass, error) {
	row := q.db.QueryRow(ctx, getTaxClassByTitle, title)
	var i TaxClass
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTaxClasses = `-- name: ListTaxClasses :many
SELECT id, title, description, created_at, updated_at
FROM tax_classes
ORDER BY title
`

// ListTaxClasses returns all configured tax classes
func (q *Queries) ListTaxClasses(ctx context.Context) ([]TaxClass, error) {
	rows, err := q.db.Query(ctx, listTaxClasses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TaxClass
	for rows.Next() {
		var i TaxClass
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listTaxRatesByClass = `-- name: ListTaxRatesByClass :many
SELECT id, tax_code, percentage, compound, compound_order, override, tax_class_id, tax_zone_id, tax_country_id, created_at, updated_at
FROM tax_rates
WHERE tax_class_id = $1
ORDER BY tax_code
`

// ListTaxRatesByClass returns every rate record for a tax class regardless of
// jurisdiction
func (q *Queries) ListTaxRatesByClass(ctx context.Context, taxClassID uuid.UUID) ([]TaxRate, error) {
	rows, err := q.db.Query(ctx, listTaxRatesByClass, taxClassID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaxRates(rows)
}

const listTaxRatesByClassAndZone = `-- name: ListTaxRatesByClassAndZone :many
SELECT id, tax_code, percentage, compound, compound_order, override, tax_class_id, tax_zone_id, tax_country_id, created_at, updated_at
FROM tax_rates
WHERE tax_class_id = $1 AND tax_zone_id = $2
ORDER BY tax_code
`

type ListTaxRatesByClassAndZoneParams struct {
	TaxClassID uuid.UUID
	TaxZoneID  pgtype.UUID
}

// ListTaxRatesByClassAndZone returns the rate records matching a tax class
// and an admin area
func (q *Queries) ListTaxRatesByClassAndZone(ctx context.Context, arg ListTaxRatesByClassAndZoneParams) ([]TaxRate, error) {
	rows, err := q.db.Query(ctx, listTaxRatesByClassAndZone, arg.TaxClassID, arg.TaxZoneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaxRates(rows)
}

const listTaxRatesByClassAndCountry = `-- name: ListTaxRatesByClassAndCountry :many
SELECT id, tax_code, percentage, compound, compound_order, override, tax_class_id, tax_zone_id, tax_country_id, created_at, updated_at
FROM tax_rates
WHERE tax_class_id = $1 AND tax_country_id = $2
ORDER BY tax_code
`

type ListTaxRatesByClassAndCountryParams struct {
	TaxClassID   uuid.UUID
	TaxCountryID pgtype.UUID
}

// ListTaxRatesByClassAndCountry returns the rate records matching a tax class
// and a whole country
func (q *Queries) ListTaxRatesByClassAndCountry(ctx context.Context, arg ListTaxRatesByClassAndCountryParams) ([]TaxRate, error) {
	rows, err := q.db.Query(ctx, listTaxRatesByClassAndCountry, arg.TaxClassID, arg.TaxCountryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaxRates(rows)
}

func scanTaxRates(rows pgx.Rows) ([]TaxRate, error) {
	var items []TaxRate
	for rows.Next() {
		var i TaxRate
		if err := rows.Scan(
			&i.ID,
			&i.TaxCode,
			&i.Percentage,
			&i.Compound,
			&i.CompoundOrder,
			&i.Override,
			&i.TaxClassID,
			&i.TaxZoneID,
			&i.TaxCountryID,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
