package db

import (
	"context"

	"github.com/google/uuid"
)

const getCountryByISO2 = `-- name: GetCountryByISO2 :one
SELECT id, iso2_code, name, active
FROM countries
WHERE UPPER(iso2_code) = UPPER($1) AND active
`

// GetCountryByISO2 looks up a country by its ISO 3166-1 alpha-2 code,
// case-insensitively
func (q *Queries) GetCountryByISO2(ctx context.Context, iso2Code string) (Country, error) {
	row := q.db.QueryRow(ctx, getCountryByISO2, iso2Code)
	var i Country
	err := row.Scan(
		&i.ID,
		&i.Iso2Code,
		&i.Name,
		&i.Active,
	)
	return i, err
}

const getAdminAreaByName = `-- name: GetAdminAreaByName :one
SELECT id, name, abbrev, country_id, active
FROM admin_areas
WHERE LOWER(name) = LOWER($1) AND country_id = $2 AND active
`

type GetAdminAreaByNameParams struct {
	Name      string
	CountryID uuid.UUID
}

// GetAdminAreaByName looks up a state or province by full name within a
// country, case-insensitively
func (q *Queries) GetAdminAreaByName(ctx context.Context, arg GetAdminAreaByNameParams) (AdminArea, error) {
	row := q.db.QueryRow(ctx, getAdminAreaByName, arg.Name, arg.CountryID)
	var i AdminArea
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Abbrev,
		&i.CountryID,
		&i.Active,
	)
	return i, err
}

const getAdminAreaByAbbrev = `-- name: GetAdminAreaByAbbrev :one
SELECT id, name, abbrev, country_id, active
FROM admin_areas
WHERE LOWER(abbrev) = LOWER($1) AND country_id = $2 AND active
`

type GetAdminAreaByAbbrevParams struct {
	Abbrev    string
	CountryID uuid.UUID
}

// GetAdminAreaByAbbrev looks up a state or province by abbreviation within a
// country, case-insensitively
func (q *Queries) GetAdminAreaByAbbrev(ctx context.Context, arg GetAdminAreaByAbbrevParams) (AdminArea, error) {
	row := q.db.QueryRow(ctx, getAdminAreaByAbbrev, arg.Abbrev, arg.CountryID)
	var i AdminArea
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Abbrev,
		&i.CountryID,
		&i.Active,
	)
	return i, err
}

const getStoreConfig = `-- name: GetStoreConfig :one
SELECT id, store_name, sales_country_id
FROM store_config
LIMIT 1
`

// GetStoreConfig returns the single-row store configuration
func (q *Queries) GetStoreConfig(ctx context.Context) (StoreConfig, error) {
	row := q.db.QueryRow(ctx, getStoreConfig)
	var i StoreConfig
	err := row.Scan(
		&i.ID,
		&i.StoreName,
		&i.SalesCountryID,
	)
	return i, err
}

const getDefaultCountry = `-- name: GetDefaultCountry :one
SELECT c.id, c.iso2_code, c.name, c.active
FROM countries c
JOIN store_config s ON s.sales_country_id = c.id
LIMIT 1
`

// GetDefaultCountry returns the store's fallback sales country
func (q *Queries) GetDefaultCountry(ctx context.Context) (Country, error) {
	row := q.db.QueryRow(ctx, getDefaultCountry)
	var i Country
	err := row.Scan(
		&i.ID,
		&i.Iso2Code,
		&i.Name,
		&i.Active,
	)
	return i, err
}
