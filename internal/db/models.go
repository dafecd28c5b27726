package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// TaxClass is a category assigned to products or shipping charges that
// determines which tax rate rules apply.
type TaxClass struct {
	ID          uuid.UUID
	Title       string
	Description pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// TaxRate is a single externally managed rate record. Percentage holds the
// fractional rate (0.05 for 5%). A rate applies either to an admin area
// (tax_zone_id) or to a whole country (tax_country_id).
type TaxRate struct {
	ID            uuid.UUID
	TaxCode       string
	Percentage    pgtype.Numeric
	Compound      bool
	CompoundOrder int32
	Override      bool
	TaxClassID    uuid.UUID
	TaxZoneID     pgtype.UUID
	TaxCountryID  pgtype.UUID
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

// Country is a row of the geography directory
type Country struct {
	ID       uuid.UUID
	Iso2Code string
	Name     string
	Active   bool
}

// AdminArea is a state or province within a country
type AdminArea struct {
	ID        uuid.UUID
	Name      string
	Abbrev    pgtype.Text
	CountryID uuid.UUID
	Active    bool
}

// StoreConfig holds the single-row store configuration
type StoreConfig struct {
	ID             uuid.UUID
	StoreName      string
	SalesCountryID uuid.UUID
}
