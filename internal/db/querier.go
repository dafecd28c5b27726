package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the query interface consumed by services and handlers. It is
// implemented by Queries and mocked in tests.
type Querier interface {
	GetAdminAreaByAbbrev(ctx context.Context, arg GetAdminAreaByAbbrevParams) (AdminArea, error)
	GetAdminAreaByName(ctx context.Context, arg GetAdminAreaByNameParams) (AdminArea, error)
	GetCountryByISO2(ctx context.Context, iso2Code string) (Country, error)
	GetDefaultCountry(ctx context.Context) (Country, error)
	GetStoreConfig(ctx context.Context) (StoreConfig, error)
	GetTaxClassByTitle(ctx context.Context, title string) (TaxClass, error)
	ListTaxClasses(ctx context.Context) ([]TaxClass, error)
	ListTaxRatesByClass(ctx context.Context, taxClassID uuid.UUID) ([]TaxRate, error)
	ListTaxRatesByClassAndCountry(ctx context.Context, arg ListTaxRatesByClassAndCountryParams) ([]TaxRate, error)
	ListTaxRatesByClassAndZone(ctx context.Context, arg ListTaxRatesByClassAndZoneParams) ([]TaxRate, error)
}

var _ Querier = (*Queries)(nil)
