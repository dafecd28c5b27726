package services

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/maplecart/storefront-api/internal/config"
	"github.com/maplecart/storefront-api/internal/constants"
	"github.com/maplecart/storefront-api/internal/db"
	"github.com/maplecart/storefront-api/internal/helpers"
	"github.com/maplecart/storefront-api/internal/logger"
	"github.com/maplecart/storefront-api/internal/types/api/params"
	"github.com/maplecart/storefront-api/internal/types/api/responses"
	"github.com/maplecart/storefront-api/internal/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrTaxClassNotConfigured indicates a named tax class has no row in the
// directory. Rate lookups for a class that should exist treat this as a
// configuration error, not an empty result.
var ErrTaxClassNotConfigured = errors.New("tax class not configured")

// TaxService handles jurisdiction resolution, rate lookup and tax aggregation
type TaxService struct {
	queries  db.Querier
	settings config.TaxSettings
	logger   *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(queries db.Querier, settings config.TaxSettings) *TaxService {
	return &TaxService{
		queries:  queries,
		settings: settings,
		logger:   logger.Log,
	}
}

// TaxClassSelector names the tax class a rate lookup targets: either an
// already-loaded class row or a class title to resolve. An empty title means
// the Default class.
type TaxClassSelector struct {
	class *db.TaxClass
	name  string
}

// ByClass selects an already-loaded tax class row
func ByClass(tc db.TaxClass) TaxClassSelector {
	return TaxClassSelector{class: &tc}
}

// ByClassName selects a tax class by title; empty selects the Default class
func ByClassName(name string) TaxClassSelector {
	if name == "" {
		name = constants.DefaultTaxClassTitle
	}
	return TaxClassSelector{name: name}
}

// Jurisdiction is the resolved taxing location: an optional administrative
// area within an optional country. Either pointer may be nil; nil simply
// narrows which rate rows can match.
type Jurisdiction struct {
	Area    *db.AdminArea
	Country *db.Country
}

// Label renders the jurisdiction for responses and logs
func (j Jurisdiction) Label() string {
	switch {
	case j.Area != nil && j.Country != nil:
		return j.Area.Name + ", " + j.Country.Iso2Code
	case j.Country != nil:
		return j.Country.Iso2Code
	default:
		return ""
	}
}

// ResolveJurisdiction determines the taxing location for a calculation. The
// order's addresses win when an order is present; otherwise the customer's
// address for the configured side (ship or bill) is used. Unresolvable
// geography yields an empty jurisdiction rather than an error.
func (s *TaxService) ResolveJurisdiction(ctx context.Context, order *business.Order, customer *business.Customer) Jurisdiction {
	byShip := s.settings.TaxAreaAddress() == constants.ShipAddress

	if order != nil {
		if byShip {
			return s.ResolveLocation(ctx, order.ShipState, order.ShipCountry)
		}
		return s.ResolveLocation(ctx, order.BillState, order.BillCountry)
	}

	if customer != nil {
		var addr *business.Address
		if byShip {
			addr = customer.ShippingAddress
		} else {
			addr = customer.BillingAddress
		}
		if addr != nil {
			return s.ResolveLocation(ctx, addr.State, addr.Country)
		}
	}

	return s.ResolveLocation(ctx, "", "")
}

// ResolveLocation resolves raw area and country strings against the geography
// directory. Lookups are case-insensitive; the area is matched by name first,
// then abbreviation. An empty or unknown country falls back to the store's
// sales country. Misses are logged and leave the corresponding field nil.
func (s *TaxService) ResolveLocation(ctx context.Context, area, country string) Jurisdiction {
	var jur Jurisdiction

	if country != "" {
		c, err := s.queries.GetCountryByISO2(ctx, country)
		if err != nil {
			if errors.Cause(err) == pgx.ErrNoRows {
				s.logger.Warn("Country not found in geography directory",
					zap.String("country", country))
			} else {
				s.logger.Error("Country lookup failed",
					zap.String("country", country),
					zap.Error(err))
			}
		} else {
			jur.Country = &c
		}
	}

	if jur.Country == nil {
		c, err := s.queries.GetDefaultCountry(ctx)
		if err != nil {
			s.logger.Error("Default country lookup failed", zap.Error(err))
		} else {
			jur.Country = &c
		}
	}

	if area != "" && jur.Country != nil {
		a, err := s.queries.GetAdminAreaByName(ctx, db.GetAdminAreaByNameParams{
			Name:      area,
			CountryID: jur.Country.ID,
		})
		if err != nil {
			a, err = s.queries.GetAdminAreaByAbbrev(ctx, db.GetAdminAreaByAbbrevParams{
				Abbrev:    area,
				CountryID: jur.Country.ID,
			})
		}
		if err != nil {
			s.logger.Info("Admin area not found, applying country-level rates only",
				zap.String("area", area),
				zap.String("country", jur.Country.Iso2Code))
		} else {
			jur.Area = &a
		}
	}

	return jur
}

// RatesFor returns every rate record applicable to the selected tax class in
// the given jurisdiction: rates bound to the resolved admin area plus rates
// bound country-wide. A selector naming a class with no directory row returns
// ErrTaxClassNotConfigured.
func (s *TaxService) RatesFor(ctx context.Context, sel TaxClassSelector, jur Jurisdiction) ([]business.TaxRate, error) {
	taxClass, err := s.resolveClass(ctx, sel)
	if err != nil {
		return nil, err
	}

	var rows []db.TaxRate

	if jur.Area != nil {
		zoneRows, err := s.queries.ListTaxRatesByClassAndZone(ctx, db.ListTaxRatesByClassAndZoneParams{
			TaxClassID: taxClass.ID,
			TaxZoneID:  helpers.UUIDToNullableUUID(jur.Area.ID),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "listing zone rates for class %q", taxClass.Title)
		}
		rows = append(rows, zoneRows...)
	}

	if jur.Country != nil {
		countryRows, err := s.queries.ListTaxRatesByClassAndCountry(ctx, db.ListTaxRatesByClassAndCountryParams{
			TaxClassID:   taxClass.ID,
			TaxCountryID: helpers.UUIDToNullableUUID(jur.Country.ID),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "listing country rates for class %q", taxClass.Title)
		}
		rows = append(rows, countryRows...)
	}

	rates := make([]business.TaxRate, 0, len(rows))
	for _, row := range rows {
		rates = append(rates, business.TaxRate{
			TaxCode:       row.TaxCode,
			Percentage:    helpers.NumericToDecimal(row.Percentage),
			Compound:      row.Compound,
			CompoundOrder: row.CompoundOrder,
			Override:      row.Override,
		})
	}

	s.logger.Debug("Resolved applicable tax rates",
		zap.String("tax_class", taxClass.Title),
		zap.String("jurisdiction", jur.Label()),
		zap.Int("count", len(rates)))

	return rates, nil
}

func (s *TaxService) resolveClass(ctx context.Context, sel TaxClassSelector) (db.TaxClass, error) {
	if sel.class != nil {
		return *sel.class, nil
	}

	name := sel.name
	if name == "" {
		name = constants.DefaultTaxClassTitle
	}

	taxClass, err := s.queries.GetTaxClassByTitle(ctx, name)
	if err != nil {
		if errors.Cause(err) == pgx.ErrNoRows {
			return db.TaxClass{}, errors.Wrapf(ErrTaxClassNotConfigured, "%q", name)
		}
		return db.TaxClass{}, errors.Wrapf(err, "looking up tax class %q", name)
	}
	return taxClass, nil
}

// ReduceRates collapses a set of applicable rate records into a single
// effective rate with a per-code breakdown. An override rate short-circuits
// everything else. Otherwise non-compound rates are summed in input order,
// then compound rates apply in CompoundOrder, each scaling with the total
// accumulated so far. No rates reduces to zero.
func ReduceRates(rates []business.TaxRate) business.RateResult {
	result := business.RateResult{
		TotalRate: decimal.Zero,
		Breakdown: []business.RateLine{},
	}

	var regular, compound []business.TaxRate
	for _, r := range rates {
		if r.Override {
			return business.RateResult{
				TotalRate: r.Percentage,
				Breakdown: []business.RateLine{{TaxCode: r.TaxCode, Percentage: r.Percentage}},
			}
		}
		if r.Compound {
			compound = append(compound, r)
		} else {
			regular = append(regular, r)
		}
	}

	for _, r := range regular {
		result.TotalRate = result.TotalRate.Add(r.Percentage)
		result.Breakdown = append(result.Breakdown, business.RateLine{
			TaxCode:    r.TaxCode,
			Percentage: r.Percentage,
		})
	}

	sort.SliceStable(compound, func(i, j int) bool {
		return compound[i].CompoundOrder < compound[j].CompoundOrder
	})

	for _, r := range compound {
		effective := r.Percentage.Add(r.Percentage.Mul(result.TotalRate))
		result.TotalRate = result.TotalRate.Add(effective)
		result.Breakdown = append(result.Breakdown, business.RateLine{
			TaxCode:    r.TaxCode,
			Percentage: effective,
		})
	}

	return result
}

// RateDetail returns the effective rate and per-code breakdown for a tax
// class in a jurisdiction
func (s *TaxService) RateDetail(ctx context.Context, sel TaxClassSelector, jur Jurisdiction) (business.RateResult, error) {
	rates, err := s.RatesFor(ctx, sel, jur)
	if err != nil {
		return business.RateResult{}, err
	}
	return ReduceRates(rates), nil
}

// Rate returns the effective fractional rate for a tax class in a
// jurisdiction
func (s *TaxService) Rate(ctx context.Context, sel TaxClassSelector, jur Jurisdiction) (decimal.Decimal, error) {
	detail, err := s.RateDetail(ctx, sel, jur)
	if err != nil {
		return decimal.Zero, err
	}
	return detail.TotalRate, nil
}

// Percent returns the effective rate scaled to a percentage (0.12 -> 12)
func (s *TaxService) Percent(ctx context.Context, sel TaxClassSelector, jur Jurisdiction) (decimal.Decimal, error) {
	rate, err := s.Rate(ctx, sel, jur)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Mul(decimal.NewFromInt(100)), nil
}

// ByPrice computes tax on a bare amount for the given tax class
func (s *TaxService) ByPrice(ctx context.Context, sel TaxClassSelector, price decimal.Decimal, jur Jurisdiction) (decimal.Decimal, error) {
	rate, err := s.Rate(ctx, sel, jur)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(rate), nil
}

// ByProduct computes tax on a quantity of a catalog product using the
// product's own tax class
func (s *TaxService) ByProduct(ctx context.Context, product business.Product, qty decimal.Decimal, jur Jurisdiction) (decimal.Decimal, error) {
	return s.ByPrice(ctx, ByClassName(product.TaxClass), product.QtyPrice(qty), jur)
}

// ByOrderItem computes tax on a single order line. Non-taxable lines are
// zero.
func (s *TaxService) ByOrderItem(ctx context.Context, item business.OrderItem, jur Jurisdiction) (decimal.Decimal, error) {
	if !item.Taxable {
		return decimal.Zero, nil
	}
	return s.ByPrice(ctx, ByClassName(item.TaxClass), item.Subtotal, jur)
}

// ShippingTax computes tax on a shipping subtotal. Returns zero when shipping
// tax is disabled, the subtotal is zero, or the configured shipping class is
// missing from the directory (logged, never fatal).
func (s *TaxService) ShippingTax(ctx context.Context, subtotal decimal.Decimal, jur Jurisdiction) (decimal.Decimal, error) {
	details, err := s.ShippingTaxDetail(ctx, subtotal, jur)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range details {
		total = total.Add(amount)
	}
	return total, nil
}

// ShippingTaxDetail computes per-code shipping tax amounts. Each applicable
// code contributes its effective rate times the shipping subtotal.
func (s *TaxService) ShippingTaxDetail(ctx context.Context, subtotal decimal.Decimal, jur Jurisdiction) (business.TaxDetails, error) {
	details := business.TaxDetails{}

	if !s.settings.TaxShippingEnabled() || subtotal.IsZero() {
		return details, nil
	}

	detail, err := s.RateDetail(ctx, ByClassName(s.settings.ShippingTaxClass()), jur)
	if err != nil {
		if errors.Cause(err) == ErrTaxClassNotConfigured {
			s.logger.Error("Shipping tax class does not exist",
				zap.String("tax_class", s.settings.ShippingTaxClass()))
			return details, nil
		}
		return nil, err
	}

	for _, line := range detail.Breakdown {
		details[line.TaxCode] = details[line.TaxCode].Add(subtotal.Mul(line.Percentage))
	}

	return details, nil
}

// ProcessOrder computes the total tax for an order plus a per-code detail map
// for the receipt. Shipping tax is merged into the matching item codes, or
// listed under prefixed labels when configured to stay separate.
func (s *TaxService) ProcessOrder(ctx context.Context, order *business.Order) (*responses.OrderTaxResult, error) {
	jur := s.ResolveJurisdiction(ctx, order, nil)

	s.logger.Info("Processing order tax",
		zap.String("order_id", order.ID.String()),
		zap.String("jurisdiction", jur.Label()),
		zap.Int("item_count", len(order.Items)))

	totalTax := decimal.Zero
	details := business.TaxDetails{}

	for _, item := range order.Items {
		if !item.Taxable {
			continue
		}

		detail, err := s.RateDetail(ctx, ByClassName(item.TaxClass), jur)
		if err != nil {
			return nil, err
		}

		for _, line := range detail.Breakdown {
			amount := item.Subtotal.Mul(line.Percentage)
			details[line.TaxCode] = details[line.TaxCode].Add(amount)
			totalTax = totalTax.Add(amount)
		}
	}

	shipDetails, err := s.ShippingTaxDetail(ctx, order.ShippingSubtotal, jur)
	if err != nil {
		return nil, err
	}

	separate := s.settings.ShippingDetailsSeparate()
	for taxCode, amount := range shipDetails {
		if separate {
			details[constants.ShippingDetailPrefix+taxCode] = details[constants.ShippingDetailPrefix+taxCode].Add(amount)
		} else {
			details[taxCode] = details[taxCode].Add(amount)
		}
		totalTax = totalTax.Add(amount)
	}

	rounded := business.TaxDetails{}
	for taxCode, amount := range details {
		rounded[taxCode] = amount.Round(2)
	}

	return &responses.OrderTaxResult{
		OrderID:      order.ID.String(),
		Jurisdiction: jur.Label(),
		TotalTax:     totalTax.Round(2),
		Details:      rounded,
		CalculatedAt: time.Now(),
	}, nil
}

// Quote computes tax on a single amount for an explicit location
func (s *TaxService) Quote(ctx context.Context, p params.TaxQuoteParams) (*responses.TaxQuoteResult, error) {
	jur := s.ResolveLocation(ctx, p.State, p.Country)

	detail, err := s.RateDetail(ctx, ByClassName(p.TaxClass), jur)
	if err != nil {
		return nil, err
	}

	taxClass := p.TaxClass
	if taxClass == "" {
		taxClass = constants.DefaultTaxClassTitle
	}

	breakdown := make([]responses.TaxBreakdownLine, 0, len(detail.Breakdown))
	for _, line := range detail.Breakdown {
		breakdown = append(breakdown, responses.TaxBreakdownLine{
			TaxCode:    line.TaxCode,
			Percentage: line.Percentage,
			Amount:     p.Amount.Mul(line.Percentage).Round(2),
		})
	}

	taxAmount := p.Amount.Mul(detail.TotalRate).Round(2)

	return &responses.TaxQuoteResult{
		TaxClass:     taxClass,
		Jurisdiction: jur.Label(),
		Rate:         detail.TotalRate,
		Percent:      detail.TotalRate.Mul(decimal.NewFromInt(100)),
		Subtotal:     p.Amount.Round(2),
		TaxAmount:    taxAmount,
		TotalAmount:  p.Amount.Add(taxAmount).Round(2),
		Breakdown:    breakdown,
		CalculatedAt: time.Now(),
	}, nil
}
