package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maplecart/storefront-api/internal/constants"
	"github.com/maplecart/storefront-api/internal/db"
	"github.com/maplecart/storefront-api/internal/helpers"
	"github.com/maplecart/storefront-api/internal/services"
	"github.com/maplecart/storefront-api/internal/types/api/params"
	"github.com/maplecart/storefront-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// TaxHandler handles tax calculation operations
type TaxHandler struct {
	common *CommonServices
}

// NewTaxHandler creates a new TaxHandler instance
func NewTaxHandler(common *CommonServices) *TaxHandler {
	return &TaxHandler{common: common}
}

// QuoteTaxRequest represents the request body for a single-amount tax quote
type QuoteTaxRequest struct {
	TaxClass string          `json:"tax_class"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Country  string          `json:"country"`
	State    string          `json:"state"`
}

// OrderItemRequest represents one order line in an order tax request
type OrderItemRequest struct {
	ProductName string          `json:"product_name"`
	TaxClass    string          `json:"tax_class"`
	Taxable     bool            `json:"taxable"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderTaxRequest represents the request body for computing tax on an order
type OrderTaxRequest struct {
	OrderID          string             `json:"order_id"`
	ShipCountry      string             `json:"ship_country"`
	ShipState        string             `json:"ship_state"`
	BillCountry      string             `json:"bill_country"`
	BillState        string             `json:"bill_state"`
	ShippingSubtotal decimal.Decimal    `json:"shipping_subtotal"`
	Items            []OrderItemRequest `json:"items" binding:"required"`
}

// TaxClassResponse represents the standardized API response for tax classes
type TaxClassResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

// TaxRateResponse represents the standardized API response for tax rates
type TaxRateResponse struct {
	Object        string          `json:"object"`
	TaxCode       string          `json:"tax_code"`
	Percentage    decimal.Decimal `json:"percentage"`
	Compound      bool            `json:"compound"`
	CompoundOrder int32           `json:"compound_order"`
	Override      bool            `json:"override"`
}

// QuoteTax godoc
// @Summary Quote tax for an amount
// @Description Calculates tax on a single amount for a tax class and location
// @Tags tax
// @Accept json
// @Produce json
// @Param request body QuoteTaxRequest true "Quote parameters"
// @Success 200 {object} responses.TaxQuoteResult
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Tax class not configured"
// @Router /tax/quote [post]
func (h *TaxHandler) QuoteTax(c *gin.Context) {
	var req QuoteTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.common.tax.Quote(c.Request.Context(), params.TaxQuoteParams{
		TaxClass: req.TaxClass,
		Amount:   req.Amount,
		Country:  req.Country,
		State:    req.State,
	})
	if err != nil {
		handleDBError(c, err, "Tax class not found")
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// ProcessOrderTax godoc
// @Summary Compute tax for an order
// @Description Calculates total tax and per-code receipt details for an order, including shipping
// @Tags tax
// @Accept json
// @Produce json
// @Param request body OrderTaxRequest true "Order to tax"
// @Success 200 {object} responses.OrderTaxResult
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Tax class not configured"
// @Router /tax/order [post]
func (h *TaxHandler) ProcessOrderTax(c *gin.Context) {
	var req OrderTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	orderID := uuid.Nil
	if req.OrderID != "" {
		parsed, err := uuid.Parse(req.OrderID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid order ID", err)
			return
		}
		orderID = parsed
	}

	order := business.Order{
		ID:               orderID,
		ShipCountry:      req.ShipCountry,
		ShipState:        req.ShipState,
		BillCountry:      req.BillCountry,
		BillState:        req.BillState,
		ShippingSubtotal: req.ShippingSubtotal,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, business.OrderItem{
			ProductName: item.ProductName,
			TaxClass:    item.TaxClass,
			Taxable:     item.Taxable,
			Subtotal:    item.Subtotal,
		})
	}

	result, err := h.common.tax.ProcessOrder(c.Request.Context(), &order)
	if err != nil {
		handleDBError(c, err, "Tax class not found")
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// ListTaxClasses godoc
// @Summary List tax classes
// @Description Lists all configured tax classes
// @Tags tax
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tax classes"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tax/classes [get]
func (h *TaxHandler) ListTaxClasses(c *gin.Context) {
	classes, err := h.common.db.ListTaxClasses(c.Request.Context())
	if err != nil {
		handleDBError(c, err, "Tax classes not found")
		return
	}

	items := make([]TaxClassResponse, 0, len(classes))
	for _, tc := range classes {
		items = append(items, toTaxClassResponse(tc))
	}

	sendList(c, items)
}

// ListTaxRates godoc
// @Summary List applicable tax rates
// @Description Lists the rate records applicable to a tax class in a location
// @Tags tax
// @Accept json
// @Produce json
// @Param class query string false "Tax class title (defaults to the Default class)"
// @Param country query string false "ISO2 country code (defaults to the store country)"
// @Param state query string false "State or province name or abbreviation"
// @Param all query bool false "List every rate for the class regardless of location"
// @Success 200 {object} map[string]interface{} "List of tax rates"
// @Failure 500 {object} ErrorResponse "Tax class not configured"
// @Router /tax/rates [get]
func (h *TaxHandler) ListTaxRates(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("all") == "true" {
		h.listAllTaxRates(c)
		return
	}

	jur := h.common.tax.ResolveLocation(ctx, c.Query("state"), c.Query("country"))
	rates, err := h.common.tax.RatesFor(ctx, services.ByClassName(c.Query("class")), jur)
	if err != nil {
		handleDBError(c, err, "Tax class not found")
		return
	}

	items := make([]TaxRateResponse, 0, len(rates))
	for _, r := range rates {
		items = append(items, TaxRateResponse{
			Object:        "tax_rate",
			TaxCode:       r.TaxCode,
			Percentage:    r.Percentage,
			Compound:      r.Compound,
			CompoundOrder: r.CompoundOrder,
			Override:      r.Override,
		})
	}

	sendList(c, items)
}

// listAllTaxRates lists every rate configured for a class, ignoring location
func (h *TaxHandler) listAllTaxRates(c *gin.Context) {
	ctx := c.Request.Context()

	title := c.Query("class")
	if title == "" {
		title = constants.DefaultTaxClassTitle
	}

	taxClass, err := h.common.db.GetTaxClassByTitle(ctx, title)
	if err != nil {
		handleDBError(c, err, "Tax class not found")
		return
	}

	rows, err := h.common.db.ListTaxRatesByClass(ctx, taxClass.ID)
	if err != nil {
		handleDBError(c, err, "Tax rates not found")
		return
	}

	items := make([]TaxRateResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, TaxRateResponse{
			Object:        "tax_rate",
			TaxCode:       row.TaxCode,
			Percentage:    helpers.NumericToDecimal(row.Percentage),
			Compound:      row.Compound,
			CompoundOrder: row.CompoundOrder,
			Override:      row.Override,
		})
	}

	sendList(c, items)
}

func toTaxClassResponse(tc db.TaxClass) TaxClassResponse {
	resp := TaxClassResponse{
		ID:     tc.ID.String(),
		Object: "tax_class",
		Title:  tc.Title,
	}
	if tc.Description.Valid {
		resp.Description = tc.Description.String
	}
	if tc.CreatedAt.Valid {
		resp.CreatedAt = tc.CreatedAt.Time.Unix()
	}
	return resp
}
