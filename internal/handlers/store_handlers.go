package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreHandler handles store configuration operations
type StoreHandler struct {
	common *CommonServices
}

// NewStoreHandler creates a new StoreHandler instance
func NewStoreHandler(common *CommonServices) *StoreHandler {
	return &StoreHandler{common: common}
}

// StoreConfigResponse represents the standardized API response for store configuration
type StoreConfigResponse struct {
	ID           string `json:"id"`
	Object       string `json:"object"`
	StoreName    string `json:"store_name"`
	SalesCountry string `json:"sales_country"`
}

// GetStoreConfig godoc
// @Summary Get store configuration
// @Description Returns the store name and the sales country used as the tax fallback
// @Tags store
// @Accept json
// @Produce json
// @Success 200 {object} StoreConfigResponse
// @Failure 404 {object} ErrorResponse "Store not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /store [get]
func (h *StoreHandler) GetStoreConfig(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.common.db.GetStoreConfig(ctx)
	if err != nil {
		handleDBError(c, err, "Store not configured")
		return
	}

	resp := StoreConfigResponse{
		ID:        cfg.ID.String(),
		Object:    "store",
		StoreName: cfg.StoreName,
	}

	country, err := h.common.db.GetDefaultCountry(ctx)
	if err != nil {
		handleDBError(c, err, "Sales country not configured")
		return
	}
	resp.SalesCountry = country.Iso2Code

	sendSuccess(c, http.StatusOK, resp)
}
