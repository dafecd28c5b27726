package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maplecart/storefront-api/internal/config"
	"github.com/maplecart/storefront-api/internal/db"
	"github.com/maplecart/storefront-api/internal/mocks"
	"github.com/maplecart/storefront-api/internal/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupStoreRouter(mockQuerier *mocks.MockQuerier) *gin.Engine {
	settings := config.StaticTaxSettings{}
	common := NewCommonServices(mockQuerier, services.NewTaxService(mockQuerier, settings), settings)
	storeHandler := NewStoreHandler(common)

	router := gin.New()
	router.GET("/api/v1/store", storeHandler.GetStoreConfig)
	return router
}

func TestGetStoreConfig(t *testing.T) {
	t.Run("store with sales country", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := db.StoreConfig{ID: uuid.New(), StoreName: "Maple Cart", SalesCountryID: uuid.New()}
		canada := db.Country{ID: cfg.SalesCountryID, Iso2Code: "CA", Name: "Canada", Active: true}

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().GetStoreConfig(gomock.Any()).Return(cfg, nil)
		mockQuerier.EXPECT().GetDefaultCountry(gomock.Any()).Return(canada, nil)

		router := setupStoreRouter(mockQuerier)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/store", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result StoreConfigResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "store", result.Object)
		assert.Equal(t, "Maple Cart", result.StoreName)
		assert.Equal(t, "CA", result.SalesCountry)
	})

	t.Run("store not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().GetStoreConfig(gomock.Any()).Return(db.StoreConfig{}, pgx.ErrNoRows)

		router := setupStoreRouter(mockQuerier)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/store", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
