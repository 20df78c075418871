package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	opindex "github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/currency"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
	catalogsvc "github.com/mamadbah2/agrocalc/internal/service/catalog"
)

// CatalogService serves and refreshes the selection catalog.
type CatalogService interface {
	Snapshot() (models.Catalog, *opindex.Index, error)
	Groups() []models.OperationGroup
	Reload(ctx context.Context) error
}

// RateService returns the EUR display rate.
type RateService interface {
	EURRate(ctx context.Context) float64
}

// CatalogHandler exposes the catalog and the display rate.
type CatalogHandler struct {
	catalog CatalogService
	rates   RateService
	logger  *zap.Logger
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(catalog CatalogService, rates RateService, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{catalog: catalog, rates: rates, logger: logger}
}

// Catalog returns active fuels, tractors, crops and operations grouped by main group.
func (h *CatalogHandler) Catalog(c *gin.Context) {
	cat, _, err := h.catalog.Snapshot()
	if err != nil {
		if errors.Is(err, catalogsvc.ErrCatalogUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "operation catalog not loaded"})
			return
		}
		h.logger.Error("failed reading catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to read catalog"})
		return
	}

	c.JSON(http.StatusOK, models.CatalogResponse{
		Fuels:    cat.ActiveFuels(),
		Tractors: cat.Tractors,
		Crops:    cat.Crops,
		Groups:   h.catalog.Groups(),
	})
}

// Reload pulls the catalog from its source again.
func (h *CatalogHandler) Reload(c *gin.Context) {
	if err := h.catalog.Reload(c.Request.Context()); err != nil {
		h.logger.Error("catalog reload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to reload catalog"})
		return
	}

	c.Status(http.StatusNoContent)
}

// EURRate reports the rate currently used for EUR display amounts.
func (h *CatalogHandler) EURRate(c *gin.Context) {
	rate := currency.DefaultEURRate
	if h.rates != nil {
		rate = h.rates.EURRate(c.Request.Context())
	}

	c.JSON(http.StatusOK, models.RateResponse{Currency: string(currency.EUR), Rate: rate})
}
