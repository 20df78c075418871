package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/currency"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
	"github.com/mamadbah2/agrocalc/internal/service/calculation"
	catalogsvc "github.com/mamadbah2/agrocalc/internal/service/catalog"
)

// CalculationService is the subset of the calculation service the HTTP layer needs.
type CalculationService interface {
	Validate(parcel models.Parcel) models.ValidationResponse
	Calculate(ctx context.Context, req models.CalculateRequest) (models.Report, error)
	Summary(ctx context.Context, req models.CalculateRequest) (string, error)
	RecentReports(ctx context.Context, limit int64) ([]models.Report, error)
}

// CalculationHandler exposes parcel validation, calculation and the report archive.
type CalculationHandler struct {
	svc    CalculationService
	logger *zap.Logger
}

// NewCalculationHandler constructs the HTTP handler adapter.
func NewCalculationHandler(svc CalculationService, logger *zap.Logger) *CalculationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculationHandler{svc: svc, logger: logger}
}

// Validate lists the reasons a single parcel cannot be calculated yet.
func (h *CalculationHandler) Validate(c *gin.Context) {
	var parcel models.Parcel
	if err := c.ShouldBindJSON(&parcel); err != nil {
		h.logger.Warn("invalid parcel payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.svc.Validate(parcel))
}

// Calculate evaluates the posted parcels and returns the report.
func (h *CalculationHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid calculation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.svc.Calculate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Summary evaluates the posted parcels and returns the plain-text summary.
func (h *CalculationHandler) Summary(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid calculation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text, err := h.svc.Summary(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.String(http.StatusOK, text)
}

// Reports lists archived calculation reports, newest first.
func (h *CalculationHandler) Reports(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	reports, err := h.svc.RecentReports(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed listing reports", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *CalculationHandler) writeError(c *gin.Context, err error) {
	var verr *calculation.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "parcels": verr.Parcels})
	case errors.Is(err, calculation.ErrNoResults):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, currency.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalogsvc.ErrCatalogUnavailable):
		h.logger.Error("calculation without catalog", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "operation catalog not loaded"})
	default:
		h.logger.Error("failed calculating parcels", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate parcels"})
	}
}
