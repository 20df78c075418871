package calculation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/calculator"
	opindex "github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/currency"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
	"github.com/mamadbah2/agrocalc/internal/repository/mongodb"
	"github.com/mamadbah2/agrocalc/internal/service/reporting"
)

// CatalogProvider hands out the current catalog together with its operation index.
type CatalogProvider interface {
	Snapshot() (models.Catalog, *opindex.Index, error)
}

// RateProvider returns the EUR display rate. It is expected to never fail.
type RateProvider interface {
	EURRate(ctx context.Context) float64
}

// Service orchestrates a calculation request from raw parcels to an archived report.
type Service struct {
	catalog    CatalogProvider
	rates      RateProvider
	calculator *calculator.Calculator
	reports    *reporting.Service
	archive    mongodb.Repository
	logger     *zap.Logger
}

// NewService wires a calculation service. A nil archive disables archiving.
func NewService(
	catalog CatalogProvider,
	rates RateProvider,
	calc *calculator.Calculator,
	reports *reporting.Service,
	archive mongodb.Repository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = calculator.New(logger)
	}
	if reports == nil {
		reports = reporting.NewService(logger)
	}
	if archive == nil {
		archive = mongodb.NopRepository{}
	}

	return &Service{
		catalog:    catalog,
		rates:      rates,
		calculator: calc,
		reports:    reports,
		archive:    archive,
		logger:     logger,
	}
}

// Validate reports whether parcel is complete enough to be calculated.
func (s *Service) Validate(parcel models.Parcel) models.ValidationResponse {
	reasons := calculator.Validate(parcel)
	return models.ValidationResponse{Valid: len(reasons) == 0, Reasons: reasons}
}

// Calculate evaluates every parcel of req and returns the resulting report. The
// caller's parcels are left untouched.
func (s *Service) Calculate(ctx context.Context, req models.CalculateRequest) (models.Report, error) {
	if len(req.Parcels) == 0 {
		return models.Report{}, ErrNoResults
	}

	cur, err := currency.ParseCurrency(req.Currency)
	if err != nil {
		return models.Report{}, err
	}

	cat, idx, err := s.catalog.Snapshot()
	if err != nil {
		return models.Report{}, fmt.Errorf("load catalog: %w", err)
	}

	parcels := make([]models.Parcel, len(req.Parcels))
	for i, p := range req.Parcels {
		p.Result = nil
		parcels[i] = resolveFuelPrice(p, cat)
	}

	if req.Strict {
		var invalid []models.ParcelValidation
		for i, p := range parcels {
			if reasons := calculator.Validate(p); len(reasons) > 0 {
				invalid = append(invalid, models.ParcelValidation{Index: i, Reasons: reasons})
			}
		}
		if len(invalid) > 0 {
			return models.Report{}, &ValidationError{Parcels: invalid}
		}
	}

	if err := s.calculator.CalculateAll(ctx, parcels, idx); err != nil {
		return models.Report{}, fmt.Errorf("calculate parcels: %w", err)
	}

	rate := currency.DefaultEURRate
	if s.rates != nil {
		rate = s.rates.EURRate(ctx)
	}

	report := s.reports.Build(parcels, cat, cur, rate)

	if err := s.archive.SaveReport(ctx, report); err != nil {
		s.logger.Warn("failed to archive calculation report", zap.Error(err))
	}

	s.logger.Info("calculation completed",
		zap.Int("parcels", report.Totals.ParcelCount),
		zap.Float64("total_cost", report.Totals.TotalCost),
		zap.Float64("profit", report.Totals.Profit),
		zap.String("currency", report.Currency))

	return report, nil
}

// Summary calculates req and renders the report as plain text.
func (s *Service) Summary(ctx context.Context, req models.CalculateRequest) (string, error) {
	report, err := s.Calculate(ctx, req)
	if err != nil {
		return "", err
	}
	return s.reports.Summary(report), nil
}

// resolveFuelPrice fills in the catalog price for parcels that name a fuel but
// carry no price of their own.
func resolveFuelPrice(p models.Parcel, cat models.Catalog) models.Parcel {
	if p.FuelPricePerLiter != 0 || p.FuelID == "" {
		return p
	}
	if fuel, ok := cat.FuelByID(p.FuelID); ok {
		p.FuelPricePerLiter = fuel.PricePerLiter
	}
	return p
}

// RecentReports lists archived reports, newest first. limit is clamped to 1..100.
func (s *Service) RecentReports(ctx context.Context, limit int64) ([]models.Report, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	reports, err := s.archive.RecentReports(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list archived reports: %w", err)
	}
	return reports, nil
}
