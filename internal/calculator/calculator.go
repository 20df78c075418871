// Package calculator turns a parcel and its chosen operations into itemized costs,
// revenue and profit, and folds parcel results into multi-parcel totals.
package calculator

import (
	"math"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

// Calculator evaluates parcels. It keeps nothing between calls; the logger only
// reports operations that fall through every base formula.
type Calculator struct {
	logger *zap.Logger
}

// New constructs a Calculator.
func New(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Calculate indexes ops and evaluates parcel against them without logging.
func Calculate(parcel models.Parcel, ops []models.OperationDefinition) models.ParcelResult {
	return New(nil).Calculate(parcel, catalog.NewIndex(ops))
}

// Calculate evaluates every selection of parcel in order. Selections whose
// operation id is not in idx are skipped without a line item.
func (c *Calculator) Calculate(parcel models.Parcel, idx *catalog.Index) models.ParcelResult {
	result := models.ParcelResult{Operations: make([]models.LineItem, 0, len(parcel.Operations))}
	totalYieldTons := parcel.AreaHa * parcel.YieldPerHa / 1000

	for _, sel := range parcel.Operations {
		op, ok := idx.Lookup(sel.OperationID)
		if !ok {
			c.logger.Debug("skip selection with unknown operation", zap.String("operation_id", sel.OperationID))
			continue
		}

		line := models.LineItem{
			OperationID:         op.ID,
			Name:                op.Name,
			Unit:                op.Unit,
			Formula:             Classify(op),
			IsTransport:         op.MainGroup == models.GroupTransport,
			TrailerCapacityTons: sel.TrailerCapacityTons,
		}

		switch line.Formula {
		case models.FormulaTransport:
			line.Trips = trips(totalYieldTons, sel.TrailerCapacityTons)
			n := float64(line.Trips)
			line.CostPerTrip = op.FuelLPerUnit*parcel.FuelPricePerLiter + op.PricePerUnit
			line.FuelCost = n * op.FuelLPerUnit * parcel.FuelPricePerLiter
			line.PriceCost = n * op.PricePerUnit
			line.Total = n * line.CostPerTrip
			result.CostTransport += line.Total
		case models.FormulaPerHectare:
			line.FuelCost = parcel.AreaHa * op.FuelLPerUnit * parcel.FuelPricePerLiter
			line.PriceCost = parcel.AreaHa * op.PricePerUnit
			line.Total = line.FuelCost + line.PriceCost
			result.CostByHa += line.Total
		case models.FormulaPerHour:
			line.FuelCost = sel.Hours * op.FuelLPerUnit * parcel.FuelPricePerLiter
			line.PriceCost = sel.Hours * op.PricePerUnit
			line.Total = line.FuelCost + line.PriceCost
			result.CostByHour += line.Total
		case models.FormulaBaling:
			line.PriceCost = sel.BaleCount * op.PricePerUnit
			line.Total = line.PriceCost
			result.CostBaling += line.Total
		default:
			c.logger.Warn("operation matches no base formula, base cost is zero",
				zap.String("operation_id", op.ID),
				zap.String("main_group", op.MainGroup),
				zap.String("sub_group", op.Sub()),
				zap.String("unit", op.Unit))
		}

		if IsFertilizer(op) {
			extra := parcel.AreaHa * sel.FertilizerAmountPerHa * sel.FertilizerPricePerKg
			line.ExtraCost += extra
			result.CostFertilizer += extra
		}
		if IsProtection(op) {
			extra := parcel.AreaHa * sel.ProtectionAmountPerHa * sel.ProtectionPricePerLiter
			line.ExtraCost += extra
			result.CostProtection += extra
		}
		if IsSeed(op) {
			extra := parcel.AreaHa * sel.SeedAmountPerHa * sel.SeedPricePerKg
			line.ExtraCost += extra
			result.CostSeed += extra
		}
		line.Total += line.ExtraCost

		result.Operations = append(result.Operations, line)
	}

	result.TotalCost = result.CostCategories.Sum()
	result.Revenue = parcel.AreaHa * parcel.YieldPerHa * parcel.PricePerKg
	result.Profit = result.Revenue - result.TotalCost

	return result
}

// trips is zero unless both tonnage and capacity are positive; partial loads count
// as a full trip.
func trips(totalYieldTons, capacityTons float64) int {
	if capacityTons <= 0 || totalYieldTons <= 0 {
		return 0
	}
	return int(math.Ceil(totalYieldTons / capacityTons))
}
