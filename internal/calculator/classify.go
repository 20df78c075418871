package calculator

import "github.com/mamadbah2/agrocalc/internal/domain/models"

// Classify picks the single base formula for op. Transport wins over the unit,
// then per-hectare, per-hour and finally baling.
func Classify(op models.OperationDefinition) models.BaseFormula {
	switch {
	case op.MainGroup == models.GroupTransport:
		return models.FormulaTransport
	case op.Unit == models.UnitHectare:
		return models.FormulaPerHectare
	case op.Unit == models.UnitHour:
		return models.FormulaPerHour
	case op.MainGroup == models.GroupHarvest && op.Sub() == models.SubGroupBaling:
		return models.FormulaBaling
	default:
		return models.FormulaUnclassified
	}
}

// IsFertilizer reports whether op carries the fertilizer extra cost.
func IsFertilizer(op models.OperationDefinition) bool {
	return op.MainGroup == models.GroupCropCare && op.Sub() == models.SubGroupFertilize
}

// IsProtection reports whether op carries the crop protection extra cost.
func IsProtection(op models.OperationDefinition) bool {
	return op.MainGroup == models.GroupCropCare && op.Sub() == models.SubGroupProtect
}

// IsSeed reports whether op carries the seed extra cost.
func IsSeed(op models.OperationDefinition) bool {
	return op.MainGroup == models.GroupSowing
}
