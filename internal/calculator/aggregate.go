package calculator

import "github.com/mamadbah2/agrocalc/internal/domain/models"

// Aggregate sums the results of every parcel that has been calculated. Parcels
// without a result are ignored; when none remain the result is marked Empty.
func Aggregate(parcels []models.Parcel) models.AggregateResult {
	var agg models.AggregateResult

	for _, p := range parcels {
		if p.Result == nil {
			continue
		}
		agg.ParcelCount++
		agg.CostCategories.Add(p.Result.CostCategories)
		agg.TotalCost += p.Result.TotalCost
		agg.Revenue += p.Result.Revenue
		agg.Profit += p.Result.Profit
	}

	agg.Empty = agg.ParcelCount == 0
	return agg
}
