package calculator

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

func sub(s string) *string { return &s }

var testOps = []models.OperationDefinition{
	{ID: "oranje", MainGroup: "Osnovna obrada", Name: "Oranje", Unit: models.UnitHectare, FuelLPerUnit: 24, PricePerUnit: 7000},
	{ID: "rad", MainGroup: "Dodatni rad", Name: "Rad na čas", Unit: models.UnitHour, FuelLPerUnit: 5, PricePerUnit: 2000},
	{ID: "bale", MainGroup: models.GroupHarvest, SubGroup: sub(models.SubGroupBaling), Name: "Baliranje", Unit: models.UnitBale, PricePerUnit: 120},
	{ID: "prevoz", MainGroup: models.GroupTransport, Name: "Prevoz", Unit: "tura", FuelLPerUnit: 5, PricePerUnit: 2000},
	{ID: "prihrana", MainGroup: models.GroupCropCare, SubGroup: sub(models.SubGroupFertilize), Name: "Prihrana", Unit: models.UnitHectare, FuelLPerUnit: 6, PricePerUnit: 2000},
	{ID: "zastita", MainGroup: models.GroupCropCare, SubGroup: sub(models.SubGroupProtect), Name: "Zaštita", Unit: models.UnitHectare, FuelLPerUnit: 5, PricePerUnit: 2500},
	{ID: "setva", MainGroup: models.GroupSowing, Name: "Setva", Unit: models.UnitHectare, FuelLPerUnit: 12, PricePerUnit: 4500},
	{ID: "cudno", MainGroup: "Ostalo", Name: "Nepoznata jedinica", Unit: "m3", FuelLPerUnit: 3, PricePerUnit: 100},
	{ID: "transport_ha", MainGroup: models.GroupTransport, Name: "Prevoz po ha", Unit: models.UnitHectare, FuelLPerUnit: 1, PricePerUnit: 1},
}

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestClassify(t *testing.T) {
	idx := catalog.NewIndex(testOps)
	want := map[string]models.BaseFormula{
		"oranje":       models.FormulaPerHectare,
		"rad":          models.FormulaPerHour,
		"bale":         models.FormulaBaling,
		"prevoz":       models.FormulaTransport,
		"prihrana":     models.FormulaPerHectare,
		"cudno":        models.FormulaUnclassified,
		"transport_ha": models.FormulaTransport,
	}
	for id, formula := range want {
		op, ok := idx.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, formula, Classify(op), id)
	}
}

func TestExtraPredicates(t *testing.T) {
	idx := catalog.NewIndex(testOps)
	fert, _ := idx.Lookup("prihrana")
	prot, _ := idx.Lookup("zastita")
	seed, _ := idx.Lookup("setva")
	plain, _ := idx.Lookup("oranje")

	assert.True(t, IsFertilizer(fert))
	assert.False(t, IsProtection(fert))
	assert.True(t, IsProtection(prot))
	assert.False(t, IsFertilizer(prot))
	assert.True(t, IsSeed(seed))
	assert.False(t, IsSeed(plain) || IsFertilizer(plain) || IsProtection(plain))
}

func TestCalculate_PerHectare(t *testing.T) {
	p := models.Parcel{AreaHa: 2, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{OperationID: "oranje"}}}

	res := Calculate(p, testOps)

	require.Len(t, res.Operations, 1)
	line := res.Operations[0]
	nearlyEqual(t, "fuel_cost", line.FuelCost, 9792)
	nearlyEqual(t, "price_cost", line.PriceCost, 14000)
	nearlyEqual(t, "total", line.Total, 23792)
	nearlyEqual(t, "cost_by_ha", res.CostByHa, 23792)
	nearlyEqual(t, "total_cost", res.TotalCost, 23792)
	assert.Equal(t, models.FormulaPerHectare, line.Formula)
}

func TestCalculate_PerHour(t *testing.T) {
	p := models.Parcel{AreaHa: 10, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{OperationID: "rad", Hours: 3}}}

	res := Calculate(p, testOps)

	line := res.Operations[0]
	nearlyEqual(t, "fuel_cost", line.FuelCost, 3060)
	nearlyEqual(t, "price_cost", line.PriceCost, 6000)
	nearlyEqual(t, "total", line.Total, 9060)
	nearlyEqual(t, "cost_by_hour", res.CostByHour, 9060)
	nearlyEqual(t, "cost_by_ha", res.CostByHa, 0)
}

func TestCalculate_Baling(t *testing.T) {
	p := models.Parcel{AreaHa: 3, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{OperationID: "bale", BaleCount: 50}}}

	res := Calculate(p, testOps)

	line := res.Operations[0]
	nearlyEqual(t, "fuel_cost", line.FuelCost, 0)
	nearlyEqual(t, "total", line.Total, 6000)
	nearlyEqual(t, "cost_baling", res.CostBaling, 6000)
}

func TestCalculate_TransportRoundsTripsUp(t *testing.T) {
	p := models.Parcel{
		AreaHa:            10,
		YieldPerHa:        5000,
		FuelPricePerLiter: 204,
		Operations:        []models.OperationSelection{{OperationID: "prevoz", TrailerCapacityTons: 7}},
	}

	res := Calculate(p, testOps)

	line := res.Operations[0]
	assert.True(t, line.IsTransport)
	assert.Equal(t, 8, line.Trips)
	nearlyEqual(t, "cost_per_trip", line.CostPerTrip, 3020)
	nearlyEqual(t, "fuel_cost", line.FuelCost, 8*5*204)
	nearlyEqual(t, "price_cost", line.PriceCost, 16000)
	nearlyEqual(t, "total", line.Total, 24160)
	nearlyEqual(t, "cost_transport", res.CostTransport, 24160)
	assert.Equal(t, 7.0, line.TrailerCapacityTons)
}

func TestCalculate_TransportWithoutCapacityOrYieldHasNoTrips(t *testing.T) {
	tests := []struct {
		name     string
		yield    float64
		capacity float64
	}{
		{"zero capacity", 5000, 0},
		{"negative capacity", 5000, -2},
		{"zero yield", 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Parcel{AreaHa: 10, YieldPerHa: tt.yield, FuelPricePerLiter: 204,
				Operations: []models.OperationSelection{{OperationID: "prevoz", TrailerCapacityTons: tt.capacity}}}

			res := Calculate(p, testOps)

			line := res.Operations[0]
			assert.Equal(t, 0, line.Trips)
			nearlyEqual(t, "cost_per_trip", line.CostPerTrip, 3020)
			nearlyEqual(t, "total", line.Total, 0)
			nearlyEqual(t, "cost_transport", res.CostTransport, 0)
		})
	}
}

func TestCalculate_TransportExactMultiple(t *testing.T) {
	p := models.Parcel{AreaHa: 7, YieldPerHa: 1000, Operations: []models.OperationSelection{{OperationID: "prevoz", TrailerCapacityTons: 7}}}

	res := Calculate(p, testOps)

	assert.Equal(t, 1, res.Operations[0].Trips)
}

func TestCalculate_TransportGroupWinsOverHectareUnit(t *testing.T) {
	p := models.Parcel{AreaHa: 10, YieldPerHa: 1000, FuelPricePerLiter: 100,
		Operations: []models.OperationSelection{{OperationID: "transport_ha", TrailerCapacityTons: 4}}}

	res := Calculate(p, testOps)

	assert.Equal(t, 3, res.Operations[0].Trips)
	nearlyEqual(t, "cost_transport", res.CostTransport, 3*101)
	nearlyEqual(t, "cost_by_ha", res.CostByHa, 0)
}

func TestCalculate_FertilizerIsAdditive(t *testing.T) {
	p := models.Parcel{AreaHa: 2, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{
		OperationID:           "prihrana",
		FertilizerAmountPerHa: 300,
		FertilizerPricePerKg:  50,
	}}}

	res := Calculate(p, testOps)

	base := 2*6*204.0 + 2*2000.0
	line := res.Operations[0]
	nearlyEqual(t, "extra", line.ExtraCost, 30000)
	nearlyEqual(t, "total", line.Total, base+30000)
	nearlyEqual(t, "cost_by_ha", res.CostByHa, base)
	nearlyEqual(t, "cost_fertilizer", res.CostFertilizer, 30000)
	nearlyEqual(t, "total_cost", res.TotalCost, base+30000)
}

func TestCalculate_ProtectionAndSeedAreAdditive(t *testing.T) {
	p := models.Parcel{AreaHa: 4, Operations: []models.OperationSelection{
		{OperationID: "zastita", ProtectionAmountPerHa: 2, ProtectionPricePerLiter: 1500},
		{OperationID: "setva", SeedAmountPerHa: 25, SeedPricePerKg: 80},
	}}

	res := Calculate(p, testOps)

	nearlyEqual(t, "cost_protection", res.CostProtection, 4*2*1500)
	nearlyEqual(t, "cost_seed", res.CostSeed, 4*25*80)
	nearlyEqual(t, "cost_by_ha", res.CostByHa, 4*2500+4*4500)
	nearlyEqual(t, "total_cost", res.TotalCost, 12000+8000+28000)
}

func TestCalculate_IgnoresFieldsForOtherCategories(t *testing.T) {
	p := models.Parcel{AreaHa: 2, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{
		OperationID:           "oranje",
		Hours:                 10,
		BaleCount:             99,
		SeedAmountPerHa:       100,
		SeedPricePerKg:        100,
		FertilizerAmountPerHa: 100,
		FertilizerPricePerKg:  100,
		TrailerCapacityTons:   3,
	}}}

	res := Calculate(p, testOps)

	nearlyEqual(t, "total_cost", res.TotalCost, 23792)
	nearlyEqual(t, "cost_seed", res.CostSeed, 0)
	nearlyEqual(t, "cost_fertilizer", res.CostFertilizer, 0)
	assert.Equal(t, 0, res.Operations[0].Trips)
}

func TestCalculate_UnknownOperationIsSkipped(t *testing.T) {
	p := models.Parcel{AreaHa: 2, FuelPricePerLiter: 204, Operations: []models.OperationSelection{
		{OperationID: "ne_postoji", Hours: 5},
		{OperationID: "oranje"},
	}}

	res := Calculate(p, testOps)

	require.Len(t, res.Operations, 1)
	assert.Equal(t, "oranje", res.Operations[0].OperationID)
	nearlyEqual(t, "total_cost", res.TotalCost, 23792)
}

func TestCalculate_UnclassifiedHasZeroBaseAndIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	calc := New(zap.New(core))
	p := models.Parcel{AreaHa: 5, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{OperationID: "cudno"}}}

	res := calc.Calculate(p, catalog.NewIndex(testOps))

	require.Len(t, res.Operations, 1)
	assert.Equal(t, models.FormulaUnclassified, res.Operations[0].Formula)
	nearlyEqual(t, "total", res.Operations[0].Total, 0)
	nearlyEqual(t, "total_cost", res.TotalCost, 0)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "cudno", logs.All()[0].ContextMap()["operation_id"])
}

func TestCalculate_EmptyOperations(t *testing.T) {
	p := models.Parcel{AreaHa: 2, YieldPerHa: 1000, PricePerKg: 30}

	res := Calculate(p, testOps)

	assert.Empty(t, res.Operations)
	assert.NotNil(t, res.Operations)
	nearlyEqual(t, "total_cost", res.TotalCost, 0)
	nearlyEqual(t, "revenue", res.Revenue, 60000)
	nearlyEqual(t, "profit", res.Profit, 60000)
}

func TestCalculate_TotalCostIsSumOfCategories(t *testing.T) {
	p := models.Parcel{AreaHa: 10, YieldPerHa: 5000, PricePerKg: 25, FuelPricePerLiter: 204, Operations: []models.OperationSelection{
		{OperationID: "oranje"},
		{OperationID: "rad", Hours: 3},
		{OperationID: "bale", BaleCount: 50},
		{OperationID: "prevoz", TrailerCapacityTons: 7},
		{OperationID: "prihrana", FertilizerAmountPerHa: 300, FertilizerPricePerKg: 50},
		{OperationID: "zastita", ProtectionAmountPerHa: 2, ProtectionPricePerLiter: 1500},
		{OperationID: "setva", SeedAmountPerHa: 25, SeedPricePerKg: 80},
	}}

	res := Calculate(p, testOps)

	assert.Len(t, res.Operations, 7)
	nearlyEqual(t, "total_cost", res.TotalCost, res.CostCategories.Sum())
	var lines float64
	for _, l := range res.Operations {
		lines += l.Total
	}
	nearlyEqual(t, "sum of lines", lines, res.TotalCost)
	nearlyEqual(t, "revenue", res.Revenue, 10*5000*25)
	nearlyEqual(t, "profit", res.Profit, res.Revenue-res.TotalCost)
}

func TestCalculate_ProfitIsNotClamped(t *testing.T) {
	p := models.Parcel{AreaHa: 2, YieldPerHa: 0, PricePerKg: 30, FuelPricePerLiter: 204,
		Operations: []models.OperationSelection{{OperationID: "oranje"}}}

	res := Calculate(p, testOps)

	nearlyEqual(t, "revenue", res.Revenue, 0)
	nearlyEqual(t, "profit", res.Profit, -23792)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	p := models.Parcel{AreaHa: 3.7, YieldPerHa: 6400, PricePerKg: 21.3, FuelPricePerLiter: 198.4, Operations: []models.OperationSelection{
		{OperationID: "oranje"},
		{OperationID: "prevoz", TrailerCapacityTons: 6.5},
		{OperationID: "prihrana", FertilizerAmountPerHa: 250, FertilizerPricePerKg: 61.2},
	}}

	first := Calculate(p, testOps)
	second := Calculate(p, testOps)

	assert.Equal(t, first, second)
	assert.Nil(t, p.Result)
}

func TestCalculateAll_FillsEveryParcel(t *testing.T) {
	parcels := []models.Parcel{
		{AreaHa: 2, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{OperationID: "oranje"}}},
		{AreaHa: 1, FuelPricePerLiter: 204, Operations: []models.OperationSelection{{OperationID: "rad", Hours: 3}}},
		{AreaHa: 1},
	}

	err := New(nil).CalculateAll(context.Background(), parcels, catalog.NewIndex(testOps))

	require.NoError(t, err)
	for i, p := range parcels {
		require.NotNil(t, p.Result, "parcel %d", i)
	}
	nearlyEqual(t, "parcel 0", parcels[0].Result.TotalCost, 23792)
	nearlyEqual(t, "parcel 1", parcels[1].Result.TotalCost, 9060)
	nearlyEqual(t, "parcel 2", parcels[2].Result.TotalCost, 0)
}

func TestCalculateAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	parcels := []models.Parcel{{AreaHa: 1}}

	err := New(nil).CalculateAll(ctx, parcels, catalog.NewIndex(testOps))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, parcels[0].Result)
}
