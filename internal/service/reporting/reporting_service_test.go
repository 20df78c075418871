package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/agrocalc/internal/calculator"
	"github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/currency"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

func fixedService() *Service {
	svc := NewService(nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func calculatedParcels() []models.Parcel {
	c := catalog.Default()
	c.Operations = append(c.Operations, models.OperationDefinition{
		ID: "prevoz", MainGroup: models.GroupTransport, Name: "Prevoz", Unit: "tura", FuelLPerUnit: 5, PricePerUnit: 2000,
	})

	first := models.Parcel{CropID: "kukuruz", TractorID: "traktor_33", FuelID: "euro_dizel", AreaHa: 2, FuelPricePerLiter: 204,
		YieldPerHa: 1000, PricePerKg: 30,
		Operations: []models.OperationSelection{{OperationID: "oranje_25"}}}
	second := models.Parcel{CropID: "psenica", AreaHa: 10, YieldPerHa: 5000, FuelPricePerLiter: 204,
		Operations: []models.OperationSelection{{OperationID: "prevoz", TrailerCapacityTons: 7}}}

	r1 := calculator.Calculate(first, c.Operations)
	r2 := calculator.Calculate(second, c.Operations)
	first.Result = &r1
	second.Result = &r2

	return []models.Parcel{first, {AreaHa: 3}, second}
}

func TestBuild_RSD(t *testing.T) {
	report := fixedService().Build(calculatedParcels(), catalog.Default(), currency.RSD, 117)

	assert.Equal(t, "RSD", report.Currency)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Parcels, 2)

	first := report.Parcels[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "Kukuruz", first.CropName)
	assert.Equal(t, "Traktor do 33kW (45 KS)", first.TractorName)
	assert.Equal(t, "Euro Dizel", first.FuelName)
	require.Len(t, first.Lines, 1)
	assert.Equal(t, "9.792,00 RSD", first.Lines[0].FuelCost)
	assert.Equal(t, "14.000,00 RSD", first.Lines[0].PriceCost)
	assert.Equal(t, "23.792,00 RSD", first.Lines[0].Total)
	assert.Empty(t, first.Lines[0].Details)

	second := report.Parcels[1]
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, "Nosivost: 7 t, Broj tura: 8, Cena po turi: 3.020,00 RSD", second.Lines[0].Details)

	assert.Equal(t, 2, report.Totals.ParcelCount)
	assert.Equal(t, 23792.0+24160.0, report.Totals.TotalCost)
}

func TestBuild_EURKeepsNumbersInRSD(t *testing.T) {
	parcels := calculatedParcels()

	report := fixedService().Build(parcels, catalog.Default(), currency.EUR, 117)

	assert.Equal(t, "EUR", report.Currency)
	assert.Equal(t, 23792.0, report.Parcels[0].Result.TotalCost)
	assert.Equal(t, "203,35 EUR", report.Parcels[0].Lines[0].Total)
	assert.Equal(t, 23792.0, parcels[0].Result.TotalCost)
}

func TestSummary(t *testing.T) {
	svc := fixedService()
	report := svc.Build(calculatedParcels(), catalog.Default(), currency.RSD, 117)

	text := svc.Summary(report)

	assert.Contains(t, text, "Parcela 1 – Kukuruz (2 ha)")
	assert.Contains(t, text, "Oranje do 25 cm [ha]: gorivo 9.792,00 RSD, cena 14.000,00 RSD, ukupno 23.792,00 RSD")
	assert.Contains(t, text, "Zbirno (2 parcela)")
	assert.Contains(t, text, "Ukupni troškovi: 47.952,00 RSD")
	assert.Contains(t, text, "Transport: 24.160,00 RSD")
}

func TestSummary_Empty(t *testing.T) {
	svc := fixedService()
	report := svc.Build([]models.Parcel{{AreaHa: 1}}, catalog.Default(), currency.RSD, 117)

	assert.True(t, report.Totals.Empty)
	assert.Equal(t, "Nema izračunatih parcela.", svc.Summary(report))
}
