package catalog

import "github.com/mamadbah2/agrocalc/internal/domain/models"

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Default returns the seed catalog used when no external catalog store is configured.
func Default() models.Catalog {
	return models.Catalog{
		Fuels: []models.Fuel{
			{ID: "euro_dizel", Name: "Euro Dizel", Unit: "litar", PricePerLiter: 204, Active: true},
			{ID: "bmb_100", Name: "Bezolovni benzin 100 oktana", Unit: "litar", PricePerLiter: 210, Active: true},
		},
		Tractors: []models.Tractor{
			{ID: "traktor_33", Name: "Traktor do 33kW", PowerKWFrom: floatPtr(0), PowerKWTo: floatPtr(33), PowerHPLabel: "45 KS", Unit: models.UnitHour, FuelLPerUnit: 4, PricePerUnit: 1770},
			{ID: "traktor_60", Name: "Traktor 33-60kW", PowerKWFrom: floatPtr(33), PowerKWTo: floatPtr(60), PowerHPLabel: "80 KS", Unit: models.UnitHour, FuelLPerUnit: 5.5, PricePerUnit: 2200},
		},
		Operations: []models.OperationDefinition{
			{ID: "oranje_25", MainGroup: "Osnovna obrada", Name: "Oranje do 25 cm", Unit: models.UnitHectare, FuelLPerUnit: 24, PricePerUnit: 7000},
			{ID: "tanjiranje", MainGroup: "Osnovna obrada", Name: "Tanjiranje", Unit: models.UnitHectare, FuelLPerUnit: 15, PricePerUnit: 5000},
			{ID: "setva_zitarica", MainGroup: models.GroupSowing, Name: "Setva žitarica", Unit: models.UnitHectare, FuelLPerUnit: 12, PricePerUnit: 4500},
			{ID: "prihrana_npk", MainGroup: models.GroupCropCare, SubGroup: strPtr(models.SubGroupFertilize), Name: "Prihrana NPK", Unit: models.UnitHectare, FuelLPerUnit: 6, PricePerUnit: 2000},
			{ID: "zastita_fungicid", MainGroup: models.GroupCropCare, SubGroup: strPtr(models.SubGroupProtect), Name: "Zaštita fungicidom", Unit: models.UnitHectare, FuelLPerUnit: 5, PricePerUnit: 2500},
			{ID: "zetva_zetvacom", MainGroup: models.GroupHarvest, Name: "Žetva kombajnom", Unit: models.UnitHectare, FuelLPerUnit: 18, PricePerUnit: 9000},
			{ID: "baliranje", MainGroup: models.GroupHarvest, SubGroup: strPtr(models.SubGroupBaling), Name: "Baliranje", Unit: models.UnitBale, FuelLPerUnit: 0, PricePerUnit: 120},
			{ID: "traktor_rad", MainGroup: "Dodatni rad", Name: "Rad traktora na čas", Unit: models.UnitHour, FuelLPerUnit: 5, PricePerUnit: 2000},
		},
		Crops: []models.Crop{
			{ID: "kukuruz", Name: "Kukuruz"},
			{ID: "psenica", Name: "Pšenica"},
			{ID: "suncokret", Name: "Suncokret"},
		},
	}
}
