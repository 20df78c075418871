package models

// OperationSelection is the per-line user input attached to a parcel. Fields that do
// not apply to the referenced operation are ignored.
type OperationSelection struct {
	OperationID string `json:"operation_id" bson:"operation_id"`

	Hours float64 `json:"hours" bson:"hours"`

	FertilizerAmountPerHa float64 `json:"fertilizer_amount_per_ha" bson:"fertilizer_amount_per_ha"`
	FertilizerPricePerKg  float64 `json:"fertilizer_price_per_kg" bson:"fertilizer_price_per_kg"`
	FertilizerName        string  `json:"fertilizer_name" bson:"fertilizer_name"`

	ProtectionAmountPerHa   float64 `json:"protection_amount_per_ha" bson:"protection_amount_per_ha"`
	ProtectionPricePerLiter float64 `json:"protection_price_per_liter" bson:"protection_price_per_liter"`
	ProtectionName          string  `json:"protection_name" bson:"protection_name"`

	SeedAmountPerHa float64 `json:"seed_amount_per_ha" bson:"seed_amount_per_ha"`
	SeedPricePerKg  float64 `json:"seed_price_per_kg" bson:"seed_price_per_kg"`
	SeedName        string  `json:"seed_name" bson:"seed_name"`

	BaleCount float64 `json:"bale_count" bson:"bale_count"`

	TrailerCapacityTons float64 `json:"trailer_capacity_tons" bson:"trailer_capacity_tons"`
}

// Parcel is one cultivated land unit owned by the caller. Result is nil until the
// parcel has been calculated and is replaced wholesale on every recalculation.
type Parcel struct {
	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	CropID    string `json:"crop_id" bson:"crop_id"`
	TractorID string `json:"tractor_id" bson:"tractor_id"`
	FuelID    string `json:"fuel_id" bson:"fuel_id"`

	AreaHa            float64 `json:"area_ha" bson:"area_ha"`
	FuelPricePerLiter float64 `json:"fuel_price_per_liter" bson:"fuel_price_per_liter"`
	YieldPerHa        float64 `json:"yield_per_ha" bson:"yield_per_ha"`
	PricePerKg        float64 `json:"price_per_kg" bson:"price_per_kg"`

	Operations []OperationSelection `json:"operations" bson:"operations"`

	Result *ParcelResult `json:"result,omitempty" bson:"result,omitempty"`
}
