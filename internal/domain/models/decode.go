package models

import (
	"encoding/json"

	"github.com/mamadbah2/agrocalc/internal/numeric"
)

type rawSelection struct {
	OperationID             any `json:"operation_id"`
	Hours                   any `json:"hours"`
	FertilizerAmountPerHa   any `json:"fertilizer_amount_per_ha"`
	FertilizerPricePerKg    any `json:"fertilizer_price_per_kg"`
	FertilizerName          any `json:"fertilizer_name"`
	ProtectionAmountPerHa   any `json:"protection_amount_per_ha"`
	ProtectionPricePerLiter any `json:"protection_price_per_liter"`
	ProtectionName          any `json:"protection_name"`
	SeedAmountPerHa         any `json:"seed_amount_per_ha"`
	SeedPricePerKg          any `json:"seed_price_per_kg"`
	SeedName                any `json:"seed_name"`
	BaleCount               any `json:"bale_count"`
	TrailerCapacityTons     any `json:"trailer_capacity_tons"`
}

// UnmarshalJSON accepts numbers, numeric strings or garbage for every quantity;
// anything unreadable becomes 0.
func (s *OperationSelection) UnmarshalJSON(data []byte) error {
	var raw rawSelection
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = OperationSelection{
		OperationID:             numeric.String(raw.OperationID),
		Hours:                   numeric.ParseNumberOrZero(raw.Hours),
		FertilizerAmountPerHa:   numeric.ParseNumberOrZero(raw.FertilizerAmountPerHa),
		FertilizerPricePerKg:    numeric.ParseNumberOrZero(raw.FertilizerPricePerKg),
		FertilizerName:          numeric.String(raw.FertilizerName),
		ProtectionAmountPerHa:   numeric.ParseNumberOrZero(raw.ProtectionAmountPerHa),
		ProtectionPricePerLiter: numeric.ParseNumberOrZero(raw.ProtectionPricePerLiter),
		ProtectionName:          numeric.String(raw.ProtectionName),
		SeedAmountPerHa:         numeric.ParseNumberOrZero(raw.SeedAmountPerHa),
		SeedPricePerKg:          numeric.ParseNumberOrZero(raw.SeedPricePerKg),
		SeedName:                numeric.String(raw.SeedName),
		BaleCount:               numeric.ParseNumberOrZero(raw.BaleCount),
		TrailerCapacityTons:     numeric.ParseNumberOrZero(raw.TrailerCapacityTons),
	}
	return nil
}

type rawParcel struct {
	Name              any                  `json:"name"`
	CropID            any                  `json:"crop_id"`
	TractorID         any                  `json:"tractor_id"`
	FuelID            any                  `json:"fuel_id"`
	AreaHa            any                  `json:"area_ha"`
	FuelPricePerLiter any                  `json:"fuel_price_per_liter"`
	YieldPerHa        any                  `json:"yield_per_ha"`
	PricePerKg        any                  `json:"price_per_kg"`
	Operations        []OperationSelection `json:"operations"`
	Result            *ParcelResult        `json:"result"`
}

// UnmarshalJSON applies the same permissive coercion as OperationSelection.
func (p *Parcel) UnmarshalJSON(data []byte) error {
	var raw rawParcel
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Parcel{
		Name:              numeric.String(raw.Name),
		CropID:            numeric.String(raw.CropID),
		TractorID:         numeric.String(raw.TractorID),
		FuelID:            numeric.String(raw.FuelID),
		AreaHa:            numeric.ParseNumberOrZero(raw.AreaHa),
		FuelPricePerLiter: numeric.ParseNumberOrZero(raw.FuelPricePerLiter),
		YieldPerHa:        numeric.ParseNumberOrZero(raw.YieldPerHa),
		PricePerKg:        numeric.ParseNumberOrZero(raw.PricePerKg),
		Operations:        raw.Operations,
		Result:            raw.Result,
	}
	return nil
}
