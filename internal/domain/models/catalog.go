package models

import (
	"fmt"
	"strconv"
)

// Unit tags used by the operation catalog.
const (
	UnitHectare = "ha"
	UnitHour    = "čas"
	UnitBale    = "bala"
)

// Main and sub groups that drive formula selection.
const (
	GroupTransport    = "Transport"
	GroupHarvest      = "Žetva i berba"
	GroupCropCare     = "Nega useva"
	GroupSowing       = "Setva i sadnja"
	SubGroupBaling    = "Baliranje"
	SubGroupFertilize = "Prihrana"
	SubGroupProtect   = "Zaštita"
)

// OperationDefinition is one catalog entry describing a unit of field work.
type OperationDefinition struct {
	ID           string  `json:"operation_id" bson:"operation_id"`
	MainGroup    string  `json:"main_group" bson:"main_group"`
	SubGroup     *string `json:"sub_group" bson:"sub_group,omitempty"`
	Name         string  `json:"name" bson:"name"`
	Unit         string  `json:"unit" bson:"unit"`
	FuelLPerUnit float64 `json:"fuel_l_per_unit" bson:"fuel_l_per_unit"`
	PricePerUnit float64 `json:"price_per_unit" bson:"price_per_unit"`
}

// Sub returns the sub group or an empty string when the operation has none.
func (o OperationDefinition) Sub() string {
	if o.SubGroup == nil {
		return ""
	}
	return *o.SubGroup
}

// Fuel is an energy source with a price per liter.
type Fuel struct {
	ID            string  `json:"fuel_id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	PricePerLiter float64 `json:"price_per_liter"`
	Active        bool    `json:"active"`
}

// Label renders the fuel the way result screens show it.
func (f Fuel) Label() string {
	return fmt.Sprintf("%s (%s din/l)", f.Name, strconv.FormatFloat(f.PricePerLiter, 'f', -1, 64))
}

// Tractor is informational only; it never feeds a formula.
type Tractor struct {
	ID           string   `json:"tractor_id"`
	Name         string   `json:"name"`
	PowerKWFrom  *float64 `json:"power_kw_from"`
	PowerKWTo    *float64 `json:"power_kw_to"`
	PowerHPLabel string   `json:"power_hp_label"`
	Unit         string   `json:"unit"`
	FuelLPerUnit float64  `json:"fuel_l_per_unit"`
	PricePerUnit float64  `json:"price_per_unit"`
}

// Label returns "Name (45 KS)" or just the name when no power label is set.
func (t Tractor) Label() string {
	if t.PowerHPLabel == "" {
		return t.Name
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.PowerHPLabel)
}

// Crop is a cultivated plant a parcel can be planted with.
type Crop struct {
	ID   string `json:"crop_id"`
	Name string `json:"name"`
}

// Catalog is the full set of reference data supplied by the catalog store.
type Catalog struct {
	Fuels      []Fuel                `json:"fuels"`
	Tractors   []Tractor             `json:"tractors"`
	Operations []OperationDefinition `json:"operations"`
	Crops      []Crop                `json:"crops"`
}

// ActiveFuels returns only the fuels a user may pick.
func (c Catalog) ActiveFuels() []Fuel {
	active := make([]Fuel, 0, len(c.Fuels))
	for _, f := range c.Fuels {
		if f.Active {
			active = append(active, f)
		}
	}
	return active
}

// FuelByID looks up a fuel regardless of its active flag.
func (c Catalog) FuelByID(id string) (Fuel, bool) {
	for _, f := range c.Fuels {
		if f.ID == id {
			return f, true
		}
	}
	return Fuel{}, false
}

// TractorByID looks up a tractor.
func (c Catalog) TractorByID(id string) (Tractor, bool) {
	for _, t := range c.Tractors {
		if t.ID == id {
			return t, true
		}
	}
	return Tractor{}, false
}

// CropByID looks up a crop.
func (c Catalog) CropByID(id string) (Crop, bool) {
	for _, cr := range c.Crops {
		if cr.ID == id {
			return cr, true
		}
	}
	return Crop{}, false
}
