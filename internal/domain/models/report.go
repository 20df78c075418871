package models

import "time"

// ReportLine is a line item prepared for display in the report currency.
type ReportLine struct {
	Name      string `json:"name" bson:"name"`
	Unit      string `json:"unit" bson:"unit"`
	Details   string `json:"details" bson:"details"`
	FuelCost  string `json:"fuel_cost" bson:"fuel_cost"`
	PriceCost string `json:"price_cost" bson:"price_cost"`
	Total     string `json:"total" bson:"total"`
}

// ReportParcel carries one calculated parcel with its context labels resolved.
type ReportParcel struct {
	Index       int          `json:"index" bson:"index"`
	Name        string       `json:"name,omitempty" bson:"name,omitempty"`
	CropName    string       `json:"crop_name" bson:"crop_name"`
	AreaHa      float64      `json:"area" bson:"area"`
	TractorName string       `json:"tractor_name" bson:"tractor_name"`
	FuelName    string       `json:"fuel_name" bson:"fuel_name"`
	FuelPrice   float64      `json:"fuel_price" bson:"fuel_price"`
	Lines       []ReportLine `json:"operations" bson:"operations"`
	Result      ParcelResult `json:"result" bson:"result"`
}

// Report is the serializable, currency-tagged summary handed to the document
// renderer and archived in MongoDB. Every number stays in RSD; only the strings
// in Lines are converted to Currency.
type Report struct {
	GeneratedAt time.Time       `json:"generated_at" bson:"generated_at"`
	Currency    string          `json:"currency" bson:"currency"`
	EURRate     float64         `json:"eur_rate" bson:"eur_rate"`
	Parcels     []ReportParcel  `json:"parcels" bson:"parcels"`
	Totals      AggregateResult `json:"totals" bson:"totals"`
	Skipped     int             `json:"skipped" bson:"skipped"`
}
