package models

// CalculateRequest is the body accepted by the calculation endpoints.
type CalculateRequest struct {
	Currency string   `json:"currency"`
	Strict   bool     `json:"strict"`
	Parcels  []Parcel `json:"parcels" binding:"required"`
}

// ValidationResponse lists the reasons a parcel cannot be calculated yet.
type ValidationResponse struct {
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons"`
}

// ParcelValidation pairs a parcel position with its validation reasons.
type ParcelValidation struct {
	Index   int      `json:"index"`
	Reasons []string `json:"reasons"`
}

// CatalogResponse is what selection screens need to build their two-level pickers.
type CatalogResponse struct {
	Fuels    []Fuel           `json:"fuels"`
	Tractors []Tractor        `json:"tractors"`
	Crops    []Crop           `json:"crops"`
	Groups   []OperationGroup `json:"groups"`
}

// OperationGroup is one main group with its operations in catalog order.
type OperationGroup struct {
	MainGroup  string                `json:"main_group"`
	Operations []OperationDefinition `json:"operations"`
}

// RateResponse reports the EUR rate currently used for display conversion.
type RateResponse struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}
