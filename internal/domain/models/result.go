package models

// BaseFormula tags the primary cost computation selected for an operation.
type BaseFormula string

const (
	FormulaTransport    BaseFormula = "transport"
	FormulaPerHectare   BaseFormula = "per_hectare"
	FormulaPerHour      BaseFormula = "per_hour"
	FormulaBaling       BaseFormula = "baling"
	FormulaUnclassified BaseFormula = "unclassified"
)

// LineItem is the cost breakdown of one processed OperationSelection.
type LineItem struct {
	OperationID string      `json:"operation_id" bson:"operation_id"`
	Name        string      `json:"name" bson:"name"`
	Unit        string      `json:"unit" bson:"unit"`
	Formula     BaseFormula `json:"formula" bson:"formula"`
	FuelCost    float64     `json:"fuel_cost" bson:"fuel_cost"`
	PriceCost   float64     `json:"price_cost" bson:"price_cost"`
	ExtraCost   float64     `json:"extra_cost" bson:"extra_cost"`
	Total       float64     `json:"total" bson:"total"`

	IsTransport         bool    `json:"is_transport" bson:"is_transport"`
	Trips               int     `json:"trips" bson:"trips"`
	CostPerTrip         float64 `json:"cost_per_trip" bson:"cost_per_trip"`
	TrailerCapacityTons float64 `json:"trailer_capacity_tons" bson:"trailer_capacity_tons"`
}

// CostCategories holds the seven category subtotals shared by parcel and aggregate results.
type CostCategories struct {
	CostByHa       float64 `json:"cost_by_ha" bson:"cost_by_ha"`
	CostByHour     float64 `json:"cost_by_hour" bson:"cost_by_hour"`
	CostFertilizer float64 `json:"cost_fertilizer" bson:"cost_fertilizer"`
	CostProtection float64 `json:"cost_protection" bson:"cost_protection"`
	CostSeed       float64 `json:"cost_seed" bson:"cost_seed"`
	CostBaling     float64 `json:"cost_baling" bson:"cost_baling"`
	CostTransport  float64 `json:"cost_transport" bson:"cost_transport"`
}

// Sum adds up all seven categories.
func (c CostCategories) Sum() float64 {
	return c.CostByHa + c.CostByHour + c.CostFertilizer + c.CostProtection + c.CostSeed + c.CostBaling + c.CostTransport
}

// Add accumulates other into c.
func (c *CostCategories) Add(other CostCategories) {
	c.CostByHa += other.CostByHa
	c.CostByHour += other.CostByHour
	c.CostFertilizer += other.CostFertilizer
	c.CostProtection += other.CostProtection
	c.CostSeed += other.CostSeed
	c.CostBaling += other.CostBaling
	c.CostTransport += other.CostTransport
}

// ParcelResult is the full cost, revenue and profit of one parcel, in RSD.
type ParcelResult struct {
	Operations     []LineItem `json:"operations" bson:"operations"`
	CostCategories `bson:",inline"`
	TotalCost      float64 `json:"total_cost" bson:"total_cost"`
	Revenue        float64 `json:"revenue" bson:"revenue"`
	Profit         float64 `json:"profit" bson:"profit"`
}

// AggregateResult sums every calculated parcel. Empty is set when no parcel had a result.
type AggregateResult struct {
	ParcelCount    int  `json:"parcel_count" bson:"parcel_count"`
	Empty          bool `json:"empty" bson:"empty"`
	CostCategories `bson:",inline"`
	TotalCost      float64 `json:"total_cost" bson:"total_cost"`
	Revenue        float64 `json:"revenue" bson:"revenue"`
	Profit         float64 `json:"profit" bson:"profit"`
}
