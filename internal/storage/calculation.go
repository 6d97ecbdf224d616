package storage

import "time"

// Measurement is the physical measurement of one treatment. The engine is
// unit-agnostic; callers normalize width and drop to one linear unit
// (centimeters in practice) before invocation.
type Measurement struct {
	RailWidth float64 `json:"rail_width"`
	Drop      float64 `json:"drop"`
	Quantity  int     `json:"quantity"`
}

// FabricSpec describes the chosen face fabric.
type FabricSpec struct {
	UsableWidth      float64 `json:"usable_width"`
	VerticalRepeat   float64 `json:"vertical_repeat"`
	HorizontalRepeat float64 `json:"horizontal_repeat"`
	CostPerLength    float64 `json:"cost_per_length"`
}

// CalculationResult is the engine output. TotalCost and TotalSelling come
// out of the same invocation and are persisted together; nothing downstream
// re-derives one from the other.
type CalculationResult struct {
	LinearMeters      float64 `json:"linear_meters"`
	WidthsRequired    int     `json:"widths_required"`
	FabricCost        float64 `json:"fabric_cost"`
	ManufacturingCost float64 `json:"manufacturing_cost"`
	OptionsCost       float64 `json:"options_cost"`
	TotalCost         float64 `json:"total_cost"`
	TotalSelling      float64 `json:"total_selling"`
	MarkupPercent     float64 `json:"markup_percent"`
	MarkupSource      string  `json:"markup_source"`
	MarginBand        string  `json:"margin_band"`
	LaborHours        float64 `json:"labor_hours"`
	AlgorithmVersion  string  `json:"algorithm_version"`
}

// SavedCalculation is the persisted immutable snapshot for one item key.
// A new save for the same key supersedes the row in place (last write wins);
// rows are never edited field by field.
type SavedCalculation struct {
	ID        int64     `json:"id"`
	ItemKey   string    `json:"item_key"`
	OrderNum  string    `json:"order_num"`
	Template  string    `json:"template_code"`
	UpdatedAT time.Time `json:"updated_at"`

	CalculationResult
}
