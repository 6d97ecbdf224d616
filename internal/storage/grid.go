package storage

// RawPriceGrid is the stored price-table shape. Exactly one of the three
// variants is populated; which one is decided structurally by the fields
// present in the JSON column.
//
//	variant 1: width_prices                     (one-dimensional, width only)
//	variant 2: width_columns + drop_rows        (matrix addressed row then column)
//	variant 3: width_ranges + drop_ranges + prices
type RawPriceGrid struct {
	Ref string `json:"ref"`

	WidthPrices []WidthPrice `json:"width_prices,omitempty"`

	WidthColumns []float64 `json:"width_columns,omitempty"`
	DropRows     []DropRow `json:"drop_rows,omitempty"`

	WidthRanges []string     `json:"width_ranges,omitempty"`
	DropRanges  []string     `json:"drop_ranges,omitempty"`
	Prices      [][]*float64 `json:"prices,omitempty"`
}

type WidthPrice struct {
	Width float64 `json:"width"`
	Price float64 `json:"price"`
}

type DropRow struct {
	Drop   float64    `json:"drop"`
	Prices []*float64 `json:"prices"`
}
