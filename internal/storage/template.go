package storage

// TemplateConfig is a stored product template for one treatment category
// (curtains, blinds, shutters). Geometry allowances and the pricing
// method parameters live in JSON columns and are unmarshalled on read.
type TemplateConfig struct {
	ID       int    `json:"ID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	IsActive bool   `json:"is_active"`

	Heading   HeadingOption `json:"heading"`
	WidthType string        `json:"width_type"` // wide | narrow
	Direction string        `json:"direction"`  // standard | railroaded

	Hems         HemAllowances `json:"hems"`
	ReturnDepth  float64       `json:"return_depth"`
	Overlap      float64       `json:"overlap"`
	WastePercent float64       `json:"waste_percent"`

	Linings []LiningOption `json:"linings"`

	PricingMethod string    `json:"pricing_method"`
	FixedPrice    float64   `json:"fixed_price"`
	UnitRates     UnitRates `json:"unit_rates"`
	BasePercent   float64   `json:"base_percent"`

	GridRef  *string  `json:"grid_ref"`
	GridHems GridHems `json:"grid_hems"`

	HeightBands          []HeightBand `json:"height_bands"`
	BreakpointHeight     float64      `json:"breakpoint_height"`
	BreakpointMultiplier float64      `json:"breakpoint_multiplier"`

	ComplexityTiers []ComplexityTier `json:"complexity_tiers"`

	Manufacture         string  `json:"manufacture"` // machine | hand
	HandUpchargeFixed   float64 `json:"hand_upcharge_fixed"`
	HandUpchargePercent float64 `json:"hand_upcharge_percent"`

	ComplexityLabel string `json:"complexity_label"`
	FabricTypeLabel string `json:"fabric_type"`

	// InheritFrom names the sibling template whose pricing method is used
	// when pricing_method = "inherit".
	InheritFrom *string `json:"inherit_from"`
}

type HeadingOption struct {
	Name          string  `json:"name"`
	FullnessRatio float64 `json:"fullness_ratio"`
	ExtraFixed    float64 `json:"extra_fixed"`   // fixed extra length per width, cm
	ExtraPercent  float64 `json:"extra_percent"` // 5 = 5%
}

type HemAllowances struct {
	Bottom float64 `json:"bottom"`
	Side   float64 `json:"side"`
	Seam   float64 `json:"seam"`
	Header float64 `json:"header"`
}

// GridHems carries the hem allowances used by grid-priced shades; hard and
// soft styles are cut differently.
type GridHems struct {
	Hard float64 `json:"hard"`
	Soft float64 `json:"soft"`
}

type LiningOption struct {
	Name          string  `json:"name"`
	CostPerLength float64 `json:"cost_per_length"`
	LaborPerWidth float64 `json:"labor_per_width"`
}

// UnitRates are per-unit prices split by manufacturing type.
type UnitRates struct {
	Machine float64 `json:"machine"`
	Hand    float64 `json:"hand"`
}

type HeightBand struct {
	MaxDrop float64 `json:"max_drop"`
	Price   float64 `json:"price"`
}

type ComplexityTier struct {
	FabricType   string  `json:"fabric_type"`
	Complexity   string  `json:"complexity"`
	MachinePrice float64 `json:"machine_price"`
	HandPrice    float64 `json:"hand_price"`
}

// TemplateAdmin is the flat admin-panel shape; the method params and
// allowances stay as the raw JSON string exactly as the admin UI submits it.
type TemplateAdmin struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	IsActive bool   `json:"is_active"`
	Config   string `json:"config"`
}
