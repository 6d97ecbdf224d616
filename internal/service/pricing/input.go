package pricing

import "drapery-golang/internal/storage"

// Pricing method identifiers as stored on templates.
const (
	MethodFixed            = "fixed"
	MethodPerPanel         = "per_panel"
	MethodPerLength        = "per_length"
	MethodPerArea          = "per_area"
	MethodPercentage       = "percentage"
	MethodGrid             = "grid"
	MethodComplexityTier   = "complexity_tier"
	MethodHeightBreakpoint = "height_breakpoint"
	MethodInherit          = "inherit"
)

// Input is the fully merged calculation input: template defaults, per-item
// overrides, the measurement and the chosen fabric, plus everything the
// configured pricing method needs. It is built once by Resolve and treated
// as read-only by every component after that.
type Input struct {
	TemplateCode string
	Category     string
	Method       string

	// geometry
	Fullness     float64
	ExtraFixed   float64
	ExtraPercent float64
	Direction    string
	Hems         storage.HemAllowances
	ReturnDepth  float64
	Overlap      float64
	WastePercent float64

	Measure storage.Measurement
	Fabric  storage.FabricSpec

	// method parameters
	FixedPrice           float64
	UnitRates            storage.UnitRates
	BasePercent          float64
	BaseCost             float64
	Grid                 *CanonicalGrid
	HeightBands          []storage.HeightBand
	BreakpointHeight     float64
	BreakpointMultiplier float64
	Tiers                []storage.ComplexityTier
	FabricType           string
	Complexity           string

	Manufacture         string
	HandUpchargeFixed   float64
	HandUpchargePercent float64

	// options
	Lining       *storage.LiningOption
	HardwareCost float64

	// labor
	LaborRate        float64
	MinBillableHours float64

	Markup MarkupPolicy

	// Sibling is the resolved input of the template named by inherit_from.
	// It is passed in explicitly; the engine never reaches into ambient
	// state, and inheritance is limited to one indirection.
	Sibling *Input
}
