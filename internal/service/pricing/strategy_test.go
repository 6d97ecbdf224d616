package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drapery-golang/internal/storage"
)

func strategyInput(method string) *Input {
	return &Input{
		Method:      method,
		Manufacture: "machine",
		Measure:     storage.Measurement{RailWidth: 200, Drop: 220, Quantity: 1},
	}
}

func TestPriceMethod_Fixed(t *testing.T) {
	in := strategyInput(MethodFixed)
	in.FixedPrice = 50

	cost, err := PriceMethod(in, Yield{WidthsRequired: 4, LinearMeters: 9})

	require.NoError(t, err)
	assert.Equal(t, 50.0, cost)
}

func TestPriceMethod_PerPanel(t *testing.T) {
	in := strategyInput(MethodPerPanel)
	in.UnitRates = storage.UnitRates{Machine: 50, Hand: 80}

	// 200 wide at 2.5 fullness over 137 usable -> 4 widths
	cost, err := PriceMethod(in, Yield{WidthsRequired: 4})

	require.NoError(t, err)
	assert.Equal(t, 200.0, cost)
}

func TestPriceMethod_PerLength(t *testing.T) {
	in := strategyInput(MethodPerLength)
	in.UnitRates = storage.UnitRates{Machine: 50}

	cost, err := PriceMethod(in, Yield{LinearMeters: 2})

	require.NoError(t, err)
	assert.Equal(t, 100.0, cost)
}

func TestPriceMethod_PerLengthSelectsHandRate(t *testing.T) {
	in := strategyInput(MethodPerLength)
	in.Manufacture = "hand"
	in.UnitRates = storage.UnitRates{Machine: 50, Hand: 80}

	cost, err := PriceMethod(in, Yield{LinearMeters: 2})

	require.NoError(t, err)
	assert.Equal(t, 160.0, cost)
}

func TestPriceMethod_PerArea(t *testing.T) {
	in := strategyInput(MethodPerArea)
	in.UnitRates = storage.UnitRates{Machine: 50}

	// raw 200x220 cm -> 4.4 m², not fullness-adjusted
	cost, err := PriceMethod(in, Yield{WidthsRequired: 4})

	require.NoError(t, err)
	assert.InDelta(t, 220.0, cost, 1e-9)
}

func TestPriceMethod_Percentage(t *testing.T) {
	in := strategyInput(MethodPercentage)
	in.BasePercent = 50
	in.BaseCost = 300

	cost, err := PriceMethod(in, Yield{})

	require.NoError(t, err)
	assert.Equal(t, 150.0, cost)
}

func TestPriceMethod_PercentageNeedsBaseCost(t *testing.T) {
	in := strategyInput(MethodPercentage)
	in.BasePercent = 50

	_, err := PriceMethod(in, Yield{})

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestPriceMethod_GridLookup(t *testing.T) {
	grid, err := NormalizeGrid(storage.RawPriceGrid{
		Ref:          "roman-std",
		WidthColumns: []float64{150, 250},
		DropRows: []storage.DropRow{
			{Drop: 200, Prices: []*float64{fptr(90), fptr(120)}},
			{Drop: 300, Prices: []*float64{fptr(110), fptr(150)}},
		},
	})
	require.NoError(t, err)

	in := strategyInput(MethodGrid)
	in.Grid = grid

	cost, err := PriceMethod(in, Yield{})

	require.NoError(t, err)
	// 200 wide rounds up to the 250 column, 220 drop into the 300 row
	assert.Equal(t, 150.0, cost)
}

func TestPriceMethod_GridOutOfRange(t *testing.T) {
	grid, err := NormalizeGrid(storage.RawPriceGrid{
		Ref:         "small",
		WidthPrices: []storage.WidthPrice{{Width: 120, Price: 40}},
	})
	require.NoError(t, err)

	in := strategyInput(MethodGrid)
	in.Grid = grid

	_, err = PriceMethod(in, Yield{})

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
}

func TestPriceMethod_ComplexityTier(t *testing.T) {
	in := strategyInput(MethodComplexityTier)
	in.FabricType = "sheer"
	in.Complexity = "complex"
	in.Tiers = []storage.ComplexityTier{
		{FabricType: "standard", Complexity: "simple", MachinePrice: 60, HandPrice: 95},
		{FabricType: "sheer", Complexity: "complex", MachinePrice: 110, HandPrice: 170},
	}

	cost, err := PriceMethod(in, Yield{})
	require.NoError(t, err)
	assert.Equal(t, 110.0, cost)

	in.Manufacture = "hand"
	in.HandUpchargeFixed = 0
	cost, err = PriceMethod(in, Yield{})
	require.NoError(t, err)
	assert.Equal(t, 170.0, cost)
}

func TestPriceMethod_ComplexityTierMissing(t *testing.T) {
	in := strategyInput(MethodComplexityTier)
	in.FabricType = "velvet"
	in.Complexity = "simple"
	in.Tiers = []storage.ComplexityTier{
		{FabricType: "standard", Complexity: "simple", MachinePrice: 60},
	}

	_, err := PriceMethod(in, Yield{})

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestPriceMethod_HeightBreakpoint(t *testing.T) {
	in := strategyInput(MethodHeightBreakpoint)
	in.HeightBands = []storage.HeightBand{
		{MaxDrop: 150, Price: 100},
		{MaxDrop: 250, Price: 140},
	}

	cost, err := PriceMethod(in, Yield{})
	require.NoError(t, err)
	assert.Equal(t, 140.0, cost)

	// above the breakpoint the band price is multiplied
	in.BreakpointHeight = 180
	in.BreakpointMultiplier = 1.25
	cost, err = PriceMethod(in, Yield{})
	require.NoError(t, err)
	assert.InDelta(t, 175.0, cost, 1e-9)
}

func TestPriceMethod_HeightBreakpointOutOfRange(t *testing.T) {
	in := strategyInput(MethodHeightBreakpoint)
	in.Measure.Drop = 400
	in.HeightBands = []storage.HeightBand{{MaxDrop: 250, Price: 140}}

	_, err := PriceMethod(in, Yield{})

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
}

func TestPriceMethod_Inherit(t *testing.T) {
	sibling := strategyInput(MethodPerPanel)
	sibling.UnitRates = storage.UnitRates{Machine: 50}

	in := strategyInput(MethodInherit)
	in.Sibling = sibling

	cost, err := PriceMethod(in, Yield{WidthsRequired: 4})

	require.NoError(t, err)
	assert.Equal(t, 200.0, cost)
}

func TestPriceMethod_InheritIsBoundedToOneHop(t *testing.T) {
	grandSibling := strategyInput(MethodFixed)
	grandSibling.FixedPrice = 10

	sibling := strategyInput(MethodInherit)
	sibling.Sibling = grandSibling

	in := strategyInput(MethodInherit)
	in.Sibling = sibling

	_, err := PriceMethod(in, Yield{})

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "one indirection")
}

func TestPriceMethod_InheritWithoutSibling(t *testing.T) {
	in := strategyInput(MethodInherit)

	_, err := PriceMethod(in, Yield{})

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestPriceMethod_UnknownMethod(t *testing.T) {
	in := strategyInput("per_kilo")

	_, err := PriceMethod(in, Yield{})

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestPriceMethod_HandFinishedUpcharge(t *testing.T) {
	in := strategyInput(MethodFixed)
	in.FixedPrice = 100
	in.Manufacture = "hand"
	in.HandUpchargeFixed = 10
	in.HandUpchargePercent = 10

	cost, err := PriceMethod(in, Yield{})

	require.NoError(t, err)
	// (100 + 10) * 1.10
	assert.InDelta(t, 121.0, cost, 1e-9)
}
