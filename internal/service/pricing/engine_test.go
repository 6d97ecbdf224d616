package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drapery-golang/internal/storage"
)

// engineInput is a pinch pleat curtain priced per panel: 200 cm rail at 2.5
// fullness over 137 cm usable cloth needs 4 widths, 220 cm cut drop, 8.8
// linear meters.
func engineInput() *Input {
	return &Input{
		TemplateCode: "curtain-pinch",
		Category:     "curtains",
		Method:       MethodPerPanel,
		Fullness:     2.5,
		Manufacture:  "machine",
		UnitRates:    storage.UnitRates{Machine: 50},

		Measure: storage.Measurement{RailWidth: 200, Drop: 220, Quantity: 1},
		Fabric:  storage.FabricSpec{UsableWidth: 137, CostPerLength: 30},

		LaborRate: 40,
		Markup: MarkupPolicy{
			AccountDefault: pctr(50),
			LowThreshold:   15,
			GoodThreshold:  40,
		},
	}
}

func TestCalculate_FullScenario(t *testing.T) {
	res, err := Calculate(engineInput())
	require.NoError(t, err)

	assert.Equal(t, 4, res.WidthsRequired)
	assert.InDelta(t, 8.8, res.LinearMeters, 1e-9)
	assert.InDelta(t, 264.0, res.FabricCost, 1e-9)
	// 4 panels at 50 plus 1.448 labor hours at 40
	assert.InDelta(t, 1.448, res.LaborHours, 1e-9)
	assert.InDelta(t, 257.92, res.ManufacturingCost, 1e-9)
	assert.Equal(t, 0.0, res.OptionsCost)
	assert.InDelta(t, 521.92, res.TotalCost, 1e-9)
	assert.InDelta(t, 782.88, res.TotalSelling, 1e-9)
	assert.Equal(t, 50.0, res.MarkupPercent)
	assert.Equal(t, MarkupSourceAccount, res.MarkupSource)
	assert.Equal(t, MarginNormal, res.MarginBand)
	assert.Equal(t, AlgorithmVersion, res.AlgorithmVersion)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	first, err := Calculate(engineInput())
	require.NoError(t, err)

	second, err := Calculate(engineInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	in := engineInput()

	_, err := Calculate(in)

	require.NoError(t, err)
	assert.Equal(t, 0.0, in.BaseCost)
}

func TestCalculate_QuantityScalesEverything(t *testing.T) {
	single, err := Calculate(engineInput())
	require.NoError(t, err)

	in := engineInput()
	in.Measure.Quantity = 3
	triple, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 3*single.LinearMeters, triple.LinearMeters, 1e-9)
	assert.InDelta(t, 3*single.FabricCost, triple.FabricCost, 1e-9)
	assert.InDelta(t, 3*single.ManufacturingCost, triple.ManufacturingCost, 1e-9)
	assert.InDelta(t, 3*single.LaborHours, triple.LaborHours, 1e-9)
	assert.InDelta(t, 3*single.TotalCost, triple.TotalCost, 1e-9)
}

func TestCalculate_FixedMethodStaysFlatAcrossQuantity(t *testing.T) {
	in := engineInput()
	in.Method = MethodFixed
	in.FixedPrice = 150
	in.Measure.Quantity = 3

	res, err := Calculate(in)

	require.NoError(t, err)
	// 150 flat for the line plus 3 * 1.448 labor hours at 40
	assert.InDelta(t, 150+3*57.92, res.ManufacturingCost, 1e-9)
}

func TestCalculate_InheritedFixedStaysFlat(t *testing.T) {
	sibling := engineInput()
	sibling.Method = MethodFixed
	sibling.FixedPrice = 150

	in := engineInput()
	in.Method = MethodInherit
	in.Sibling = sibling
	in.Measure.Quantity = 3

	res, err := Calculate(in)

	require.NoError(t, err)
	assert.InDelta(t, 150+3*57.92, res.ManufacturingCost, 1e-9)
}

func TestCalculate_PercentageDefaultsToFabricCost(t *testing.T) {
	in := engineInput()
	in.Method = MethodPercentage
	in.BasePercent = 50

	res, err := Calculate(in)

	require.NoError(t, err)
	// half of the 264 fabric cost plus labor
	assert.InDelta(t, 132+57.92, res.ManufacturingCost, 1e-9)
}

func TestCalculate_OptionsCost(t *testing.T) {
	in := engineInput()
	in.HardwareCost = 42
	in.Lining = &storage.LiningOption{Name: "Standard", CostPerLength: 6.5, LaborPerWidth: 4}

	res, err := Calculate(in)

	require.NoError(t, err)
	// 42 hardware + 6.5 * 8.8 lining cloth + 4 * 4 lining make-up
	assert.InDelta(t, 115.2, res.OptionsCost, 1e-9)
	assert.InDelta(t, 521.92+115.2, res.TotalCost, 1e-9)
}

func TestCalculate_ReportsEveryProblemAtOnce(t *testing.T) {
	in := engineInput()
	in.Measure = storage.Measurement{RailWidth: -1, Drop: 0, Quantity: 0}
	in.Fabric.CostPerLength = -5
	in.LaborRate = 0

	_, err := Calculate(in)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Problems, 5)
}

func TestCalculate_PropagatesLookupError(t *testing.T) {
	grid, err := NormalizeGrid(storage.RawPriceGrid{
		Ref:         "small",
		WidthPrices: []storage.WidthPrice{{Width: 120, Price: 40}},
	})
	require.NoError(t, err)

	in := engineInput()
	in.Method = MethodGrid
	in.Grid = grid

	_, err = Calculate(in)

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
}
