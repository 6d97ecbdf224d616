package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drapery-golang/internal/storage"
)

func fptr(v float64) *float64 { return &v }

func TestNormalizeGrid_WidthPricePairs(t *testing.T) {
	raw := storage.RawPriceGrid{
		Ref: "roller-basic",
		WidthPrices: []storage.WidthPrice{
			{Width: 240, Price: 70}, // stored unordered on purpose
			{Width: 120, Price: 40},
			{Width: 180, Price: 55},
		},
	}

	grid, err := NormalizeGrid(raw)
	require.NoError(t, err)

	require.Len(t, grid.WidthBands, 3)
	assert.Empty(t, grid.DropBands)
	assert.Equal(t, GridBand{Min: 0, Max: 120}, grid.WidthBands[0])
	assert.Equal(t, GridBand{Min: 120, Max: 180}, grid.WidthBands[1])

	// drop is ignored for a one-dimensional grid
	price, err := grid.Lookup(150, 999)
	require.NoError(t, err)
	assert.Equal(t, 55.0, price)
}

func TestNormalizeGrid_ColumnsAndRows(t *testing.T) {
	raw := storage.RawPriceGrid{
		Ref:          "roman-std",
		WidthColumns: []float64{100, 200},
		DropRows: []storage.DropRow{
			{Drop: 150, Prices: []*float64{fptr(10), fptr(20)}},
			{Drop: 250, Prices: []*float64{fptr(30), nil}},
		},
	}

	grid, err := NormalizeGrid(raw)
	require.NoError(t, err)

	price, err := grid.Lookup(100, 150)
	require.NoError(t, err)
	assert.Equal(t, 10.0, price)

	// width rounds up to the 200 column, drop stays in the 150 row
	price, err = grid.Lookup(150, 120)
	require.NoError(t, err)
	assert.Equal(t, 20.0, price)

	// drop rounds up into the 250 row
	price, err = grid.Lookup(80, 200)
	require.NoError(t, err)
	assert.Equal(t, 30.0, price)
}

func TestNormalizeGrid_ColumnsAndRows_RowWidthMismatch(t *testing.T) {
	raw := storage.RawPriceGrid{
		Ref:          "broken",
		WidthColumns: []float64{100, 200},
		DropRows: []storage.DropRow{
			{Drop: 150, Prices: []*float64{fptr(10)}},
		},
	}

	_, err := NormalizeGrid(raw)

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestNormalizeGrid_LabeledRanges(t *testing.T) {
	raw := storage.RawPriceGrid{
		Ref:         "shutter-premium",
		WidthRanges: []string{"0-120", "121-240"},
		DropRanges:  []string{"0-150", "151-300"},
		Prices: [][]*float64{
			{fptr(55), fptr(75)},
			{fptr(80), fptr(105)},
		},
	}

	grid, err := NormalizeGrid(raw)
	require.NoError(t, err)

	require.Len(t, grid.WidthBands, 2)
	require.Len(t, grid.DropBands, 2)
	assert.Equal(t, "121-240", grid.WidthBands[1].Label)

	price, err := grid.Lookup(240, 300)
	require.NoError(t, err)
	assert.Equal(t, 105.0, price)
}

func TestNormalizeGrid_BadRangeLabel(t *testing.T) {
	raw := storage.RawPriceGrid{
		Ref:         "broken",
		WidthRanges: []string{"wide"},
		DropRanges:  []string{"0-150"},
		Prices:      [][]*float64{{fptr(10)}},
	}

	_, err := NormalizeGrid(raw)

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestNormalizeGrid_UnrecognizedShape(t *testing.T) {
	_, err := NormalizeGrid(storage.RawPriceGrid{Ref: "empty"})

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestLookup_BoundaryMatchesOwnBand(t *testing.T) {
	raw := storage.RawPriceGrid{
		Ref:         "boundary",
		WidthRanges: []string{"0-120", "121-240"},
		DropRanges:  []string{"0-150", "151-300"},
		Prices: [][]*float64{
			{fptr(55), fptr(75)},
			{fptr(80), fptr(105)},
		},
	}
	grid, err := NormalizeGrid(raw)
	require.NoError(t, err)

	// a measurement exactly on a band's upper bound belongs to that band,
	// not the next one up
	price, err := grid.Lookup(120, 150)
	require.NoError(t, err)
	assert.Equal(t, 55.0, price)
}

func TestLookup_OutOfRangeFailsInsteadOfExtrapolating(t *testing.T) {
	grid, err := NormalizeGrid(storage.RawPriceGrid{
		Ref:         "small",
		WidthPrices: []storage.WidthPrice{{Width: 120, Price: 40}},
	})
	require.NoError(t, err)

	_, err = grid.Lookup(500, 100)

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
	assert.Equal(t, 500.0, lErr.Width)
}

func TestLookup_NullCellFails(t *testing.T) {
	grid, err := NormalizeGrid(storage.RawPriceGrid{
		Ref:          "gappy",
		WidthColumns: []float64{100, 200},
		DropRows: []storage.DropRow{
			{Drop: 150, Prices: []*float64{fptr(10), nil}},
		},
	})
	require.NoError(t, err)

	_, err = grid.Lookup(150, 100)

	var lErr *LookupError
	require.ErrorAs(t, err, &lErr)
}
