package pricing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"drapery-golang/internal/storage"
)

// GridBand is one canonical width or drop interval. Min is exclusive of the
// previous band, Max is the inclusive matching bound.
type GridBand struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Label string  `json:"label,omitempty"`
}

// CanonicalGrid is the single lookup model every stored grid shape converges
// on: ordered width bands, ordered drop bands (empty for width-only grids)
// and a price matrix addressed [dropIndex][widthIndex]. A nil cell means the
// supplier does not make that size.
type CanonicalGrid struct {
	Ref        string       `json:"ref"`
	WidthBands []GridBand   `json:"width_bands"`
	DropBands  []GridBand   `json:"drop_bands,omitempty"`
	Prices     [][]*float64 `json:"prices"`
}

// NormalizeGrid converts any of the three stored price-table shapes into the
// canonical form. The variant is discriminated by which fields are present;
// lookup logic never sees a raw shape.
func NormalizeGrid(raw storage.RawPriceGrid) (*CanonicalGrid, error) {
	switch {
	case len(raw.WidthPrices) > 0:
		return normalizeWidthPrices(raw)
	case len(raw.WidthColumns) > 0 && len(raw.DropRows) > 0:
		return normalizeColumnsRows(raw)
	case len(raw.WidthRanges) > 0 && len(raw.DropRanges) > 0:
		return normalizeLabeledRanges(raw)
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("price grid %q has no recognized shape", raw.Ref)}
	}
}

// variant 1: a flat list of {width, price} pairs becomes a one-row grid
// indexed only by width band.
func normalizeWidthPrices(raw storage.RawPriceGrid) (*CanonicalGrid, error) {
	pairs := make([]storage.WidthPrice, len(raw.WidthPrices))
	copy(pairs, raw.WidthPrices)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Width < pairs[j].Width })

	grid := &CanonicalGrid{Ref: raw.Ref, Prices: [][]*float64{make([]*float64, len(pairs))}}
	prev := 0.0
	for i, p := range pairs {
		grid.WidthBands = append(grid.WidthBands, GridBand{Min: prev, Max: p.Width})
		price := p.Price
		grid.Prices[0][i] = &price
		prev = p.Width
	}
	return grid, nil
}

// variant 2: ordered band lists with a matrix keyed by row.
func normalizeColumnsRows(raw storage.RawPriceGrid) (*CanonicalGrid, error) {
	grid := &CanonicalGrid{Ref: raw.Ref}

	prev := 0.0
	for _, w := range raw.WidthColumns {
		grid.WidthBands = append(grid.WidthBands, GridBand{Min: prev, Max: w})
		prev = w
	}

	prev = 0.0
	for _, row := range raw.DropRows {
		if len(row.Prices) != len(raw.WidthColumns) {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("price grid %q: drop row %g has %d prices for %d width columns",
					raw.Ref, row.Drop, len(row.Prices), len(raw.WidthColumns)),
			}
		}
		grid.DropBands = append(grid.DropBands, GridBand{Min: prev, Max: row.Drop})
		grid.Prices = append(grid.Prices, row.Prices)
		prev = row.Drop
	}
	return grid, nil
}

// variant 3: labeled range lists ("121-180") with a separate matrix.
func normalizeLabeledRanges(raw storage.RawPriceGrid) (*CanonicalGrid, error) {
	grid := &CanonicalGrid{Ref: raw.Ref}

	for _, label := range raw.WidthRanges {
		band, err := parseRange(raw.Ref, label)
		if err != nil {
			return nil, err
		}
		grid.WidthBands = append(grid.WidthBands, band)
	}
	for _, label := range raw.DropRanges {
		band, err := parseRange(raw.Ref, label)
		if err != nil {
			return nil, err
		}
		grid.DropBands = append(grid.DropBands, band)
	}

	if len(raw.Prices) != len(grid.DropBands) {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("price grid %q: %d price rows for %d drop ranges", raw.Ref, len(raw.Prices), len(grid.DropBands)),
		}
	}
	for i, row := range raw.Prices {
		if len(row) != len(grid.WidthBands) {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("price grid %q: row %d has %d prices for %d width ranges", raw.Ref, i, len(row), len(grid.WidthBands)),
			}
		}
	}
	grid.Prices = raw.Prices

	return grid, nil
}

// parseRange turns "121-180" (or "0 - 120") into a numeric band.
func parseRange(ref, label string) (GridBand, error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return GridBand{}, &ConfigError{Reason: fmt.Sprintf("price grid %q: bad range label %q", ref, label)}
	}
	min, errMin := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	max, errMax := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errMin != nil || errMax != nil || max <= min {
		return GridBand{}, &ConfigError{Reason: fmt.Sprintf("price grid %q: bad range label %q", ref, label)}
	}
	return GridBand{Min: min, Max: max, Label: label}, nil
}

// Lookup resolves the cell for a measurement. A measurement matches the
// smallest band whose upper bound is >= the measurement (round up to the next
// band, consistent with over-provisioning fabric). Beyond every band the
// lookup fails rather than extrapolating, and a null cell fails too.
func (g *CanonicalGrid) Lookup(width, drop float64) (float64, error) {
	wIdx, ok := matchBand(g.WidthBands, width)
	if !ok {
		return 0, &LookupError{Width: width, Drop: drop, Reason: fmt.Sprintf("width exceeds every band of grid %q", g.Ref)}
	}

	dIdx := 0
	if len(g.DropBands) > 0 {
		dIdx, ok = matchBand(g.DropBands, drop)
		if !ok {
			return 0, &LookupError{Width: width, Drop: drop, Reason: fmt.Sprintf("drop exceeds every band of grid %q", g.Ref)}
		}
	}

	cell := g.Prices[dIdx][wIdx]
	if cell == nil {
		return 0, &LookupError{Width: width, Drop: drop, Reason: fmt.Sprintf("grid %q has no price for the matched bands", g.Ref)}
	}
	return *cell, nil
}

func matchBand(bands []GridBand, v float64) (int, bool) {
	for i, b := range bands {
		if v <= b.Max {
			return i, true
		}
	}
	return 0, false
}
