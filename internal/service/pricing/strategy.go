package pricing

import "fmt"

// PriceMethod dispatches to the pricing method named in the input and returns
// the manufacturing cost for one treatment. Hand-finished work adds the
// configured upcharge after the base method result.
func PriceMethod(in *Input, y Yield) (float64, error) {
	cost, err := priceByMethod(in, y, 0)
	if err != nil {
		return 0, err
	}

	if in.Manufacture == "hand" {
		cost += in.HandUpchargeFixed
		cost += cost * in.HandUpchargePercent / 100
	}

	return cost, nil
}

func priceByMethod(in *Input, y Yield, depth int) (float64, error) {
	switch in.Method {
	case MethodFixed:
		return in.FixedPrice, nil

	case MethodPerPanel:
		return float64(y.WidthsRequired) * in.unitRate(), nil

	case MethodPerLength:
		return y.LinearMeters * in.unitRate(), nil

	case MethodPerArea:
		// raw dimensions, not fullness-adjusted; cm² -> m²
		area := (in.Measure.RailWidth / 100) * (in.Measure.Drop / 100)
		return area * in.unitRate(), nil

	case MethodPercentage:
		if in.BaseCost == 0 {
			return 0, &ConfigError{Reason: "method \"percentage\" has no base cost to take a share of"}
		}
		return in.BaseCost * in.BasePercent / 100, nil

	case MethodGrid:
		if in.Grid == nil {
			return 0, &ConfigError{Reason: "method \"grid\" has no normalized grid"}
		}
		return in.Grid.Lookup(in.Measure.RailWidth, in.Measure.Drop)

	case MethodComplexityTier:
		return priceByTier(in)

	case MethodHeightBreakpoint:
		return priceByHeightBand(in)

	case MethodInherit:
		return priceInherited(in, y, depth)

	default:
		return 0, &ConfigError{Reason: fmt.Sprintf("unknown pricing method %q", in.Method)}
	}
}

func (in *Input) unitRate() float64 {
	if in.Manufacture == "hand" {
		return in.UnitRates.Hand
	}
	return in.UnitRates.Machine
}

func priceByTier(in *Input) (float64, error) {
	for _, tier := range in.Tiers {
		if tier.FabricType != in.FabricType || tier.Complexity != in.Complexity {
			continue
		}
		if in.Manufacture == "hand" {
			return tier.HandPrice, nil
		}
		return tier.MachinePrice, nil
	}
	return 0, &ConfigError{
		Reason: fmt.Sprintf("no complexity tier for fabric_type=%q complexity=%q", in.FabricType, in.Complexity),
	}
}

func priceByHeightBand(in *Input) (float64, error) {
	drop := in.Measure.Drop
	for _, band := range in.HeightBands {
		if drop > band.MaxDrop {
			continue
		}
		price := band.Price
		if in.BreakpointHeight > 0 && drop > in.BreakpointHeight && in.BreakpointMultiplier > 0 {
			price *= in.BreakpointMultiplier
		}
		return price, nil
	}
	return 0, &LookupError{
		Width:  in.Measure.RailWidth,
		Drop:   drop,
		Reason: "drop exceeds every configured height band",
	}
}

// priceInherited re-dispatches with the sibling's method and parameters
// applied to this item's geometry and yield. One indirection only: an
// inherited template that itself inherits is a cycle.
func priceInherited(in *Input, y Yield, depth int) (float64, error) {
	if depth >= 1 {
		return 0, &ConfigError{Reason: "pricing inheritance is limited to one indirection"}
	}
	if in.Sibling == nil {
		return 0, &ConfigError{Reason: "method \"inherit\" has no sibling configuration"}
	}

	effective := *in
	sib := in.Sibling

	effective.Method = sib.Method
	effective.FixedPrice = sib.FixedPrice
	effective.UnitRates = sib.UnitRates
	effective.BasePercent = sib.BasePercent
	effective.Grid = sib.Grid
	effective.HeightBands = sib.HeightBands
	effective.BreakpointHeight = sib.BreakpointHeight
	effective.BreakpointMultiplier = sib.BreakpointMultiplier
	effective.Tiers = sib.Tiers
	effective.FabricType = sib.FabricType
	effective.Complexity = sib.Complexity
	effective.Sibling = sib.Sibling

	return priceByMethod(&effective, y, depth+1)
}
