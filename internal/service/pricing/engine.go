package pricing

import (
	"fmt"

	"drapery-golang/internal/storage"
)

// AlgorithmVersion tags every result so stored snapshots stay interpretable
// after the arithmetic changes.
const AlgorithmVersion = "2"

// Calculate runs the whole engine for one resolved input: validation first,
// then yield, method pricing and labor, options, and finally markup. Cost and
// sell price always come out of the same invocation; no caller ever holds one
// without the other.
//
// The function is pure and deterministic: identical input, identical result.
func Calculate(in *Input) (storage.CalculationResult, error) {
	if problems := validate(in); len(problems) > 0 {
		return storage.CalculationResult{}, &ValidationError{Problems: problems}
	}

	y, err := ComputeYield(in)
	if err != nil {
		return storage.CalculationResult{}, err
	}

	qty := float64(in.Measure.Quantity)

	linearTotal := y.LinearMeters * qty
	fabricCost := linearTotal * in.Fabric.CostPerLength

	// percentage pricing takes a share of a sibling cost; fabric cost is the
	// default base when the caller supplied none
	priced := *in
	if priced.BaseCost == 0 {
		priced.BaseCost = fabricCost
	}

	methodCost, err := PriceMethod(&priced, y)
	if err != nil {
		return storage.CalculationResult{}, err
	}
	// the fixed method is flat for the whole line, whether configured
	// directly or reached through inheritance
	effective := in.Method
	if effective == MethodInherit && in.Sibling != nil {
		effective = in.Sibling.Method
	}
	if effective != MethodFixed {
		methodCost *= qty
	}

	labor, err := Labor(in)
	if err != nil {
		return storage.CalculationResult{}, err
	}
	laborHours := labor.Hours * qty
	manufacturingCost := methodCost + labor.Cost*qty

	optionsCost := in.HardwareCost * qty
	if in.Lining != nil {
		optionsCost += (in.Lining.CostPerLength*y.LinearMeters + in.Lining.LaborPerWidth*float64(y.WidthsRequired)) * qty
	}

	totalCost := fabricCost + manufacturingCost + optionsCost

	markup, err := ApplyMarkup(totalCost, in.Markup)
	if err != nil {
		return storage.CalculationResult{}, err
	}

	return storage.CalculationResult{
		LinearMeters:      linearTotal,
		WidthsRequired:    y.WidthsRequired,
		FabricCost:        fabricCost,
		ManufacturingCost: manufacturingCost,
		OptionsCost:       optionsCost,
		TotalCost:         totalCost,
		TotalSelling:      markup.Selling,
		MarkupPercent:     markup.Percent,
		MarkupSource:      markup.Source,
		MarginBand:        markup.MarginBand,
		LaborHours:        laborHours,
		AlgorithmVersion:  AlgorithmVersion,
	}, nil
}

// validate reports every malformed input at once, before anything runs.
func validate(in *Input) []string {
	var problems []string

	if in.Measure.RailWidth <= 0 {
		problems = append(problems, fmt.Sprintf("rail width must be positive, got %g", in.Measure.RailWidth))
	}
	if in.Measure.Drop <= 0 {
		problems = append(problems, fmt.Sprintf("drop must be positive, got %g", in.Measure.Drop))
	}
	if in.Measure.Quantity < 1 {
		problems = append(problems, fmt.Sprintf("quantity must be at least 1, got %d", in.Measure.Quantity))
	}
	if in.Fabric.CostPerLength < 0 {
		problems = append(problems, fmt.Sprintf("fabric cost must not be negative, got %g", in.Fabric.CostPerLength))
	}
	if in.LaborRate <= 0 {
		problems = append(problems, fmt.Sprintf("labor rate must be positive, got %g", in.LaborRate))
	}

	return problems
}
