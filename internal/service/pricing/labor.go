package pricing

import "drapery-golang/internal/constants"

// Hours per meter of perimeter and per square meter of face, before the
// complexity multiplier.
const (
	hoursPerPerimeterMeter = 0.12
	hoursPerSquareMeter    = 0.10
)

type LaborEstimate struct {
	Hours float64 `json:"hours"`
	Cost  float64 `json:"cost"`
}

// Labor estimates making-up time and cost for one treatment from its
// perimeter and area, scaled by the complexity multiplier, with a minimum
// billable floor regardless of size.
func Labor(in *Input) (LaborEstimate, error) {
	if in.LaborRate <= 0 {
		return LaborEstimate{}, &ValidationError{Problems: []string{"labor rate must be positive"}}
	}

	w := in.Measure.RailWidth / 100
	d := in.Measure.Drop / 100

	perimeter := 2 * (w + d)
	area := w * d

	mult, ok := constants.ComplexityMultiplier[in.Complexity]
	if !ok {
		mult = 1.0
	}

	hours := (perimeter*hoursPerPerimeterMeter + area*hoursPerSquareMeter) * mult
	if hours < in.MinBillableHours {
		hours = in.MinBillableHours
	}

	return LaborEstimate{Hours: hours, Cost: hours * in.LaborRate}, nil
}
