package pricing

import "math"

// Yield is the fabric requirement for a single treatment. Geometry comes in
// centimeters; LinearMeters is the cut length in meters.
type Yield struct {
	LinearMeters   float64 `json:"linear_meters"`
	WidthsRequired int     `json:"widths_required"`
	CutDrop        float64 `json:"cut_drop"` // per-width cut length, cm, repeat-rounded
}

// ComputeYield derives fabric quantity from geometry and fabric attributes.
//
// raw width = rail width × fullness + returns + overlap, widths = next whole
// fabric width above that. Each width's cut drop takes header/bottom hems and
// the heading's fixed extra, is scaled for the percentage extras and waste,
// and rounds up to a whole vertical pattern repeat. Railroaded fabric runs
// sideways, so width and drop swap roles before the same arithmetic.
func ComputeYield(in *Input) (Yield, error) {
	if in.Measure.RailWidth <= 0 || in.Measure.Drop <= 0 {
		return Yield{}, &ValidationError{Problems: []string{"rail width and drop must be positive"}}
	}
	if in.Fabric.UsableWidth <= 0 {
		return Yield{}, &ConfigError{Reason: "fabric usable width must be positive"}
	}

	fullness := in.Fullness
	if fullness == 0 {
		fullness = 1
	}

	width, drop := in.Measure.RailWidth, in.Measure.Drop
	repeat := in.Fabric.VerticalRepeat
	if in.Direction == "railroaded" {
		width, drop = drop, width
		if in.Fabric.HorizontalRepeat > 0 {
			repeat = in.Fabric.HorizontalRepeat
		}
	}

	rawWidth := width*fullness + in.ReturnDepth + in.Overlap
	widths := int(math.Ceil(rawWidth / in.Fabric.UsableWidth))
	if widths < 1 {
		widths = 1
	}

	cutDrop := drop + in.Hems.Header + in.Hems.Bottom + in.ExtraFixed
	cutDrop *= 1 + (in.ExtraPercent+in.WastePercent)/100

	if repeat > 0 {
		cutDrop = math.Ceil(cutDrop/repeat) * repeat
	}

	return Yield{
		LinearMeters:   float64(widths) * cutDrop / 100,
		WidthsRequired: widths,
		CutDrop:        cutDrop,
	}, nil
}
