package pricing

import (
	"fmt"

	"drapery-golang/internal/constants"
	"drapery-golang/internal/storage"
)

// Overrides are per-item selections that replace template defaults. Any nil
// field falls through to the template.
type Overrides struct {
	Heading       *storage.HeadingOption `json:"heading,omitempty"`
	Lining        *string                `json:"lining,omitempty"`
	HardwareCost  *float64               `json:"hardware_cost,omitempty"`
	Manufacture   *string                `json:"manufacture,omitempty"`
	Method        *string                `json:"method,omitempty"`
	MarkupPercent *float64               `json:"markup_percent,omitempty"`
}

// Settings carries everything the resolver needs that does not live on the
// template itself: account configuration and the collaborators the service
// layer already fetched (normalized grid, resolved sibling input).
type Settings struct {
	LaborRate        float64
	MinBillableHours float64
	AccountMarkup    *float64
	CategoryMarkup   *float64
	LowMargin        float64
	GoodMargin       float64

	Grid    *CanonicalGrid
	Sibling *Input
}

// Resolve merges a template with per-item overrides into one concrete Input.
// Merge is shallow: a set override wins, an unset one falls through. It fails
// with ConfigError when the configured pricing method requires a field the
// template does not supply.
func Resolve(tmpl *storage.TemplateConfig, measure storage.Measurement, fabric storage.FabricSpec, ov Overrides, set Settings) (*Input, error) {
	if tmpl == nil {
		return nil, &ConfigError{Reason: "template is required"}
	}

	heading := tmpl.Heading
	if ov.Heading != nil {
		heading = *ov.Heading
	}
	if heading.FullnessRatio == 0 {
		// fall back to the catalogue default for known headings
		heading.FullnessRatio = constants.HeadingFullness[heading.Name]
	}

	method := tmpl.PricingMethod
	if ov.Method != nil {
		method = *ov.Method
	}

	manufacture := tmpl.Manufacture
	if ov.Manufacture != nil {
		manufacture = *ov.Manufacture
	}

	in := &Input{
		TemplateCode: tmpl.Code,
		Category:     tmpl.Category,
		Method:       method,

		Fullness:     heading.FullnessRatio,
		ExtraFixed:   heading.ExtraFixed,
		ExtraPercent: heading.ExtraPercent,
		Direction:    tmpl.Direction,
		Hems:         tmpl.Hems,
		ReturnDepth:  tmpl.ReturnDepth,
		Overlap:      tmpl.Overlap,
		WastePercent: tmpl.WastePercent,

		Measure: measure,
		Fabric:  fabric,

		FixedPrice:           tmpl.FixedPrice,
		UnitRates:            tmpl.UnitRates,
		BasePercent:          tmpl.BasePercent,
		Grid:                 set.Grid,
		HeightBands:          tmpl.HeightBands,
		BreakpointHeight:     tmpl.BreakpointHeight,
		BreakpointMultiplier: tmpl.BreakpointMultiplier,
		Tiers:                tmpl.ComplexityTiers,
		FabricType:           tmpl.FabricTypeLabel,
		Complexity:           tmpl.ComplexityLabel,

		Manufacture:         manufacture,
		HandUpchargeFixed:   tmpl.HandUpchargeFixed,
		HandUpchargePercent: tmpl.HandUpchargePercent,

		LaborRate:        set.LaborRate,
		MinBillableHours: set.MinBillableHours,

		Markup: MarkupPolicy{
			ItemOverride:   ov.MarkupPercent,
			Category:       set.CategoryMarkup,
			AccountDefault: set.AccountMarkup,
			LowThreshold:   set.LowMargin,
			GoodThreshold:  set.GoodMargin,
		},

		Sibling: set.Sibling,
	}

	if ov.HardwareCost != nil {
		in.HardwareCost = *ov.HardwareCost
	}

	if ov.Lining != nil {
		lining, err := pickLining(tmpl.Linings, *ov.Lining)
		if err != nil {
			return nil, err
		}
		in.Lining = lining
	}

	if err := checkMethodFields(in, tmpl); err != nil {
		return nil, err
	}

	return in, nil
}

func pickLining(options []storage.LiningOption, name string) (*storage.LiningOption, error) {
	for i := range options {
		if options[i].Name == name {
			return &options[i], nil
		}
	}
	return nil, &ConfigError{Reason: fmt.Sprintf("lining %q is not offered by the template", name)}
}

// checkMethodFields verifies the template actually carries what the chosen
// pricing method consumes, so pricing never discovers a hole halfway through.
func checkMethodFields(in *Input, tmpl *storage.TemplateConfig) error {
	if !constants.PricingMethods[in.Method] {
		return &ConfigError{Reason: fmt.Sprintf("unknown pricing method %q", in.Method)}
	}

	switch in.Method {
	case MethodPerPanel, MethodPerLength, MethodPerArea:
		if in.UnitRates.Machine == 0 && in.UnitRates.Hand == 0 {
			return &ConfigError{Reason: fmt.Sprintf("method %q requires unit rates", in.Method)}
		}
	case MethodPercentage:
		if in.BasePercent == 0 {
			return &ConfigError{Reason: "method \"percentage\" requires base_percent"}
		}
	case MethodGrid:
		if tmpl.GridRef == nil || *tmpl.GridRef == "" {
			return &ConfigError{Reason: "method \"grid\" requires grid_ref"}
		}
		if in.Grid == nil {
			return &ConfigError{Reason: fmt.Sprintf("price grid %q was not supplied", *tmpl.GridRef)}
		}
	case MethodComplexityTier:
		if len(in.Tiers) == 0 {
			return &ConfigError{Reason: "method \"complexity_tier\" requires complexity tiers"}
		}
		if in.FabricType == "" || in.Complexity == "" {
			return &ConfigError{Reason: "method \"complexity_tier\" requires fabric_type and complexity_label"}
		}
	case MethodHeightBreakpoint:
		if len(in.HeightBands) == 0 {
			return &ConfigError{Reason: "method \"height_breakpoint\" requires height bands"}
		}
	case MethodInherit:
		if tmpl.InheritFrom == nil || *tmpl.InheritFrom == "" {
			return &ConfigError{Reason: "method \"inherit\" requires inherit_from"}
		}
		if in.Sibling == nil {
			return &ConfigError{Reason: fmt.Sprintf("sibling template %q was not supplied", *tmpl.InheritFrom)}
		}
	}

	return nil
}
