package constants

var (
	// Default fullness ratio by heading name, used when a template's heading
	// carries no explicit ratio.
	HeadingFullness = map[string]float64{
		"Flat panel":   1.1,
		"Eyelet":       2.0,
		"Wave":         2.1,
		"Pencil pleat": 2.2,
		"Double pleat": 2.3,
		"Pinch pleat":  2.4,
		"Triple pleat": 2.5,
		"Goblet pleat": 2.5,
		"Box pleat":    2.6,
	}

	// Labor multiplier per complexity label.
	ComplexityMultiplier = map[string]float64{
		"simple":   1.0,
		"moderate": 1.4,
		"complex":  2.0,
	}

	// Recognized pricing methods.
	PricingMethods = map[string]bool{
		"fixed":             true,
		"per_panel":         true,
		"per_length":        true,
		"per_area":          true,
		"percentage":        true,
		"grid":              true,
		"complexity_tier":   true,
		"height_breakpoint": true,
		"inherit":           true,
	}

	// Treatment categories the engine prices.
	TreatmentCategories = map[string]bool{
		"curtains": true,
		"blinds":   true,
		"shutters": true,
		"valances": true,
		"cushions": true,
	}
)
