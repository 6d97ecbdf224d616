package pricing

import (
	"fmt"
	"strings"
)

// ValidationError collects every malformed or out-of-domain input found
// before any calculation runs. The engine never partially computes: either
// the input is clean or the caller gets the full list.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

// ConfigError means the template configuration is internally inconsistent:
// the method needs a field that is absent, the method name is unknown, or
// inheritance loops. It aborts the calculation entirely.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}

// LookupError means a price-grid or band lookup found no matching band or a
// null cell. Pricing must fail loudly here, never default to zero.
type LookupError struct {
	Width  float64
	Drop   float64
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup error: %s (width=%g drop=%g)", e.Reason, e.Width, e.Drop)
}
