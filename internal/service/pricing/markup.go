package pricing

// Markup sources, recorded on every result as the audit trail of which policy
// level produced the sell price.
const (
	MarkupSourceItem     = "item_override"
	MarkupSourceCategory = "category"
	MarkupSourceAccount  = "account_default"
)

// Margin bands.
const (
	MarginLoss   = "loss"
	MarginLow    = "low"
	MarginNormal = "normal"
	MarginGood   = "good"
)

// MarkupPolicy is the resolution chain for the markup percentage: explicit
// per-item override, then the category-level setting, then the account
// default. Thresholds classify the resulting gross margin and come from
// configuration, never hard-coded.
type MarkupPolicy struct {
	ItemOverride   *float64
	Category       *float64
	AccountDefault *float64

	LowThreshold  float64
	GoodThreshold float64
}

// Markup is the sell side of a calculation, produced together with the cost
// it was derived from.
type Markup struct {
	Selling    float64 `json:"selling"`
	Percent    float64 `json:"percent"`
	Source     string  `json:"source"`
	MarginBand string  `json:"margin_band"`
}

// ApplyMarkup converts a cost into a sell price. The first non-nil policy
// level wins and is recorded as the source.
func ApplyMarkup(cost float64, policy MarkupPolicy) (Markup, error) {
	var pct float64
	var source string

	switch {
	case policy.ItemOverride != nil:
		pct, source = *policy.ItemOverride, MarkupSourceItem
	case policy.Category != nil:
		pct, source = *policy.Category, MarkupSourceCategory
	case policy.AccountDefault != nil:
		pct, source = *policy.AccountDefault, MarkupSourceAccount
	default:
		return Markup{}, &ConfigError{Reason: "no markup percentage configured at any level"}
	}

	selling := cost * (1 + pct/100)

	return Markup{
		Selling:    selling,
		Percent:    pct,
		Source:     source,
		MarginBand: classifyMargin(GrossMargin(cost, selling), policy),
	}, nil
}

// GrossMargin is (selling - cost) / selling as a percentage. A zero sell
// price yields 0%, not a division error.
func GrossMargin(cost, selling float64) float64 {
	if selling == 0 {
		return 0
	}
	return (selling - cost) / selling * 100
}

func classifyMargin(margin float64, policy MarkupPolicy) string {
	switch {
	case margin < 0:
		return MarginLoss
	case margin < policy.LowThreshold:
		return MarginLow
	case margin < policy.GoodThreshold:
		return MarginNormal
	default:
		return MarginGood
	}
}
