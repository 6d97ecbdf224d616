package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pctr(v float64) *float64 { return &v }

func markupPolicy() MarkupPolicy {
	return MarkupPolicy{
		AccountDefault: pctr(45),
		LowThreshold:   15,
		GoodThreshold:  40,
	}
}

func TestApplyMarkup_AccountDefault(t *testing.T) {
	m, err := ApplyMarkup(100, markupPolicy())

	require.NoError(t, err)
	assert.Equal(t, 145.0, m.Selling)
	assert.Equal(t, 45.0, m.Percent)
	assert.Equal(t, MarkupSourceAccount, m.Source)
}

func TestApplyMarkup_CategoryBeatsAccount(t *testing.T) {
	policy := markupPolicy()
	policy.Category = pctr(60)

	m, err := ApplyMarkup(100, policy)

	require.NoError(t, err)
	assert.Equal(t, 160.0, m.Selling)
	assert.Equal(t, MarkupSourceCategory, m.Source)
}

func TestApplyMarkup_ItemOverrideBeatsEverything(t *testing.T) {
	policy := markupPolicy()
	policy.Category = pctr(60)
	policy.ItemOverride = pctr(20)

	m, err := ApplyMarkup(100, policy)

	require.NoError(t, err)
	assert.Equal(t, 120.0, m.Selling)
	assert.Equal(t, MarkupSourceItem, m.Source)
}

func TestApplyMarkup_NoPolicyConfigured(t *testing.T) {
	_, err := ApplyMarkup(100, MarkupPolicy{LowThreshold: 15, GoodThreshold: 40})

	var cErr *ConfigError
	require.ErrorAs(t, err, &cErr)
}

func TestApplyMarkup_MarginBands(t *testing.T) {
	cases := []struct {
		name string
		pct  float64
		band string
	}{
		{"negative override sells below cost", -10, MarginLoss},
		{"thin markup lands low", 10, MarginLow},
		{"default markup lands normal", 45, MarginNormal},
		{"steep markup lands good", 80, MarginGood},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			policy := markupPolicy()
			policy.ItemOverride = pctr(tc.pct)

			m, err := ApplyMarkup(100, policy)

			require.NoError(t, err)
			assert.Equal(t, tc.band, m.MarginBand)
		})
	}
}

func TestGrossMargin(t *testing.T) {
	assert.InDelta(t, 31.03448275862069, GrossMargin(100, 145), 1e-9)
	assert.Equal(t, 0.0, GrossMargin(100, 0))
	assert.InDelta(t, -100.0, GrossMargin(100, 50), 1e-9)
}
