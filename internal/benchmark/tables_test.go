package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTablesAreConsistent(t *testing.T) {
	metricNames := make(map[string]bool)
	dataKeys := make(map[string]bool)

	for _, section := range DefaultSections {
		assert.NotEmpty(t, section.Name)
		assert.NotEmpty(t, section.Metrics, "section %q has no metrics", section.Name)

		for _, metric := range section.Metrics {
			assert.False(t, metricNames[metric.Name], "duplicate metric name %q", metric.Name)
			assert.False(t, dataKeys[metric.DataKey], "duplicate data key %q", metric.DataKey)
			metricNames[metric.Name] = true
			dataKeys[metric.DataKey] = true
		}
	}

	for name, rule := range DefaultRules {
		assert.True(t, metricNames[name], "rule %q has no metric in any section", name)
		assert.NotEmpty(t, rule.Insight, "rule %q has no insight", name)

		switch rule.Operator {
		case OpGT, OpLT, OpGTE, OpLTE:
			assert.NotNil(t, rule.Threshold, "rule %q needs a threshold", name)
		case OpApprox:
			assert.NotNil(t, rule.Threshold, "rule %q needs a threshold", name)
			assert.NotZero(t, *rule.Threshold, "rule %q cannot approximate zero", name)
		case OpRange:
			if assert.NotNil(t, rule.Low, "rule %q needs a low bound", name) &&
				assert.NotNil(t, rule.High, "rule %q needs a high bound", name) {
				assert.Less(t, *rule.Low, *rule.High, "rule %q bounds are inverted", name)
			}
		case OpCustom:
			// Nothing to check: custom rules are judged by a human.
		default:
			t.Errorf("rule %q has unexpected operator %s", name, rule.Operator)
		}
	}
}

func TestDefaultRulesRenderNonEmptyBenchmarks(t *testing.T) {
	for name, rule := range DefaultRules {
		assert.NotEmpty(t, FormatBenchmark(rule), "rule %q renders an empty benchmark", name)
	}
}

func TestEveryMetricHasARule(t *testing.T) {
	for _, section := range DefaultSections {
		for _, metric := range section.Metrics {
			_, ok := DefaultRules[metric.Name]
			assert.True(t, ok, "metric %q (%s) has no rule", metric.Name, section.Name)
		}
	}
}

func TestDefaultSectionTaxonomy(t *testing.T) {
	expected := []string{
		"Profitability Analysis",
		"Efficiency and Productivity Analysis",
		"Liquidity and Short-Term Solvency",
		"Leverage and Capital Structure",
		"Valuation and Market Multiples",
		"Cash Flow Strength",
		"Asset Quality and Capital Efficiency",
		"Dividend and Shareholder Returns",
		"Per Share Performance",
		"Tax and Cost Structure Analysis",
	}

	names := make([]string, 0, len(DefaultSections))
	for _, section := range DefaultSections {
		names = append(names, section.Name)
	}

	assert.Equal(t, expected, names)
}
