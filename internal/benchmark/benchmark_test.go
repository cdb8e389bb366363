package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		rule     *Rule
		expected Status
	}{
		{
			name:     "missing value is neutral",
			value:    nil,
			rule:     &Rule{Operator: OpGT, Threshold: f(0.4)},
			expected: StatusNeutral,
		},
		{
			name:     "missing rule is neutral",
			value:    0.45,
			rule:     nil,
			expected: StatusNeutral,
		},
		{
			name:     "unparsable string is neutral",
			value:    "n/a",
			rule:     &Rule{Operator: OpGT, Threshold: f(0.4)},
			expected: StatusNeutral,
		},
		{
			name:     "unsupported value type is neutral",
			value:    struct{}{},
			rule:     &Rule{Operator: OpGT, Threshold: f(0.4)},
			expected: StatusNeutral,
		},
		{
			name:     "gt above threshold is healthy",
			value:    0.45,
			rule:     &Rule{Operator: OpGT, Threshold: f(0.4)},
			expected: StatusHealthy,
		},
		{
			name:     "gt at threshold is warning",
			value:    0.4,
			rule:     &Rule{Operator: OpGT, Threshold: f(0.4)},
			expected: StatusWarning,
		},
		{
			name:     "gt below threshold is warning",
			value:    0.2,
			rule:     &Rule{Operator: OpGT, Threshold: f(0.4)},
			expected: StatusWarning,
		},
		{
			name:     "gt without threshold is neutral",
			value:    0.45,
			rule:     &Rule{Operator: OpGT},
			expected: StatusNeutral,
		},
		{
			name:     "lt below threshold is healthy",
			value:    0.3,
			rule:     &Rule{Operator: OpLT, Threshold: f(0.5)},
			expected: StatusHealthy,
		},
		{
			name:     "lt at threshold is warning",
			value:    0.5,
			rule:     &Rule{Operator: OpLT, Threshold: f(0.5)},
			expected: StatusWarning,
		},
		{
			name:     "gte at threshold is healthy",
			value:    1.0,
			rule:     &Rule{Operator: OpGTE, Threshold: f(1)},
			expected: StatusHealthy,
		},
		{
			name:     "gte below threshold is warning",
			value:    0.99,
			rule:     &Rule{Operator: OpGTE, Threshold: f(1)},
			expected: StatusWarning,
		},
		{
			name:     "lte at threshold is healthy",
			value:    0.15,
			rule:     &Rule{Operator: OpLTE, Threshold: f(0.15)},
			expected: StatusHealthy,
		},
		{
			name:     "lte above threshold is warning",
			value:    0.16,
			rule:     &Rule{Operator: OpLTE, Threshold: f(0.15)},
			expected: StatusWarning,
		},
		{
			name:     "approx within tolerance is healthy",
			value:    1.1,
			rule:     &Rule{Operator: OpApprox, Threshold: f(1)},
			expected: StatusHealthy,
		},
		{
			name:     "approx below threshold within tolerance is healthy",
			value:    0.9,
			rule:     &Rule{Operator: OpApprox, Threshold: f(1)},
			expected: StatusHealthy,
		},
		{
			// 11.5 against 10 puts the deviation at exactly 0.15 in float64.
			name:     "approx at tolerance boundary is warning",
			value:    11.5,
			rule:     &Rule{Operator: OpApprox, Threshold: f(10)},
			expected: StatusWarning,
		},
		{
			// 1.15 against 1 rounds to just under the tolerance in float64,
			// so the strict comparison keeps it healthy.
			name:     "approx just inside tolerance in floating point is healthy",
			value:    1.15,
			rule:     &Rule{Operator: OpApprox, Threshold: f(1)},
			expected: StatusHealthy,
		},
		{
			name:     "approx outside tolerance is warning",
			value:    1.3,
			rule:     &Rule{Operator: OpApprox, Threshold: f(1)},
			expected: StatusWarning,
		},
		{
			name:     "approx with zero threshold is neutral",
			value:    0.01,
			rule:     &Rule{Operator: OpApprox, Threshold: f(0)},
			expected: StatusNeutral,
		},
		{
			name:     "approx without threshold is neutral",
			value:    1.0,
			rule:     &Rule{Operator: OpApprox},
			expected: StatusNeutral,
		},
		{
			name:     "range inside is healthy",
			value:    1.5,
			rule:     &Rule{Operator: OpRange, Low: f(1), High: f(2)},
			expected: StatusHealthy,
		},
		{
			name:     "range at low bound is healthy",
			value:    1.0,
			rule:     &Rule{Operator: OpRange, Low: f(1), High: f(2)},
			expected: StatusHealthy,
		},
		{
			name:     "range at high bound is healthy",
			value:    2.0,
			rule:     &Rule{Operator: OpRange, Low: f(1), High: f(2)},
			expected: StatusHealthy,
		},
		{
			name:     "range below low is warning",
			value:    0.8,
			rule:     &Rule{Operator: OpRange, Low: f(1), High: f(2)},
			expected: StatusWarning,
		},
		{
			name:     "range above high is warning",
			value:    2.3,
			rule:     &Rule{Operator: OpRange, Low: f(1), High: f(2)},
			expected: StatusWarning,
		},
		{
			name:     "range without low bound is neutral",
			value:    1.5,
			rule:     &Rule{Operator: OpRange, High: f(2)},
			expected: StatusNeutral,
		},
		{
			name:     "range without high bound is neutral",
			value:    1.5,
			rule:     &Rule{Operator: OpRange, Low: f(1)},
			expected: StatusNeutral,
		},
		{
			name:     "custom is always neutral",
			value:    123.45,
			rule:     &Rule{Operator: OpCustom, Threshold: f(1)},
			expected: StatusNeutral,
		},
		{
			name:     "unknown operator is neutral",
			value:    1.0,
			rule:     &Rule{Operator: OpUnknown, Threshold: f(1)},
			expected: StatusNeutral,
		},
		{
			name:     "percent string compares against threshold",
			value:    "15%",
			rule:     &Rule{Operator: OpGT, Threshold: f(10)},
			expected: StatusHealthy,
		},
		{
			name:     "multiplier string compares against range",
			value:    "1.5×",
			rule:     &Rule{Operator: OpRange, Low: f(1), High: f(2)},
			expected: StatusHealthy,
		},
		{
			name:     "dollar billions string parses to plain number",
			value:    "$2.5B",
			rule:     &Rule{Operator: OpGT, Threshold: f(2)},
			expected: StatusHealthy,
		},
		{
			name:     "days string compares against threshold",
			value:    "45 days",
			rule:     &Rule{Operator: OpLT, Threshold: f(60)},
			expected: StatusHealthy,
		},
		{
			name:     "negative string value compares",
			value:    "-5.2%",
			rule:     &Rule{Operator: OpGT, Threshold: f(0)},
			expected: StatusWarning,
		},
		{
			name:     "first number wins in composite strings",
			value:    "12.5 (prior 9.8)",
			rule:     &Rule{Operator: OpGT, Threshold: f(10)},
			expected: StatusHealthy,
		},
		{
			name:     "integer value compares",
			value:    42,
			rule:     &Rule{Operator: OpLT, Threshold: f(45)},
			expected: StatusHealthy,
		},
		{
			name:     "int64 value compares",
			value:    int64(3),
			rule:     &Rule{Operator: OpGTE, Threshold: f(3)},
			expected: StatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Evaluate(tt.value, tt.rule))
		})
	}
}

func TestFormatBenchmark(t *testing.T) {
	tests := []struct {
		name     string
		rule     *Rule
		expected string
	}{
		{
			name:     "nil rule renders empty",
			rule:     nil,
			expected: "",
		},
		{
			name:     "gt with unit",
			rule:     &Rule{Operator: OpGT, Threshold: f(40), Unit: "%"},
			expected: "> 40%",
		},
		{
			name:     "lt with day unit",
			rule:     &Rule{Operator: OpLT, Threshold: f(45), Unit: " days"},
			expected: "< 45 days",
		},
		{
			name:     "gte without unit",
			rule:     &Rule{Operator: OpGTE, Threshold: f(1)},
			expected: ">= 1",
		},
		{
			name:     "lte fractional threshold",
			rule:     &Rule{Operator: OpLTE, Threshold: f(0.15)},
			expected: "<= 0.15",
		},
		{
			name:     "range uses en dash",
			rule:     &Rule{Operator: OpRange, Low: f(1), High: f(2)},
			expected: "1–2",
		},
		{
			name:     "range with unit",
			rule:     &Rule{Operator: OpRange, Low: f(2), High: f(6), Unit: "%"},
			expected: "2–6%",
		},
		{
			name:     "approx tilde",
			rule:     &Rule{Operator: OpApprox, Threshold: f(1)},
			expected: "~1",
		},
		{
			name:     "custom points at the insight",
			rule:     &Rule{Operator: OpCustom},
			expected: "See insight",
		},
		{
			name:     "comparison without threshold renders empty",
			rule:     &Rule{Operator: OpGT, Unit: "%"},
			expected: "",
		},
		{
			name:     "range without bounds renders empty",
			rule:     &Rule{Operator: OpRange, Low: f(1)},
			expected: "",
		},
		{
			name:     "approx without threshold renders empty",
			rule:     &Rule{Operator: OpApprox},
			expected: "",
		},
		{
			name:     "unknown operator renders empty",
			rule:     &Rule{Operator: OpUnknown, Threshold: f(1)},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBenchmark(tt.rule))
		})
	}
}

func TestBuildHealthRecords(t *testing.T) {
	sections := []Section{
		{
			Name: "Liquidity",
			Metrics: []Metric{
				{Name: "Current Ratio", DataKey: "current_ratio"},
				{Name: "Quick Ratio", DataKey: "quick_ratio"},
			},
		},
		{
			Name: "Profitability",
			Metrics: []Metric{
				{Name: "Gross Profit Margin", DataKey: "gross_profit_margin"},
				{Name: "Unlisted Metric", DataKey: "unlisted_metric"},
			},
		},
	}
	rules := map[string]*Rule{
		"Current Ratio":       {Operator: OpRange, Low: f(1), High: f(2), Insight: "stay inside the band"},
		"Quick Ratio":         {Operator: OpGTE, Threshold: f(1), Insight: "cover liabilities without inventory"},
		"Gross Profit Margin": {Operator: OpGT, Threshold: f(0.4), Insight: "pricing power"},
	}
	metrics := map[string]float64{
		"current_ratio":       1.5,
		"gross_profit_margin": 0.25,
		"unlisted_metric":     9.9,
	}

	records := BuildHealthRecords(metrics, sections, rules)

	assert.Len(t, records, 4)

	assert.Equal(t, HealthRecord{
		Section:   "Liquidity",
		Metric:    "Current Ratio",
		Benchmark: "1–2",
		Value:     "1.5",
		Status:    StatusHealthy,
		Insight:   "stay inside the band",
	}, records[0])

	// Quick ratio has a rule but no value: benchmark and insight still render.
	assert.Equal(t, HealthRecord{
		Section:   "Liquidity",
		Metric:    "Quick Ratio",
		Benchmark: ">= 1",
		Value:     "",
		Status:    StatusNeutral,
		Insight:   "cover liabilities without inventory",
	}, records[1])

	assert.Equal(t, HealthRecord{
		Section:   "Profitability",
		Metric:    "Gross Profit Margin",
		Benchmark: "> 0.4",
		Value:     "0.25",
		Status:    StatusWarning,
		Insight:   "pricing power",
	}, records[2])

	// Unlisted metric has a value but no rule: neutral with empty benchmark.
	assert.Equal(t, HealthRecord{
		Section:   "Profitability",
		Metric:    "Unlisted Metric",
		Benchmark: "",
		Value:     "9.9",
		Status:    StatusNeutral,
		Insight:   "",
	}, records[3])
}

func TestBuildHealthRecordsEmptyInputs(t *testing.T) {
	sections := []Section{
		{Name: "Liquidity", Metrics: []Metric{{Name: "Current Ratio", DataKey: "current_ratio"}}},
	}

	records := BuildHealthRecords(nil, sections, nil)

	assert.Len(t, records, 1)
	assert.Equal(t, StatusNeutral, records[0].Status)
	assert.Equal(t, "", records[0].Value)
	assert.Equal(t, "", records[0].Benchmark)

	assert.Empty(t, BuildHealthRecords(map[string]float64{"current_ratio": 1.5}, nil, nil))
}

func TestBuildHealthRecordsOrderIsDeterministic(t *testing.T) {
	metrics := map[string]float64{
		"gross_profit_margin": 0.62,
		"current_ratio":       1.2,
		"asset_turnover":      0.7,
	}

	first := BuildHealthRecords(metrics, DefaultSections, DefaultRules)
	second := BuildHealthRecords(metrics, DefaultSections, DefaultRules)

	assert.Equal(t, first, second)

	// Section order follows the table, not the map.
	assert.Equal(t, "Profitability Analysis", first[0].Section)
	assert.Equal(t, "Gross Profit Margin", first[0].Metric)
	assert.Equal(t, StatusHealthy, first[0].Status)
}

func TestValueFormattingUsesMinimalDigits(t *testing.T) {
	sections := []Section{
		{Name: "Liquidity", Metrics: []Metric{
			{Name: "Current Ratio", DataKey: "current_ratio"},
			{Name: "Quick Ratio", DataKey: "quick_ratio"},
		}},
	}
	metrics := map[string]float64{
		"current_ratio": 2,
		"quick_ratio":   0.9312,
	}

	records := BuildHealthRecords(metrics, sections, nil)

	assert.Equal(t, "2", records[0].Value)
	assert.Equal(t, "0.9312", records[1].Value)
}
