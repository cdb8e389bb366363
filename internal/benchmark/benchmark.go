// Package benchmark evaluates company financial metrics against a static
// table of benchmark rules, producing the qualitative records behind the
// financial health report. Evaluation is pure: no state, no I/O, safe for
// concurrent use.
package benchmark

import (
	"regexp"
	"strconv"
	"strings"
)

// Status is the qualitative judgment attached to one metric value.
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusWarning Status = "warning"
	StatusNeutral Status = "neutral"
)

// Operator is the closed set of comparison policies a Rule can carry.
type Operator int

const (
	OpUnknown Operator = iota
	OpGT
	OpLT
	OpGTE
	OpLTE
	OpApprox
	OpRange
	OpCustom
)

// String returns the operator name for logs and debugging output.
func (o Operator) String() string {
	switch o {
	case OpGT:
		return "GT"
	case OpLT:
		return "LT"
	case OpGTE:
		return "GTE"
	case OpLTE:
		return "LTE"
	case OpApprox:
		return "APPROX"
	case OpRange:
		return "RANGE"
	case OpCustom:
		return "CUSTOM"
	default:
		return "UNKNOWN"
	}
}

// Rule describes how to judge one named metric. Threshold is required by
// GT/LT/GTE/LTE/APPROX, Low and High by RANGE; a rule missing its required
// numbers is not evaluable and yields StatusNeutral.
type Rule struct {
	Operator  Operator
	Threshold *float64
	Low       *float64
	High      *float64
	Unit      string
	Insight   string
}

// Metric binds a display name to the key it is looked up under in the
// flat metrics map.
type Metric struct {
	Name    string
	DataKey string
}

// Section is a named, ordered group of metrics.
type Section struct {
	Name    string
	Metrics []Metric
}

// HealthRecord is one evaluated (section, metric) pair.
type HealthRecord struct {
	Section   string
	Metric    string
	Benchmark string
	Value     string
	Status    Status
	Insight   string
}

// numberPattern extracts the first signed decimal number from a value
// string after decoration stripping.
var numberPattern = regexp.MustCompile(`-?\d+\.?\d*`)

// decorations are the literal substrings removed from string values before
// numeric extraction. This is plain substring removal, not unit conversion,
// and the exact set is part of the contract.
var decorations = []string{"%", "×", "$", "days", "B"}

// parseValue extracts a numeric value from the raw input. Numeric types
// pass through; strings are stripped of decorations and matched against
// the number pattern. The second return is false when no number is found.
func parseValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		cleaned := v
		for _, decoration := range decorations {
			cleaned = strings.ReplaceAll(cleaned, decoration, "")
		}
		match := numberPattern.FindString(cleaned)
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Evaluate compares a raw metric value against a benchmark rule. A missing
// value, missing rule, unparsable value or rule without its required
// numbers never fails the report: all of those degrade to StatusNeutral.
func Evaluate(value any, rule *Rule) Status {
	if value == nil || rule == nil {
		return StatusNeutral
	}

	v, ok := parseValue(value)
	if !ok {
		return StatusNeutral
	}

	switch rule.Operator {
	case OpGT:
		if rule.Threshold == nil {
			return StatusNeutral
		}
		return statusFor(v > *rule.Threshold)
	case OpLT:
		if rule.Threshold == nil {
			return StatusNeutral
		}
		return statusFor(v < *rule.Threshold)
	case OpGTE:
		if rule.Threshold == nil {
			return StatusNeutral
		}
		return statusFor(v >= *rule.Threshold)
	case OpLTE:
		if rule.Threshold == nil {
			return StatusNeutral
		}
		return statusFor(v <= *rule.Threshold)
	case OpApprox:
		// A zero threshold would divide by zero; treat the rule as not
		// evaluable instead.
		if rule.Threshold == nil || *rule.Threshold == 0 {
			return StatusNeutral
		}
		deviation := (v - *rule.Threshold) / *rule.Threshold
		if deviation < 0 {
			deviation = -deviation
		}
		return statusFor(deviation < 0.15)
	case OpRange:
		if rule.Low == nil || rule.High == nil {
			return StatusNeutral
		}
		return statusFor(*rule.Low <= v && v <= *rule.High)
	case OpCustom:
		return StatusNeutral
	default:
		return StatusNeutral
	}
}

func statusFor(healthy bool) Status {
	if healthy {
		return StatusHealthy
	}
	return StatusWarning
}

// FormatBenchmark renders a rule as its display string: "low–high" for
// ranges, "~threshold" for approximations, "See insight" for custom rules
// and "sym threshold" otherwise, each suffixed with the rule's unit. An
// absent rule renders as the empty string.
func FormatBenchmark(rule *Rule) string {
	if rule == nil {
		return ""
	}

	switch rule.Operator {
	case OpRange:
		if rule.Low == nil || rule.High == nil {
			return ""
		}
		return formatNumber(*rule.Low) + "–" + formatNumber(*rule.High) + rule.Unit
	case OpApprox:
		if rule.Threshold == nil {
			return ""
		}
		return "~" + formatNumber(*rule.Threshold) + rule.Unit
	case OpCustom:
		return "See insight"
	case OpGT, OpLT, OpGTE, OpLTE:
		if rule.Threshold == nil {
			return ""
		}
		return operatorSymbol(rule.Operator) + " " + formatNumber(*rule.Threshold) + rule.Unit
	default:
		return ""
	}
}

func operatorSymbol(op Operator) string {
	switch op {
	case OpGT:
		return ">"
	case OpLT:
		return "<"
	case OpGTE:
		return ">="
	case OpLTE:
		return "<="
	default:
		return ""
	}
}

// formatNumber renders a float with the fewest digits that round-trip.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildHealthRecords evaluates every (section, metric) pair of the section
// map against the metrics map and the rule table. The output always has one
// record per pair, in section order then metric order, regardless of which
// keys are present in metrics.
func BuildHealthRecords(metrics map[string]float64, sections []Section, rules map[string]*Rule) []HealthRecord {
	records := make([]HealthRecord, 0, totalMetrics(sections))

	for _, section := range sections {
		for _, metric := range section.Metrics {
			rule := rules[metric.Name]

			var value any
			valueText := ""
			if raw, ok := metrics[metric.DataKey]; ok {
				value = raw
				valueText = formatNumber(raw)
			}

			insight := ""
			if rule != nil {
				insight = rule.Insight
			}

			records = append(records, HealthRecord{
				Section:   section.Name,
				Metric:    metric.Name,
				Benchmark: FormatBenchmark(rule),
				Value:     valueText,
				Status:    Evaluate(value, rule),
				Insight:   insight,
			})
		}
	}

	return records
}

func totalMetrics(sections []Section) int {
	total := 0
	for _, section := range sections {
		total += len(section.Metrics)
	}
	return total
}
