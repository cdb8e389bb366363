// Package syncing pulls company data from the FMP API and persists it.
// One service per dataset, all following the same pipeline: look up the
// company, fetch from the API, map the wire payload to domain records and
// upsert them. Every service returns the rows it wrote, or (nil, nil) when
// the API has no data for the symbol.
package syncing

import (
	"errors"
	"strconv"
	"time"

	"github.com/stockmate/stockmate-api/internal/domain"
)

// Default fetch limits per dataset, applied when the caller passes zero.
const (
	DefaultStatementLimit = 40
	DefaultMetricsLimit   = 40
	MaxLimit              = 100
)

var ErrInvalidPeriod = errors.New("invalid period")

// normalizePeriod defaults an empty period to annual and rejects values
// outside the accepted set.
func normalizePeriod(period string) (string, error) {
	if period == "" {
		return domain.PeriodAnnual, nil
	}
	if !domain.IsValidPeriod(period) {
		return "", ErrInvalidPeriod
	}
	return period, nil
}

// normalizeLimit clamps limit to [1, MaxLimit], falling back to the
// dataset default when unset.
func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

const (
	dateLayout         = "2006-01-02"
	acceptedDateLayout = "2006-01-02 15:04:05"
)

// parseDate parses an FMP date string, treating absent values as the zero
// time rather than an error.
func parseDate(layout, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, value)
}

// parseFiscalYear converts the fiscal year, which arrives as a string on
// the wire.
func parseFiscalYear(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
