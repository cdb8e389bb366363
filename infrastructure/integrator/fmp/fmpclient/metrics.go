package fmpclient

import (
	"fmt"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
)

// KeyMetrics fetches up to limit key metric sets for a symbol, newest first.
func (c *FMPClient) KeyMetrics(symbol, period string, limit int) ([]fmpdomain.KeyMetrics, error) {
	body, err := c.get("key-metrics", statementParams(symbol, period, limit))
	if err != nil {
		return nil, err
	}

	var metrics []fmpdomain.KeyMetrics
	if err := json.Unmarshal(body, &metrics); err != nil {
		return nil, fmt.Errorf("decoding key metrics response: %w", err)
	}

	return metrics, nil
}

// FinancialRatios fetches up to limit ratio sets for a symbol, newest first.
func (c *FMPClient) FinancialRatios(symbol, period string, limit int) ([]fmpdomain.FinancialRatios, error) {
	body, err := c.get("ratios", statementParams(symbol, period, limit))
	if err != nil {
		return nil, err
	}

	var ratios []fmpdomain.FinancialRatios
	if err := json.Unmarshal(body, &ratios); err != nil {
		return nil, fmt.Errorf("decoding ratios response: %w", err)
	}

	return ratios, nil
}
