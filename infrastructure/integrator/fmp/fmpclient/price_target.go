package fmpclient

import (
	"fmt"
	"net/url"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
)

// PriceTargetConsensus fetches the analyst consensus price targets for a
// symbol.
func (c *FMPClient) PriceTargetConsensus(symbol string) (*fmpdomain.PriceTargetConsensus, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	body, err := c.get("price-target-consensus", params)
	if err != nil {
		return nil, err
	}

	var targets []fmpdomain.PriceTargetConsensus
	if err := json.Unmarshal(body, &targets); err != nil {
		var single fmpdomain.PriceTargetConsensus
		if errSingle := json.Unmarshal(body, &single); errSingle != nil {
			return nil, fmt.Errorf("decoding price target consensus response: %w", err)
		}
		targets = append(targets, single)
	}

	if len(targets) == 0 {
		return nil, nil
	}

	return &targets[0], nil
}

// PriceTargetSummary fetches the per-window analyst target averages for a
// symbol.
func (c *FMPClient) PriceTargetSummary(symbol string) (*fmpdomain.PriceTargetSummary, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	body, err := c.get("price-target-summary", params)
	if err != nil {
		return nil, err
	}

	var summaries []fmpdomain.PriceTargetSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		var single fmpdomain.PriceTargetSummary
		if errSingle := json.Unmarshal(body, &single); errSingle != nil {
			return nil, fmt.Errorf("decoding price target summary response: %w", err)
		}
		summaries = append(summaries, single)
	}

	if len(summaries) == 0 {
		return nil, nil
	}

	return &summaries[0], nil
}
