package fmpclient

import (
	"fmt"
	"net/url"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
)

// FinancialScores fetches the Altman/Piotroski score set for a symbol.
func (c *FMPClient) FinancialScores(symbol string) (*fmpdomain.FinancialScores, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	body, err := c.get("financial-scores", params)
	if err != nil {
		return nil, err
	}

	var scores []fmpdomain.FinancialScores
	if err := json.Unmarshal(body, &scores); err != nil {
		var single fmpdomain.FinancialScores
		if errSingle := json.Unmarshal(body, &single); errSingle != nil {
			return nil, fmt.Errorf("decoding financial scores response: %w", err)
		}
		scores = append(scores, single)
	}

	if len(scores) == 0 {
		return nil, nil
	}

	return &scores[0], nil
}
