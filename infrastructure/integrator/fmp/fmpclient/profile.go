package fmpclient

import (
	"fmt"
	"net/url"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
)

// CompanyProfile fetches the company profile for a symbol. FMP answers this
// endpoint with a single-element array; a bare object is tolerated too.
func (c *FMPClient) CompanyProfile(symbol string) (*fmpdomain.CompanyProfile, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	body, err := c.get("profile", params)
	if err != nil {
		return nil, err
	}

	var profiles []fmpdomain.CompanyProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		var single fmpdomain.CompanyProfile
		if errSingle := json.Unmarshal(body, &single); errSingle != nil {
			return nil, fmt.Errorf("decoding profile response: %w", err)
		}
		profiles = append(profiles, single)
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return &profiles[0], nil
}
