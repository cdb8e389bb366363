package fmpdomain

// FinancialScores is the /financial-scores payload.
type FinancialScores struct {
	Symbol           string   `json:"symbol"`
	ReportedCurrency string   `json:"reportedCurrency"`
	AltmanZScore     *float64 `json:"altmanZScore"`
	PiotroskiScore   *int     `json:"piotroskiScore"`
	WorkingCapital   *int64   `json:"workingCapital"`
	TotalAssets      *int64   `json:"totalAssets"`
	TotalLiabilities *int64   `json:"totalLiabilities"`
	RetainedEarnings *int64   `json:"retainedEarnings"`
	EBIT             *int64   `json:"ebit"`
	MarketCap        *int64   `json:"marketCap"`
	Revenue          *int64   `json:"revenue"`
}
