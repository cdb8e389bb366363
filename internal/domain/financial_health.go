package domain

import "time"

// FinancialScores are the composite health scores FMP computes per company.
// One row per symbol, replaced on every sync.
type FinancialScores struct {
	ID               int64     `json:"id"`
	CompanyID        string    `json:"company_id"`
	Symbol           string    `json:"symbol"`
	ReportedCurrency string    `json:"reported_currency"`
	AltmanZScore     float64   `json:"altman_z_score"`
	PiotroskiScore   int       `json:"piotroski_score"`
	WorkingCapital   int64     `json:"working_capital"`
	TotalAssets      int64     `json:"total_assets"`
	TotalLiabilities int64     `json:"total_liabilities"`
	RetainedEarnings int64     `json:"retained_earnings"`
	EBIT             int64     `json:"ebit"`
	MarketCap        int64     `json:"market_cap"`
	Revenue          int64     `json:"revenue"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FinancialHealthRecord is one evaluated (section, metric) row of a
// company's financial health report, keyed by (symbol, section, metric).
type FinancialHealthRecord struct {
	ID        int64     `json:"id"`
	CompanyID string    `json:"company_id"`
	Symbol    string    `json:"symbol"`
	Section   string    `json:"section"`
	Metric    string    `json:"metric"`
	Benchmark string    `json:"benchmark"`
	Value     string    `json:"value"`
	Status    string    `json:"status"`
	Insight   string    `json:"insight"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
