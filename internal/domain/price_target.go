package domain

import "time"

// PriceTarget is the analyst price target consensus for a company. One row
// per symbol, replaced on every sync.
type PriceTarget struct {
	ID              int64     `json:"id"`
	CompanyID       string    `json:"company_id"`
	Symbol          string    `json:"symbol"`
	TargetHigh      *float64  `json:"target_high"`
	TargetLow       *float64  `json:"target_low"`
	TargetConsensus *float64  `json:"target_consensus"`
	TargetMedian    *float64  `json:"target_median"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PriceTargetSummary aggregates analyst price targets per time window.
type PriceTargetSummary struct {
	ID                            int64     `json:"id"`
	CompanyID                     string    `json:"company_id"`
	Symbol                        string    `json:"symbol"`
	LastMonthCount                int       `json:"last_month_count"`
	LastMonthAveragePriceTarget   float64   `json:"last_month_average_price_target"`
	LastQuarterCount              int       `json:"last_quarter_count"`
	LastQuarterAveragePriceTarget float64   `json:"last_quarter_average_price_target"`
	LastYearCount                 int       `json:"last_year_count"`
	LastYearAveragePriceTarget    float64   `json:"last_year_average_price_target"`
	AllTimeCount                  int       `json:"all_time_count"`
	AllTimeAveragePriceTarget     float64   `json:"all_time_average_price_target"`
	Publishers                    string    `json:"publishers"`
	CreatedAt                     time.Time `json:"created_at"`
	UpdatedAt                     time.Time `json:"updated_at"`
}
