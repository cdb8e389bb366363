package fmpdomain

// PriceTargetConsensus is the /price-target-consensus payload.
type PriceTargetConsensus struct {
	Symbol          string   `json:"symbol"`
	TargetHigh      *float64 `json:"targetHigh"`
	TargetLow       *float64 `json:"targetLow"`
	TargetConsensus *float64 `json:"targetConsensus"`
	TargetMedian    *float64 `json:"targetMedian"`
}

// PriceTargetSummary is the /price-target-summary payload.
type PriceTargetSummary struct {
	Symbol                    string   `json:"symbol"`
	LastMonthCount            *int     `json:"lastMonthCount"`
	LastMonthAvgPriceTarget   *float64 `json:"lastMonthAvgPriceTarget"`
	LastQuarterCount          *int     `json:"lastQuarterCount"`
	LastQuarterAvgPriceTarget *float64 `json:"lastQuarterAvgPriceTarget"`
	LastYearCount             *int     `json:"lastYearCount"`
	LastYearAvgPriceTarget    *float64 `json:"lastYearAvgPriceTarget"`
	AllTimeCount              *int     `json:"allTimeCount"`
	AllTimeAvgPriceTarget     *float64 `json:"allTimeAvgPriceTarget"`
	Publishers                []string `json:"publishers"`
}
