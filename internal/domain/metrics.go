package domain

import (
	"encoding/json"
	"time"
)

// MetricsHeader holds the identity columns shared by key metrics and
// financial ratio rows.
type MetricsHeader struct {
	ID               int64     `json:"id"`
	CompanyID        string    `json:"company_id"`
	Symbol           string    `json:"symbol"`
	Date             time.Time `json:"date"`
	FiscalYear       int       `json:"fiscal_year"`
	Period           string    `json:"period"`
	ReportedCurrency string    `json:"reported_currency"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// KeyMetrics is one reported set of key metrics for a company.
type KeyMetrics struct {
	MetricsHeader
	Data *KeyMetricsData `json:"data"`
}

// KeyMetricsData holds the key metric values. The JSON names double as the
// data keys the financial health section map looks up.
type KeyMetricsData struct {
	MarketCap                              *int64   `json:"market_cap,omitempty"`
	EnterpriseValue                        *int64   `json:"enterprise_value,omitempty"`
	EVToSales                              *float64 `json:"ev_to_sales,omitempty"`
	EVToOperatingCashFlow                  *float64 `json:"ev_to_operating_cash_flow,omitempty"`
	EVToFreeCashFlow                       *float64 `json:"ev_to_free_cash_flow,omitempty"`
	EVToEBITDA                             *float64 `json:"ev_to_ebitda,omitempty"`
	NetDebtToEBITDA                        *float64 `json:"net_debt_to_ebitda,omitempty"`
	CurrentRatio                           *float64 `json:"current_ratio,omitempty"`
	IncomeQuality                          *float64 `json:"income_quality,omitempty"`
	GrahamNumber                           *float64 `json:"graham_number,omitempty"`
	GrahamNetNet                           *float64 `json:"graham_net_net,omitempty"`
	TaxBurden                              *float64 `json:"tax_burden,omitempty"`
	InterestBurden                         *float64 `json:"interest_burden,omitempty"`
	WorkingCapital                         *int64   `json:"working_capital,omitempty"`
	InvestedCapital                        *int64   `json:"invested_capital,omitempty"`
	ReturnOnAssets                         *float64 `json:"return_on_assets,omitempty"`
	OperatingReturnOnAssets                *float64 `json:"operating_return_on_assets,omitempty"`
	ReturnOnTangibleAssets                 *float64 `json:"return_on_tangible_assets,omitempty"`
	ReturnOnEquity                         *float64 `json:"return_on_equity,omitempty"`
	ReturnOnInvestedCapital                *float64 `json:"return_on_invested_capital,omitempty"`
	ReturnOnCapitalEmployed                *float64 `json:"return_on_capital_employed,omitempty"`
	EarningsYield                          *float64 `json:"earnings_yield,omitempty"`
	FreeCashFlowYield                      *float64 `json:"free_cash_flow_yield,omitempty"`
	CapexToOperatingCashFlow               *float64 `json:"capex_to_operating_cash_flow,omitempty"`
	CapexToDepreciation                    *float64 `json:"capex_to_depreciation,omitempty"`
	CapexToRevenue                         *float64 `json:"capex_to_revenue,omitempty"`
	SalesGeneralAndAdministrativeToRevenue *float64 `json:"sales_general_and_administrative_to_revenue,omitempty"`
	ResearchAndDevelopmentToRevenue        *float64 `json:"research_and_development_to_revenue,omitempty"`
	StockBasedCompensationToRevenue        *float64 `json:"stock_based_compensation_to_revenue,omitempty"`
	IntangiblesToTotalAssets               *float64 `json:"intangibles_to_total_assets,omitempty"`
	AverageReceivables                     *int64   `json:"average_receivables,omitempty"`
	AveragePayables                        *int64   `json:"average_payables,omitempty"`
	AverageInventory                       *int64   `json:"average_inventory,omitempty"`
	DaysOfSalesOutstanding                 *float64 `json:"days_of_sales_outstanding,omitempty"`
	DaysOfPayablesOutstanding              *float64 `json:"days_of_payables_outstanding,omitempty"`
	DaysOfInventoryOutstanding             *float64 `json:"days_of_inventory_outstanding,omitempty"`
	OperatingCycle                         *float64 `json:"operating_cycle,omitempty"`
	CashConversionCycle                    *float64 `json:"cash_conversion_cycle,omitempty"`
	FreeCashFlowToEquity                   *float64 `json:"free_cash_flow_to_equity,omitempty"`
	FreeCashFlowToFirm                     *float64 `json:"free_cash_flow_to_firm,omitempty"`
	TangibleAssetValue                     *int64   `json:"tangible_asset_value,omitempty"`
	NetCurrentAssetValue                   *int64   `json:"net_current_asset_value,omitempty"`
}

// MetricMap flattens the non-nil values under their JSON names. The result
// feeds the financial health evaluation.
func (d *KeyMetricsData) MetricMap() map[string]float64 {
	return metricMap(d)
}

// FinancialRatios is one reported set of financial ratios for a company.
type FinancialRatios struct {
	MetricsHeader
	Data *FinancialRatiosData `json:"data"`
}

// FinancialRatiosData holds the ratio values. The JSON names double as the
// data keys the financial health section map looks up.
type FinancialRatiosData struct {
	GrossProfitMargin                       *float64 `json:"gross_profit_margin,omitempty"`
	EBITMargin                              *float64 `json:"ebit_margin,omitempty"`
	EBITDAMargin                            *float64 `json:"ebitda_margin,omitempty"`
	OperatingProfitMargin                   *float64 `json:"operating_profit_margin,omitempty"`
	PretaxProfitMargin                      *float64 `json:"pretax_profit_margin,omitempty"`
	ContinuousOperationsProfitMargin        *float64 `json:"continuous_operations_profit_margin,omitempty"`
	NetProfitMargin                         *float64 `json:"net_profit_margin,omitempty"`
	BottomLineProfitMargin                  *float64 `json:"bottom_line_profit_margin,omitempty"`
	ReceivablesTurnover                     *float64 `json:"receivables_turnover,omitempty"`
	PayablesTurnover                        *float64 `json:"payables_turnover,omitempty"`
	InventoryTurnover                       *float64 `json:"inventory_turnover,omitempty"`
	FixedAssetTurnover                      *float64 `json:"fixed_asset_turnover,omitempty"`
	AssetTurnover                           *float64 `json:"asset_turnover,omitempty"`
	CurrentRatio                            *float64 `json:"current_ratio,omitempty"`
	QuickRatio                              *float64 `json:"quick_ratio,omitempty"`
	SolvencyRatio                           *float64 `json:"solvency_ratio,omitempty"`
	CashRatio                               *float64 `json:"cash_ratio,omitempty"`
	PriceToEarningsRatio                    *float64 `json:"price_to_earnings_ratio,omitempty"`
	PriceToEarningsGrowthRatio              *float64 `json:"price_to_earnings_growth_ratio,omitempty"`
	ForwardPriceToEarningsGrowthRatio       *float64 `json:"forward_price_to_earnings_growth_ratio,omitempty"`
	PriceToBookRatio                        *float64 `json:"price_to_book_ratio,omitempty"`
	PriceToSalesRatio                       *float64 `json:"price_to_sales_ratio,omitempty"`
	PriceToFreeCashFlowRatio                *float64 `json:"price_to_free_cash_flow_ratio,omitempty"`
	PriceToOperatingCashFlowRatio           *float64 `json:"price_to_operating_cash_flow_ratio,omitempty"`
	DebtToAssetsRatio                       *float64 `json:"debt_to_assets_ratio,omitempty"`
	DebtToEquityRatio                       *float64 `json:"debt_to_equity_ratio,omitempty"`
	DebtToCapitalRatio                      *float64 `json:"debt_to_capital_ratio,omitempty"`
	LongTermDebtToCapitalRatio              *float64 `json:"long_term_debt_to_capital_ratio,omitempty"`
	FinancialLeverageRatio                  *float64 `json:"financial_leverage_ratio,omitempty"`
	WorkingCapitalTurnoverRatio             *float64 `json:"working_capital_turnover_ratio,omitempty"`
	OperatingCashFlowRatio                  *float64 `json:"operating_cash_flow_ratio,omitempty"`
	OperatingCashFlowSalesRatio             *float64 `json:"operating_cash_flow_sales_ratio,omitempty"`
	FreeCashFlowOperatingCashFlowRatio      *float64 `json:"free_cash_flow_operating_cash_flow_ratio,omitempty"`
	DebtServiceCoverageRatio                *float64 `json:"debt_service_coverage_ratio,omitempty"`
	InterestCoverageRatio                   *float64 `json:"interest_coverage_ratio,omitempty"`
	ShortTermOperatingCashFlowCoverageRatio *float64 `json:"short_term_operating_cash_flow_coverage_ratio,omitempty"`
	OperatingCashFlowCoverageRatio          *float64 `json:"operating_cash_flow_coverage_ratio,omitempty"`
	CapitalExpenditureCoverageRatio         *float64 `json:"capital_expenditure_coverage_ratio,omitempty"`
	DividendPaidAndCapexCoverageRatio       *float64 `json:"dividend_paid_and_capex_coverage_ratio,omitempty"`
	DividendPayoutRatio                     *float64 `json:"dividend_payout_ratio,omitempty"`
	DividendYield                           *float64 `json:"dividend_yield,omitempty"`
	DividendYieldPercentage                 *float64 `json:"dividend_yield_percentage,omitempty"`
	RevenuePerShare                         *float64 `json:"revenue_per_share,omitempty"`
	NetIncomePerShare                       *float64 `json:"net_income_per_share,omitempty"`
	InterestDebtPerShare                    *float64 `json:"interest_debt_per_share,omitempty"`
	CashPerShare                            *float64 `json:"cash_per_share,omitempty"`
	BookValuePerShare                       *float64 `json:"book_value_per_share,omitempty"`
	TangibleBookValuePerShare               *float64 `json:"tangible_book_value_per_share,omitempty"`
	ShareholdersEquityPerShare              *float64 `json:"shareholders_equity_per_share,omitempty"`
	OperatingCashFlowPerShare               *float64 `json:"operating_cash_flow_per_share,omitempty"`
	CapexPerShare                           *float64 `json:"capex_per_share,omitempty"`
	FreeCashFlowPerShare                    *float64 `json:"free_cash_flow_per_share,omitempty"`
	NetIncomePerEBT                         *float64 `json:"net_income_per_ebt,omitempty"`
	EBTPerEBIT                              *float64 `json:"ebt_per_ebit,omitempty"`
	PriceToFairValue                        *float64 `json:"price_to_fair_value,omitempty"`
	DebtToMarketCap                         *float64 `json:"debt_to_market_cap,omitempty"`
	EffectiveTaxRate                        *float64 `json:"effective_tax_rate,omitempty"`
	EnterpriseValueMultiple                 *float64 `json:"enterprise_value_multiple,omitempty"`
}

// MetricMap flattens the non-nil values under their JSON names.
func (d *FinancialRatiosData) MetricMap() map[string]float64 {
	return metricMap(d)
}

// metricMap round-trips a payload through JSON to produce a flat
// name→value map. Nil fields are omitted by their tags, so absent metrics
// stay absent in the map.
func metricMap(payload any) map[string]float64 {
	out := make(map[string]float64)
	if payload == nil {
		return out
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return out
	}

	for key, value := range values {
		if number, ok := value.(float64); ok {
			out[key] = number
		}
	}

	return out
}
