package domain

import "time"

// StatementHeader holds the identity columns shared by every financial
// statement row. The line items live in a typed payload stored as JSONB.
type StatementHeader struct {
	ID               int64     `json:"id"`
	CompanyID        string    `json:"company_id"`
	Symbol           string    `json:"symbol"`
	Date             time.Time `json:"date"`
	ReportedCurrency string    `json:"reported_currency"`
	CIK              string    `json:"cik"`
	FilingDate       time.Time `json:"filing_date"`
	AcceptedDate     time.Time `json:"accepted_date"`
	FiscalYear       int       `json:"fiscal_year"`
	Period           string    `json:"period"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BalanceSheet is one reported balance sheet for a company.
type BalanceSheet struct {
	StatementHeader
	Data *BalanceSheetData `json:"data"`
}

// BalanceSheetData holds the balance sheet line items.
type BalanceSheetData struct {
	CashAndCashEquivalents                  *int64 `json:"cash_and_cash_equivalents,omitempty"`
	ShortTermInvestments                    *int64 `json:"short_term_investments,omitempty"`
	CashAndShortTermInvestments             *int64 `json:"cash_and_short_term_investments,omitempty"`
	NetReceivables                          *int64 `json:"net_receivables,omitempty"`
	AccountsReceivables                     *int64 `json:"accounts_receivables,omitempty"`
	OtherReceivables                        *int64 `json:"other_receivables,omitempty"`
	Inventory                               *int64 `json:"inventory,omitempty"`
	Prepaids                                *int64 `json:"prepaids,omitempty"`
	OtherCurrentAssets                      *int64 `json:"other_current_assets,omitempty"`
	TotalCurrentAssets                      *int64 `json:"total_current_assets,omitempty"`
	PropertyPlantEquipmentNet               *int64 `json:"property_plant_equipment_net,omitempty"`
	Goodwill                                *int64 `json:"goodwill,omitempty"`
	IntangibleAssets                        *int64 `json:"intangible_assets,omitempty"`
	GoodwillAndIntangibleAssets             *int64 `json:"goodwill_and_intangible_assets,omitempty"`
	LongTermInvestments                     *int64 `json:"long_term_investments,omitempty"`
	TaxAssets                               *int64 `json:"tax_assets,omitempty"`
	OtherNonCurrentAssets                   *int64 `json:"other_non_current_assets,omitempty"`
	TotalNonCurrentAssets                   *int64 `json:"total_non_current_assets,omitempty"`
	OtherAssets                             *int64 `json:"other_assets,omitempty"`
	TotalAssets                             *int64 `json:"total_assets,omitempty"`
	TotalPayables                           *int64 `json:"total_payables,omitempty"`
	AccountPayables                         *int64 `json:"account_payables,omitempty"`
	OtherPayables                           *int64 `json:"other_payables,omitempty"`
	AccruedExpenses                         *int64 `json:"accrued_expenses,omitempty"`
	ShortTermDebt                           *int64 `json:"short_term_debt,omitempty"`
	CapitalLeaseObligationsCurrent          *int64 `json:"capital_lease_obligations_current,omitempty"`
	TaxPayables                             *int64 `json:"tax_payables,omitempty"`
	DeferredRevenue                         *int64 `json:"deferred_revenue,omitempty"`
	OtherCurrentLiabilities                 *int64 `json:"other_current_liabilities,omitempty"`
	TotalCurrentLiabilities                 *int64 `json:"total_current_liabilities,omitempty"`
	LongTermDebt                            *int64 `json:"long_term_debt,omitempty"`
	DeferredRevenueNonCurrent               *int64 `json:"deferred_revenue_non_current,omitempty"`
	DeferredTaxLiabilitiesNonCurrent        *int64 `json:"deferred_tax_liabilities_non_current,omitempty"`
	OtherNonCurrentLiabilities              *int64 `json:"other_non_current_liabilities,omitempty"`
	TotalNonCurrentLiabilities              *int64 `json:"total_non_current_liabilities,omitempty"`
	OtherLiabilities                        *int64 `json:"other_liabilities,omitempty"`
	CapitalLeaseObligations                 *int64 `json:"capital_lease_obligations,omitempty"`
	TotalLiabilities                        *int64 `json:"total_liabilities,omitempty"`
	TreasuryStock                           *int64 `json:"treasury_stock,omitempty"`
	PreferredStock                          *int64 `json:"preferred_stock,omitempty"`
	CommonStock                             *int64 `json:"common_stock,omitempty"`
	RetainedEarnings                        *int64 `json:"retained_earnings,omitempty"`
	AdditionalPaidInCapital                 *int64 `json:"additional_paid_in_capital,omitempty"`
	AccumulatedOtherComprehensiveIncomeLoss *int64 `json:"accumulated_other_comprehensive_income_loss,omitempty"`
	OtherTotalStockholdersEquity            *int64 `json:"other_total_stockholders_equity,omitempty"`
	TotalStockholdersEquity                 *int64 `json:"total_stockholders_equity,omitempty"`
	TotalEquity                             *int64 `json:"total_equity,omitempty"`
	MinorityInterest                        *int64 `json:"minority_interest,omitempty"`
	TotalLiabilitiesAndTotalEquity          *int64 `json:"total_liabilities_and_total_equity,omitempty"`
	TotalInvestments                        *int64 `json:"total_investments,omitempty"`
	TotalDebt                               *int64 `json:"total_debt,omitempty"`
	NetDebt                                 *int64 `json:"net_debt,omitempty"`
}

// IncomeStatement is one reported income statement for a company.
type IncomeStatement struct {
	StatementHeader
	Data *IncomeStatementData `json:"data"`
}

// IncomeStatementData holds the income statement line items.
type IncomeStatementData struct {
	Revenue                                 *int64   `json:"revenue,omitempty"`
	CostOfRevenue                           *int64   `json:"cost_of_revenue,omitempty"`
	GrossProfit                             *int64   `json:"gross_profit,omitempty"`
	ResearchAndDevelopmentExpenses          *int64   `json:"research_and_development_expenses,omitempty"`
	GeneralAndAdministrativeExpenses        *int64   `json:"general_and_administrative_expenses,omitempty"`
	SellingAndMarketingExpenses             *int64   `json:"selling_and_marketing_expenses,omitempty"`
	SellingGeneralAndAdministrativeExpenses *int64   `json:"selling_general_and_administrative_expenses,omitempty"`
	OtherExpenses                           *int64   `json:"other_expenses,omitempty"`
	OperatingExpenses                       *int64   `json:"operating_expenses,omitempty"`
	CostAndExpenses                         *int64   `json:"cost_and_expenses,omitempty"`
	NetInterestIncome                       *int64   `json:"net_interest_income,omitempty"`
	InterestIncome                          *int64   `json:"interest_income,omitempty"`
	InterestExpense                         *int64   `json:"interest_expense,omitempty"`
	DepreciationAndAmortization             *int64   `json:"depreciation_and_amortization,omitempty"`
	EBITDA                                  *int64   `json:"ebitda,omitempty"`
	EBIT                                    *int64   `json:"ebit,omitempty"`
	NonOperatingIncomeExcludingInterest     *int64   `json:"non_operating_income_excluding_interest,omitempty"`
	OperatingIncome                         *int64   `json:"operating_income,omitempty"`
	TotalOtherIncomeExpensesNet             *int64   `json:"total_other_income_expenses_net,omitempty"`
	IncomeBeforeTax                         *int64   `json:"income_before_tax,omitempty"`
	IncomeTaxExpense                        *int64   `json:"income_tax_expense,omitempty"`
	NetIncomeFromContinuingOperations       *int64   `json:"net_income_from_continuing_operations,omitempty"`
	NetIncomeFromDiscontinuedOperations     *int64   `json:"net_income_from_discontinued_operations,omitempty"`
	OtherAdjustmentsToNetIncome             *int64   `json:"other_adjustments_to_net_income,omitempty"`
	NetIncome                               *int64   `json:"net_income,omitempty"`
	NetIncomeDeductions                     *int64   `json:"net_income_deductions,omitempty"`
	BottomLineNetIncome                     *int64   `json:"bottom_line_net_income,omitempty"`
	EPS                                     *float64 `json:"eps,omitempty"`
	EPSDiluted                              *float64 `json:"eps_diluted,omitempty"`
	WeightedAverageShsOut                   *int64   `json:"weighted_average_shs_out,omitempty"`
	WeightedAverageShsOutDil                *int64   `json:"weighted_average_shs_out_dil,omitempty"`
}

// CashFlowStatement is one reported cash flow statement for a company.
type CashFlowStatement struct {
	StatementHeader
	Data *CashFlowData `json:"data"`
}

// CashFlowData holds the cash flow statement line items.
type CashFlowData struct {
	NetIncome                                *int64 `json:"net_income,omitempty"`
	DepreciationAndAmortization              *int64 `json:"depreciation_and_amortization,omitempty"`
	DeferredIncomeTax                        *int64 `json:"deferred_income_tax,omitempty"`
	StockBasedCompensation                   *int64 `json:"stock_based_compensation,omitempty"`
	ChangeInWorkingCapital                   *int64 `json:"change_in_working_capital,omitempty"`
	AccountsReceivables                      *int64 `json:"accounts_receivables,omitempty"`
	Inventory                                *int64 `json:"inventory,omitempty"`
	AccountsPayables                         *int64 `json:"accounts_payables,omitempty"`
	OtherWorkingCapital                      *int64 `json:"other_working_capital,omitempty"`
	OtherNonCashItems                        *int64 `json:"other_non_cash_items,omitempty"`
	NetCashProvidedByOperatingActivities     *int64 `json:"net_cash_provided_by_operating_activities,omitempty"`
	InvestmentsInPropertyPlantAndEquipment   *int64 `json:"investments_in_property_plant_and_equipment,omitempty"`
	AcquisitionsNet                          *int64 `json:"acquisitions_net,omitempty"`
	PurchasesOfInvestments                   *int64 `json:"purchases_of_investments,omitempty"`
	SalesMaturitiesOfInvestments             *int64 `json:"sales_maturities_of_investments,omitempty"`
	OtherInvestingActivities                 *int64 `json:"other_investing_activities,omitempty"`
	NetCashProvidedByInvestingActivities     *int64 `json:"net_cash_provided_by_investing_activities,omitempty"`
	NetDebtIssuance                          *int64 `json:"net_debt_issuance,omitempty"`
	LongTermNetDebtIssuance                  *int64 `json:"long_term_net_debt_issuance,omitempty"`
	ShortTermNetDebtIssuance                 *int64 `json:"short_term_net_debt_issuance,omitempty"`
	NetStockIssuance                         *int64 `json:"net_stock_issuance,omitempty"`
	NetCommonStockIssuance                   *int64 `json:"net_common_stock_issuance,omitempty"`
	CommonStockIssuance                      *int64 `json:"common_stock_issuance,omitempty"`
	CommonStockRepurchased                   *int64 `json:"common_stock_repurchased,omitempty"`
	NetPreferredStockIssuance                *int64 `json:"net_preferred_stock_issuance,omitempty"`
	NetDividendsPaid                         *int64 `json:"net_dividends_paid,omitempty"`
	CommonDividendsPaid                      *int64 `json:"common_dividends_paid,omitempty"`
	PreferredDividendsPaid                   *int64 `json:"preferred_dividends_paid,omitempty"`
	OtherFinancingActivities                 *int64 `json:"other_financing_activities,omitempty"`
	NetCashProvidedByFinancingActivities     *int64 `json:"net_cash_provided_by_financing_activities,omitempty"`
	EffectOfForexChangesOnCash               *int64 `json:"effect_of_forex_changes_on_cash,omitempty"`
	NetChangeInCash                          *int64 `json:"net_change_in_cash,omitempty"`
	CashAtEndOfPeriod                        *int64 `json:"cash_at_end_of_period,omitempty"`
	CashAtBeginningOfPeriod                  *int64 `json:"cash_at_beginning_of_period,omitempty"`
	OperatingCashFlow                        *int64 `json:"operating_cash_flow,omitempty"`
	CapitalExpenditure                       *int64 `json:"capital_expenditure,omitempty"`
	FreeCashFlow                             *int64 `json:"free_cash_flow,omitempty"`
	IncomeTaxesPaid                          *int64 `json:"income_taxes_paid,omitempty"`
	InterestPaid                             *int64 `json:"interest_paid,omitempty"`
}
