package fmpdomain

// MetricsHeader carries the identity fields of /key-metrics and /ratios
// elements.
type MetricsHeader struct {
	Symbol           string `json:"symbol"`
	Date             string `json:"date"`
	FiscalYear       string `json:"fiscalYear"`
	Period           string `json:"period"`
	ReportedCurrency string `json:"reportedCurrency"`
}

// KeyMetrics is one element of the /key-metrics payload. The
// researchAndDevelopementToRevenue tag reproduces the vendor's own spelling.
type KeyMetrics struct {
	MetricsHeader
	MarketCap                              *int64   `json:"marketCap"`
	EnterpriseValue                        *int64   `json:"enterpriseValue"`
	EVToSales                              *float64 `json:"evToSales"`
	EVToOperatingCashFlow                  *float64 `json:"evToOperatingCashFlow"`
	EVToFreeCashFlow                       *float64 `json:"evToFreeCashFlow"`
	EVToEBITDA                             *float64 `json:"evToEBITDA"`
	NetDebtToEBITDA                        *float64 `json:"netDebtToEBITDA"`
	CurrentRatio                           *float64 `json:"currentRatio"`
	IncomeQuality                          *float64 `json:"incomeQuality"`
	GrahamNumber                           *float64 `json:"grahamNumber"`
	GrahamNetNet                           *float64 `json:"grahamNetNet"`
	TaxBurden                              *float64 `json:"taxBurden"`
	InterestBurden                         *float64 `json:"interestBurden"`
	WorkingCapital                         *int64   `json:"workingCapital"`
	InvestedCapital                        *int64   `json:"investedCapital"`
	ReturnOnAssets                         *float64 `json:"returnOnAssets"`
	OperatingReturnOnAssets                *float64 `json:"operatingReturnOnAssets"`
	ReturnOnTangibleAssets                 *float64 `json:"returnOnTangibleAssets"`
	ReturnOnEquity                         *float64 `json:"returnOnEquity"`
	ReturnOnInvestedCapital                *float64 `json:"returnOnInvestedCapital"`
	ReturnOnCapitalEmployed                *float64 `json:"returnOnCapitalEmployed"`
	EarningsYield                          *float64 `json:"earningsYield"`
	FreeCashFlowYield                      *float64 `json:"freeCashFlowYield"`
	CapexToOperatingCashFlow               *float64 `json:"capexToOperatingCashFlow"`
	CapexToDepreciation                    *float64 `json:"capexToDepreciation"`
	CapexToRevenue                         *float64 `json:"capexToRevenue"`
	SalesGeneralAndAdministrativeToRevenue *float64 `json:"salesGeneralAndAdministrativeToRevenue"`
	ResearchAndDevelopmentToRevenue        *float64 `json:"researchAndDevelopementToRevenue"`
	StockBasedCompensationToRevenue        *float64 `json:"stockBasedCompensationToRevenue"`
	IntangiblesToTotalAssets               *float64 `json:"intangiblesToTotalAssets"`
	AverageReceivables                     *int64   `json:"averageReceivables"`
	AveragePayables                        *int64   `json:"averagePayables"`
	AverageInventory                       *int64   `json:"averageInventory"`
	DaysOfSalesOutstanding                 *float64 `json:"daysOfSalesOutstanding"`
	DaysOfPayablesOutstanding              *float64 `json:"daysOfPayablesOutstanding"`
	DaysOfInventoryOutstanding             *float64 `json:"daysOfInventoryOutstanding"`
	OperatingCycle                         *float64 `json:"operatingCycle"`
	CashConversionCycle                    *float64 `json:"cashConversionCycle"`
	FreeCashFlowToEquity                   *float64 `json:"freeCashFlowToEquity"`
	FreeCashFlowToFirm                     *float64 `json:"freeCashFlowToFirm"`
	TangibleAssetValue                     *int64   `json:"tangibleAssetValue"`
	NetCurrentAssetValue                   *int64   `json:"netCurrentAssetValue"`
}

// FinancialRatios is one element of the /ratios payload.
type FinancialRatios struct {
	MetricsHeader
	GrossProfitMargin                       *float64 `json:"grossProfitMargin"`
	EBITMargin                              *float64 `json:"ebitMargin"`
	EBITDAMargin                            *float64 `json:"ebitdaMargin"`
	OperatingProfitMargin                   *float64 `json:"operatingProfitMargin"`
	PretaxProfitMargin                      *float64 `json:"pretaxProfitMargin"`
	ContinuousOperationsProfitMargin        *float64 `json:"continuousOperationsProfitMargin"`
	NetProfitMargin                         *float64 `json:"netProfitMargin"`
	BottomLineProfitMargin                  *float64 `json:"bottomLineProfitMargin"`
	ReceivablesTurnover                     *float64 `json:"receivablesTurnover"`
	PayablesTurnover                        *float64 `json:"payablesTurnover"`
	InventoryTurnover                       *float64 `json:"inventoryTurnover"`
	FixedAssetTurnover                      *float64 `json:"fixedAssetTurnover"`
	AssetTurnover                           *float64 `json:"assetTurnover"`
	CurrentRatio                            *float64 `json:"currentRatio"`
	QuickRatio                              *float64 `json:"quickRatio"`
	SolvencyRatio                           *float64 `json:"solvencyRatio"`
	CashRatio                               *float64 `json:"cashRatio"`
	PriceToEarningsRatio                    *float64 `json:"priceToEarningsRatio"`
	PriceToEarningsGrowthRatio              *float64 `json:"priceToEarningsGrowthRatio"`
	ForwardPriceToEarningsGrowthRatio       *float64 `json:"forwardPriceToEarningsGrowthRatio"`
	PriceToBookRatio                        *float64 `json:"priceToBookRatio"`
	PriceToSalesRatio                       *float64 `json:"priceToSalesRatio"`
	PriceToFreeCashFlowRatio                *float64 `json:"priceToFreeCashFlowRatio"`
	PriceToOperatingCashFlowRatio           *float64 `json:"priceToOperatingCashFlowRatio"`
	DebtToAssetsRatio                       *float64 `json:"debtToAssetsRatio"`
	DebtToEquityRatio                       *float64 `json:"debtToEquityRatio"`
	DebtToCapitalRatio                      *float64 `json:"debtToCapitalRatio"`
	LongTermDebtToCapitalRatio              *float64 `json:"longTermDebtToCapitalRatio"`
	FinancialLeverageRatio                  *float64 `json:"financialLeverageRatio"`
	WorkingCapitalTurnoverRatio             *float64 `json:"workingCapitalTurnoverRatio"`
	OperatingCashFlowRatio                  *float64 `json:"operatingCashFlowRatio"`
	OperatingCashFlowSalesRatio             *float64 `json:"operatingCashFlowSalesRatio"`
	FreeCashFlowOperatingCashFlowRatio      *float64 `json:"freeCashFlowOperatingCashFlowRatio"`
	DebtServiceCoverageRatio                *float64 `json:"debtServiceCoverageRatio"`
	InterestCoverageRatio                   *float64 `json:"interestCoverageRatio"`
	ShortTermOperatingCashFlowCoverageRatio *float64 `json:"shortTermOperatingCashFlowCoverageRatio"`
	OperatingCashFlowCoverageRatio          *float64 `json:"operatingCashFlowCoverageRatio"`
	CapitalExpenditureCoverageRatio         *float64 `json:"capitalExpenditureCoverageRatio"`
	DividendPaidAndCapexCoverageRatio       *float64 `json:"dividendPaidAndCapexCoverageRatio"`
	DividendPayoutRatio                     *float64 `json:"dividendPayoutRatio"`
	DividendYield                           *float64 `json:"dividendYield"`
	DividendYieldPercentage                 *float64 `json:"dividendYieldPercentage"`
	RevenuePerShare                         *float64 `json:"revenuePerShare"`
	NetIncomePerShare                       *float64 `json:"netIncomePerShare"`
	InterestDebtPerShare                    *float64 `json:"interestDebtPerShare"`
	CashPerShare                            *float64 `json:"cashPerShare"`
	BookValuePerShare                       *float64 `json:"bookValuePerShare"`
	TangibleBookValuePerShare               *float64 `json:"tangibleBookValuePerShare"`
	ShareholdersEquityPerShare              *float64 `json:"shareholdersEquityPerShare"`
	OperatingCashFlowPerShare               *float64 `json:"operatingCashFlowPerShare"`
	CapexPerShare                           *float64 `json:"capexPerShare"`
	FreeCashFlowPerShare                    *float64 `json:"freeCashFlowPerShare"`
	NetIncomePerEBT                         *float64 `json:"netIncomePerEBT"`
	EBTPerEBIT                              *float64 `json:"ebtPerEbit"`
	PriceToFairValue                        *float64 `json:"priceToFairValue"`
	DebtToMarketCap                         *float64 `json:"debtToMarketCap"`
	EffectiveTaxRate                        *float64 `json:"effectiveTaxRate"`
	EnterpriseValueMultiple                 *float64 `json:"enterpriseValueMultiple"`
}
