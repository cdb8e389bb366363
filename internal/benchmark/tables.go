package benchmark

// f is a shorthand for the pointer thresholds used throughout the tables.
func f(v float64) *float64 { return &v }

// DefaultSections is the section map used by the financial health sync.
// Section and metric order here is the order records are built and served
// in. Data keys follow the JSON names of the key metrics and financial
// ratios payloads; margin and yield style metrics are plain fractions, so
// their thresholds are too.
var DefaultSections = []Section{
	{
		Name: "Profitability Analysis",
		Metrics: []Metric{
			{Name: "Gross Profit Margin", DataKey: "gross_profit_margin"},
			{Name: "Operating Profit Margin", DataKey: "operating_profit_margin"},
			{Name: "Net Profit Margin", DataKey: "net_profit_margin"},
			{Name: "EBITDA Margin", DataKey: "ebitda_margin"},
			{Name: "Pretax Profit Margin", DataKey: "pretax_profit_margin"},
			{Name: "Return on Equity", DataKey: "return_on_equity"},
			{Name: "Return on Assets", DataKey: "return_on_assets"},
		},
	},
	{
		Name: "Efficiency and Productivity Analysis",
		Metrics: []Metric{
			{Name: "Asset Turnover", DataKey: "asset_turnover"},
			{Name: "Inventory Turnover", DataKey: "inventory_turnover"},
			{Name: "Receivables Turnover", DataKey: "receivables_turnover"},
			{Name: "Fixed Asset Turnover", DataKey: "fixed_asset_turnover"},
			{Name: "Days of Sales Outstanding", DataKey: "days_of_sales_outstanding"},
			{Name: "Operating Cycle", DataKey: "operating_cycle"},
			{Name: "Cash Conversion Cycle", DataKey: "cash_conversion_cycle"},
		},
	},
	{
		Name: "Liquidity and Short-Term Solvency",
		Metrics: []Metric{
			{Name: "Current Ratio", DataKey: "current_ratio"},
			{Name: "Quick Ratio", DataKey: "quick_ratio"},
			{Name: "Cash Ratio", DataKey: "cash_ratio"},
			{Name: "Solvency Ratio", DataKey: "solvency_ratio"},
		},
	},
	{
		Name: "Leverage and Capital Structure",
		Metrics: []Metric{
			{Name: "Debt to Equity Ratio", DataKey: "debt_to_equity_ratio"},
			{Name: "Debt to Assets Ratio", DataKey: "debt_to_assets_ratio"},
			{Name: "Long Term Debt to Capital Ratio", DataKey: "long_term_debt_to_capital_ratio"},
			{Name: "Financial Leverage Ratio", DataKey: "financial_leverage_ratio"},
			{Name: "Interest Coverage Ratio", DataKey: "interest_coverage_ratio"},
			{Name: "Net Debt to EBITDA", DataKey: "net_debt_to_ebitda"},
		},
	},
	{
		Name: "Valuation and Market Multiples",
		Metrics: []Metric{
			{Name: "Price to Earnings Ratio", DataKey: "price_to_earnings_ratio"},
			{Name: "Price to Book Ratio", DataKey: "price_to_book_ratio"},
			{Name: "Price to Sales Ratio", DataKey: "price_to_sales_ratio"},
			{Name: "EV to EBITDA", DataKey: "ev_to_ebitda"},
			{Name: "EV to Sales", DataKey: "ev_to_sales"},
			{Name: "Price to Earnings Growth Ratio", DataKey: "price_to_earnings_growth_ratio"},
			{Name: "Price to Fair Value", DataKey: "price_to_fair_value"},
			{Name: "Earnings Yield", DataKey: "earnings_yield"},
		},
	},
	{
		Name: "Cash Flow Strength",
		Metrics: []Metric{
			{Name: "Operating Cash Flow Ratio", DataKey: "operating_cash_flow_ratio"},
			{Name: "Operating Cash Flow to Sales", DataKey: "operating_cash_flow_sales_ratio"},
			{Name: "Free Cash Flow Yield", DataKey: "free_cash_flow_yield"},
			{Name: "Income Quality", DataKey: "income_quality"},
			{Name: "Capex to Operating Cash Flow", DataKey: "capex_to_operating_cash_flow"},
			{Name: "Capex to Revenue", DataKey: "capex_to_revenue"},
			{Name: "Debt Service Coverage Ratio", DataKey: "debt_service_coverage_ratio"},
		},
	},
	{
		Name: "Asset Quality and Capital Efficiency",
		Metrics: []Metric{
			{Name: "Return on Invested Capital", DataKey: "return_on_invested_capital"},
			{Name: "Return on Capital Employed", DataKey: "return_on_capital_employed"},
			{Name: "Return on Tangible Assets", DataKey: "return_on_tangible_assets"},
			{Name: "Intangibles to Total Assets", DataKey: "intangibles_to_total_assets"},
			{Name: "Working Capital", DataKey: "working_capital"},
			{Name: "Graham Number", DataKey: "graham_number"},
		},
	},
	{
		Name: "Dividend and Shareholder Returns",
		Metrics: []Metric{
			{Name: "Dividend Yield", DataKey: "dividend_yield_percentage"},
			{Name: "Dividend Payout Ratio", DataKey: "dividend_payout_ratio"},
			{Name: "Dividend Paid and Capex Coverage", DataKey: "dividend_paid_and_capex_coverage_ratio"},
		},
	},
	{
		Name: "Per Share Performance",
		Metrics: []Metric{
			{Name: "Revenue per Share", DataKey: "revenue_per_share"},
			{Name: "Net Income per Share", DataKey: "net_income_per_share"},
			{Name: "Free Cash Flow per Share", DataKey: "free_cash_flow_per_share"},
			{Name: "Operating Cash Flow per Share", DataKey: "operating_cash_flow_per_share"},
			{Name: "Book Value per Share", DataKey: "book_value_per_share"},
			{Name: "Cash per Share", DataKey: "cash_per_share"},
		},
	},
	{
		Name: "Tax and Cost Structure Analysis",
		Metrics: []Metric{
			{Name: "Effective Tax Rate", DataKey: "effective_tax_rate"},
			{Name: "Tax Burden", DataKey: "tax_burden"},
			{Name: "Interest Burden", DataKey: "interest_burden"},
			{Name: "Research and Development to Revenue", DataKey: "research_and_development_to_revenue"},
			{Name: "SG&A to Revenue", DataKey: "sales_general_and_administrative_to_revenue"},
		},
	},
}

// DefaultRules maps metric display names to their benchmark rules. Metrics
// whose healthy band depends on sector or company size carry OpCustom and
// are never judged automatically.
var DefaultRules = map[string]*Rule{
	// Profitability Analysis
	"Gross Profit Margin": {
		Operator: OpGT, Threshold: f(0.4),
		Insight: "Margins above 40% of revenue indicate strong pricing power and production efficiency.",
	},
	"Operating Profit Margin": {
		Operator: OpGT, Threshold: f(0.15),
		Insight: "Healthy operators keep more than 15% of revenue after operating costs.",
	},
	"Net Profit Margin": {
		Operator: OpGT, Threshold: f(0.1),
		Insight: "A net margin above 10% leaves room to absorb shocks and reinvest.",
	},
	"EBITDA Margin": {
		Operator: OpGT, Threshold: f(0.2),
		Insight: "EBITDA above 20% of revenue signals solid core profitability before capital structure.",
	},
	"Pretax Profit Margin": {
		Operator: OpGT, Threshold: f(0.12),
		Insight: "Pretax margins above 12% show earnings are not propped up by tax effects.",
	},
	"Return on Equity": {
		Operator: OpGT, Threshold: f(0.15),
		Insight: "Returns above 15% on shareholder capital beat most market benchmarks.",
	},
	"Return on Assets": {
		Operator: OpGT, Threshold: f(0.05),
		Insight: "Asset returns above 5% show management converts the balance sheet into profit.",
	},

	// Efficiency and Productivity Analysis
	"Asset Turnover": {
		Operator: OpGTE, Threshold: f(0.5), Unit: "×",
		Insight: "Revenue of at least half the asset base per year indicates productive assets.",
	},
	"Inventory Turnover": {
		Operator: OpGT, Threshold: f(5), Unit: "×",
		Insight: "Turning inventory more than five times a year limits obsolescence and carrying cost.",
	},
	"Receivables Turnover": {
		Operator: OpGT, Threshold: f(6), Unit: "×",
		Insight: "Collecting receivables more than six times a year keeps customer credit tight.",
	},
	"Fixed Asset Turnover": {
		Operator: OpGT, Threshold: f(2), Unit: "×",
		Insight: "Revenue above twice the fixed asset base shows efficient use of plant and equipment.",
	},
	"Days of Sales Outstanding": {
		Operator: OpLT, Threshold: f(45), Unit: " days",
		Insight: "Collecting within 45 days keeps cash cycling back into the business.",
	},
	"Operating Cycle": {
		Operator: OpLT, Threshold: f(90), Unit: " days",
		Insight: "An operating cycle under 90 days converts inventory to cash quickly.",
	},
	"Cash Conversion Cycle": {
		Operator: OpLT, Threshold: f(60), Unit: " days",
		Insight: "A cycle under 60 days means the business funds less of its own growth with debt.",
	},

	// Liquidity and Short-Term Solvency
	"Current Ratio": {
		Operator: OpRange, Low: f(1), High: f(2),
		Insight: "Between 1 and 2 covers short-term obligations without hoarding unproductive assets.",
	},
	"Quick Ratio": {
		Operator: OpGTE, Threshold: f(1),
		Insight: "Liquid assets at or above current liabilities avoid reliance on inventory sales.",
	},
	"Cash Ratio": {
		Operator: OpRange, Low: f(0.2), High: f(0.8),
		Insight: "Cash between 20% and 80% of current liabilities balances safety and productivity.",
	},
	"Solvency Ratio": {
		Operator: OpGT, Threshold: f(0.2),
		Insight: "Cash flow above 20% of total liabilities keeps long-term obligations serviceable.",
	},

	// Leverage and Capital Structure
	"Debt to Equity Ratio": {
		Operator: OpLT, Threshold: f(1),
		Insight: "Debt below equity keeps the capital structure conservative.",
	},
	"Debt to Assets Ratio": {
		Operator: OpLT, Threshold: f(0.5),
		Insight: "Funding less than half the asset base with debt limits refinancing risk.",
	},
	"Long Term Debt to Capital Ratio": {
		Operator: OpLT, Threshold: f(0.4),
		Insight: "Long-term debt below 40% of total capital leaves borrowing headroom.",
	},
	"Financial Leverage Ratio": {
		Operator: OpRange, Low: f(1.5), High: f(3),
		Insight: "Assets between 1.5× and 3× equity use leverage without overextending.",
	},
	"Interest Coverage Ratio": {
		Operator: OpGT, Threshold: f(3), Unit: "×",
		Insight: "Operating income above three times interest expense tolerates rate or earnings shocks.",
	},
	"Net Debt to EBITDA": {
		Operator: OpLT, Threshold: f(3), Unit: "×",
		Insight: "Net debt under three years of EBITDA is the conventional ceiling for investment grade.",
	},

	// Valuation and Market Multiples
	"Price to Earnings Ratio": {
		Operator: OpRange, Low: f(10), High: f(25), Unit: "×",
		Insight: "Earnings multiples between 10 and 25 price in growth without speculative excess.",
	},
	"Price to Book Ratio": {
		Operator: OpLT, Threshold: f(3), Unit: "×",
		Insight: "Paying under three times book value limits downside to net assets.",
	},
	"Price to Sales Ratio": {
		Operator: OpLT, Threshold: f(2), Unit: "×",
		Insight: "Under two times revenue is reasonable for all but the fastest growers.",
	},
	"EV to EBITDA": {
		Operator: OpRange, Low: f(8), High: f(15), Unit: "×",
		Insight: "Enterprise multiples between 8 and 15 sit in the historical fair-value band.",
	},
	"EV to Sales": {
		Operator: OpLT, Threshold: f(3), Unit: "×",
		Insight: "Enterprise value under three times revenue avoids paying for distant growth.",
	},
	"Price to Earnings Growth Ratio": {
		Operator: OpApprox, Threshold: f(1),
		Insight: "A PEG near 1 means the earnings multiple is covered by expected growth.",
	},
	"Price to Fair Value": {
		Operator: OpApprox, Threshold: f(1),
		Insight: "Trading near estimated fair value leaves neither margin of safety nor overpayment.",
	},
	"Earnings Yield": {
		Operator: OpGT, Threshold: f(0.05),
		Insight: "An earnings yield above 5% competes with bond returns.",
	},

	// Cash Flow Strength
	"Operating Cash Flow Ratio": {
		Operator: OpGTE, Threshold: f(0.4),
		Insight: "Operating cash covering 40% or more of current liabilities funds obligations internally.",
	},
	"Operating Cash Flow to Sales": {
		Operator: OpGT, Threshold: f(0.1),
		Insight: "Converting over 10% of revenue to operating cash confirms earnings quality.",
	},
	"Free Cash Flow Yield": {
		Operator: OpGT, Threshold: f(0.04),
		Insight: "Free cash flow above 4% of market value supports buybacks and dividends.",
	},
	"Income Quality": {
		Operator: OpGTE, Threshold: f(1),
		Insight: "Operating cash at or above net income means earnings are backed by cash.",
	},
	"Capex to Operating Cash Flow": {
		Operator: OpLT, Threshold: f(0.5),
		Insight: "Spending less than half of operating cash on capex leaves genuine free cash flow.",
	},
	"Capex to Revenue": {
		Operator: OpLTE, Threshold: f(0.15),
		Insight: "Capex at or below 15% of revenue keeps the business from being capital hungry.",
	},
	"Debt Service Coverage Ratio": {
		Operator: OpGT, Threshold: f(1.25), Unit: "×",
		Insight: "Cash flow above 1.25× debt service is the usual lender covenant floor.",
	},

	// Asset Quality and Capital Efficiency
	"Return on Invested Capital": {
		Operator: OpGT, Threshold: f(0.1),
		Insight: "Returns above 10% on invested capital typically clear the cost of capital.",
	},
	"Return on Capital Employed": {
		Operator: OpGT, Threshold: f(0.12),
		Insight: "Returns above 12% on capital employed indicate a durable competitive position.",
	},
	"Return on Tangible Assets": {
		Operator: OpGT, Threshold: f(0.06),
		Insight: "Above 6% on tangible assets shows profitability is not an accounting artifact.",
	},
	"Intangibles to Total Assets": {
		Operator: OpLT, Threshold: f(0.4),
		Insight: "Keeping intangibles under 40% of assets limits goodwill impairment risk.",
	},
	"Working Capital": {
		Operator: OpCustom,
		Insight:  "Absolute working capital depends on company scale; judge it against revenue and sector norms.",
	},
	"Graham Number": {
		Operator: OpCustom,
		Insight:  "Compare the Graham number to the market price; trading below it suggests value by Graham's test.",
	},

	// Dividend and Shareholder Returns
	"Dividend Yield": {
		Operator: OpRange, Low: f(2), High: f(6), Unit: "%",
		Insight: "Yields between 2% and 6% reward holders without signaling distress.",
	},
	"Dividend Payout Ratio": {
		Operator: OpRange, Low: f(0.3), High: f(0.6),
		Insight: "Paying out 30% to 60% of earnings sustains the dividend through downturns.",
	},
	"Dividend Paid and Capex Coverage": {
		Operator: OpGT, Threshold: f(1), Unit: "×",
		Insight: "Cash flow covering both dividends and capex means neither is debt funded.",
	},

	// Per Share Performance
	"Revenue per Share": {
		Operator: OpCustom,
		Insight:  "Track revenue per share over time; growth without dilution is the signal.",
	},
	"Net Income per Share": {
		Operator: OpGT, Threshold: f(0),
		Insight: "Positive earnings per share is the baseline for any payout or multiple.",
	},
	"Free Cash Flow per Share": {
		Operator: OpGT, Threshold: f(0),
		Insight: "Positive free cash flow per share funds returns without external capital.",
	},
	"Operating Cash Flow per Share": {
		Operator: OpGT, Threshold: f(0),
		Insight: "Positive operating cash per share confirms the core business generates cash.",
	},
	"Book Value per Share": {
		Operator: OpCustom,
		Insight:  "Compare book value per share with price and its own history; the level alone says little.",
	},
	"Cash per Share": {
		Operator: OpCustom,
		Insight:  "High cash per share cushions downturns but can also flag missing reinvestment opportunities.",
	},

	// Tax and Cost Structure Analysis
	"Effective Tax Rate": {
		Operator: OpRange, Low: f(0.15), High: f(0.3),
		Insight: "Effective rates between 15% and 30% are typical; outliers invite scrutiny of earnings quality.",
	},
	"Tax Burden": {
		Operator: OpRange, Low: f(0.6), High: f(0.9),
		Insight: "Keeping 60% to 90% of pretax income after tax is the normal corporate band.",
	},
	"Interest Burden": {
		Operator: OpGTE, Threshold: f(0.8),
		Insight: "Pretax income at or above 80% of operating income means interest is not eating earnings.",
	},
	"Research and Development to Revenue": {
		Operator: OpCustom,
		Insight:  "Healthy R&D intensity is sector specific; compare against direct peers.",
	},
	"SG&A to Revenue": {
		Operator: OpLT, Threshold: f(0.25),
		Insight: "Overhead below 25% of revenue leaves operating leverage as the business scales.",
	},
}
