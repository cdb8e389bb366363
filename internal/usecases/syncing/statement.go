package syncing

import (
	"context"

	"github.com/pkg/errors"
	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	"github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/fmpclient"
	"github.com/stockmate/stockmate-api/infrastructure/repository"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// StatementSyncer pulls the three financial statements from FMP and stores
// them keyed by (symbol, date).
type StatementSyncer interface {
	SyncBalanceSheets(ctx context.Context, symbol, period string, limit int) ([]*domain.BalanceSheet, error)
	SyncIncomeStatements(ctx context.Context, symbol, period string, limit int) ([]*domain.IncomeStatement, error)
	SyncCashFlowStatements(ctx context.Context, symbol, period string, limit int) ([]*domain.CashFlowStatement, error)
}

type statementSyncer struct {
	client        fmpclient.Client
	companyRepo   repository.CompanyRepository
	statementRepo repository.FinancialStatementRepository
}

func NewStatementSyncer(
	client fmpclient.Client,
	companyRepo repository.CompanyRepository,
	statementRepo repository.FinancialStatementRepository,
) StatementSyncer {
	return &statementSyncer{
		client:        client,
		companyRepo:   companyRepo,
		statementRepo: statementRepo,
	}
}

func (s *statementSyncer) SyncBalanceSheets(ctx context.Context, symbol, period string, limit int) ([]*domain.BalanceSheet, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit, DefaultStatementLimit)

	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	statements, err := s.client.BalanceSheetStatements(symbol, period, limit)
	if err != nil {
		return nil, errors.Wrap(err, "fetching balance sheets")
	}
	if len(statements) == 0 {
		return nil, nil
	}

	records := make([]*domain.BalanceSheet, 0, len(statements))
	for _, statement := range statements {
		record, err := mapBalanceSheet(statement, company.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "mapping balance sheet %s", statement.Date)
		}
		records = append(records, record)
	}

	if err := s.statementRepo.UpsertBalanceSheets(records); err != nil {
		return nil, errors.Wrap(err, "upserting balance sheets")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":  symbol,
		"period":  period,
		"records": len(records),
	}).Info("Balance sheets synced")

	return records, nil
}

func (s *statementSyncer) SyncIncomeStatements(ctx context.Context, symbol, period string, limit int) ([]*domain.IncomeStatement, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit, DefaultStatementLimit)

	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	statements, err := s.client.IncomeStatements(symbol, period, limit)
	if err != nil {
		return nil, errors.Wrap(err, "fetching income statements")
	}
	if len(statements) == 0 {
		return nil, nil
	}

	records := make([]*domain.IncomeStatement, 0, len(statements))
	for _, statement := range statements {
		record, err := mapIncomeStatement(statement, company.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "mapping income statement %s", statement.Date)
		}
		records = append(records, record)
	}

	if err := s.statementRepo.UpsertIncomeStatements(records); err != nil {
		return nil, errors.Wrap(err, "upserting income statements")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":  symbol,
		"period":  period,
		"records": len(records),
	}).Info("Income statements synced")

	return records, nil
}

func (s *statementSyncer) SyncCashFlowStatements(ctx context.Context, symbol, period string, limit int) ([]*domain.CashFlowStatement, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit, DefaultStatementLimit)

	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	statements, err := s.client.CashFlowStatements(symbol, period, limit)
	if err != nil {
		return nil, errors.Wrap(err, "fetching cash flow statements")
	}
	if len(statements) == 0 {
		return nil, nil
	}

	records := make([]*domain.CashFlowStatement, 0, len(statements))
	for _, statement := range statements {
		record, err := mapCashFlowStatement(statement, company.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "mapping cash flow statement %s", statement.Date)
		}

		records = append(records, record)
	}

	if err := s.statementRepo.UpsertCashFlowStatements(records); err != nil {
		return nil, errors.Wrap(err, "upserting cash flow statements")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":  symbol,
		"period":  period,
		"records": len(records),
	}).Info("Cash flow statements synced")

	return records, nil
}

// mapStatementHeader parses the string-typed wire header into the domain
// header shared by all statement rows.
func mapStatementHeader(header fmpdomain.StatementHeader, companyID string) (domain.StatementHeader, error) {
	date, err := parseDate(dateLayout, header.Date)
	if err != nil {
		return domain.StatementHeader{}, errors.Wrap(err, "parsing date")
	}

	filingDate, err := parseDate(dateLayout, header.FilingDate)
	if err != nil {
		return domain.StatementHeader{}, errors.Wrap(err, "parsing filing date")
	}

	acceptedDate, err := parseDate(acceptedDateLayout, header.AcceptedDate)
	if err != nil {
		return domain.StatementHeader{}, errors.Wrap(err, "parsing accepted date")
	}

	fiscalYear, err := parseFiscalYear(header.FiscalYear)
	if err != nil {
		return domain.StatementHeader{}, errors.Wrap(err, "parsing fiscal year")
	}

	return domain.StatementHeader{
		CompanyID:        companyID,
		Symbol:           header.Symbol,
		Date:             date,
		ReportedCurrency: header.ReportedCurrency,
		CIK:              header.CIK,
		FilingDate:       filingDate,
		AcceptedDate:     acceptedDate,
		FiscalYear:       fiscalYear,
		Period:           header.Period,
	}, nil
}

func mapBalanceSheet(statement fmpdomain.BalanceSheetStatement, companyID string) (*domain.BalanceSheet, error) {
	header, err := mapStatementHeader(statement.StatementHeader, companyID)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceSheet{
		StatementHeader: header,
		Data: &domain.BalanceSheetData{
			CashAndCashEquivalents:                  statement.CashAndCashEquivalents,
			ShortTermInvestments:                    statement.ShortTermInvestments,
			CashAndShortTermInvestments:             statement.CashAndShortTermInvestments,
			NetReceivables:                          statement.NetReceivables,
			AccountsReceivables:                     statement.AccountsReceivables,
			OtherReceivables:                        statement.OtherReceivables,
			Inventory:                               statement.Inventory,
			Prepaids:                                statement.Prepaids,
			OtherCurrentAssets:                      statement.OtherCurrentAssets,
			TotalCurrentAssets:                      statement.TotalCurrentAssets,
			PropertyPlantEquipmentNet:               statement.PropertyPlantEquipmentNet,
			Goodwill:                                statement.Goodwill,
			IntangibleAssets:                        statement.IntangibleAssets,
			GoodwillAndIntangibleAssets:             statement.GoodwillAndIntangibleAssets,
			LongTermInvestments:                     statement.LongTermInvestments,
			TaxAssets:                               statement.TaxAssets,
			OtherNonCurrentAssets:                   statement.OtherNonCurrentAssets,
			TotalNonCurrentAssets:                   statement.TotalNonCurrentAssets,
			OtherAssets:                             statement.OtherAssets,
			TotalAssets:                             statement.TotalAssets,
			TotalPayables:                           statement.TotalPayables,
			AccountPayables:                         statement.AccountPayables,
			OtherPayables:                           statement.OtherPayables,
			AccruedExpenses:                         statement.AccruedExpenses,
			ShortTermDebt:                           statement.ShortTermDebt,
			CapitalLeaseObligationsCurrent:          statement.CapitalLeaseObligationsCurrent,
			TaxPayables:                             statement.TaxPayables,
			DeferredRevenue:                         statement.DeferredRevenue,
			OtherCurrentLiabilities:                 statement.OtherCurrentLiabilities,
			TotalCurrentLiabilities:                 statement.TotalCurrentLiabilities,
			LongTermDebt:                            statement.LongTermDebt,
			DeferredRevenueNonCurrent:               statement.DeferredRevenueNonCurrent,
			DeferredTaxLiabilitiesNonCurrent:        statement.DeferredTaxLiabilitiesNonCurrent,
			OtherNonCurrentLiabilities:              statement.OtherNonCurrentLiabilities,
			TotalNonCurrentLiabilities:              statement.TotalNonCurrentLiabilities,
			OtherLiabilities:                        statement.OtherLiabilities,
			CapitalLeaseObligations:                 statement.CapitalLeaseObligations,
			TotalLiabilities:                        statement.TotalLiabilities,
			TreasuryStock:                           statement.TreasuryStock,
			PreferredStock:                          statement.PreferredStock,
			CommonStock:                             statement.CommonStock,
			RetainedEarnings:                        statement.RetainedEarnings,
			AdditionalPaidInCapital:                 statement.AdditionalPaidInCapital,
			AccumulatedOtherComprehensiveIncomeLoss: statement.AccumulatedOtherComprehensiveIncomeLoss,
			OtherTotalStockholdersEquity:            statement.OtherTotalStockholdersEquity,
			TotalStockholdersEquity:                 statement.TotalStockholdersEquity,
			TotalEquity:                             statement.TotalEquity,
			MinorityInterest:                        statement.MinorityInterest,
			TotalLiabilitiesAndTotalEquity:          statement.TotalLiabilitiesAndTotalEquity,
			TotalInvestments:                        statement.TotalInvestments,
			TotalDebt:                               statement.TotalDebt,
			NetDebt:                                 statement.NetDebt,
		},
	}, nil
}

func mapIncomeStatement(statement fmpdomain.IncomeStatement, companyID string) (*domain.IncomeStatement, error) {
	header, err := mapStatementHeader(statement.StatementHeader, companyID)
	if err != nil {
		return nil, err
	}

	return &domain.IncomeStatement{
		StatementHeader: header,
		Data: &domain.IncomeStatementData{
			Revenue:                                 statement.Revenue,
			CostOfRevenue:                           statement.CostOfRevenue,
			GrossProfit:                             statement.GrossProfit,
			ResearchAndDevelopmentExpenses:          statement.ResearchAndDevelopmentExpenses,
			GeneralAndAdministrativeExpenses:        statement.GeneralAndAdministrativeExpenses,
			SellingAndMarketingExpenses:             statement.SellingAndMarketingExpenses,
			SellingGeneralAndAdministrativeExpenses: statement.SellingGeneralAndAdministrativeExpenses,
			OtherExpenses:                           statement.OtherExpenses,
			OperatingExpenses:                       statement.OperatingExpenses,
			CostAndExpenses:                         statement.CostAndExpenses,
			NetInterestIncome:                       statement.NetInterestIncome,
			InterestIncome:                          statement.InterestIncome,
			InterestExpense:                         statement.InterestExpense,
			DepreciationAndAmortization:             statement.DepreciationAndAmortization,
			EBITDA:                                  statement.EBITDA,
			EBIT:                                    statement.EBIT,
			NonOperatingIncomeExcludingInterest:     statement.NonOperatingIncomeExcludingInterest,
			OperatingIncome:                         statement.OperatingIncome,
			TotalOtherIncomeExpensesNet:             statement.TotalOtherIncomeExpensesNet,
			IncomeBeforeTax:                         statement.IncomeBeforeTax,
			IncomeTaxExpense:                        statement.IncomeTaxExpense,
			NetIncomeFromContinuingOperations:       statement.NetIncomeFromContinuingOperations,
			NetIncomeFromDiscontinuedOperations:     statement.NetIncomeFromDiscontinuedOperations,
			OtherAdjustmentsToNetIncome:             statement.OtherAdjustmentsToNetIncome,
			NetIncome:                               statement.NetIncome,
			NetIncomeDeductions:                     statement.NetIncomeDeductions,
			BottomLineNetIncome:                     statement.BottomLineNetIncome,
			EPS:                                     statement.EPS,
			EPSDiluted:                              statement.EPSDiluted,
			WeightedAverageShsOut:                   statement.WeightedAverageShsOut,
			WeightedAverageShsOutDil:                statement.WeightedAverageShsOutDil,
		},
	}, nil
}

func mapCashFlowStatement(statement fmpdomain.CashFlowStatement, companyID string) (*domain.CashFlowStatement, error) {
	header, err := mapStatementHeader(statement.StatementHeader, companyID)
	if err != nil {
		return nil, err
	}

	return &domain.CashFlowStatement{
		StatementHeader: header,
		Data: &domain.CashFlowData{
			NetIncome:                              statement.NetIncome,
			DepreciationAndAmortization:            statement.DepreciationAndAmortization,
			DeferredIncomeTax:                      statement.DeferredIncomeTax,
			StockBasedCompensation:                 statement.StockBasedCompensation,
			ChangeInWorkingCapital:                 statement.ChangeInWorkingCapital,
			AccountsReceivables:                    statement.AccountsReceivables,
			Inventory:                              statement.Inventory,
			AccountsPayables:                       statement.AccountsPayables,
			OtherWorkingCapital:                    statement.OtherWorkingCapital,
			OtherNonCashItems:                      statement.OtherNonCashItems,
			NetCashProvidedByOperatingActivities:   statement.NetCashProvidedByOperatingActivities,
			InvestmentsInPropertyPlantAndEquipment: statement.InvestmentsInPropertyPlantAndEquipment,
			AcquisitionsNet:                        statement.AcquisitionsNet,
			PurchasesOfInvestments:                 statement.PurchasesOfInvestments,
			SalesMaturitiesOfInvestments:           statement.SalesMaturitiesOfInvestments,
			OtherInvestingActivities:               statement.OtherInvestingActivities,
			NetCashProvidedByInvestingActivities:   statement.NetCashProvidedByInvestingActivities,
			NetDebtIssuance:                        statement.NetDebtIssuance,
			LongTermNetDebtIssuance:                statement.LongTermNetDebtIssuance,
			ShortTermNetDebtIssuance:               statement.ShortTermNetDebtIssuance,
			NetStockIssuance:                       statement.NetStockIssuance,
			NetCommonStockIssuance:                 statement.NetCommonStockIssuance,
			CommonStockIssuance:                    statement.CommonStockIssuance,
			CommonStockRepurchased:                 statement.CommonStockRepurchased,
			NetPreferredStockIssuance:              statement.NetPreferredStockIssuance,
			NetDividendsPaid:                       statement.NetDividendsPaid,
			CommonDividendsPaid:                    statement.CommonDividendsPaid,
			PreferredDividendsPaid:                 statement.PreferredDividendsPaid,
			OtherFinancingActivities:               statement.OtherFinancingActivities,
			NetCashProvidedByFinancingActivities:   statement.NetCashProvidedByFinancingActivities,
			EffectOfForexChangesOnCash:             statement.EffectOfForexChangesOnCash,
			NetChangeInCash:                        statement.NetChangeInCash,
			CashAtEndOfPeriod:                      statement.CashAtEndOfPeriod,
			CashAtBeginningOfPeriod:                statement.CashAtBeginningOfPeriod,
			OperatingCashFlow:                      statement.OperatingCashFlow,
			CapitalExpenditure:                     statement.CapitalExpenditure,
			FreeCashFlow:                           statement.FreeCashFlow,
			IncomeTaxesPaid:                        statement.IncomeTaxesPaid,
			InterestPaid:                           statement.InterestPaid,
		},
	}, nil
}
