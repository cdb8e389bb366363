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

// MetricsSyncer pulls key metrics, financial ratios and the composite
// financial scores from FMP.
type MetricsSyncer interface {
	SyncKeyMetrics(ctx context.Context, symbol, period string, limit int) ([]*domain.KeyMetrics, error)
	SyncFinancialRatios(ctx context.Context, symbol, period string, limit int) ([]*domain.FinancialRatios, error)
	SyncFinancialScores(ctx context.Context, symbol string) (*domain.FinancialScores, error)
}

type metricsSyncer struct {
	client      fmpclient.Client
	companyRepo repository.CompanyRepository
	metricsRepo repository.MetricsRepository
	healthRepo  repository.FinancialHealthRepository
}

func NewMetricsSyncer(
	client fmpclient.Client,
	companyRepo repository.CompanyRepository,
	metricsRepo repository.MetricsRepository,
	healthRepo repository.FinancialHealthRepository,
) MetricsSyncer {
	return &metricsSyncer{
		client:      client,
		companyRepo: companyRepo,
		metricsRepo: metricsRepo,
		healthRepo:  healthRepo,
	}
}

func (s *metricsSyncer) SyncKeyMetrics(ctx context.Context, symbol, period string, limit int) ([]*domain.KeyMetrics, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit, DefaultMetricsLimit)

	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	metrics, err := s.client.KeyMetrics(symbol, period, limit)
	if err != nil {
		return nil, errors.Wrap(err, "fetching key metrics")
	}
	if len(metrics) == 0 {
		return nil, nil
	}

	records := make([]*domain.KeyMetrics, 0, len(metrics))
	for _, entry := range metrics {
		record, err := mapKeyMetrics(entry, company.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "mapping key metrics %s", entry.Date)
		}

		records = append(records, record)
	}

	if err := s.metricsRepo.UpsertKeyMetrics(records); err != nil {
		return nil, errors.Wrap(err, "upserting key metrics")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":  symbol,
		"period":  period,
		"records": len(records),
	}).Info("Key metrics synced")

	return records, nil
}

func (s *metricsSyncer) SyncFinancialRatios(ctx context.Context, symbol, period string, limit int) ([]*domain.FinancialRatios, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit, DefaultMetricsLimit)

	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	ratios, err := s.client.FinancialRatios(symbol, period, limit)
	if err != nil {
		return nil, errors.Wrap(err, "fetching financial ratios")
	}
	if len(ratios) == 0 {
		return nil, nil
	}

	records := make([]*domain.FinancialRatios, 0, len(ratios))
	for _, entry := range ratios {
		record, err := mapFinancialRatios(entry, company.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "mapping financial ratios %s", entry.Date)
		}

		records = append(records, record)
	}

	if err := s.metricsRepo.UpsertFinancialRatios(records); err != nil {
		return nil, errors.Wrap(err, "upserting financial ratios")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":  symbol,
		"period":  period,
		"records": len(records),
	}).Info("Financial ratios synced")

	return records, nil
}

func (s *metricsSyncer) SyncFinancialScores(ctx context.Context, symbol string) (*domain.FinancialScores, error) {
	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	scores, err := s.client.FinancialScores(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "fetching financial scores")
	}
	if scores == nil {
		return nil, nil
	}

	record := mapFinancialScores(scores, company.ID)
	if err := s.healthRepo.UpsertScores(record); err != nil {
		return nil, errors.Wrap(err, "upserting financial scores")
	}

	log.ForContext(ctx).WithField("symbol", symbol).Info("Financial scores synced")

	return record, nil
}

// mapMetricsHeader parses the string-typed wire header shared by key
// metrics and ratio rows.
func mapMetricsHeader(header fmpdomain.MetricsHeader, companyID string) (domain.MetricsHeader, error) {
	date, err := parseDate(dateLayout, header.Date)
	if err != nil {
		return domain.MetricsHeader{}, errors.Wrap(err, "parsing date")
	}

	fiscalYear, err := parseFiscalYear(header.FiscalYear)
	if err != nil {
		return domain.MetricsHeader{}, errors.Wrap(err, "parsing fiscal year")
	}

	return domain.MetricsHeader{
		CompanyID:        companyID,
		Symbol:           header.Symbol,
		Date:             date,
		FiscalYear:       fiscalYear,
		Period:           header.Period,
		ReportedCurrency: header.ReportedCurrency,
	}, nil
}

func mapKeyMetrics(metrics fmpdomain.KeyMetrics, companyID string) (*domain.KeyMetrics, error) {
	header, err := mapMetricsHeader(metrics.MetricsHeader, companyID)
	if err != nil {
		return nil, err
	}

	return &domain.KeyMetrics{
		MetricsHeader: header,
		Data: &domain.KeyMetricsData{
			MarketCap:                              metrics.MarketCap,
			EnterpriseValue:                        metrics.EnterpriseValue,
			EVToSales:                              metrics.EVToSales,
			EVToOperatingCashFlow:                  metrics.EVToOperatingCashFlow,
			EVToFreeCashFlow:                       metrics.EVToFreeCashFlow,
			EVToEBITDA:                             metrics.EVToEBITDA,
			NetDebtToEBITDA:                        metrics.NetDebtToEBITDA,
			CurrentRatio:                           metrics.CurrentRatio,
			IncomeQuality:                          metrics.IncomeQuality,
			GrahamNumber:                           metrics.GrahamNumber,
			GrahamNetNet:                           metrics.GrahamNetNet,
			TaxBurden:                              metrics.TaxBurden,
			InterestBurden:                         metrics.InterestBurden,
			WorkingCapital:                         metrics.WorkingCapital,
			InvestedCapital:                        metrics.InvestedCapital,
			ReturnOnAssets:                         metrics.ReturnOnAssets,
			OperatingReturnOnAssets:                metrics.OperatingReturnOnAssets,
			ReturnOnTangibleAssets:                 metrics.ReturnOnTangibleAssets,
			ReturnOnEquity:                         metrics.ReturnOnEquity,
			ReturnOnInvestedCapital:                metrics.ReturnOnInvestedCapital,
			ReturnOnCapitalEmployed:                metrics.ReturnOnCapitalEmployed,
			EarningsYield:                          metrics.EarningsYield,
			FreeCashFlowYield:                      metrics.FreeCashFlowYield,
			CapexToOperatingCashFlow:               metrics.CapexToOperatingCashFlow,
			CapexToDepreciation:                    metrics.CapexToDepreciation,
			CapexToRevenue:                         metrics.CapexToRevenue,
			SalesGeneralAndAdministrativeToRevenue: metrics.SalesGeneralAndAdministrativeToRevenue,
			ResearchAndDevelopmentToRevenue:        metrics.ResearchAndDevelopmentToRevenue,
			StockBasedCompensationToRevenue:        metrics.StockBasedCompensationToRevenue,
			IntangiblesToTotalAssets:               metrics.IntangiblesToTotalAssets,
			AverageReceivables:                     metrics.AverageReceivables,
			AveragePayables:                        metrics.AveragePayables,
			AverageInventory:                       metrics.AverageInventory,
			DaysOfSalesOutstanding:                 metrics.DaysOfSalesOutstanding,
			DaysOfPayablesOutstanding:              metrics.DaysOfPayablesOutstanding,
			DaysOfInventoryOutstanding:             metrics.DaysOfInventoryOutstanding,
			OperatingCycle:                         metrics.OperatingCycle,
			CashConversionCycle:                    metrics.CashConversionCycle,
			FreeCashFlowToEquity:                   metrics.FreeCashFlowToEquity,
			FreeCashFlowToFirm:                     metrics.FreeCashFlowToFirm,
			TangibleAssetValue:                     metrics.TangibleAssetValue,
			NetCurrentAssetValue:                   metrics.NetCurrentAssetValue,
		},
	}, nil
}

func mapFinancialRatios(ratios fmpdomain.FinancialRatios, companyID string) (*domain.FinancialRatios, error) {
	header, err := mapMetricsHeader(ratios.MetricsHeader, companyID)
	if err != nil {
		return nil, err
	}

	return &domain.FinancialRatios{
		MetricsHeader: header,
		Data: &domain.FinancialRatiosData{
			GrossProfitMargin:                       ratios.GrossProfitMargin,
			EBITMargin:                              ratios.EBITMargin,
			EBITDAMargin:                            ratios.EBITDAMargin,
			OperatingProfitMargin:                   ratios.OperatingProfitMargin,
			PretaxProfitMargin:                      ratios.PretaxProfitMargin,
			ContinuousOperationsProfitMargin:        ratios.ContinuousOperationsProfitMargin,
			NetProfitMargin:                         ratios.NetProfitMargin,
			BottomLineProfitMargin:                  ratios.BottomLineProfitMargin,
			ReceivablesTurnover:                     ratios.ReceivablesTurnover,
			PayablesTurnover:                        ratios.PayablesTurnover,
			InventoryTurnover:                       ratios.InventoryTurnover,
			FixedAssetTurnover:                      ratios.FixedAssetTurnover,
			AssetTurnover:                           ratios.AssetTurnover,
			CurrentRatio:                            ratios.CurrentRatio,
			QuickRatio:                              ratios.QuickRatio,
			SolvencyRatio:                           ratios.SolvencyRatio,
			CashRatio:                               ratios.CashRatio,
			PriceToEarningsRatio:                    ratios.PriceToEarningsRatio,
			PriceToEarningsGrowthRatio:              ratios.PriceToEarningsGrowthRatio,
			ForwardPriceToEarningsGrowthRatio:       ratios.ForwardPriceToEarningsGrowthRatio,
			PriceToBookRatio:                        ratios.PriceToBookRatio,
			PriceToSalesRatio:                       ratios.PriceToSalesRatio,
			PriceToFreeCashFlowRatio:                ratios.PriceToFreeCashFlowRatio,
			PriceToOperatingCashFlowRatio:           ratios.PriceToOperatingCashFlowRatio,
			DebtToAssetsRatio:                       ratios.DebtToAssetsRatio,
			DebtToEquityRatio:                       ratios.DebtToEquityRatio,
			DebtToCapitalRatio:                      ratios.DebtToCapitalRatio,
			LongTermDebtToCapitalRatio:              ratios.LongTermDebtToCapitalRatio,
			FinancialLeverageRatio:                  ratios.FinancialLeverageRatio,
			WorkingCapitalTurnoverRatio:             ratios.WorkingCapitalTurnoverRatio,
			OperatingCashFlowRatio:                  ratios.OperatingCashFlowRatio,
			OperatingCashFlowSalesRatio:             ratios.OperatingCashFlowSalesRatio,
			FreeCashFlowOperatingCashFlowRatio:      ratios.FreeCashFlowOperatingCashFlowRatio,
			DebtServiceCoverageRatio:                ratios.DebtServiceCoverageRatio,
			InterestCoverageRatio:                   ratios.InterestCoverageRatio,
			ShortTermOperatingCashFlowCoverageRatio: ratios.ShortTermOperatingCashFlowCoverageRatio,
			OperatingCashFlowCoverageRatio:          ratios.OperatingCashFlowCoverageRatio,
			CapitalExpenditureCoverageRatio:         ratios.CapitalExpenditureCoverageRatio,
			DividendPaidAndCapexCoverageRatio:       ratios.DividendPaidAndCapexCoverageRatio,
			DividendPayoutRatio:                     ratios.DividendPayoutRatio,
			DividendYield:                           ratios.DividendYield,
			DividendYieldPercentage:                 ratios.DividendYieldPercentage,
			RevenuePerShare:                         ratios.RevenuePerShare,
			NetIncomePerShare:                       ratios.NetIncomePerShare,
			InterestDebtPerShare:                    ratios.InterestDebtPerShare,
			CashPerShare:                            ratios.CashPerShare,
			BookValuePerShare:                       ratios.BookValuePerShare,
			TangibleBookValuePerShare:               ratios.TangibleBookValuePerShare,
			ShareholdersEquityPerShare:              ratios.ShareholdersEquityPerShare,
			OperatingCashFlowPerShare:               ratios.OperatingCashFlowPerShare,
			CapexPerShare:                           ratios.CapexPerShare,
			FreeCashFlowPerShare:                    ratios.FreeCashFlowPerShare,
			NetIncomePerEBT:                         ratios.NetIncomePerEBT,
			EBTPerEBIT:                              ratios.EBTPerEBIT,
			PriceToFairValue:                        ratios.PriceToFairValue,
			DebtToMarketCap:                         ratios.DebtToMarketCap,
			EffectiveTaxRate:                        ratios.EffectiveTaxRate,
			EnterpriseValueMultiple:                 ratios.EnterpriseValueMultiple,
		},
	}, nil
}

func mapFinancialScores(scores *fmpdomain.FinancialScores, companyID string) *domain.FinancialScores {
	record := &domain.FinancialScores{
		CompanyID:        companyID,
		Symbol:           scores.Symbol,
		ReportedCurrency: scores.ReportedCurrency,
	}

	if scores.AltmanZScore != nil {
		record.AltmanZScore = *scores.AltmanZScore
	}
	if scores.PiotroskiScore != nil {
		record.PiotroskiScore = *scores.PiotroskiScore
	}
	if scores.WorkingCapital != nil {
		record.WorkingCapital = *scores.WorkingCapital
	}
	if scores.TotalAssets != nil {
		record.TotalAssets = *scores.TotalAssets
	}
	if scores.TotalLiabilities != nil {
		record.TotalLiabilities = *scores.TotalLiabilities
	}
	if scores.RetainedEarnings != nil {
		record.RetainedEarnings = *scores.RetainedEarnings
	}
	if scores.EBIT != nil {
		record.EBIT = *scores.EBIT
	}
	if scores.MarketCap != nil {
		record.MarketCap = *scores.MarketCap
	}
	if scores.Revenue != nil {
		record.Revenue = *scores.Revenue
	}

	return record
}
