package syncing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	"github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/fmpclient"
	"github.com/stockmate/stockmate-api/infrastructure/repository"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// PriceTargetSyncer pulls the analyst price target consensus and the per
// window summary from FMP.
type PriceTargetSyncer interface {
	SyncPriceTargets(ctx context.Context, symbol string) (*domain.PriceTarget, error)
	SyncPriceTargetSummary(ctx context.Context, symbol string) (*domain.PriceTargetSummary, error)
}

type priceTargetSyncer struct {
	client          fmpclient.Client
	companyRepo     repository.CompanyRepository
	priceTargetRepo repository.PriceTargetRepository
}

func NewPriceTargetSyncer(
	client fmpclient.Client,
	companyRepo repository.CompanyRepository,
	priceTargetRepo repository.PriceTargetRepository,
) PriceTargetSyncer {
	return &priceTargetSyncer{
		client:          client,
		companyRepo:     companyRepo,
		priceTargetRepo: priceTargetRepo,
	}
}

func (s *priceTargetSyncer) SyncPriceTargets(ctx context.Context, symbol string) (*domain.PriceTarget, error) {
	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	consensus, err := s.client.PriceTargetConsensus(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "fetching price target consensus")
	}
	if consensus == nil {
		return nil, nil
	}

	record := &domain.PriceTarget{
		CompanyID:       company.ID,
		Symbol:          consensus.Symbol,
		TargetHigh:      consensus.TargetHigh,
		TargetLow:       consensus.TargetLow,
		TargetConsensus: consensus.TargetConsensus,
		TargetMedian:    consensus.TargetMedian,
	}

	if err := s.priceTargetRepo.UpsertPriceTarget(record); err != nil {
		return nil, errors.Wrap(err, "upserting price target")
	}

	log.ForContext(ctx).WithField("symbol", symbol).Info("Price target consensus synced")

	return record, nil
}

func (s *priceTargetSyncer) SyncPriceTargetSummary(ctx context.Context, symbol string) (*domain.PriceTargetSummary, error) {
	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	summary, err := s.client.PriceTargetSummary(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "fetching price target summary")
	}
	if summary == nil {
		return nil, nil
	}

	record := mapPriceTargetSummary(summary, company.ID)
	if err := s.priceTargetRepo.UpsertPriceTargetSummary(record); err != nil {
		return nil, errors.Wrap(err, "upserting price target summary")
	}

	log.ForContext(ctx).WithField("symbol", symbol).Info("Price target summary synced")

	return record, nil
}

func mapPriceTargetSummary(summary *fmpdomain.PriceTargetSummary, companyID string) *domain.PriceTargetSummary {
	record := &domain.PriceTargetSummary{
		CompanyID:  companyID,
		Symbol:     summary.Symbol,
		Publishers: strings.Join(summary.Publishers, ", "),
	}

	if summary.LastMonthCount != nil {
		record.LastMonthCount = *summary.LastMonthCount
	}
	if summary.LastMonthAvgPriceTarget != nil {
		record.LastMonthAveragePriceTarget = *summary.LastMonthAvgPriceTarget
	}
	if summary.LastQuarterCount != nil {
		record.LastQuarterCount = *summary.LastQuarterCount
	}
	if summary.LastQuarterAvgPriceTarget != nil {
		record.LastQuarterAveragePriceTarget = *summary.LastQuarterAvgPriceTarget
	}
	if summary.LastYearCount != nil {
		record.LastYearCount = *summary.LastYearCount
	}
	if summary.LastYearAvgPriceTarget != nil {
		record.LastYearAveragePriceTarget = *summary.LastYearAvgPriceTarget
	}
	if summary.AllTimeCount != nil {
		record.AllTimeCount = *summary.AllTimeCount
	}
	if summary.AllTimeAvgPriceTarget != nil {
		record.AllTimeAveragePriceTarget = *summary.AllTimeAvgPriceTarget
	}

	return record
}
