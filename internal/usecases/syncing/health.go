package syncing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stockmate/stockmate-api/infrastructure/repository"
	"github.com/stockmate/stockmate-api/internal/benchmark"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// HealthSyncer rebuilds a company's financial health report from the latest
// stored metrics and ratios. It reads from the local store, not the remote
// API, so metrics and ratios must be synced first.
type HealthSyncer interface {
	SyncFinancialHealth(ctx context.Context, symbol string) ([]*domain.FinancialHealthRecord, error)
}

type healthSyncer struct {
	companyRepo repository.CompanyRepository
	metricsRepo repository.MetricsRepository
	healthRepo  repository.FinancialHealthRepository
}

func NewHealthSyncer(
	companyRepo repository.CompanyRepository,
	metricsRepo repository.MetricsRepository,
	healthRepo repository.FinancialHealthRepository,
) HealthSyncer {
	return &healthSyncer{
		companyRepo: companyRepo,
		metricsRepo: metricsRepo,
		healthRepo:  healthRepo,
	}
}

func (s *healthSyncer) SyncFinancialHealth(ctx context.Context, symbol string) ([]*domain.FinancialHealthRecord, error) {
	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}
	if company == nil {
		return nil, nil
	}

	metrics, err := s.metricsRepo.GetLatestKeyMetrics(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading latest key metrics")
	}

	ratios, err := s.metricsRepo.GetLatestFinancialRatios(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading latest financial ratios")
	}

	if metrics == nil && ratios == nil {
		return nil, nil
	}

	// Ratios win on shared keys, so the merge order matters.
	values := make(map[string]float64)
	if metrics != nil && metrics.Data != nil {
		for key, value := range metrics.Data.MetricMap() {
			values[key] = value
		}
	}
	if ratios != nil && ratios.Data != nil {
		for key, value := range ratios.Data.MetricMap() {
			values[key] = value
		}
	}

	report := benchmark.BuildHealthRecords(values, benchmark.DefaultSections, benchmark.DefaultRules)

	records := make([]*domain.FinancialHealthRecord, 0, len(report))
	for _, entry := range report {
		records = append(records, &domain.FinancialHealthRecord{
			CompanyID: company.ID,
			Symbol:    symbol,
			Section:   entry.Section,
			Metric:    entry.Metric,
			Benchmark: entry.Benchmark,
			Value:     entry.Value,
			Status:    string(entry.Status),
			Insight:   entry.Insight,
		})
	}

	if err := s.healthRepo.UpsertHealthRecords(records); err != nil {
		return nil, errors.Wrap(err, "upserting health records")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":  symbol,
		"records": len(records),
	}).Info("Financial health synced")

	return records, nil
}
