package syncing

import (
	"context"
	"time"

	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/pkg/log"
	"github.com/stockmate/stockmate-api/pkg/utils"
)

// FullSyncOptions tune a full company sync. Zero values fall back to the
// dataset defaults.
type FullSyncOptions struct {
	Period         string
	FinancialLimit int
	MetricsLimit   int
	StepDelay      time.Duration
}

// FullSyncer runs every dataset sync for one company in dependency order
// and reports per-step outcomes. A failing step never aborts the rest; the
// report carries the errors instead.
type FullSyncer interface {
	SyncAll(ctx context.Context, symbol string, opts FullSyncOptions) (*domain.SyncReport, error)
}

type fullSyncer struct {
	companySyncer     CompanySyncer
	statementSyncer   StatementSyncer
	metricsSyncer     MetricsSyncer
	priceTargetSyncer PriceTargetSyncer
	healthSyncer      HealthSyncer
}

func NewFullSyncer(
	companySyncer CompanySyncer,
	statementSyncer StatementSyncer,
	metricsSyncer MetricsSyncer,
	priceTargetSyncer PriceTargetSyncer,
	healthSyncer HealthSyncer,
) FullSyncer {
	return &fullSyncer{
		companySyncer:     companySyncer,
		statementSyncer:   statementSyncer,
		metricsSyncer:     metricsSyncer,
		priceTargetSyncer: priceTargetSyncer,
		healthSyncer:      healthSyncer,
	}
}

// syncStep is one unit of a full sync. Remote steps call the FMP API and
// count toward the report's API call total.
type syncStep struct {
	name   string
	remote bool
	run    func() (int, error)
}

func (s *fullSyncer) SyncAll(ctx context.Context, symbol string, opts FullSyncOptions) (*domain.SyncReport, error) {
	period, err := normalizePeriod(opts.Period)
	if err != nil {
		return nil, err
	}
	financialLimit := normalizeLimit(opts.FinancialLimit, DefaultStatementLimit)
	metricsLimit := normalizeLimit(opts.MetricsLimit, DefaultMetricsLimit)

	// The profile step must come first because it registers the company;
	// the health step must come last because it reads what the metrics and
	// ratio steps wrote.
	steps := []syncStep{
		{name: "company_profile", remote: true, run: func() (int, error) {
			company, err := s.companySyncer.SyncProfile(ctx, symbol)
			if err != nil || company == nil {
				return 0, err
			}
			return 1, nil
		}},
		{name: "balance_sheets", remote: true, run: func() (int, error) {
			records, err := s.statementSyncer.SyncBalanceSheets(ctx, symbol, period, financialLimit)
			return len(records), err
		}},
		{name: "income_statements", remote: true, run: func() (int, error) {
			records, err := s.statementSyncer.SyncIncomeStatements(ctx, symbol, period, financialLimit)
			return len(records), err
		}},
		{name: "cash_flow_statements", remote: true, run: func() (int, error) {
			records, err := s.statementSyncer.SyncCashFlowStatements(ctx, symbol, period, financialLimit)
			return len(records), err
		}},
		{name: "key_metrics", remote: true, run: func() (int, error) {
			records, err := s.metricsSyncer.SyncKeyMetrics(ctx, symbol, period, metricsLimit)
			return len(records), err
		}},
		{name: "financial_ratios", remote: true, run: func() (int, error) {
			records, err := s.metricsSyncer.SyncFinancialRatios(ctx, symbol, period, metricsLimit)
			return len(records), err
		}},
		{name: "financial_scores", remote: true, run: func() (int, error) {
			scores, err := s.metricsSyncer.SyncFinancialScores(ctx, symbol)
			if err != nil || scores == nil {
				return 0, err
			}
			return 1, nil
		}},
		{name: "price_targets", remote: true, run: func() (int, error) {
			target, err := s.priceTargetSyncer.SyncPriceTargets(ctx, symbol)
			if err != nil || target == nil {
				return 0, err
			}
			return 1, nil
		}},
		{name: "price_target_summary", remote: true, run: func() (int, error) {
			summary, err := s.priceTargetSyncer.SyncPriceTargetSummary(ctx, symbol)
			if err != nil || summary == nil {
				return 0, err
			}
			return 1, nil
		}},
		{name: "financial_health", remote: false, run: func() (int, error) {
			records, err := s.healthSyncer.SyncFinancialHealth(ctx, symbol)
			return len(records), err
		}},
	}

	report := &domain.SyncReport{
		Symbol:    symbol,
		StartedAt: time.Now(),
		Steps:     make([]domain.SyncStepResult, 0, len(steps)),
	}

	var failed, skipped int
	for i, step := range steps {
		if i > 0 && opts.StepDelay > 0 && ctx.Err() == nil {
			select {
			case <-ctx.Done():
			case <-time.After(opts.StepDelay):
			}
		}

		if ctx.Err() != nil {
			skipped++
			report.Steps = append(report.Steps, domain.SyncStepResult{
				Step:   step.name,
				Status: domain.SyncStepSkipped,
				Error:  ctx.Err().Error(),
			})
			continue
		}

		records, err := step.run()
		if step.remote {
			report.TotalAPICalls++
		}

		result := domain.SyncStepResult{
			Step:    step.name,
			Status:  domain.SyncStepOK,
			Records: records,
		}
		if err != nil {
			failed++
			result.Status = domain.SyncStepFailed
			result.Error = err.Error()

			log.ForContext(ctx).WithFields(log.Fields{
				"symbol": symbol,
				"step":   step.name,
			}).WithError(err).Warn("Sync step failed")
		}

		report.Steps = append(report.Steps, result)
	}

	report.FinishedAt = time.Now()
	report.DurationSeconds = utils.RoundWithTwoDecimalPlace(report.FinishedAt.Sub(report.StartedAt).Seconds())

	switch {
	case failed+skipped == 0:
		report.Status = domain.SyncCompleted
	case failed+skipped == len(steps):
		report.Status = domain.SyncFailed
	default:
		report.Status = domain.SyncCompletedWithErrors
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":    symbol,
		"status":    report.Status,
		"api_calls": report.TotalAPICalls,
		"duration":  report.DurationSeconds,
	}).Info("Full company sync finished")

	return report, nil
}
