// Package scheduler runs the recurring company data synchronization jobs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stockmate/stockmate-api/infrastructure/repository"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/utils"
)

// ErrSyncAlreadyRunning is returned when a sync cycle is requested while a
// previous one is still in flight.
var ErrSyncAlreadyRunning = errors.New("company sync already running")

type CompanySyncConfig struct {
	CronSchedule      string
	SyncEnabled       bool
	MaxConcurrentJobs int
	StepDelay         time.Duration
	FinancialLimit    int
	MetricsLimit      int
	Period            string
}

// CompanySyncService refreshes every active company on a cron schedule by
// running the full dataset sync per company.
type CompanySyncService struct {
	scheduler   *gocron.Scheduler
	companyRepo repository.CompanyRepository
	fullSyncer  syncing.FullSyncer
	config      CompanySyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCompanySyncService(
	companyRepo repository.CompanyRepository,
	fullSyncer syncing.FullSyncer,
	cfg *config.Config,
) *CompanySyncService {
	syncConfig := CompanySyncConfig{
		CronSchedule:      cfg.CompanySync.CronSchedule,
		SyncEnabled:       cfg.CompanySync.Enabled,
		MaxConcurrentJobs: cfg.CompanySync.MaxConcurrentJobs,
		StepDelay:         time.Duration(cfg.CompanySync.RequestDelaySeconds) * time.Second,
		FinancialLimit:    cfg.CompanySync.FinancialLimit,
		MetricsLimit:      cfg.CompanySync.MetricsLimit,
		Period:            cfg.CompanySync.Period,
	}
	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
	}).Info("Company sync scheduler configured")

	return &CompanySyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		companyRepo: companyRepo,
		fullSyncer:  fullSyncer,
		config:      syncConfig,
	}
}

func (s *CompanySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Company sync cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting company sync cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncAllCompanies(ctx); err != nil {
			logrus.WithError(err).Error("Scheduled company sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling company sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping company sync cron")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAllCompanies runs the full dataset sync for every active company,
// bounded by the configured worker count. Only one cycle runs at a time.
func (s *CompanySyncService) SyncAllCompanies(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Company sync already in progress, skipping this cycle")
		return ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	companies, err := s.companyRepo.ListActive()
	if err != nil {
		return fmt.Errorf("listing active companies: %w", err)
	}
	if len(companies) == 0 {
		logrus.Info("No active companies to sync")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"companies": len(companies),
		"workers":   s.config.MaxConcurrentJobs,
	}).Info("Company sync cycle starting")

	opts := syncing.FullSyncOptions{
		Period:         s.config.Period,
		FinancialLimit: s.config.FinancialLimit,
		MetricsLimit:   s.config.MetricsLimit,
		StepDelay:      s.config.StepDelay,
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
		partial   int
		failed    int
		apiCalls  int
	)

	sem := make(chan struct{}, s.config.MaxConcurrentJobs)
	for _, company := range companies {
		if ctx.Err() != nil {
			logrus.Warn("Company sync cycle interrupted")
			break
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(symbol string) {
			defer wg.Done()
			defer func() { <-sem }()

			report, err := s.fullSyncer.SyncAll(ctx, symbol, opts)
			if err != nil {
				logrus.WithField("symbol", symbol).WithError(err).Error("Company sync failed")

				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			logrus.WithField("symbol", symbol).Debugf("Sync report: %s", utils.PrettyJson(report))

			mu.Lock()
			apiCalls += report.TotalAPICalls
			switch report.Status {
			case domain.SyncCompleted:
				completed++
			case domain.SyncCompletedWithErrors:
				partial++
			default:
				failed++
			}
			mu.Unlock()
		}(company.Symbol)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"completed": completed,
		"partial":   partial,
		"failed":    failed,
		"api_calls": apiCalls,
	}).Info("Company sync cycle finished")

	return nil
}

// TriggerManualSync launches a sync cycle in the background. It reports
// ErrSyncAlreadyRunning instead of queueing a second cycle.
func (s *CompanySyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Starting manual company sync")
	go func() {
		if err := s.SyncAllCompanies(context.Background()); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Manual company sync failed")
		}
	}()

	return nil
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *CompanySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"max_concurrent_jobs":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
