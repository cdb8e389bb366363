package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stockmate/stockmate-api/infrastructure/repository/mocks"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	syncmocks "github.com/stockmate/stockmate-api/internal/usecases/syncing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(
	companyRepo *mocks.MockCompanyRepository,
	fullSyncer *syncmocks.MockFullSyncer,
	cfg CompanySyncConfig,
) *CompanySyncService {
	return &CompanySyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		companyRepo: companyRepo,
		fullSyncer:  fullSyncer,
		config:      cfg,
	}
}

func TestNewCompanySyncService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		CompanySync: config.CompanySync{
			CronSchedule:        "0 3 * * *",
			RequestDelaySeconds: 2,
			MaxConcurrentJobs:   0,
			Enabled:             true,
			FinancialLimit:      40,
			MetricsLimit:        40,
			Period:              "annual",
		},
	}

	service := NewCompanySyncService(
		mocks.NewMockCompanyRepository(ctrl),
		syncmocks.NewMockFullSyncer(ctrl),
		cfg,
	)

	assert.Equal(t, "0 3 * * *", service.config.CronSchedule)
	assert.True(t, service.config.SyncEnabled)
	assert.Equal(t, 2*time.Second, service.config.StepDelay)
	assert.Equal(t, "annual", service.config.Period)
	// A zero worker count would block the semaphore forever, so it is raised to one.
	assert.Equal(t, 1, service.config.MaxConcurrentJobs)
}

func TestCompanySyncService_SyncAllCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	fullSyncer := syncmocks.NewMockFullSyncer(ctrl)

	service := newTestSyncService(companyRepo, fullSyncer, CompanySyncConfig{
		SyncEnabled:       true,
		MaxConcurrentJobs: 2,
		StepDelay:         time.Second,
		FinancialLimit:    40,
		MetricsLimit:      40,
		Period:            "annual",
	})

	companyRepo.EXPECT().ListActive().Return([]*domain.Company{
		{ID: "abc123", Symbol: "AAPL"},
		{ID: "def456", Symbol: "MSFT"},
		{ID: "ghi789", Symbol: "NVDA"},
	}, nil)

	opts := syncing.FullSyncOptions{
		Period:         "annual",
		FinancialLimit: 40,
		MetricsLimit:   40,
		StepDelay:      time.Second,
	}

	fullSyncer.EXPECT().SyncAll(gomock.Any(), "AAPL", opts).
		Return(&domain.SyncReport{Symbol: "AAPL", Status: domain.SyncCompleted, TotalAPICalls: 9}, nil)
	fullSyncer.EXPECT().SyncAll(gomock.Any(), "MSFT", opts).
		Return(&domain.SyncReport{Symbol: "MSFT", Status: domain.SyncCompletedWithErrors, TotalAPICalls: 9}, nil)
	fullSyncer.EXPECT().SyncAll(gomock.Any(), "NVDA", opts).
		Return(nil, assert.AnError)

	err := service.SyncAllCompanies(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.False(t, status["sync_running"].(bool))
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestCompanySyncService_OnlyOneCycleRunsAtATime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	fullSyncer := syncmocks.NewMockFullSyncer(ctrl)
	service := newTestSyncService(companyRepo, fullSyncer, CompanySyncConfig{MaxConcurrentJobs: 1})

	started := make(chan struct{})
	release := make(chan struct{})

	companyRepo.EXPECT().ListActive().Return([]*domain.Company{{ID: "abc123", Symbol: "AAPL"}}, nil)
	fullSyncer.EXPECT().SyncAll(gomock.Any(), "AAPL", gomock.Any()).
		DoAndReturn(func(context.Context, string, syncing.FullSyncOptions) (*domain.SyncReport, error) {
			close(started)
			<-release
			return &domain.SyncReport{Symbol: "AAPL", Status: domain.SyncCompleted}, nil
		})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- service.SyncAllCompanies(context.Background())
	}()

	<-started

	err := service.SyncAllCompanies(context.Background())
	require.ErrorIs(t, err, ErrSyncAlreadyRunning)

	status := service.GetStatus()
	assert.True(t, status["sync_running"].(bool))

	close(release)
	require.NoError(t, <-firstDone)

	status = service.GetStatus()
	assert.False(t, status["sync_running"].(bool))
}

func TestCompanySyncService_ListActiveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	fullSyncer := syncmocks.NewMockFullSyncer(ctrl)
	service := newTestSyncService(companyRepo, fullSyncer, CompanySyncConfig{MaxConcurrentJobs: 1})

	companyRepo.EXPECT().ListActive().Return(nil, assert.AnError)

	err := service.SyncAllCompanies(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing active companies")

	// The failed cycle must release the running flag for the next one.
	companyRepo.EXPECT().ListActive().Return([]*domain.Company{}, nil)
	require.NoError(t, service.SyncAllCompanies(context.Background()))
}

func TestCompanySyncService_NoActiveCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	fullSyncer := syncmocks.NewMockFullSyncer(ctrl)
	service := newTestSyncService(companyRepo, fullSyncer, CompanySyncConfig{MaxConcurrentJobs: 1})

	companyRepo.EXPECT().ListActive().Return([]*domain.Company{}, nil)

	require.NoError(t, service.SyncAllCompanies(context.Background()))
}

func TestCompanySyncService_CancelledContextStopsDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	fullSyncer := syncmocks.NewMockFullSyncer(ctrl)
	service := newTestSyncService(companyRepo, fullSyncer, CompanySyncConfig{MaxConcurrentJobs: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	companyRepo.EXPECT().ListActive().Return([]*domain.Company{
		{ID: "abc123", Symbol: "AAPL"},
		{ID: "def456", Symbol: "MSFT"},
	}, nil)

	// No SyncAll expectations: the dispatch loop bails out before starting any job.
	require.NoError(t, service.SyncAllCompanies(ctx))
}

func TestCompanySyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	fullSyncer := syncmocks.NewMockFullSyncer(ctrl)
	service := newTestSyncService(companyRepo, fullSyncer, CompanySyncConfig{MaxConcurrentJobs: 1})

	started := make(chan struct{})
	release := make(chan struct{})

	companyRepo.EXPECT().ListActive().Return([]*domain.Company{{ID: "abc123", Symbol: "AAPL"}}, nil)
	fullSyncer.EXPECT().SyncAll(gomock.Any(), "AAPL", gomock.Any()).
		DoAndReturn(func(context.Context, string, syncing.FullSyncOptions) (*domain.SyncReport, error) {
			close(started)
			<-release
			return &domain.SyncReport{Symbol: "AAPL", Status: domain.SyncCompleted}, nil
		})

	require.NoError(t, service.TriggerManualSync())

	<-started
	require.ErrorIs(t, service.TriggerManualSync(), ErrSyncAlreadyRunning)

	close(release)

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCompanySyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(
		mocks.NewMockCompanyRepository(ctrl),
		syncmocks.NewMockFullSyncer(ctrl),
		CompanySyncConfig{SyncEnabled: false},
	)

	require.NoError(t, service.Start(context.Background()))
	assert.Empty(t, service.scheduler.Jobs())
}

func TestCompanySyncService_StartSchedulesCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(
		mocks.NewMockCompanyRepository(ctrl),
		syncmocks.NewMockFullSyncer(ctrl),
		CompanySyncConfig{SyncEnabled: true, CronSchedule: "0 3 * * *", MaxConcurrentJobs: 1},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Len(t, service.scheduler.Jobs(), 1)
}

func TestCompanySyncService_StartRejectsInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(
		mocks.NewMockCompanyRepository(ctrl),
		syncmocks.NewMockFullSyncer(ctrl),
		CompanySyncConfig{SyncEnabled: true, CronSchedule: "not a cron", MaxConcurrentJobs: 1},
	)

	err := service.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduling company sync")
}

func TestCompanySyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(
		mocks.NewMockCompanyRepository(ctrl),
		syncmocks.NewMockFullSyncer(ctrl),
		CompanySyncConfig{
			SyncEnabled:       true,
			CronSchedule:      "0 3 * * *",
			MaxConcurrentJobs: 3,
		},
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 3, status["max_concurrent_jobs"])
	assert.True(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
