package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	syncmocks "github.com/stockmate/stockmate-api/internal/usecases/syncing/mocks"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFullCompanySync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileService := syncmocks.NewMockCompanySyncer(ctrl)
	fullSyncService := syncmocks.NewMockFullSyncer(ctrl)

	fullSyncService.EXPECT().
		SyncAll(gomock.Any(), "AAPL", syncing.FullSyncOptions{
			Period:         "annual",
			FinancialLimit: 10,
			MetricsLimit:   20,
			StepDelay:      250 * time.Millisecond,
		}).
		Return(&domain.SyncReport{
			Symbol: "AAPL",
			Status: domain.SyncCompleted,
			Steps: []domain.SyncStepResult{
				{Step: "company_profile", Status: domain.SyncStepOK, Records: 1},
			},
			TotalAPICalls: 9,
		}, nil)

	w := serveRoutes(
		CompanySync(profileService, fullSyncService),
		http.MethodGet,
		"/internal/company/AAPL/full-sync?period=annual&financial_limit=10&metrics_limit=20&sleep_time=0.25",
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var report domain.SyncReport
	require.NoError(t, json.NewDecoder(w.Body).Decode(&report))
	assert.Equal(t, domain.SyncCompleted, report.Status)
	assert.Equal(t, 9, report.TotalAPICalls)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, "company_profile", report.Steps[0].Step)
}

func TestFullCompanySyncAllStepsFailedIs500(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileService := syncmocks.NewMockCompanySyncer(ctrl)
	fullSyncService := syncmocks.NewMockFullSyncer(ctrl)

	fullSyncService.EXPECT().
		SyncAll(gomock.Any(), "AAPL", gomock.Any()).
		Return(&domain.SyncReport{Symbol: "AAPL", Status: domain.SyncFailed}, nil)

	w := serveRoutes(
		CompanySync(profileService, fullSyncService),
		http.MethodGet,
		"/internal/company/AAPL/full-sync",
	)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, w).Code)
}

func TestFullCompanySyncRejectsBadSleepTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileService := syncmocks.NewMockCompanySyncer(ctrl)
	fullSyncService := syncmocks.NewMockFullSyncer(ctrl)

	w := serveRoutes(
		CompanySync(profileService, fullSyncService),
		http.MethodGet,
		"/internal/company/AAPL/full-sync?sleep_time=30",
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, w).Code)
}
