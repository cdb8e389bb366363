package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stockmate/stockmate-api/internal/domain"
	syncmocks "github.com/stockmate/stockmate-api/internal/usecases/syncing/mocks"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyncFinancialHealthRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncmocks.NewMockHealthSyncer(ctrl)
	service.EXPECT().
		SyncFinancialHealth(gomock.Any(), "AAPL").
		Return([]*domain.FinancialHealthRecord{
			{
				CompanyID: "abc123",
				Symbol:    "AAPL",
				Section:   "Profitability",
				Metric:    "Gross Profit Margin",
				Benchmark: "> 0.4",
				Value:     "0.46",
				Status:    "healthy",
			},
		}, nil)

	w := serveRoutes(HealthSync(service), http.MethodGet, "/internal/financial-health/AAPL/sync")

	assert.Equal(t, http.StatusOK, w.Code)

	var records []*domain.FinancialHealthRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "Gross Profit Margin", records[0].Metric)
	assert.Equal(t, "healthy", records[0].Status)
}

func TestSyncFinancialScoresRouteEmptyIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncmocks.NewMockMetricsSyncer(ctrl)
	service.EXPECT().SyncFinancialScores(gomock.Any(), "ZZZZ").Return(nil, nil)

	w := serveRoutes(MetricsSync(service), http.MethodGet, "/internal/financial-scores/ZZZZ/sync")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apiErrors.ErrDataNotFound, decodeAPIError(t, w).Code)
}

func TestSyncKeyMetricsRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncmocks.NewMockMetricsSyncer(ctrl)
	service.EXPECT().
		SyncKeyMetrics(gomock.Any(), "AAPL", "annual", 0).
		Return([]*domain.KeyMetrics{
			{
				MetricsHeader: domain.MetricsHeader{
					CompanyID:  "abc123",
					Symbol:     "AAPL",
					Date:       time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC),
					FiscalYear: 2024,
					Period:     "FY",
				},
			},
		}, nil)

	w := serveRoutes(MetricsSync(service), http.MethodGet, "/internal/key-metrics/AAPL/sync?period=annual")

	assert.Equal(t, http.StatusOK, w.Code)

	var metrics []*domain.KeyMetrics
	require.NoError(t, json.NewDecoder(w.Body).Decode(&metrics))
	require.Len(t, metrics, 1)
	assert.Equal(t, "FY", metrics[0].Period)
}

func TestSyncPriceTargetSummaryRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncmocks.NewMockPriceTargetSyncer(ctrl)
	service.EXPECT().
		SyncPriceTargetSummary(gomock.Any(), "AAPL").
		Return(&domain.PriceTargetSummary{
			CompanyID:  "abc123",
			Symbol:     "AAPL",
			Publishers: "TheFly, Benzinga",
		}, nil)

	w := serveRoutes(PriceTargetSync(service), http.MethodGet, "/internal/price-target-summary/AAPL/sync")

	assert.Equal(t, http.StatusOK, w.Code)

	var summary domain.PriceTargetSummary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.Equal(t, "TheFly, Benzinga", summary.Publishers)
}
