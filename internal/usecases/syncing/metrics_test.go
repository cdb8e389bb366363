package syncing

import (
	"context"
	"testing"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	fmpmocks "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/mocks"
	"github.com/stockmate/stockmate-api/infrastructure/repository/mocks"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestMetricsSyncer_SyncKeyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
	mockHealthRepo := mocks.NewMockFinancialHealthRepository(ctrl)

	service := NewMetricsSyncer(mockClient, mockCompanyRepo, mockMetricsRepo, mockHealthRepo)

	wire := fmpdomain.KeyMetrics{
		MetricsHeader: fmpdomain.MetricsHeader{
			Symbol:     "AAPL",
			Date:       "2024-09-28",
			FiscalYear: "2024",
			Period:     "FY",
		},
		CurrentRatio:                    float64Ptr(0.87),
		ReturnOnEquity:                  float64Ptr(1.64),
		ResearchAndDevelopmentToRevenue: float64Ptr(0.08),
	}

	mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
	mockClient.EXPECT().KeyMetrics("AAPL", "annual", 40).Return([]fmpdomain.KeyMetrics{wire}, nil)

	var batch []*domain.KeyMetrics
	mockMetricsRepo.EXPECT().
		UpsertKeyMetrics(gomock.Any()).
		DoAndReturn(func(metrics []*domain.KeyMetrics) error {
			batch = metrics
			return nil
		})

	records, err := service.SyncKeyMetrics(context.Background(), "AAPL", "annual", 0)

	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, batch, 1)
	stored := batch[0]

	assert.Equal(t, "abc123", stored.CompanyID)
	assert.Equal(t, 2024, stored.FiscalYear)
	assert.Equal(t, 0.87, *stored.Data.CurrentRatio)
	assert.Equal(t, 0.08, *stored.Data.ResearchAndDevelopmentToRevenue)

	// The stored payload feeds health evaluation under snake_case keys.
	values := stored.Data.MetricMap()
	assert.Equal(t, 0.87, values["current_ratio"])
	assert.Equal(t, 0.08, values["research_and_development_to_revenue"])
}

func TestMetricsSyncer_SyncFinancialScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
	mockHealthRepo := mocks.NewMockFinancialHealthRepository(ctrl)

	service := NewMetricsSyncer(mockClient, mockCompanyRepo, mockMetricsRepo, mockHealthRepo)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, scores *domain.FinancialScores, err error)
	}{
		{
			name: "scores are mapped and stored",
			setup: func() {
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
				mockClient.EXPECT().FinancialScores("AAPL").Return(&fmpdomain.FinancialScores{
					Symbol:           "AAPL",
					ReportedCurrency: "USD",
					AltmanZScore:     float64Ptr(9.75),
					PiotroskiScore:   intPtr(7),
					TotalAssets:      int64Ptr(364980000000),
				}, nil)
				mockHealthRepo.EXPECT().UpsertScores(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, scores *domain.FinancialScores, err error) {
				require.NoError(t, err)
				require.NotNil(t, scores)
				assert.Equal(t, "abc123", scores.CompanyID)
				assert.Equal(t, 9.75, scores.AltmanZScore)
				assert.Equal(t, 7, scores.PiotroskiScore)
				assert.Equal(t, int64(364980000000), scores.TotalAssets)
			},
		},
		{
			name: "no scores returns nil",
			setup: func() {
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
				mockClient.EXPECT().FinancialScores("AAPL").Return(nil, nil)
			},
			validate: func(t *testing.T, scores *domain.FinancialScores, err error) {
				assert.NoError(t, err)
				assert.Nil(t, scores)
			},
		},
		{
			name: "unknown company returns nil without calling the API",
			setup: func() {
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(nil, nil)
			},
			validate: func(t *testing.T, scores *domain.FinancialScores, err error) {
				assert.NoError(t, err)
				assert.Nil(t, scores)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			scores, err := service.SyncFinancialScores(context.Background(), "AAPL")
			tt.validate(t, scores, err)
		})
	}
}

func TestMetricsSyncer_SyncFinancialRatios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
	mockHealthRepo := mocks.NewMockFinancialHealthRepository(ctrl)

	service := NewMetricsSyncer(mockClient, mockCompanyRepo, mockMetricsRepo, mockHealthRepo)

	wire := fmpdomain.FinancialRatios{
		MetricsHeader: fmpdomain.MetricsHeader{
			Symbol:     "AAPL",
			Date:       "2024-09-28",
			FiscalYear: "2024",
			Period:     "FY",
		},
		GrossProfitMargin:       float64Ptr(0.462),
		DividendYieldPercentage: float64Ptr(0.41),
		EBTPerEBIT:              float64Ptr(0.99),
	}

	mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
	mockClient.EXPECT().FinancialRatios("AAPL", "annual", 40).Return([]fmpdomain.FinancialRatios{wire}, nil)
	mockMetricsRepo.EXPECT().UpsertFinancialRatios(gomock.Any()).Return(nil)

	records, err := service.SyncFinancialRatios(context.Background(), "AAPL", "", 0)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.462, *records[0].Data.GrossProfitMargin)
	assert.Equal(t, 0.99, *records[0].Data.EBTPerEBIT)
}

func TestMetricsSyncer_FailedBatchReturnsNoRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
	mockHealthRepo := mocks.NewMockFinancialHealthRepository(ctrl)

	service := NewMetricsSyncer(mockClient, mockCompanyRepo, mockMetricsRepo, mockHealthRepo)

	mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
	mockClient.EXPECT().
		FinancialRatios("AAPL", "annual", 40).
		Return([]fmpdomain.FinancialRatios{
			{MetricsHeader: fmpdomain.MetricsHeader{Symbol: "AAPL", Date: "2024-09-28", FiscalYear: "2024", Period: "FY"}},
		}, nil)
	mockMetricsRepo.EXPECT().UpsertFinancialRatios(gomock.Any()).Return(assert.AnError)

	records, err := service.SyncFinancialRatios(context.Background(), "AAPL", "annual", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upserting financial ratios")
	assert.Nil(t, records)
}
