package syncing

import (
	"context"
	"testing"
	"time"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	fmpmocks "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/mocks"
	"github.com/stockmate/stockmate-api/infrastructure/repository/mocks"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatementSyncer_SyncBalanceSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockStatementRepo := mocks.NewMockFinancialStatementRepository(ctrl)

	service := NewStatementSyncer(mockClient, mockCompanyRepo, mockStatementRepo)

	company := &domain.Company{ID: "abc123", Symbol: "AAPL"}

	wire := fmpdomain.BalanceSheetStatement{
		StatementHeader: fmpdomain.StatementHeader{
			Symbol:           "AAPL",
			Date:             "2024-09-28",
			ReportedCurrency: "USD",
			CIK:              "0000320193",
			FilingDate:       "2024-11-01",
			AcceptedDate:     "2024-11-01 06:01:36",
			FiscalYear:       "2024",
			Period:           "FY",
		},
		CashAndCashEquivalents: int64Ptr(29943000000),
		TotalAssets:            int64Ptr(364980000000),
		TotalLiabilities:       int64Ptr(308030000000),
	}

	tests := []struct {
		name     string
		period   string
		setup    func()
		validate func(t *testing.T, records []*domain.BalanceSheet, err error)
	}{
		{
			name:   "wire dates and fiscal year are parsed into the stored header",
			period: "annual",
			setup: func() {
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(company, nil)
				mockClient.EXPECT().
					BalanceSheetStatements("AAPL", "annual", 40).
					Return([]fmpdomain.BalanceSheetStatement{wire}, nil)
				mockStatementRepo.EXPECT().UpsertBalanceSheets(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, records []*domain.BalanceSheet, err error) {
				require.NoError(t, err)
				require.Len(t, records, 1)

				record := records[0]
				assert.Equal(t, "abc123", record.CompanyID)
				assert.Equal(t, "AAPL", record.Symbol)
				assert.Equal(t, time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC), record.Date)
				assert.Equal(t, time.Date(2024, 11, 1, 6, 1, 36, 0, time.UTC), record.AcceptedDate)
				assert.Equal(t, 2024, record.FiscalYear)
				assert.Equal(t, "FY", record.Period)

				require.NotNil(t, record.Data)
				assert.Equal(t, int64(29943000000), *record.Data.CashAndCashEquivalents)
				assert.Equal(t, int64(364980000000), *record.Data.TotalAssets)
				assert.Nil(t, record.Data.Goodwill)
			},
		},
		{
			name:   "unknown company returns nil without calling the API",
			period: "annual",
			setup: func() {
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(nil, nil)
			},
			validate: func(t *testing.T, records []*domain.BalanceSheet, err error) {
				assert.NoError(t, err)
				assert.Nil(t, records)
			},
		},
		{
			name:   "empty API response returns nil",
			period: "quarter",
			setup: func() {
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(company, nil)
				mockClient.EXPECT().
					BalanceSheetStatements("AAPL", "quarter", 40).
					Return(nil, nil)
			},
			validate: func(t *testing.T, records []*domain.BalanceSheet, err error) {
				assert.NoError(t, err)
				assert.Nil(t, records)
			},
		},
		{
			name:   "unparsable statement date fails the call",
			period: "annual",
			setup: func() {
				broken := wire
				broken.Date = "next tuesday"

				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(company, nil)
				mockClient.EXPECT().
					BalanceSheetStatements("AAPL", "annual", 40).
					Return([]fmpdomain.BalanceSheetStatement{broken}, nil)
			},
			validate: func(t *testing.T, records []*domain.BalanceSheet, err error) {
				assert.Error(t, err)
				assert.Nil(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			records, err := service.SyncBalanceSheets(context.Background(), "AAPL", tt.period, 0)
			tt.validate(t, records, err)
		})
	}
}

func TestStatementSyncer_RejectsInvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewStatementSyncer(
		fmpmocks.NewMockClient(ctrl),
		mocks.NewMockCompanyRepository(ctrl),
		mocks.NewMockFinancialStatementRepository(ctrl),
	)

	records, err := service.SyncBalanceSheets(context.Background(), "AAPL", "monthly", 10)

	assert.Nil(t, records)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestStatementSyncer_SyncIncomeStatements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockStatementRepo := mocks.NewMockFinancialStatementRepository(ctrl)

	service := NewStatementSyncer(mockClient, mockCompanyRepo, mockStatementRepo)

	eps := 6.11
	wire := fmpdomain.IncomeStatement{
		StatementHeader: fmpdomain.StatementHeader{
			Symbol:     "AAPL",
			Date:       "2024-09-28",
			FiscalYear: "2024",
			Period:     "FY",
		},
		Revenue:     int64Ptr(391035000000),
		GrossProfit: int64Ptr(180683000000),
		NetIncome:   int64Ptr(93736000000),
		EPS:         &eps,
	}

	mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
	mockClient.EXPECT().
		IncomeStatements("AAPL", "annual", 5).
		Return([]fmpdomain.IncomeStatement{wire}, nil)
	mockStatementRepo.EXPECT().UpsertIncomeStatements(gomock.Any()).Return(nil)

	records, err := service.SyncIncomeStatements(context.Background(), "AAPL", "", 5)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(391035000000), *records[0].Data.Revenue)
	assert.Equal(t, 6.11, *records[0].Data.EPS)
}

func TestStatementSyncer_LimitIsClamped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockStatementRepo := mocks.NewMockFinancialStatementRepository(ctrl)

	service := NewStatementSyncer(mockClient, mockCompanyRepo, mockStatementRepo)

	mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
	mockClient.EXPECT().
		CashFlowStatements("AAPL", "annual", MaxLimit).
		Return(nil, nil)

	_, err := service.SyncCashFlowStatements(context.Background(), "AAPL", "annual", 500)

	assert.NoError(t, err)
}

func TestStatementSyncer_SeriesIsStoredAsOneBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockStatementRepo := mocks.NewMockFinancialStatementRepository(ctrl)

	service := NewStatementSyncer(mockClient, mockCompanyRepo, mockStatementRepo)

	series := []fmpdomain.BalanceSheetStatement{
		{StatementHeader: fmpdomain.StatementHeader{Symbol: "AAPL", Date: "2024-09-28", FiscalYear: "2024", Period: "FY"}},
		{StatementHeader: fmpdomain.StatementHeader{Symbol: "AAPL", Date: "2023-09-30", FiscalYear: "2023", Period: "FY"}},
		{StatementHeader: fmpdomain.StatementHeader{Symbol: "AAPL", Date: "2022-09-24", FiscalYear: "2022", Period: "FY"}},
	}

	mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
	mockClient.EXPECT().
		BalanceSheetStatements("AAPL", "annual", 40).
		Return(series, nil)

	var batch []*domain.BalanceSheet
	mockStatementRepo.EXPECT().
		UpsertBalanceSheets(gomock.Any()).
		DoAndReturn(func(statements []*domain.BalanceSheet) error {
			batch = statements
			return nil
		})

	records, err := service.SyncBalanceSheets(context.Background(), "AAPL", "annual", 0)

	require.NoError(t, err)
	// The whole fiscal series reaches the repository in a single call, so it
	// is committed or rolled back as one unit.
	require.Len(t, batch, 3)
	assert.Equal(t, records, batch)
	assert.Equal(t, 2024, batch[0].FiscalYear)
	assert.Equal(t, 2022, batch[2].FiscalYear)
}

func TestStatementSyncer_FailedBatchReturnsNoRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
	mockStatementRepo := mocks.NewMockFinancialStatementRepository(ctrl)

	service := NewStatementSyncer(mockClient, mockCompanyRepo, mockStatementRepo)

	mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{ID: "abc123"}, nil)
	mockClient.EXPECT().
		BalanceSheetStatements("AAPL", "annual", 40).
		Return([]fmpdomain.BalanceSheetStatement{
			{StatementHeader: fmpdomain.StatementHeader{Symbol: "AAPL", Date: "2024-09-28", FiscalYear: "2024", Period: "FY"}},
		}, nil)
	mockStatementRepo.EXPECT().UpsertBalanceSheets(gomock.Any()).Return(assert.AnError)

	records, err := service.SyncBalanceSheets(context.Background(), "AAPL", "annual", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upserting balance sheets")
	assert.Nil(t, records)
}
