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

func TestSyncBalanceSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncmocks.NewMockStatementSyncer(ctrl)
	service.EXPECT().
		SyncBalanceSheets(gomock.Any(), "AAPL", "quarter", 5).
		Return([]*domain.BalanceSheet{
			{
				StatementHeader: domain.StatementHeader{
					CompanyID:  "abc123",
					Symbol:     "AAPL",
					Date:       time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC),
					FiscalYear: 2024,
					Period:     "Q4",
				},
			},
		}, nil)

	w := serveRoutes(StatementSync(service), http.MethodGet, "/internal/balance-sheets/AAPL/sync?period=quarter&limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var statements []*domain.BalanceSheet
	require.NoError(t, json.NewDecoder(w.Body).Decode(&statements))
	require.Len(t, statements, 1)
	assert.Equal(t, "AAPL", statements[0].Symbol)
	assert.Equal(t, 2024, statements[0].FiscalYear)
}

func TestSyncStatementsEmptyResultIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncmocks.NewMockStatementSyncer(ctrl)
	service.EXPECT().
		SyncIncomeStatements(gomock.Any(), "ZZZZ", "", 0).
		Return(nil, nil)

	w := serveRoutes(StatementSync(service), http.MethodGet, "/internal/income-statements/ZZZZ/sync")

	assert.Equal(t, http.StatusNotFound, w.Code)

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, apiErrors.ErrDataNotFound, apiErr.Code)
	assert.Contains(t, apiErr.Message, "ZZZZ")
}

func TestSyncStatementsInvalidPeriodIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncmocks.NewMockStatementSyncer(ctrl)
	service.EXPECT().
		SyncCashFlowStatements(gomock.Any(), "AAPL", "monthly", 0).
		Return(nil, syncing.ErrInvalidPeriod)

	w := serveRoutes(StatementSync(service), http.MethodGet, "/internal/cash-flow-statements/AAPL/sync?period=monthly")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeAPIError(t, w).Code)
}

func TestSyncStatementsInvalidLimitIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The service must not be reached when the limit fails parsing.
	service := syncmocks.NewMockStatementSyncer(ctrl)

	w := serveRoutes(StatementSync(service), http.MethodGet, "/internal/balance-sheets/AAPL/sync?limit=ten")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apiErrors.ErrInvalidLimit, decodeAPIError(t, w).Code)
}
