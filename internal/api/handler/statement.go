package handler

import (
	"fmt"
	"net/http"

	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// SyncBalanceSheets pulls balance sheet statements from the market data API
// and upserts them for a registered company.
func SyncBalanceSheets(service syncing.StatementSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}
		limit, ok := limitParam(w, r, "limit")
		if !ok {
			return
		}
		period := r.URL.Query().Get("period")

		logger.WithFields(log.Fields{
			"symbol": symbol,
			"period": period,
			"limit":  limit,
		}).Info("statements: syncing balance sheets")

		statements, err := service.SyncBalanceSheets(r.Context(), symbol, period, limit)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if len(statements) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Balance sheets not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statements); err != nil {
			logger.WithError(err).Error("statements: failed to encode response")
		}
	})
}

// SyncIncomeStatements pulls income statements from the market data API and
// upserts them for a registered company.
func SyncIncomeStatements(service syncing.StatementSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}
		limit, ok := limitParam(w, r, "limit")
		if !ok {
			return
		}
		period := r.URL.Query().Get("period")

		logger.WithFields(log.Fields{
			"symbol": symbol,
			"period": period,
			"limit":  limit,
		}).Info("statements: syncing income statements")

		statements, err := service.SyncIncomeStatements(r.Context(), symbol, period, limit)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if len(statements) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Income statements not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statements); err != nil {
			logger.WithError(err).Error("statements: failed to encode response")
		}
	})
}

// SyncCashFlowStatements pulls cash flow statements from the market data API
// and upserts them for a registered company.
func SyncCashFlowStatements(service syncing.StatementSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}
		limit, ok := limitParam(w, r, "limit")
		if !ok {
			return
		}
		period := r.URL.Query().Get("period")

		logger.WithFields(log.Fields{
			"symbol": symbol,
			"period": period,
			"limit":  limit,
		}).Info("statements: syncing cash flow statements")

		statements, err := service.SyncCashFlowStatements(r.Context(), symbol, period, limit)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if len(statements) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Cash flow statements not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statements); err != nil {
			logger.WithError(err).Error("statements: failed to encode response")
		}
	})
}
