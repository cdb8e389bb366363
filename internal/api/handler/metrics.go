package handler

import (
	"fmt"
	"net/http"

	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// SyncKeyMetrics pulls key metrics from the market data API and upserts them
// for a registered company.
func SyncKeyMetrics(service syncing.MetricsSyncer) http.Handler {
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
		}).Info("metrics: syncing key metrics")

		metrics, err := service.SyncKeyMetrics(r.Context(), symbol, period, limit)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if len(metrics) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Key metrics not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
		}
	})
}

// SyncFinancialRatios pulls financial ratios from the market data API and
// upserts them for a registered company.
func SyncFinancialRatios(service syncing.MetricsSyncer) http.Handler {
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
		}).Info("metrics: syncing financial ratios")

		ratios, err := service.SyncFinancialRatios(r.Context(), symbol, period, limit)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if len(ratios) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Financial ratios not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ratios); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
		}
	})
}

// SyncFinancialScores pulls the financial scores snapshot from the market
// data API and upserts it for a registered company.
func SyncFinancialScores(service syncing.MetricsSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}

		logger.WithField("symbol", symbol).Info("metrics: syncing financial scores")

		scores, err := service.SyncFinancialScores(r.Context(), symbol)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if scores == nil {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Financial scores not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(scores); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
		}
	})
}
