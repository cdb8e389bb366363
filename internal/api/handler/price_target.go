package handler

import (
	"fmt"
	"net/http"

	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// SyncPriceTargets pulls the analyst price target consensus from the market
// data API and upserts it for a registered company.
func SyncPriceTargets(service syncing.PriceTargetSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}

		logger.WithField("symbol", symbol).Info("price targets: syncing consensus")

		target, err := service.SyncPriceTargets(r.Context(), symbol)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Price targets not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logger.WithError(err).Error("price targets: failed to encode response")
		}
	})
}

// SyncPriceTargetSummary pulls the per window price target summary from the
// market data API and upserts it for a registered company.
func SyncPriceTargetSummary(service syncing.PriceTargetSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}

		logger.WithField("symbol", symbol).Info("price targets: syncing summary")

		summary, err := service.SyncPriceTargetSummary(r.Context(), symbol)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if summary == nil {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Price target summary not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("price targets: failed to encode response")
		}
	})
}
