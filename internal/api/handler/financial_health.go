package handler

import (
	"fmt"
	"net/http"

	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// SyncFinancialHealth evaluates the latest stored metrics and ratios against
// the benchmark tables and upserts the resulting health records. It reads
// the local store only, so the metrics and ratios syncs must run first.
func SyncFinancialHealth(service syncing.HealthSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}

		logger.WithField("symbol", symbol).Info("health: evaluating financial health")

		records, err := service.SyncFinancialHealth(r.Context(), symbol)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if len(records) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, fmt.Sprintf("Financial health data not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("health: failed to encode response")
		}
	})
}
