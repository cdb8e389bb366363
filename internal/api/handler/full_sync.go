package handler

import (
	"net/http"

	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// FullCompanySync runs every dataset sync for one company in sequence and
// returns the per step report. Step failures are reported, not fatal; the
// response is an error only when every step failed.
func FullCompanySync(service syncing.FullSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}
		financialLimit, ok := limitParam(w, r, "financial_limit")
		if !ok {
			return
		}
		metricsLimit, ok := limitParam(w, r, "metrics_limit")
		if !ok {
			return
		}
		stepDelay, ok := sleepTimeParam(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"symbol":          symbol,
			"financial_limit": financialLimit,
			"metrics_limit":   metricsLimit,
			"step_delay":      stepDelay.String(),
		}).Info("full sync: starting")

		report, err := service.SyncAll(r.Context(), symbol, syncing.FullSyncOptions{
			Period:         r.URL.Query().Get("period"),
			FinancialLimit: financialLimit,
			MetricsLimit:   metricsLimit,
			StepDelay:      stepDelay,
		})
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}

		if report.Status == domain.SyncFailed {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to sync company data", report)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("full sync: failed to encode response")
		}
	})
}
