package handler

import (
	"fmt"
	"net/http"

	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// SyncCompanyProfile pulls the company profile from the market data API and
// upserts the local company row.
func SyncCompanyProfile(service syncing.CompanySyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		symbol, ok := symbolParam(w, r)
		if !ok {
			return
		}

		logger.WithField("symbol", symbol).Info("company: syncing profile")

		company, err := service.SyncProfile(r.Context(), symbol)
		if err != nil {
			writeSyncError(w, logger, err)
			return
		}
		if company == nil {
			apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, fmt.Sprintf("Company not found for symbol: %s", symbol), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logger.WithError(err).Error("company: failed to encode response")
		}
	})
}
