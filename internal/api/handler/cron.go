package handler

import (
	"errors"
	"net/http"

	"github.com/stockmate/stockmate-api/internal/scheduler"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

// CronJobTypeCompanySync is the only schedulable job type.
const CronJobTypeCompanySync = "company_sync"

// CronService is the scheduler surface the cron endpoints need.
type CronService interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// TriggerCronJob starts a scheduled job outside its cron window. The job
// runs in the background; the response only acknowledges the start.
func TriggerCronJob(service CronService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := r.URL.Query().Get("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}
		if cronType != CronJobTypeCompanySync {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: company_sync", nil)
			return
		}

		if err := service.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Company sync already running", nil)
				return
			}

			logger.WithError(err).Error("cron: failed to trigger job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to trigger cron job", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: job triggered manually")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}); err != nil {
			logger.WithError(err).Error("cron: failed to encode response")
		}
	})
}

// GetCronStatus reports the state of every scheduled job.
func GetCronStatus(service CronService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"company_sync": service.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("cron: failed to encode response")
		}
	})
}
