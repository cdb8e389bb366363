package handler

import (
	"net/http"
	"testing"

	"github.com/stockmate/stockmate-api/internal/scheduler"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCronService struct {
	triggerErr error
	triggered  bool
	status     map[string]any
}

func (s *stubCronService) TriggerManualSync() error {
	s.triggered = true
	return s.triggerErr
}

func (s *stubCronService) GetStatus() map[string]any {
	return s.status
}

func TestTriggerCronJob(t *testing.T) {
	stub := &stubCronService{}

	w := serveRoutes(CronJobs(stub), http.MethodPost, "/internal/cron/trigger?type=company_sync")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.True(t, stub.triggered)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "company_sync", body["type"])
}

func TestTriggerCronJobMissingType(t *testing.T) {
	stub := &stubCronService{}

	w := serveRoutes(CronJobs(stub), http.MethodPost, "/internal/cron/trigger")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, w).Code)
	assert.False(t, stub.triggered)
}

func TestTriggerCronJobUnknownType(t *testing.T) {
	stub := &stubCronService{}

	w := serveRoutes(CronJobs(stub), http.MethodPost, "/internal/cron/trigger?type=meta")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, w).Code)
	assert.False(t, stub.triggered)
}

func TestTriggerCronJobAlreadyRunningIs409(t *testing.T) {
	stub := &stubCronService{triggerErr: scheduler.ErrSyncAlreadyRunning}

	w := serveRoutes(CronJobs(stub), http.MethodPost, "/internal/cron/trigger?type=company_sync")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apiErrors.ErrSyncInProgress, decodeAPIError(t, w).Code)
}

func TestGetCronStatus(t *testing.T) {
	stub := &stubCronService{status: map[string]any{
		"sync_enabled": true,
		"sync_running": false,
	}}

	w := serveRoutes(CronJobs(stub), http.MethodGet, "/internal/cron/status")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Contains(t, body, "company_sync")
	assert.Equal(t, true, body["company_sync"]["sync_enabled"])
}
