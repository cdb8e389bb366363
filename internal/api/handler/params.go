package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
	"github.com/stockmate/stockmate-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxSymbolLength = 5

// symbolParam extracts and validates the :symbol path parameter. On failure
// it writes the error response itself and returns false.
func symbolParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	symbol := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("symbol"))
	if symbol == "" || len(symbol) > maxSymbolLength {
		apiErrors.WriteError(w, apiErrors.ErrInvalidSymbol, "Invalid stock symbol. Must be 1-5 characters", nil)
		return "", false
	}

	return strings.ToUpper(symbol), true
}

// limitParam parses an optional positive integer query parameter. Zero means
// the parameter was absent; the sync services substitute their dataset
// default.
func limitParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidLimit, fmt.Sprintf("Parameter %q must be a positive integer", name), nil)
		return 0, false
	}

	return limit, true
}

// sleepTimeParam parses the optional sleep_time query parameter as seconds
// between API calls. The ceiling keeps a single request from hogging the
// rate limiter budget for minutes.
func sleepTimeParam(w http.ResponseWriter, r *http.Request) (time.Duration, bool) {
	raw := r.URL.Query().Get("sleep_time")
	if raw == "" {
		return 500 * time.Millisecond, true
	}

	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil || seconds < 0 || seconds > 5 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parameter \"sleep_time\" must be a number of seconds between 0 and 5", nil)
		return 0, false
	}

	return time.Duration(seconds * float64(time.Second)), true
}

// writeSyncError maps a sync service failure onto the API error body.
func writeSyncError(w http.ResponseWriter, logger log.Logger, err error) {
	var fmpErr *fmpdomain.APIError
	var pqErr *pq.Error

	switch {
	case errors.Is(err, syncing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Period must be one of: annual, quarter, Q1, Q2, Q3, Q4, FY", nil)
	case errors.As(err, &fmpErr):
		logger.WithError(err).Error("sync: market data provider request failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Market data provider request failed", nil)
	case errors.As(err, &pqErr):
		logger.WithError(err).Error("sync: database operation failed")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Database operation failed", nil)
	default:
		logger.WithError(err).Error("sync: unexpected failure")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Unexpected error during sync", nil)
	}
}
