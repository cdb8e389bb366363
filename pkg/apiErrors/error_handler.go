package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the API.
const (
	// Authentication errors (1000-1999)
	ErrMissingToken = "AUTH_001" // Authorization header absent
	ErrInvalidToken = "AUTH_002" // Token malformed or signature mismatch
	ErrExpiredToken = "AUTH_003" // Token expired

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Request not understood
	ErrMissingRequiredData = "VAL_002" // Required data absent
	ErrInvalidFormat       = "VAL_003" // Malformed parameter value
	ErrInvalidSymbol       = "VAL_004" // Stock symbol outside 1-5 uppercase chars
	ErrInvalidPeriod       = "VAL_005" // Period not in the accepted set
	ErrInvalidLimit        = "VAL_006" // Limit outside the accepted range

	// Resource errors (4000-4999)
	ErrDataNotFound    = "RES_001" // Remote API returned no data for the symbol
	ErrCompanyNotFound = "RES_002" // Company not registered locally

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation failed
	ErrExternalService   = "SRV_003" // Market data API failure
	ErrSyncInProgress    = "SRV_004" // Background sync already running
)

// httpStatusMap resolves error codes to HTTP status codes.
var httpStatusMap = map[string]int{
	ErrMissingToken:        http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidSymbol:       http.StatusBadRequest,
	ErrInvalidPeriod:       http.StatusBadRequest,
	ErrInvalidLimit:        http.StatusBadRequest,
	ErrDataNotFound:        http.StatusNotFound,
	ErrCompanyNotFound:     http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrSyncInProgress:      http.StatusConflict,
}

// APIError is the standard error body returned by every endpoint.
type APIError struct {
	Code    string `json:"code"`              // Machine-readable error code
	Message string `json:"message,omitempty"` // Human-readable description (optional)
	Details any    `json:"details,omitempty"` // Additional details (optional)
}

// WriteError writes the standardized error body to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an APIError from a Go error, keeping its message.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
