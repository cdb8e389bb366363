package domain

import "time"

// Statement and metrics periods accepted by the market data API.
const (
	PeriodAnnual  = "annual"
	PeriodQuarter = "quarter"
)

// validPeriods is the accepted period set: reporting frequencies plus
// individual fiscal quarters and the full year.
var validPeriods = map[string]struct{}{
	PeriodAnnual:  {},
	PeriodQuarter: {},
	"Q1":          {},
	"Q2":          {},
	"Q3":          {},
	"Q4":          {},
	"FY":          {},
}

// IsValidPeriod reports whether p is an accepted period value.
func IsValidPeriod(p string) bool {
	_, ok := validPeriods[p]
	return ok
}

// Sync step outcome values.
const (
	SyncStepOK      = "ok"
	SyncStepFailed  = "failed"
	SyncStepSkipped = "skipped"
)

// Overall sync outcome values.
const (
	SyncCompleted           = "completed"
	SyncCompletedWithErrors = "completed_with_errors"
	SyncFailed              = "failed"
)

// SyncStepResult is the outcome of one step of a full company sync.
type SyncStepResult struct {
	Step    string `json:"step"`
	Status  string `json:"status"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// SyncReport is the result of a full company data sync.
type SyncReport struct {
	Symbol          string           `json:"symbol"`
	Status          string           `json:"status"`
	Steps           []SyncStepResult `json:"steps"`
	TotalAPICalls   int              `json:"total_api_calls"`
	DurationSeconds float64          `json:"duration_seconds"`
	StartedAt       time.Time        `json:"started_at"`
	FinishedAt      time.Time        `json:"finished_at"`
}
