package v1

import (
	"errors"
	"net/http"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/periods"
	"github.com/allotment/backend/internal/store"
)

type httpError struct {
	Error  string `json:"error" example:"the period is not locked"`
	Reason string `json:"reason,omitempty" example:"not_locked"` // Machine readable reason for failed period operations
}

var (
	errPlanHasSnapshots = errors.New("the plan is referenced by period snapshots and cannot be deleted")
)

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral), errors.Is(err, periods.ErrRollbackFailed):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, store.ErrPlanNotFound), errors.Is(err, store.ErrIncomeNotFound):
		return http.StatusNotFound

	case errors.Is(err, periods.ErrSnapshotMissingWhileLocked),
		errors.Is(err, periods.ErrNoActivePlan),
		errors.Is(err, periods.ErrSnapshotAlreadyExists),
		errors.Is(err, periods.ErrNotLocked),
		errors.Is(err, store.ErrPeriodLocked),
		errors.Is(err, store.ErrIncomeExists),
		errors.Is(err, errPlanHasSnapshots):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// periodError builds the error body for period operations, which carries the reason code.
func periodError(err error) httpError {
	return httpError{
		Error:  err.Error(),
		Reason: periods.Reason(err),
	}
}
