package periods

import (
	"errors"

	"github.com/allotment/backend/internal/saga"
	"github.com/allotment/backend/internal/types"
)

var (
	ErrInvalidPeriodFormat        = types.ErrInvalidMonth
	ErrSnapshotMissingWhileLocked = errors.New("the period is locked but its snapshot is missing, regenerate the snapshot")
	ErrNoActivePlan               = errors.New("there is no active plan to snapshot")
	ErrSnapshotAlreadyExists      = errors.New("a snapshot already exists for this period")
	ErrNotLocked                  = errors.New("the period is not locked")
	ErrRollbackFailed             = saga.ErrCompensationFailed
)

// Reason returns a stable, machine readable code for an error returned by the Service.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidPeriodFormat):
		return "invalid_period_format"
	case errors.Is(err, ErrSnapshotMissingWhileLocked):
		return "snapshot_missing_while_locked"
	case errors.Is(err, ErrNoActivePlan):
		return "no_active_plan"
	case errors.Is(err, ErrSnapshotAlreadyExists):
		return "snapshot_already_exists"
	case errors.Is(err, ErrNotLocked):
		return "not_locked"
	case errors.Is(err, ErrRollbackFailed):
		return "rollback_failed"
	default:
		return "store_write_failed"
	}
}
