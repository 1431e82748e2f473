// Package recurrence projects recurring income into periods.
//
// Projected instances are never stored. They are computed on every read from
// the stored records and the lock state of the period.
package recurrence

import (
	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/types"
	internal_uuid "github.com/allotment/backend/internal/uuid"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

type LockChecker interface {
	IsLocked(types.Month) bool
}

// Effective is an income record as it counts for a period.
type Effective struct {
	models.Income

	// Virtual instances are projected from a recurring record and not stored.
	IsVirtual bool `json:"isVirtual" example:"true"`

	// ID of the record a virtual instance was projected from
	SourceID *uuid.UUID `json:"sourceId,omitempty" example:"65392deb-5e92-4268-b114-297faad6cdce"`
}

// Date returns the day a recurring record pays out in the period.
//
// Only active monthly records recur. The end of month rule pays on the last
// day of the month, the day of month rule on the configured day, clamped to
// the last day of short months. Dates outside the inclusive start and end
// bounds of the record do not recur. The start bound defaults to the date of
// the record.
func Date(record models.Income, period types.Month) (types.Date, bool) {
	if record.Status != models.Active || record.Frequency != models.Monthly {
		return types.Date{}, false
	}

	var date types.Date
	switch record.MonthlyPayRule {
	case models.EndOfMonth:
		date = period.Day(period.LastDay())
	default:
		date = period.Day(record.PayDay())
	}

	start := record.StartDate
	if start.IsZero() {
		start = record.Date
	}

	if !start.IsZero() && date.Before(start) {
		return types.Date{}, false
	}

	if !record.EndDate.IsZero() && date.After(record.EndDate) {
		return types.Date{}, false
	}

	return date, true
}

// VirtualID returns the ID of the instance of a record projected into a period.
func VirtualID(source uuid.UUID, period types.Month) uuid.UUID {
	return internal_uuid.Derive(source, period.String())
}

type Engine struct {
	locks LockChecker
}

func NewEngine(locks LockChecker) *Engine {
	return &Engine{locks: locks}
}

// EffectiveIncome returns the income that counts for a period.
//
// Stored records dated in the period are always included. Locked periods
// contain only those. For unlocked periods, every recurring record that pays
// out in the period adds a virtual instance, unless a stored record already
// exists under the instance's ID or the record itself is dated in the period.
// A stored instance never recurs on its own, even if it was saved with the
// frequency of its source.
func (e *Engine) EffectiveIncome(period types.Month, stored []models.Income) []Effective {
	result := []Effective{}
	ids := make(map[uuid.UUID]bool, len(stored))
	instances := storedInstances(stored)

	for _, record := range stored {
		ids[record.ID] = true
		if record.Month().Equal(period) {
			result = append(result, Effective{Income: record})
		}
	}

	if e.locks.IsLocked(period) {
		return result
	}

	for _, record := range stored {
		if record.Month().Equal(period) || instances[record.ID] {
			continue
		}

		date, ok := Date(record, period)
		if !ok {
			continue
		}

		id := VirtualID(record.ID, period)
		if ids[id] {
			continue
		}
		ids[id] = true

		source := record.ID
		virtual := record
		virtual.ID = id
		virtual.Date = date

		result = append(result, Effective{
			Income:    virtual,
			IsVirtual: true,
			SourceID:  &source,
		})
	}

	slices.SortStableFunc(result, func(a, b Effective) int {
		return a.Date.Compare(b.Date)
	})

	return result
}

// storedInstances returns the IDs of stored records that were saved under the
// derived ID of another stored record for their own period.
func storedInstances(stored []models.Income) map[uuid.UUID]bool {
	instances := make(map[uuid.UUID]bool)
	for _, record := range stored {
		month := record.Month()
		for _, source := range stored {
			if source.ID != record.ID && VirtualID(source.ID, month) == record.ID {
				instances[record.ID] = true
				break
			}
		}
	}
	return instances
}
