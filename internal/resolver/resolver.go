// Package resolver decides which plan governs a period.
package resolver

import (
	"time"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/types"
	"github.com/google/uuid"
)

type Source string

const (
	SourceSnapshot Source = "snapshot"
	SourceLive     Source = "live"
)

type LockChecker interface {
	IsLocked(types.Month) bool
}

type SnapshotReader interface {
	Get(types.Month) (models.PeriodSnapshot, bool)
}

type PlanSource interface {
	Active() (models.Plan, bool)
}

// Resolved is the plan shape that applies to a period.
type Resolved struct {
	PlanID   uuid.UUID      `json:"planId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	PlanName string         `json:"planName" example:"Default plan"`
	Currency string         `json:"currency" example:"SGD"`
	Targets  models.Targets `json:"targets"`
	Source   Source         `json:"source" example:"snapshot"`

	// Only set for snapshots
	LockedAt *time.Time `json:"lockedAt,omitempty" example:"2025-04-01T08:00:00Z"`
}

type Resolver struct {
	locks     LockChecker
	snapshots SnapshotReader
	plans     PlanSource
}

func New(locks LockChecker, snapshots SnapshotReader, plans PlanSource) *Resolver {
	return &Resolver{
		locks:     locks,
		snapshots: snapshots,
		plans:     plans,
	}
}

// ForPeriod returns the plan for a period. A nil period is the all-time view
// and always resolves to the live active plan.
//
// Locked periods resolve to their snapshot. A locked period without a snapshot
// resolves to nothing, exactly like the absence of any plan. Use
// periods.Service.HasSnapshot to tell the two apart.
func (r *Resolver) ForPeriod(period *types.Month) (Resolved, bool) {
	if period != nil && r.locks.IsLocked(*period) {
		snapshot, ok := r.snapshots.Get(*period)
		if !ok {
			return Resolved{}, false
		}

		lockedAt := snapshot.LockedAt
		return Resolved{
			PlanID:   snapshot.PlanID,
			PlanName: snapshot.PlanName,
			Currency: snapshot.Currency,
			Targets:  snapshot.Targets.Clone(),
			Source:   SourceSnapshot,
			LockedAt: &lockedAt,
		}, true
	}

	plan, ok := r.plans.Active()
	if !ok {
		return Resolved{}, false
	}

	return Resolved{
		PlanID:   plan.ID,
		PlanName: plan.Name,
		Currency: plan.Currency,
		Targets:  plan.Targets.Clone(),
		Source:   SourceLive,
	}, true
}
