package models

import (
	"time"

	"github.com/allotment/backend/internal/types"
	"github.com/google/uuid"
)

// PeriodSnapshot is an immutable copy of a distribution plan's shape that
// governs one locked period.
//
// Snapshots are never updated. They are only created, or deleted and created anew.
type PeriodSnapshot struct {
	// The period the snapshot governs
	Month types.Month `json:"period" gorm:"primaryKey" example:"2025-03"`

	// ID of the plan the snapshot was taken from
	PlanID uuid.UUID `json:"planId" gorm:"type:text;index" example:"65392deb-5e92-4268-b114-297faad6cdce"`

	PlanName string    `json:"planName" example:"Default plan"`         // Name of the plan at the time of the snapshot
	Currency string    `json:"currency" example:"SGD"`                  // Currency of the plan at the time of the snapshot
	Targets  Targets   `json:"targets"`                                 // Category targets at the time of the snapshot
	LockedAt time.Time `json:"lockedAt" example:"2025-04-01T08:00:00Z"` // Time the snapshot was taken
}

// PeriodLock marks a period as locked. Periods without a row are unlocked.
type PeriodLock struct {
	Month     types.Month `gorm:"primaryKey"`
	Locked    bool
	UpdatedAt time.Time
}

// Setting is a single key/value pair, e.g. the active plan pointer.
type Setting struct {
	Name  string `gorm:"primaryKey"`
	Value string
}
