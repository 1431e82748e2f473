// Package periods locks and unlocks periods.
//
// Locking a period freezes the active distribution plan into a snapshot for
// that period. The Service is the only writer that touches both the lock
// store and the snapshot store.
package periods

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/allotment/backend/internal/metrics"
	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/saga"
	"github.com/allotment/backend/internal/types"
	"github.com/rs/zerolog"
)

type LockStore interface {
	IsLocked(types.Month) bool
	SetLocked(types.Month, bool) error
	Locked() []types.Month
}

type SnapshotStore interface {
	Get(types.Month) (models.PeriodSnapshot, bool)
	Save(models.PeriodSnapshot) error
	Delete(types.Month) error
	List() []models.PeriodSnapshot
}

type PlanSource interface {
	Active() (models.Plan, bool)
}

type Service struct {
	mu        sync.Mutex
	locks     LockStore
	snapshots SnapshotStore
	plans     PlanSource
	log       zerolog.Logger
	now       func() time.Time
}

type Option func(*Service)

// WithLogger sets the logger. The default discards all output.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) {
		s.log = log.With().Str("component", "periods").Logger()
	}
}

// WithClock sets the function used to timestamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(locks LockStore, snapshots SnapshotStore, plans PlanSource, opts ...Option) *Service {
	s := &Service{
		locks:     locks,
		snapshots: snapshots,
		plans:     plans,
		log:       zerolog.Nop(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LockPeriod snapshots the active plan for the period and then locks it.
//
// Locking an already locked period with a snapshot is a no-op. If the lock
// cannot be persisted, the snapshot is rolled back so that the period is left
// as it was before.
func (s *Service) LockPeriod(period string) (err error) {
	defer s.observe("lock", period, &err)

	month, err := types.ParseMonth(period)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks.IsLocked(month) {
		if _, ok := s.snapshots.Get(month); ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrSnapshotMissingWhileLocked, month)
	}

	snapshot, err := s.snapshot(month)
	if err != nil {
		return err
	}

	// A snapshot left behind by an earlier unlock is restored on rollback
	previous, hadPrevious := s.snapshots.Get(month)

	if err := s.snapshots.Save(snapshot); err != nil {
		return err
	}

	err = saga.RunWithCompensation(
		func() error {
			return s.locks.SetLocked(month, true)
		},
		func() error {
			if hadPrevious {
				return s.snapshots.Save(previous)
			}
			return s.snapshots.Delete(month)
		},
	)

	if errors.Is(err, saga.ErrCompensationFailed) {
		metrics.RollbackFailures.Inc()
		s.log.Error().Err(err).Str("period", month.String()).Msg("snapshot rollback failed, the period has a snapshot but no lock")
	}

	if err != nil {
		return fmt.Errorf("could not lock %s: %w", month, err)
	}

	return nil
}

// UnlockPeriod removes the lock for a period. The snapshot is kept.
//
// Unlocking a period whose snapshot is missing is allowed.
func (s *Service) UnlockPeriod(period string) (err error) {
	defer s.observe("unlock", period, &err)

	month, err := types.ParseMonth(period)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locks.SetLocked(month, false)
}

// RegenerateSnapshot recreates the missing snapshot of a locked period from
// the active plan. It never overwrites an existing snapshot and does not
// change the lock.
func (s *Service) RegenerateSnapshot(period string) (err error) {
	defer s.observe("regenerate", period, &err)

	month, err := types.ParseMonth(period)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.locks.IsLocked(month) {
		return fmt.Errorf("%w: %s", ErrNotLocked, month)
	}

	if _, ok := s.snapshots.Get(month); ok {
		return fmt.Errorf("%w: %s", ErrSnapshotAlreadyExists, month)
	}

	snapshot, err := s.snapshot(month)
	if err != nil {
		return err
	}

	return s.snapshots.Save(snapshot)
}

// HasSnapshot reports if a snapshot exists for the period. Malformed periods have none.
func (s *Service) HasSnapshot(period string) bool {
	month, err := types.ParseMonth(period)
	if err != nil {
		return false
	}

	_, ok := s.snapshots.Get(month)
	return ok
}

// Status is the lock state of a single period.
type Status struct {
	Period      types.Month            `json:"period" example:"2025-03"`
	Locked      bool                   `json:"locked" example:"true"`
	HasSnapshot bool                   `json:"hasSnapshot" example:"true"`
	Snapshot    *models.PeriodSnapshot `json:"snapshot,omitempty"`
}

// NeedsRegeneration reports if the period is locked without a snapshot.
func (s Status) NeedsRegeneration() bool {
	return s.Locked && !s.HasSnapshot
}

// Status returns the lock state of a period.
func (s *Service) Status(period string) (Status, error) {
	month, err := types.ParseMonth(period)
	if err != nil {
		return Status{}, err
	}

	status := Status{
		Period: month,
		Locked: s.locks.IsLocked(month),
	}

	if snapshot, ok := s.snapshots.Get(month); ok {
		status.HasSnapshot = true
		status.Snapshot = &snapshot
	}

	return status, nil
}

// Report lists inconsistencies between locks and snapshots.
type Report struct {
	// Locked periods without a snapshot. These need to be regenerated.
	MissingSnapshots []types.Month `json:"missingSnapshots"`

	// Snapshots for periods that are not locked. These are expected after an
	// unlock, but can also be left behind by a failed rollback.
	UnlockedSnapshots []types.Month `json:"unlockedSnapshots"`
}

// Consistent reports if every locked period has a snapshot.
func (r Report) Consistent() bool {
	return len(r.MissingSnapshots) == 0
}

// Audit compares the lock set with the stored snapshots.
func (s *Service) Audit() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := Report{
		MissingSnapshots:  []types.Month{},
		UnlockedSnapshots: []types.Month{},
	}

	locked := make(map[string]bool)
	for _, month := range s.locks.Locked() {
		locked[month.String()] = true
		if _, ok := s.snapshots.Get(month); !ok {
			report.MissingSnapshots = append(report.MissingSnapshots, month)
		}
	}

	for _, snapshot := range s.snapshots.List() {
		if !locked[snapshot.Month.String()] {
			report.UnlockedSnapshots = append(report.UnlockedSnapshots, snapshot.Month)
		}
	}

	if !report.Consistent() {
		s.log.Warn().Int("count", len(report.MissingSnapshots)).Msg("locked periods without snapshot found")
	}

	return report
}

// snapshot builds a snapshot of the active plan. The targets are copied so
// that later edits of the plan do not reach the snapshot.
func (s *Service) snapshot(month types.Month) (models.PeriodSnapshot, error) {
	plan, ok := s.plans.Active()
	if !ok {
		return models.PeriodSnapshot{}, ErrNoActivePlan
	}

	return models.PeriodSnapshot{
		Month:    month,
		PlanID:   plan.ID,
		PlanName: plan.Name,
		Currency: plan.Currency,
		Targets:  plan.Targets.Clone(),
		LockedAt: s.now().UTC(),
	}, nil
}

func (s *Service) observe(operation, period string, err *error) {
	result := "ok"
	if *err != nil {
		result = Reason(*err)
		s.log.Info().Err(*err).Str("operation", operation).Str("period", period).Msg("period operation failed")
	} else {
		s.log.Debug().Str("operation", operation).Str("period", period).Msg("period operation succeeded")
	}

	metrics.PeriodOperations.WithLabelValues(operation, result).Inc()
}
