package store

import (
	"fmt"
	"sync"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/types"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Locks is the set of locked periods.
//
// Only locked periods are persisted. A period without a row, or with a row
// that is not marked locked, is unlocked.
type Locks struct {
	mu        sync.Mutex
	db        *gorm.DB
	log       zerolog.Logger
	observers observers
}

func NewLocks(db *gorm.DB, log zerolog.Logger) *Locks {
	return &Locks{
		db:  db,
		log: log.With().Str("store", "locks").Logger(),
	}
}

// IsLocked reports if the period is locked. Read errors are logged and the
// period is reported as unlocked.
func (l *Locks) IsLocked(month types.Month) bool {
	var lock models.PeriodLock
	err := l.db.Where("month = ?", month.String()).Limit(1).Find(&lock).Error
	if err != nil {
		l.log.Error().Err(err).Str("period", month.String()).Msg("reading lock failed, treating period as unlocked")
		return false
	}

	return lock.Locked
}

// SetLocked locks or unlocks a period. Unlocking removes the row entirely.
//
// Subscribers are notified in any case. A persistence error is logged and returned.
func (l *Locks) SetLocked(month types.Month, locked bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.observers.notify()

	var err error
	if locked {
		err = l.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&models.PeriodLock{Month: month, Locked: true}).Error
	} else {
		err = l.db.Where("month = ?", month.String()).Delete(&models.PeriodLock{}).Error
	}

	if err != nil {
		l.log.Error().Err(err).Str("period", month.String()).Bool("locked", locked).Msg("persisting lock failed")
		return fmt.Errorf("could not persist lock for %s: %w", month, err)
	}

	return nil
}

// Locked returns all locked periods in ascending order. If the persisted
// state cannot be read, no periods are returned.
func (l *Locks) Locked() []types.Month {
	var locks []models.PeriodLock
	err := l.db.Where("locked = ?", true).Find(&locks).Error
	if err != nil {
		l.log.Error().Err(err).Msg("reading locks failed, treating all periods as unlocked")
		return []types.Month{}
	}

	months := make([]types.Month, 0, len(locks))
	for _, lock := range locks {
		months = append(months, lock.Month)
	}

	slices.SortFunc(months, func(a, b types.Month) int {
		return compareMonths(a, b)
	})

	return months
}

// Subscribe registers a callback that is called after every SetLocked call.
func (l *Locks) Subscribe(fn func()) (unsubscribe func()) {
	return l.observers.subscribe(fn)
}

func compareMonths(a, b types.Month) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
