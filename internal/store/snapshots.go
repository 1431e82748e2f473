package store

import (
	"fmt"
	"sync"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshots stores at most one plan snapshot per period.
//
// The store does not validate snapshots, that is up to the caller.
type Snapshots struct {
	mu        sync.Mutex
	db        *gorm.DB
	log       zerolog.Logger
	observers observers
}

func NewSnapshots(db *gorm.DB, log zerolog.Logger) *Snapshots {
	return &Snapshots{
		db:  db,
		log: log.With().Str("store", "snapshots").Logger(),
	}
}

// Get returns the snapshot for a period. Read errors are logged and reported
// as a missing snapshot.
func (s *Snapshots) Get(month types.Month) (models.PeriodSnapshot, bool) {
	var snapshots []models.PeriodSnapshot
	err := s.db.Where("month = ?", month.String()).Limit(1).Find(&snapshots).Error
	if err != nil {
		s.log.Error().Err(err).Str("period", month.String()).Msg("reading snapshot failed")
		return models.PeriodSnapshot{}, false
	}

	if len(snapshots) == 0 {
		return models.PeriodSnapshot{}, false
	}

	return snapshots[0], true
}

// Save creates the snapshot for snapshot.Month, replacing an existing one.
func (s *Snapshots) Save(snapshot models.PeriodSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observers.notify()

	snapshot.Targets = snapshot.Targets.Clone()

	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snapshot).Error
	if err != nil {
		s.log.Error().Err(err).Str("period", snapshot.Month.String()).Msg("saving snapshot failed")
		return fmt.Errorf("could not save snapshot for %s: %w", snapshot.Month, err)
	}

	return nil
}

// Delete removes the snapshot for a period if it exists.
func (s *Snapshots) Delete(month types.Month) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observers.notify()

	err := s.db.Where("month = ?", month.String()).Delete(&models.PeriodSnapshot{}).Error
	if err != nil {
		s.log.Error().Err(err).Str("period", month.String()).Msg("deleting snapshot failed")
		return fmt.Errorf("could not delete snapshot for %s: %w", month, err)
	}

	return nil
}

// List returns all snapshots ordered by period, oldest first.
func (s *Snapshots) List() []models.PeriodSnapshot {
	var snapshots []models.PeriodSnapshot

	// YYYY-MM sorts chronologically as text
	err := s.db.Order("month ASC").Find(&snapshots).Error
	if err != nil {
		s.log.Error().Err(err).Msg("reading snapshots failed")
		return []models.PeriodSnapshot{}
	}

	return snapshots
}

// ReferencesPlan reports if any snapshot was taken from the plan.
func (s *Snapshots) ReferencesPlan(id uuid.UUID) bool {
	var count int64
	err := s.db.Model(&models.PeriodSnapshot{}).Where("plan_id = ?", id.String()).Count(&count).Error
	if err != nil {
		s.log.Error().Err(err).Str("plan", id.String()).Msg("counting snapshots failed")

		return true
	}

	return count > 0
}

// Subscribe registers a callback that is called after every write.
func (s *Snapshots) Subscribe(fn func()) (unsubscribe func()) {
	return s.observers.subscribe(fn)
}
