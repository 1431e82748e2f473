package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrPeriodLocked   = errors.New("the period is locked, unlock it before changing its records")
	ErrIncomeNotFound = errors.New("there is no income record with this ID")
	ErrIncomeExists   = errors.New("an income record with this ID already exists")
)

// LockChecker reports if a period is locked.
type LockChecker interface {
	IsLocked(types.Month) bool
}

// Income stores income records. All writes are refused for locked periods.
type Income struct {
	mu        sync.Mutex
	db        *gorm.DB
	log       zerolog.Logger
	locks     LockChecker
	observers observers
}

func NewIncome(db *gorm.DB, log zerolog.Logger, locks LockChecker) *Income {
	return &Income{
		db:    db,
		log:   log.With().Str("store", "income").Logger(),
		locks: locks,
	}
}

// List returns all stored income records ordered by date.
func (s *Income) List() []models.Income {
	var records []models.Income
	err := s.db.Order("date ASC, name ASC").Find(&records).Error
	if err != nil {
		s.log.Error().Err(err).Msg("reading income failed")
		return []models.Income{}
	}

	return records
}

// Get returns an income record by ID.
func (s *Income) Get(id uuid.UUID) (models.Income, bool) {
	var records []models.Income
	err := s.db.Where("id = ?", id.String()).Limit(1).Find(&records).Error
	if err != nil {
		s.log.Error().Err(err).Str("income", id.String()).Msg("reading income failed")
		return models.Income{}, false
	}

	if len(records) == 0 {
		return models.Income{}, false
	}

	return records[0], true
}

// Add stores a new income record. If the record has an ID, it is kept. This
// allows storing a virtual instance under its derived ID.
func (s *Income) Add(record models.Income) (models.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(record.Month()); err != nil {
		return models.Income{}, err
	}

	if record.ID != uuid.Nil {
		if _, ok := s.Get(record.ID); ok {
			return models.Income{}, fmt.Errorf("%w: %s", ErrIncomeExists, record.ID)
		}
	}

	if err := s.db.Create(&record).Error; err != nil {
		return models.Income{}, err
	}

	s.observers.notify()
	return record, nil
}

// Update replaces an income record. Both the period the record was in and
// the period it is moved to must be unlocked.
func (s *Income) Update(record models.Income) (models.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.Get(record.ID)
	if !ok {
		return models.Income{}, ErrIncomeNotFound
	}

	if err := s.guard(existing.Month()); err != nil {
		return models.Income{}, err
	}

	if err := s.guard(record.Month()); err != nil {
		return models.Income{}, err
	}

	record.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&record).Error; err != nil {
		return models.Income{}, err
	}

	s.observers.notify()
	return record, nil
}

// Delete removes an income record unless its period is locked.
func (s *Income) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.Get(id)
	if !ok {
		return ErrIncomeNotFound
	}

	if err := s.guard(existing.Month()); err != nil {
		return err
	}

	if err := s.db.Where("id = ?", id.String()).Delete(&models.Income{}).Error; err != nil {
		return err
	}

	s.observers.notify()
	return nil
}

// Subscribe registers a callback that is called after every successful write.
func (s *Income) Subscribe(fn func()) (unsubscribe func()) {
	return s.observers.subscribe(fn)
}

func (s *Income) guard(month types.Month) error {
	if s.locks.IsLocked(month) {
		return fmt.Errorf("%w: %s", ErrPeriodLocked, month)
	}
	return nil
}
