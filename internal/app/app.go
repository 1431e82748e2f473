// Package app wires the stores and services together.
//
// An App owns the database handle. Every consumer receives the stores and
// services from it instead of reaching for package level state.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/allotment/backend/internal/config"
	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/periods"
	"github.com/allotment/backend/internal/recurrence"
	"github.com/allotment/backend/internal/resolver"
	"github.com/allotment/backend/internal/store"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type App struct {
	DB *gorm.DB

	Locks     *store.Locks
	Snapshots *store.Snapshots
	Plans     *store.Plans
	Income    *store.Income

	Periods    *periods.Service
	Resolver   *resolver.Resolver
	Recurrence *recurrence.Engine

	log         zerolog.Logger
	unsubscribe []func()
}

type Options struct {
	Categories []string
	Currency   string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// New creates the stores and services on an open database.
func New(db *gorm.DB, log zerolog.Logger, opts Options) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &App{
		DB:  db,
		log: log,
	}

	a.Locks = store.NewLocks(db, log)
	a.Snapshots = store.NewSnapshots(db, log)
	a.Plans = store.NewPlans(db, log, store.PlanOptions{
		Categories: opts.Categories,
		Currency:   opts.Currency,
		Now:        now,
	})
	a.Income = store.NewIncome(db, log, a.Locks)

	a.Periods = periods.NewService(a.Locks, a.Snapshots, a.Plans, periods.WithLogger(log), periods.WithClock(now))
	a.Resolver = resolver.New(a.Locks, a.Snapshots, a.Plans)
	a.Recurrence = recurrence.NewEngine(a.Locks)

	a.unsubscribe = []func(){
		a.Locks.Subscribe(a.changed("locks")),
		a.Snapshots.Subscribe(a.changed("snapshots")),
		a.Plans.Subscribe(a.changed("plans")),
		a.Income.Subscribe(a.changed("income")),
	}

	return a
}

// Open creates the data directory, connects to the database and creates the App.
func Open(cfg *config.Config, log zerolog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	db, err := models.Connect(cfg.DSN(), log)
	if err != nil {
		return nil, err
	}

	return New(db, log, Options{
		Categories: cfg.Categories,
		Currency:   cfg.DefaultCurrency,
	}), nil
}

// Close removes the store subscriptions and closes the database connection.
func (a *App) Close() error {
	for _, unsubscribe := range a.unsubscribe {
		unsubscribe()
	}

	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Ping checks that the database is reachable.
func (a *App) Ping() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

func (a *App) changed(name string) func() {
	return func() {
		a.log.Debug().Str("store", name).Msg("store changed")
	}
}
