package store

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/allotment/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const activePlanKey = "active_plan_id"

var ErrPlanNotFound = errors.New("there is no plan with this ID")

// Plans stores the distribution plans and the pointer to the active plan.
type Plans struct {
	mu         sync.Mutex
	db         *gorm.DB
	log        zerolog.Logger
	categories []string
	currency   string
	now        func() time.Time
	observers  observers
}

// PlanOptions configures the plan normalization.
type PlanOptions struct {
	// Categories is the canonical category set, in display order.
	Categories []string

	// Currency is used for plans without a valid currency code.
	Currency string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func NewPlans(db *gorm.DB, log zerolog.Logger, opts PlanOptions) *Plans {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Plans{
		db:         db,
		log:        log.With().Str("store", "plans").Logger(),
		categories: slices.Clone(opts.Categories),
		currency:   opts.Currency,
		now:        now,
	}
}

// Categories returns the canonical category set.
func (p *Plans) Categories() []string {
	return slices.Clone(p.categories)
}

// List returns all plans, the active plan first, then by last modification, newest first.
func (p *Plans) List() []models.Plan {
	plans, err := p.all()
	if err != nil {
		p.log.Error().Err(err).Msg("reading plans failed")
		return []models.Plan{}
	}

	activeID := p.activeID()
	for i := range plans {
		plans[i].IsActive = plans[i].ID == activeID
	}

	slices.SortStableFunc(plans, func(a, b models.Plan) int {
		if a.IsActive != b.IsActive {
			if a.IsActive {
				return -1
			}
			return 1
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return plans
}

// Get returns a plan by ID.
func (p *Plans) Get(id uuid.UUID) (models.Plan, bool) {
	var plans []models.Plan
	err := p.db.Where("id = ?", id.String()).Limit(1).Find(&plans).Error
	if err != nil {
		p.log.Error().Err(err).Str("plan", id.String()).Msg("reading plan failed")
		return models.Plan{}, false
	}

	if len(plans) == 0 {
		return models.Plan{}, false
	}

	plan := plans[0]
	plan.IsActive = plan.ID == p.activeID()
	return plan, true
}

// Active returns the active plan.
//
// If the active plan pointer is missing or points to a plan that does not
// exist, the first plan is made the active plan.
func (p *Plans) Active() (models.Plan, bool) {
	if id := p.activeID(); id != uuid.Nil {
		if plan, ok := p.Get(id); ok {
			return plan, true
		}
	}

	plans, err := p.all()
	if err != nil {
		p.log.Error().Err(err).Msg("reading plans failed")
		return models.Plan{}, false
	}

	if len(plans) == 0 {
		return models.Plan{}, false
	}

	plan := plans[0]
	p.log.Warn().Str("plan", plan.ID.String()).Msg("active plan pointer is stale, adopting first plan")

	plan.IsActive = true

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.setActiveID(plan.ID); err != nil {
		p.log.Error().Err(err).Msg("persisting active plan pointer failed")
		return plan, true
	}

	p.observers.notify()
	return plan, true
}

// Create normalizes and stores a new plan. The first plan becomes the active plan.
func (p *Plans) Create(plan models.Plan) (models.Plan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer p.observers.notify()

	var count int64
	if err := p.db.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return models.Plan{}, err
	}

	plan = p.normalize(plan)
	if err := p.db.Create(&plan).Error; err != nil {
		return models.Plan{}, err
	}

	if count == 0 {
		if err := p.setActiveID(plan.ID); err != nil {
			return models.Plan{}, err
		}
		plan.IsActive = true
	}

	return plan, nil
}

// Update normalizes and replaces a plan.
func (p *Plans) Update(plan models.Plan) (models.Plan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer p.observers.notify()

	existing, ok := p.Get(plan.ID)
	if !ok {
		p.log.Warn().Str("plan", plan.ID.String()).Msg("update for unknown plan ignored")
		return models.Plan{}, ErrPlanNotFound
	}

	plan = p.normalize(plan)
	plan.CreatedAt = existing.CreatedAt
	plan.UpdatedAt = p.now()

	err := p.db.Model(&plan).Select("name", "currency", "targets", "updated_at").Updates(&plan).Error
	if err != nil {
		return models.Plan{}, err
	}

	plan.IsActive = existing.IsActive
	return plan, nil
}

// SetActive makes the plan with the ID the active plan.
func (p *Plans) SetActive(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer p.observers.notify()

	if _, ok := p.Get(id); !ok {
		p.log.Warn().Str("plan", id.String()).Msg("activation of unknown plan ignored")
		return ErrPlanNotFound
	}

	return p.setActiveID(id)
}

// Duplicate copies a plan under a new ID. The copy is not active.
func (p *Plans) Duplicate(id uuid.UUID) (models.Plan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer p.observers.notify()

	source, ok := p.Get(id)
	if !ok {
		return models.Plan{}, ErrPlanNotFound
	}

	plan := p.normalize(models.Plan{
		Name:     source.Name + " (Copy)",
		Currency: source.Currency,
		Targets:  source.Targets.Clone(),
	})

	if err := p.db.Create(&plan).Error; err != nil {
		return models.Plan{}, err
	}

	return plan, nil
}

// Delete removes a plan. If it was the active plan, the first remaining
// plan becomes active, or the pointer is cleared if no plans remain.
//
// The store does not check for snapshots referencing the plan.
func (p *Plans) Delete(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer p.observers.notify()

	if _, ok := p.Get(id); !ok {
		return ErrPlanNotFound
	}

	if err := p.db.Where("id = ?", id.String()).Delete(&models.Plan{}).Error; err != nil {
		return err
	}

	if p.activeID() != id {
		return nil
	}

	remaining, err := p.all()
	if err != nil {
		return err
	}

	if len(remaining) == 0 {
		return p.db.Where(&models.Setting{Name: activePlanKey}).Delete(&models.Setting{}).Error
	}

	return p.setActiveID(remaining[0].ID)
}

// Seed creates the default plan if no plan exists yet.
//
// The percentages are split evenly across all categories, the first
// category receives the rounding remainder.
func (p *Plans) Seed() (models.Plan, error) {
	if plan, ok := p.Active(); ok {
		return plan, nil
	}

	targets := make(models.Targets, 0, len(p.categories))
	if n := len(p.categories); n > 0 {
		share := decimal.NewFromInt(100).Div(decimal.NewFromInt(int64(n))).RoundDown(2)
		first := decimal.NewFromInt(100).Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))

		for i, category := range p.categories {
			percent := share
			if i == 0 {
				percent = first
			}
			targets = append(targets, models.Target{Category: category, Percent: percent.InexactFloat64()})
		}
	}

	p.log.Info().Msg("seeding default plan")
	return p.Create(models.Plan{
		Name:     "Default plan",
		Currency: p.currency,
		Targets:  targets,
	})
}

// Subscribe registers a callback that is called after every write.
func (p *Plans) Subscribe(fn func()) (unsubscribe func()) {
	return p.observers.subscribe(fn)
}

// normalize rebuilds the targets to contain exactly the canonical categories
// in canonical order. Missing categories default to 0%, percentages are
// clamped to [0, 100].
func (p *Plans) normalize(plan models.Plan) models.Plan {
	percentages := make(map[string]float64, len(plan.Targets))
	for _, target := range plan.Targets {
		if _, ok := percentages[target.Category]; ok {
			continue
		}
		percentages[target.Category] = target.Percent
	}

	targets := make(models.Targets, 0, len(p.categories))
	for _, category := range p.categories {
		percent := percentages[category]
		if math.IsNaN(percent) || math.IsInf(percent, 0) {
			percent = 0
		}
		targets = append(targets, models.Target{Category: category, Percent: math.Max(0, math.Min(100, percent))})
	}
	plan.Targets = targets

	plan.Currency = normalizeCurrency(plan.Currency, p.currency)
	plan.Name = strings.TrimSpace(plan.Name)
	if plan.Name == "" {
		plan.Name = "Untitled plan"
	}

	if plan.UpdatedAt.IsZero() || plan.UpdatedAt.After(p.now().Add(time.Minute)) {
		plan.UpdatedAt = p.now()
	}

	return plan
}

func (p *Plans) all() ([]models.Plan, error) {
	var plans []models.Plan
	err := p.db.Order("created_at ASC").Find(&plans).Error
	return plans, err
}

func (p *Plans) activeID() uuid.UUID {
	var settings []models.Setting
	err := p.db.Where(&models.Setting{Name: activePlanKey}).Limit(1).Find(&settings).Error
	if err != nil {
		p.log.Error().Err(err).Msg("reading active plan pointer failed")
		return uuid.Nil
	}

	if len(settings) == 0 {
		return uuid.Nil
	}

	id, err := uuid.Parse(settings[0].Value)
	if err != nil {
		p.log.Error().Err(err).Msg("active plan pointer is malformed")
		return uuid.Nil
	}

	return id
}

func (p *Plans) setActiveID(id uuid.UUID) error {
	err := p.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&models.Setting{Name: activePlanKey, Value: id.String()}).Error
	if err != nil {
		return fmt.Errorf("could not persist active plan: %w", err)
	}
	return nil
}

// normalizeCurrency returns the canonical ISO 4217 code or the fallback.
func normalizeCurrency(code, fallback string) string {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return fallback
	}
	return unit.String()
}
