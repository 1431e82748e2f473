package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Target is the share of income a distribution plan assigns to a category.
type Target struct {
	// Name of the category
	Category string `json:"category" example:"Living"`

	// Percentage of income allocated to the category
	Percent float64 `json:"percent" example:"50" minimum:"0" maximum:"100"`
}

// Targets is the ordered list of category targets of a plan or snapshot.
//
// It is stored as a JSON document. A document that cannot be parsed is read
// as an empty list so that a corrupted row never breaks the read path.
type Targets []Target

// Clone returns a deep copy of the targets.
func (t Targets) Clone() Targets {
	if t == nil {
		return Targets{}
	}

	c := make(Targets, len(t))
	copy(c, t)
	return c
}

// Total returns the sum of all percentages.
func (t Targets) Total() decimal.Decimal {
	total := decimal.Zero
	for _, target := range t {
		total = total.Add(decimal.NewFromFloat(target.Percent))
	}
	return total
}

// Balanced reports if the percentages add up to exactly 100 after rounding
// to two decimal places.
func (t Targets) Balanced() bool {
	return t.Total().Round(2).Equal(decimal.NewFromInt(100))
}

// ParseTargets parses a stored targets document.
func ParseTargets(raw []byte) (Targets, error) {
	var t Targets
	if err := json.Unmarshal(raw, &t); err != nil {
		return Targets{}, fmt.Errorf("malformed targets document: %w", err)
	}
	if t == nil {
		t = Targets{}
	}
	return t, nil
}

// Scan reads the targets from the database.
func (t *Targets) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case nil:
		*t = Targets{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into targets", value)
	}

	parsed, err := ParseTargets(raw)
	if err != nil {
		log.Error().Err(err).Str("column", "targets").Msg("malformed plan targets in the database, reading them as empty")
	}
	*t = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (t Targets) Value() (driver.Value, error) {
	if t == nil {
		t = Targets{}
	}

	j, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(j), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Targets) GormDataType() string {
	return "text"
}

// Plan is a named distribution plan. Exactly one plan is active at a time,
// the active plan is tracked by a separate pointer, not on the plan.
type Plan struct {
	DefaultModel
	Name     string  `json:"name" example:"Default plan"` // Name of the plan
	Currency string  `json:"currency" example:"SGD"`      // ISO 4217 currency code
	Targets  Targets `json:"targets"`                     // Category targets in canonical category order

	IsActive     bool `json:"isActive" gorm:"-"`     // Is this the active plan?
	HasSnapshots bool `json:"hasSnapshots" gorm:"-"` // Does any period snapshot reference this plan? Plans with snapshots cannot be deleted.
}

func (p *Plan) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	return nil
}

// Balanced reports if the plan's percentages add up to 100.
func (p Plan) Balanced() bool {
	return p.Targets.Balanced()
}
