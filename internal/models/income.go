package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/allotment/backend/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum Frequency
type Frequency string

const (
	OneTime Frequency = "one-time"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// swagger:enum IncomeStatus
type IncomeStatus string

const (
	Active IncomeStatus = "active"
	Paused IncomeStatus = "paused"
)

// swagger:enum PayRule
type PayRule string

const (
	DayOfMonth PayRule = "dayOfMonth"
	EndOfMonth PayRule = "endOfMonth"
)

var (
	ErrIncomeAmountNotPositive = errors.New("income amounts must be larger than zero")
	ErrIncomeDateMissing       = errors.New("income records must have a date")
	ErrIncomeBoundsInverted    = errors.New("the end date of a recurring income must not be before its start date")
	ErrIncomeFieldInvalid      = errors.New("income field is not valid")
)

var validate = validator.New()

// IncomeEditable contains the fields of an income record that can be set by users.
type IncomeEditable struct {
	// Date of the income. For recurring income, this is the first occurrence.
	Date types.Date `json:"date" example:"2025-03-15"`

	Name     string          `json:"name" validate:"required" example:"Salary"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"5000"`
	Currency string          `json:"currency" validate:"required,len=3" example:"SGD"`

	Frequency Frequency    `json:"frequency" validate:"required,oneof=one-time monthly yearly" example:"monthly"`
	Status    IncomeStatus `json:"status" validate:"required,oneof=active paused" example:"active"`

	// How the pay day of monthly income is determined. Defaults to dayOfMonth.
	MonthlyPayRule PayRule `json:"monthlyPayRule,omitempty" validate:"omitempty,oneof=dayOfMonth endOfMonth" example:"dayOfMonth"`

	// Day of the month for the dayOfMonth rule. Defaults to the day of the date.
	MonthlyPayDay int `json:"monthlyPayDay,omitempty" validate:"omitempty,min=1,max=31" example:"15"`

	// Bounds for recurring instances, both inclusive. The start defaults to the date, the end is open if not set.
	StartDate types.Date `json:"startDate" example:"2025-01-01"`
	EndDate   types.Date `json:"endDate" example:"2025-12-31"`
}

// Income is a stored income record.
type Income struct {
	DefaultModel
	IncomeEditable
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))
	return i.Validate()
}

// Validate checks the invariants of an income record.
func (i IncomeEditable) Validate() error {
	if i.Date.IsZero() {
		return ErrIncomeDateMissing
	}

	if !i.Amount.IsPositive() {
		return ErrIncomeAmountNotPositive
	}

	if err := validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s fails the %s rule", ErrIncomeFieldInvalid, verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}

	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && i.EndDate.Before(i.StartDate) {
		return ErrIncomeBoundsInverted
	}

	return nil
}

// Month returns the period the income record is dated in.
func (i IncomeEditable) Month() types.Month {
	return i.Date.Month()
}

// PayDay returns the configured day of the month for the dayOfMonth rule.
func (i IncomeEditable) PayDay() int {
	if i.MonthlyPayDay > 0 {
		return i.MonthlyPayDay
	}
	return i.Date.Day()
}
