package store_test

import (
	"testing"
	"time"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/store"
	"github.com/allotment/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salary(date types.Date) models.Income {
	return models.Income{
		IncomeEditable: models.IncomeEditable{
			Date:           date,
			Name:           "Salary",
			Amount:         decimal.NewFromInt(5000),
			Currency:       "sgd",
			Frequency:      models.Monthly,
			Status:         models.Active,
			MonthlyPayRule: models.DayOfMonth,
			MonthlyPayDay:  15,
		},
	}
}

func (suite *TestSuiteStandard) TestIncomeAdd() {
	record, err := suite.income.Add(salary(types.NewDate(2025, time.January, 15)))
	require.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, record.ID)
	assert.Equal(suite.T(), "SGD", record.Currency)

	list := suite.income.List()
	require.Len(suite.T(), list, 1)
	assert.True(suite.T(), decimal.NewFromInt(5000).Equal(list[0].Amount))
	assert.Equal(suite.T(), "2025-01-15", list[0].Date.String())
}

func (suite *TestSuiteStandard) TestIncomeKeepsGivenID() {
	record := salary(types.NewDate(2025, time.January, 15))
	record.ID = uuid.New()

	stored, err := suite.income.Add(record)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), record.ID, stored.ID)
}

func (suite *TestSuiteStandard) TestIncomeAddExistingID() {
	record := salary(types.NewDate(2025, time.January, 15))
	record.ID = uuid.New()

	_, err := suite.income.Add(record)
	require.Nil(suite.T(), err)

	_, err = suite.income.Add(record)
	assert.ErrorIs(suite.T(), err, store.ErrIncomeExists)
	assert.NotErrorIs(suite.T(), err, models.ErrGeneral)
	assert.Len(suite.T(), suite.income.List(), 1)
}

func (suite *TestSuiteStandard) TestIncomeValidation() {
	tests := []struct {
		name   string
		modify func(*models.Income)
		err    error
	}{
		{"zero amount", func(i *models.Income) { i.Amount = decimal.Zero }, models.ErrIncomeAmountNotPositive},
		{"negative amount", func(i *models.Income) { i.Amount = decimal.NewFromInt(-1) }, models.ErrIncomeAmountNotPositive},
		{"no date", func(i *models.Income) { i.Date = types.Date{} }, models.ErrIncomeDateMissing},
		{"no name", func(i *models.Income) { i.Name = "" }, models.ErrIncomeFieldInvalid},
		{"no currency", func(i *models.Income) { i.Currency = "" }, models.ErrIncomeFieldInvalid},
		{"bad frequency", func(i *models.Income) { i.Frequency = "weekly" }, models.ErrIncomeFieldInvalid},
		{"bad pay day", func(i *models.Income) { i.MonthlyPayDay = 32 }, models.ErrIncomeFieldInvalid},
		{"inverted bounds", func(i *models.Income) {
			i.StartDate = types.NewDate(2025, time.May, 1)
			i.EndDate = types.NewDate(2025, time.April, 1)
		}, models.ErrIncomeBoundsInverted},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			record := salary(types.NewDate(2025, time.January, 15))
			tt.modify(&record)

			_, err := suite.income.Add(record)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.Empty(suite.T(), suite.income.List())
}

func (suite *TestSuiteStandard) TestIncomeGuardAdd() {
	require.Nil(suite.T(), suite.locks.SetLocked(types.NewMonth(2025, time.March), true))

	_, err := suite.income.Add(salary(types.NewDate(2025, time.March, 15)))
	assert.ErrorIs(suite.T(), err, store.ErrPeriodLocked)
	assert.Contains(suite.T(), err.Error(), "2025-03")

	_, err = suite.income.Add(salary(types.NewDate(2025, time.April, 15)))
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestIncomeGuardUpdateChecksBothPeriods() {
	record, err := suite.income.Add(salary(types.NewDate(2025, time.January, 15)))
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), suite.locks.SetLocked(types.NewMonth(2025, time.March), true))

	// Moving into a locked period
	moved := record
	moved.Date = types.NewDate(2025, time.March, 1)
	_, err = suite.income.Update(moved)
	assert.ErrorIs(suite.T(), err, store.ErrPeriodLocked)

	// Moving out of a locked period
	require.Nil(suite.T(), suite.locks.SetLocked(types.NewMonth(2025, time.January), true))
	moved.Date = types.NewDate(2025, time.June, 1)
	_, err = suite.income.Update(moved)
	assert.ErrorIs(suite.T(), err, store.ErrPeriodLocked)

	require.Nil(suite.T(), suite.locks.SetLocked(types.NewMonth(2025, time.January), false))
	updated, err := suite.income.Update(moved)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "2025-06-01", updated.Date.String())

	stored, ok := suite.income.Get(record.ID)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "2025-06-01", stored.Date.String())
}

func (suite *TestSuiteStandard) TestIncomeGuardDelete() {
	record, err := suite.income.Add(salary(types.NewDate(2025, time.March, 15)))
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), suite.locks.SetLocked(types.NewMonth(2025, time.March), true))
	assert.ErrorIs(suite.T(), suite.income.Delete(record.ID), store.ErrPeriodLocked)
	assert.Len(suite.T(), suite.income.List(), 1)

	require.Nil(suite.T(), suite.locks.SetLocked(types.NewMonth(2025, time.March), false))
	assert.Nil(suite.T(), suite.income.Delete(record.ID))
	assert.Empty(suite.T(), suite.income.List())

	assert.ErrorIs(suite.T(), suite.income.Delete(record.ID), store.ErrIncomeNotFound)
}

func (suite *TestSuiteStandard) TestIncomeUpdateUnknown() {
	_, err := suite.income.Update(salary(types.NewDate(2025, time.March, 15)))
	assert.ErrorIs(suite.T(), err, store.ErrIncomeNotFound)
}
