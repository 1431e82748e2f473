package store_test

import (
	"time"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLocksSetAndClear() {
	t := suite.T()
	march := types.NewMonth(2025, time.March)

	assert.False(t, suite.locks.IsLocked(march))

	require.Nil(t, suite.locks.SetLocked(march, true))
	assert.True(t, suite.locks.IsLocked(march))
	assert.False(t, suite.locks.IsLocked(types.NewMonth(2025, time.April)))

	require.Nil(t, suite.locks.SetLocked(march, false))
	assert.False(t, suite.locks.IsLocked(march))

	// Unlocking removes the row instead of flagging it
	var count int64
	suite.db.Model(&models.PeriodLock{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func (suite *TestSuiteStandard) TestLocksPresentButFalseIsUnlocked() {
	march := types.NewMonth(2025, time.March)
	require.Nil(suite.T(), suite.db.Create(&models.PeriodLock{Month: march, Locked: false}).Error)

	assert.False(suite.T(), suite.locks.IsLocked(march))
	assert.Empty(suite.T(), suite.locks.Locked())
}

func (suite *TestSuiteStandard) TestLocksNotifyOnEveryWrite() {
	fn, calls := counter()
	unsubscribe := suite.locks.Subscribe(fn)

	march := types.NewMonth(2025, time.March)
	_ = suite.locks.SetLocked(march, true)
	_ = suite.locks.SetLocked(march, true)
	_ = suite.locks.SetLocked(types.NewMonth(2025, time.April), false)
	assert.Equal(suite.T(), 3, calls(), "no-op writes must notify too")

	unsubscribe()
	_ = suite.locks.SetLocked(march, false)
	assert.Equal(suite.T(), 3, calls())
}

func (suite *TestSuiteStandard) TestLocksListSorted() {
	for _, m := range []time.Month{time.May, time.January, time.March} {
		require.Nil(suite.T(), suite.locks.SetLocked(types.NewMonth(2025, m), true))
	}

	var got []string
	for _, m := range suite.locks.Locked() {
		got = append(got, m.String())
	}
	assert.Equal(suite.T(), []string{"2025-01", "2025-03", "2025-05"}, got)
}

func (suite *TestSuiteStandard) TestLocksMalformedStateIsEmpty() {
	require.Nil(suite.T(), suite.db.Exec("INSERT INTO period_locks (month, locked) VALUES ('garbage', true)").Error)

	assert.Empty(suite.T(), suite.locks.Locked())
	assert.False(suite.T(), suite.locks.IsLocked(types.NewMonth(2025, time.March)))
}

func (suite *TestSuiteStandard) TestLocksWriteFailureStillNotifies() {
	fn, calls := counter()
	suite.locks.Subscribe(fn)

	suite.CloseDB()

	march := types.NewMonth(2025, time.March)
	err := suite.locks.SetLocked(march, true)
	assert.NotNil(suite.T(), err)
	assert.Equal(suite.T(), 1, calls())
	assert.False(suite.T(), suite.locks.IsLocked(march))
}
