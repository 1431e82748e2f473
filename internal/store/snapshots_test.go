package store_test

import (
	"time"

	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(month types.Month, planID uuid.UUID) models.PeriodSnapshot {
	return models.PeriodSnapshot{
		Month:    month,
		PlanID:   planID,
		PlanName: "Plan",
		Currency: "SGD",
		Targets:  models.Targets{{Category: "Living", Percent: 50}, {Category: "Savings", Percent: 50}},
		LockedAt: time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (suite *TestSuiteStandard) TestSnapshotsSaveGetDelete() {
	t := suite.T()
	march := types.NewMonth(2025, time.March)

	_, ok := suite.snapshots.Get(march)
	assert.False(t, ok)

	require.Nil(t, suite.snapshots.Save(snapshot(march, uuid.New())))

	got, ok := suite.snapshots.Get(march)
	require.True(t, ok)
	assert.Equal(t, "2025-03", got.Month.String())
	assert.Equal(t, "SGD", got.Currency)
	assert.Equal(t, models.Targets{{Category: "Living", Percent: 50}, {Category: "Savings", Percent: 50}}, got.Targets)

	require.Nil(t, suite.snapshots.Delete(march))
	_, ok = suite.snapshots.Get(march)
	assert.False(t, ok)

	// Deleting a missing snapshot is fine
	assert.Nil(t, suite.snapshots.Delete(march))
}

func (suite *TestSuiteStandard) TestSnapshotsAtMostOnePerPeriod() {
	march := types.NewMonth(2025, time.March)
	require.Nil(suite.T(), suite.snapshots.Save(snapshot(march, uuid.New())))

	replacement := snapshot(march, uuid.New())
	replacement.Currency = "EUR"
	require.Nil(suite.T(), suite.snapshots.Save(replacement))

	assert.Len(suite.T(), suite.snapshots.List(), 1)
	got, _ := suite.snapshots.Get(march)
	assert.Equal(suite.T(), "EUR", got.Currency)
}

func (suite *TestSuiteStandard) TestSnapshotsListOrdered() {
	for _, m := range []time.Month{time.December, time.February, time.July} {
		require.Nil(suite.T(), suite.snapshots.Save(snapshot(types.NewMonth(2024, m), uuid.New())))
	}
	require.Nil(suite.T(), suite.snapshots.Save(snapshot(types.NewMonth(2023, time.December), uuid.New())))

	var got []string
	for _, s := range suite.snapshots.List() {
		got = append(got, s.Month.String())
	}
	assert.Equal(suite.T(), []string{"2023-12", "2024-02", "2024-07", "2024-12"}, got)
}

func (suite *TestSuiteStandard) TestSnapshotsReferencesPlan() {
	planID := uuid.New()
	assert.False(suite.T(), suite.snapshots.ReferencesPlan(planID))

	require.Nil(suite.T(), suite.snapshots.Save(snapshot(types.NewMonth(2025, time.March), planID)))
	assert.True(suite.T(), suite.snapshots.ReferencesPlan(planID))
	assert.False(suite.T(), suite.snapshots.ReferencesPlan(uuid.New()))
}

func (suite *TestSuiteStandard) TestSnapshotsNotify() {
	fn, calls := counter()
	suite.snapshots.Subscribe(fn)

	march := types.NewMonth(2025, time.March)
	_ = suite.snapshots.Save(snapshot(march, uuid.New()))
	_ = suite.snapshots.Delete(march)
	assert.Equal(suite.T(), 2, calls())
}

func (suite *TestSuiteStandard) TestSnapshotsCorruptTargetsDegrade() {
	march := types.NewMonth(2025, time.March)
	require.Nil(suite.T(), suite.snapshots.Save(snapshot(march, uuid.New())))
	require.Nil(suite.T(), suite.db.Exec("UPDATE period_snapshots SET targets = '{not json' WHERE month = '2025-03'").Error)

	got, ok := suite.snapshots.Get(march)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.Targets{}, got.Targets)
}

func (suite *TestSuiteStandard) TestSnapshotsSaveFailure() {
	suite.CloseDB()
	assert.NotNil(suite.T(), suite.snapshots.Save(snapshot(types.NewMonth(2025, time.March), uuid.New())))
	assert.Empty(suite.T(), suite.snapshots.List())
}
