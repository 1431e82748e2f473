package v1_test

import (
	"net/http"

	v1 "github.com/allotment/backend/internal/controllers/v1"
	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/store"
	"github.com/allotment/backend/internal/test"
)

func ptr[T any](v T) *T {
	return &v
}

func balancedTargets() models.Targets {
	return models.Targets{
		{Category: "Living", Percent: 50},
		{Category: "Savings", Percent: 30},
		{Category: "Giving", Percent: 20},
	}
}

func (suite *TestSuiteStandard) createPlan(name string, expectedStatus ...int) v1.Plan {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	targets := balancedTargets()
	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/plans", v1.PlanEditable{
		Name:    &name,
		Targets: &targets,
	})
	test.AssertHTTPStatus(suite.T(), expectedStatus[0], &recorder)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if response.Data == nil {
		return v1.Plan{}
	}
	return *response.Data
}

func (suite *TestSuiteStandard) TestPlansCreate() {
	plan := suite.createPlan("Household")

	suite.Equal("Household", plan.Name)
	suite.Equal("SGD", plan.Currency, "Currency must default to the configured currency")
	suite.True(plan.IsActive, "The first plan must be the active plan")
	suite.True(plan.Balanced)
	suite.False(plan.HasSnapshots)
	suite.Equal("http://example.com/v1/plans/"+plan.ID.String(), plan.Links.Self)

	second := suite.createPlan("Second")
	suite.False(second.IsActive)
}

func (suite *TestSuiteStandard) TestPlansCreateNormalizes() {
	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/plans", v1.PlanEditable{
		Name:     ptr("  Partial  "),
		Currency: ptr("eur"),
		Targets: &models.Targets{
			{Category: "Savings", Percent: 140},
			{Category: "Unknown", Percent: 10},
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Equal("Partial", response.Data.Name)
	suite.Equal("EUR", response.Data.Currency)
	suite.Equal(models.Targets{
		{Category: "Living", Percent: 0},
		{Category: "Savings", Percent: 100},
		{Category: "Giving", Percent: 0},
	}, response.Data.Targets)
	suite.True(response.Data.Balanced)
}

func (suite *TestSuiteStandard) TestPlansCreateBrokenBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ""},
		{"Broken JSON", `{"name": "Unclosed`},
		{"Wrong type", `{"name": 12}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/plans", tt.body)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

			var response v1.PlanResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestPlansList() {
	first := suite.createPlan("First")
	second := suite.createPlan("Second")

	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, second.Links.Activate, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.engine, http.MethodGet, "http://example.com/v1/plans", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.PlanListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Equal(second.ID, response.Data[0].ID, "The active plan must be listed first")
	suite.True(response.Data[0].IsActive)
	suite.Equal(first.ID, response.Data[1].ID)
	suite.False(response.Data[1].IsActive)
}

func (suite *TestSuiteStandard) TestPlansListEmpty() {
	recorder := test.Request(suite.T(), suite.engine, http.MethodGet, "http://example.com/v1/plans", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	suite.JSONEq(`{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestPlansGet() {
	plan := suite.createPlan("Get me")

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Existing", plan.Links.Self, http.StatusOK},
		{"Unknown ID", "http://example.com/v1/plans/2a1c5f84-6d0f-4d2b-9b4c-6f8a2ee0c7a1", http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/plans/12", http.StatusBadRequest},
		{"Nil ID", "http://example.com/v1/plans/00000000-0000-0000-0000-000000000000", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.engine, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(suite.T(), tt.status, &recorder)

			var response v1.PlanResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			if tt.status == http.StatusOK {
				suite.Equal(plan.ID, response.Data.ID)
				return
			}
			suite.NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestPlansUpdate() {
	plan := suite.createPlan("Before")

	recorder := test.Request(suite.T(), suite.engine, http.MethodPatch, plan.Links.Self, map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Equal("After", response.Data.Name)
	suite.Equal(plan.Targets, response.Data.Targets, "Fields that are not sent must not change")
	suite.Equal(plan.Currency, response.Data.Currency)
	suite.True(response.Data.IsActive)

	recorder = test.Request(suite.T(), suite.engine, http.MethodPatch, plan.Links.Self, map[string]any{
		"targets": []map[string]any{{"category": "Living", "percent": 60}},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.False(response.Data.Balanced, "Unbalanced plans are stored")
	suite.Equal(60.0, response.Data.Targets[0].Percent)
	suite.Equal(0.0, response.Data.Targets[1].Percent)
}

func (suite *TestSuiteStandard) TestPlansUpdateFails() {
	plan := suite.createPlan("Update")

	recorder := test.Request(suite.T(), suite.engine, http.MethodPatch, "http://example.com/v1/plans/2a1c5f84-6d0f-4d2b-9b4c-6f8a2ee0c7a1", map[string]any{"name": "Nope"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	recorder = test.Request(suite.T(), suite.engine, http.MethodPatch, plan.Links.Self, `{"name": [}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestPlansActivate() {
	suite.createPlan("First")
	second := suite.createPlan("Second")

	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, second.Links.Activate, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.True(response.Data.IsActive)

	recorder = test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/plans/2a1c5f84-6d0f-4d2b-9b4c-6f8a2ee0c7a1/activate", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestPlansDuplicate() {
	plan := suite.createPlan("Original")

	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, plan.Links.Duplicate, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.NotEqual(plan.ID, response.Data.ID)
	suite.Equal("Original (Copy)", response.Data.Name)
	suite.Equal(plan.Targets, response.Data.Targets)
	suite.False(response.Data.IsActive)

	recorder = test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/plans/2a1c5f84-6d0f-4d2b-9b4c-6f8a2ee0c7a1/duplicate", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestPlansDelete() {
	first := suite.createPlan("First")
	second := suite.createPlan("Second")

	recorder := test.Request(suite.T(), suite.engine, http.MethodDelete, first.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	active, ok := suite.app.Plans.Active()
	suite.Require().True(ok)
	suite.Equal(second.ID, active.ID, "Deleting the active plan promotes another one")

	recorder = test.Request(suite.T(), suite.engine, http.MethodDelete, first.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
	suite.Contains(recorder.Body.String(), store.ErrPlanNotFound.Error())
}

func (suite *TestSuiteStandard) TestPlansDeleteWithSnapshots() {
	plan := suite.createPlan("Locked in")

	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/periods/2025-03/lock", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.engine, http.MethodGet, plan.Links.Self, nil)
	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.True(response.Data.HasSnapshots)

	recorder = test.Request(suite.T(), suite.engine, http.MethodDelete, plan.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	// Unlocking keeps the snapshot, so the plan is still protected
	recorder = test.Request(suite.T(), suite.engine, http.MethodDelete, "http://example.com/v1/periods/2025-03/lock", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.engine, http.MethodDelete, plan.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)
}

func (suite *TestSuiteStandard) TestPlansDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/plans", v1.PlanEditable{Name: ptr("Closed")})
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Contains(*response.Error, models.ErrGeneral.Error())
}
