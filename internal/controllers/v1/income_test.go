package v1_test

import (
	"net/http"

	v1 "github.com/allotment/backend/internal/controllers/v1"
	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/recurrence"
	"github.com/allotment/backend/internal/store"
	"github.com/allotment/backend/internal/test"
	"github.com/allotment/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func monthlySalary() map[string]any {
	return map[string]any{
		"date":           "2025-01-15",
		"name":           "Salary",
		"amount":         "5000",
		"currency":       "SGD",
		"frequency":      "monthly",
		"status":         "active",
		"monthlyPayRule": "dayOfMonth",
	}
}

func (suite *TestSuiteStandard) createIncome(body any, expectedStatus int) v1.Income {
	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/income", body)
	test.AssertHTTPStatus(suite.T(), expectedStatus, &recorder)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if response.Data == nil {
		return v1.Income{}
	}
	return *response.Data
}

func (suite *TestSuiteStandard) periodIncome(period string) []recurrence.Effective {
	recorder := test.Request(suite.T(), suite.engine, http.MethodGet, "http://example.com/v1/periods/"+period+"/income", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.PeriodIncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestIncomeCreate() {
	income := suite.createIncome(monthlySalary(), http.StatusCreated)

	suite.NotEqual(uuid.Nil, income.ID)
	suite.Equal("Salary", income.Name)
	suite.True(decimal.NewFromInt(5000).Equal(income.Amount))
	suite.Equal(types.NewDate(2025, 1, 15), income.Date)
	suite.Equal("http://example.com/v1/income/"+income.ID.String(), income.Links.Self)
	suite.Equal("http://example.com/v1/periods/2025-01", income.Links.Period)
}

func (suite *TestSuiteStandard) TestIncomeCreateWithID() {
	id := uuid.New()
	body := monthlySalary()
	body["id"] = id.String()

	income := suite.createIncome(body, http.StatusCreated)
	suite.Equal(id, income.ID)
}

func (suite *TestSuiteStandard) TestIncomeCreateInvalid() {
	tests := []struct {
		name   string
		change func(map[string]any)
	}{
		{"No name", func(m map[string]any) { delete(m, "name") }},
		{"Zero amount", func(m map[string]any) { m["amount"] = "0" }},
		{"Negative amount", func(m map[string]any) { m["amount"] = "-10" }},
		{"No date", func(m map[string]any) { delete(m, "date") }},
		{"Unknown frequency", func(m map[string]any) { m["frequency"] = "weekly" }},
		{"Pay day out of range", func(m map[string]any) { m["monthlyPayDay"] = 32 }},
		{"Inverted bounds", func(m map[string]any) { m["startDate"] = "2025-06-01"; m["endDate"] = "2025-05-01" }},
		{"Malformed date", func(m map[string]any) { m["date"] = "15.01.2025" }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body := monthlySalary()
			tt.change(body)

			suite.createIncome(body, http.StatusBadRequest)
		})
	}

	suite.Empty(suite.app.Income.List())
}

func (suite *TestSuiteStandard) TestIncomeList() {
	suite.createIncome(monthlySalary(), http.StatusCreated)

	bonus := monthlySalary()
	bonus["name"] = "Bonus"
	bonus["frequency"] = "one-time"
	bonus["date"] = "2025-03-31"
	suite.createIncome(bonus, http.StatusCreated)

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All", "", []string{"Salary", "Bonus"}},
		{"Name glob", "?name=Sal*", []string{"Salary"}},
		{"Name glob no match", "?name=*x*", []string{}},
		{"Month", "?month=2025-03", []string{"Bonus"}},
		{"Name and month", "?name=Sal*&month=2025-03", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.engine, http.MethodGet, "http://example.com/v1/income"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

			var response v1.IncomeListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			names := []string{}
			for _, income := range response.Data {
				names = append(names, income.Name)
			}
			suite.ElementsMatch(tt.names, names)
		})
	}

	recorder := test.Request(suite.T(), suite.engine, http.MethodGet, "http://example.com/v1/income?month=March", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestIncomeGet() {
	income := suite.createIncome(monthlySalary(), http.StatusCreated)

	recorder := test.Request(suite.T(), suite.engine, http.MethodGet, income.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.engine, http.MethodGet, "http://example.com/v1/income/"+uuid.NewString(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
	suite.Contains(recorder.Body.String(), store.ErrIncomeNotFound.Error())

	recorder = test.Request(suite.T(), suite.engine, http.MethodGet, "http://example.com/v1/income/salary", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestIncomeUpdate() {
	income := suite.createIncome(monthlySalary(), http.StatusCreated)

	recorder := test.Request(suite.T(), suite.engine, http.MethodPatch, income.Links.Self, map[string]any{
		"amount": "5500.50",
		"status": "paused",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.True(decimal.RequireFromString("5500.50").Equal(response.Data.Amount))
	suite.Equal(models.Paused, response.Data.Status)
	suite.Equal("Salary", response.Data.Name, "Fields that are not sent must not change")

	recorder = test.Request(suite.T(), suite.engine, http.MethodPatch, income.Links.Self, map[string]any{"amount": "0"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(suite.T(), suite.engine, http.MethodPatch, "http://example.com/v1/income/"+uuid.NewString(), map[string]any{"name": "Nope"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestIncomeDelete() {
	income := suite.createIncome(monthlySalary(), http.StatusCreated)

	recorder := test.Request(suite.T(), suite.engine, http.MethodDelete, income.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.engine, http.MethodDelete, income.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

// TestIncomeLockedPeriod verifies that records dated in a locked period
// cannot be written and that no projections are made for it.
func (suite *TestSuiteStandard) TestIncomeLockedPeriod() {
	suite.createPlan("Household")
	salary := suite.createIncome(monthlySalary(), http.StatusCreated)

	march := suite.periodIncome("2025-03")
	suite.Require().Len(march, 1)
	suite.True(march[0].IsVirtual)
	suite.Equal(types.NewDate(2025, 3, 15), march[0].Date)
	suite.Equal(salary.ID, *march[0].SourceID)
	suite.Equal(recurrence.VirtualID(salary.ID, types.NewMonth(2025, 3)), march[0].ID)

	suite.periodRequest(http.MethodPost, "http://example.com/v1/periods/2025-03/lock", http.StatusOK)
	suite.Empty(suite.periodIncome("2025-03"), "Locked periods only contain stored records")

	bonus := monthlySalary()
	bonus["frequency"] = "one-time"
	bonus["date"] = "2025-03-20"
	suite.createIncome(bonus, http.StatusConflict)

	// Moving a record into the locked period is refused
	recorder := test.Request(suite.T(), suite.engine, http.MethodPatch, salary.Links.Self, map[string]any{"date": "2025-03-01"})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	suite.periodRequest(http.MethodPost, "http://example.com/v1/periods/2025-01/lock", http.StatusOK)

	recorder = test.Request(suite.T(), suite.engine, http.MethodDelete, salary.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	// Unlocking makes the records writable again
	suite.periodRequest(http.MethodDelete, "http://example.com/v1/periods/2025-01/lock", http.StatusOK)

	recorder = test.Request(suite.T(), suite.engine, http.MethodDelete, salary.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

// TestIncomeMaterializeVirtual stores a projected instance under its
// derived ID, which replaces the projection.
func (suite *TestSuiteStandard) TestIncomeMaterializeVirtual() {
	suite.createIncome(monthlySalary(), http.StatusCreated)

	april := suite.periodIncome("2025-04")
	suite.Require().Len(april, 1)
	suite.Require().True(april[0].IsVirtual)

	body := map[string]any{
		"id":        april[0].ID.String(),
		"date":      "2025-04-15",
		"name":      "Salary",
		"amount":    "5200",
		"currency":  "SGD",
		"frequency": "one-time",
		"status":    "active",
	}
	suite.createIncome(body, http.StatusCreated)

	april = suite.periodIncome("2025-04")
	suite.Require().Len(april, 1)
	suite.False(april[0].IsVirtual)
	suite.True(decimal.NewFromInt(5200).Equal(april[0].Amount))
}

// TestIncomeMaterializeVirtualAsReturned stores a projected instance with the
// frequency of its source. Later periods still count the source only once.
func (suite *TestSuiteStandard) TestIncomeMaterializeVirtualAsReturned() {
	suite.createIncome(monthlySalary(), http.StatusCreated)

	april := suite.periodIncome("2025-04")
	suite.Require().Len(april, 1)

	body := monthlySalary()
	body["id"] = april[0].ID.String()
	body["date"] = "2025-04-15"
	suite.createIncome(body, http.StatusCreated)

	// Storing it again is a conflict
	recorder := test.Request(suite.T(), suite.engine, http.MethodPost, "http://example.com/v1/income", body)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	april = suite.periodIncome("2025-04")
	suite.Require().Len(april, 1)
	suite.False(april[0].IsVirtual)

	may := suite.periodIncome("2025-05")
	suite.Require().Len(may, 1)
	suite.True(may[0].IsVirtual)
	suite.True(decimal.NewFromInt(5000).Equal(may[0].Amount))
}
