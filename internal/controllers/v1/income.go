package v1

import (
	"fmt"
	"net/http"

	"github.com/allotment/backend/internal/httputil"
	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/store"
	"github.com/allotment/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// RegisterIncomeRoutes registers the routes for income records with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsIncomeList)
		r.GET("", co.GetIncomeList)
		r.POST("", co.CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", co.OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
		r.PATCH("/:id", co.UpdateIncome)
		r.DELETE("/:id", co.DeleteIncome)
	}
}

// IncomeCreate is the body for income creation. The ID is optional, it is
// used to store a projected instance of recurring income under its ID.
type IncomeCreate struct {
	ID *uuid.UUID `json:"id,omitempty" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	models.IncomeEditable
}

type Income struct {
	models.Income
	Links struct {
		Self   string `json:"self" example:"https://example.com/api/v1/income/65392deb-5e92-4268-b114-297faad6cdce"` // The income record itself
		Period string `json:"period" example:"https://example.com/api/v1/periods/2025-03"`                           // The period the income is dated in
	} `json:"links"`
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                                          // Data for the income record
	Error *string `json:"error" example:"the period is locked, unlock it before changing its records: 2025-03"` // The error, if any occurred
}

type IncomeListResponse struct {
	Data  []Income `json:"data"`                                          // List of income records
	Error *string  `json:"error" example:"the name filter must be a glob"` // The error, if any occurred
}

// IncomeQueryFilter contains the filters for the income list.
type IncomeQueryFilter struct {
	Name  string `form:"name" filterField:"false"`  // Glob pattern the name must match, e.g. "Sal*"
	Month string `form:"month" filterField:"false"` // Only records dated in this period, YYYY-MM
}

func newIncome(c *gin.Context, income models.Income) Income {
	i := Income{Income: income}

	url := c.GetString(ContextURL)
	i.Links.Self = fmt.Sprintf("%s/v1/income/%s", url, income.ID)
	i.Links.Period = fmt.Sprintf("%s/v1/periods/%s", url, income.Month())

	return i
}

func incomeError(c *gin.Context, err error) {
	s := err.Error()
	c.JSON(status(err), IncomeResponse{Error: &s})
}

func (co Controller) incomeID(c *gin.Context) (uuid.UUID, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil || uri.ID.UUID == uuid.Nil {
		incomeError(c, httputil.ErrInvalidUUID)
		return uuid.Nil, false
	}

	return uri.ID.UUID, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/v1/income [options]
func (co Controller) OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/income/{id} [options]
func (co Controller) OptionsIncomeDetail(c *gin.Context) {
	id, ok := co.incomeID(c)
	if !ok {
		return
	}

	if _, ok := co.App.Income.Get(id); !ok {
		incomeError(c, store.ErrIncomeNotFound)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get income
// @Description	Returns the stored income records. Projected instances of recurring income are returned by the period income endpoint.
// @Tags			Income
// @Produce		json
// @Success		200		{object}	IncomeListResponse
// @Failure		400		{object}	IncomeListResponse
// @Param			name	query		string	false	"Filter by name, supports * wildcards"
// @Param			month	query		string	false	"Filter by period in YYYY-MM format"
// @Router			/v1/income [get]
func (co Controller) GetIncomeList(c *gin.Context) {
	var filter IncomeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	var month *types.Month
	if filter.Month != "" {
		m, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), IncomeListResponse{Error: &s})
			return
		}
		month = &m
	}

	data := make([]Income, 0)
	for _, income := range co.App.Income.List() {
		if filter.Name != "" && !glob.Glob(filter.Name, income.Name) {
			continue
		}

		if month != nil && !income.Month().Equal(*month) {
			continue
		}

		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: data})
}

// @Summary		Create income
// @Description	Creates an income record. Records dated in a locked period are rejected.
// @Tags			Income
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		409		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeCreate	true	"Income"
// @Router			/v1/income [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var create IncomeCreate
	if err := httputil.BindData(c, &create); err != nil {
		incomeError(c, err)
		return
	}

	record := models.Income{IncomeEditable: create.IncomeEditable}
	if create.ID != nil {
		record.ID = *create.ID
	}

	income, err := co.App.Income.Add(record)
	if err != nil {
		incomeError(c, err)
		return
	}

	i := newIncome(c, income)
	c.JSON(http.StatusCreated, IncomeResponse{Data: &i})
}

// @Summary		Get income record
// @Description	Returns a specific income record
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/income/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	id, ok := co.incomeID(c)
	if !ok {
		return
	}

	income, ok := co.App.Income.Get(id)
	if !ok {
		incomeError(c, store.ErrIncomeNotFound)
		return
	}

	i := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &i})
}

// @Summary		Update income
// @Description	Updates an income record. Only values to be updated need to be specified. Both the current and the new period must be unlocked.
// @Tags			Income
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		409		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		string					true	"ID formatted as string"
// @Param			income	body		models.IncomeEditable	true	"Income"
// @Router			/v1/income/{id} [patch]
func (co Controller) UpdateIncome(c *gin.Context) {
	id, ok := co.incomeID(c)
	if !ok {
		return
	}

	income, ok := co.App.Income.Get(id)
	if !ok {
		incomeError(c, store.ErrIncomeNotFound)
		return
	}

	// Decoding into the stored values only overwrites fields that are sent
	if err := httputil.BindData(c, &income.IncomeEditable); err != nil {
		incomeError(c, err)
		return
	}

	income, err := co.App.Income.Update(income)
	if err != nil {
		incomeError(c, err)
		return
	}

	i := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &i})
}

// @Summary		Delete income
// @Description	Deletes an income record unless its period is locked
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/income/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	id, ok := co.incomeID(c)
	if !ok {
		return
	}

	if err := co.App.Income.Delete(id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
