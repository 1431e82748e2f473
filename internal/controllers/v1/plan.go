package v1

import (
	"fmt"
	"net/http"

	"github.com/allotment/backend/internal/httputil"
	"github.com/allotment/backend/internal/models"
	"github.com/allotment/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterPlanRoutes registers the routes for plans with
// the RouterGroup that is passed.
func (co Controller) RegisterPlanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsPlanList)
		r.GET("", co.GetPlans)
		r.POST("", co.CreatePlan)
	}

	// Plan with ID
	{
		r.OPTIONS("/:id", co.OptionsPlanDetail)
		r.GET("/:id", co.GetPlan)
		r.PATCH("/:id", co.UpdatePlan)
		r.DELETE("/:id", co.DeletePlan)

		r.OPTIONS("/:id/activate", co.OptionsPlanAction)
		r.POST("/:id/activate", co.ActivatePlan)
		r.OPTIONS("/:id/duplicate", co.OptionsPlanAction)
		r.POST("/:id/duplicate", co.DuplicatePlan)
	}
}

// PlanEditable contains the fields of a plan that can be set. Fields that
// are not sent are not changed on update.
type PlanEditable struct {
	Name     *string         `json:"name" example:"Default plan"`
	Currency *string         `json:"currency" example:"SGD"`
	Targets  *models.Targets `json:"targets"`
}

func (e PlanEditable) apply(plan models.Plan) models.Plan {
	if e.Name != nil {
		plan.Name = *e.Name
	}

	if e.Currency != nil {
		plan.Currency = *e.Currency
	}

	if e.Targets != nil {
		plan.Targets = e.Targets.Clone()
	}

	return plan
}

type Plan struct {
	models.Plan
	Balanced bool `json:"balanced" example:"true"` // Do the percentages add up to 100?
	Links    struct {
		Self      string `json:"self" example:"https://example.com/api/v1/plans/65392deb-5e92-4268-b114-297faad6cdce"`                // The plan itself
		Activate  string `json:"activate" example:"https://example.com/api/v1/plans/65392deb-5e92-4268-b114-297faad6cdce/activate"`   // Make this the active plan
		Duplicate string `json:"duplicate" example:"https://example.com/api/v1/plans/65392deb-5e92-4268-b114-297faad6cdce/duplicate"` // Create a copy of this plan
	} `json:"links"`
}

type PlanResponse struct {
	Data  *Plan   `json:"data"`                                                          // Data for the plan
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PlanListResponse struct {
	Data  []Plan  `json:"data"`                                                             // List of plans, the active plan first
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

func (co Controller) newPlan(c *gin.Context, plan models.Plan) Plan {
	plan.HasSnapshots = co.App.Snapshots.ReferencesPlan(plan.ID)

	p := Plan{
		Plan:     plan,
		Balanced: plan.Balanced(),
	}

	url := fmt.Sprintf("%s/v1/plans/%s", c.GetString(ContextURL), plan.ID)
	p.Links.Self = url
	p.Links.Activate = url + "/activate"
	p.Links.Duplicate = url + "/duplicate"

	return p
}

func (co Controller) planID(c *gin.Context) (uuid.UUID, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil || uri.ID.UUID == uuid.Nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, PlanResponse{Error: &s})
		return uuid.Nil, false
	}

	return uri.ID.UUID, true
}

func planError(c *gin.Context, err error) {
	s := err.Error()
	c.JSON(status(err), PlanResponse{Error: &s})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/v1/plans [options]
func (co Controller) OptionsPlanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/plans/{id} [options]
func (co Controller) OptionsPlanDetail(c *gin.Context) {
	id, ok := co.planID(c)
	if !ok {
		return
	}

	if _, ok := co.App.Plans.Get(id); !ok {
		planError(c, fmt.Errorf("%w: %s", store.ErrPlanNotFound, id))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/plans/{id}/activate [options]
// @Router			/v1/plans/{id}/duplicate [options]
func (co Controller) OptionsPlanAction(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get plans
// @Description	Returns all plans, the active plan first, then by last modification
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanListResponse
// @Router			/v1/plans [get]
func (co Controller) GetPlans(c *gin.Context) {
	data := make([]Plan, 0)
	for _, plan := range co.App.Plans.List() {
		data = append(data, co.newPlan(c, plan))
	}

	c.JSON(http.StatusOK, PlanListResponse{Data: data})
}

// @Summary		Create plan
// @Description	Creates a new plan. Targets are normalized to the configured categories. The first plan becomes the active plan.
// @Tags			Plans
// @Produce		json
// @Success		201		{object}	PlanResponse
// @Failure		400		{object}	PlanResponse
// @Failure		500		{object}	PlanResponse
// @Param			plan	body		PlanEditable	true	"Plan"
// @Router			/v1/plans [post]
func (co Controller) CreatePlan(c *gin.Context) {
	var editable PlanEditable
	if err := httputil.BindData(c, &editable); err != nil {
		planError(c, err)
		return
	}

	plan, err := co.App.Plans.Create(editable.apply(models.Plan{}))
	if err != nil {
		planError(c, err)
		return
	}

	p := co.newPlan(c, plan)
	c.JSON(http.StatusCreated, PlanResponse{Data: &p})
}

// @Summary		Get plan
// @Description	Returns a specific plan
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		404	{object}	PlanResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/plans/{id} [get]
func (co Controller) GetPlan(c *gin.Context) {
	id, ok := co.planID(c)
	if !ok {
		return
	}

	plan, ok := co.App.Plans.Get(id)
	if !ok {
		planError(c, fmt.Errorf("%w: %s", store.ErrPlanNotFound, id))
		return
	}

	p := co.newPlan(c, plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &p})
}

// @Summary		Update plan
// @Description	Updates a plan. Only values to be updated need to be specified. Snapshots taken from the plan are not changed.
// @Tags			Plans
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	PlanResponse
// @Failure		404		{object}	PlanResponse
// @Failure		500		{object}	PlanResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			plan	body		PlanEditable	true	"Plan"
// @Router			/v1/plans/{id} [patch]
func (co Controller) UpdatePlan(c *gin.Context) {
	id, ok := co.planID(c)
	if !ok {
		return
	}

	existing, ok := co.App.Plans.Get(id)
	if !ok {
		planError(c, fmt.Errorf("%w: %s", store.ErrPlanNotFound, id))
		return
	}

	var editable PlanEditable
	if err := httputil.BindData(c, &editable); err != nil {
		planError(c, err)
		return
	}

	plan, err := co.App.Plans.Update(editable.apply(existing))
	if err != nil {
		planError(c, err)
		return
	}

	p := co.newPlan(c, plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &p})
}

// @Summary		Delete plan
// @Description	Deletes a plan. Plans referenced by a snapshot cannot be deleted. If the active plan is deleted, the oldest remaining plan becomes active.
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/plans/{id} [delete]
func (co Controller) DeletePlan(c *gin.Context) {
	id, ok := co.planID(c)
	if !ok {
		return
	}

	if co.App.Snapshots.ReferencesPlan(id) {
		c.JSON(status(errPlanHasSnapshots), httpError{Error: errPlanHasSnapshots.Error()})
		return
	}

	if err := co.App.Plans.Delete(id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Activate plan
// @Description	Makes the plan the active plan
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		404	{object}	PlanResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/plans/{id}/activate [post]
func (co Controller) ActivatePlan(c *gin.Context) {
	id, ok := co.planID(c)
	if !ok {
		return
	}

	if err := co.App.Plans.SetActive(id); err != nil {
		planError(c, err)
		return
	}

	plan, _ := co.App.Plans.Get(id)
	p := co.newPlan(c, plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &p})
}

// @Summary		Duplicate plan
// @Description	Creates an inactive copy of the plan
// @Tags			Plans
// @Produce		json
// @Success		201	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		404	{object}	PlanResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/plans/{id}/duplicate [post]
func (co Controller) DuplicatePlan(c *gin.Context) {
	id, ok := co.planID(c)
	if !ok {
		return
	}

	plan, err := co.App.Plans.Duplicate(id)
	if err != nil {
		planError(c, err)
		return
	}

	p := co.newPlan(c, plan)
	c.JSON(http.StatusCreated, PlanResponse{Data: &p})
}
