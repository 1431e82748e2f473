package v1

import (
	"fmt"
	"net/http"

	"github.com/allotment/backend/internal/httputil"
	"github.com/allotment/backend/internal/periods"
	"github.com/allotment/backend/internal/recurrence"
	"github.com/allotment/backend/internal/resolver"
	"github.com/allotment/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterPeriodRoutes registers the routes for periods with
// the RouterGroup that is passed.
func (co Controller) RegisterPeriodRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", co.OptionsGet)
	r.GET("/:month", co.GetPeriod)

	r.OPTIONS("/:month/lock", co.OptionsPeriodLock)
	r.POST("/:month/lock", co.LockPeriod)
	r.DELETE("/:month/lock", co.UnlockPeriod)

	r.OPTIONS("/:month/snapshot", co.OptionsPeriodSnapshot)
	r.POST("/:month/snapshot", co.RegenerateSnapshot)

	r.OPTIONS("/:month/plan", co.OptionsGet)
	r.GET("/:month/plan", co.GetPeriodPlan)

	r.OPTIONS("/:month/income", co.OptionsGet)
	r.GET("/:month/income", co.GetPeriodIncome)
}

type Period struct {
	periods.Status
	NeedsRegeneration bool `json:"needsRegeneration" example:"false"` // The period is locked, but its snapshot is missing
	Links             struct {
		Self     string `json:"self" example:"https://example.com/api/v1/periods/2025-03"`              // The period itself
		Lock     string `json:"lock" example:"https://example.com/api/v1/periods/2025-03/lock"`         // Lock and unlock the period
		Snapshot string `json:"snapshot" example:"https://example.com/api/v1/periods/2025-03/snapshot"` // Regenerate the snapshot
		Plan     string `json:"plan" example:"https://example.com/api/v1/periods/2025-03/plan"`         // The plan governing the period
		Income   string `json:"income" example:"https://example.com/api/v1/periods/2025-03/income"`     // Effective income of the period
	} `json:"links"`
}

func (p *Period) links(c *gin.Context) {
	url := fmt.Sprintf("%s/v1/periods/%s", c.GetString(ContextURL), p.Period)

	p.Links.Self = url
	p.Links.Lock = url + "/lock"
	p.Links.Snapshot = url + "/snapshot"
	p.Links.Plan = url + "/plan"
	p.Links.Income = url + "/income"
}

type PeriodResponse struct {
	Data   *Period `json:"data"`                                                        // Data for the period
	Error  *string `json:"error" example:"the period is locked but its snapshot is missing"` // The error, if any occurred
	Reason *string `json:"reason,omitempty" example:"snapshot_missing_while_locked"`   // Machine readable reason, if an error occurred
}

type PeriodPlanResponse struct {
	Data   *resolver.Resolved `json:"data"`                                                  // The plan governing the period
	Error  *string            `json:"error" example:"there is no active plan to snapshot"`  // The error, if any occurred
	Reason *string            `json:"reason,omitempty" example:"no_active_plan"`            // Machine readable reason, if an error occurred
}

type PeriodIncomeResponse struct {
	Data  []recurrence.Effective `json:"data"`                                                                         // Effective income of the period
	Error *string                `json:"error" example:"the period must be in YYYY-MM format with a month between 01 and 12"` // The error, if any occurred
}

type AuditResponse struct {
	Data periods.Report `json:"data"` // Inconsistencies between locks and snapshots
}

func (co Controller) periodResponse(c *gin.Context, code int, period string) {
	status, err := co.App.Periods.Status(period)
	if err != nil {
		co.periodError(c, err)
		return
	}

	p := Period{
		Status:            status,
		NeedsRegeneration: status.NeedsRegeneration(),
	}
	p.links(c)

	c.JSON(code, PeriodResponse{Data: &p})
}

func (co Controller) periodError(c *gin.Context, err error) {
	e := periodError(err)
	c.JSON(status(err), PeriodResponse{
		Error:  &e.Error,
		Reason: &e.Reason,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Param			month	path	string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month}/lock [options]
func (co Controller) OptionsPeriodLock(c *gin.Context) {
	httputil.OptionsPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Param			month	path	string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month}/snapshot [options]
func (co Controller) OptionsPeriodSnapshot(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get period
// @Description	Returns the lock state of a period and its snapshot, if any
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Param			month	path		string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month} [get]
func (co Controller) GetPeriod(c *gin.Context) {
	co.periodResponse(c, http.StatusOK, c.Param("month"))
}

// @Summary		Lock period
// @Description	Snapshots the active plan for the period and locks it. Locking a locked period with a snapshot succeeds without changes.
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Failure		409		{object}	PeriodResponse
// @Failure		500		{object}	PeriodResponse
// @Param			month	path		string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month}/lock [post]
func (co Controller) LockPeriod(c *gin.Context) {
	if err := co.App.Periods.LockPeriod(c.Param("month")); err != nil {
		co.periodError(c, err)
		return
	}

	co.periodResponse(c, http.StatusOK, c.Param("month"))
}

// @Summary		Unlock period
// @Description	Unlocks the period. The snapshot is kept.
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Failure		500		{object}	PeriodResponse
// @Param			month	path		string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month}/lock [delete]
func (co Controller) UnlockPeriod(c *gin.Context) {
	if err := co.App.Periods.UnlockPeriod(c.Param("month")); err != nil {
		co.periodError(c, err)
		return
	}

	co.periodResponse(c, http.StatusOK, c.Param("month"))
}

// @Summary		Regenerate snapshot
// @Description	Recreates the missing snapshot of a locked period from the active plan. Existing snapshots are never overwritten.
// @Tags			Periods
// @Produce		json
// @Success		201		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Failure		409		{object}	PeriodResponse
// @Failure		500		{object}	PeriodResponse
// @Param			month	path		string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month}/snapshot [post]
func (co Controller) RegenerateSnapshot(c *gin.Context) {
	if err := co.App.Periods.RegenerateSnapshot(c.Param("month")); err != nil {
		co.periodError(c, err)
		return
	}

	co.periodResponse(c, http.StatusCreated, c.Param("month"))
}

// @Summary		Get plan for period
// @Description	Returns the plan governing the period. Locked periods return their snapshot, all other periods the active plan.
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	PeriodPlanResponse
// @Failure		400		{object}	PeriodPlanResponse
// @Failure		404		{object}	PeriodPlanResponse
// @Failure		409		{object}	PeriodPlanResponse
// @Param			month	path		string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month}/plan [get]
func (co Controller) GetPeriodPlan(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		co.planError(c, err)
		return
	}

	resolved, ok := co.App.Resolver.ForPeriod(&month)
	if ok {
		c.JSON(http.StatusOK, PeriodPlanResponse{Data: &resolved})
		return
	}

	// The resolver does not tell a missing snapshot from a missing plan
	if co.App.Locks.IsLocked(month) && !co.App.Periods.HasSnapshot(month.String()) {
		co.planError(c, fmt.Errorf("%w: %s", periods.ErrSnapshotMissingWhileLocked, month))
		return
	}

	co.planNotFound(c)
}

// @Summary		Get all-time plan
// @Description	Returns the active plan. This does not depend on the lock state of any period.
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PeriodPlanResponse
// @Failure		404	{object}	PeriodPlanResponse
// @Router			/v1/plan [get]
func (co Controller) GetAllTimePlan(c *gin.Context) {
	resolved, ok := co.App.Resolver.ForPeriod(nil)
	if !ok {
		co.planNotFound(c)
		return
	}

	c.JSON(http.StatusOK, PeriodPlanResponse{Data: &resolved})
}

func (co Controller) planError(c *gin.Context, err error) {
	e := periodError(err)
	c.JSON(status(err), PeriodPlanResponse{
		Error:  &e.Error,
		Reason: &e.Reason,
	})
}

func (co Controller) planNotFound(c *gin.Context) {
	e := periodError(periods.ErrNoActivePlan)
	c.JSON(http.StatusNotFound, PeriodPlanResponse{
		Error:  &e.Error,
		Reason: &e.Reason,
	})
}

// @Summary		Get income for period
// @Description	Returns the effective income of the period. Unlocked periods include projected instances of recurring income.
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	PeriodIncomeResponse
// @Failure		400		{object}	PeriodIncomeResponse
// @Param			month	path		string	true	"The period in YYYY-MM format"
// @Router			/v1/periods/{month}/income [get]
func (co Controller) GetPeriodIncome(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodIncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PeriodIncomeResponse{
		Data: co.App.Recurrence.EffectiveIncome(month, co.App.Income.List()),
	})
}

// @Summary		Audit periods
// @Description	Lists locked periods without snapshot and snapshots of unlocked periods
// @Tags			Periods
// @Produce		json
// @Success		200	{object}	AuditResponse
// @Router			/v1/audit [get]
func (co Controller) GetAudit(c *gin.Context) {
	c.JSON(http.StatusOK, AuditResponse{Data: co.App.Periods.Audit()})
}
