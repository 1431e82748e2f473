// Package v1 implements the v1 HTTP API.
package v1

import (
	"net/http"

	"github.com/allotment/backend/internal/app"
	"github.com/allotment/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// ContextURL is the gin context key holding the base URL of the API.
const ContextURL = "allotment:url"

type Controller struct {
	App *app.App
}

// RegisterRoutes registers all v1 routes with the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.OPTIONS("", co.Options)

	co.RegisterPeriodRoutes(r.Group("/periods"))
	co.RegisterPlanRoutes(r.Group("/plans"))
	co.RegisterIncomeRoutes(r.Group("/income"))

	r.GET("/plan", co.GetAllTimePlan)
	r.OPTIONS("/plan", co.OptionsGet)
	r.GET("/audit", co.GetAudit)
	r.OPTIONS("/audit", co.OptionsGet)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Periods string `json:"periods" example:"https://example.com/api/v1/periods"` // URL of the Period endpoint
	Plans   string `json:"plans" example:"https://example.com/api/v1/plans"`     // URL of Plan collection endpoint
	Plan    string `json:"plan" example:"https://example.com/api/v1/plan"`       // URL of the all-time plan endpoint
	Income  string `json:"income" example:"https://example.com/api/v1/income"`   // URL of Income collection endpoint
	Audit   string `json:"audit" example:"https://example.com/api/v1/audit"`     // URL of the audit endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(ContextURL)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Periods: url + "/v1/periods",
			Plans:   url + "/v1/plans",
			Plan:    url + "/v1/plan",
			Income:  url + "/v1/income",
			Audit:   url + "/v1/audit",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsGet is the OPTIONS handler for read-only endpoints.
func (co Controller) OptionsGet(c *gin.Context) {
	httputil.OptionsGet(c)
}
