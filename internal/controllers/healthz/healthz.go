package healthz

import (
	"net/http"

	"github.com/allotment/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping() error
}

type Controller struct {
	DB Pinger
}

type HealthError struct {
	Error string `json:"error" example:"sql: database is closed"`
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	HealthError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	if err := co.DB.Ping(); err != nil {
		log.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusInternalServerError, HealthError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
