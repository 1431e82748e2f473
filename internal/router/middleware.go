package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	v1 "github.com/allotment/backend/internal/controllers/v1"
	"github.com/allotment/backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

const errMissingToken = "authorization header with a bearer token is required"

// URLMiddleware stores the base URL of the API in the context so that
// handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(v1.ContextURL, strings.TrimSuffix(url.String(), "/"))
		c.Next()
	}
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		metrics.RequestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		metrics.RequestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

// AuthMiddleware rejects requests without a bearer token.
//
// Tokens are issued by the identity provider and are opaque to the backend,
// only their presence is checked.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			c.Header("WWW-Authenticate", `Bearer realm="allotment"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMissingToken})
			return
		}

		c.Next()
	}
}
