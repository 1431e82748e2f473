// Package metrics defines the Prometheus metrics of the backend.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allotment_requests_total",
			Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
		},
		[]string{"code", "method", "url"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "allotment_request_duration_seconds",
			Help: "The HTTP request latencies in seconds.",
		},
		[]string{"code", "method", "url"},
	)

	PeriodOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allotment_period_operations_total",
			Help: "Lock, unlock and snapshot regeneration calls, partitioned by operation and result.",
		},
		[]string{"operation", "result"},
	)

	RollbackFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "allotment_snapshot_rollback_failures_total",
			Help: "Snapshots that could not be removed after the lock for their period failed to persist.",
		},
	)
)

var collectors = []prometheus.Collector{
	RequestCount,
	RequestDuration,
	PeriodOperations,
	RollbackFailures,
}

// Register registers all metrics with the registerer.
func Register(r prometheus.Registerer) error {
	for _, c := range collectors {
		if err := r.Register(c); err != nil {
			return fmt.Errorf("could not register %T with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all metrics.
//
// This is needed to cleanly exit.
func Unregister(r prometheus.Registerer) bool {
	ok := true
	for _, c := range collectors {
		if !r.Unregister(c) {
			ok = false
		}
	}

	return ok
}
