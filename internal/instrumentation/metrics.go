package instrumentation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values for operation metrics.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calgate_operations_total",
			Help: "Total number of calendar operations by operation and status.",
		},
		[]string{"operation", "status"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calgate_operation_duration_seconds",
			Help:    "Duration of calendar operations in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
)

// ObserveOperation records one completed operation. It is meant to be
// deferred at the top of an operation with a named error return:
//
//	func (s *Service) Create(ctx context.Context, ...) (event *Event, err error) {
//	    defer instrumentation.ObserveOperation("events.create", time.Now(), &err)
//	    ...
//	}
func ObserveOperation(operation string, started time.Time, err *error) {
	status := StatusSuccess
	if err != nil && *err != nil {
		status = StatusError
	}
	operationsTotal.WithLabelValues(operation, status).Inc()
	operationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
