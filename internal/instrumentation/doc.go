// Package instrumentation records Prometheus metrics for calendar
// operations. Every operation increments a counter and feeds a duration
// histogram, labeled by operation name and outcome, regardless of which
// front end invoked it.
package instrumentation
