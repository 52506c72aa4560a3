// Package calendar wraps the Google Calendar API for the five event
// operations the gateway exposes.
//
// The Client issues exactly one provider call per method and returns
// provider errors with message context only; normalization into the
// gateway's error taxonomy happens in the operation handlers. The package
// also owns the normalized event projections (Event for single reads and
// writes, EventSummary for the terse list responses) and the pure
// partial-merge function used by update.
package calendar
