// Package server provides the REST front end for the calendar gateway and
// the dedicated Prometheus metrics server.
//
// The REST router exposes the five event operations under /api/events plus
// a /health endpoint. Failures are normalized and echoed to the client as
// JSON carrying kind, message and detail; the HTTP status is derived from
// the kind (401 authentication, 404 not-found, 400 otherwise). Panics are
// recovered and answered with a generic 500, never the stack.
//
// The metrics server runs on its own port so operational metrics are never
// exposed on the API listener.
package server
