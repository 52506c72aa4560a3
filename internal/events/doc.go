// Package events implements the five operation handlers bridging the MCP
// and REST front ends to the Google Calendar provider.
//
// Every handler follows the same shape: validate the request parameters,
// resolve the effective calendar identifier, obtain the cached
// authenticated client (which may trigger the first-time handshake), issue
// a single provider call (delete adds one existence pre-check read), then
// project the result or normalize the failure. Handlers never retry and
// never let an opaque provider error escape.
package events
