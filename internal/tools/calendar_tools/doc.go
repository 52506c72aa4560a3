// Package calendar_tools registers the five calendar event tools on the
// MCP server and translates tool invocations into operation-handler calls.
//
// Success payloads are the JSON-serialized event projections; failures are
// returned as error-flagged results carrying the normalized kind, message
// and detail so the calling model can branch on them.
package calendar_tools
