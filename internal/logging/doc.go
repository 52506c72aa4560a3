// Package logging provides slog setup and shared structured attributes for
// the gateway.
//
// It centralizes logger construction (level from configuration, JSON
// handler on stderr so the MCP stdio transport keeps stdout clean) and
// attribute helpers so field names stay consistent across the codebase.
package logging
