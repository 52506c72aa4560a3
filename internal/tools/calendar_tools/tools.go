package calendar_tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calgate/calgate/internal/calerr"
)

// jsonResult serializes a success payload into a tool result.
func jsonResult(payload any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("failed to serialize result: %w", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult normalizes a failure and returns it as an error-flagged
// payload carrying kind, message and detail.
func errorResult(err error) *mcp.CallToolResult {
	normalized := calerr.Normalize(err)
	data, marshalErr := json.Marshal(normalized)
	if marshalErr != nil {
		return mcp.NewToolResultError(normalized.Error())
	}
	return mcp.NewToolResultError(string(data))
}

// stringArg extracts an optional string argument.
func stringArg(args map[string]any, key string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}

// intArg extracts an optional numeric argument. JSON numbers arrive as
// float64.
func intArg(args map[string]any, key string) int64 {
	switch value := args[key].(type) {
	case float64:
		return int64(value)
	case int64:
		return value
	default:
		return 0
	}
}

// attendeesArg splits a comma-separated attendee list, trimming whitespace
// and dropping empty entries.
func attendeesArg(args map[string]any, key string) []string {
	raw := stringArg(args, key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	attendees := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			attendees = append(attendees, p)
		}
	}
	if len(attendees) == 0 {
		return nil
	}
	return attendees
}
