package calendar_tools

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calgate/calgate/internal/calerr"
)

func TestAttendeesArg(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		expected []string
	}{
		{
			name:     "comma separated with spaces",
			args:     map[string]any{"attendees": "a@example.com, b@example.com"},
			expected: []string{"a@example.com", "b@example.com"},
		},
		{
			name:     "single attendee",
			args:     map[string]any{"attendees": "a@example.com"},
			expected: []string{"a@example.com"},
		},
		{
			name:     "empty string",
			args:     map[string]any{"attendees": ""},
			expected: nil,
		},
		{
			name:     "missing key",
			args:     map[string]any{},
			expected: nil,
		},
		{
			name:     "only commas",
			args:     map[string]any{"attendees": ", ,"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, attendeesArg(tt.args, "attendees"))
		})
	}
}

func TestIntArg(t *testing.T) {
	assert.Equal(t, int64(25), intArg(map[string]any{"maxResults": float64(25)}, "maxResults"))
	assert.Equal(t, int64(0), intArg(map[string]any{}, "maxResults"))
	assert.Equal(t, int64(0), intArg(map[string]any{"maxResults": "25"}, "maxResults"))
}

func TestErrorResultCarriesKindMessageDetail(t *testing.T) {
	result := errorResult(calerr.MissingField("summary"))
	require.True(t, result.IsError)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)

	var payload calerr.Error
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	assert.Equal(t, calerr.KindValidation, payload.Kind)
	assert.Equal(t, "summary is required", payload.Message)
	assert.Equal(t, "summary", payload.Details["field"])
}

func TestJSONResultSerializesPayload(t *testing.T) {
	result := jsonResult(map[string]string{"id": "evt1"})
	require.False(t, result.IsError)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"evt1"}`, text.Text)
}
