package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

func TestToEventProjection(t *testing.T) {
	event := &calendar.Event{
		Id:          "evt42",
		Summary:     "Planning",
		Description: "Q1 planning",
		Location:    "HQ",
		Status:      "confirmed",
		HtmlLink:    "https://calendar.google.com/event?eid=evt42",
		Created:     "2025-01-01T09:00:00.000Z",
		Updated:     "2025-01-02T09:00:00.000Z",
		Start: &calendar.EventDateTime{
			DateTime: "2025-01-15T10:00:00+01:00",
			TimeZone: "Europe/Berlin",
		},
		End: &calendar.EventDateTime{
			DateTime: "2025-01-15T11:00:00+01:00",
			TimeZone: "Europe/Berlin",
		},
		Attendees: []*calendar.EventAttendee{
			{Email: "a@example.com", DisplayName: "Alex", ResponseStatus: "accepted"},
			{Email: "b@example.com", ResponseStatus: "needsAction"},
		},
	}

	projected := toEvent(event)
	require.NotNil(t, projected)

	assert.Equal(t, "evt42", projected.ID)
	assert.Equal(t, "Planning", projected.Summary)
	assert.Equal(t, "Q1 planning", projected.Description)
	assert.Equal(t, "HQ", projected.Location)
	assert.Equal(t, "confirmed", projected.Status)
	assert.Equal(t, "https://calendar.google.com/event?eid=evt42", projected.HTMLLink)
	assert.Equal(t, "2025-01-01T09:00:00.000Z", projected.Created)

	require.NotNil(t, projected.Start)
	assert.Equal(t, "2025-01-15T10:00:00+01:00", projected.Start.DateTime)
	assert.Equal(t, "Europe/Berlin", projected.Start.TimeZone)

	require.Len(t, projected.Attendees, 2)
	assert.Equal(t, "Alex", projected.Attendees[0].DisplayName)
	assert.Equal(t, "needsAction", projected.Attendees[1].ResponseStatus)
}

func TestToEventNil(t *testing.T) {
	assert.Nil(t, toEvent(nil))
}

func TestToEventAllDay(t *testing.T) {
	event := &calendar.Event{
		Id:    "evt7",
		Start: &calendar.EventDateTime{Date: "2025-03-10"},
		End:   &calendar.EventDateTime{Date: "2025-03-11"},
	}

	projected := toEvent(event)
	require.NotNil(t, projected)
	assert.Equal(t, "2025-03-10", projected.Start.Date)
	assert.Empty(t, projected.Start.DateTime)
}

func TestToEventSummaryOmitsVerboseFields(t *testing.T) {
	event := &calendar.Event{
		Id:          "evt9",
		Summary:     "Standup",
		Description: "should not appear in the list projection",
		Location:    "nowhere",
		Status:      "confirmed",
		HtmlLink:    "https://calendar.google.com/event?eid=evt9",
		Start:       &calendar.EventDateTime{DateTime: "2025-01-15T10:00:00Z"},
		End:         &calendar.EventDateTime{DateTime: "2025-01-15T10:15:00Z"},
		Attendees:   []*calendar.EventAttendee{{Email: "a@example.com"}},
	}

	summary := toEventSummary(event)
	assert.Equal(t, "evt9", summary.ID)
	assert.Equal(t, "Standup", summary.Summary)
	assert.Equal(t, "confirmed", summary.Status)
	assert.Equal(t, "2025-01-15T10:00:00Z", summary.Start.DateTime)
}

func TestToEventSummaryNil(t *testing.T) {
	assert.Equal(t, EventSummary{}, toEventSummary(nil))
}

func TestToEventDateTime(t *testing.T) {
	stamp, err := time.Parse(time.RFC3339, "2025-01-15T10:00:00+01:00")
	require.NoError(t, err)

	timed := toEventDateTime(EventStamp{Time: stamp}, "Europe/Berlin")
	assert.Equal(t, "2025-01-15T10:00:00+01:00", timed.DateTime)
	assert.Equal(t, "Europe/Berlin", timed.TimeZone)
	assert.Empty(t, timed.Date)

	allDay := toEventDateTime(EventStamp{Time: stamp, DateOnly: true}, "Europe/Berlin")
	assert.Equal(t, "2025-01-15", allDay.Date)
	assert.Empty(t, allDay.DateTime)
	assert.Empty(t, allDay.TimeZone)
}

func TestNotifyMode(t *testing.T) {
	assert.Equal(t, "all", notifyMode([]string{"a@example.com"}))
	assert.Equal(t, "none", notifyMode(nil))
	assert.Equal(t, "none", notifyMode([]string{}))
}
