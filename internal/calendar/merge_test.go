package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

func existingEvent() *calendar.Event {
	return &calendar.Event{
		Id:          "evt1",
		Summary:     "Weekly sync",
		Description: "Agenda in doc",
		Location:    "Room 4",
		Start: &calendar.EventDateTime{
			DateTime: "2025-01-01T10:00:00+01:00",
			TimeZone: "Europe/Berlin",
		},
		End: &calendar.EventDateTime{
			DateTime: "2025-01-01T11:00:00+01:00",
			TimeZone: "Europe/Berlin",
		},
		Attendees: []*calendar.EventAttendee{
			{Email: "a@example.com"},
			{Email: "b@example.com"},
		},
	}
}

func TestMergeEventSummaryOnlyLeavesEverythingElse(t *testing.T) {
	merged := mergeEvent(existingEvent(), EventPatch{Summary: "Renamed"})

	assert.Equal(t, "Renamed", merged.Summary)
	assert.Equal(t, "Agenda in doc", merged.Description)
	assert.Equal(t, "Room 4", merged.Location)
	assert.Equal(t, "2025-01-01T10:00:00+01:00", merged.Start.DateTime)
	assert.Equal(t, "2025-01-01T11:00:00+01:00", merged.End.DateTime)
	assert.Len(t, merged.Attendees, 2)
}

func TestMergeEventKeepsCurrentTimeZoneForNewTimes(t *testing.T) {
	newStart, err := time.Parse(time.RFC3339, "2025-02-01T14:00:00+01:00")
	require.NoError(t, err)

	merged := mergeEvent(existingEvent(), EventPatch{
		Start: &EventStamp{Time: newStart},
	})

	assert.Equal(t, "Europe/Berlin", merged.Start.TimeZone)
	assert.Equal(t, newStart.Format(time.RFC3339), merged.Start.DateTime)
	// End is untouched.
	assert.Equal(t, "2025-01-01T11:00:00+01:00", merged.End.DateTime)
}

func TestMergeEventPatchTimeZoneWins(t *testing.T) {
	newStart, err := time.Parse(time.RFC3339, "2025-02-01T14:00:00Z")
	require.NoError(t, err)

	merged := mergeEvent(existingEvent(), EventPatch{
		Start:    &EventStamp{Time: newStart},
		TimeZone: "America/New_York",
	})

	assert.Equal(t, "America/New_York", merged.Start.TimeZone)
}

func TestMergeEventReplacesAttendeesWhenSupplied(t *testing.T) {
	merged := mergeEvent(existingEvent(), EventPatch{
		Attendees: []string{"c@example.com"},
	})

	require.Len(t, merged.Attendees, 1)
	assert.Equal(t, "c@example.com", merged.Attendees[0].Email)
}

func TestMergeEventAllDayPatch(t *testing.T) {
	day, err := time.Parse(DateOnlyFormat, "2025-03-10")
	require.NoError(t, err)

	merged := mergeEvent(existingEvent(), EventPatch{
		Start: &EventStamp{Time: day, DateOnly: true},
		End:   &EventStamp{Time: day.AddDate(0, 0, 1), DateOnly: true},
	})

	assert.Equal(t, "2025-03-10", merged.Start.Date)
	assert.Empty(t, merged.Start.DateTime)
	assert.Equal(t, "2025-03-11", merged.End.Date)
}

func TestMergeTimeZoneFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimeZone, mergeTimeZone(nil, ""))
	assert.Equal(t, DefaultTimeZone, mergeTimeZone(&calendar.EventDateTime{}, ""))
	assert.Equal(t, "Asia/Tokyo", mergeTimeZone(&calendar.EventDateTime{TimeZone: "Asia/Tokyo"}, ""))
	assert.Equal(t, "UTC", mergeTimeZone(&calendar.EventDateTime{TimeZone: "Asia/Tokyo"}, "UTC"))
}
