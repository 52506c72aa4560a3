package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// DateOnlyFormat is the layout for whole-day event boundaries.
const DateOnlyFormat = "2006-01-02"

// DefaultTimeZone is applied when a timed event is created without an
// explicit time zone.
const DefaultTimeZone = "UTC"

// EventStamp is a parsed event boundary: either a precise timestamp or a
// whole-day date.
type EventStamp struct {
	Time     time.Time
	DateOnly bool
}

// EventInput is the create request shape after validation and parsing.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       EventStamp
	End         EventStamp
	TimeZone    string
	Attendees   []string
}

// EventPatch is the update request shape. Empty strings and nil values mean
// "leave the current value untouched"; update is a partial merge, never a
// full overwrite.
type EventPatch struct {
	Summary     string
	Description string
	Location    string
	Start       *EventStamp
	End         *EventStamp
	TimeZone    string
	Attendees   []string
}

// ListQuery narrows a list call. TimeMin and TimeMax are required by the
// operation handler before the call is made.
type ListQuery struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	Query      string
}

// EventTime is the projected event boundary: DateTime for timed events,
// Date for whole-day events.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Attendee is the projected attendee record.
type Attendee struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"`
}

// Event is the full normalized projection of a provider event, used as the
// response shape for create, get and update.
type Event struct {
	ID          string     `json:"id"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Start       *EventTime `json:"start,omitempty"`
	End         *EventTime `json:"end,omitempty"`
	Status      string     `json:"status,omitempty"`
	HTMLLink    string     `json:"htmlLink,omitempty"`
	Created     string     `json:"created,omitempty"`
	Updated     string     `json:"updated,omitempty"`
	Attendees   []Attendee `json:"attendees,omitempty"`
}

// EventSummary is the intentionally terse list projection: no description,
// location, attendees or bookkeeping timestamps.
type EventSummary struct {
	ID       string     `json:"id"`
	Summary  string     `json:"summary"`
	Start    *EventTime `json:"start,omitempty"`
	End      *EventTime `json:"end,omitempty"`
	Status   string     `json:"status,omitempty"`
	HTMLLink string     `json:"htmlLink,omitempty"`
}

// toEvent projects a provider event into the normalized full shape.
func toEvent(event *calendar.Event) *Event {
	if event == nil {
		return nil
	}

	projected := &Event{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
		HTMLLink:    event.HtmlLink,
		Created:     event.Created,
		Updated:     event.Updated,
		Start:       toEventTime(event.Start),
		End:         toEventTime(event.End),
	}

	for _, att := range event.Attendees {
		projected.Attendees = append(projected.Attendees, Attendee{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
		})
	}

	return projected
}

// toEventSummary projects a provider event into the terse list shape.
func toEventSummary(event *calendar.Event) EventSummary {
	if event == nil {
		return EventSummary{}
	}
	return EventSummary{
		ID:       event.Id,
		Summary:  event.Summary,
		Start:    toEventTime(event.Start),
		End:      toEventTime(event.End),
		Status:   event.Status,
		HTMLLink: event.HtmlLink,
	}
}

func toEventTime(edt *calendar.EventDateTime) *EventTime {
	if edt == nil {
		return nil
	}
	return &EventTime{
		DateTime: edt.DateTime,
		Date:     edt.Date,
		TimeZone: edt.TimeZone,
	}
}

// toEventDateTime builds the provider boundary for a parsed stamp. Timed
// stamps carry the given zone; whole-day stamps carry only the date.
func toEventDateTime(stamp EventStamp, timeZone string) *calendar.EventDateTime {
	if stamp.DateOnly {
		return &calendar.EventDateTime{Date: stamp.Time.Format(DateOnlyFormat)}
	}
	return &calendar.EventDateTime{
		DateTime: stamp.Time.Format(time.RFC3339),
		TimeZone: timeZone,
	}
}

// notifyMode implements the attendee notification rule shared by create,
// update and delete: notify all when attendees are involved, none
// otherwise. Delete always notifies.
func notifyMode(attendees []string) string {
	if len(attendees) > 0 {
		return "all"
	}
	return "none"
}
