package calendar

import calendar "google.golang.org/api/calendar/v3"

// mergeEvent overlays the caller-supplied patch fields onto the current
// provider event. Empty patch fields leave the current values in place.
// New start/end times keep the current resource's time zone unless the
// patch supplies one.
func mergeEvent(existing *calendar.Event, patch EventPatch) *calendar.Event {
	if patch.Summary != "" {
		existing.Summary = patch.Summary
	}
	if patch.Description != "" {
		existing.Description = patch.Description
	}
	if patch.Location != "" {
		existing.Location = patch.Location
	}

	if patch.Start != nil {
		existing.Start = toEventDateTime(*patch.Start, mergeTimeZone(existing.Start, patch.TimeZone))
	}
	if patch.End != nil {
		existing.End = toEventDateTime(*patch.End, mergeTimeZone(existing.End, patch.TimeZone))
	}

	if len(patch.Attendees) > 0 {
		attendees := make([]*calendar.EventAttendee, 0, len(patch.Attendees))
		for _, email := range patch.Attendees {
			attendees = append(attendees, &calendar.EventAttendee{Email: email})
		}
		existing.Attendees = attendees
	}

	return existing
}

// mergeTimeZone picks the zone for a rewritten boundary: the patch zone if
// supplied, else the current boundary's zone, else the default.
func mergeTimeZone(current *calendar.EventDateTime, patched string) string {
	if patched != "" {
		return patched
	}
	if current != nil && current.TimeZone != "" {
		return current.TimeZone
	}
	return DefaultTimeZone
}
