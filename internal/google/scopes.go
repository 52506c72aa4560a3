package google

import calendar "google.golang.org/api/calendar/v3"

// Scopes lists the Google OAuth scopes the gateway requests. Event reads
// and writes both go through the full calendar scope.
var Scopes = []string{
	calendar.CalendarScope,
}
