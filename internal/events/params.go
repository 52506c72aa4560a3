package events

// CreateParams is the create request shape shared by both front ends.
// Start and end accept RFC3339 timestamps or whole-day YYYY-MM-DD dates.
type CreateParams struct {
	CalendarID  string   `json:"calendarId,omitempty"`
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	TimeZone    string   `json:"timeZone,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
}

// GetParams identifies a single event.
type GetParams struct {
	CalendarID string `json:"calendarId,omitempty"`
	EventID    string `json:"eventId"`
}

// ListParams bounds a list call. TimeMin and TimeMax are required; the
// window is passed to the provider as-is, an inverted window is the
// provider's to reject.
type ListParams struct {
	CalendarID string `json:"calendarId,omitempty"`
	TimeMin    string `json:"timeMin"`
	TimeMax    string `json:"timeMax"`
	MaxResults int64  `json:"maxResults,omitempty"`
	Query      string `json:"q,omitempty"`
}

// UpdateParams is the partial-update request shape. Empty fields are left
// untouched on the target event.
type UpdateParams struct {
	CalendarID  string   `json:"calendarId,omitempty"`
	EventID     string   `json:"eventId"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Start       string   `json:"start,omitempty"`
	End         string   `json:"end,omitempty"`
	TimeZone    string   `json:"timeZone,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
}

// DeleteParams identifies the event to delete.
type DeleteParams struct {
	CalendarID string `json:"calendarId,omitempty"`
	EventID    string `json:"eventId"`
}
