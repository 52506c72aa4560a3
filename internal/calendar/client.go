package calendar

import (
	"context"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// Client wraps an authenticated Google Calendar service. Each method maps
// to exactly one provider call; no retries, no added timeouts.
type Client struct {
	svc *calendar.Service
}

// NewClient wraps the given calendar service.
func NewClient(svc *calendar.Service) *Client {
	return &Client{svc: svc}
}

// CreateEvent inserts a new event. Attendees, when present, are notified.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, input EventInput) (*Event, error) {
	timeZone := input.TimeZone
	if timeZone == "" {
		timeZone = DefaultTimeZone
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Start:       toEventDateTime(input.Start, timeZone),
		End:         toEventDateTime(input.End, timeZone),
	}

	for _, email := range input.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := c.svc.Events.Insert(calendarID, event).
		SendUpdates(notifyMode(input.Attendees)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return toEvent(created), nil
}

// GetEvent retrieves a specific event by ID.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return toEvent(event), nil
}

// ListEvents lists events in a time window, with recurring instances
// expanded and ordered by start time.
func (c *Client) ListEvents(ctx context.Context, calendarID string, query ListQuery) ([]EventSummary, error) {
	call := c.svc.Events.List(calendarID).
		TimeMin(query.TimeMin.Format(time.RFC3339)).
		TimeMax(query.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(query.MaxResults).
		Context(ctx)

	if query.Query != "" {
		call = call.Q(query.Query)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	summaries := make([]EventSummary, 0, len(events.Items))
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}
	return summaries, nil
}

// UpdateEvent reads the current event, merges the caller-supplied fields
// over it and writes the result back. Fields omitted by the caller are left
// untouched.
func (c *Client) UpdateEvent(ctx context.Context, calendarID, eventID string, patch EventPatch) (*Event, error) {
	existing, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get existing event: %w", err)
	}

	merged := mergeEvent(existing, patch)

	updated, err := c.svc.Events.Update(calendarID, eventID, merged).
		SendUpdates(notifyMode(patch.Attendees)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return toEvent(updated), nil
}

// DeleteEvent deletes an event, notifying all attendees. Existence is
// pre-checked by the operation handler, not here.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.svc.Events.Delete(calendarID, eventID).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
