package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/calgate/calgate/internal/calendar"
	"github.com/calgate/calgate/internal/calerr"
	"github.com/calgate/calgate/internal/google"
	"github.com/calgate/calgate/internal/instrumentation"
	"github.com/calgate/calgate/internal/logging"
)

// DefaultMaxResults caps list responses when the caller does not override.
const DefaultMaxResults = 50

// Service exposes the five calendar operations to the front ends. It holds
// no state of its own beyond the injected credential resolver.
type Service struct {
	resolver *google.Resolver
	logger   *slog.Logger
}

// NewService creates a Service over the given resolver.
func NewService(resolver *google.Resolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resolver: resolver, logger: logger}
}

// client obtains the cached authenticated provider client, performing the
// first-time handshake when necessary.
func (s *Service) client(ctx context.Context) (*calendar.Client, error) {
	svc, err := s.resolver.Service(ctx)
	if err != nil {
		return nil, calerr.Normalize(err)
	}
	return calendar.NewClient(svc), nil
}

// Create inserts a new event and returns its full projection.
func (s *Service) Create(ctx context.Context, params CreateParams) (event *calendar.Event, err error) {
	defer instrumentation.ObserveOperation("events.create", time.Now(), &err)

	if params.Summary == "" {
		return nil, calerr.MissingField("summary")
	}
	start, err := parseStamp("start", params.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseStamp("end", params.End)
	if err != nil {
		return nil, err
	}

	calendarID := s.resolver.CalendarID(params.CalendarID)

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	event, err = client.CreateEvent(ctx, calendarID, calendar.EventInput{
		Summary:     params.Summary,
		Description: params.Description,
		Location:    params.Location,
		Start:       start,
		End:         end,
		TimeZone:    params.TimeZone,
		Attendees:   params.Attendees,
	})
	if err != nil {
		s.logger.Error("create event failed", logging.Operation("events.create"), logging.CalendarID(calendarID), logging.Err(err))
		return nil, calerr.Normalize(err)
	}

	s.logger.Info("event created", logging.Operation("events.create"), logging.CalendarID(calendarID), logging.EventID(event.ID))
	return event, nil
}

// Get retrieves a single event by ID.
func (s *Service) Get(ctx context.Context, params GetParams) (event *calendar.Event, err error) {
	defer instrumentation.ObserveOperation("events.get", time.Now(), &err)

	if params.EventID == "" {
		return nil, calerr.MissingField("eventId")
	}

	calendarID := s.resolver.CalendarID(params.CalendarID)

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	event, err = client.GetEvent(ctx, calendarID, params.EventID)
	if err != nil {
		return nil, calerr.Normalize(err)
	}
	return event, nil
}

// List returns the terse projections of events in the given window,
// recurring instances expanded and ordered by start time.
func (s *Service) List(ctx context.Context, params ListParams) (summaries []calendar.EventSummary, err error) {
	defer instrumentation.ObserveOperation("events.list", time.Now(), &err)

	timeMin, err := parseStamp("timeMin", params.TimeMin)
	if err != nil {
		return nil, err
	}
	timeMax, err := parseStamp("timeMax", params.TimeMax)
	if err != nil {
		return nil, err
	}

	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	calendarID := s.resolver.CalendarID(params.CalendarID)

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err = client.ListEvents(ctx, calendarID, calendar.ListQuery{
		TimeMin:    timeMin.Time,
		TimeMax:    timeMax.Time,
		MaxResults: maxResults,
		Query:      params.Query,
	})
	if err != nil {
		return nil, calerr.Normalize(err)
	}

	s.logger.Debug("events listed", logging.Operation("events.list"), logging.CalendarID(calendarID), slog.Int("count", len(summaries)))
	return summaries, nil
}

// Update applies a partial merge of the supplied fields onto the current
// event and returns the updated projection.
func (s *Service) Update(ctx context.Context, params UpdateParams) (event *calendar.Event, err error) {
	defer instrumentation.ObserveOperation("events.update", time.Now(), &err)

	if params.EventID == "" {
		return nil, calerr.MissingField("eventId")
	}

	patch := calendar.EventPatch{
		Summary:     params.Summary,
		Description: params.Description,
		Location:    params.Location,
		TimeZone:    params.TimeZone,
		Attendees:   params.Attendees,
	}

	if params.Start != "" {
		start, err := parseStamp("start", params.Start)
		if err != nil {
			return nil, err
		}
		patch.Start = &start
	}
	if params.End != "" {
		end, err := parseStamp("end", params.End)
		if err != nil {
			return nil, err
		}
		patch.End = &end
	}

	calendarID := s.resolver.CalendarID(params.CalendarID)

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	event, err = client.UpdateEvent(ctx, calendarID, params.EventID, patch)
	if err != nil {
		s.logger.Error("update event failed", logging.Operation("events.update"), logging.CalendarID(calendarID), logging.EventID(params.EventID), logging.Err(err))
		return nil, calerr.Normalize(err)
	}

	s.logger.Info("event updated", logging.Operation("events.update"), logging.CalendarID(calendarID), logging.EventID(event.ID))
	return event, nil
}

// Delete removes an event after confirming it exists. A missing target is
// an explicit not-found error naming the event and calendar.
func (s *Service) Delete(ctx context.Context, params DeleteParams) (err error) {
	defer instrumentation.ObserveOperation("events.delete", time.Now(), &err)

	if params.EventID == "" {
		return calerr.MissingField("eventId")
	}

	calendarID := s.resolver.CalendarID(params.CalendarID)

	client, err := s.client(ctx)
	if err != nil {
		return err
	}

	if _, err := client.GetEvent(ctx, calendarID, params.EventID); err != nil {
		if calerr.IsNotFound(err) {
			return calerr.NotFound(
				fmt.Sprintf("event %s not found in calendar %s", params.EventID, calendarID),
				map[string]any{"eventId": params.EventID, "calendarId": calendarID},
			)
		}
		return calerr.Normalize(err)
	}

	if err := client.DeleteEvent(ctx, calendarID, params.EventID); err != nil {
		s.logger.Error("delete event failed", logging.Operation("events.delete"), logging.CalendarID(calendarID), logging.EventID(params.EventID), logging.Err(err))
		return calerr.Normalize(err)
	}

	s.logger.Info("event deleted", logging.Operation("events.delete"), logging.CalendarID(calendarID), logging.EventID(params.EventID))
	return nil
}

// parseStamp validates a required date-like field: an RFC3339 timestamp or
// a whole-day date. Failures carry the field name and, for malformed
// values, the offending literal.
func parseStamp(field, value string) (calendar.EventStamp, error) {
	if value == "" {
		return calendar.EventStamp{}, calerr.MissingField(field)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return calendar.EventStamp{Time: t}, nil
	}
	if t, err := time.Parse(calendar.DateOnlyFormat, value); err == nil {
		return calendar.EventStamp{Time: t, DateOnly: true}, nil
	}
	return calendar.EventStamp{}, calerr.InvalidDate(field, value)
}
