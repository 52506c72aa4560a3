package calendar_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calgate/calgate/internal/events"
)

// RegisterEventTools registers the five calendar event tools with the MCP
// server, all delegating to the shared operation handlers.
func RegisterEventTools(s *mcpserver.MCPServer, svc *events.Service) error {
	createEventTool := mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create a new calendar event"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (defaults to the configured calendar, or 'primary')"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC3339, e.g. '2025-01-15T14:00:00Z') or whole-day date (YYYY-MM-DD)"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC3339) or whole-day date (YYYY-MM-DD)"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone (e.g. 'America/New_York'). Defaults to UTC."),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
	)

	s.AddTool(createEventTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateEvent(ctx, request, svc)
	})

	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get details of a specific calendar event"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (defaults to the configured calendar, or 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to retrieve"),
		),
	)

	s.AddTool(getEventTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetEvent(ctx, request, svc)
	})

	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List/search calendar events within a time range"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (defaults to the configured calendar, or 'primary')"),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start of the range (RFC3339, e.g. '2025-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End of the range (RFC3339, e.g. '2025-01-31T23:59:59Z')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of events to return (default 50)"),
		),
		mcp.WithString("q",
			mcp.Description("Optional free-text filter"),
		),
	)

	s.AddTool(listEventsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListEvents(ctx, request, svc)
	})

	updateEventTool := mcp.NewTool("calendar_update_event",
		mcp.WithDescription("Update an existing calendar event; only supplied fields are changed"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (defaults to the configured calendar, or 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("New event description"),
		),
		mcp.WithString("location",
			mcp.Description("New event location"),
		),
		mcp.WithString("start",
			mcp.Description("New start time (RFC3339) or whole-day date (YYYY-MM-DD)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time (RFC3339) or whole-day date (YYYY-MM-DD)"),
		),
		mcp.WithString("timeZone",
			mcp.Description("New time zone; defaults to the event's current zone"),
		),
		mcp.WithString("attendees",
			mcp.Description("New comma-separated list of attendee email addresses"),
		),
	)

	s.AddTool(updateEventTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateEvent(ctx, request, svc)
	})

	deleteEventTool := mcp.NewTool("calendar_delete_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (defaults to the configured calendar, or 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to delete"),
		),
	)

	s.AddTool(deleteEventTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteEvent(ctx, request, svc)
	})

	return nil
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, svc *events.Service) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	event, err := svc.Create(ctx, events.CreateParams{
		CalendarID:  stringArg(args, "calendarId"),
		Summary:     stringArg(args, "summary"),
		Description: stringArg(args, "description"),
		Location:    stringArg(args, "location"),
		Start:       stringArg(args, "start"),
		End:         stringArg(args, "end"),
		TimeZone:    stringArg(args, "timeZone"),
		Attendees:   attendeesArg(args, "attendees"),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(event), nil
}

func handleGetEvent(ctx context.Context, request mcp.CallToolRequest, svc *events.Service) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	event, err := svc.Get(ctx, events.GetParams{
		CalendarID: stringArg(args, "calendarId"),
		EventID:    stringArg(args, "eventId"),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(event), nil
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, svc *events.Service) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	summaries, err := svc.List(ctx, events.ListParams{
		CalendarID: stringArg(args, "calendarId"),
		TimeMin:    stringArg(args, "timeMin"),
		TimeMax:    stringArg(args, "timeMax"),
		MaxResults: intArg(args, "maxResults"),
		Query:      stringArg(args, "q"),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(summaries), nil
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, svc *events.Service) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	event, err := svc.Update(ctx, events.UpdateParams{
		CalendarID:  stringArg(args, "calendarId"),
		EventID:     stringArg(args, "eventId"),
		Summary:     stringArg(args, "summary"),
		Description: stringArg(args, "description"),
		Location:    stringArg(args, "location"),
		Start:       stringArg(args, "start"),
		End:         stringArg(args, "end"),
		TimeZone:    stringArg(args, "timeZone"),
		Attendees:   attendeesArg(args, "attendees"),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(event), nil
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, svc *events.Service) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	eventID := stringArg(args, "eventId")

	if err := svc.Delete(ctx, events.DeleteParams{
		CalendarID: stringArg(args, "calendarId"),
		EventID:    eventID,
	}); err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully deleted event %s", eventID)), nil
}
