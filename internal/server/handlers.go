package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/calgate/calgate/internal/calerr"
	"github.com/calgate/calgate/internal/events"
)

// eventHandlers binds the REST routes to the shared operation handlers.
type eventHandlers struct {
	svc *events.Service
}

func (h *eventHandlers) create(w http.ResponseWriter, r *http.Request) {
	var params events.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, calerr.New(calerr.KindValidation, "request body is not valid JSON", nil))
		return
	}

	event, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *eventHandlers) get(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.Get(r.Context(), events.GetParams{
		CalendarID: r.URL.Query().Get("calendarId"),
		EventID:    mux.Vars(r)["eventId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *eventHandlers) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var maxResults int64
	if raw := query.Get("maxResults"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, calerr.New(calerr.KindValidation, "maxResults must be an integer",
				map[string]any{"field": "maxResults", "value": raw}))
			return
		}
		maxResults = parsed
	}

	summaries, err := h.svc.List(r.Context(), events.ListParams{
		CalendarID: query.Get("calendarId"),
		TimeMin:    query.Get("timeMin"),
		TimeMax:    query.Get("timeMax"),
		MaxResults: maxResults,
		Query:      query.Get("q"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *eventHandlers) update(w http.ResponseWriter, r *http.Request) {
	var params events.UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, calerr.New(calerr.KindValidation, "request body is not valid JSON", nil))
		return
	}
	// The path identifies the event; a conflicting body value is ignored.
	params.EventID = mux.Vars(r)["eventId"]

	event, err := h.svc.Update(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *eventHandlers) delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), events.DeleteParams{
		CalendarID: r.URL.Query().Get("calendarId"),
		EventID:    mux.Vars(r)["eventId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "calgate",
	})
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"kind":    "not-found",
		"message": "route not found",
	})
}
