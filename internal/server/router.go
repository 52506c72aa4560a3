package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/calgate/calgate/internal/events"
)

// NewRouter builds the REST router over the shared operation handlers.
func NewRouter(svc *events.Service, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}

	h := &eventHandlers{svc: svc}

	router := mux.NewRouter()
	router.Use(recoveryMiddleware(logger))
	router.Use(loggingMiddleware(logger))

	router.HandleFunc("/health", handleHealth).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/events", h.create).Methods("POST")
	api.HandleFunc("/events", h.list).Methods("GET")
	api.HandleFunc("/events/{eventId}", h.get).Methods("GET")
	api.HandleFunc("/events/{eventId}", h.update).Methods("PUT")
	api.HandleFunc("/events/{eventId}", h.delete).Methods("DELETE")

	router.NotFoundHandler = http.HandlerFunc(handleNotFound)

	return router
}
