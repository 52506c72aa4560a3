package server

import (
	"context"
	"net/http"
	"time"
)

const (
	// DefaultReadTimeout bounds how long reading a request may take.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout bounds how long writing a response may take.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout bounds how long an idle keep-alive connection is held.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// Server wraps the REST http.Server with sane timeouts.
type Server struct {
	srv *http.Server
}

// New creates a REST server listening on addr.
func New(handler http.Handler, addr string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
	}
}

// Start serves requests until the server is shut down. It blocks; run it in
// a goroutine for non-blocking operation.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
