package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/calgate/calgate/internal/config"
	"github.com/calgate/calgate/internal/events"
	"github.com/calgate/calgate/internal/google"
	"github.com/calgate/calgate/internal/logging"
	"github.com/calgate/calgate/internal/server"
	"github.com/calgate/calgate/internal/tools/calendar_tools"
)

func newServeCmd() *cobra.Command {
	var (
		transport      string
		httpAddr       string
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server exposing the calendar tools",
		Long: `Start an MCP (Model Context Protocol) server that provides the five
calendar event tools to AI assistants.

Transports:
  - stdio: communicate over stdin/stdout (default, for local assistants)
  - streamable-http: serve MCP over HTTP on --http-addr`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(transport, httpAddr, metricsEnabled, metricsAddr)
		},
	}

	cmd.Flags().StringVarP(&transport, "transport", "t", "stdio", "Transport type (stdio or streamable-http)")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "Address for the streamable-http transport")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port (non-stdio transports only)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// bootstrap loads the environment, configures logging and wires the
// operation handlers. Shared by the serve and rest commands.
func bootstrap() (*config.Config, *slog.Logger, *events.Service) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	resolver := google.NewResolver(cfg, logger)
	svc := events.NewService(resolver, logger)

	return cfg, logger, svc
}

func runServe(transport, httpAddr string, metricsEnabled bool, metricsAddr string) error {
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, logger, svc := bootstrap()
	if metricsAddr == "" {
		metricsAddr = cfg.MetricsAddr
	}

	mcpSrv := mcpserver.NewMCPServer("calgate", version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := calendar_tools.RegisterEventTools(mcpSrv, svc); err != nil {
		return fmt.Errorf("failed to register calendar tools: %w", err)
	}

	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, logger, httpAddr, metricsEnabled, metricsAddr)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, logger *slog.Logger, addr string, metricsEnabled bool, metricsAddr string) error {
	httpSrv := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath("/mcp"),
	)

	var metricsServer *server.MetricsServer
	if metricsEnabled {
		metricsServer = server.NewMetricsServer(metricsAddr)
		go func() {
			if err := metricsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", logging.Err(err))
			}
		}()
	}

	serverDone := make(chan error, 1)
	go func() {
		logger.Info("starting MCP server", slog.String("transport", "streamable-http"), slog.String("addr", addr))
		if err := httpSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
		}
		close(serverDone)
	}()

	select {
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", logging.Err(err))
		}
	}
	return httpSrv.Shutdown(shutdownCtx)
}
