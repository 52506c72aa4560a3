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

	"github.com/spf13/cobra"

	"github.com/calgate/calgate/internal/logging"
	"github.com/calgate/calgate/internal/server"
)

func newRestCmd() *cobra.Command {
	var (
		addr           string
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "rest",
		Short: "Start the REST API server",
		Long: `Start the REST API server exposing the calendar event operations
under /api/events, plus a /health endpoint.

The listen address defaults to HOST:PORT from the environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRest(addr, metricsEnabled, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default HOST:PORT from the environment)")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runRest(addr string, metricsEnabled bool, metricsAddr string) error {
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, logger, svc := bootstrap()
	if addr == "" {
		addr = cfg.ListenAddr()
	}
	if metricsAddr == "" {
		metricsAddr = cfg.MetricsAddr
	}

	restServer := server.New(server.NewRouter(svc, logger), addr)

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
		logger.Info("starting REST server", slog.String("addr", addr))
		if err := restServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	case <-shutdownCtx.Done():
	}

	logger.Info("shutting down REST server")
	stopCtx, stop := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer stop()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(stopCtx); err != nil {
			logger.Error("metrics server shutdown failed", logging.Err(err))
		}
	}
	return restServer.Shutdown(stopCtx)
}
