// Package main provides the entry point for the Semantic Scholar MCP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/helixir/semanticscholar-mcp/internal/config"
	"github.com/helixir/semanticscholar-mcp/internal/credentials"
	"github.com/helixir/semanticscholar-mcp/internal/mcpserver"
	"github.com/helixir/semanticscholar-mcp/internal/observability"
	"github.com/helixir/semanticscholar-mcp/internal/opsserver"
	"github.com/helixir/semanticscholar-mcp/internal/scholar"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Set up structured logging.
	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		AddSource:  cfg.Logging.AddSource,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	logger = logger.With().Str("component", "server").Logger()
	logger.Info().Str("version", version).Msg("semanticscholar-mcp server starting")

	// Set up context with graceful shutdown via OS signals.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Resolve the API key once at startup. An absent key is not fatal:
	// the upstream API serves unauthenticated requests at lower rate limits.
	apiKey := credentials.NewAPIKey(config.APIKeyEnvVar, credentials.NewEnvStore())
	switch key, err := apiKey.Resolve(); {
	case err == nil:
		cfg.SemanticScholar.APIKey = key
	case errors.Is(err, credentials.ErrNotSet):
		logger.Warn().Str("credential", apiKey.Name()).Msg("API key not set, using unauthenticated rate limits")
	default:
		return fmt.Errorf("resolve API key: %w", err)
	}

	// Set up metrics.
	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics("semanticscholar_mcp")
	}

	// Create the Semantic Scholar adapter.
	client, err := scholar.NewClient(scholar.Config{
		BaseURL:   cfg.SemanticScholar.BaseURL,
		APIKey:    cfg.SemanticScholar.APIKey,
		Timeout:   cfg.SemanticScholar.Timeout,
		RateLimit: cfg.SemanticScholar.RateLimit,
		BurstSize: cfg.SemanticScholar.BurstSize,
		UserAgent: cfg.SemanticScholar.UserAgent,
	}, nil, metricsRecorder(metrics))
	if err != nil {
		return fmt.Errorf("create semantic scholar client: %w", err)
	}

	// Create the MCP server and register the tools.
	srv := mcpserver.New(client, logger, metrics, version)
	logger.Info().Strs("tools", srv.Tools()).Msg("tools registered")

	// Start the ops HTTP server in the background.
	opsSrv := opsserver.New(opsserver.Config{
		Address:         cfg.Server.OpsAddress(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		MetricsEnabled:  cfg.Metrics.Enabled,
		MetricsPath:     cfg.Metrics.Path,
	}, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := opsSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("ops server error: %w", err)
		}
	}()

	// Serve MCP over stdio until the client disconnects or we are signalled.
	logger.Info().Msg("serving MCP over stdio")
	runErr := srv.Run(ctx, &mcp.StdioTransport{})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error().Err(runErr).Msg("MCP server error")
	} else {
		runErr = nil
	}

	// Drain any ops server failure that occurred while serving.
	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("ops server failed")
		if runErr == nil {
			runErr = err
		}
	default:
	}

	// Graceful shutdown of the ops server.
	logger.Info().Msg("shutting down semanticscholar-mcp")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := opsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("ops server shutdown error")
	}

	logger.Info().Msg("semanticscholar-mcp shutdown complete")
	return runErr
}

// metricsRecorder adapts an optional Metrics into the adapter's Recorder
// without handing it a typed nil.
func metricsRecorder(m *observability.Metrics) scholar.Recorder {
	if m == nil {
		return nil
	}
	return m
}
