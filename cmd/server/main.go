// Package main is the entry point for the travel search MCP server.
//
// The server exposes flight, hotel, and vacation rental search tools
// plus a static airport reference resource over the Model Context
// Protocol, on either the stdio transport (default) or a streamable
// HTTP transport.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	mcpserver "github.com/travel-search/travel-search-mcp/internal/adapter/mcp"
	"github.com/travel-search/travel-search-mcp/internal/adapter/provider/serpapi"
	"github.com/travel-search/travel-search-mcp/internal/config"
	"github.com/travel-search/travel-search-mcp/internal/infrastructure/logger"
	"github.com/travel-search/travel-search-mcp/internal/infrastructure/timeutil"
	"github.com/travel-search/travel-search-mcp/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Str("transport", cfg.Server.Transport).
		Msg("Configuration loaded")

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-search-mcp",
	})

	// Wire provider -> use case -> MCP server
	provider := serpapi.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Timeout)
	travelUseCase := usecase.NewTravelSearchUseCase(provider, timeutil.NewRealClock(), appLog)
	srv := mcpserver.NewServer(travelUseCase, appLog)

	switch cfg.Server.Transport {
	case config.TransportHTTP:
		runHTTP(cfg, srv)
	default:
		runStdio(srv)
	}
}

// setupLogger configures the global zerolog logger based on config.
// All logs go to stderr: on the stdio transport, stdout carries the
// protocol stream.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	log.Logger = log.Output(os.Stderr)
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runStdio serves MCP over stdin/stdout until the client disconnects.
func runStdio(srv *mcpserver.Server) {
	log.Info().Msg("Starting MCP server on stdio")
	if err := srv.ServeStdio(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
	log.Info().Msg("Server stopped")
}

// runHTTP serves MCP over the streamable HTTP transport behind echo,
// with a health endpoint for load balancers.
func runHTTP(cfg *config.Config, srv *mcpserver.Server) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	setupMiddleware(e)

	e.GET("/health", healthCheckHandler)
	e.Any("/mcp", echo.WrapHandler(srv.HTTPHandler()))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting MCP server on HTTP")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupMiddleware configures the echo middleware stack.
func setupMiddleware(e *echo.Echo) {
	// Recovery middleware - recover from panics
	e.Use(middleware.Recover())

	// Request ID middleware
	e.Use(middleware.RequestID())

	// Logger middleware with zerolog integration
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("HTTP request")
			return nil
		},
	}))
}

// healthCheckHandler returns the health status of the service.
func healthCheckHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
