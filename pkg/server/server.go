package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diskspace/pkg/config"
	"diskspace/pkg/diskspace"
	"diskspace/pkg/log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	shutdownTimeout = 10
)

// StatServer exposes capacity queries over HTTP.
type StatServer struct {
	cfg     *config.Config
	echo    *echo.Echo
	version string
	client  *diskspace.Client
}

// NewStatServer creates a server. A nil client uses the platform native layer.
func NewStatServer(cfg *config.Config, version string, client *diskspace.Client) *StatServer {
	if client == nil {
		client = diskspace.NewClient(nil)
	}

	return &StatServer{
		cfg:     cfg,
		echo:    echo.New(),
		version: version,
		client:  client,
	}
}

// Start serves on the configured address until SIGINT or SIGTERM.
func (srv *StatServer) Start() error {
	srv.setupRoutes()

	go func() {
		log.Info().
			Str("addr", srv.cfg.Listen).
			Str("version", srv.version).
			Str("humanize", string(srv.cfg.Humanize)).
			Dur("query_timeout", srv.cfg.QueryTimeout).
			Msg("Starting diskspace server")

		if err := srv.echo.Start(srv.cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return srv.Shutdown()
}

// Shutdown stops the server, waiting for in-flight requests.
func (srv *StatServer) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout*time.Second)
	defer cancel()

	if err := srv.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (srv *StatServer) setupRoutes() {
	srv.echo.HideBanner = true
	srv.echo.HidePort = true
	srv.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("Request")
			return nil
		},
	}))
	srv.echo.Use(middleware.Recover())

	srv.echo.GET("/health", srv.health)
	srv.echo.GET("/stat", srv.stat)
}
