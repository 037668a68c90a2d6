package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brasilutil/infohub-server/internal/chat"
	"github.com/brasilutil/infohub-server/internal/config"
	"github.com/brasilutil/infohub-server/internal/proxy"
	transporthttp "github.com/brasilutil/infohub-server/internal/transport/http"
)

// App wires together the chat relay, the proxy services and the
// transport layer.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	registry := chat.NewRegistry()
	hub := chat.NewHub(registry, logger)

	services := proxy.NewServices(proxy.Config{
		ViaCEPBaseURL:      cfg.Upstreams.ViaCEP,
		AwesomeAPIBaseURL:  cfg.Upstreams.AwesomeAPI,
		BrasilAPIBaseURL:   cfg.Upstreams.BrasilAPI,
		OpenWeatherBaseURL: cfg.Upstreams.OpenWeather,
		IBGEBaseURL:        cfg.Upstreams.IBGE,
		OpenWeatherAPIKey:  cfg.OpenWeatherAPIKey,
		Timeout:            cfg.UpstreamTimeout,
	})

	server := transporthttp.NewServer(hub, services, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
