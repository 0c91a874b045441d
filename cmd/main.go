package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "aura_display/docs"
	"aura_display/internal/backlight"
	"aura_display/internal/config"
	"aura_display/internal/handlers"
	"aura_display/internal/httpclient"
	"aura_display/internal/logger"
	"aura_display/internal/openmeteo"
	"aura_display/internal/repository"
	"aura_display/internal/repository/db"
	"aura_display/internal/scheduler"
	"aura_display/internal/server"
	"aura_display/internal/service"
	"aura_display/internal/tfl"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
	pruneInterval   = time.Hour
)

// @title        Aura display API
// @version      1.0
// @description  Remote control for the weather and transit display.
// @BasePath     /
func main() {
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Init(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	defer func() { _ = log.Sync() }()

	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DBPath)
	}
	defer closeDB(conn, log)

	repos := repository.NewRepository(conn)

	// upstream clients
	meteo := openmeteo.NewClient(
		httpclient.New(nil, httpclient.Config{
			Name:          "open-meteo",
			Timeout:       cfg.HTTPTimeout,
			Backoff:       httpclient.DefaultBackoff(),
			RatePerSecond: cfg.Weather.RatePerSecond,
		}, log),
		httpclient.New(nil, httpclient.Config{
			Name:          "open-meteo-geocoding",
			Timeout:       cfg.HTTPTimeout,
			Backoff:       httpclient.DefaultBackoff(),
			RatePerSecond: cfg.Weather.RatePerSecond,
		}, log),
		cfg.Weather.BaseURL, cfg.GeocodingURL)
	arrivals := tfl.NewClient(httpclient.New(nil, httpclient.Config{
		Name:          "tfl",
		Timeout:       cfg.HTTPTimeout,
		Backoff:       httpclient.DefaultBackoff(),
		RatePerSecond: cfg.Transit.RatePerSecond,
	}, log), cfg.Transit.BaseURL)

	network := service.NewDialMonitor(cfg.DialAddr, 0, 0)
	clock := service.NewClock(nil)
	events := service.NewEventLogService(repos.EventRepo, log)
	settings := service.NewSettingsService(repos.SettingsRepo, cfg.Defaults, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initial, err := settings.Load(ctx)
	if err != nil {
		log.Fatalw("failed to load settings", "err", err)
	}

	light, err := backlight.New(backlight.Config{Driver: cfg.Backlight.Driver, Pin: cfg.Backlight.Pin}, log)
	if err != nil {
		log.Fatalw("failed to open backlight", "err", err, "driver", cfg.Backlight.Driver)
	}
	defer func() {
		if cerr := light.Close(); cerr != nil {
			log.Warnw("failed to close backlight", "err", cerr)
		}
	}()

	reset := make(chan struct{}, 1)
	display := service.NewDisplay(service.DisplayDeps{
		Weather:   service.NewWeatherService(meteo, network, clock, log),
		Transit:   service.NewTransitService(arrivals, network, log),
		Settings:  settings,
		Events:    events,
		Backlight: light,
		Clock:     clock,
		Log:       log,
		OnReset: func() {
			select {
			case reset <- struct{}{}:
			default:
			}
		},
	}, initial)
	go display.Run(ctx)

	jobs, err := startJobs(cfg, display, events, log)
	if err != nil {
		log.Fatalw("failed to schedule jobs", "err", err)
	}
	defer jobs.Stop()

	services := service.NewService(display, service.NewGeocodeService(meteo, network), events)
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, reset, log)
}

// startJobs registers the periodic refreshes and event log pruning.
func startJobs(cfg *config.Config, display *service.Display, events *service.EventLogService, log *logger.Logger) (*scheduler.Scheduler, error) {
	s := scheduler.New(log, 0)

	notify := func(kind service.EventKind) scheduler.JobFunc {
		return func(context.Context) error {
			display.Notify(service.Event{Kind: kind})
			return nil
		}
	}
	if err := s.Every("weather_refresh", cfg.Weather.RefreshInterval, notify(service.EventRefreshWeather)); err != nil {
		return nil, err
	}
	if err := s.Every("transit_refresh", cfg.Transit.RefreshInterval, notify(service.EventRefreshTransit)); err != nil {
		return nil, err
	}
	if err := s.Every("event_prune", pruneInterval, func(ctx context.Context) error {
		_, err := events.Prune(ctx, cfg.EventRetention)
		return err
	}); err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}

func closeDB(conn *sql.DB, log *logger.Logger) {
	if err := conn.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until a termination signal or a settings reset,
// then stops the display loop and drains the HTTP server.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, reset <-chan struct{}, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case <-reset:
		log.Infow("settings reset; restarting")
	}

	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
