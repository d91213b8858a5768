package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/salary/internal/salary/http"
	"github.com/aussiebroadwan/salary/internal/salary/metrics"
	"github.com/aussiebroadwan/salary/internal/salary/service"
	"github.com/aussiebroadwan/salary/internal/salary/store"
	"github.com/aussiebroadwan/salary/internal/salary/store/drivers/csvfile"
	"github.com/aussiebroadwan/salary/internal/salary/store/drivers/sqlite"
	"github.com/aussiebroadwan/salary/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the salary service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	registry    *prometheus.Registry
	metrics     *metrics.Metrics
	tokens      store.TokenStore
	coordinator *service.SessionCoordinator

	server *http.Server
	router *httpapi.Router
}

// New wires the application. It fails when the user source cannot be loaded.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "salary-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.initMetrics()

	if err := app.initTokenStore(); err != nil {
		return nil, err
	}

	if err := app.initServices(ctx); err != nil {
		_ = app.tokens.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Handler returns the gateway's root handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the server and blocks until ctx is done, a shutdown signal
// arrives or the server fails.
func (app *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.logger.Info("salary service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.TokenDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.tokens.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down salary service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.tokens.Close(); err != nil {
		app.logger.Error("error closing token store", "error", err)
		return err
	}

	app.logger.Info("salary service stopped")
	return nil
}

func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)
}

// initTokenStore opens the configured token store, applying migrations for
// the sqlite driver.
func (app *Application) initTokenStore() error {
	switch app.cfg.TokenDriver {
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.TokenDatabase)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to open token database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.logger.Info("token database ready", "store_path", app.cfg.TokenDatabase)
		app.tokens = db
	default:
		app.tokens = csvfile.NewTokenStore(app.cfg.TokensFile)
		app.logger.Info("token file configured", "store_path", app.cfg.TokensFile)
	}
	return nil
}

func (app *Application) initServices(ctx context.Context) error {
	c, err := service.NewSessionCoordinator(
		ctx,
		csvfile.NewUserSource(app.cfg.UsersFile),
		app.tokens,
		service.NewTokenEngine(app.cfg.TokenSecret, app.cfg.TokenTTL),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize session coordinator: %w", err)
	}
	c.Metrics = app.metrics

	app.logger.Info("users loaded", "count", c.Users(), "users_path", app.cfg.UsersFile)
	app.coordinator = c
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.coordinator, app.metrics, app.registry, BuildVersion, app.logger)
	router.RateLimit = app.cfg.RateLimit
	router.TrustProxyHeaders = app.cfg.TrustProxyHeaders
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
