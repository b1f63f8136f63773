// Command service runs the quote API: random quotes, search, likes and
// the weekly and all-time top quote, backed by a SQL quote store.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/store"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// Set with -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// healthCheckTimeout bounds each readiness check.
const healthCheckTimeout = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quote-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)

	logger.Info("quote service starting",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("database_driver", cfg.Database.Driver),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}

	defer func() {
		// The signal context is already cancelled here; Shutdown applies its own timeout.
		if err := telProvider.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	quoteStore, err := openStore(ctx, cfg, logger, telProvider)
	if err != nil {
		return err
	}

	defer func() {
		if err := quoteStore.Close(); err != nil {
			logger.Error("closing quote store", slog.Any("error", err))
		}
	}()

	registry := ports.NewHealthRegistry(healthCheckTimeout)
	if err := registry.Register(quoteStore); err != nil {
		return fmt.Errorf("registering readiness check: %w", err)
	}

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:             quoteStore,
		Logger:            logger,
		EnrichConcurrency: cfg.Quotes.EnrichConcurrency,
	})

	if err := seed(ctx, quoteService, cfg.Database.SeedFile, cfg.Quotes.EnrichConcurrency); err != nil {
		return err
	}

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.Telemetry.ServiceName,
		CORS:          cfg.CORS,
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		QuoteHandler:  handlers.NewQuoteHandler(quoteService),
		StaticDir:     cfg.Server.StaticDir,
		Timeout:       cfg.Server.RequestTimeout,
	})

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// loadConfig reads the profile named by APP_ENVIRONMENT, "local" by default.
func loadConfig() (*config.Config, error) {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading %s config: %w", profile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
}

// openStore connects to the configured database and applies migrations
// when enabled.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, tel *telemetry.Provider) (*store.Store, error) {
	s, err := store.Open(ctx, store.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		Migrate:         cfg.Database.Migrate,
	},
		store.WithLogger(logger),
		store.WithRegisterer(prometheus.DefaultRegisterer),
		store.WithTracer(tel.Tracer("quote-store")),
	)
	if err != nil {
		return nil, fmt.Errorf("opening quote store: %w", err)
	}

	return s, nil
}

// seed loads the configured seed file into the store when it is empty.
func seed(ctx context.Context, service *app.QuoteService, path string, workers int) error {
	entries, err := config.LoadSeedFile(path)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	quotes := make([]app.SeedQuote, len(entries))
	for i, e := range entries {
		quotes[i] = app.SeedQuote{Text: e.Text, Author: e.Author}
	}

	if _, err := service.Seed(ctx, quotes, workers); err != nil {
		return fmt.Errorf("seeding quotes: %w", err)
	}

	return nil
}

// serve runs the server until ctx is cancelled by a signal or the server
// fails, then drains in-flight requests for at most drain.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, drain time.Duration) error {
	serverErr := server.Start()

	select {
	case err, ok := <-serverErr:
		if !ok {
			return errors.New("quote API stopped unexpectedly")
		}

		return err
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.Duration("drain", drain))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drain)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("quote service stopped")

	return nil
}
