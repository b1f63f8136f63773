//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/store"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// testService is the full HTTP stack over a throwaway sqlite store.
type testService struct {
	server  *httptest.Server
	store   *store.Store
	service *app.QuoteService
	dir     string
}

func startService() (*testService, error) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "quote-service-it-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   "error",
		Format:  "json",
		Service: "quote-service",
		Version: "integration",
	}, io.Discard)

	ctx := context.Background()

	quoteStore, err := store.Open(ctx, store.Config{
		Driver:       store.DriverSQLite,
		DSN:          filepath.Join(dir, "quotes.db"),
		MaxOpenConns: 8,
		Migrate:      true,
	},
		store.WithLogger(logger),
		store.WithRegisterer(prometheus.NewRegistry()),
	)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}

	registry := ports.NewHealthRegistry(time.Second)
	if err := registry.Register(quoteStore); err != nil {
		_ = quoteStore.Close()
		_ = os.RemoveAll(dir)

		return nil, err
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{Store: quoteStore, Logger: logger})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   "quote-service",
		CORS:          config.CORSConfig{Origins: []string{"*"}},
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "")),
		QuoteHandler:  handlers.NewQuoteHandler(service),
		Timeout:       httpadapter.DefaultRequestTimeout,
	})

	return &testService{
		server:  httptest.NewServer(engine),
		store:   quoteStore,
		service: service,
		dir:     dir,
	}, nil
}

func (s *testService) URL() string {
	return s.server.URL
}

func (s *testService) Close() {
	s.server.Close()
	_ = s.store.Close()
	_ = os.RemoveAll(s.dir)
}
