package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/store"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r

	return c
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry(time.Second)
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")

	return handlers.NewHealthHandler(registry, buildInfo)
}

// newStore opens a migrated sqlite store holding n quotes.
func newStore(b *testing.B, n int) (*store.Store, []domain.Quote) {
	b.Helper()

	s, err := store.Open(context.Background(), store.Config{
		Driver:       store.DriverSQLite,
		DSN:          filepath.Join(b.TempDir(), "bench.db"),
		MaxOpenConns: 4,
		Migrate:      true,
	},
		store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		store.WithRegisterer(prometheus.NewRegistry()),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() { _ = s.Close() })

	quotes := make([]domain.Quote, 0, n)

	for i := range n {
		q, err := domain.NewQuote(fmt.Sprintf("Benchmark quote number %d", i), "Bench")
		if err != nil {
			b.Fatal(err)
		}

		if err := s.Create(context.Background(), &q); err != nil {
			b.Fatal(err)
		}

		quotes = append(quotes, q)
	}

	return s, quotes
}

// newRouter builds the production router over s.
func newRouter(s *store.Store) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := app.NewQuoteService(app.QuoteServiceConfig{Store: s, Logger: logger})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   "quote-service",
		CORS:          config.CORSConfig{Origins: []string{"*"}},
		HealthHandler: setupHealthHandler(),
		QuoteHandler:  handlers.NewQuoteHandler(service),
		Timeout:       httpadapter.DefaultRequestTimeout,
	})

	return engine
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithStore runs readiness against a live sqlite ping.
func BenchmarkReadinessHandler_WithStore(b *testing.B) {
	s, _ := newStore(b, 0)

	registry := ports.NewHealthRegistry(time.Second)
	if err := registry.Register(s); err != nil {
		b.Fatal(err)
	}

	handler := handlers.NewHealthHandler(registry, handlers.BuildInfo{})
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkRandomQuote measures GET /api/quotes/random through the full middleware chain.
func BenchmarkRandomQuote(b *testing.B) {
	s, _ := newStore(b, 500)
	router := newRouter(s)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/random", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkListQuotes measures a full page with per-quote is_liked enrichment.
func BenchmarkListQuotes(b *testing.B) {
	for _, search := range []string{"", "number 4"} {
		b.Run(fmt.Sprintf("search=%q", search), func(b *testing.B) {
			s, _ := newStore(b, 500)
			router := newRouter(s)
			req := httptest.NewRequest(http.MethodGet, "/api/quotes?page=2&page_size=50&search="+search, http.NoBody)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
			}
		})
	}
}

// BenchmarkLike measures the locking like transaction, one new caller per iteration.
func BenchmarkLike(b *testing.B) {
	s, quotes := newStore(b, 1)
	id := quotes[0].ID

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := s.Like(context.Background(), id, fmt.Sprintf("10.%d.%d.%d", i>>16&0xff, i>>8&0xff, i&0xff), "bench"); err != nil {
			b.Fatal(err)
		}
	}
}
