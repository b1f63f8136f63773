package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// Cache policies for the bundled frontend.
const (
	cacheImmutable = "public, max-age=31536000, immutable"
	cacheDaily     = "public, max-age=86400"
	cacheNone      = "no-cache, no-store, must-revalidate"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger stored in every request context.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// CORS lists the allowed browser origins.
	CORS config.CORSConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles /api/quotes.
	QuoteHandler *handlers.QuoteHandler

	// StaticDir is a built single-page frontend. Ignored when empty or missing.
	StaticDir string

	// Timeout is the deadline applied to /api requests.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - base logger for the request
//  3. Request ID and Correlation ID
//  4. CORS - answers preflight requests before routing
//  5. OpenTelemetry - server span, then HTTP metrics and X-Trace-ID
//  6. Logging - request logging (skips probes)
//
// Route groups:
//   - /-/ and /health: probes and metrics, no timeout
//   - /api: quote endpoints under a request deadline
//   - everything else: the frontend, when StaticDir is set
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		corsMiddleware(cfg.CORS),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	if !serveFrontend(engine, cfg.StaticDir, cfg.Logger) {
		engine.NoRoute(notFound)
	}
}

// corsMiddleware allows every origin for "*", otherwise the configured
// origins with credentials.
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions, http.MethodPatch,
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With",
			middleware.HeaderRequestID, middleware.HeaderCorrelationID,
		},
		ExposeHeaders: []string{
			"Content-Length", "Content-Type",
			middleware.HeaderRequestID, middleware.HeaderCorrelationID, "X-Trace-ID",
		},
		AllowBrowserExtensions: true,
		MaxAge:                 cfg.MaxAge,
	}

	if cfg.AllowAll() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.Origins
		c.AllowCredentials = true
	}

	return cors.New(c)
}

// serveFrontend mounts dir as a single-page app: hashed assets are cached for
// a year, index.html is never cached and answers every unknown non-API path.
// It reports whether dir was mounted.
func serveFrontend(engine *gin.Engine, dir string, logger *slog.Logger) bool {
	if dir == "" {
		return false
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("static directory not found, frontend disabled", slog.String("dir", dir))
		return false
	}

	assetsPath := filepath.Join(dir, "assets")
	if _, err := os.Stat(assetsPath); err == nil {
		assets := engine.Group("/assets")
		assets.Use(cacheControl(cacheImmutable))
		assets.Static("/", assetsPath)
	}

	for _, name := range []string{"favicon.ico", "vite.svg"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			engine.GET("/"+name, cacheControl(cacheDaily), func(c *gin.Context) {
				c.File(path)
			})
		}
	}

	indexPath := filepath.Join(dir, "index.html")

	engine.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			notFound(c)
			return
		}

		if _, err := os.Stat(indexPath); err != nil {
			c.String(http.StatusNotFound, "frontend not found")
			return
		}

		c.Header("Cache-Control", cacheNone)
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.File(indexPath)
	})

	logger.Info("serving frontend", slog.String("dir", dir))

	return true
}

func cacheControl(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

func notFound(c *gin.Context) {
	dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
}
