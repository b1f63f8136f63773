package telemetry

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quote-service/telemetry"

	// HeaderTraceID echoes the trace id so a caller can quote it in a report.
	HeaderTraceID = "X-Trace-ID"

	// unmatchedRoute labels requests that hit no route (frontend paths, 404s).
	unmatchedRoute = "unmatched"
)

// Metrics holds HTTP server instruments.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates the HTTP server instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware records HTTP metrics, echoes the trace id in X-Trace-ID and
// adds it to the request logger. Install it after TracingMiddleware so a
// span exists. Probe paths are not measured.
func Middleware() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()

			c.Header(HeaderTraceID, traceID)
			c.Request = c.Request.WithContext(logging.With(c.Request.Context(), slog.String("trace_id", traceID)))
		}

		if metrics == nil || isProbe(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		ctx := c.Request.Context()
		base := []attribute.KeyValue{
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route(c)),
		}

		metrics.activeRequests.Add(ctx, 1, metric.WithAttributes(base...))
		defer metrics.activeRequests.Add(ctx, -1, metric.WithAttributes(base...))

		c.Next()

		attrs := metric.WithAttributes(append(base, attribute.Int("http.response.status_code", c.Writer.Status()))...)
		metrics.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		metrics.requestTotal.Add(ctx, 1, attrs)
	}
}

// TracingMiddleware starts a server span per request using otelgin.
// Probe paths are not traced.
func TracingMiddleware(serviceName string, opts ...otelgin.Option) gin.HandlerFunc {
	opts = append([]otelgin.Option{
		otelgin.WithFilter(func(r *http.Request) bool { return !isProbe(r.URL.Path) }),
	}, opts...)

	return otelgin.Middleware(serviceName, opts...)
}

func route(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}

	return unmatchedRoute
}

func isProbe(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/-/")
}
