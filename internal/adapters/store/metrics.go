package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/quote-service/store"

type metrics struct {
	duration *prometheus.HistogramVec
	likes    *prometheus.CounterVec
}

// newMetrics registers the store collectors with reg. A nil reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quote_store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of quote store operations.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation", "outcome"}),
		likes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quote_store",
			Name:      "likes_total",
			Help:      "Like attempts by outcome.",
		}, []string{"outcome"}),
	}
}

// observe starts a span for op and returns a finisher that records the
// span status and the duration histogram. Call it with the final error.
func (s *Store) observe(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.dialect.name),
			attribute.String("db.operation", op),
		),
	)

	return ctx, func(err error) {
		result := outcome(err)

		if result == "error" {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.SetAttributes(attribute.String("quote_store.outcome", result))
		span.End()

		s.metrics.duration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())

		if op == "like" {
			s.metrics.likes.WithLabelValues(result).Inc()
		}
	}
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
