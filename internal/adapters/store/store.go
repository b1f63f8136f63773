// Package store implements ports.QuoteStore on top of sqlx.
// PostgreSQL is the production dialect; MySQL and SQLite share the same
// queries through a small dialect table.
package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"

	// Database drivers, registered by name.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrations embed.FS

// Config holds connection and pool settings.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// Migrate applies the embedded schema on Open.
	Migrate bool
}

// Store is a ports.QuoteStore backed by a relational database.
// It holds no mutable state besides the connection pool.
type Store struct {
	db      *sqlx.DB
	dialect dialect
	logger  *slog.Logger
	metrics *metrics
	tracer  trace.Tracer
	now     func() time.Time
	intn    func(n int) int
}

var (
	_ ports.QuoteStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Option configures a Store.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	tracer     trace.Tracer
	clock      func() time.Time
	intn       func(n int) int
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer registers the store metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithClock overrides the wall clock. The returned times are normalised to
// UTC microseconds before use.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithRandom overrides the source used to pick a random quote offset.
func WithRandom(intn func(n int) int) Option {
	return func(o *options) { o.intn = intn }
}

// Open connects to the database, tunes the pool and optionally migrates.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	dsn, err := prepareDSN(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Connect %s: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	s, err := New(db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Migrate {
		if err := s.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	s.logger.Info("quote store opened",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Bool("migrated", cfg.Migrate),
	)

	return s, nil
}

// New wraps an existing connection. The connection's driver name selects the dialect.
func New(db *sqlx.DB, opts ...Option) (*Store, error) {
	d, err := lookupDialect(db.DriverName())
	if err != nil {
		return nil, err
	}

	o := options{
		logger: slog.Default(),
		tracer: defaultTracer(),
		clock:  time.Now,
		intn:   rand.IntN,
	}

	for _, opt := range opts {
		opt(&o)
	}

	clock := o.clock

	return &Store{
		db:      db,
		dialect: d,
		logger:  o.logger.With(slog.String("component", serviceName)),
		metrics: newMetrics(o.registerer),
		tracer:  o.tracer,
		now:     func() time.Time { return clock().UTC().Truncate(time.Microsecond) },
		intn:    o.intn,
	}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return serviceName
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return domain.NewUnavailableError(serviceName, "ping", err)
	}

	return nil
}

// Migrate applies the embedded schema for the store's dialect.
// Every statement is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	dir := "migrations/" + s.dialect.name

	files, err := fs.Glob(migrations, dir+"/*.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}

	for _, file := range files {
		body, err := migrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", file, err)
		}

		for _, stmt := range strings.Split(string(body), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}

			if _, err := s.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %s: %w", file, err)
			}
		}

		s.logger.Debug("migration applied", slog.String("file", file))
	}

	return nil
}

// inTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on every other path, including panics.
func (s *Store) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Store) rebind(query string) string {
	return s.db.Rebind(query)
}
