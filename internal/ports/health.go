package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report their health.
// The quote store registers itself at startup and answers with a ping.
type HealthChecker interface {
	// Name keys the component in readiness responses.
	Name() string

	// Check returns nil when the component can serve requests.
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a plain function to HealthChecker.
type HealthCheckFunc struct {
	CheckName string
	Fn        func(ctx context.Context) error
}

// Name implements HealthChecker.
func (f HealthCheckFunc) Name() string { return f.CheckName }

// Check implements HealthChecker.
func (f HealthCheckFunc) Check(ctx context.Context) error { return f.Fn(ctx) }

// HealthRegistry aggregates the checks behind the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is "healthy" or "unhealthy".
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the readiness verdict. Status is unhealthy when any check fails.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	DurationMS int64        `json:"duration_ms"`
}

// DefaultHealthRegistry runs checkers concurrently, each bounded by an
// optional per-check timeout.
type DefaultHealthRegistry struct {
	mu           sync.RWMutex
	checkers     map[string]HealthChecker
	checkTimeout time.Duration
}

// NewHealthRegistry creates a registry. A zero checkTimeout relies on the caller's deadline.
func NewHealthRegistry(checkTimeout time.Duration) *DefaultHealthRegistry {
	return &DefaultHealthRegistry{
		checkers:     make(map[string]HealthChecker),
		checkTimeout: checkTimeout,
	}
}

// Register adds checker under its name.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checkers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers[name] = checker

	return nil
}

// CheckAll runs every registered checker and waits for all of them.
// A failing check never cancels its siblings.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make(map[string]HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	results := make(map[string]*CheckResult, len(checkers))

	var (
		g  errgroup.Group
		mu sync.Mutex
	)

	for name, checker := range checkers {
		g.Go(func() error {
			cr := r.run(ctx, checker)

			mu.Lock()
			results[name] = cr
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	status := HealthStatusHealthy
	for _, cr := range results {
		if cr.Status == HealthStatusUnhealthy {
			status = HealthStatusUnhealthy
			break
		}
	}

	return &HealthResult{
		Status:    status,
		Checks:    results,
		Timestamp: time.Now().UTC(),
	}
}

func (r *DefaultHealthRegistry) run(ctx context.Context, c HealthChecker) *CheckResult {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
	}

	start := time.Now()
	err := c.Check(ctx)

	cr := &CheckResult{
		Status:     HealthStatusHealthy,
		DurationMS: time.Since(start).Milliseconds(),
	}

	if err != nil {
		cr.Status = HealthStatusUnhealthy
		cr.Message = err.Error()
	}

	return cr
}
