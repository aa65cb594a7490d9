// Package resilience wraps the planner's I/O boundaries — task-file
// reads and search-spec/config loads — with fortify's bulkhead,
// circuit breaker, and retry patterns, and supplies the wall-clock
// deadline guard the eager search loop checks at well-defined points
// (spec.md §5 max_time). The core search algorithm is never wrapped
// here: a search step is not retryable or circuit-breakable, only
// filesystem I/O is.
package resilience

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"
)

// IOExecutor wraps a fallible I/O operation returning T with bulkhead
// concurrency limiting, a circuit breaker, and retry-with-backoff.
// Grounded on the teacher's infrastructure/resilience.Executor
// composition (bulkhead -> timeout -> circuit breaker -> retry), but
// parameterized over the operation's result type instead of fixed to
// tool.Result: here T is a *task.Task loaded by infrastructure/taskio
// or a *config.FeatureSpec loaded by infrastructure/config.
type IOExecutor[T any] struct {
	bulkhead bulkhead.Bulkhead[T]
	breaker  circuitbreaker.CircuitBreaker[T]
	retry    retry.Retry[T]
	timeout  time.Duration
}

// IOExecutorConfig configures an IOExecutor.
type IOExecutorConfig struct {
	// MaxConcurrent limits concurrent loads (e.g. a batch of task files).
	MaxConcurrent int

	// CircuitBreakerThreshold is the number of consecutive failures
	// before the breaker opens, e.g. a config directory gone missing.
	CircuitBreakerThreshold int

	// CircuitBreakerTimeout is how long the circuit stays open, and
	// also the breaker's rolling-counts interval.
	CircuitBreakerTimeout time.Duration

	// RetryMaxAttempts is the maximum number of retry attempts for a
	// transient read failure (e.g. an NFS hiccup on the task directory).
	RetryMaxAttempts int

	// RetryInitialDelay is the initial delay between retries.
	RetryInitialDelay time.Duration

	// RetryBackoffMultiplier is the exponential backoff multiplier.
	RetryBackoffMultiplier float64

	// DefaultTimeout bounds a single load attempt.
	DefaultTimeout time.Duration
}

// DefaultIOExecutorConfig returns sensible defaults for loading a task
// file or a search-spec config file from local disk.
func DefaultIOExecutorConfig() IOExecutorConfig {
	return IOExecutorConfig{
		MaxConcurrent:           4,
		CircuitBreakerThreshold: 3,
		CircuitBreakerTimeout:   10 * time.Second,
		RetryMaxAttempts:        3,
		RetryInitialDelay:       50 * time.Millisecond,
		RetryBackoffMultiplier:  2.0,
		DefaultTimeout:          5 * time.Second,
	}
}

// NewIOExecutor builds an IOExecutor for the given result type.
func NewIOExecutor[T any](config IOExecutorConfig) *IOExecutor[T] {
	// Ensure non-negative values for uint32 conversion (G115 fix)
	maxConcurrent := config.MaxConcurrent
	if maxConcurrent < 0 {
		maxConcurrent = 4 // default
	}
	threshold := config.CircuitBreakerThreshold
	if threshold < 0 {
		threshold = 3 // default
	}

	return &IOExecutor[T]{
		bulkhead: bulkhead.New[T](bulkhead.Config{
			MaxConcurrent: maxConcurrent,
		}),
		breaker: circuitbreaker.New[T](circuitbreaker.Config{
			MaxRequests: uint32(maxConcurrent), // #nosec G115 -- bounds checked above
			Interval:    config.CircuitBreakerTimeout,
			Timeout:     config.CircuitBreakerTimeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(threshold) // #nosec G115 -- bounds checked above
			},
		}),
		retry: retry.New[T](retry.Config{
			MaxAttempts:   config.RetryMaxAttempts,
			InitialDelay:  config.RetryInitialDelay,
			BackoffPolicy: retry.BackoffExponential,
			Multiplier:    config.RetryBackoffMultiplier,
		}),
		timeout: config.DefaultTimeout,
	}
}

// NewDefaultIOExecutor builds an IOExecutor with DefaultIOExecutorConfig.
func NewDefaultIOExecutor[T any]() *IOExecutor[T] {
	return NewIOExecutor[T](DefaultIOExecutorConfig())
}

// Load runs fn, a single I/O attempt, under bulkhead -> timeout ->
// circuit breaker -> retry.
func (e *IOExecutor[T]) Load(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return e.bulkhead.Execute(ctx, func(ctx context.Context) (T, error) {
		ctx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		return e.breaker.Execute(ctx, func(ctx context.Context) (T, error) {
			return e.retry.Do(ctx, fn)
		})
	})
}

// LoadWithTimeout runs fn with a caller-supplied timeout instead of
// the executor's configured default.
func (e *IOExecutor[T]) LoadWithTimeout(ctx context.Context, fn func(context.Context) (T, error), timeout time.Duration) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.Load(ctx, fn)
}

// CircuitBreakerState returns the current state of the circuit breaker.
func (e *IOExecutor[T]) CircuitBreakerState() circuitbreaker.State {
	return e.breaker.State()
}
