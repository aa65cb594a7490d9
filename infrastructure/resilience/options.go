package resilience

import "time"

// Option configures an IOExecutor.
type Option func(*IOExecutorConfig)

// WithMaxConcurrent sets the maximum concurrent loads.
func WithMaxConcurrent(n int) Option {
	return func(c *IOExecutorConfig) {
		c.MaxConcurrent = n
	}
}

// WithCircuitBreakerThreshold sets the failure threshold for circuit breaker.
func WithCircuitBreakerThreshold(n int) Option {
	return func(c *IOExecutorConfig) {
		c.CircuitBreakerThreshold = n
	}
}

// WithCircuitBreakerTimeout sets the circuit breaker open duration.
func WithCircuitBreakerTimeout(d time.Duration) Option {
	return func(c *IOExecutorConfig) {
		c.CircuitBreakerTimeout = d
	}
}

// WithRetryAttempts sets the maximum retry attempts.
func WithRetryAttempts(n int) Option {
	return func(c *IOExecutorConfig) {
		c.RetryMaxAttempts = n
	}
}

// WithRetryDelay sets the initial retry delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *IOExecutorConfig) {
		c.RetryInitialDelay = d
	}
}

// WithTimeout sets the default load timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *IOExecutorConfig) {
		c.DefaultTimeout = d
	}
}

// NewIOExecutorWithOptions creates an IOExecutor with the given options.
func NewIOExecutorWithOptions[T any](opts ...Option) *IOExecutor[T] {
	config := DefaultIOExecutorConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return NewIOExecutor[T](config)
}
