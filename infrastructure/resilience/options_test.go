package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/planner-go/domain/task"
)

func TestWithMaxConcurrent(t *testing.T) {
	t.Parallel()

	config := DefaultIOExecutorConfig()
	opt := WithMaxConcurrent(20)
	opt(&config)

	if config.MaxConcurrent != 20 {
		t.Errorf("MaxConcurrent = %d, want 20", config.MaxConcurrent)
	}
}

func TestWithCircuitBreakerThreshold(t *testing.T) {
	t.Parallel()

	config := DefaultIOExecutorConfig()
	opt := WithCircuitBreakerThreshold(10)
	opt(&config)

	if config.CircuitBreakerThreshold != 10 {
		t.Errorf("CircuitBreakerThreshold = %d, want 10", config.CircuitBreakerThreshold)
	}
}

func TestWithCircuitBreakerTimeout(t *testing.T) {
	t.Parallel()

	config := DefaultIOExecutorConfig()
	opt := WithCircuitBreakerTimeout(60 * time.Second)
	opt(&config)

	if config.CircuitBreakerTimeout != 60*time.Second {
		t.Errorf("CircuitBreakerTimeout = %v, want 60s", config.CircuitBreakerTimeout)
	}
}

func TestWithRetryAttempts(t *testing.T) {
	t.Parallel()

	config := DefaultIOExecutorConfig()
	opt := WithRetryAttempts(5)
	opt(&config)

	if config.RetryMaxAttempts != 5 {
		t.Errorf("RetryMaxAttempts = %d, want 5", config.RetryMaxAttempts)
	}
}

func TestWithRetryDelay(t *testing.T) {
	t.Parallel()

	config := DefaultIOExecutorConfig()
	opt := WithRetryDelay(200 * time.Millisecond)
	opt(&config)

	if config.RetryInitialDelay != 200*time.Millisecond {
		t.Errorf("RetryInitialDelay = %v, want 200ms", config.RetryInitialDelay)
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	config := DefaultIOExecutorConfig()
	opt := WithTimeout(60 * time.Second)
	opt(&config)

	if config.DefaultTimeout != 60*time.Second {
		t.Errorf("DefaultTimeout = %v, want 60s", config.DefaultTimeout)
	}
}

func TestNewIOExecutorWithOptions(t *testing.T) {
	t.Parallel()

	t.Run("with no options uses defaults", func(t *testing.T) {
		t.Parallel()

		executor := NewIOExecutorWithOptions[*task.Task]()

		if executor == nil {
			t.Fatal("NewIOExecutorWithOptions() returned nil")
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		t.Parallel()

		executor := NewIOExecutorWithOptions[*task.Task](
			WithMaxConcurrent(20),
			WithCircuitBreakerThreshold(10),
			WithCircuitBreakerTimeout(60*time.Second),
			WithRetryAttempts(5),
			WithRetryDelay(200*time.Millisecond),
			WithTimeout(60*time.Second),
		)

		if executor == nil {
			t.Fatal("NewIOExecutorWithOptions() returned nil")
		}

		got, err := executor.Load(context.Background(), func(ctx context.Context) (*task.Task, error) {
			return &task.Task{}, nil
		})
		if err != nil {
			t.Errorf("Load() error = %v", err)
		}
		if got == nil {
			t.Error("Load() should return a result")
		}
	})

	t.Run("options are applied in order", func(t *testing.T) {
		t.Parallel()

		executor := NewIOExecutorWithOptions[*task.Task](
			WithMaxConcurrent(10),
			WithMaxConcurrent(25), // Should override to 25
		)

		if executor == nil {
			t.Fatal("NewIOExecutorWithOptions() returned nil")
		}
	})
}

func TestAllOptions_ChainedUsage(t *testing.T) {
	t.Parallel()

	executor := NewIOExecutorWithOptions[*task.Task](
		WithMaxConcurrent(5),
		WithCircuitBreakerThreshold(3),
		WithCircuitBreakerTimeout(10*time.Second),
		WithRetryAttempts(2),
		WithRetryDelay(50*time.Millisecond),
		WithTimeout(10*time.Second),
	)

	if executor == nil {
		t.Fatal("NewIOExecutorWithOptions() with all options returned nil")
	}

	got, err := executor.Load(context.Background(), func(ctx context.Context) (*task.Task, error) {
		return &task.Task{Metric: true}, nil
	})
	if err != nil {
		t.Errorf("Load() error = %v", err)
	}
	if got == nil {
		t.Error("Load() should return a result")
	}
}
