package lock

import (
	"time"

	"github.com/ekarlsen/seatlock/logger"
	"github.com/ekarlsen/seatlock/types"
)

// Option applies a configuration setting to a Manager during
// initialization.
type Option func(*Config)

// Config holds configuration parameters for a lock Manager instance.
type Config struct {
	// DefaultTimeout is the queue-wait timeout used when Acquire is
	// called with a non-positive timeout.
	DefaultTimeout time.Duration

	// MaxTimeout caps any requested queue-wait timeout.
	MaxTimeout time.Duration

	// MaxWaiters limits the number of callers queued on a single key.
	// Zero or negative means unlimited.
	MaxWaiters int

	Clock   types.Clock
	Logger  logger.Logger
	Metrics Metrics
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultTimeout: DefaultLockTimeout,
		MaxTimeout:     MaxLockTimeout,
		MaxWaiters:     DefaultMaxWaiters,
	}
}

// WithDefaultTimeout sets the queue-wait timeout applied when callers
// do not specify one.
func WithDefaultTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		if timeout > 0 {
			cfg.DefaultTimeout = timeout
		}
	}
}

// WithMaxTimeout sets the upper bound for requested queue-wait timeouts.
func WithMaxTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		if timeout > 0 {
			cfg.MaxTimeout = timeout
		}
	}
}

// WithMaxWaiters sets the maximum number of callers queued on one key.
func WithMaxWaiters(max int) Option {
	return func(cfg *Config) {
		cfg.MaxWaiters = max
	}
}

// WithClock sets the clock used for timestamps.
func WithClock(clock types.Clock) Option {
	return func(cfg *Config) {
		if clock != nil {
			cfg.Clock = clock
		}
	}
}

// WithLogger sets the logger for internal events.
func WithLogger(logger logger.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// WithMetrics sets the metrics collector for lock operations.
func WithMetrics(metrics Metrics) Option {
	return func(cfg *Config) {
		if metrics != nil {
			cfg.Metrics = metrics
		}
	}
}
