package admission

import (
	"time"

	"github.com/ekarlsen/seatlock/logger"
	"github.com/ekarlsen/seatlock/types"
)

const (
	// DefaultLockTimeout bounds the wait for the per-role admission lock.
	DefaultLockTimeout = 10 * time.Second
)

// Option applies a configuration setting to an admitter.
type Option func(*admitter)

// WithLockTimeout sets the maximum wait for the admission lock.
func WithLockTimeout(timeout time.Duration) Option {
	return func(a *admitter) {
		if timeout > 0 {
			a.lockTimeout = timeout
		}
	}
}

// WithClock sets the clock used for registration timestamps.
func WithClock(clock types.Clock) Option {
	return func(a *admitter) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithLogger sets the logger for admission events.
func WithLogger(log logger.Logger) Option {
	return func(a *admitter) {
		if log != nil {
			a.logger = log.WithComponent("admission")
		}
	}
}

// WithMetrics sets the metrics collector for admission outcomes.
func WithMetrics(metrics Metrics) Option {
	return func(a *admitter) {
		if metrics != nil {
			a.metrics = metrics
		}
	}
}

// WithIDGenerator overrides registration ID generation. Intended for
// tests that need deterministic IDs.
func WithIDGenerator(gen func() types.RegistrationID) Option {
	return func(a *admitter) {
		if gen != nil {
			a.newID = gen
		}
	}
}
