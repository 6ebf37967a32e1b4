package lock

import (
	"time"

	"github.com/ekarlsen/seatlock/types"
)

// Metrics records operational data about lock usage. All methods must
// be safe for concurrent use.
type Metrics interface {
	// IncrAcquire counts acquisition attempts. `success` indicates the
	// lock was granted; `waited` indicates the caller went through the
	// wait queue rather than being granted immediately.
	IncrAcquire(key types.LockKey, success bool, waited bool)

	// IncrRelease counts releases.
	IncrRelease(key types.LockKey)

	// IncrTimeout counts waiters removed because their wait timed out
	// or their context ended.
	IncrTimeout(key types.LockKey)

	// ObserveWaitDuration records how long a granted waiter queued.
	ObserveWaitDuration(key types.LockKey, wait time.Duration)

	// ObserveHoldDuration records how long a lock was held.
	ObserveHoldDuration(key types.LockKey, hold time.Duration)

	// Reset clears all metrics.
	Reset()
}

// NoOpMetrics is a Metrics implementation that discards all data.
type NoOpMetrics struct{}

// NewNoOpMetrics returns a Metrics collector that does nothing.
func NewNoOpMetrics() Metrics { return &NoOpMetrics{} }

func (*NoOpMetrics) IncrAcquire(types.LockKey, bool, bool)           {}
func (*NoOpMetrics) IncrRelease(types.LockKey)                       {}
func (*NoOpMetrics) IncrTimeout(types.LockKey)                       {}
func (*NoOpMetrics) ObserveWaitDuration(types.LockKey, time.Duration) {}
func (*NoOpMetrics) ObserveHoldDuration(types.LockKey, time.Duration) {}
func (*NoOpMetrics) Reset()                                          {}
