package lock

import "time"

const (
	// DefaultLockTimeout is the queue-wait timeout used when a caller
	// passes a non-positive timeout.
	DefaultLockTimeout = 10 * time.Second

	// MaxLockTimeout caps any requested queue-wait timeout.
	MaxLockTimeout = 2 * time.Minute

	// DefaultMaxWaiters is the default maximum number of callers queued
	// on a single key.
	DefaultMaxWaiters = 128
)
