package lock

import "errors"

var (
	// ErrLockTimeout indicates a waiter's queue wait exceeded its timeout
	// before the lock could be granted. The guarded function was never
	// invoked; callers may retry or apply backpressure.
	ErrLockTimeout = errors.New("lock: timed out waiting for lock")

	// ErrNotHeld indicates a release was attempted with a handle that
	// does not currently own its key.
	ErrNotHeld = errors.New("lock: handle does not hold the lock")

	// ErrWaitQueueFull indicates the waiter queue for a key is at its
	// configured capacity.
	ErrWaitQueueFull = errors.New("lock: wait queue is full")

	// ErrManagerClosed indicates the manager has been closed.
	ErrManagerClosed = errors.New("lock: manager is closed")
)
