package lock

import (
	"context"
	"time"

	"github.com/ekarlsen/seatlock/types"
)

// Manager provides process-local, logical mutual exclusion keyed by
// arbitrary strings. Callers for the same key are serialized in FIFO
// order of arrival; callers for different keys proceed fully
// concurrently.
//
// Manager does not coordinate across multiple process instances. If an
// invariant must hold cluster-wide, callers need an external
// coordination mechanism; see the claim package for the storage-backed
// one-shot variant that is safe across processes.
//
// Notes:
//   - All methods are safe for concurrent use.
//   - No retries are attempted internally; retry policy belongs to the
//     caller.
type Manager interface {
	// Acquire blocks until the caller owns key, the per-wait timeout
	// elapses, or ctx is cancelled.
	//
	// Returns:
	//   - *Handle on success. The handle is exclusively owned by the
	//     caller and must be passed to Release on every exit path.
	//   - ErrLockTimeout if the queue wait exceeds timeout.
	//   - ctx.Err() if the context ends first.
	//   - ErrWaitQueueFull if the key's waiter queue is at capacity.
	//   - ErrManagerClosed after Close.
	//
	// A timeout <= 0 selects the manager's default.
	Acquire(ctx context.Context, key types.LockKey, timeout time.Duration) (*Handle, error)

	// Release gives up ownership of the handle's key and grants the
	// lock to exactly the next queued waiter, if any.
	//
	// Returns ErrNotHeld if the handle does not currently own its key,
	// for example after a double release.
	Release(handle *Handle) error

	// WithLock acquires key, runs fn, and releases on every exit path,
	// including an error or panic from fn. fn is never invoked when the
	// acquisition fails.
	WithLock(ctx context.Context, key types.LockKey, timeout time.Duration, fn func(ctx context.Context) error) error

	// QueueLength reports the number of callers waiting on key. Intended
	// for observability and tests.
	QueueLength(key types.LockKey) int

	// Close rejects all future acquisitions with ErrManagerClosed and
	// wakes every queued waiter with the same error. Held locks may
	// still be released.
	Close() error
}

// Do runs fn under the named lock and returns its result. It is the
// typed convenience wrapper over Manager.WithLock.
func Do[T any](ctx context.Context, m Manager, key types.LockKey, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := m.WithLock(ctx, key, timeout, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
