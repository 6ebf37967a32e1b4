package lock

import (
	"time"

	"github.com/ekarlsen/seatlock/types"
)

// Handle represents exclusive ownership of a key. It is created by a
// successful Acquire and must be released on every exit path.
type Handle struct {
	key        types.LockKey
	token      uint64 // distinguishes successive ownerships of the same key
	acquiredAt time.Time
	timeout    time.Duration // the queue-wait timeout the acquisition was made with
}

// Key returns the key this handle owns.
func (h *Handle) Key() types.LockKey { return h.key }

// AcquiredAt returns the time ownership was granted.
func (h *Handle) AcquiredAt() time.Time { return h.acquiredAt }

// waiter is a caller queued for a key. The holder closes notify after
// installing the granted handle, so the waiter observes a fully formed
// grant. A waiter that times out marks itself abandoned under the
// manager lock; whichever side wins the race completes the handoff.
type waiter struct {
	enqueued time.Time
	timeout  time.Duration
	notify   chan struct{}

	// Written under the manager mutex.
	granted bool
	handle  *Handle
	err     error
}

// keyState tracks the holder and FIFO waiter queue for one key. A
// keyState with no holder and no waiters is removed from the table.
type keyState struct {
	key    types.LockKey
	holder *Handle
	queue  []*waiter
}
