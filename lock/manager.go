package lock

import (
	"context"
	"sync"
	"time"

	"github.com/ekarlsen/seatlock/logger"
	"github.com/ekarlsen/seatlock/types"
)

// manager is the concrete Manager implementation: a table of per-key
// states protected by one mutex, with FIFO waiter queues.
type manager struct {
	mu   sync.Mutex
	keys map[types.LockKey]*keyState

	nextToken uint64 // incremented under mu for each grant
	closed    bool

	config  Config
	clock   types.Clock
	logger  logger.Logger
	metrics Metrics
}

// NewManager creates a Manager with the provided options. The manager
// is an explicit instance meant to be constructed once and injected
// into every collaborator that needs it.
func NewManager(opts ...Option) Manager {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if config.Clock == nil {
		config.Clock = types.NewStandardClock()
	}
	if config.Logger == nil {
		config.Logger = logger.NewNoOpLogger()
	}
	if config.Metrics == nil {
		config.Metrics = NewNoOpMetrics()
	}

	return &manager{
		keys:    make(map[types.LockKey]*keyState),
		config:  config,
		clock:   config.Clock,
		logger:  config.Logger.WithComponent("lock"),
		metrics: config.Metrics,
	}
}

func (m *manager) Acquire(ctx context.Context, key types.LockKey, timeout time.Duration) (*Handle, error) {
	if timeout <= 0 {
		timeout = m.config.DefaultTimeout
	}
	if timeout > m.config.MaxTimeout {
		timeout = m.config.MaxTimeout
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}

	ks, ok := m.keys[key]
	if !ok {
		ks = &keyState{key: key}
		m.keys[key] = ks
	}

	// Uncontended: grant immediately. A non-empty queue means earlier
	// waiters go first even if the holder just released.
	if ks.holder == nil && len(ks.queue) == 0 {
		handle := m.grantLocked(ks, timeout)
		m.mu.Unlock()
		m.metrics.IncrAcquire(key, true, false)
		return handle, nil
	}

	if max := m.config.MaxWaiters; max > 0 && len(ks.queue) >= max {
		m.mu.Unlock()
		m.metrics.IncrAcquire(key, false, false)
		return nil, ErrWaitQueueFull
	}

	w := &waiter{
		enqueued: m.clock.Now(),
		timeout:  timeout,
		notify:   make(chan struct{}),
	}
	ks.queue = append(ks.queue, w)
	m.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-w.notify:
		// The closing side set either the handle or the error before
		// closing the channel.
		if w.err != nil {
			m.metrics.IncrAcquire(key, false, true)
			return nil, w.err
		}
		m.metrics.ObserveWaitDuration(key, m.clock.Now().Sub(w.enqueued))
		m.metrics.IncrAcquire(key, true, true)
		return w.handle, nil
	case <-timer.C:
	case <-ctx.Done():
	}

	m.mu.Lock()
	if w.granted {
		// The grant raced with the deadline. The caller is abandoning
		// the wait, so pass ownership straight to the next waiter.
		m.releaseLocked(ks, w.handle)
	} else {
		m.removeWaiterLocked(ks, w)
	}
	m.mu.Unlock()

	m.metrics.IncrAcquire(key, false, true)
	m.metrics.IncrTimeout(key)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrLockTimeout
}

func (m *manager) Release(handle *Handle) error {
	if handle == nil {
		return ErrNotHeld
	}
	m.mu.Lock()
	err := m.releaseLocked(m.keys[handle.key], handle)
	m.mu.Unlock()
	if err == nil {
		m.metrics.IncrRelease(handle.key)
	}
	return err
}

func (m *manager) WithLock(ctx context.Context, key types.LockKey, timeout time.Duration, fn func(ctx context.Context) error) error {
	handle, err := m.Acquire(ctx, key, timeout)
	if err != nil {
		return err
	}
	// Release on every exit path, including a panic inside fn. The
	// handle is exclusively ours, so the release cannot fail.
	defer func() {
		_ = m.Release(handle)
	}()
	return fn(ctx)
}

func (m *manager) QueueLength(key types.LockKey) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ks, ok := m.keys[key]; ok {
		return len(ks.queue)
	}
	return 0
}

func (m *manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	for key, ks := range m.keys {
		for _, w := range ks.queue {
			w.err = ErrManagerClosed
			close(w.notify)
		}
		ks.queue = nil
		if ks.holder == nil {
			delete(m.keys, key)
		}
	}
	m.logger.Infow("lock manager closed")
	return nil
}

// grantLocked installs a new handle as the holder of ks. Caller holds m.mu.
func (m *manager) grantLocked(ks *keyState, timeout time.Duration) *Handle {
	m.nextToken++
	handle := &Handle{
		key:        ks.key,
		token:      m.nextToken,
		acquiredAt: m.clock.Now(),
		timeout:    timeout,
	}
	ks.holder = handle
	return handle
}

// releaseLocked removes handle as holder and grants the key to exactly
// the next queued waiter, if any. Empty states are dropped from the
// table. Caller holds m.mu.
func (m *manager) releaseLocked(ks *keyState, handle *Handle) error {
	if ks == nil || ks.holder != handle {
		return ErrNotHeld
	}
	m.metrics.ObserveHoldDuration(ks.key, m.clock.Now().Sub(handle.acquiredAt))
	ks.holder = nil

	if len(ks.queue) > 0 {
		next := ks.queue[0]
		ks.queue = ks.queue[1:]
		next.granted = true
		next.handle = m.grantLocked(ks, next.timeout)
		close(next.notify)
		return nil
	}

	delete(m.keys, ks.key)
	return nil
}

// removeWaiterLocked drops w from ks's queue if it is still there.
// Caller holds m.mu.
func (m *manager) removeWaiterLocked(ks *keyState, w *waiter) {
	if ks == nil {
		return
	}
	for i, queued := range ks.queue {
		if queued == w {
			ks.queue = append(ks.queue[:i], ks.queue[i+1:]...)
			break
		}
	}
	if ks.holder == nil && len(ks.queue) == 0 {
		delete(m.keys, ks.key)
	}
}
