package admission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ekarlsen/seatlock/lock"
	"github.com/ekarlsen/seatlock/occupancy"
	"github.com/ekarlsen/seatlock/storage"
	"github.com/ekarlsen/seatlock/testutil"
	"github.com/ekarlsen/seatlock/types"
)

const (
	testResource = types.ResourceID("event-1")
	testRole     = types.RoleID("volunteer")
)

type testEnv struct {
	store    *storage.MemoryStore
	locks    lock.Manager
	admitter Admitter
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	store := storage.NewMemoryStore()
	locks := lock.NewManager()
	t.Cleanup(func() { _ = locks.Close() })

	resolver := occupancy.NewResolver(store, store)
	return &testEnv{
		store:    store,
		locks:    locks,
		admitter: NewAdmitter(locks, store, resolver, opts...),
	}
}

func (e *testEnv) setCapacity(t *testing.T, capacity int64) {
	t.Helper()
	err := e.store.SetRoleCapacity(context.Background(), testResource, testRole, capacity)
	testutil.RequireNoError(t, err, "setting capacity")
}

func memberRequest(memberID string) Request {
	return Request{
		Resource: testResource,
		Role:     testRole,
		Identity: types.Identity{Kind: types.KindMember, MemberID: memberID},
	}
}

func guestRequest(email string) Request {
	return Request{
		Resource: testResource,
		Role:     testRole,
		Identity: types.Identity{Kind: types.KindGuest, Email: email},
	}
}

func TestAdmit_Created(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 10)

	result, err := env.admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.RequireNoError(t, err, "admitting first member")

	testutil.AssertEqual(t, types.StatusCreated, result.Status, "status")
	testutil.AssertEqual(t, int64(0), result.Before.Total, "occupancy before")
	testutil.AssertEqual(t, int64(1), result.After.Total, "occupancy after")
	testutil.RequireNotNil(t, result.Registration, "registration record")
	testutil.AssertEqual(t, "member:m1", result.Registration.IdentityKey, "identity key")
}

func TestAdmit_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 10)

	first, err := env.admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.RequireNoError(t, err, "first admit")
	testutil.AssertEqual(t, types.StatusCreated, first.Status, "first status")

	second, err := env.admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.RequireNoError(t, err, "second admit")
	testutil.AssertEqual(t, types.StatusDuplicate, second.Status, "second status")
	testutil.AssertEqual(t, first.Registration.ID, second.Registration.ID, "same registration returned")

	// Occupancy incremented exactly once across both calls.
	testutil.AssertEqual(t, int64(1), second.After.Total, "total after retry")
}

func TestAdmit_DuplicateBypassesCapacity(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 5)

	for i := 0; i < 5; i++ {
		_, err := env.admitter.Admit(context.Background(), memberRequest(fmt.Sprintf("m%d", i)))
		testutil.RequireNoError(t, err, "filling role, member %d", i)
	}

	occ, err := env.admitter.GetOccupancy(context.Background(), testResource, testRole)
	testutil.RequireNoError(t, err, "reading occupancy")
	testutil.AssertTrue(t, occ.IsFull(), "role should be full")

	// A registrant retrying on a full role still gets duplicate, not
	// capacity exceeded.
	result, err := env.admitter.Admit(context.Background(), memberRequest("m0"))
	testutil.RequireNoError(t, err, "retry on full role")
	testutil.AssertEqual(t, types.StatusDuplicate, result.Status, "retry status")
	testutil.AssertEqual(t, int64(5), result.After.Total, "total unchanged")
}

func TestAdmit_CapacityExceeded(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 1)

	_, err := env.admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.RequireNoError(t, err, "first admit")

	_, err = env.admitter.Admit(context.Background(), memberRequest("m2"))
	testutil.RequireError(t, err, "second admit should be rejected")
	testutil.AssertErrorIs(t, err, ErrCapacityExceeded, "sentinel match")

	var capErr *CapacityError
	testutil.RequireTrue(t, errors.As(err, &capErr), "error should carry occupancy")
	testutil.AssertEqual(t, int64(1), capErr.Occupancy.Total, "occupancy at rejection")
}

func TestAdmit_CapacityBoundUnderContention(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 7)

	const attempts = 25
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.admitter.Admit(context.Background(), memberRequest(fmt.Sprintf("m%d", i)))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrCapacityExceeded):
				rejected++
			default:
				t.Errorf("unexpected admit error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	testutil.AssertEqual(t, 7, created, "created count equals capacity")
	testutil.AssertEqual(t, attempts-7, rejected, "everyone else rejected")

	occ, err := env.admitter.GetOccupancy(context.Background(), testResource, testRole)
	testutil.RequireNoError(t, err, "final occupancy")
	testutil.AssertEqual(t, int64(7), occ.Total, "final total never exceeds capacity")
}

func TestAdmit_WorkedExample_FiveForTwo(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 2)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.admitter.Admit(context.Background(), guestRequest(fmt.Sprintf("g%d@example.com", i)))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else if errors.Is(err, ErrCapacityExceeded) {
				rejected++
			}
		}(i)
	}
	wg.Wait()

	testutil.AssertEqual(t, 2, created, "two admitted")
	testutil.AssertEqual(t, 3, rejected, "three rejected")

	occ, err := env.admitter.GetOccupancy(context.Background(), testResource, testRole)
	testutil.RequireNoError(t, err, "final occupancy")
	testutil.AssertEqual(t, int64(2), occ.Total, "final total")
}

func TestAdmit_UnboundedWithoutCapacity(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 20; i++ {
		result, err := env.admitter.Admit(context.Background(), memberRequest(fmt.Sprintf("m%d", i)))
		testutil.RequireNoError(t, err, "admit %d on unbounded role", i)
		testutil.AssertEqual(t, types.StatusCreated, result.Status, "status %d", i)
	}
}

func TestAdmit_MemberAndGuestShareCapacity(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 2)

	_, err := env.admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.RequireNoError(t, err, "member admit")

	result, err := env.admitter.Admit(context.Background(), guestRequest("g1@example.com"))
	testutil.RequireNoError(t, err, "guest admit")
	testutil.AssertEqual(t, int64(1), result.After.Committed, "committed count")
	testutil.AssertEqual(t, int64(1), result.After.Guests, "guest count")

	_, err = env.admitter.Admit(context.Background(), guestRequest("g2@example.com"))
	testutil.AssertErrorIs(t, err, ErrCapacityExceeded, "guests count against the same ceiling")
}

func TestAdmit_GuestEmailNormalization(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 10)

	first, err := env.admitter.Admit(context.Background(), guestRequest("Person@Example.COM"))
	testutil.RequireNoError(t, err, "first admit")
	testutil.AssertEqual(t, types.StatusCreated, first.Status, "first status")

	second, err := env.admitter.Admit(context.Background(), guestRequest("  person@example.com "))
	testutil.RequireNoError(t, err, "second admit")
	testutil.AssertEqual(t, types.StatusDuplicate, second.Status, "normalized email is the same identity")
}

func TestAdmit_InvalidRequests(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.admitter.Admit(context.Background(), Request{
		Role:     testRole,
		Identity: types.Identity{Kind: types.KindMember, MemberID: "m1"},
	})
	testutil.AssertErrorIs(t, err, ErrInvalidRequest, "missing resource")

	_, err = env.admitter.Admit(context.Background(), Request{
		Resource: testResource,
		Role:     testRole,
		Identity: types.Identity{Kind: types.KindGuest},
	})
	testutil.AssertErrorIs(t, err, ErrInvalidIdentity, "guest without contact details")
}

func TestAdmit_LockTimeout(t *testing.T) {
	env := newTestEnv(t)
	env.setCapacity(t, 10)

	key := types.AdmissionLockKey(testResource, testRole)
	handle, err := env.locks.Acquire(context.Background(), key, time.Second)
	testutil.RequireNoError(t, err, "holding the admission lock")
	defer func() { _ = env.locks.Release(handle) }()

	admitter := NewAdmitter(env.locks, env.store, occupancy.NewResolver(env.store, env.store),
		WithLockTimeout(50*time.Millisecond))

	_, err = admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.AssertErrorIs(t, err, lock.ErrLockTimeout, "blocked admit times out")

	// Nothing was written while the lock was contended.
	committed, guests, err := env.store.Counts(context.Background(), testResource, testRole)
	testutil.RequireNoError(t, err, "reading counts")
	testutil.AssertEqual(t, int64(0), committed+guests, "no partial commit")
}

type flakyStore struct {
	*storage.MemoryStore
	mu         sync.Mutex
	failCreate error
}

func (s *flakyStore) Create(ctx context.Context, reg *types.Registration) error {
	s.mu.Lock()
	err := s.failCreate
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.MemoryStore.Create(ctx, reg)
}

func TestAdmit_StorageErrorPropagates(t *testing.T) {
	storeErr := errors.New("write concern failed")
	store := &flakyStore{MemoryStore: storage.NewMemoryStore(), failCreate: storeErr}
	locks := lock.NewManager()
	defer func() { _ = locks.Close() }()

	admitter := NewAdmitter(locks, store, occupancy.NewResolver(store, store))

	_, err := admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.AssertErrorIs(t, err, storeErr, "storage error should propagate")

	// The lock was released despite the error.
	store.mu.Lock()
	store.failCreate = nil
	store.mu.Unlock()

	result, err := admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.RequireNoError(t, err, "admit after store recovers")
	testutil.AssertEqual(t, types.StatusCreated, result.Status, "no stale state from the failed attempt")
}

func TestAdmit_ConflictingCreateBecomesDuplicate(t *testing.T) {
	// Simulates an out-of-band writer racing the lookup: the store
	// reports the registration only at create time.
	store := storage.NewMemoryStore()
	existing := &types.Registration{
		ID:          "reg-external",
		Resource:    testResource,
		Role:        testRole,
		Identity:    types.Identity{Kind: types.KindMember, MemberID: "m1"},
		IdentityKey: "member:m1",
		CreatedAt:   time.Now(),
	}

	locks := lock.NewManager()
	defer func() { _ = locks.Close() }()
	admitter := NewAdmitter(locks, &racingStore{MemoryStore: store, inject: existing}, occupancy.NewResolver(store, store))

	result, err := admitter.Admit(context.Background(), memberRequest("m1"))
	testutil.RequireNoError(t, err, "racing admit")
	testutil.AssertEqual(t, types.StatusDuplicate, result.Status, "conflicting create resolves to duplicate")
	testutil.AssertEqual(t, types.RegistrationID("reg-external"), result.Registration.ID, "external record returned")
}

// racingStore injects a competing registration between the admitter's
// lookup and its create.
type racingStore struct {
	*storage.MemoryStore
	mu     sync.Mutex
	inject *types.Registration
}

func (s *racingStore) Create(ctx context.Context, reg *types.Registration) error {
	s.mu.Lock()
	inject := s.inject
	s.inject = nil
	s.mu.Unlock()
	if inject != nil {
		if err := s.MemoryStore.Create(ctx, inject); err != nil {
			return err
		}
	}
	return s.MemoryStore.Create(ctx, reg)
}
