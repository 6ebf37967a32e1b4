package storage

import (
	"context"
	"time"

	"github.com/ekarlsen/seatlock/types"
)

// RegistrationStore persists registration records. The admission core
// requires of it only consistent count-by-filter queries, find-one
// lookups, and one conditional create.
type RegistrationStore interface {
	// FindByIdentity returns the live registration for identityKey on
	// (resource, role), or ErrRegistrationNotFound.
	FindByIdentity(ctx context.Context, resource types.ResourceID, role types.RoleID, identityKey string) (*types.Registration, error)

	// Create persists reg. It fails with ErrAlreadyRegistered when a
	// registration with the same identity key already exists for the
	// (resource, role) pair. The write is conditional in a single
	// storage operation.
	Create(ctx context.Context, reg *types.Registration) error

	// Counts returns the number of committed member registrations and
	// guest registrations for (resource, role), read consistently from
	// the source of truth.
	Counts(ctx context.Context, resource types.ResourceID, role types.RoleID) (committed, guests int64, err error)

	// Delete removes the registration for identityKey. This is the
	// cancellation path; it sits outside the admission critical section.
	// Returns ErrRegistrationNotFound when nothing was removed.
	Delete(ctx context.Context, resource types.ResourceID, role types.RoleID, identityKey string) error
}

// CapacityStore reads and writes per-role capacity configuration.
type CapacityStore interface {
	// RoleCapacity returns the configured capacity for (resource, role),
	// or nil when the capacity is missing or unusable. A nil capacity
	// means the role is unbounded for admission purposes.
	RoleCapacity(ctx context.Context, resource types.ResourceID, role types.RoleID) (*int64, error)

	// SetRoleCapacity configures the capacity for (resource, role).
	SetRoleCapacity(ctx context.Context, resource types.ResourceID, role types.RoleID, capacity int64) error
}

// FlagStore persists one-shot flags. Claim must be a genuinely atomic
// single-document conditional update in the backing engine; the claim
// package's cross-process guarantee rests entirely on it.
type FlagStore interface {
	// Claim sets the flag to claimed if and only if it is currently
	// unset, in one atomic operation. It returns true only for the
	// caller whose update actually changed the flag.
	Claim(ctx context.Context, flag types.FlagID, claimant string, at time.Time) (bool, error)

	// Get returns the flag's current state, or ErrFlagNotFound when the
	// flag has never been claimed.
	Get(ctx context.Context, flag types.FlagID) (*types.OneShotFlag, error)
}

// Store bundles all storage collaborators behind one implementation.
type Store interface {
	RegistrationStore
	CapacityStore
	FlagStore

	// Close releases any underlying connections.
	Close() error
}
