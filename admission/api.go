package admission

import (
	"context"

	"github.com/ekarlsen/seatlock/types"
)

// Request describes one admission attempt for a (resource, role) pair.
type Request struct {
	Resource types.ResourceID
	Role     types.RoleID
	Identity types.Identity
}

// Admitter decides whether an identity may register for a
// capacity-bounded role, and commits the registration when it may.
//
// Admit is the only write path for registrations. All attempts for the
// same (resource, role) pair are serialized, so the committed count can
// never exceed the configured capacity, no matter how many callers race.
type Admitter interface {
	// Admit runs the admission protocol for req:
	//
	//  1. A live registration for the same identity short-circuits to
	//     StatusDuplicate without consulting capacity. Retries of a
	//     successful registration succeed even when the role has since
	//     filled up.
	//  2. Otherwise the authoritative occupancy is read inside the lock;
	//     a full role rejects with a *CapacityError.
	//  3. Otherwise the registration is conditionally created and the
	//     occupancy recomputed.
	//
	// Errors:
	//   - *CapacityError (matches ErrCapacityExceeded) when the role is full.
	//   - ErrInvalidIdentity when the identity has no resolvable key.
	//   - ErrInvalidRequest when resource or role is empty.
	//   - lock.ErrLockTimeout when the admission lock cannot be acquired
	//     in time; nothing was written.
	//   - Storage errors are propagated; nothing was written.
	Admit(ctx context.Context, req Request) (*types.AdmissionResult, error)

	// GetOccupancy reads the current occupancy without taking the
	// admission lock. The result is advisory: it may be stale by the
	// time the caller acts on it.
	GetOccupancy(ctx context.Context, resource types.ResourceID, role types.RoleID) (types.Occupancy, error)
}
