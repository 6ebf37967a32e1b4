package occupancy

import (
	"context"

	"github.com/ekarlsen/seatlock/types"
)

// Resolver computes the current fill level of a capacity-bounded role
// from source-of-truth counts.
//
// Reads made outside the admission lock are best-effort and suitable
// only for early user feedback; the authoritative read for a commit
// decision happens inside the lock.
type Resolver interface {
	// GetOccupancy counts committed and guest registrations for
	// (resource, role) and resolves the role's configured capacity.
	// A missing or unusable capacity yields Occupancy.Capacity == nil,
	// which IsFull treats as unbounded.
	GetOccupancy(ctx context.Context, resource types.ResourceID, role types.RoleID) (types.Occupancy, error)
}
