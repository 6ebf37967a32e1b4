package client

import (
	"context"

	"github.com/ekarlsen/seatlock/types"
)

// AdmissionClient is the client-side view of the SeatLock service. It
// handles connection management, request timeouts, and retries of
// transient failures with exponential backoff.
type AdmissionClient interface {
	// Admit requests admission for identity to (resource, role). A
	// duplicate registration is a success with StatusDuplicate. A full
	// role fails with an error matching ErrCapacityExceeded; transient
	// failures are retried per the configured policy before surfacing.
	Admit(ctx context.Context, resource types.ResourceID, role types.RoleID, identity types.Identity) (*types.AdmissionResult, error)

	// GetOccupancy reads the advisory occupancy for (resource, role).
	GetOccupancy(ctx context.Context, resource types.ResourceID, role types.RoleID) (types.Occupancy, error)

	// ClaimOnce attempts the one-shot claim on flag. False means the
	// claim already happened elsewhere; it is not an error.
	ClaimOnce(ctx context.Context, flag types.FlagID) (bool, error)

	// Health reports whether the server is serving.
	Health(ctx context.Context) (bool, error)

	// Close releases the underlying connection.
	Close() error
}
