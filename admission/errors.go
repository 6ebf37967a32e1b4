package admission

import (
	"errors"
	"fmt"

	"github.com/ekarlsen/seatlock/types"
)

var (
	// ErrCapacityExceeded indicates the role was full at decision time.
	ErrCapacityExceeded = errors.New("admission: capacity exceeded")

	// ErrInvalidIdentity indicates the identity resolves to no usable
	// identity key.
	ErrInvalidIdentity = errors.New("admission: identity has no resolvable key")

	// ErrInvalidRequest indicates a structurally invalid admission request.
	ErrInvalidRequest = errors.New("admission: invalid request")
)

// CapacityError wraps ErrCapacityExceeded with the occupancy observed
// when the request was rejected, so callers can report how full the
// role was.
type CapacityError struct {
	Resource  types.ResourceID
	Role      types.RoleID
	Occupancy types.Occupancy
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	if e.Occupancy.Capacity != nil {
		return fmt.Sprintf("admission: capacity exceeded for %s/%s (%d of %d taken)",
			e.Resource, e.Role, e.Occupancy.Total, *e.Occupancy.Capacity)
	}
	return fmt.Sprintf("admission: capacity exceeded for %s/%s", e.Resource, e.Role)
}

// Unwrap lets errors.Is match CapacityError against ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
