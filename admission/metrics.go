package admission

import (
	"time"

	"github.com/ekarlsen/seatlock/types"
)

// Metrics records admission outcomes. All methods must be safe for
// concurrent use.
type Metrics interface {
	// IncrAdmitted counts committed registrations.
	IncrAdmitted(resource types.ResourceID, role types.RoleID)

	// IncrDuplicate counts attempts short-circuited by an existing
	// registration.
	IncrDuplicate(resource types.ResourceID, role types.RoleID)

	// IncrRejected counts attempts rejected because the role was full.
	IncrRejected(resource types.ResourceID, role types.RoleID)

	// IncrFailed counts attempts that errored before a decision.
	IncrFailed(resource types.ResourceID, role types.RoleID)

	// ObserveAdmitDuration records the end-to-end latency of one Admit
	// call, including the lock wait.
	ObserveAdmitDuration(resource types.ResourceID, role types.RoleID, d time.Duration)

	// Reset clears all metrics.
	Reset()
}

// NoOpMetrics is a Metrics implementation that discards all data.
type NoOpMetrics struct{}

// NewNoOpMetrics returns a Metrics collector that does nothing.
func NewNoOpMetrics() Metrics { return &NoOpMetrics{} }

func (*NoOpMetrics) IncrAdmitted(types.ResourceID, types.RoleID)                      {}
func (*NoOpMetrics) IncrDuplicate(types.ResourceID, types.RoleID)                     {}
func (*NoOpMetrics) IncrRejected(types.ResourceID, types.RoleID)                      {}
func (*NoOpMetrics) IncrFailed(types.ResourceID, types.RoleID)                        {}
func (*NoOpMetrics) ObserveAdmitDuration(types.ResourceID, types.RoleID, time.Duration) {}
func (*NoOpMetrics) Reset()                                                           {}
