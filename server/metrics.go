package server

import (
	"time"

	pb "github.com/ekarlsen/seatlock/proto"
)

// ServerMetrics defines observability hooks for server operations.
// All methods must be safe for concurrent use.
type ServerMetrics interface {
	// IncrGRPCRequest increments the count for an RPC method invocation.
	// 'method' should match a SeatLock RPC (e.g., "Admit", "ClaimOnce").
	// 'success' reflects overall success from the client's perspective.
	IncrGRPCRequest(method string, success bool)

	// IncrValidationError increments validation failure counters.
	IncrValidationError(method string, field string)

	// IncrRateLimited increments the count of rate-limited requests.
	IncrRateLimited(method string)

	// IncrClientError counts errors caused by invalid client input or a
	// rejected admission.
	IncrClientError(method string, errorCode pb.ErrorCode)

	// IncrServerError counts internal server-side errors.
	IncrServerError(method string, errorCode pb.ErrorCode)

	// ObserveRequestLatency records end-to-end latency for one RPC call.
	ObserveRequestLatency(method string, latency time.Duration)

	// Reset clears all metrics.
	Reset()
}

// NoOpServerMetrics is a ServerMetrics implementation that discards all
// data.
type NoOpServerMetrics struct{}

// NewNoOpServerMetrics returns a ServerMetrics collector that does nothing.
func NewNoOpServerMetrics() ServerMetrics { return &NoOpServerMetrics{} }

func (*NoOpServerMetrics) IncrGRPCRequest(string, bool)                {}
func (*NoOpServerMetrics) IncrValidationError(string, string)          {}
func (*NoOpServerMetrics) IncrRateLimited(string)                      {}
func (*NoOpServerMetrics) IncrClientError(string, pb.ErrorCode)        {}
func (*NoOpServerMetrics) IncrServerError(string, pb.ErrorCode)        {}
func (*NoOpServerMetrics) ObserveRequestLatency(string, time.Duration) {}
func (*NoOpServerMetrics) Reset()                                      {}
