package server

import (
	"context"

	pb "github.com/ekarlsen/seatlock/proto"
)

// SeatLockServer defines the interface for the admission-control gRPC
// service. It validates client requests, applies rate limiting, and
// delegates to the admission and claim cores.
type SeatLockServer interface {
	pb.SeatLockServer

	// Start binds the listen address and begins serving. It returns once
	// the listener is accepting; serving continues in the background.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server. The provided context can
	// set a deadline for shutdown; past it, remaining connections are
	// closed forcibly.
	Stop(ctx context.Context) error

	// Metrics returns the server's metrics collector.
	Metrics() ServerMetrics
}
