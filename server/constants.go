package server

import "time"

const (
	// DefaultListenAddress is the default bind address for the gRPC endpoint.
	DefaultListenAddress = "0.0.0.0:50051"

	// DefaultRequestTimeout is the default timeout for processing one
	// client request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultShutdownTimeout is the default limit for graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultMaxRequestSize caps incoming gRPC requests (4MB).
	DefaultMaxRequestSize = 4 * 1024 * 1024

	// DefaultRateLimit is the default number of requests per second.
	DefaultRateLimit = 100

	// DefaultRateLimitBurst is the default burst size for rate limiting.
	DefaultRateLimitBurst = 200

	// DefaultRateLimitWindow is the default window for rate calculations.
	DefaultRateLimitWindow = time.Second

	// MaxIDLength bounds resource, role, flag and member identifiers.
	MaxIDLength = 256

	// MaxContactLength bounds email and phone fields.
	MaxContactLength = 320
)
