package client

import (
	"time"

	pb "github.com/ekarlsen/seatlock/proto"
)

const (
	// Default timeout for establishing a connection.
	defaultDialTimeout = 5 * time.Second

	// Default timeout for individual gRPC requests.
	defaultRequestTimeout = 30 * time.Second

	// Default number of retries for retryable failures.
	defaultMaxRetries = 3

	// Default initial backoff duration.
	defaultInitialBackoff = 100 * time.Millisecond

	// Default maximum backoff duration.
	defaultMaxBackoff = 5 * time.Second

	// Default multiplier for exponential backoff.
	defaultBackoffMultiplier = 2.0

	// Default jitter factor to randomize backoff durations.
	defaultJitterFactor = 0.1
)

// RetryPolicy controls how the client retries retryable failures.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration

	// MaxBackoff caps the delay between retries.
	MaxBackoff time.Duration

	// BackoffMultiplier grows the delay after each retry.
	BackoffMultiplier float64

	// JitterFactor randomizes each delay by up to +/- this fraction.
	JitterFactor float64

	// RetryableErrors lists the server error codes worth retrying.
	RetryableErrors []pb.ErrorCode
}

// Config holds configuration options for SeatLock clients.
type Config struct {
	// Endpoint is the SeatLock server address (e.g., "localhost:50051").
	Endpoint string

	// DialTimeout is the maximum time to establish a connection.
	DialTimeout time.Duration

	// RequestTimeout is the default timeout for individual gRPC requests.
	// A context with a shorter deadline overrides it.
	RequestTimeout time.Duration

	// RetryPolicy controls retries of transient failures.
	RetryPolicy RetryPolicy
}

// DefaultClientConfig returns a Config pre-populated with safe defaults.
// Callers must set Endpoint.
func DefaultClientConfig() Config {
	return Config{
		DialTimeout:    defaultDialTimeout,
		RequestTimeout: defaultRequestTimeout,
		RetryPolicy:    DefaultRetryPolicy(),
	}
}

// DefaultRetryPolicy returns a retry policy that handles the transient
// error codes: lock timeouts, rate limiting, and unavailability.
// Capacity rejections are terminal and never retried.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        defaultMaxRetries,
		InitialBackoff:    defaultInitialBackoff,
		MaxBackoff:        defaultMaxBackoff,
		BackoffMultiplier: defaultBackoffMultiplier,
		JitterFactor:      defaultJitterFactor,
		RetryableErrors: []pb.ErrorCode{
			pb.ErrorCode_LOCK_TIMEOUT,
			pb.ErrorCode_RATE_LIMITED,
			pb.ErrorCode_UNAVAILABLE,
		},
	}
}
