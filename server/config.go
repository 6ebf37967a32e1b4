package server

import (
	"time"

	"github.com/ekarlsen/seatlock/logger"
)

// Config holds the configuration settings for a SeatLock server instance.
type Config struct {
	// ListenAddress is the gRPC server's bind address (e.g., "0.0.0.0:50051").
	ListenAddress string

	RequestTimeout  time.Duration // Max time to handle a client request
	ShutdownTimeout time.Duration // Max time allowed for graceful shutdown
	MaxRequestSize  int           // Maximum size of incoming requests (in bytes)

	EnableRateLimit bool          // Whether rate limiting is enforced
	RateLimit       int           // Requests per second allowed
	RateLimitBurst  int           // Burst capacity for requests
	RateLimitWindow time.Duration // Time window used for rate calculation

	Logger  logger.Logger
	Metrics ServerMetrics
}

// DefaultConfig returns a Config pre-populated with safe defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddress:   DefaultListenAddress,
		RequestTimeout:  DefaultRequestTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxRequestSize:  DefaultMaxRequestSize,
		EnableRateLimit: false,
		RateLimit:       DefaultRateLimit,
		RateLimitBurst:  DefaultRateLimitBurst,
		RateLimitWindow: DefaultRateLimitWindow,
		Logger:          logger.NewNoOpLogger(),
		Metrics:         NewNoOpServerMetrics(),
	}
}

// Validate checks if the server configuration is valid.
func (c *Config) Validate() error {
	if c.ListenAddress == "" {
		return NewConfigError("ListenAddress cannot be empty")
	}
	if c.RequestTimeout <= 0 {
		return NewConfigError("RequestTimeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return NewConfigError("ShutdownTimeout must be positive")
	}
	if c.MaxRequestSize <= 0 {
		return NewConfigError("MaxRequestSize must be positive")
	}
	if c.EnableRateLimit {
		if c.RateLimit <= 0 {
			return NewConfigError("RateLimit must be positive when rate limiting is enabled")
		}
		if c.RateLimitBurst <= 0 {
			return NewConfigError("RateLimitBurst must be positive when rate limiting is enabled")
		}
	}
	return nil
}
