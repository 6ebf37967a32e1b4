package server

import (
	"errors"
	"fmt"

	"github.com/ekarlsen/seatlock/admission"
	"github.com/ekarlsen/seatlock/lock"
	pb "github.com/ekarlsen/seatlock/proto"
)

var (
	// ErrServerNotStarted indicates the server has not been started.
	ErrServerNotStarted = errors.New("server: server not started")

	// ErrServerAlreadyStarted indicates an attempt to start a running server.
	ErrServerAlreadyStarted = errors.New("server: server already started")

	// ErrServerStopped indicates the server has been stopped and cannot
	// process requests.
	ErrServerStopped = errors.New("server: server stopped")

	// ErrRateLimited indicates the request was rejected by rate limiting.
	ErrRateLimited = errors.New("server: request rate limited")

	// ErrShutdownTimeout indicates graceful shutdown timed out.
	ErrShutdownTimeout = errors.New("server: shutdown timed out")
)

// ValidationError represents a request validation failure with the field
// that caused it.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("server: validation error for field '%s' (value: %v): %s", e.Field, e.Value, e.Message)
}

// ConfigError indicates an invalid server configuration.
type ConfigError struct {
	Message string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("server: invalid configuration: %s", e.Message)
}

// ErrorToProtoError converts Go errors to protobuf ErrorDetail messages
// so clients receive a structured code alongside the message.
func ErrorToProtoError(err error) *pb.ErrorDetail {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_INVALID_ARGUMENT,
			Message: validationErr.Error(),
		}
	}

	switch {
	case errors.Is(err, admission.ErrCapacityExceeded):
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_CAPACITY_EXCEEDED,
			Message: err.Error(),
		}
	case errors.Is(err, admission.ErrInvalidIdentity),
		errors.Is(err, admission.ErrInvalidRequest):
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_INVALID_ARGUMENT,
			Message: err.Error(),
		}
	case errors.Is(err, lock.ErrLockTimeout):
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_LOCK_TIMEOUT,
			Message: err.Error(),
		}
	case errors.Is(err, ErrRateLimited):
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_RATE_LIMITED,
			Message: err.Error(),
		}
	case errors.Is(err, ErrServerNotStarted), errors.Is(err, ErrServerStopped):
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_UNAVAILABLE,
			Message: err.Error(),
		}
	default:
		return &pb.ErrorDetail{
			Code:    pb.ErrorCode_INTERNAL_ERROR,
			Message: err.Error(),
		}
	}
}
