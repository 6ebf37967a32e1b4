package client

import (
	"errors"
	"fmt"

	pb "github.com/ekarlsen/seatlock/proto"
)

var (
	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("client: client closed")

	// ErrNoEndpoint indicates no server endpoint was configured.
	ErrNoEndpoint = errors.New("client: no endpoint configured")

	// ErrCapacityExceeded indicates the server rejected the admission
	// because the role is full. Terminal; retrying will not help.
	ErrCapacityExceeded = errors.New("client: capacity exceeded")

	// ErrInvalidArgument indicates the server rejected the request as
	// malformed.
	ErrInvalidArgument = errors.New("client: invalid argument")
)

// ServerError carries a structured error detail returned by the server.
type ServerError struct {
	Code    pb.ErrorCode
	Message string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("client: server error %s: %s", e.Code, e.Message)
}

// Unwrap maps well-known codes onto package sentinels so callers can
// use errors.Is without inspecting codes.
func (e *ServerError) Unwrap() error {
	switch e.Code {
	case pb.ErrorCode_CAPACITY_EXCEEDED:
		return ErrCapacityExceeded
	case pb.ErrorCode_INVALID_ARGUMENT:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// errorFromDetail converts a response ErrorDetail into a Go error.
func errorFromDetail(detail *pb.ErrorDetail) error {
	if detail == nil {
		return nil
	}
	return &ServerError{Code: detail.Code, Message: detail.Message}
}

// extractErrorDetail returns the error's embedded detail, if any.
func extractErrorDetail(err error) *pb.ErrorDetail {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return &pb.ErrorDetail{Code: serverErr.Code, Message: serverErr.Message}
	}
	return nil
}
