package server

import (
	"strings"

	"github.com/ekarlsen/seatlock/logger"
	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/types"
)

// RequestValidator defines the interface for validating incoming gRPC
// requests. Each method returns an error if the request is invalid.
type RequestValidator interface {
	// ValidateAdmitRequest validates an AdmitRequest.
	ValidateAdmitRequest(req *pb.AdmitRequest) error

	// ValidateGetOccupancyRequest validates a GetOccupancyRequest.
	ValidateGetOccupancyRequest(req *pb.GetOccupancyRequest) error

	// ValidateClaimOnceRequest validates a ClaimOnceRequest.
	ValidateClaimOnceRequest(req *pb.ClaimOnceRequest) error
}

// requestValidator implements the RequestValidator interface.
type requestValidator struct {
	logger logger.Logger
}

// NewRequestValidator creates a new default request validator.
func NewRequestValidator(log logger.Logger) RequestValidator {
	return &requestValidator{
		logger: log,
	}
}

func (v *requestValidator) ValidateAdmitRequest(req *pb.AdmitRequest) error {
	if req == nil {
		return NewValidationError("request", nil, "request cannot be nil")
	}
	if err := v.validateID("resource_id", req.ResourceId); err != nil {
		return err
	}
	if err := v.validateID("role_id", req.RoleId); err != nil {
		return err
	}
	return v.validateIdentity(req.Identity)
}

func (v *requestValidator) ValidateGetOccupancyRequest(req *pb.GetOccupancyRequest) error {
	if req == nil {
		return NewValidationError("request", nil, "request cannot be nil")
	}
	if err := v.validateID("resource_id", req.ResourceId); err != nil {
		return err
	}
	return v.validateID("role_id", req.RoleId)
}

func (v *requestValidator) ValidateClaimOnceRequest(req *pb.ClaimOnceRequest) error {
	if req == nil {
		return NewValidationError("request", nil, "request cannot be nil")
	}
	return v.validateID("flag_id", req.FlagId)
}

func (v *requestValidator) validateID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, value, "cannot be empty")
	}
	if len(value) > MaxIDLength {
		return NewValidationError(field, value, "exceeds maximum length")
	}
	return nil
}

func (v *requestValidator) validateIdentity(identity *pb.Identity) error {
	if identity == nil {
		return NewValidationError("identity", nil, "identity cannot be nil")
	}

	switch types.IdentityKind(identity.Kind) {
	case types.KindMember:
		if err := v.validateID("identity.member_id", identity.MemberId); err != nil {
			return err
		}
	case types.KindGuest:
		if identity.Email == "" && identity.Phone == "" {
			return NewValidationError("identity", identity.Kind, "guest requires an email or phone")
		}
		if len(identity.Email) > MaxContactLength {
			return NewValidationError("identity.email", identity.Email, "exceeds maximum length")
		}
		if len(identity.Phone) > MaxContactLength {
			return NewValidationError("identity.phone", identity.Phone, "exceeds maximum length")
		}
	default:
		return NewValidationError("identity.kind", identity.Kind, "must be 'member' or 'guest'")
	}
	return nil
}
