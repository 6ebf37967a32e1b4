package server

import (
	"errors"
	"strings"
	"testing"

	"github.com/ekarlsen/seatlock/logger"
	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/testutil"
)

func TestValidator_AdmitRequest(t *testing.T) {
	v := NewRequestValidator(logger.NewNoOpLogger())

	valid := &pb.AdmitRequest{
		ResourceId: "event-1",
		RoleId:     "volunteer",
		Identity:   &pb.Identity{Kind: "member", MemberId: "m1"},
	}
	testutil.AssertNoError(t, v.ValidateAdmitRequest(valid), "valid member request")

	validGuest := &pb.AdmitRequest{
		ResourceId: "event-1",
		RoleId:     "volunteer",
		Identity:   &pb.Identity{Kind: "guest", Phone: "+4712345678"},
	}
	testutil.AssertNoError(t, v.ValidateAdmitRequest(validGuest), "valid guest request")

	testutil.AssertError(t, v.ValidateAdmitRequest(nil), "nil request")

	longID := strings.Repeat("x", MaxIDLength+1)
	tooLong := &pb.AdmitRequest{
		ResourceId: longID,
		RoleId:     "volunteer",
		Identity:   &pb.Identity{Kind: "member", MemberId: "m1"},
	}
	err := v.ValidateAdmitRequest(tooLong)
	testutil.RequireError(t, err, "oversized resource id")

	var verr *ValidationError
	testutil.RequireTrue(t, errors.As(err, &verr), "typed validation error")
	testutil.AssertEqual(t, "resource_id", verr.Field, "failing field")

	blank := &pb.AdmitRequest{
		ResourceId: "   ",
		RoleId:     "volunteer",
		Identity:   &pb.Identity{Kind: "member", MemberId: "m1"},
	}
	testutil.AssertError(t, v.ValidateAdmitRequest(blank), "whitespace-only resource id")
}

func TestValidator_ClaimOnceRequest(t *testing.T) {
	v := NewRequestValidator(logger.NewNoOpLogger())

	testutil.AssertNoError(t, v.ValidateClaimOnceRequest(&pb.ClaimOnceRequest{FlagId: "booking-1/reminder"}), "valid request")
	testutil.AssertError(t, v.ValidateClaimOnceRequest(&pb.ClaimOnceRequest{}), "empty flag id")
	testutil.AssertError(t, v.ValidateClaimOnceRequest(nil), "nil request")
}
