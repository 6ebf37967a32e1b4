package server

import (
	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/types"
)

func identityFromProto(identity *pb.Identity) types.Identity {
	if identity == nil {
		return types.Identity{}
	}
	return types.Identity{
		Kind:        types.IdentityKind(identity.Kind),
		MemberID:    identity.MemberId,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		Phone:       identity.Phone,
	}
}

func occupancyToProto(occ types.Occupancy) *pb.Occupancy {
	out := &pb.Occupancy{
		Committed: occ.Committed,
		Guests:    occ.Guests,
		Total:     occ.Total,
	}
	if occ.Capacity != nil {
		out.Capacity = *occ.Capacity
		out.CapacityKnown = true
	}
	return out
}
