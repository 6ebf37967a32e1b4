package client

import (
	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/types"
)

func identityToProto(identity types.Identity) *pb.Identity {
	return &pb.Identity{
		Kind:        string(identity.Kind),
		MemberId:    identity.MemberID,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		Phone:       identity.Phone,
	}
}

func occupancyFromProto(occ *pb.Occupancy) types.Occupancy {
	if occ == nil {
		return types.Occupancy{}
	}
	out := types.Occupancy{
		Committed: occ.Committed,
		Guests:    occ.Guests,
		Total:     occ.Total,
	}
	if occ.CapacityKnown {
		capacity := occ.Capacity
		out.Capacity = &capacity
	}
	return out
}
