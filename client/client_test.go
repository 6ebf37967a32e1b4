package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"

	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/testutil"
	"github.com/ekarlsen/seatlock/types"
)

// fakeStub scripts per-RPC responses and records call counts.
type fakeStub struct {
	pb.SeatLockClient

	admitResponses []*pb.AdmitResponse
	admitErrs      []error
	admitCalls     int

	occupancyResp *pb.GetOccupancyResponse
	claimResp     *pb.ClaimOnceResponse
	healthResp    *pb.HealthResponse
}

func (f *fakeStub) Admit(ctx context.Context, in *pb.AdmitRequest, opts ...grpc.CallOption) (*pb.AdmitResponse, error) {
	i := f.admitCalls
	f.admitCalls++
	var err error
	if i < len(f.admitErrs) {
		err = f.admitErrs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.admitResponses) {
		return f.admitResponses[i], nil
	}
	return f.admitResponses[len(f.admitResponses)-1], nil
}

func (f *fakeStub) GetOccupancy(ctx context.Context, in *pb.GetOccupancyRequest, opts ...grpc.CallOption) (*pb.GetOccupancyResponse, error) {
	return f.occupancyResp, nil
}

func (f *fakeStub) ClaimOnce(ctx context.Context, in *pb.ClaimOnceRequest, opts ...grpc.CallOption) (*pb.ClaimOnceResponse, error) {
	return f.claimResp, nil
}

func (f *fakeStub) Health(ctx context.Context, in *pb.HealthRequest, opts ...grpc.CallOption) (*pb.HealthResponse, error) {
	return f.healthResp, nil
}

func newTestClient(stub pb.SeatLockClient) *admissionClient {
	config := DefaultClientConfig()
	config.Endpoint = "test"
	c := newWithStub(config, stub)
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func memberIdentity(id string) types.Identity {
	return types.Identity{Kind: types.KindMember, MemberID: id}
}

func TestClient_Admit(t *testing.T) {
	stub := &fakeStub{
		admitResponses: []*pb.AdmitResponse{{
			Status: string(types.StatusCreated),
			Before: &pb.Occupancy{Total: 0, Capacity: 5, CapacityKnown: true},
			After:  &pb.Occupancy{Committed: 1, Total: 1, Capacity: 5, CapacityKnown: true},
		}},
	}
	c := newTestClient(stub)

	result, err := c.Admit(context.Background(), "event-1", "volunteer", memberIdentity("m1"))
	testutil.RequireNoError(t, err, "admit")
	testutil.AssertEqual(t, types.StatusCreated, result.Status, "status")
	testutil.AssertEqual(t, int64(1), result.After.Total, "total after")
	testutil.RequireNotNil(t, result.After.Capacity, "capacity decoded")
	testutil.AssertEqual(t, int64(5), *result.After.Capacity, "capacity value")
	testutil.AssertEqual(t, 1, stub.admitCalls, "single attempt")
}

func TestClient_Admit_CapacityExceededNotRetried(t *testing.T) {
	stub := &fakeStub{
		admitResponses: []*pb.AdmitResponse{{
			Error: &pb.ErrorDetail{Code: pb.ErrorCode_CAPACITY_EXCEEDED, Message: "full"},
		}},
	}
	c := newTestClient(stub)

	_, err := c.Admit(context.Background(), "event-1", "volunteer", memberIdentity("m1"))
	testutil.AssertErrorIs(t, err, ErrCapacityExceeded, "terminal error surfaced")
	testutil.AssertEqual(t, 1, stub.admitCalls, "terminal errors are not retried")
}

func TestClient_Admit_RetriesLockTimeout(t *testing.T) {
	stub := &fakeStub{
		admitResponses: []*pb.AdmitResponse{
			{Error: &pb.ErrorDetail{Code: pb.ErrorCode_LOCK_TIMEOUT, Message: "contended"}},
			{Error: &pb.ErrorDetail{Code: pb.ErrorCode_LOCK_TIMEOUT, Message: "contended"}},
			{Status: string(types.StatusCreated), After: &pb.Occupancy{Total: 1}},
		},
	}
	c := newTestClient(stub)

	result, err := c.Admit(context.Background(), "event-1", "volunteer", memberIdentity("m1"))
	testutil.RequireNoError(t, err, "admit succeeds after retries")
	testutil.AssertEqual(t, types.StatusCreated, result.Status, "status")
	testutil.AssertEqual(t, 3, stub.admitCalls, "two retries before success")
}

func TestClient_Admit_RetriesExhausted(t *testing.T) {
	stub := &fakeStub{
		admitResponses: []*pb.AdmitResponse{
			{Error: &pb.ErrorDetail{Code: pb.ErrorCode_LOCK_TIMEOUT, Message: "contended"}},
		},
	}
	c := newTestClient(stub)

	_, err := c.Admit(context.Background(), "event-1", "volunteer", memberIdentity("m1"))
	testutil.RequireError(t, err, "exhausted retries surface the error")

	var serverErr *ServerError
	testutil.RequireTrue(t, errors.As(err, &serverErr), "wrapped server error")
	testutil.AssertEqual(t, pb.ErrorCode_LOCK_TIMEOUT, serverErr.Code, "last error code")
	testutil.AssertEqual(t, defaultMaxRetries+1, stub.admitCalls, "initial attempt plus retries")
}

func TestClient_Admit_ContextCancelStopsRetries(t *testing.T) {
	stub := &fakeStub{
		admitErrs: []error{context.Canceled},
	}
	c := newTestClient(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Admit(ctx, "event-1", "volunteer", memberIdentity("m1"))
	testutil.AssertErrorIs(t, err, context.Canceled, "cancellation surfaces immediately")
}

func TestClient_GetOccupancy(t *testing.T) {
	stub := &fakeStub{
		occupancyResp: &pb.GetOccupancyResponse{
			Occupancy: &pb.Occupancy{Committed: 2, Guests: 1, Total: 3},
		},
	}
	c := newTestClient(stub)

	occ, err := c.GetOccupancy(context.Background(), "event-1", "volunteer")
	testutil.RequireNoError(t, err, "get occupancy")
	testutil.AssertEqual(t, int64(3), occ.Total, "total")
	testutil.AssertNil(t, occ.Capacity, "unknown capacity maps to nil")
}

func TestClient_ClaimOnce(t *testing.T) {
	stub := &fakeStub{claimResp: &pb.ClaimOnceResponse{Claimed: true}}
	c := newTestClient(stub)

	claimed, err := c.ClaimOnce(context.Background(), "booking-1/reminder")
	testutil.RequireNoError(t, err, "claim once")
	testutil.AssertTrue(t, claimed, "claim won")
}

func TestClient_Health(t *testing.T) {
	stub := &fakeStub{healthResp: &pb.HealthResponse{Healthy: true}}
	c := newTestClient(stub)

	healthy, err := c.Health(context.Background())
	testutil.RequireNoError(t, err, "health")
	testutil.AssertTrue(t, healthy, "server healthy")
}

func TestClient_ClosedRejectsCalls(t *testing.T) {
	c := newTestClient(&fakeStub{})
	testutil.RequireNoError(t, c.Close(), "close")

	_, err := c.Admit(context.Background(), "event-1", "volunteer", memberIdentity("m1"))
	testutil.AssertErrorIs(t, err, ErrClientClosed, "admit after close")

	_, err = c.Health(context.Background())
	testutil.AssertErrorIs(t, err, ErrClientClosed, "health after close")
}

func TestClient_RequiresEndpoint(t *testing.T) {
	_, err := New(DefaultClientConfig())
	testutil.AssertErrorIs(t, err, ErrNoEndpoint, "missing endpoint rejected")
}

func TestCalculateBackoff_Growth(t *testing.T) {
	config := DefaultClientConfig()
	config.Endpoint = "test"
	config.RetryPolicy.JitterFactor = 0
	c := newWithStub(config, &fakeStub{})

	first := c.calculateBackoff(1)
	second := c.calculateBackoff(2)
	third := c.calculateBackoff(3)

	testutil.AssertEqual(t, defaultInitialBackoff, first, "first backoff")
	testutil.AssertEqual(t, 2*defaultInitialBackoff, second, "second backoff")
	testutil.AssertEqual(t, 4*defaultInitialBackoff, third, "third backoff")

	capped := c.calculateBackoff(20)
	testutil.AssertEqual(t, defaultMaxBackoff, capped, "backoff capped at max")
}
