package server

import (
	"context"
	"testing"
	"time"

	"github.com/ekarlsen/seatlock/admission"
	"github.com/ekarlsen/seatlock/claim"
	"github.com/ekarlsen/seatlock/lock"
	"github.com/ekarlsen/seatlock/occupancy"
	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/storage"
	"github.com/ekarlsen/seatlock/testutil"
	"github.com/ekarlsen/seatlock/types"
)

func createTestServer(t *testing.T, mutate func(*Config)) (SeatLockServer, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	locks := lock.NewManager()
	t.Cleanup(func() { _ = locks.Close() })

	resolver := occupancy.NewResolver(store, store)
	admitter := admission.NewAdmitter(locks, store, resolver)
	claimer := claim.NewClaimer(store, claim.WithClaimant("test-server"))

	config := DefaultConfig()
	if mutate != nil {
		mutate(&config)
	}

	srv, err := NewServer(config, admitter, claimer)
	testutil.RequireNoError(t, err, "creating server")
	return srv, store
}

func memberAdmitRequest(memberID string) *pb.AdmitRequest {
	return &pb.AdmitRequest{
		ResourceId: "event-1",
		RoleId:     "volunteer",
		Identity:   &pb.Identity{Kind: "member", MemberId: memberID},
	}
}

func TestServer_Admit(t *testing.T) {
	srv, store := createTestServer(t, nil)
	err := store.SetRoleCapacity(context.Background(), "event-1", "volunteer", 2)
	testutil.RequireNoError(t, err, "setting capacity")

	resp, err := srv.Admit(context.Background(), memberAdmitRequest("m1"))
	testutil.RequireNoError(t, err, "admit RPC")
	testutil.AssertNil(t, resp.Error, "no error detail")
	testutil.AssertEqual(t, string(types.StatusCreated), resp.Status, "status")
	testutil.AssertEqual(t, int64(1), resp.After.GetTotal(), "occupancy after")
	testutil.AssertTrue(t, resp.After.GetCapacityKnown(), "capacity known")
	testutil.AssertEqual(t, int64(2), resp.After.GetCapacity(), "capacity value")
}

func TestServer_Admit_Duplicate(t *testing.T) {
	srv, _ := createTestServer(t, nil)

	_, err := srv.Admit(context.Background(), memberAdmitRequest("m1"))
	testutil.RequireNoError(t, err, "first admit")

	resp, err := srv.Admit(context.Background(), memberAdmitRequest("m1"))
	testutil.RequireNoError(t, err, "second admit")
	testutil.AssertNil(t, resp.Error, "duplicate is not an error")
	testutil.AssertEqual(t, string(types.StatusDuplicate), resp.Status, "status")
}

func TestServer_Admit_CapacityExceeded(t *testing.T) {
	srv, store := createTestServer(t, nil)
	err := store.SetRoleCapacity(context.Background(), "event-1", "volunteer", 1)
	testutil.RequireNoError(t, err, "setting capacity")

	_, err = srv.Admit(context.Background(), memberAdmitRequest("m1"))
	testutil.RequireNoError(t, err, "first admit")

	resp, err := srv.Admit(context.Background(), memberAdmitRequest("m2"))
	testutil.RequireNoError(t, err, "second admit RPC succeeds at transport level")
	testutil.RequireNotNil(t, resp.Error, "error detail present")
	testutil.AssertEqual(t, pb.ErrorCode_CAPACITY_EXCEEDED, resp.Error.Code, "error code")
}

func TestServer_Admit_Validation(t *testing.T) {
	srv, _ := createTestServer(t, nil)

	tests := []struct {
		name string
		req  *pb.AdmitRequest
	}{
		{"missing resource", &pb.AdmitRequest{RoleId: "volunteer", Identity: &pb.Identity{Kind: "member", MemberId: "m1"}}},
		{"missing role", &pb.AdmitRequest{ResourceId: "event-1", Identity: &pb.Identity{Kind: "member", MemberId: "m1"}}},
		{"nil identity", &pb.AdmitRequest{ResourceId: "event-1", RoleId: "volunteer"}},
		{"unknown kind", &pb.AdmitRequest{ResourceId: "event-1", RoleId: "volunteer", Identity: &pb.Identity{Kind: "robot"}}},
		{"guest without contact", &pb.AdmitRequest{ResourceId: "event-1", RoleId: "volunteer", Identity: &pb.Identity{Kind: "guest"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.Admit(context.Background(), tt.req)
			testutil.RequireNoError(t, err, "RPC succeeds at transport level")
			testutil.RequireNotNil(t, resp.Error, "error detail present")
			testutil.AssertEqual(t, pb.ErrorCode_INVALID_ARGUMENT, resp.Error.Code, "error code")
		})
	}
}

func TestServer_GetOccupancy(t *testing.T) {
	srv, store := createTestServer(t, nil)
	err := store.SetRoleCapacity(context.Background(), "event-1", "volunteer", 5)
	testutil.RequireNoError(t, err, "setting capacity")

	_, err = srv.Admit(context.Background(), memberAdmitRequest("m1"))
	testutil.RequireNoError(t, err, "admit")

	resp, err := srv.GetOccupancy(context.Background(), &pb.GetOccupancyRequest{
		ResourceId: "event-1",
		RoleId:     "volunteer",
	})
	testutil.RequireNoError(t, err, "get occupancy RPC")
	testutil.AssertNil(t, resp.Error, "no error detail")
	testutil.AssertEqual(t, int64(1), resp.Occupancy.GetTotal(), "total")
	testutil.AssertEqual(t, int64(5), resp.Occupancy.GetCapacity(), "capacity")
}

func TestServer_GetOccupancy_UnknownCapacity(t *testing.T) {
	srv, _ := createTestServer(t, nil)

	resp, err := srv.GetOccupancy(context.Background(), &pb.GetOccupancyRequest{
		ResourceId: "event-1",
		RoleId:     "volunteer",
	})
	testutil.RequireNoError(t, err, "get occupancy RPC")
	testutil.AssertFalse(t, resp.Occupancy.GetCapacityKnown(), "capacity unknown")
	testutil.AssertEqual(t, int64(0), resp.Occupancy.GetCapacity(), "zero capacity field")
}

func TestServer_ClaimOnce(t *testing.T) {
	srv, _ := createTestServer(t, nil)
	req := &pb.ClaimOnceRequest{FlagId: "booking-1/reminder"}

	resp, err := srv.ClaimOnce(context.Background(), req)
	testutil.RequireNoError(t, err, "first claim RPC")
	testutil.AssertTrue(t, resp.Claimed, "first claim wins")

	resp, err = srv.ClaimOnce(context.Background(), req)
	testutil.RequireNoError(t, err, "second claim RPC")
	testutil.AssertFalse(t, resp.Claimed, "second claim loses")
	testutil.AssertNil(t, resp.Error, "a lost claim is not an error")
}

func TestServer_ClaimOnce_Validation(t *testing.T) {
	srv, _ := createTestServer(t, nil)

	resp, err := srv.ClaimOnce(context.Background(), &pb.ClaimOnceRequest{})
	testutil.RequireNoError(t, err, "RPC succeeds at transport level")
	testutil.RequireNotNil(t, resp.Error, "error detail present")
	testutil.AssertEqual(t, pb.ErrorCode_INVALID_ARGUMENT, resp.Error.Code, "error code")
}

func TestServer_RateLimit(t *testing.T) {
	srv, _ := createTestServer(t, func(cfg *Config) {
		cfg.EnableRateLimit = true
		cfg.RateLimit = 1
		cfg.RateLimitBurst = 1
		cfg.RateLimitWindow = time.Minute
	})

	resp, err := srv.GetOccupancy(context.Background(), &pb.GetOccupancyRequest{ResourceId: "event-1", RoleId: "volunteer"})
	testutil.RequireNoError(t, err, "first request within budget")
	testutil.AssertNil(t, resp.Error, "first request allowed")

	resp, err = srv.GetOccupancy(context.Background(), &pb.GetOccupancyRequest{ResourceId: "event-1", RoleId: "volunteer"})
	testutil.RequireNoError(t, err, "second request RPC")
	testutil.RequireNotNil(t, resp.Error, "second request rejected")
	testutil.AssertEqual(t, pb.ErrorCode_RATE_LIMITED, resp.Error.Code, "error code")
}

func TestServer_Health(t *testing.T) {
	srv, _ := createTestServer(t, func(cfg *Config) {
		cfg.ListenAddress = "127.0.0.1:0"
	})

	resp, err := srv.Health(context.Background(), &pb.HealthRequest{})
	testutil.RequireNoError(t, err, "health RPC")
	testutil.AssertFalse(t, resp.Healthy, "not healthy before start")

	err = srv.Start(context.Background())
	testutil.RequireNoError(t, err, "starting server")

	resp, err = srv.Health(context.Background(), &pb.HealthRequest{})
	testutil.RequireNoError(t, err, "health RPC after start")
	testutil.AssertTrue(t, resp.Healthy, "healthy after start")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Stop(stopCtx)
	testutil.RequireNoError(t, err, "stopping server")

	resp, err = srv.Health(context.Background(), &pb.HealthRequest{})
	testutil.RequireNoError(t, err, "health RPC after stop")
	testutil.AssertFalse(t, resp.Healthy, "not healthy after stop")
}

func TestServer_StartTwice(t *testing.T) {
	srv, _ := createTestServer(t, func(cfg *Config) {
		cfg.ListenAddress = "127.0.0.1:0"
	})

	err := srv.Start(context.Background())
	testutil.RequireNoError(t, err, "first start")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	}()

	err = srv.Start(context.Background())
	testutil.AssertErrorIs(t, err, ErrServerAlreadyStarted, "second start rejected")
}

func TestServer_InvalidConfig(t *testing.T) {
	store := storage.NewMemoryStore()
	locks := lock.NewManager()
	defer func() { _ = locks.Close() }()

	admitter := admission.NewAdmitter(locks, store, occupancy.NewResolver(store, store))
	claimer := claim.NewClaimer(store)

	config := DefaultConfig()
	config.ListenAddress = ""

	_, err := NewServer(config, admitter, claimer)
	testutil.RequireError(t, err, "empty listen address rejected")

	_, err = NewServer(DefaultConfig(), nil, claimer)
	testutil.RequireError(t, err, "nil admitter rejected")
}
