package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/ekarlsen/seatlock/admission"
	"github.com/ekarlsen/seatlock/claim"
	"github.com/ekarlsen/seatlock/logger"
	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/types"
)

// seatLockServer implements SeatLockServer over the admission and claim
// cores. Capacity decisions never happen here; the server's job is
// validation, rate limiting, and translating core results onto the wire.
type seatLockServer struct {
	pb.UnimplementedSeatLockServer

	config    Config
	admitter  admission.Admitter
	claimer   claim.Claimer
	validator RequestValidator
	limiter   RateLimiter
	logger    logger.Logger
	metrics   ServerMetrics

	mu         sync.Mutex
	started    bool
	stopped    bool
	grpcServer *grpc.Server
	listener   net.Listener
}

// NewServer creates a SeatLockServer from the given cores and config.
func NewServer(config Config, admitter admission.Admitter, claimer claim.Claimer) (SeatLockServer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if admitter == nil {
		return nil, NewConfigError("admitter cannot be nil")
	}
	if claimer == nil {
		return nil, NewConfigError("claimer cannot be nil")
	}

	log := config.Logger.WithComponent("server")
	var limiter RateLimiter = noOpRateLimiter{}
	if config.EnableRateLimit {
		limiter = NewTokenBucketRateLimiter(config.RateLimit, config.RateLimitBurst, config.RateLimitWindow, log)
	}

	return &seatLockServer{
		config:    config,
		admitter:  admitter,
		claimer:   claimer,
		validator: NewRequestValidator(log),
		limiter:   limiter,
		logger:    log,
		metrics:   config.Metrics,
	}, nil
}

func (s *seatLockServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrServerAlreadyStarted
	}
	if s.stopped {
		return ErrServerStopped
	}

	listener, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		return fmt.Errorf("server: listening on %s: %w", s.config.ListenAddress, err)
	}

	s.listener = listener
	s.grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(s.config.MaxRequestSize),
	)
	pb.RegisterSeatLockServer(s.grpcServer, s)

	s.started = true
	s.logger.Infow("server listening", "address", listener.Addr().String())

	go func() {
		if err := s.grpcServer.Serve(listener); err != nil {
			s.logger.Errorw("gRPC serve ended", "error", err)
		}
	}()
	return nil
}

func (s *seatLockServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return ErrServerNotStarted
	}
	s.stopped = true
	grpcServer := s.grpcServer
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infow("server stopped gracefully")
		return nil
	case <-ctx.Done():
		grpcServer.Stop()
		s.logger.Warnw("graceful shutdown deadline exceeded, forced stop")
		return ErrShutdownTimeout
	}
}

func (s *seatLockServer) Metrics() ServerMetrics {
	return s.metrics
}

// Address returns the bound listen address, useful when the config used
// port 0.
func (s *seatLockServer) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// admitGate runs the shared preamble for every RPC: rate limiting and
// request-scoped timeout.
func (s *seatLockServer) admitGate(ctx context.Context, method string) (context.Context, context.CancelFunc, error) {
	if !s.limiter.Allow() {
		s.metrics.IncrRateLimited(method)
		return nil, nil, ErrRateLimited
	}
	reqCtx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	return reqCtx, cancel, nil
}

func (s *seatLockServer) Admit(ctx context.Context, req *pb.AdmitRequest) (*pb.AdmitResponse, error) {
	const method = "Admit"
	start := time.Now()
	defer func() { s.metrics.ObserveRequestLatency(method, time.Since(start)) }()

	if err := s.validator.ValidateAdmitRequest(req); err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		s.metrics.IncrValidationError(method, validationField(err))
		return &pb.AdmitResponse{Error: ErrorToProtoError(err)}, nil
	}

	reqCtx, cancel, err := s.admitGate(ctx, method)
	if err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		return &pb.AdmitResponse{Error: ErrorToProtoError(err)}, nil
	}
	defer cancel()

	result, err := s.admitter.Admit(reqCtx, admission.Request{
		Resource: types.ResourceID(req.ResourceId),
		Role:     types.RoleID(req.RoleId),
		Identity: identityFromProto(req.Identity),
	})
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrGRPCRequest(method, false)
		s.recordErrorMetric(method, detail.Code)
		return &pb.AdmitResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(method, true)
	return &pb.AdmitResponse{
		Status: string(result.Status),
		Before: occupancyToProto(result.Before),
		After:  occupancyToProto(result.After),
	}, nil
}

func (s *seatLockServer) GetOccupancy(ctx context.Context, req *pb.GetOccupancyRequest) (*pb.GetOccupancyResponse, error) {
	const method = "GetOccupancy"
	start := time.Now()
	defer func() { s.metrics.ObserveRequestLatency(method, time.Since(start)) }()

	if err := s.validator.ValidateGetOccupancyRequest(req); err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		s.metrics.IncrValidationError(method, validationField(err))
		return &pb.GetOccupancyResponse{Error: ErrorToProtoError(err)}, nil
	}

	reqCtx, cancel, err := s.admitGate(ctx, method)
	if err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		return &pb.GetOccupancyResponse{Error: ErrorToProtoError(err)}, nil
	}
	defer cancel()

	occ, err := s.admitter.GetOccupancy(reqCtx, types.ResourceID(req.ResourceId), types.RoleID(req.RoleId))
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrGRPCRequest(method, false)
		s.recordErrorMetric(method, detail.Code)
		return &pb.GetOccupancyResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(method, true)
	return &pb.GetOccupancyResponse{Occupancy: occupancyToProto(occ)}, nil
}

func (s *seatLockServer) ClaimOnce(ctx context.Context, req *pb.ClaimOnceRequest) (*pb.ClaimOnceResponse, error) {
	const method = "ClaimOnce"
	start := time.Now()
	defer func() { s.metrics.ObserveRequestLatency(method, time.Since(start)) }()

	if err := s.validator.ValidateClaimOnceRequest(req); err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		s.metrics.IncrValidationError(method, validationField(err))
		return &pb.ClaimOnceResponse{Error: ErrorToProtoError(err)}, nil
	}

	reqCtx, cancel, err := s.admitGate(ctx, method)
	if err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		return &pb.ClaimOnceResponse{Error: ErrorToProtoError(err)}, nil
	}
	defer cancel()

	claimed, err := s.claimer.ClaimAs(reqCtx, types.FlagID(req.FlagId), req.Claimant)
	if err != nil {
		detail := ErrorToProtoError(err)
		s.metrics.IncrGRPCRequest(method, false)
		s.recordErrorMetric(method, detail.Code)
		return &pb.ClaimOnceResponse{Error: detail}, nil
	}

	s.metrics.IncrGRPCRequest(method, true)
	return &pb.ClaimOnceResponse{Claimed: claimed}, nil
}

func (s *seatLockServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	s.mu.Lock()
	healthy := s.started && !s.stopped
	s.mu.Unlock()
	return &pb.HealthResponse{Healthy: healthy}, nil
}

func (s *seatLockServer) recordErrorMetric(method string, code pb.ErrorCode) {
	switch code {
	case pb.ErrorCode_INVALID_ARGUMENT, pb.ErrorCode_CAPACITY_EXCEEDED, pb.ErrorCode_RATE_LIMITED:
		s.metrics.IncrClientError(method, code)
	default:
		s.metrics.IncrServerError(method, code)
	}
}

func validationField(err error) string {
	if verr, ok := err.(*ValidationError); ok {
		return verr.Field
	}
	return "unknown"
}
