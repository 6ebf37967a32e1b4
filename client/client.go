package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/ekarlsen/seatlock/proto"
	"github.com/ekarlsen/seatlock/types"
)

type admissionClient struct {
	config Config
	stub   pb.SeatLockClient
	conn   *grpc.ClientConn
	closed atomic.Bool

	// sleep is replaced in tests to avoid real backoff waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an AdmissionClient connected to config.Endpoint.
func New(config Config) (AdmissionClient, error) {
	if config.Endpoint == "" {
		return nil, ErrNoEndpoint
	}

	conn, err := grpc.NewClient(config.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("client: dialing %s: %w", config.Endpoint, err)
	}

	return &admissionClient{
		config: config,
		stub:   pb.NewSeatLockClient(conn),
		conn:   conn,
		sleep:  sleepContext,
	}, nil
}

// newWithStub builds a client over an existing stub. Used by tests.
func newWithStub(config Config, stub pb.SeatLockClient) *admissionClient {
	return &admissionClient{
		config: config,
		stub:   stub,
		sleep:  sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *admissionClient) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// executeWithRetry runs fn with exponential backoff on retryable server
// error codes. Terminal failures (capacity, validation) surface on the
// first attempt.
func (c *admissionClient) executeWithRetry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	policy := c.config.RetryPolicy
	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.tryOperation(ctx, fn)
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if !c.isRetryable(err) || attempt == policy.MaxRetries {
			break
		}

		if err := c.sleep(ctx, c.calculateBackoff(attempt+1)); err != nil {
			return err
		}
	}

	return fmt.Errorf("client: operation %q failed after %d attempts: %w", operation, policy.MaxRetries+1, lastErr)
}

func (c *admissionClient) tryOperation(ctx context.Context, fn func(ctx context.Context) error) error {
	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if c.config.RequestTimeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
	}
	defer cancel()
	return fn(reqCtx)
}

func (c *admissionClient) isRetryable(err error) bool {
	detail := extractErrorDetail(err)
	if detail == nil {
		// Transport-level failure; assume transient.
		return true
	}
	return slices.Contains(c.config.RetryPolicy.RetryableErrors, detail.Code)
}

// calculateBackoff computes exponential backoff with optional jitter.
func (c *admissionClient) calculateBackoff(attempt int) time.Duration {
	policy := c.config.RetryPolicy

	backoff := float64(policy.InitialBackoff)
	for i := 1; i < attempt; i++ {
		backoff *= policy.BackoffMultiplier
	}
	if backoff > float64(policy.MaxBackoff) {
		backoff = float64(policy.MaxBackoff)
	}

	if policy.JitterFactor > 0 {
		jitter := (rand.Float64()*2 - 1) * policy.JitterFactor * backoff
		backoff += jitter
	}

	if backoff < 0 {
		return 0
	}
	return time.Duration(backoff)
}

func (c *admissionClient) Admit(ctx context.Context, resource types.ResourceID, role types.RoleID, identity types.Identity) (*types.AdmissionResult, error) {
	var result *types.AdmissionResult
	err := c.executeWithRetry(ctx, "Admit", func(ctx context.Context) error {
		resp, err := c.stub.Admit(ctx, &pb.AdmitRequest{
			ResourceId: string(resource),
			RoleId:     string(role),
			Identity:   identityToProto(identity),
		})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(resp.Error)
		}
		result = &types.AdmissionResult{
			Status: types.AdmissionStatus(resp.Status),
			Before: occupancyFromProto(resp.Before),
			After:  occupancyFromProto(resp.After),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *admissionClient) GetOccupancy(ctx context.Context, resource types.ResourceID, role types.RoleID) (types.Occupancy, error) {
	var occ types.Occupancy
	err := c.executeWithRetry(ctx, "GetOccupancy", func(ctx context.Context) error {
		resp, err := c.stub.GetOccupancy(ctx, &pb.GetOccupancyRequest{
			ResourceId: string(resource),
			RoleId:     string(role),
		})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(resp.Error)
		}
		occ = occupancyFromProto(resp.Occupancy)
		return nil
	})
	if err != nil {
		return types.Occupancy{}, err
	}
	return occ, nil
}

func (c *admissionClient) ClaimOnce(ctx context.Context, flag types.FlagID) (bool, error) {
	var claimed bool
	err := c.executeWithRetry(ctx, "ClaimOnce", func(ctx context.Context) error {
		resp, err := c.stub.ClaimOnce(ctx, &pb.ClaimOnceRequest{
			FlagId: string(flag),
		})
		if err != nil {
			return err
		}
		if resp.Error != nil {
			return errorFromDetail(resp.Error)
		}
		claimed = resp.Claimed
		return nil
	})
	if err != nil {
		return false, err
	}
	return claimed, nil
}

func (c *admissionClient) Health(ctx context.Context) (bool, error) {
	if c.closed.Load() {
		return false, ErrClientClosed
	}
	resp, err := c.stub.Health(ctx, &pb.HealthRequest{})
	if err != nil {
		return false, err
	}
	return resp.Healthy, nil
}
