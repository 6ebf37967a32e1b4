package admission

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/ekarlsen/seatlock/lock"
	"github.com/ekarlsen/seatlock/logger"
	"github.com/ekarlsen/seatlock/occupancy"
	"github.com/ekarlsen/seatlock/storage"
	"github.com/ekarlsen/seatlock/types"
)

type admitter struct {
	locks         lock.Manager
	registrations storage.RegistrationStore
	resolver      occupancy.Resolver

	lockTimeout time.Duration
	clock       types.Clock
	logger      logger.Logger
	metrics     Metrics
	newID       func() types.RegistrationID
}

// NewAdmitter wires the admission protocol over its three collaborators:
// the lock manager that serializes writers per (resource, role), the
// registration store that holds the source of truth, and the resolver
// that computes occupancy from it.
func NewAdmitter(locks lock.Manager, registrations storage.RegistrationStore, resolver occupancy.Resolver, opts ...Option) Admitter {
	a := &admitter{
		locks:         locks,
		registrations: registrations,
		resolver:      resolver,
		lockTimeout:   DefaultLockTimeout,
		clock:         types.NewStandardClock(),
		logger:        logger.NewNoOpLogger(),
		metrics:       NewNoOpMetrics(),
		newID:         randomRegistrationID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func randomRegistrationID() types.RegistrationID {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("admission: reading random bytes: %v", err))
	}
	return types.RegistrationID("reg-" + hex.EncodeToString(buf))
}

func (a *admitter) Admit(ctx context.Context, req Request) (*types.AdmissionResult, error) {
	start := a.clock.Now()

	if req.Resource == "" || req.Role == "" {
		return nil, ErrInvalidRequest
	}
	identityKey := req.Identity.Key()
	if identityKey == "" {
		return nil, ErrInvalidIdentity
	}

	key := types.AdmissionLockKey(req.Resource, req.Role)
	result, err := lock.Do(ctx, a.locks, key, a.lockTimeout, func(ctx context.Context) (*types.AdmissionResult, error) {
		return a.admitLocked(ctx, req, identityKey)
	})

	a.metrics.ObserveAdmitDuration(req.Resource, req.Role, a.clock.Now().Sub(start))
	switch {
	case err == nil && result.Status == types.StatusCreated:
		a.metrics.IncrAdmitted(req.Resource, req.Role)
	case err == nil:
		a.metrics.IncrDuplicate(req.Resource, req.Role)
	case errors.Is(err, ErrCapacityExceeded):
		a.metrics.IncrRejected(req.Resource, req.Role)
	default:
		a.metrics.IncrFailed(req.Resource, req.Role)
	}
	return result, err
}

// admitLocked runs the decision with the admission lock held. Order
// matters: the duplicate check comes first and never consults capacity,
// so a retried registration succeeds even on a role that has since
// filled up.
func (a *admitter) admitLocked(ctx context.Context, req Request, identityKey string) (*types.AdmissionResult, error) {
	existing, err := a.registrations.FindByIdentity(ctx, req.Resource, req.Role, identityKey)
	if err == nil {
		occ, occErr := a.resolver.GetOccupancy(ctx, req.Resource, req.Role)
		if occErr != nil {
			return nil, occErr
		}
		a.logger.Debugw("duplicate admission short-circuited",
			"resource", req.Resource, "role", req.Role, "identity", identityKey)
		return &types.AdmissionResult{
			Status:       types.StatusDuplicate,
			Before:       occ,
			After:        occ,
			Registration: existing,
		}, nil
	}
	if !errors.Is(err, storage.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("admission: looking up existing registration: %w", err)
	}

	before, err := a.resolver.GetOccupancy(ctx, req.Resource, req.Role)
	if err != nil {
		return nil, err
	}
	if before.IsFull() {
		a.logger.Infow("admission rejected, role full",
			"resource", req.Resource, "role", req.Role,
			"total", before.Total, "capacity", *before.Capacity)
		return nil, &CapacityError{Resource: req.Resource, Role: req.Role, Occupancy: before}
	}

	// The lock only serializes writers in this process. Re-read once more
	// right before the write to catch writers that bypassed it, such as
	// another instance sharing the store.
	recheck, err := a.resolver.GetOccupancy(ctx, req.Resource, req.Role)
	if err != nil {
		return nil, err
	}
	if recheck.IsFull() {
		a.logger.Infow("admission rejected on pre-write re-check",
			"resource", req.Resource, "role", req.Role, "total", recheck.Total)
		return nil, &CapacityError{Resource: req.Resource, Role: req.Role, Occupancy: recheck}
	}

	reg := &types.Registration{
		ID:          a.newID(),
		Resource:    req.Resource,
		Role:        req.Role,
		Identity:    req.Identity,
		IdentityKey: identityKey,
		CreatedAt:   a.clock.Now(),
	}
	if err := a.registrations.Create(ctx, reg); err != nil {
		// The store is shared; another process may have written the same
		// identity between our lookup and the conditional create. Treat
		// the collision as the duplicate it is.
		if errors.Is(err, storage.ErrAlreadyRegistered) {
			existing, findErr := a.registrations.FindByIdentity(ctx, req.Resource, req.Role, identityKey)
			if findErr != nil {
				return nil, fmt.Errorf("admission: resolving conflicting registration: %w", findErr)
			}
			return &types.AdmissionResult{
				Status:       types.StatusDuplicate,
				Before:       before,
				After:        before,
				Registration: existing,
			}, nil
		}
		return nil, fmt.Errorf("admission: committing registration: %w", err)
	}

	after, err := a.resolver.GetOccupancy(ctx, req.Resource, req.Role)
	if err != nil {
		// The registration is committed; report it with the pre-commit
		// view rather than failing the whole admission.
		a.logger.Warnw("occupancy recompute failed after commit",
			"resource", req.Resource, "role", req.Role, "error", err)
		after = before
		after.Total++
		if req.Identity.Kind == types.KindGuest {
			after.Guests++
		} else {
			after.Committed++
		}
	}

	a.logger.Infow("registration committed",
		"resource", req.Resource, "role", req.Role,
		"registration", reg.ID, "total", after.Total)
	return &types.AdmissionResult{
		Status:       types.StatusCreated,
		Before:       before,
		After:        after,
		Registration: reg,
	}, nil
}

func (a *admitter) GetOccupancy(ctx context.Context, resource types.ResourceID, role types.RoleID) (types.Occupancy, error) {
	return a.resolver.GetOccupancy(ctx, resource, role)
}
