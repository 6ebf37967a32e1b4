package occupancy

import (
	"context"
	"fmt"

	"github.com/ekarlsen/seatlock/logger"
	"github.com/ekarlsen/seatlock/storage"
	"github.com/ekarlsen/seatlock/types"
)

// Option applies a configuration setting to a resolver.
type Option func(*resolver)

// WithLogger sets the logger for resolver events.
func WithLogger(log logger.Logger) Option {
	return func(r *resolver) {
		if log != nil {
			r.logger = log.WithComponent("occupancy")
		}
	}
}

type resolver struct {
	registrations storage.RegistrationStore
	capacities    storage.CapacityStore
	logger        logger.Logger
}

// NewResolver returns a Resolver backed by the given stores.
func NewResolver(registrations storage.RegistrationStore, capacities storage.CapacityStore, opts ...Option) Resolver {
	r := &resolver{
		registrations: registrations,
		capacities:    capacities,
		logger:        logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *resolver) GetOccupancy(ctx context.Context, resource types.ResourceID, role types.RoleID) (types.Occupancy, error) {
	committed, guests, err := r.registrations.Counts(ctx, resource, role)
	if err != nil {
		return types.Occupancy{}, fmt.Errorf("occupancy: counting registrations for %s/%s: %w", resource, role, err)
	}

	capacity, err := r.capacities.RoleCapacity(ctx, resource, role)
	if err != nil {
		return types.Occupancy{}, fmt.Errorf("occupancy: resolving capacity for %s/%s: %w", resource, role, err)
	}

	occ := types.Occupancy{
		Committed: committed,
		Guests:    guests,
		Total:     committed + guests,
		Capacity:  capacity,
	}

	r.logger.Debugw("resolved occupancy",
		"resource", resource,
		"role", role,
		"committed", committed,
		"guests", guests,
		"remaining", occ.Remaining())
	return occ, nil
}
