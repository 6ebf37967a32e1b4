package storage

import (
	"context"
	"sync"
	"time"

	"github.com/ekarlsen/seatlock/types"
)

// MemoryStore is a mutex-guarded in-memory Store. It is the reference
// implementation and the default test backend. Being process-local, its
// FlagStore atomicity only extends to callers within the same process.
type MemoryStore struct {
	mu sync.RWMutex

	// registrations[roleKey][identityKey]
	registrations map[string]map[string]*types.Registration
	capacities    map[string]int64
	flags         map[types.FlagID]*types.OneShotFlag
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		registrations: make(map[string]map[string]*types.Registration),
		capacities:    make(map[string]int64),
		flags:         make(map[types.FlagID]*types.OneShotFlag),
	}
}

func roleKey(resource types.ResourceID, role types.RoleID) string {
	return string(resource) + "/" + string(role)
}

// FindByIdentity implements RegistrationStore.
func (s *MemoryStore) FindByIdentity(_ context.Context, resource types.ResourceID, role types.RoleID, identityKey string) (*types.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if reg, ok := s.registrations[roleKey(resource, role)][identityKey]; ok {
		copied := *reg
		return &copied, nil
	}
	return nil, ErrRegistrationNotFound
}

// Create implements RegistrationStore. The existence check and insert
// happen under one write lock, making the create conditional.
func (s *MemoryStore) Create(_ context.Context, reg *types.Registration) error {
	if reg == nil || reg.ID == "" || reg.IdentityKey == "" {
		return ErrInvalidRegistration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rk := roleKey(reg.Resource, reg.Role)
	byIdentity, ok := s.registrations[rk]
	if !ok {
		byIdentity = make(map[string]*types.Registration)
		s.registrations[rk] = byIdentity
	}
	if _, exists := byIdentity[reg.IdentityKey]; exists {
		return ErrAlreadyRegistered
	}

	copied := *reg
	byIdentity[reg.IdentityKey] = &copied
	return nil
}

// Counts implements RegistrationStore.
func (s *MemoryStore) Counts(_ context.Context, resource types.ResourceID, role types.RoleID) (committed, guests int64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, reg := range s.registrations[roleKey(resource, role)] {
		if reg.Identity.Kind == types.KindGuest {
			guests++
		} else {
			committed++
		}
	}
	return committed, guests, nil
}

// Delete implements RegistrationStore.
func (s *MemoryStore) Delete(_ context.Context, resource types.ResourceID, role types.RoleID, identityKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rk := roleKey(resource, role)
	if _, ok := s.registrations[rk][identityKey]; !ok {
		return ErrRegistrationNotFound
	}
	delete(s.registrations[rk], identityKey)
	if len(s.registrations[rk]) == 0 {
		delete(s.registrations, rk)
	}
	return nil
}

// RoleCapacity implements CapacityStore.
func (s *MemoryStore) RoleCapacity(_ context.Context, resource types.ResourceID, role types.RoleID) (*int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if capacity, ok := s.capacities[roleKey(resource, role)]; ok {
		return &capacity, nil
	}
	return nil, nil
}

// SetRoleCapacity implements CapacityStore.
func (s *MemoryStore) SetRoleCapacity(_ context.Context, resource types.ResourceID, role types.RoleID, capacity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.capacities[roleKey(resource, role)] = capacity
	return nil
}

// Claim implements FlagStore. The check and set happen under one write
// lock, so exactly one concurrent claimant observes the transition.
func (s *MemoryStore) Claim(_ context.Context, flag types.FlagID, claimant string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.flags[flag]; ok && existing.IsSet {
		return false, nil
	}
	s.flags[flag] = &types.OneShotFlag{
		ID:       flag,
		IsSet:    true,
		SetAt:    at,
		Claimant: claimant,
	}
	return true, nil
}

// Get implements FlagStore.
func (s *MemoryStore) Get(_ context.Context, flag types.FlagID) (*types.OneShotFlag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if existing, ok := s.flags[flag]; ok {
		copied := *existing
		return &copied, nil
	}
	return nil, ErrFlagNotFound
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }
