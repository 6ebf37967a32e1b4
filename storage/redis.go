package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ekarlsen/seatlock/types"
)

const defaultKeyPrefix = "seatlock"

// RedisStore is a Store backed by Redis.
//
// Layout:
//   - registrations: one hash per (resource, role), field = identity key,
//     value = JSON registration. HSETNX provides the conditional create.
//   - capacities: one hash per resource, field = role ID, value = integer
//     string. A missing or non-numeric value reads as nil (unbounded).
//   - flags: one string key per flag, JSON payload. SETNX provides the
//     atomic one-shot transition, which is what makes claims safe across
//     process instances.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// RedisOption applies a configuration setting to a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix overrides the key namespace prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if trimmed := strings.Trim(prefix, ":"); trimmed != "" {
			s.prefix = trimmed
		}
	}
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		rdb:    rdb,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) registrationKey(resource types.ResourceID, role types.RoleID) string {
	return fmt.Sprintf("%s:reg:%s:%s", s.prefix, resource, role)
}

func (s *RedisStore) capacityKey(resource types.ResourceID) string {
	return fmt.Sprintf("%s:cap:%s", s.prefix, resource)
}

func (s *RedisStore) flagKey(flag types.FlagID) string {
	return fmt.Sprintf("%s:flag:%s", s.prefix, flag)
}

// FindByIdentity implements RegistrationStore.
func (s *RedisStore) FindByIdentity(ctx context.Context, resource types.ResourceID, role types.RoleID, identityKey string) (*types.Registration, error) {
	raw, err := s.rdb.HGet(ctx, s.registrationKey(resource, role), identityKey).Result()
	if err == redis.Nil {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: find registration: %w", err)
	}

	var reg types.Registration
	if err := json.Unmarshal([]byte(raw), &reg); err != nil {
		return nil, fmt.Errorf("storage: decode registration: %w", err)
	}
	return &reg, nil
}

// Create implements RegistrationStore using HSETNX, which writes the
// field only when it is absent, in a single atomic command.
func (s *RedisStore) Create(ctx context.Context, reg *types.Registration) error {
	if reg == nil || reg.ID == "" || reg.IdentityKey == "" {
		return ErrInvalidRegistration
	}

	payload, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("storage: encode registration: %w", err)
	}

	set, err := s.rdb.HSetNX(ctx, s.registrationKey(reg.Resource, reg.Role), reg.IdentityKey, payload).Result()
	if err != nil {
		return fmt.Errorf("storage: create registration: %w", err)
	}
	if !set {
		return ErrAlreadyRegistered
	}
	return nil
}

// Counts implements RegistrationStore. It reads the whole hash in one
// command so the committed and guest tallies come from a single
// consistent snapshot.
func (s *RedisStore) Counts(ctx context.Context, resource types.ResourceID, role types.RoleID) (committed, guests int64, err error) {
	entries, err := s.rdb.HGetAll(ctx, s.registrationKey(resource, role)).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("storage: count registrations: %w", err)
	}

	for _, raw := range entries {
		var reg types.Registration
		if err := json.Unmarshal([]byte(raw), &reg); err != nil {
			return 0, 0, fmt.Errorf("storage: decode registration: %w", err)
		}
		if reg.Identity.Kind == types.KindGuest {
			guests++
		} else {
			committed++
		}
	}
	return committed, guests, nil
}

// Delete implements RegistrationStore.
func (s *RedisStore) Delete(ctx context.Context, resource types.ResourceID, role types.RoleID, identityKey string) error {
	removed, err := s.rdb.HDel(ctx, s.registrationKey(resource, role), identityKey).Result()
	if err != nil {
		return fmt.Errorf("storage: delete registration: %w", err)
	}
	if removed == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// RoleCapacity implements CapacityStore.
func (s *RedisStore) RoleCapacity(ctx context.Context, resource types.ResourceID, role types.RoleID) (*int64, error) {
	raw, err := s.rdb.HGet(ctx, s.capacityKey(resource), string(role)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read capacity: %w", err)
	}
	return ParseCapacity(raw), nil
}

// SetRoleCapacity implements CapacityStore.
func (s *RedisStore) SetRoleCapacity(ctx context.Context, resource types.ResourceID, role types.RoleID, capacity int64) error {
	if err := s.rdb.HSet(ctx, s.capacityKey(resource), string(role), strconv.FormatInt(capacity, 10)).Err(); err != nil {
		return fmt.Errorf("storage: write capacity: %w", err)
	}
	return nil
}

// flagPayload is the stored form of a claimed flag.
type flagPayload struct {
	Claimant string    `json:"claimant"`
	SetAt    time.Time `json:"set_at"`
}

// Claim implements FlagStore using SETNX: the key is written only when
// absent, in one atomic command, so exactly one concurrent claimant
// anywhere observes true.
func (s *RedisStore) Claim(ctx context.Context, flag types.FlagID, claimant string, at time.Time) (bool, error) {
	payload, err := json.Marshal(flagPayload{Claimant: claimant, SetAt: at})
	if err != nil {
		return false, fmt.Errorf("storage: encode flag: %w", err)
	}

	won, err := s.rdb.SetNX(ctx, s.flagKey(flag), payload, 0).Result()
	if err != nil {
		return false, fmt.Errorf("storage: claim flag: %w", err)
	}
	return won, nil
}

// Get implements FlagStore.
func (s *RedisStore) Get(ctx context.Context, flag types.FlagID) (*types.OneShotFlag, error) {
	raw, err := s.rdb.Get(ctx, s.flagKey(flag)).Result()
	if err == redis.Nil {
		return nil, ErrFlagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read flag: %w", err)
	}

	var payload flagPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("storage: decode flag: %w", err)
	}
	return &types.OneShotFlag{
		ID:       flag,
		IsSet:    true,
		SetAt:    payload.SetAt,
		Claimant: payload.Claimant,
	}, nil
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// ParseCapacity converts a stored capacity value to a bound. Missing or
// non-numeric configuration means the role is unbounded, so admission
// must not reject anyone on its account; negative values are treated
// the same way.
func ParseCapacity(raw string) *int64 {
	capacity, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || capacity < 0 {
		return nil
	}
	return &capacity
}
