package types

import "time"

// ResourceID identifies a capacity-bounded resource, such as an event.
type ResourceID string

// RoleID identifies a participant role within a resource, such as
// "volunteer" or "group-leader". Capacity is configured per role.
type RoleID string

// RegistrationID uniquely identifies a registration record.
type RegistrationID string

// FlagID identifies a one-shot flag on a durable aggregate.
type FlagID string

// LockKey identifies a logical mutex managed by a lock.Manager.
type LockKey string

// AdmissionLockKey derives the lock key that serializes admission
// attempts for a (resource, role) pair. All writers for the same pair
// must contend on the same key.
func AdmissionLockKey(resource ResourceID, role RoleID) LockKey {
	return LockKey(string(resource) + "/" + string(role))
}

// IdentityKind distinguishes the two registrant variants.
type IdentityKind string

const (
	// KindMember is a registrant with an account in the system.
	KindMember IdentityKind = "member"

	// KindGuest is an anonymous registrant identified by contact details.
	KindGuest IdentityKind = "guest"
)

// Identity describes who is registering: a known member or an anonymous
// guest. Both variants resolve to a single stable identity key so that
// admission runs one algorithm, not two parallel copies.
type Identity struct {
	Kind        IdentityKind `json:"kind"`
	MemberID    string       `json:"member_id,omitempty"`
	DisplayName string       `json:"display_name,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
}

// Key returns the normalized identity key used to detect duplicate
// registrations. Members key on their member ID; guests key on their
// normalized email, falling back to their normalized phone number.
// An empty return means the identity cannot be resolved.
func (id Identity) Key() string {
	switch id.Kind {
	case KindMember:
		if id.MemberID == "" {
			return ""
		}
		return "member:" + id.MemberID
	case KindGuest:
		if email := NormalizeContact(id.Email); email != "" {
			return "guest:" + email
		}
		if phone := NormalizePhone(id.Phone); phone != "" {
			return "guest:" + phone
		}
		return ""
	default:
		return ""
	}
}

// Registration records an admitted identity for a role on a resource.
// Registrations are never mutated for capacity purposes; cancellation
// is a separate delete path.
type Registration struct {
	ID          RegistrationID `json:"id"`
	Resource    ResourceID     `json:"resource"`
	Role        RoleID         `json:"role"`
	Identity    Identity       `json:"identity"`
	IdentityKey string         `json:"identity_key"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Occupancy is the current fill level of a role against its capacity
// ceiling. Capacity is nil when the role has no usable capacity
// configured, in which case the role is treated as unbounded.
type Occupancy struct {
	Committed int64  `json:"committed"`
	Guests    int64  `json:"guests"`
	Total     int64  `json:"total"`
	Capacity  *int64 `json:"capacity,omitempty"`
}

// IsFull reports whether the role has no remaining capacity.
// It is cheap and side-effect-free so it can be used both for
// optimistic early feedback and for the authoritative check inside
// the admission lock.
func (o Occupancy) IsFull() bool {
	return o.Capacity != nil && o.Total >= *o.Capacity
}

// Remaining returns the number of open slots, or -1 when unbounded.
func (o Occupancy) Remaining() int64 {
	if o.Capacity == nil {
		return -1
	}
	if o.Total >= *o.Capacity {
		return 0
	}
	return *o.Capacity - o.Total
}

// AdmissionStatus is the outcome variant of a successful admission.
type AdmissionStatus string

const (
	// StatusCreated means a new registration was committed.
	StatusCreated AdmissionStatus = "created"

	// StatusDuplicate means a live registration already existed for the
	// identity. This is a success, not an error: a retried request must
	// succeed even when the role has since filled up.
	StatusDuplicate AdmissionStatus = "duplicate"
)

// AdmissionResult is returned by a successful Admit call.
type AdmissionResult struct {
	Status AdmissionStatus

	// Before is the occupancy observed before the commit decision.
	Before Occupancy

	// After is the occupancy recomputed after the commit. For a
	// duplicate it equals Before.
	After Occupancy

	// Registration is the committed record, or the existing one when
	// Status is StatusDuplicate.
	Registration *Registration
}

// OneShotFlag is an atomic false-to-true flag on a durable aggregate,
// used to guarantee at-most-once side effects. The transition succeeds
// for exactly one concurrent claimant.
type OneShotFlag struct {
	ID       FlagID    `json:"id"`
	IsSet    bool      `json:"is_set"`
	SetAt    time.Time `json:"set_at,omitempty"`
	Claimant string    `json:"claimant,omitempty"`
}
