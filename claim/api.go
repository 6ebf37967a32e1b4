package claim

import (
	"context"

	"github.com/ekarlsen/seatlock/types"
)

// Claimer performs atomic one-shot claims on durable flags. It is the
// building block for at-most-once side effects: fire the effect only
// when Claim returns true.
type Claimer interface {
	// Claim attempts the false-to-true transition on flag. Exactly one
	// concurrent caller observes true; every other caller, and every
	// later caller, observes false. An error means the claim outcome is
	// unknown and the side effect must not be fired.
	Claim(ctx context.Context, flag types.FlagID) (bool, error)

	// ClaimAs is Claim with an explicit claimant label instead of the
	// configured default, for callers relaying claims on behalf of
	// someone else.
	ClaimAs(ctx context.Context, flag types.FlagID, claimant string) (bool, error)

	// Status returns the flag's current state, or storage.ErrFlagNotFound
	// when it has never been claimed.
	Status(ctx context.Context, flag types.FlagID) (*types.OneShotFlag, error)
}
