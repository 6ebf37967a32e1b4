package claim

import (
	"context"
	"fmt"
	"os"

	"github.com/ekarlsen/seatlock/logger"
	"github.com/ekarlsen/seatlock/storage"
	"github.com/ekarlsen/seatlock/types"
)

// Option applies a configuration setting to a claimer.
type Option func(*claimer)

// WithClaimant sets the claimant label recorded on won claims. It
// defaults to the process hostname and PID.
func WithClaimant(claimant string) Option {
	return func(c *claimer) {
		if claimant != "" {
			c.claimant = claimant
		}
	}
}

// WithClock sets the clock used for claim timestamps.
func WithClock(clock types.Clock) Option {
	return func(c *claimer) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger for claim events.
func WithLogger(log logger.Logger) Option {
	return func(c *claimer) {
		if log != nil {
			c.logger = log.WithComponent("claim")
		}
	}
}

type claimer struct {
	flags    storage.FlagStore
	claimant string
	clock    types.Clock
	logger   logger.Logger
}

// NewClaimer returns a Claimer backed by the given flag store. The
// atomicity guarantee is exactly the store's: a MemoryStore claimer is
// safe within one process, a RedisStore claimer across processes.
func NewClaimer(flags storage.FlagStore, opts ...Option) Claimer {
	c := &claimer{
		flags:    flags,
		claimant: defaultClaimant(),
		clock:    types.NewStandardClock(),
		logger:   logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultClaimant() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s/%d", host, os.Getpid())
}

func (c *claimer) Claim(ctx context.Context, flag types.FlagID) (bool, error) {
	return c.ClaimAs(ctx, flag, c.claimant)
}

func (c *claimer) ClaimAs(ctx context.Context, flag types.FlagID, claimant string) (bool, error) {
	if claimant == "" {
		claimant = c.claimant
	}
	claimed, err := c.flags.Claim(ctx, flag, claimant, c.clock.Now())
	if err != nil {
		return false, fmt.Errorf("claim: claiming flag %s: %w", flag, err)
	}

	if claimed {
		c.logger.Infow("flag claimed", "flag", flag, "claimant", claimant)
	} else {
		c.logger.Debugw("flag already claimed", "flag", flag)
	}
	return claimed, nil
}

func (c *claimer) Status(ctx context.Context, flag types.FlagID) (*types.OneShotFlag, error) {
	return c.flags.Get(ctx, flag)
}
