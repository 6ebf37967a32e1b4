package logger

import "github.com/ekarlsen/seatlock/types"

// Logger is the structured, leveled logging interface used across the
// project. Implementations must be safe for concurrent use.
//
// The *w methods take a message followed by alternating key/value pairs:
//
//	log.Infow("registration committed", "resource", res, "role", role)
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)

	// With returns a logger whose context includes the given key/value pairs.
	With(keysAndValues ...any) Logger

	// WithComponent returns a logger tagged with a component name.
	WithComponent(name string) Logger

	// WithResource returns a logger tagged with a resource identifier.
	WithResource(id types.ResourceID) Logger
}
