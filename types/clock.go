package types

import "time"

// Clock abstracts wall-clock reads so components can be tested with a
// controlled time source.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// StandardClock is a Clock backed by the system clock.
type StandardClock struct{}

// NewStandardClock returns a Clock backed by time.Now.
func NewStandardClock() Clock {
	return StandardClock{}
}

// Now implements Clock.
func (StandardClock) Now() time.Time {
	return time.Now()
}
