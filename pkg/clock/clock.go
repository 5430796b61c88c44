package clock

import "time"

// Clock provides the current time. Period resolution and derived-entity
// generation take a Clock instead of calling time.Now directly so tests can
// pin "now" and assert window boundaries deterministically.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the wall clock.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	Instant time.Time
}

// NewFixed creates a Clock that always reports t.
func NewFixed(t time.Time) Fixed {
	return Fixed{Instant: t}
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.Instant
}
