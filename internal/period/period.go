package period

import "time"

// Period selector tags as sent by the console's period dropdown.
const (
	TagToday     = "today"
	Tag7Days     = "7days"
	TagThisMonth = "thisMonth"
	TagThisYear  = "thisYear"
	TagCustom    = "custom"
)

// Range is an explicit custom window, both bounds inclusive by calendar day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether both bounds are present and ordered.
func (r Range) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Predicate reports whether an instant falls inside a resolved period.
type Predicate func(t time.Time) bool

// Clock provides "now" for period anchoring.
type Clock interface {
	Now() time.Time
}

// Resolver maps a period tag to an instant predicate, anchored to the
// injected clock at resolution time.
type Resolver struct {
	clock Clock
}

// NewResolver creates a resolver anchored to the given clock.
func NewResolver(c Clock) *Resolver {
	return &Resolver{clock: c}
}

// Resolve returns the membership predicate for tag. custom is only
// consulted for TagCustom; a nil or malformed range falls open to
// accept-everything, as does an unrecognized tag. No tag ever resolves to
// reject-everything: an empty dashboard caused by a bad selector value is
// worse than an unscoped one.
func (r *Resolver) Resolve(tag string, custom *Range) Predicate {
	now := r.clock.Now()

	switch tag {
	case TagToday:
		return func(t time.Time) bool {
			return sameDay(t, now)
		}
	case Tag7Days:
		cutoff := now.Add(-7 * 24 * time.Hour)
		return func(t time.Time) bool {
			return t.After(cutoff)
		}
	case TagThisMonth:
		return func(t time.Time) bool {
			return t.Year() == now.Year() && t.Month() == now.Month()
		}
	case TagThisYear:
		return func(t time.Time) bool {
			return t.Year() == now.Year()
		}
	case TagCustom:
		if custom == nil || !custom.Valid() {
			return acceptAll
		}
		start := dayStart(custom.Start)
		end := dayStart(custom.End).AddDate(0, 0, 1)
		return func(t time.Time) bool {
			return !t.Before(start) && t.Before(end)
		}
	default:
		return acceptAll
	}
}

// ResolveISO wraps Resolve for ISO-8601 string timestamps, the form the
// stored records carry. Unparseable timestamps are excluded.
func (r *Resolver) ResolveISO(tag string, custom *Range) func(string) bool {
	pred := r.Resolve(tag, custom)
	return func(value string) bool {
		t, err := ParseInstant(value)
		if err != nil {
			return false
		}
		return pred(t)
	}
}

// ParseInstant parses an ISO-8601 instant or calendar day.
func ParseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func acceptAll(time.Time) bool {
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
