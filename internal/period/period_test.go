package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/urbanfleet/ops-console-backend/pkg/clock"
)

var now = time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

func newResolver() *Resolver {
	return NewResolver(clock.NewFixed(now))
}

func TestResolveToday(t *testing.T) {
	pred := newResolver().Resolve(TagToday, nil)

	assert.True(t, pred(now))
	assert.True(t, pred(now.Add(-14*time.Hour)), "earlier the same calendar day")
	assert.False(t, pred(now.AddDate(0, 0, -2)), "two days prior")
	assert.False(t, pred(now.AddDate(0, 0, 1)))
}

func TestResolve7Days(t *testing.T) {
	pred := newResolver().Resolve(Tag7Days, nil)

	assert.True(t, pred(now))
	assert.True(t, pred(now.AddDate(0, 0, -6)), "six days prior")
	assert.False(t, pred(now.AddDate(0, 0, -8)), "eight days prior")
	// The 7-day edge itself is excluded.
	assert.False(t, pred(now.Add(-7*24*time.Hour)))
}

func TestResolveThisMonth(t *testing.T) {
	pred := newResolver().Resolve(TagThisMonth, nil)

	assert.True(t, pred(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, pred(time.Date(2026, 7, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, pred(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)), "same month, prior year")
}

func TestResolveThisYear(t *testing.T) {
	pred := newResolver().Resolve(TagThisYear, nil)

	assert.True(t, pred(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, pred(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestResolveCustom(t *testing.T) {
	r := newResolver()

	t.Run("Inclusive Bounds", func(t *testing.T) {
		pred := r.Resolve(TagCustom, &Range{
			Start: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		})

		assert.True(t, pred(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)))
		assert.True(t, pred(time.Date(2026, 8, 20, 23, 0, 0, 0, time.UTC)), "end day is inclusive")
		assert.False(t, pred(time.Date(2026, 8, 9, 23, 59, 0, 0, time.UTC)))
		assert.False(t, pred(time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Reversed Range Fails Open", func(t *testing.T) {
		pred := r.Resolve(TagCustom, &Range{
			Start: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		})

		assert.True(t, pred(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Missing Bound Fails Open", func(t *testing.T) {
		pred := r.Resolve(TagCustom, &Range{End: now})
		assert.True(t, pred(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Nil Range Fails Open", func(t *testing.T) {
		pred := r.Resolve(TagCustom, nil)
		assert.True(t, pred(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestResolveUnknownTagFailsOpen(t *testing.T) {
	pred := newResolver().Resolve("lastQuarter", nil)

	assert.True(t, pred(now))
	assert.True(t, pred(now.AddDate(-10, 0, 0)))
}

func TestResolveISO(t *testing.T) {
	r := newResolver()

	t.Run("Accepts Day Strings", func(t *testing.T) {
		pred := r.ResolveISO(Tag7Days, nil)
		assert.True(t, pred("2026-08-26"))
		assert.False(t, pred("2026-08-10"))
	})

	t.Run("Accepts RFC3339 Strings", func(t *testing.T) {
		pred := r.ResolveISO(TagToday, nil)
		assert.True(t, pred("2026-08-28T09:00:00Z"))
		assert.False(t, pred("2026-08-26T09:00:00Z"))
	})

	t.Run("Rejects Unparseable Timestamps", func(t *testing.T) {
		pred := r.ResolveISO(Tag7Days, nil)
		assert.False(t, pred("yesterday"))
	})
}
