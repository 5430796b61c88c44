package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanfleet/ops-console-backend/internal/models"
	"github.com/urbanfleet/ops-console-backend/pkg/clock"
)

var reference = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newGenerator() *Generator {
	return NewGenerator(clock.NewFixed(reference))
}

func TestTripsFrom(t *testing.T) {
	riders := []models.PersonRecord{
		{ID: 101, Name: "Omar Haddad", City: "Riyadh", Trips: 125, Risk: models.RiskLow},
		{ID: 102, Name: "Layla Hassan", City: "Jeddah", Trips: 0, Risk: models.RiskHigh},
	}
	drivers := []models.PersonRecord{
		{ID: 201, Name: "Khalid Rahman", City: "Riyadh"},
	}

	t.Run("Only Riders With Trips Produce Trips", func(t *testing.T) {
		trips := newGenerator().TripsFrom(riders, drivers)

		require.Len(t, trips, 1)
		assert.Equal(t, "TRP-0101", trips[0].ID)
		assert.Equal(t, "Omar Haddad", trips[0].Rider)
		assert.Equal(t, "Khalid Rahman", trips[0].Driver)
		assert.Equal(t, "Riyadh", trips[0].City)
	})

	t.Run("Driver Pairing Wraps By Index", func(t *testing.T) {
		manyRiders := []models.PersonRecord{
			{ID: 101, Name: "R1", Trips: 1},
			{ID: 102, Name: "R2", Trips: 1},
			{ID: 103, Name: "R3", Trips: 1},
		}
		twoDrivers := []models.PersonRecord{
			{ID: 201, Name: "D1"},
			{ID: 202, Name: "D2"},
		}

		trips := newGenerator().TripsFrom(manyRiders, twoDrivers)

		require.Len(t, trips, 3)
		assert.Equal(t, "D1", trips[0].Driver)
		assert.Equal(t, "D2", trips[1].Driver)
		assert.Equal(t, "D1", trips[2].Driver)
	})

	t.Run("No Drivers Means No Trips", func(t *testing.T) {
		trips := newGenerator().TripsFrom(riders, nil)
		assert.Empty(t, trips)
	})

	t.Run("Deterministic", func(t *testing.T) {
		g := newGenerator()
		first := g.TripsFrom(riders, drivers)
		second := g.TripsFrom(riders, drivers)
		assert.Equal(t, first, second)

		// A second generator on the same clock agrees too.
		assert.Equal(t, first, newGenerator().TripsFrom(riders, drivers))
	})
}

func TestIncidentsFrom(t *testing.T) {
	t.Run("High Risk Actor Produces High Severity Incident", func(t *testing.T) {
		riders := []models.PersonRecord{
			{ID: 101, Name: "Omar Haddad", City: "Riyadh", Trips: 125, Risk: models.RiskLow},
			{ID: 102, Name: "Layla Hassan", City: "Jeddah", Trips: 0, Risk: models.RiskHigh},
		}
		drivers := []models.PersonRecord{
			{ID: 201, Name: "Khalid Rahman", City: "Riyadh", Risk: models.RiskLow},
		}

		incidents := newGenerator().IncidentsFrom(riders, drivers)

		require.Len(t, incidents, 1)
		assert.Equal(t, "INC-0102", incidents[0].ID)
		assert.Equal(t, "Layla Hassan", incidents[0].User)
		assert.Equal(t, models.RiskHigh, incidents[0].Severity)
	})

	t.Run("Id Divisible By Five Qualifies", func(t *testing.T) {
		riders := []models.PersonRecord{
			{ID: 105, Name: "Sampled", City: "Jeddah", Risk: models.RiskLow},
			{ID: 106, Name: "Skipped", City: "Mecca", Risk: models.RiskLow},
		}

		incidents := newGenerator().IncidentsFrom(riders, nil)

		require.Len(t, incidents, 1)
		assert.Equal(t, "INC-0105", incidents[0].ID)
		assert.NotEqual(t, models.RiskHigh, incidents[0].Severity)
	})

	t.Run("Severity Cycles For Non High Risk", func(t *testing.T) {
		riders := []models.PersonRecord{
			{ID: 100, Name: "A", Risk: models.RiskLow},
			{ID: 105, Name: "B", Risk: models.RiskLow},
			{ID: 110, Name: "C", Risk: models.RiskLow},
		}

		incidents := newGenerator().IncidentsFrom(riders, nil)

		require.Len(t, incidents, 3)
		assert.Equal(t, models.RiskHigh, incidents[0].Severity)
		assert.Equal(t, models.RiskMedium, incidents[1].Severity)
		assert.Equal(t, models.RiskLow, incidents[2].Severity)
	})

	t.Run("Deterministic", func(t *testing.T) {
		riders := []models.PersonRecord{
			{ID: 101, Risk: models.RiskHigh, Name: "X", City: "Riyadh"},
			{ID: 105, Risk: models.RiskLow, Name: "Y", City: "Jeddah"},
		}
		g := newGenerator()

		assert.Equal(t, g.IncidentsFrom(riders, nil), g.IncidentsFrom(riders, nil))
	})
}
