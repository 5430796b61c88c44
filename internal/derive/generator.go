package derive

import (
	"fmt"
	"time"

	"github.com/urbanfleet/ops-console-backend/internal/models"
)

// routeCities is the fixed city sequence used to build trip routes. The
// order matters: route endpoints are picked by rider index, so the same
// input collections always yield the same routes.
var routeCities = []string{"Riyadh", "Jeddah", "Dammam", "Mecca", "Medina", "Khobar"}

var tripStatuses = []string{models.TripCompleted, models.TripInProgress, models.TripCancelled}

var incidentTypes = []string{"Safety Complaint", "Payment Dispute", "Route Deviation"}

var incidentSeverities = []string{models.RiskHigh, models.RiskMedium, models.RiskLow}

// Clock provides the single reference instant for relative date synthesis.
type Clock interface {
	Now() time.Time
}

// Generator synthesizes trip and incident views from the rider and driver
// collections. The reference instant is captured once at construction, so
// every call within a session derives identical dates: for the same input
// collections the output is byte-identical across calls.
type Generator struct {
	reference time.Time
}

// NewGenerator creates a generator anchored to the clock's current instant.
func NewGenerator(c Clock) *Generator {
	return &Generator{reference: c.Now()}
}

// TripsFrom derives one trip per rider with at least one recorded trip.
// Drivers are paired by rider index modulo the driver collection length;
// an empty driver collection yields no trips.
func (g *Generator) TripsFrom(riders, drivers []models.PersonRecord) []models.DerivedTrip {
	if len(drivers) == 0 {
		return nil
	}

	var trips []models.DerivedTrip
	for i, rider := range riders {
		if rider.Trips <= 0 {
			continue
		}

		driver := drivers[i%len(drivers)]
		origin := routeCities[i%len(routeCities)]
		destination := routeCities[(i+1)%len(routeCities)]
		emitted := len(trips)

		trips = append(trips, models.DerivedTrip{
			ID:     fmt.Sprintf("TRP-%04d", rider.ID),
			Rider:  rider.Name,
			Driver: driver.Name,
			Route:  origin + " - " + destination,
			Status: tripStatuses[emitted%len(tripStatuses)],
			Date:   g.dayOffset(emitted % 7),
			City:   rider.City,
		})
	}

	return trips
}

// IncidentsFrom derives incidents over the concatenated rider and driver
// collections. An actor produces an incident when its risk is High or its
// id is divisible by five; severity is High for high-risk actors and cycles
// High/Medium/Low otherwise.
func (g *Generator) IncidentsFrom(riders, drivers []models.PersonRecord) []models.DerivedIncident {
	actors := make([]models.PersonRecord, 0, len(riders)+len(drivers))
	actors = append(actors, riders...)
	actors = append(actors, drivers...)

	var incidents []models.DerivedIncident
	for i, actor := range actors {
		if actor.Risk != models.RiskHigh && actor.ID%5 != 0 {
			continue
		}

		severity := incidentSeverities[i%len(incidentSeverities)]
		if actor.Risk == models.RiskHigh {
			severity = models.RiskHigh
		}

		incidents = append(incidents, models.DerivedIncident{
			ID:       fmt.Sprintf("INC-%04d", actor.ID),
			Type:     incidentTypes[i%len(incidentTypes)],
			User:     actor.Name,
			City:     actor.City,
			Severity: severity,
			Date:     g.dayOffset(i % 7),
		})
	}

	return incidents
}

func (g *Generator) dayOffset(daysAgo int) string {
	return g.reference.AddDate(0, 0, -daysAgo).Format("2006-01-02")
}
