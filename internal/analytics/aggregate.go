package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/urbanfleet/ops-console-backend/internal/models"
)

// Summarize computes the trip-count-weighted KPI rollup over region rows.
// Each weighted metric is sum(trips_i * value_i) / totalTrips, rounded to
// one decimal place. A zero total trip count returns a summary with
// HasData=false instead of dividing by zero; NaN must never reach a caller.
func Summarize(rows []models.RegionMetrics) models.KPISummary {
	totalTrips := 0
	totalCancellations := 0
	var completionSum, distanceSum, durationSum float64

	for _, row := range rows {
		totalTrips += row.Trips
		totalCancellations += row.Cancellations

		weight := float64(row.Trips)
		completionSum += weight * parseMetric(row.CompletionRate)
		distanceSum += weight * parseMetric(row.AvgDistance)
		durationSum += weight * parseMetric(row.AvgDuration)
	}

	if totalTrips == 0 {
		return models.KPISummary{HasData: false}
	}

	total := float64(totalTrips)
	return models.KPISummary{
		HasData:           true,
		TotalTrips:        totalTrips,
		CompletionRate:    round1(completionSum / total),
		AvgDistance:       round1(distanceSum / total),
		AvgDuration:       round1(durationSum / total),
		TotalCancellation: totalCancellations,
	}
}

// parseMetric reads the leading number out of a display metric string.
// Screens store these as formatted strings ("93%", "12.4", "18 min"), so
// trailing units are tolerated and an unparseable value counts as zero.
func parseMetric(value string) float64 {
	value = strings.TrimSpace(value)

	end := 0
	for end < len(value) {
		c := value[end]
		if (c >= '0' && c <= '9') || c == '.' || (end == 0 && c == '-') {
			end++
			continue
		}
		break
	}

	if end == 0 {
		return 0
	}

	parsed, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0
	}
	return parsed
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
