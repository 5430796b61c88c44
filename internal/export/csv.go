package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/urbanfleet/ops-console-backend/internal/models"
)

// tripSummaryHeader matches the console's trip analytics table columns.
var tripSummaryHeader = []string{"#", "Region", "Trips", "Completion rate", "Cancellations"}

// WriteTripSummary renders the aggregated region rows as CSV. Fields are
// quoted per RFC 4180, so embedded commas and newlines survive the export.
func WriteTripSummary(w io.Writer, rows []models.RegionMetrics) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(tripSummaryHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, row := range rows {
		record := []string{
			fmt.Sprintf("%d", i+1),
			row.Region,
			fmt.Sprintf("%d", row.Trips),
			row.CompletionRate,
			fmt.Sprintf("%d", row.Cancellations),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
