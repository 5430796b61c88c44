package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanfleet/ops-console-backend/internal/models"
)

func TestWriteTripSummary(t *testing.T) {
	t.Run("Header And Rows", func(t *testing.T) {
		rows := []models.RegionMetrics{
			{Region: "Riyadh", Trips: 40, CompletionRate: "95%", Cancellations: 2},
			{Region: "Jeddah", Trips: 25, CompletionRate: "88%", Cancellations: 3},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteTripSummary(&buf, rows))

		want := "#,Region,Trips,Completion rate,Cancellations\n" +
			"1,Riyadh,40,95%,2\n" +
			"2,Jeddah,25,88%,3\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("Embedded Comma Is Quoted", func(t *testing.T) {
		rows := []models.RegionMetrics{
			{Region: "Riyadh, North", Trips: 10, CompletionRate: "90%"},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteTripSummary(&buf, rows))

		assert.Contains(t, buf.String(), `"Riyadh, North"`)
	})

	t.Run("Empty Input Writes Header Only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTripSummary(&buf, nil))

		assert.Equal(t, "#,Region,Trips,Completion rate,Cancellations\n", buf.String())
	})
}
