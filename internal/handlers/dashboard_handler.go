package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanfleet/ops-console-backend/internal/export"
	"github.com/urbanfleet/ops-console-backend/internal/period"
	"github.com/urbanfleet/ops-console-backend/internal/services"
)

// DashboardHandler serves the derived views and the analytics rollups.
type DashboardHandler struct {
	dashboard *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// selectionFrom reads the console's filter state from the query string.
// A malformed custom range is passed through as-is; the period resolver
// fails open to all time rather than emptying the screen.
func selectionFrom(c *gin.Context) services.Selection {
	sel := services.Selection{
		Query:  c.Query("q"),
		City:   c.DefaultQuery("city", "all"),
		Status: c.DefaultQuery("status", "all"),
		Period: c.Query("period"),
	}

	from := c.Query("from")
	to := c.Query("to")
	if from != "" || to != "" {
		custom := &period.Range{}
		if t, err := period.ParseInstant(from); err == nil {
			custom.Start = t
		}
		if t, err := period.ParseInstant(to); err == nil {
			custom.End = t
		}
		sel.Custom = custom
	}

	return sel
}

// Trips returns the derived trip view
// GET /api/v1/trips
func (h *DashboardHandler) Trips(c *gin.Context) {
	trips := h.dashboard.Trips(selectionFrom(c))
	c.JSON(http.StatusOK, gin.H{
		"total": len(trips),
		"trips": trips,
	})
}

// Incidents returns the derived incident view
// GET /api/v1/incidents
func (h *DashboardHandler) Incidents(c *gin.Context) {
	incidents := h.dashboard.Incidents(selectionFrom(c))
	c.JSON(http.StatusOK, gin.H{
		"total":     len(incidents),
		"incidents": incidents,
	})
}

// Summary returns the trip-weighted KPI rollup
// GET /api/v1/analytics/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	sel := selectionFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"regions": h.dashboard.RegionRows(sel),
		"summary": h.dashboard.Summary(sel),
	})
}

// Export downloads the aggregated region rows as CSV
// GET /api/v1/analytics/export
func (h *DashboardHandler) Export(c *gin.Context) {
	rows := h.dashboard.RegionRows(selectionFrom(c))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="trip-summary.csv"`)

	if err := export.WriteTripSummary(c.Writer, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render CSV export"})
	}
}
