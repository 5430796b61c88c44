package models

// RegionMetrics is one aggregation input row: per-region trip volume and
// quality metrics, as rendered on the analytics screens.
type RegionMetrics struct {
	Region         string `json:"region"`
	Trips          int    `json:"trips"`
	CompletionRate string `json:"completionRate"` // percent string, e.g. "93%"
	AvgDistance    string `json:"avgDistance"`    // number string, km
	AvgDuration    string `json:"avgDuration"`    // number string, minutes
	Cancellations  int    `json:"cancellations"`
}

// KPISummary is the trip-count-weighted rollup over a set of region rows.
// HasData is false when the weighted set was empty; the numeric fields are
// meaningless in that case and must not be shown.
type KPISummary struct {
	HasData           bool    `json:"hasData"`
	TotalTrips        int     `json:"totalTrips"`
	CompletionRate    float64 `json:"completionRate"`
	AvgDistance       float64 `json:"avgDistance"`
	AvgDuration       float64 `json:"avgDuration"`
	TotalCancellation int     `json:"totalCancellations"`
}
