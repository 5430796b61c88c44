package models

// Trip statuses
const (
	TripCompleted  = "Completed"
	TripInProgress = "In Progress"
	TripCancelled  = "Cancelled"
)

// DerivedTrip is a computed view over the rider and driver collections.
// It is never persisted; each read regenerates it from the current records.
type DerivedTrip struct {
	ID     string `json:"id"` // "TRP-" + zero-padded rider id
	Rider  string `json:"rider"`
	Driver string `json:"driver"`
	Route  string `json:"route"`
	Status string `json:"status"`
	Date   string `json:"date"` // ISO day
	City   string `json:"city"`
}

// DerivedIncident is a computed incident view, derived from high-risk or
// sampled riders and drivers. Never persisted.
type DerivedIncident struct {
	ID       string `json:"id"` // "INC-" + zero-padded actor id
	Type     string `json:"type"`
	User     string `json:"user"`
	City     string `json:"city"`
	Severity string `json:"severity"`
	Date     string `json:"date"`
}
