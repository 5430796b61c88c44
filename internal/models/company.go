package models

import "fmt"

// Company statuses
const (
	CompanyActive    = "Active"
	CompanyPending   = "Pending"
	CompanySuspended = "Suspended"
	CompanyInactive  = "Inactive"
)

// CompanyRecord represents a partner fleet company.
type CompanyRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Regions    string `json:"regions"` // comma-joined region labels
	Type       string `json:"type"`
	Drivers    int    `json:"drivers"`
	Vehicles   int    `json:"vehicles"`
	Commission string `json:"commission"` // percentage string, e.g. "12%"
	Status     string `json:"status"`
}

// Validate checks the company status enumeration.
func (c CompanyRecord) Validate() error {
	switch c.Status {
	case "", CompanyActive, CompanyPending, CompanySuspended, CompanyInactive:
		return nil
	default:
		return fmt.Errorf("invalid company status: %s", c.Status)
	}
}
