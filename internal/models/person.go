package models

import "fmt"

// Vehicle types
const (
	VehicleBike = "Bike"
	VehicleCar  = "Car"
)

// Risk levels (shared with incidents and approval cases)
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Primary statuses for riders and drivers
const (
	PrimaryApproved    = "approved"
	PrimaryUnderReview = "under_review"
	PrimarySuspended   = "suspended"
)

// Activity statuses for riders and drivers
const (
	ActivityActive   = "active"
	ActivityInactive = "inactive"
)

// PersonRecord represents a rider or a driver. The two live in disjoint
// collections with disjoint id ranges but share a single shape.
type PersonRecord struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	City           string `json:"city"`
	Vehicle        string `json:"vehicle"`
	VehicleType    string `json:"vehicleType"`
	Trips          int    `json:"trips"`
	Spend          string `json:"spend"`
	Risk           string `json:"risk"`
	PrimaryStatus  string `json:"primaryStatus"`
	ActivityStatus string `json:"activityStatus"`
}

// Validate checks the closed enumerations and the trips floor.
func (p PersonRecord) Validate() error {
	if p.Trips < 0 {
		return fmt.Errorf("trips must not be negative: %d", p.Trips)
	}
	if p.VehicleType != "" && p.VehicleType != VehicleBike && p.VehicleType != VehicleCar {
		return fmt.Errorf("invalid vehicle type: %s", p.VehicleType)
	}
	if p.Risk != "" && !validRisk(p.Risk) {
		return fmt.Errorf("invalid risk level: %s", p.Risk)
	}
	switch p.PrimaryStatus {
	case "", PrimaryApproved, PrimaryUnderReview, PrimarySuspended:
	default:
		return fmt.Errorf("invalid primary status: %s", p.PrimaryStatus)
	}
	switch p.ActivityStatus {
	case "", ActivityActive, ActivityInactive:
	default:
		return fmt.Errorf("invalid activity status: %s", p.ActivityStatus)
	}
	return nil
}

func validRisk(risk string) bool {
	return risk == RiskLow || risk == RiskMedium || risk == RiskHigh
}
