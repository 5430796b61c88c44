package records

import (
	"github.com/sirupsen/logrus"

	"github.com/urbanfleet/ops-console-backend/internal/models"
	"github.com/urbanfleet/ops-console-backend/internal/storage"
)

// Storage keys for the persisted collections.
const (
	KeyRiders    = "riders"
	KeyDrivers   = "drivers"
	KeyCompanies = "companies"
)

// Id floors per collection. The first record created into an empty
// collection gets the floor; ids grow monotonically from there.
const (
	riderIDFloor   = 101
	driverIDFloor  = 201
	companyIDFloor = 301
)

// RiderSeeds is the fallback rider collection served when the backend has
// no usable data.
var RiderSeeds = []models.PersonRecord{
	{ID: 101, Name: "Omar Haddad", Phone: "+966501234101", City: "Riyadh", Vehicle: "-", VehicleType: "", Trips: 125, Spend: "SAR 3,420", Risk: models.RiskLow, PrimaryStatus: models.PrimaryApproved, ActivityStatus: models.ActivityActive},
	{ID: 102, Name: "Layla Hassan", Phone: "+966501234102", City: "Jeddah", Vehicle: "-", VehicleType: "", Trips: 87, Spend: "SAR 2,110", Risk: models.RiskLow, PrimaryStatus: models.PrimaryApproved, ActivityStatus: models.ActivityActive},
	{ID: 103, Name: "Tariq Mansour", Phone: "+966501234103", City: "Riyadh", Vehicle: "-", VehicleType: "", Trips: 0, Spend: "SAR 0", Risk: models.RiskHigh, PrimaryStatus: models.PrimaryUnderReview, ActivityStatus: models.ActivityInactive},
	{ID: 104, Name: "Nour Al-Fayed", Phone: "+966501234104", City: "Dammam", Vehicle: "-", VehicleType: "", Trips: 43, Spend: "SAR 980", Risk: models.RiskMedium, PrimaryStatus: models.PrimaryApproved, ActivityStatus: models.ActivityActive},
	{ID: 105, Name: "Sami Barakat", Phone: "+966501234105", City: "Jeddah", Vehicle: "-", VehicleType: "", Trips: 12, Spend: "SAR 310", Risk: models.RiskLow, PrimaryStatus: models.PrimarySuspended, ActivityStatus: models.ActivityInactive},
	{ID: 106, Name: "Huda Qasim", Phone: "+966501234106", City: "Mecca", Vehicle: "-", VehicleType: "", Trips: 210, Spend: "SAR 5,870", Risk: models.RiskLow, PrimaryStatus: models.PrimaryApproved, ActivityStatus: models.ActivityActive},
}

// DriverSeeds is the fallback driver collection.
var DriverSeeds = []models.PersonRecord{
	{ID: 201, Name: "Khalid Rahman", Phone: "+966502234201", City: "Riyadh", Vehicle: "Toyota Camry", VehicleType: models.VehicleCar, Trips: 342, Spend: "SAR 12,400", Risk: models.RiskLow, PrimaryStatus: models.PrimaryApproved, ActivityStatus: models.ActivityActive},
	{ID: 202, Name: "Yousef Nasser", Phone: "+966502234202", City: "Jeddah", Vehicle: "Honda Wave", VehicleType: models.VehicleBike, Trips: 518, Spend: "SAR 9,850", Risk: models.RiskMedium, PrimaryStatus: models.PrimaryApproved, ActivityStatus: models.ActivityActive},
	{ID: 203, Name: "Amir Shadid", Phone: "+966502234203", City: "Dammam", Vehicle: "Hyundai Elantra", VehicleType: models.VehicleCar, Trips: 156, Spend: "SAR 4,200", Risk: models.RiskHigh, PrimaryStatus: models.PrimaryUnderReview, ActivityStatus: models.ActivityInactive},
	{ID: 204, Name: "Fadi Aziz", Phone: "+966502234204", City: "Riyadh", Vehicle: "Kia Cerato", VehicleType: models.VehicleCar, Trips: 421, Spend: "SAR 11,120", Risk: models.RiskLow, PrimaryStatus: models.PrimaryApproved, ActivityStatus: models.ActivityActive},
	{ID: 205, Name: "Rania Jaber", Phone: "+966502234205", City: "Mecca", Vehicle: "Yamaha NMax", VehicleType: models.VehicleBike, Trips: 98, Spend: "SAR 2,640", Risk: models.RiskLow, PrimaryStatus: models.PrimarySuspended, ActivityStatus: models.ActivityInactive},
}

// CompanySeeds is the fallback company collection.
var CompanySeeds = []models.CompanyRecord{
	{ID: 301, Name: "Falcon Fleet Co", Regions: "Riyadh, Dammam", Type: "Fleet Partner", Drivers: 120, Vehicles: 95, Commission: "12%", Status: models.CompanyActive},
	{ID: 302, Name: "Oasis Mobility", Regions: "Jeddah, Mecca", Type: "Fleet Partner", Drivers: 64, Vehicles: 60, Commission: "10%", Status: models.CompanyActive},
	{ID: 303, Name: "Desert Line Logistics", Regions: "Dammam", Type: "Courier Partner", Drivers: 31, Vehicles: 28, Commission: "15%", Status: models.CompanyPending},
	{ID: 304, Name: "Medina Express", Regions: "Medina", Type: "Fleet Partner", Drivers: 18, Vehicles: 14, Commission: "11%", Status: models.CompanySuspended},
}

func personID(p models.PersonRecord) int { return p.ID }

func personWithID(p models.PersonRecord, id int) models.PersonRecord {
	p.ID = id
	return p
}

func companyID(c models.CompanyRecord) int { return c.ID }

func companyWithID(c models.CompanyRecord, id int) models.CompanyRecord {
	c.ID = id
	return c
}

// NewRiderStore creates the rider collection store.
func NewRiderStore(backend storage.Backend, logger *logrus.Logger) *Store[models.PersonRecord] {
	return NewStore(backend, logger, KeyRiders, riderIDFloor, RiderSeeds, personID, personWithID)
}

// NewDriverStore creates the driver collection store.
func NewDriverStore(backend storage.Backend, logger *logrus.Logger) *Store[models.PersonRecord] {
	return NewStore(backend, logger, KeyDrivers, driverIDFloor, DriverSeeds, personID, personWithID)
}

// NewCompanyStore creates the company collection store.
func NewCompanyStore(backend storage.Backend, logger *logrus.Logger) *Store[models.CompanyRecord] {
	return NewStore(backend, logger, KeyCompanies, companyIDFloor, CompanySeeds, companyID, companyWithID)
}
