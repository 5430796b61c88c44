package workflow

import "github.com/urbanfleet/ops-console-backend/internal/models"

// CaseSeeds is the initial approval queue for a fresh session.
var CaseSeeds = []models.ApprovalCase{
	{ID: "APP-001", Type: "Driver Onboarding", Entity: "Amir Shadid", Severity: models.RiskHigh, Age: "2h", Timestamp: "2026-08-28T06:15:00Z", Region: "Dammam", Summary: "Background check flagged for manual review"},
	{ID: "APP-002", Type: "Payout Change", Entity: "Falcon Fleet Co", Severity: models.RiskMedium, Age: "5h", Timestamp: "2026-08-28T03:40:00Z", Region: "Riyadh", Summary: "Commission adjustment request 12% to 10%"},
	{ID: "APP-003", Type: "Rider Reinstatement", Entity: "Sami Barakat", Severity: models.RiskLow, Age: "1d", Timestamp: "2026-08-27T09:20:00Z", Region: "Jeddah", Summary: "Suspension appeal after payment dispute resolution"},
	{ID: "APP-004", Type: "Document Update", Entity: "Rania Jaber", Severity: models.RiskMedium, Age: "2d", Timestamp: "2026-08-26T14:05:00Z", Region: "Mecca", Summary: "Replacement vehicle registration uploaded"},
}
