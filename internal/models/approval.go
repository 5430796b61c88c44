package models

// Decision actions
const (
	ActionApprove = "Approve"
	ActionReject  = "Reject"
)

// ApprovalCase is an item awaiting an Approve/Reject decision. It lives in
// the in-memory queue until a decision removes it.
type ApprovalCase struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Entity    string `json:"entity"`
	Severity  string `json:"severity"`
	Age       string `json:"age"`       // display string, e.g. "2h"
	Timestamp string `json:"timestamp"` // ISO instant; period filtering uses this
	Region    string `json:"region"`
	Summary   string `json:"summary"`
}

// HistoryEntry records a decision. Append-only: once written it is never
// modified, and the decided case is absent from the live queue.
type HistoryEntry struct {
	ApprovalCase
	Action string `json:"action"`
	Date   string `json:"date"` // formatted decision timestamp
	Actor  string `json:"actor"`
}
