package models

// AuditEntry is a write-only record of an administrative action. The ops
// console never reads these back; they exist for external review.
type AuditEntry struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	SubjectID string                 `json:"subjectId"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	At        string                 `json:"at"` // ISO instant
	Actor     string                 `json:"actor"`
}
