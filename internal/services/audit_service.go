package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/urbanfleet/ops-console-backend/internal/models"
	"github.com/urbanfleet/ops-console-backend/internal/storage"
)

// KeyAuditLog is the storage key the audit trail is appended under.
const KeyAuditLog = "audit_log"

// AuditService records administrative actions as write-only audit entries.
// The console never reads these back; the log exists for external review.
// Writes are best-effort: an audit persistence failure must not fail the
// action being audited.
type AuditService struct {
	backend storage.Backend
	clock   Clock
	logger  *logrus.Logger
	enabled bool
}

// Clock provides audit timestamps.
type Clock interface {
	Now() time.Time
}

// NewAuditService creates a new audit service.
func NewAuditService(backend storage.Backend, c Clock, logger *logrus.Logger, enabled bool) *AuditService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AuditService{
		backend: backend,
		clock:   c,
		logger:  logger,
		enabled: enabled,
	}
}

// RecordCreate logs the creation of a record in a collection.
func (s *AuditService) RecordCreate(collection, subjectID, actor string, payload map[string]interface{}) {
	s.record("record_created", subjectID, actor, withCollection(payload, collection))
}

// RecordUpsert logs an insert-or-replace of a record in a collection.
func (s *AuditService) RecordUpsert(collection, subjectID, actor string, payload map[string]interface{}) {
	s.record("record_upserted", subjectID, actor, withCollection(payload, collection))
}

// RecordDecision logs an approval queue decision.
func (s *AuditService) RecordDecision(caseID, action, actor string) {
	s.record("approval_decided", caseID, actor, map[string]interface{}{
		"action": action,
	})
}

// Record logs an arbitrary configuration-affecting action.
func (s *AuditService) Record(event, subjectID, actor string, payload map[string]interface{}) {
	s.record(event, subjectID, actor, payload)
}

func (s *AuditService) record(event, subjectID, actor string, payload map[string]interface{}) {
	if !s.enabled {
		return
	}

	entry := models.AuditEntry{
		ID:        uuid.New().String(),
		Event:     event,
		SubjectID: subjectID,
		Payload:   payload,
		At:        s.clock.Now().UTC().Format(time.RFC3339),
		Actor:     actor,
	}

	entries := s.load()
	entries = append(entries, entry)

	encoded, err := json.Marshal(entries)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode audit log")
		return
	}
	if err := s.backend.Set(KeyAuditLog, encoded); err != nil {
		s.logger.WithError(err).WithField("event", event).Warn("Failed to persist audit entry")
	}
}

func (s *AuditService) load() []models.AuditEntry {
	payload, err := s.backend.Get(KeyAuditLog)
	if err != nil {
		return nil
	}

	var entries []models.AuditEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		s.logger.WithError(err).Warn("Stored audit log is malformed, restarting it")
		return nil
	}
	return entries
}

func withCollection(payload map[string]interface{}, collection string) map[string]interface{} {
	if payload == nil {
		payload = make(map[string]interface{})
	}
	payload["collection"] = collection
	return payload
}
