package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/urbanfleet/ops-console-backend/internal/models"
	"github.com/urbanfleet/ops-console-backend/internal/storage"
)

// KeyHistory is the storage key for the decision history, ordered
// most-recent-first.
const KeyHistory = "approval_history"

var (
	// ErrUnknownCase is returned when the case id is not in the live queue
	// and has never been decided.
	ErrUnknownCase = errors.New("unknown approval case")

	// ErrAlreadyDecided is returned when a decision already exists for the
	// case id. The first decision stands; no second history entry is written.
	ErrAlreadyDecided = errors.New("approval case already decided")
)

// Clock provides decision timestamps.
type Clock interface {
	Now() time.Time
}

// Workflow manages the approval case queue and its append-only history.
// A case is Pending while queued; a decision moves it to terminal
// Approved or Rejected state, removing it from the queue and prepending
// exactly one immutable history entry. There is no path back to Pending,
// so the queue only shrinks and the history only grows.
type Workflow struct {
	backend storage.Backend
	clock   Clock
	logger  *logrus.Logger
	queue   []models.ApprovalCase
	history []models.HistoryEntry
}

// New creates a workflow over the given case queue, loading any previously
// persisted history from the backend. An unreadable or malformed history
// payload starts the session with an empty history; it is never written
// back by the failed read itself.
func New(backend storage.Backend, c Clock, logger *logrus.Logger, cases []models.ApprovalCase) *Workflow {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	w := &Workflow{
		backend: backend,
		clock:   c,
		logger:  logger,
		queue:   append([]models.ApprovalCase(nil), cases...),
	}

	payload, err := backend.Get(KeyHistory)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			logger.WithError(err).Warn("Failed to load approval history, starting empty")
		}
		return w
	}
	if err := json.Unmarshal(payload, &w.history); err != nil {
		logger.WithError(err).Warn("Stored approval history is malformed, starting empty")
		w.history = nil
	}

	return w
}

// Queue returns a copy of the live (pending) cases.
func (w *Workflow) Queue() []models.ApprovalCase {
	return append([]models.ApprovalCase(nil), w.queue...)
}

// History returns a copy of the decision history, most recent first.
func (w *Workflow) History() []models.HistoryEntry {
	return append([]models.HistoryEntry(nil), w.history...)
}

// Decide applies an Approve or Reject decision to a queued case. The
// history write is persisted before the case leaves the queue; if
// persistence fails the decision is aborted and the queue is untouched, so
// a case is never in the state of being neither pending nor decided.
func (w *Workflow) Decide(caseID, action, actor string) (models.HistoryEntry, error) {
	if action != models.ActionApprove && action != models.ActionReject {
		return models.HistoryEntry{}, fmt.Errorf("invalid decision action: %s", action)
	}

	// History wins over the queue: a reseeded queue must not allow a second
	// decision on an id that already has an entry.
	for _, entry := range w.history {
		if entry.ID == caseID {
			return models.HistoryEntry{}, ErrAlreadyDecided
		}
	}

	index := -1
	for i, c := range w.queue {
		if c.ID == caseID {
			index = i
			break
		}
	}
	if index < 0 {
		return models.HistoryEntry{}, ErrUnknownCase
	}

	now := w.clock.Now()
	entry := models.HistoryEntry{
		ApprovalCase: w.queue[index],
		Action:       action,
		Date:         now.Format("2006-01-02 15:04"),
		Actor:        actor,
	}

	history := append([]models.HistoryEntry{entry}, w.history...)

	payload, err := json.Marshal(history)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("failed to encode approval history: %w", err)
	}
	if err := w.backend.Set(KeyHistory, payload); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("failed to persist approval history: %w", err)
	}

	w.history = history
	w.queue = append(w.queue[:index], w.queue[index+1:]...)

	return entry, nil
}
