package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanfleet/ops-console-backend/internal/middleware"
	"github.com/urbanfleet/ops-console-backend/internal/models"
	"github.com/urbanfleet/ops-console-backend/internal/services"
	"github.com/urbanfleet/ops-console-backend/internal/workflow"
)

// ApprovalHandler serves the approval case queue and its decision history.
type ApprovalHandler struct {
	workflow *workflow.Workflow
	audit    *services.AuditService
}

// NewApprovalHandler creates a new approval handler.
func NewApprovalHandler(wf *workflow.Workflow, audit *services.AuditService) *ApprovalHandler {
	return &ApprovalHandler{
		workflow: wf,
		audit:    audit,
	}
}

// Queue retrieves the pending approval cases
// GET /api/v1/approvals
func (h *ApprovalHandler) Queue(c *gin.Context) {
	cases := h.workflow.Queue()
	c.JSON(http.StatusOK, gin.H{
		"total": len(cases),
		"cases": cases,
	})
}

// History retrieves the decision history, most recent first
// GET /api/v1/approvals/history
func (h *ApprovalHandler) History(c *gin.Context) {
	entries := h.workflow.History()
	c.JSON(http.StatusOK, gin.H{
		"total":   len(entries),
		"history": entries,
	})
}

// Approve applies an Approve decision to a queued case
// POST /api/v1/approvals/:id/approve
func (h *ApprovalHandler) Approve(c *gin.Context) {
	h.decide(c, models.ActionApprove)
}

// Reject applies a Reject decision to a queued case
// POST /api/v1/approvals/:id/reject
func (h *ApprovalHandler) Reject(c *gin.Context) {
	h.decide(c, models.ActionReject)
}

func (h *ApprovalHandler) decide(c *gin.Context, action string) {
	caseID := c.Param("id")
	actor := middleware.ActorFrom(c)

	entry, err := h.workflow.Decide(caseID, action, actor)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrUnknownCase):
			c.JSON(http.StatusNotFound, gin.H{"error": "Approval case not found", "code": "UNKNOWN_CASE"})
		case errors.Is(err, workflow.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": "Approval case already decided", "code": "ALREADY_DECIDED"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record decision"})
		}
		return
	}

	h.audit.RecordDecision(caseID, action, actor)

	c.JSON(http.StatusOK, entry)
}
