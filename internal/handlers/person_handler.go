package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urbanfleet/ops-console-backend/internal/middleware"
	"github.com/urbanfleet/ops-console-backend/internal/models"
	"github.com/urbanfleet/ops-console-backend/internal/records"
	"github.com/urbanfleet/ops-console-backend/internal/services"
)

// PersonHandler serves one person collection (riders or drivers): the two
// share a record shape but live in disjoint collections with separate id
// ranges, so the same handler is instantiated twice.
type PersonHandler struct {
	store      *records.Store[models.PersonRecord]
	audit      *services.AuditService
	collection string
}

// NewPersonHandler creates a handler over one person collection.
func NewPersonHandler(store *records.Store[models.PersonRecord], audit *services.AuditService, collection string) *PersonHandler {
	return &PersonHandler{
		store:      store,
		audit:      audit,
		collection: collection,
	}
}

// List retrieves the whole collection
// GET /api/v1/riders, GET /api/v1/drivers
func (h *PersonHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.All())
}

// GetByID retrieves a single record
// GET /api/v1/riders/:id
func (h *PersonHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	record, found := h.store.FindByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Create appends a new record with a server-assigned id
// POST /api/v1/riders
func (h *PersonHandler) Create(c *gin.Context) {
	var req models.PersonRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	applyPersonDefaults(&req)

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := h.store.Create(req)

	h.audit.RecordCreate(h.collection, strconv.Itoa(created.ID), middleware.ActorFrom(c), map[string]interface{}{
		"name": created.Name,
		"city": created.City,
	})

	c.JSON(http.StatusCreated, created)
}

// Upsert inserts or replaces a record by id
// PUT /api/v1/riders
func (h *PersonHandler) Upsert(c *gin.Context) {
	var req models.PersonRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record id is required for upsert"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored := h.store.Upsert(req)

	h.audit.RecordUpsert(h.collection, strconv.Itoa(stored.ID), middleware.ActorFrom(c), map[string]interface{}{
		"name": stored.Name,
	})

	c.JSON(http.StatusOK, stored)
}

// applyPersonDefaults fills the fields a create request may omit. Explicit
// caller values always win; only empty fields receive defaults.
func applyPersonDefaults(p *models.PersonRecord) {
	if p.Spend == "" {
		p.Spend = "SAR 0"
	}
	if p.Risk == "" {
		p.Risk = models.RiskLow
	}
	if p.PrimaryStatus == "" {
		p.PrimaryStatus = models.PrimaryUnderReview
	}
	if p.ActivityStatus == "" {
		p.ActivityStatus = models.ActivityActive
	}
}
