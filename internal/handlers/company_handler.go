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

// CompanyHandler serves the partner company collection.
type CompanyHandler struct {
	store *records.Store[models.CompanyRecord]
	audit *services.AuditService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(store *records.Store[models.CompanyRecord], audit *services.AuditService) *CompanyHandler {
	return &CompanyHandler{
		store: store,
		audit: audit,
	}
}

// List retrieves all companies
// GET /api/v1/companies
func (h *CompanyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.All())
}

// GetByID retrieves a single company
// GET /api/v1/companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	company, found := h.store.FindByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	c.JSON(http.StatusOK, company)
}

// Create appends a new company with a server-assigned id
// POST /api/v1/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req models.CompanyRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Status == "" {
		req.Status = models.CompanyPending
	}
	if req.Commission == "" {
		req.Commission = "10%"
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := h.store.Create(req)

	h.audit.RecordCreate(records.KeyCompanies, strconv.Itoa(created.ID), middleware.ActorFrom(c), map[string]interface{}{
		"name":    created.Name,
		"regions": created.Regions,
	})

	c.JSON(http.StatusCreated, created)
}

// Upsert inserts or replaces a company by id
// PUT /api/v1/companies
func (h *CompanyHandler) Upsert(c *gin.Context) {
	var req models.CompanyRecord
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

	h.audit.RecordUpsert(records.KeyCompanies, strconv.Itoa(stored.ID), middleware.ActorFrom(c), map[string]interface{}{
		"name": stored.Name,
	})

	c.JSON(http.StatusOK, stored)
}
