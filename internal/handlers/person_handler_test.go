package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanfleet/ops-console-backend/internal/middleware"
	"github.com/urbanfleet/ops-console-backend/internal/models"
	"github.com/urbanfleet/ops-console-backend/internal/records"
	"github.com/urbanfleet/ops-console-backend/internal/services"
	"github.com/urbanfleet/ops-console-backend/internal/storage"
	"github.com/urbanfleet/ops-console-backend/pkg/clock"
)

func newRiderRouter(t *testing.T, backend storage.Backend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := records.NewRiderStore(backend, quietLogger())
	audit := services.NewAuditService(backend, clock.NewFixed(handlerNow), quietLogger(), true)
	handler := NewPersonHandler(store, audit, "riders")

	router := gin.New()
	router.Use(middleware.Actor("Admin User"))
	router.GET("/riders", handler.List)
	router.GET("/riders/:id", handler.GetByID)
	router.POST("/riders", handler.Create)
	router.PUT("/riders", handler.Upsert)
	return router
}

func postJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	encoded, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPersonHandlerCreate(t *testing.T) {
	t.Run("Assigns Id And Defaults", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		router := newRiderRouter(t, backend)

		rec := postJSON(router, http.MethodPost, "/riders", models.PersonRecord{
			Name: "Huda Selim",
			City: "Riyadh",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.PersonRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Greater(t, created.ID, 0)
		assert.Equal(t, "SAR 0", created.Spend)
		assert.Equal(t, models.RiskLow, created.Risk)
		assert.Equal(t, models.PrimaryUnderReview, created.PrimaryStatus)
		assert.Equal(t, models.ActivityActive, created.ActivityStatus)

		fetched := doRequest(router, http.MethodGet, "/riders/"+strconv.Itoa(created.ID), nil)
		assert.Equal(t, http.StatusOK, fetched.Code)
	})

	t.Run("Explicit Fields Win Over Defaults", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		router := newRiderRouter(t, backend)

		rec := postJSON(router, http.MethodPost, "/riders", models.PersonRecord{
			Name: "Ziyad Qasim",
			City: "Jeddah",
			Risk: models.RiskHigh,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.PersonRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, models.RiskHigh, created.Risk)
	})

	t.Run("Rejects Invalid Risk", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		router := newRiderRouter(t, backend)

		rec := postJSON(router, http.MethodPost, "/riders", models.PersonRecord{
			Name: "Bad Record",
			Risk: "extreme",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Create Emits Audit Entry", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		router := newRiderRouter(t, backend)

		rec := postJSON(router, http.MethodPost, "/riders", models.PersonRecord{Name: "Huda Selim"})
		require.Equal(t, http.StatusCreated, rec.Code)

		payload, err := backend.Get(services.KeyAuditLog)
		require.NoError(t, err)

		var entries []models.AuditEntry
		require.NoError(t, json.Unmarshal(payload, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "riders", entries[0].Payload["collection"])
	})
}

func TestPersonHandlerUpsert(t *testing.T) {
	t.Run("Replaces Existing Record", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		router := newRiderRouter(t, backend)

		rec := postJSON(router, http.MethodPut, "/riders", models.PersonRecord{
			ID:   101,
			Name: "Omar Haddad",
			City: "Khobar",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		fetched := doRequest(router, http.MethodGet, "/riders/101", nil)
		require.Equal(t, http.StatusOK, fetched.Code)

		var stored models.PersonRecord
		require.NoError(t, json.Unmarshal(fetched.Body.Bytes(), &stored))
		assert.Equal(t, "Khobar", stored.City)
	})

	t.Run("Requires An Id", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		router := newRiderRouter(t, backend)

		rec := postJSON(router, http.MethodPut, "/riders", models.PersonRecord{Name: "No Id"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

