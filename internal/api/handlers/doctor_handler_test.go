package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledaron/findcare/backend/internal/adapters/memory"
	"github.com/doodledaron/findcare/backend/internal/api/handlers"
	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

func newDoctorHandler() *handlers.DoctorHandler {
	return handlers.NewDoctorHandler(services.NewDoctorService(memory.NewDoctorAdapter()))
}

func TestDoctorHandler_GetDoctor(t *testing.T) {
	t.Run("returns the doctor", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/1", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		handler.GetDoctor(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var doctor entities.Doctor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctor))
		assert.Equal(t, 1, doctor.ID)
		assert.Equal(t, "Dr. James Wong", doctor.Name)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/999", nil)
		req.SetPathValue("id", "999")
		w := httptest.NewRecorder()

		handler.GetDoctor(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/abc", nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		handler.GetDoctor(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDoctorHandler_SearchDoctors(t *testing.T) {
	t.Run("filters by department", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/search?department=Neurology", nil)
		w := httptest.NewRecorder()

		handler.SearchDoctors(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var doctors []*entities.Doctor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
		require.Len(t, doctors, 1)
		assert.Equal(t, "Neurology", doctors[0].Department)
	})

	t.Run("treats the all-departments value as no filter", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/search?department=All+Departments", nil)
		w := httptest.NewRecorder()

		handler.SearchDoctors(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var doctors []*entities.Doctor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
		assert.Len(t, doctors, 5)
	})

	t.Run("sorts by rating when requested", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/search?sort=rating", nil)
		w := httptest.NewRecorder()

		handler.SearchDoctors(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var doctors []*entities.Doctor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
		require.NotEmpty(t, doctors)
		assert.Equal(t, "Dr. Sarah Chen", doctors[0].Name)
	})
}

func TestDoctorHandler_GetSlots(t *testing.T) {
	handler := newDoctorHandler()

	req := httptest.NewRequest("GET", "/api/doctors/1/slots", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.GetSlots(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		DoctorID int      `json:"doctor_id"`
		Slots    []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.DoctorID)
	assert.Contains(t, resp.Slots, "3:00 PM")
}

func TestDoctorHandler_ShortestWait(t *testing.T) {
	t.Run("returns the least loaded doctor", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/shortest-wait", nil)
		w := httptest.NewRecorder()

		handler.ShortestWait(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var doctor entities.Doctor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctor))
		assert.Equal(t, "Dr. Sarah Chen", doctor.Name)
	})

	t.Run("returns not found for an empty department", func(t *testing.T) {
		handler := newDoctorHandler()

		req := httptest.NewRequest("GET", "/api/doctors/shortest-wait?department=Oncology", nil)
		w := httptest.NewRecorder()

		handler.ShortestWait(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
