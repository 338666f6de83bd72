package handlers

import (
	"net/http"
	"strconv"

	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
)

// DoctorHandler handles doctor catalog requests
type DoctorHandler struct {
	service *services.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// ListDoctors handles GET /api/doctors
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if sortKey := r.URL.Query().Get("sort"); sortKey != "" {
		doctors = h.service.Sort(doctors, repositories.DoctorSortKey(sortKey))
	}

	respondWithJSON(w, http.StatusOK, doctors)
}

// SearchDoctors handles GET /api/doctors/search
func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repositories.DoctorSearchParams{
		Department: q.Get("department"),
		Specialty:  q.Get("specialty"),
		Language:   q.Get("language"),
	}
	if v := q.Get("hospital_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid hospital_id")
			return
		}
		params.HospitalID = id
	}
	if v := q.Get("available"); v != "" {
		params.Availability, _ = strconv.ParseBool(v)
	}
	if v := q.Get("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid min_rating")
			return
		}
		params.MinRating = rating
	}
	if v := q.Get("min_experience"); v != "" {
		years, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid min_experience")
			return
		}
		params.MinExperienceYears = years
	}

	doctors, err := h.service.Search(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if sortKey := q.Get("sort"); sortKey != "" {
		doctors = h.service.Sort(doctors, repositories.DoctorSortKey(sortKey))
	}

	respondWithJSON(w, http.StatusOK, doctors)
}

// TopRated handles GET /api/doctors/top-rated
func (h *DoctorHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	limit := 3
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	doctors, err := h.service.TopRated(r.Context(), limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctors)
}

// ShortestWait handles GET /api/doctors/shortest-wait
func (h *DoctorHandler) ShortestWait(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.service.ShortestWait(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if doctor == nil {
		respondWithError(w, http.StatusNotFound, "no doctors available")
		return
	}
	respondWithJSON(w, http.StatusOK, doctor)
}

// GetDoctor handles GET /api/doctors/{id}
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	doctor, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctor)
}

// GetSlots handles GET /api/doctors/{id}/slots
func (h *DoctorHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	slots, err := h.service.AvailableSlots(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctor_id": id,
		"slots":     slots,
	})
}
