package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
)

// HospitalHandler handles hospital catalog requests
type HospitalHandler struct {
	service *services.HospitalService
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(service *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

// ListHospitals handles GET /api/hospitals
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if r.URL.Query().Get("sort") == "distance" {
		hospitals = h.service.SortByDistance(hospitals)
	}
	respondWithJSON(w, http.StatusOK, hospitals)
}

// SearchHospitals handles GET /api/hospitals/search
func (h *HospitalHandler) SearchHospitals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repositories.HospitalSearchParams{
		Type:      q.Get("type"),
		Specialty: q.Get("specialty"),
		Insurance: q.Get("insurance"),
	}
	if v := q.Get("max_distance_km"); v != "" {
		distance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid max_distance_km")
			return
		}
		params.MaxDistanceKm = distance
	}
	if v := q.Get("emergency"); v != "" {
		params.EmergencyServices, _ = strconv.ParseBool(v)
	}
	if v := q.Get("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid min_rating")
			return
		}
		params.MinRating = rating
	}

	hospitals, err := h.service.Search(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if q.Get("sort") == "distance" {
		hospitals = h.service.SortByDistance(hospitals)
	}
	respondWithJSON(w, http.StatusOK, hospitals)
}

// RankedSearch handles POST /api/hospitals/search
func (h *HospitalHandler) RankedSearch(w http.ResponseWriter, r *http.Request) {
	var req providers.HospitalSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.SearchRanked(r.Context(), &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// CachedSearch handles GET /api/hospitals/search/cached
func (h *HospitalHandler) CachedSearch(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CachedSearch(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// NearestEmergency handles GET /api/hospitals/nearest-emergency
func (h *HospitalHandler) NearestEmergency(w http.ResponseWriter, r *http.Request) {
	hospital, err := h.service.NearestEmergency(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hospital)
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	hospital, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hospital)
}

// GetQueueInfo handles GET /api/hospitals/{id}/queue
func (h *HospitalHandler) GetQueueInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	info, err := h.service.QueueInfo(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}

// GetWaitTimes handles GET /api/hospitals/{id}/wait-times
func (h *HospitalHandler) GetWaitTimes(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	waits, err := h.service.WaitTimesByDepartment(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, waits)
}

// GetContact handles GET /api/hospitals/{id}/contact
func (h *HospitalHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	contact, err := h.service.Contact(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, contact)
}

// GetRating handles GET /api/hospitals/{id}/rating
func (h *HospitalHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	rating, err := h.service.Rating(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rating)
}

func hospitalID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid hospital ID")
		return 0, false
	}
	return id, true
}
