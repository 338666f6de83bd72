package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/doodledaron/findcare/backend/internal/application/services"
)

// AssessmentHandler handles symptom assessment requests
type AssessmentHandler struct {
	service *services.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(service *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// GetAssessment handles GET /api/assessment
func (h *AssessmentHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.service.Cached(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, assessment)
}

// CompleteAssessment handles POST /api/assessment/complete
func (h *AssessmentHandler) CompleteAssessment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	assessment, err := h.service.CompleteIntake(r.Context(), req.SessionID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, assessment)
}

// Recommend handles GET /api/assessment/recommend
func (h *AssessmentHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	symptom := r.URL.Query().Get("symptom")
	if symptom == "" {
		respondWithError(w, http.StatusBadRequest, "symptom is required")
		return
	}

	department, err := h.service.Recommend(r.Context(), symptom)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"symptom": symptom, "department": department})
}
