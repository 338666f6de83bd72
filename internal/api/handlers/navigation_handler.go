package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/doodledaron/findcare/backend/internal/application/services"
)

// NavigationHandler handles indoor navigation and NFC check-in requests
type NavigationHandler struct {
	service *services.CheckinService
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(service *services.CheckinService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// GetSteps handles GET /api/navigation/steps
func (h *NavigationHandler) GetSteps(w http.ResponseWriter, r *http.Request) {
	steps, err := h.service.Route(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, steps)
}

// GetCheckpoints handles GET /api/navigation/checkpoints
func (h *NavigationHandler) GetCheckpoints(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("floor"); v != "" {
		floor, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid floor")
			return
		}
		checkpoints, err := h.service.CheckpointsByFloor(r.Context(), floor)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, checkpoints)
		return
	}

	checkpoints, err := h.service.Checkpoints(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, checkpoints)
}

// RecordScan handles POST /api/checkin/scan
func (h *NavigationHandler) RecordScan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID    string `json:"session_id"`
		CheckpointID int    `json:"checkpoint_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.RecordScan(r.Context(), req.SessionID, req.CheckpointID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetProgress handles GET /api/checkin/progress
func (h *NavigationHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.Progress(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, progress)
}
