package handlers

import (
	"net/http"

	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
)

// CatalogHandler serves the static department and symptom catalogs
type CatalogHandler struct {
	repo repositories.CatalogRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(repo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// ListDepartments handles GET /api/departments
func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.repo.Departments(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, departments)
}

// ListSymptoms handles GET /api/symptoms
func (h *CatalogHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		symptoms, err := h.repo.SymptomsByCategory(r.Context(), category)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, symptoms)
		return
	}

	symptoms, err := h.repo.Symptoms(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, symptoms)
}
