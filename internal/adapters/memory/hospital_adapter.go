package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	"github.com/doodledaron/findcare/backend/pkg/errors"
)

// HospitalAdapter is an in-memory implementation of HospitalRepository.
type HospitalAdapter struct {
	mu        sync.RWMutex
	hospitals []*entities.Hospital
	byID      map[int]*entities.Hospital
}

// NewHospitalAdapter creates a store seeded with the fixture catalog.
func NewHospitalAdapter() *HospitalAdapter {
	return NewHospitalAdapterWith(SeedHospitals())
}

// NewHospitalAdapterWith creates a store over the given records.
func NewHospitalAdapterWith(hospitals []*entities.Hospital) *HospitalAdapter {
	byID := make(map[int]*entities.Hospital, len(hospitals))
	for _, h := range hospitals {
		byID[h.ID] = h
	}
	return &HospitalAdapter{hospitals: hospitals, byID: byID}
}

// List returns every hospital in insertion order.
func (a *HospitalAdapter) List(ctx context.Context) ([]*entities.Hospital, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*entities.Hospital, 0, len(a.hospitals))
	for _, h := range a.hospitals {
		out = append(out, h.Clone())
	}
	return out, nil
}

// GetByID retrieves one hospital.
func (a *HospitalAdapter) GetByID(ctx context.Context, id int) (*entities.Hospital, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	h, ok := a.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("hospital not found")
	}
	return h.Clone(), nil
}

// Search filters the store. Zero-valued params impose no constraint;
// present params compose by AND. Store order is preserved.
func (a *HospitalAdapter) Search(ctx context.Context, params repositories.HospitalSearchParams) ([]*entities.Hospital, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []*entities.Hospital
	for _, h := range a.hospitals {
		if !matchHospital(h, params) {
			continue
		}
		out = append(out, h.Clone())
	}
	return out, nil
}

func matchHospital(h *entities.Hospital, p repositories.HospitalSearchParams) bool {
	if p.Type != "" && !strings.EqualFold(p.Type, "all") && !strings.EqualFold(string(h.Type), p.Type) {
		return false
	}
	if p.Specialty != "" && !h.HasSpecialty(p.Specialty) {
		return false
	}
	if p.MaxDistanceKm > 0 && h.DistanceKm > p.MaxDistanceKm {
		return false
	}
	if p.EmergencyServices && !h.EmergencyServices {
		return false
	}
	if p.MinRating > 0 && h.Rating < p.MinRating {
		return false
	}
	if p.Insurance != "" && !h.AcceptsInsurance(p.Insurance) {
		return false
	}
	return true
}
