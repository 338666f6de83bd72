package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	"github.com/doodledaron/findcare/backend/pkg/errors"
)

// DoctorAdapter is an in-memory implementation of DoctorRepository.
// All reads return clones; the store never leaks its own slices.
type DoctorAdapter struct {
	mu      sync.RWMutex
	doctors []*entities.Doctor
	byID    map[int]*entities.Doctor
}

// NewDoctorAdapter creates a store seeded with the fixture catalog.
func NewDoctorAdapter() *DoctorAdapter {
	return NewDoctorAdapterWith(SeedDoctors())
}

// NewDoctorAdapterWith creates a store over the given records.
func NewDoctorAdapterWith(doctors []*entities.Doctor) *DoctorAdapter {
	byID := make(map[int]*entities.Doctor, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}
	return &DoctorAdapter{doctors: doctors, byID: byID}
}

// List returns every doctor in insertion order.
func (a *DoctorAdapter) List(ctx context.Context) ([]*entities.Doctor, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*entities.Doctor, 0, len(a.doctors))
	for _, d := range a.doctors {
		out = append(out, d.Clone())
	}
	return out, nil
}

// GetByID retrieves one doctor.
func (a *DoctorAdapter) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	d, ok := a.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("doctor not found")
	}
	return d.Clone(), nil
}

// Search filters the store. Zero-valued params impose no constraint;
// present params compose by AND. Store order is preserved.
func (a *DoctorAdapter) Search(ctx context.Context, params repositories.DoctorSearchParams) ([]*entities.Doctor, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []*entities.Doctor
	for _, d := range a.doctors {
		if !matchDoctor(d, params) {
			continue
		}
		out = append(out, d.Clone())
	}
	return out, nil
}

func matchDoctor(d *entities.Doctor, p repositories.DoctorSearchParams) bool {
	if p.Department != "" && !strings.EqualFold(d.Department, p.Department) {
		return false
	}
	if p.Specialty != "" && !strings.Contains(strings.ToLower(d.Specialty), strings.ToLower(p.Specialty)) {
		return false
	}
	if p.HospitalID != 0 && d.HospitalID != p.HospitalID {
		return false
	}
	if p.Availability && len(d.AvailableSlots) == 0 {
		return false
	}
	if p.MinRating > 0 && d.Rating < p.MinRating {
		return false
	}
	if p.MinExperienceYears > 0 && d.ExperienceYears < p.MinExperienceYears {
		return false
	}
	if p.Language != "" {
		found := false
		q := strings.ToLower(p.Language)
		for _, lang := range d.Languages {
			if strings.Contains(strings.ToLower(lang), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// BookSlot atomically removes slot and bumps the queue. The check and the
// mutation happen under one lock so two bookings cannot take the same slot.
func (a *DoctorAdapter) BookSlot(ctx context.Context, doctorID int, slot string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, ok := a.byID[doctorID]
	if !ok {
		return false, errors.NewNotFoundError("doctor not found")
	}
	for i, s := range d.AvailableSlots {
		if s == slot {
			d.AvailableSlots = append(d.AvailableSlots[:i], d.AvailableSlots[i+1:]...)
			d.PatientsInQueue++
			return true, nil
		}
	}
	return false, nil
}

// ReleaseSlot returns slot to availability and decrements the queue,
// flooring at zero. Releasing a slot that is already available is a no-op
// for the slot list but still adjusts the queue.
func (a *DoctorAdapter) ReleaseSlot(ctx context.Context, doctorID int, slot string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, ok := a.byID[doctorID]
	if !ok {
		return errors.NewNotFoundError("doctor not found")
	}
	if !d.HasSlot(slot) {
		d.AvailableSlots = append(d.AvailableSlots, slot)
	}
	if d.PatientsInQueue > 0 {
		d.PatientsInQueue--
	}
	return nil
}
